package usecase

import (
	"context"
	"errors"
	"fmt"

	"hiring-intel/internal/domain/candidate"
	"hiring-intel/internal/repository"

	"github.com/google/uuid"
)

type CandidateUsecase interface {
	ListCandidates(ctx context.Context) ([]candidate.Profile, error)
	GetCandidate(ctx context.Context, userID uuid.UUID) (candidate.Profile, error)
	ListSkills(ctx context.Context, userID uuid.UUID) ([]candidate.SkillWithHistory, error)
	ImprovementPlan(ctx context.Context, userID uuid.UUID) ([]candidate.Action, error)
}

type Candidates struct {
	repo repository.CandidateRepository
}

func NewCandidateUsecase(repo repository.CandidateRepository) *Candidates {
	return &Candidates{repo: repo}
}

func (u *Candidates) ListCandidates(ctx context.Context) ([]candidate.Profile, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return items, nil
}

func (u *Candidates) GetCandidate(ctx context.Context, userID uuid.UUID) (candidate.Profile, error) {
	p, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		return candidate.Profile{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return p, nil
}

// ListSkills returns the skills of the candidate profile owned by userID,
// each with its monthly score history in month order.
func (u *Candidates) ListSkills(ctx context.Context, userID uuid.UUID) ([]candidate.SkillWithHistory, error) {
	p, err := u.GetCandidate(ctx, userID)
	if err != nil {
		return nil, err
	}
	skills, err := u.repo.ListSkillsWithHistory(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return skills, nil
}

func (u *Candidates) ImprovementPlan(ctx context.Context, userID uuid.UUID) ([]candidate.Action, error) {
	p, err := u.GetCandidate(ctx, userID)
	if err != nil {
		return nil, err
	}
	skills, err := u.repo.ListSkillsWithHistory(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return candidate.ImprovementPlan(skills, p.RiskScore), nil
}
