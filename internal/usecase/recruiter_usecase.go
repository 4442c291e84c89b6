package usecase

import (
	"context"
	"fmt"

	"hiring-intel/internal/domain/candidate"
	"hiring-intel/internal/domain/job"
	"hiring-intel/internal/domain/user"
	"hiring-intel/internal/repository"

	"github.com/google/uuid"
)

const topCandidatesLimit = 5

// RecruiterSummary backs the recruiter dashboard. TopCandidates is global,
// not scoped to the recruiter's jobs.
type RecruiterSummary struct {
	TotalJobs     int
	TotalMatches  int64
	Jobs          []job.Job
	TopCandidates []candidate.Profile
}

type RecruiterUsecase interface {
	Summary(ctx context.Context, recruiterID uuid.UUID) (RecruiterSummary, error)
}

type Recruiters struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	users      user.Repository
}

func NewRecruiterUsecase(jobs repository.JobRepository, candidates repository.CandidateRepository, users user.Repository) *Recruiters {
	return &Recruiters{jobs: jobs, candidates: candidates, users: users}
}

func (u *Recruiters) Summary(ctx context.Context, recruiterID uuid.UUID) (RecruiterSummary, error) {
	if err := ensureRecruiter(ctx, u.users, recruiterID); err != nil {
		return RecruiterSummary{}, err
	}

	jobs, err := u.jobs.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		return RecruiterSummary{}, fmt.Errorf("%w: list jobs: %w", ErrInternal, err)
	}
	top, err := u.candidates.Top(ctx, topCandidatesLimit)
	if err != nil {
		return RecruiterSummary{}, fmt.Errorf("%w: top candidates: %w", ErrInternal, err)
	}

	out := RecruiterSummary{TotalJobs: len(jobs), Jobs: jobs, TopCandidates: top}
	for _, j := range jobs {
		out.TotalMatches += j.MatchCount
	}
	return out, nil
}
