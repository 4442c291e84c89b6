package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"hiring-intel/internal/domain/match"
	"hiring-intel/internal/domain/scoring"
	"hiring-intel/internal/pkg/logger"
	"hiring-intel/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MatchCreateInput struct {
	CandidateID uuid.UUID
	FitScore    float64
	RiskLevel   string
	GapSummary  string
}

type MatchUsecase interface {
	ListMatches(ctx context.Context, recruiterID, jobID uuid.UUID) ([]match.Result, error)
	CreateMatch(ctx context.Context, recruiterID, jobID uuid.UUID, in MatchCreateInput) (match.Result, error)
	RunMatches(ctx context.Context, recruiterID, jobID uuid.UUID, opts RunOptions) (RunReport, error)
}

type batchRunner interface {
	Run(ctx context.Context, jobID uuid.UUID, opts RunOptions) (RunReport, error)
}

type Matches struct {
	jobs     repository.JobRepository
	results  repository.MatchResultRepository
	runner   batchRunner
	cache    MatchCache
	notifier MatchNotifier
	logger   *zap.Logger
}

func NewMatchUsecase(
	jobs repository.JobRepository,
	results repository.MatchResultRepository,
	runner batchRunner,
	cache MatchCache,
	notifier MatchNotifier,
	log *zap.Logger,
) *Matches {
	return &Matches{
		jobs:     jobs,
		results:  results,
		runner:   runner,
		cache:    cache,
		notifier: notifier,
		logger:   logger.OrNop(log).Named("matches"),
	}
}

// ListMatches serves from the per-job cache when it can. Cache errors only
// cost a database round trip.
func (u *Matches) ListMatches(ctx context.Context, recruiterID, jobID uuid.UUID) ([]match.Result, error) {
	if _, err := getOwnedJob(ctx, u.jobs, recruiterID, jobID); err != nil {
		return nil, err
	}

	key := MatchesCacheKey(jobID)
	if u.cache != nil {
		var cached []match.Result
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			u.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		if hit {
			return cached, nil
		}
	}

	items, err := u.results.ListByJob(ctx, jobID)
	if err != nil {
		u.logger.Error("list matches failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return nil, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, items, 0); err != nil {
			u.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return items, nil
}

// CreateMatch stores one externally computed result. It is a plain insert:
// posting the same candidate twice yields two rows.
func (u *Matches) CreateMatch(ctx context.Context, recruiterID, jobID uuid.UUID, in MatchCreateInput) (match.Result, error) {
	if in.CandidateID == uuid.Nil {
		return match.Result{}, fmt.Errorf("%w: candidate_id is required", ErrInvalidInput)
	}
	if math.IsNaN(in.FitScore) || math.IsInf(in.FitScore, 0) || in.FitScore > scoring.MaxFitScore {
		return match.Result{}, fmt.Errorf("%w: fit_score must be a number not above %v", ErrInvalidInput, scoring.MaxFitScore)
	}
	risk := scoring.RiskLevel(strings.TrimSpace(in.RiskLevel))
	if !risk.Valid() {
		return match.Result{}, fmt.Errorf("%w: risk_level must be Low, Medium or High", ErrInvalidInput)
	}

	if _, err := getOwnedJob(ctx, u.jobs, recruiterID, jobID); err != nil {
		return match.Result{}, err
	}

	created, err := u.results.Create(ctx, repository.MatchResultCreate{
		JobID:       jobID,
		CandidateID: in.CandidateID,
		FitScore:    in.FitScore,
		RiskLevel:   risk,
		GapSummary:  in.GapSummary,
	})
	if err != nil {
		u.logger.Error("create match failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return match.Result{}, ErrInternal
	}

	u.invalidate(ctx, jobID)
	if u.notifier != nil {
		u.notifier.NotifyMatchesUpdated(jobID, uuid.Nil, 1)
	}
	return created, nil
}

// RunMatches checks ownership, then hands the job to the batch runner.
func (u *Matches) RunMatches(ctx context.Context, recruiterID, jobID uuid.UUID, opts RunOptions) (RunReport, error) {
	if _, err := getOwnedJob(ctx, u.jobs, recruiterID, jobID); err != nil {
		return RunReport{}, err
	}
	return u.runner.Run(ctx, jobID, opts)
}

func (u *Matches) invalidate(ctx context.Context, jobID uuid.UUID) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(context.WithoutCancel(ctx), MatchesCacheKey(jobID)); err != nil {
		u.logger.Warn("invalidate match cache failed", zap.String("job_id", jobID.String()), zap.Error(err))
	}
}
