package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hiring-intel/internal/domain/job"
	"hiring-intel/internal/domain/scoring"
	"hiring-intel/internal/domain/user"
	"hiring-intel/internal/pkg/logger"
	"hiring-intel/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobCreateInput leaves Weights and MinThreshold nil to take the defaults.
type JobCreateInput struct {
	Title        string
	Description  string
	Weights      *scoring.WeightVector
	MinThreshold *float64
}

type JobUsecase interface {
	ListJobs(ctx context.Context, recruiterID uuid.UUID) ([]job.Job, error)
	CreateJob(ctx context.Context, recruiterID uuid.UUID, in JobCreateInput) (job.Job, error)
	GetJob(ctx context.Context, recruiterID, jobID uuid.UUID) (job.Job, error)
}

type Jobs struct {
	jobs   repository.JobRepository
	users  user.Repository
	logger *zap.Logger
}

func NewJobUsecase(jobs repository.JobRepository, users user.Repository, log *zap.Logger) *Jobs {
	return &Jobs{jobs: jobs, users: users, logger: logger.OrNop(log).Named("jobs")}
}

func (u *Jobs) ListJobs(ctx context.Context, recruiterID uuid.UUID) ([]job.Job, error) {
	if err := ensureRecruiter(ctx, u.users, recruiterID); err != nil {
		return nil, err
	}
	items, err := u.jobs.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		u.logger.Error("list jobs failed", zap.String("recruiter_id", recruiterID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Jobs) CreateJob(ctx context.Context, recruiterID uuid.UUID, in JobCreateInput) (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Job{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	weights := scoring.DefaultWeights
	if in.Weights != nil {
		weights = *in.Weights
	}
	if err := weights.Validate(); err != nil {
		return job.Job{}, fmt.Errorf("%w: %w", ErrInvalidWeights, err)
	}

	threshold := scoring.DefaultMinThreshold
	if in.MinThreshold != nil {
		threshold = *in.MinThreshold
	}
	if err := scoring.ValidateMinThreshold(threshold); err != nil {
		return job.Job{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := ensureRecruiter(ctx, u.users, recruiterID); err != nil {
		return job.Job{}, err
	}

	var desc *string
	if d := strings.TrimSpace(in.Description); d != "" {
		desc = &d
	}

	created, err := u.jobs.Create(ctx, repository.JobCreate{
		RecruiterID:  recruiterID,
		Title:        title,
		Description:  desc,
		Weights:      weights,
		MinThreshold: threshold,
	})
	if err != nil {
		u.logger.Error("create job failed", zap.String("recruiter_id", recruiterID.String()), zap.Error(err))
		return job.Job{}, ErrInternal
	}

	u.logger.Info("job created", zap.String("job_id", created.ID.String()), zap.String("recruiter_id", recruiterID.String()))
	return created, nil
}

// GetJob reports ErrJobNotFound for a job owned by another recruiter.
func (u *Jobs) GetJob(ctx context.Context, recruiterID, jobID uuid.UUID) (job.Job, error) {
	return getOwnedJob(ctx, u.jobs, recruiterID, jobID)
}

func getOwnedJob(ctx context.Context, jobs repository.JobRepository, recruiterID, jobID uuid.UUID) (job.Job, error) {
	j, err := jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if j.RecruiterID != recruiterID {
		return job.Job{}, ErrJobNotFound
	}
	return j, nil
}

func ensureRecruiter(ctx context.Context, users user.Repository, recruiterID uuid.UUID) error {
	if users == nil {
		return nil
	}
	u, err := users.GetByID(ctx, recruiterID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrRecruiterNotFound
		}
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if !u.IsRecruiter() {
		return ErrRecruiterNotFound
	}
	return nil
}
