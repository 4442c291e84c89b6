package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MatchCache is the subset of the redis cache the usecases use.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// RunLocker guards a job against concurrent batch runs. When Available is
// false the lock is not enforced.
type RunLocker interface {
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	DeleteIfValue(ctx context.Context, key string, value string) error
	Available() bool
}

// MatchNotifier publishes the refresh signal after a job's matches change.
type MatchNotifier interface {
	NotifyMatchesUpdated(jobID uuid.UUID, runID uuid.UUID, written int)
}

func MatchesCacheKey(jobID uuid.UUID) string {
	return "matches:job:" + jobID.String()
}

func MatchRunLockKey(jobID uuid.UUID) string {
	return "matches:lock:" + jobID.String()
}
