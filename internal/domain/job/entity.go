package job

import (
	"time"

	"hiring-intel/internal/domain/scoring"

	"github.com/google/uuid"
)

type Job struct {
	ID           uuid.UUID
	RecruiterID  uuid.UUID
	Title        string
	Description  *string
	Weights      scoring.WeightVector
	MinThreshold float64
	CreatedAt    time.Time

	// MatchCount is only set by recruiter listings.
	MatchCount int64
}
