package match

import (
	"time"

	"hiring-intel/internal/domain/scoring"

	"github.com/google/uuid"
)

type Result struct {
	ID          uuid.UUID
	JobID       uuid.UUID
	CandidateID uuid.UUID
	FitScore    float64
	RiskLevel   scoring.RiskLevel
	GapSummary  *string
	CreatedAt   time.Time

	CandidateName  string
	CandidateEmail string
	OverallScore   float64
}
