package dto

import (
	"time"

	"hiring-intel/internal/domain/job"

	"github.com/google/uuid"
)

// CreateJobRequest leaves every *_weight unset to take the default weights.
// Once any weight is given, the missing ones count as zero.
type CreateJobRequest struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	BackendWeight       *float64 `json:"backend_weight"`
	ConsistencyWeight   *float64 `json:"consistency_weight"`
	CollaborationWeight *float64 `json:"collaboration_weight"`
	RecencyWeight       *float64 `json:"recency_weight"`
	ImpactWeight        *float64 `json:"impact_weight"`
	MinThreshold        *float64 `json:"min_threshold"`
}

type JobResponse struct {
	ID                  uuid.UUID `json:"id"`
	RecruiterID         uuid.UUID `json:"recruiter_id"`
	Title               string    `json:"title"`
	Description         *string   `json:"description"`
	BackendWeight       float64   `json:"backend_weight"`
	ConsistencyWeight   float64   `json:"consistency_weight"`
	CollaborationWeight float64   `json:"collaboration_weight"`
	RecencyWeight       float64   `json:"recency_weight"`
	ImpactWeight        float64   `json:"impact_weight"`
	MinThreshold        float64   `json:"min_threshold"`
	CreatedAt           string    `json:"created_at"`
	MatchCount          int64     `json:"match_count"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:                  j.ID,
		RecruiterID:         j.RecruiterID,
		Title:               j.Title,
		Description:         j.Description,
		BackendWeight:       j.Weights.Backend,
		ConsistencyWeight:   j.Weights.Consistency,
		CollaborationWeight: j.Weights.Collaboration,
		RecencyWeight:       j.Weights.Recency,
		ImpactWeight:        j.Weights.Impact,
		MinThreshold:        j.MinThreshold,
		CreatedAt:           formatTime(j.CreatedAt),
		MatchCount:          j.MatchCount,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
