package candidate

import (
	"time"

	"hiring-intel/internal/domain/scoring"

	"github.com/google/uuid"
)

type Profile struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	GithubUsername   *string
	OverallScore     float64
	RiskScore        scoring.RiskLevel
	DataCompleteness float64
	LastActiveDate   *time.Time

	Name  string
	Email string
}

type Skill struct {
	ID                 uuid.UUID
	CandidateID        uuid.UUID
	Name               string
	Score              float64
	ComplexityScore    float64
	ConsistencyScore   float64
	CollaborationScore float64
	RecencyScore       float64
	ImpactScore        float64
	CertificationBonus float64
}

func (s Skill) Dimensions() scoring.DimensionScores {
	return scoring.DimensionScores{
		Complexity:    s.ComplexityScore,
		Consistency:   s.ConsistencyScore,
		Collaboration: s.CollaborationScore,
		Recency:       s.RecencyScore,
		Impact:        s.ImpactScore,
	}
}

type HistoryPoint struct {
	Month string
	Score float64
}

type SkillWithHistory struct {
	Skill
	History []HistoryPoint
}
