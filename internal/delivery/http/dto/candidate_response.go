package dto

import (
	"time"

	"hiring-intel/internal/domain/candidate"

	"github.com/google/uuid"
)

type CandidateResponse struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	GithubUsername   *string    `json:"github_username"`
	OverallScore     float64    `json:"overall_score"`
	RiskScore        string     `json:"risk_score"`
	DataCompleteness float64    `json:"data_completeness"`
	LastActiveDate   *time.Time `json:"last_active_date"`
}

type SkillHistoryPoint struct {
	Month string  `json:"month"`
	Score float64 `json:"score"`
}

type SkillResponse struct {
	ID                 uuid.UUID           `json:"id"`
	Name               string              `json:"name"`
	Score              float64             `json:"score"`
	ComplexityScore    float64             `json:"complexity_score"`
	ConsistencyScore   float64             `json:"consistency_score"`
	CollaborationScore float64             `json:"collaboration_score"`
	RecencyScore       float64             `json:"recency_score"`
	ImpactScore        float64             `json:"impact_score"`
	CertificationBonus float64             `json:"certification_bonus"`
	History            []SkillHistoryPoint `json:"history"`
}

func NewCandidateResponse(p candidate.Profile) CandidateResponse {
	return CandidateResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		Name:             p.Name,
		Email:            p.Email,
		GithubUsername:   p.GithubUsername,
		OverallScore:     p.OverallScore,
		RiskScore:        string(p.RiskScore),
		DataCompleteness: p.DataCompleteness,
		LastActiveDate:   p.LastActiveDate,
	}
}

func NewSkillResponse(s candidate.SkillWithHistory) SkillResponse {
	history := make([]SkillHistoryPoint, 0, len(s.History))
	for _, h := range s.History {
		history = append(history, SkillHistoryPoint{Month: h.Month, Score: h.Score})
	}
	return SkillResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Score:              s.Score,
		ComplexityScore:    s.ComplexityScore,
		ConsistencyScore:   s.ConsistencyScore,
		CollaborationScore: s.CollaborationScore,
		RecencyScore:       s.RecencyScore,
		ImpactScore:        s.ImpactScore,
		CertificationBonus: s.CertificationBonus,
		History:            history,
	}
}

type ImprovementActionResponse struct {
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func NewImprovementPlanResponse(actions []candidate.Action) []ImprovementActionResponse {
	out := make([]ImprovementActionResponse, 0, len(actions))
	for _, a := range actions {
		out = append(out, ImprovementActionResponse{
			Priority:    string(a.Priority),
			Title:       a.Title,
			Description: a.Description,
		})
	}
	return out
}
