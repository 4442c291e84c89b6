package dto

import (
	"hiring-intel/internal/domain/match"
	"hiring-intel/internal/usecase"

	"github.com/google/uuid"
)

type CreateMatchRequest struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	FitScore    *float64  `json:"fit_score"`
	RiskLevel   string    `json:"risk_level"`
	GapSummary  string    `json:"gap_summary"`
}

type MatchResultResponse struct {
	ID             uuid.UUID `json:"id"`
	JobID          uuid.UUID `json:"job_id"`
	CandidateID    uuid.UUID `json:"candidate_id"`
	FitScore       float64   `json:"fit_score"`
	RiskLevel      string    `json:"risk_level"`
	GapSummary     *string   `json:"gap_summary"`
	CreatedAt      string    `json:"created_at"`
	CandidateName  string    `json:"candidate_name,omitempty"`
	CandidateEmail string    `json:"candidate_email,omitempty"`
	OverallScore   float64   `json:"overall_score,omitempty"`
}

type CandidateFailureResponse struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Stage       string    `json:"stage"`
	Error       string    `json:"error"`
}

type MatchRunResponse struct {
	RunID      uuid.UUID                  `json:"run_id"`
	JobID      uuid.UUID                  `json:"job_id"`
	Mode       string                     `json:"mode"`
	Total      int                        `json:"total"`
	Processed  int                        `json:"processed"`
	Skipped    int                        `json:"skipped"`
	Written    int                        `json:"written"`
	Cancelled  bool                       `json:"cancelled"`
	StartedAt  string                     `json:"started_at"`
	FinishedAt string                     `json:"finished_at"`
	Results    []MatchResultResponse      `json:"results"`
	Failures   []CandidateFailureResponse `json:"failures"`
}

func NewMatchResultResponse(m match.Result) MatchResultResponse {
	return MatchResultResponse{
		ID:             m.ID,
		JobID:          m.JobID,
		CandidateID:    m.CandidateID,
		FitScore:       m.FitScore,
		RiskLevel:      string(m.RiskLevel),
		GapSummary:     m.GapSummary,
		CreatedAt:      formatTime(m.CreatedAt),
		CandidateName:  m.CandidateName,
		CandidateEmail: m.CandidateEmail,
		OverallScore:   m.OverallScore,
	}
}

func NewMatchRunResponse(r usecase.RunReport) MatchRunResponse {
	results := make([]MatchResultResponse, 0, len(r.Results))
	for _, m := range r.Results {
		results = append(results, NewMatchResultResponse(m))
	}
	failures := make([]CandidateFailureResponse, 0, len(r.Failures))
	for _, f := range r.Failures {
		msg := ""
		if f.Err != nil {
			msg = f.Err.Error()
		}
		failures = append(failures, CandidateFailureResponse{CandidateID: f.CandidateID, Stage: f.Stage, Error: msg})
	}
	return MatchRunResponse{
		RunID:      r.RunID,
		JobID:      r.JobID,
		Mode:       string(r.Mode),
		Total:      r.Total,
		Processed:  r.Processed,
		Skipped:    r.Skipped,
		Written:    r.Written,
		Cancelled:  r.Cancelled,
		StartedAt:  formatTime(r.StartedAt),
		FinishedAt: formatTime(r.FinishedAt),
		Results:    results,
		Failures:   failures,
	}
}
