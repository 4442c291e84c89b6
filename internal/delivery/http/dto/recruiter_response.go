package dto

import "hiring-intel/internal/usecase"

type RecruiterSummaryResponse struct {
	TotalJobs     int                 `json:"total_jobs"`
	TotalMatches  int64               `json:"total_matches"`
	Jobs          []JobResponse       `json:"jobs"`
	TopCandidates []CandidateResponse `json:"top_candidates"`
}

func NewRecruiterSummaryResponse(s usecase.RecruiterSummary) RecruiterSummaryResponse {
	out := RecruiterSummaryResponse{
		TotalJobs:     s.TotalJobs,
		TotalMatches:  s.TotalMatches,
		Jobs:          make([]JobResponse, 0, len(s.Jobs)),
		TopCandidates: make([]CandidateResponse, 0, len(s.TopCandidates)),
	}
	for _, j := range s.Jobs {
		out.Jobs = append(out.Jobs, NewJobResponse(j))
	}
	for _, p := range s.TopCandidates {
		out.TopCandidates = append(out.TopCandidates, NewCandidateResponse(p))
	}
	return out
}
