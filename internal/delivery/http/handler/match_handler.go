package handler

import (
	"context"
	"errors"
	"strconv"

	"hiring-intel/internal/delivery/http/dto"
	"hiring-intel/internal/delivery/http/middleware"
	"hiring-intel/internal/pkg/response"
	"hiring-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const maxRunConcurrency = 32

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

// RegisterRoutes expects r to be mounted at /recruiters/:recruiter_id.
func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/jobs/:job_id")
	grp.Get("/matches", h.List)
	grp.Post("/matches", h.Create)
	grp.Post("/match-runs", h.Run)
}

func (h *MatchHandler) List(c fiber.Ctx) error {
	recruiterID, err := parseUUIDParam(c, "recruiter_id")
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListMatches(c.Context(), recruiterID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.MatchResultResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewMatchResultResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) Create(c fiber.Ctx) error {
	recruiterID, err := parseUUIDParam(c, "recruiter_id")
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}

	var req dto.CreateMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.FitScore == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "fit_score is required", nil, nil)
	}

	created, err := h.uc.CreateMatch(c.Context(), recruiterID, jobID, usecase.MatchCreateInput{
		CandidateID: req.CandidateID,
		FitScore:    *req.FitScore,
		RiskLevel:   req.RiskLevel,
		GapSummary:  req.GapSummary,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewMatchResultResponse(created))
}

// Run answers 200 with the partial report when the run was cut short by its
// deadline; the report's cancelled flag says so.
func (h *MatchHandler) Run(c fiber.Ctx) error {
	recruiterID, err := parseUUIDParam(c, "recruiter_id")
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}

	mode, err := usecase.ParseRunMode(c.Query("mode"))
	if err != nil {
		return mapUsecaseError(err)
	}
	concurrency := 0
	if s := c.Query("concurrency"); s != "" {
		concurrency, err = strconv.Atoi(s)
		if err != nil || concurrency < 1 || concurrency > maxRunConcurrency {
			return middleware.NewAppError(fiber.StatusBadRequest, "concurrency must be between 1 and "+strconv.Itoa(maxRunConcurrency), nil, err)
		}
	}

	report, err := h.uc.RunMatches(c.Context(), recruiterID, jobID, usecase.RunOptions{Mode: mode, Concurrency: concurrency})
	if err != nil {
		if report.Cancelled && (errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)) {
			return response.Success(c, fiber.StatusOK, "match run cancelled", dto.NewMatchRunResponse(report))
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchRunResponse(report))
}
