package handler

import (
	"hiring-intel/internal/delivery/http/dto"
	"hiring-intel/internal/delivery/http/middleware"
	"hiring-intel/internal/domain/scoring"
	"hiring-intel/internal/pkg/response"
	"hiring-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterRoutes expects r to be mounted at /recruiters/:recruiter_id.
func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.List)
	r.Post("/jobs", h.Create)
	r.Get("/jobs/:job_id", h.Get)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	recruiterID, err := parseUUIDParam(c, "recruiter_id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListJobs(c.Context(), recruiterID)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.JobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewJobResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	recruiterID, err := parseUUIDParam(c, "recruiter_id")
	if err != nil {
		return err
	}

	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateJob(c.Context(), recruiterID, usecase.JobCreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Weights:      weightsFromRequest(req),
		MinThreshold: req.MinThreshold,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, dto.NewJobResponse(created))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	recruiterID, err := parseUUIDParam(c, "recruiter_id")
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}

	j, err := h.uc.GetJob(c.Context(), recruiterID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func weightsFromRequest(req dto.CreateJobRequest) *scoring.WeightVector {
	fields := []*float64{req.BackendWeight, req.ConsistencyWeight, req.CollaborationWeight, req.RecencyWeight, req.ImpactWeight}
	given := false
	for _, f := range fields {
		if f != nil {
			given = true
			break
		}
	}
	if !given {
		return nil
	}

	val := func(p *float64) float64 {
		if p == nil {
			return 0
		}
		return *p
	}
	return &scoring.WeightVector{
		Backend:       val(req.BackendWeight),
		Consistency:   val(req.ConsistencyWeight),
		Collaboration: val(req.CollaborationWeight),
		Recency:       val(req.RecencyWeight),
		Impact:        val(req.ImpactWeight),
	}
}
