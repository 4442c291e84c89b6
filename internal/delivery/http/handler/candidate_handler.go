package handler

import (
	"hiring-intel/internal/delivery/http/dto"
	"hiring-intel/internal/pkg/response"
	"hiring-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/candidates")
	grp.Get("/", h.List)
	grp.Get("/:user_id", h.Get)
	grp.Get("/:user_id/skills", h.Skills)
	grp.Get("/:user_id/improvement-plan", h.ImprovementPlan)
}

func (h *CandidateHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListCandidates(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.CandidateResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewCandidateResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CandidateHandler) Get(c fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	p, err := h.uc.GetCandidate(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateResponse(p))
}

func (h *CandidateHandler) Skills(c fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListSkills(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.SkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CandidateHandler) ImprovementPlan(c fiber.Ctx) error {
	userID, err := parseUUIDParam(c, "user_id")
	if err != nil {
		return err
	}

	actions, err := h.uc.ImprovementPlan(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewImprovementPlanResponse(actions))
}
