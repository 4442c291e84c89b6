package handler

import (
	"hiring-intel/internal/delivery/http/dto"
	"hiring-intel/internal/pkg/response"
	"hiring-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecruiterHandler struct {
	uc usecase.RecruiterUsecase
}

func NewRecruiterHandler(uc usecase.RecruiterUsecase) *RecruiterHandler {
	return &RecruiterHandler{uc: uc}
}

// RegisterRoutes expects r to be mounted at /recruiters/:recruiter_id.
func (h *RecruiterHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/summary", h.Summary)
}

func (h *RecruiterHandler) Summary(c fiber.Ctx) error {
	recruiterID, err := parseUUIDParam(c, "recruiter_id")
	if err != nil {
		return err
	}

	s, err := h.uc.Summary(c.Context(), recruiterID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecruiterSummaryResponse(s))
}
