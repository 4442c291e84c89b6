package handler

import (
	"context"
	"errors"
	"strings"

	"hiring-intel/internal/delivery/http/middleware"
	"hiring-intel/internal/domain/scoring"
	"hiring-intel/internal/pkg/response"
	"hiring-intel/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const MessageWeightsSum = "Weights must sum to 100%."

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrRecruiterNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Recruiter not found", nil, err)
	case errors.Is(err, usecase.ErrMatchRunInProgress):
		return middleware.NewAppError(fiber.StatusConflict, "Match run already in progress", nil, err)
	case errors.Is(err, scoring.ErrWeightsSum):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, MessageWeightsSum, nil, err)
	case errors.Is(err, usecase.ErrInvalidWeights):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Weights must be non-negative numbers.", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, invalidInputMessage(err), nil, err)
	case errors.Is(err, context.DeadlineExceeded):
		return middleware.NewAppError(fiber.StatusGatewayTimeout, "Request timed out", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// invalidInputMessage surfaces the validation detail without the sentinel
// prefix, e.g. "title is required".
func invalidInputMessage(err error) string {
	if detail, ok := strings.CutPrefix(err.Error(), usecase.ErrInvalidInput.Error()+": "); ok && detail != "" {
		return detail
	}
	return "Bad request"
}

func parseUUIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return id, nil
}
