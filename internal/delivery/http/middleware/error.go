package middleware

import (
	"errors"

	"hiring-intel/internal/pkg/logger"
	"hiring-intel/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(log *zap.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger.OrNop(log).Named("http")}
}

// Middleware renders every returned error and recovered panic as the
// response envelope. 5xx causes are logged, never sent.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered", append(requestFields(c), zap.Any("panic", r))...)
				err = response.Error(c, fiber.StatusInternalServerError, "", nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		if status >= fiber.StatusInternalServerError {
			m.logger.Error("request failed", append(requestFields(c), zap.Int("status", status), zap.Error(err))...)
		}
		return response.Error(c, status, msg, data)
	}
}

func requestFields(c fiber.Ctx) []zap.Field {
	return []zap.Field{
		zap.String("rid", string(c.Response().Header.Peek(HeaderRequestID))),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
	}
}

// normalizeError returns an empty message where the response package should
// pick the default text for the status.
func normalizeError(err error) (int, string, any) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= fiber.StatusInternalServerError {
			if status <= 0 {
				status = fiber.StatusInternalServerError
			}
			return status, "", nil
		}
		return status, appErr.Message, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code <= 0 || fiberErr.Code >= fiber.StatusInternalServerError {
			return fiber.StatusInternalServerError, "", nil
		}
		return fiberErr.Code, fiberErr.Message, nil
	}

	return fiber.StatusInternalServerError, "", nil
}
