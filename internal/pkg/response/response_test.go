package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_DefaultsAndStatusClamp(t *testing.T) {
	app := fiber.New()
	app.Get("/created", func(c fiber.Ctx) error { return Created(c, map[string]int{"id": 1}) })
	app.Get("/teapot", func(c fiber.Ctx) error { return Error(c, fiber.StatusTeapot, "", nil) })
	app.Get("/bogus", func(c fiber.Ctx) error { return Success(c, 42, "", nil) })
	app.Get("/custom", func(c fiber.Ctx) error { return Error(c, fiber.StatusNotFound, "Job not found", nil) })

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{"/created", fiber.StatusCreated, MessageCreated},
		{"/teapot", fiber.StatusTeapot, MessageError},
		{"/bogus", fiber.StatusInternalServerError, MessageInternalServerError},
		{"/custom", fiber.StatusNotFound, "Job not found"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			var body SemanticResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
