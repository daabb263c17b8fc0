package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"wisenotes-be/internal/pkg/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

func newTestApp(handlerErr error) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(testLogger{}))
	app.Get("/resource", func(ctx *fiber.Ctx) error {
		return handlerErr
	})
	return app
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unauthenticated", err: apperr.ErrUnauthenticated, wantStatus: fiber.StatusUnauthorized},
		{name: "not found", err: apperr.ErrNotFound, wantStatus: fiber.StatusNotFound},
		{name: "forbidden", err: apperr.ErrForbidden, wantStatus: fiber.StatusForbidden},
		{name: "wrapped not found", err: errors.Join(errors.New("lookup"), apperr.ErrNotFound), wantStatus: fiber.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(tc.err)
			resp, err := app.Test(httptest.NewRequest("GET", "/resource", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestErrorHandlerFieldError(t *testing.T) {
	app := newTestApp(apperr.NewFieldError("title", "title is required"))

	resp, err := app.Test(httptest.NewRequest("GET", "/resource", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "title", body["field"])
	assert.Equal(t, "title is required", body["message"])
}

func TestErrorHandlerMasksUnexpectedErrors(t *testing.T) {
	app := newTestApp(errors.New("pq: connection refused"))

	resp, err := app.Test(httptest.NewRequest("GET", "/resource", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fiber.StatusInternalServerError, body.Status)
	assert.NotEmpty(t, body.TraceId)
	assert.Equal(t, "/resource", body.Instance)
	assert.NotContains(t, body.Title, "connection refused")
}

func TestErrorHandlerPassesThroughFiberErrors(t *testing.T) {
	app := newTestApp(fiber.ErrMethodNotAllowed)

	resp, err := app.Test(httptest.NewRequest("GET", "/resource", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func TestErrorHandlerLeavesSuccessAlone(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(testLogger{}))
	app.Get("/ok", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
