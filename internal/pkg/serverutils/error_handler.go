package serverutils

import (
	"errors"
	"time"

	"wisenotes-be/internal/pkg/apperr"
	"wisenotes-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProblemDetails is the generic failure body for unexpected errors. It
// deliberately carries no internal error detail.
type ProblemDetails struct {
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Status    int       `json:"status"`
	Instance  string    `json:"instance"`
	TraceId   string    `json:"traceId"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorHandlerMiddleware maps typed service failures onto response
// statuses. Validation failures keep their field-level body; ownership
// and existence failures are empty-body statuses; everything else is a
// masked internal error.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if fieldErr, ok := apperr.AsFieldError(err); ok {
			return ctx.Status(fiber.StatusBadRequest).JSON(fieldErr)
		}

		switch {
		case errors.Is(err, apperr.ErrUnauthenticated):
			return ctx.SendStatus(fiber.StatusUnauthorized)
		case errors.Is(err, apperr.ErrNotFound):
			return ctx.SendStatus(fiber.StatusNotFound)
		case errors.Is(err, apperr.ErrForbidden):
			return ctx.SendStatus(fiber.StatusForbidden)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}

		traceId := uuid.NewString()
		log.Error("http", "unhandled error", map[string]interface{}{
			"error":    err.Error(),
			"path":     ctx.Path(),
			"method":   ctx.Method(),
			"trace_id": traceId,
		})

		return ctx.Status(fiber.StatusInternalServerError).JSON(ProblemDetails{
			Type:      "about:blank",
			Title:     "An unexpected error occurred",
			Status:    fiber.StatusInternalServerError,
			Instance:  ctx.Path(),
			TraceId:   traceId,
			Timestamp: time.Now().UTC(),
		})
	}
}
