package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"money-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// StorageHealthChecker reports whether the storage backend is reachable
type StorageHealthChecker interface {
	HealthCheck() error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	backend string
	checker StorageHealthChecker
}

// NewHealthCheckHandler creates a new health check handler.
// A nil checker means the backend has no connection to verify.
func NewHealthCheckHandler(backend string, checker StorageHealthChecker) *HealthCheckHandler {
	return &HealthCheckHandler{backend: backend, checker: checker}
}

// HealthCheck reports API and storage status
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if h.checker != nil {
		if err := h.checker.HealthCheck(); err != nil {
			errorResponse, cause := errors.WrapStorageError(err, getTraceID(c))
			errorResponse.Error.Details = []string{"Storage backend unreachable"}
			slog.Warn("Storage health check failed", "backend", h.backend, "error", cause)
			return sendErrorResponse(c, errorResponse)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"storage": h.backend,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
