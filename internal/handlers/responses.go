package handlers

import (
	"log/slog"

	"money-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response function:
//
// 1. SendError - For client errors and business logic errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Not found errors: SendError(c, errors.TransactionNotFound)
//    - Partition violations: SendError(c, errors.TransactionCategoryMismatch)
//
// Unexpected errors are returned to Echo and rendered by the custom HTTP
// error handler, which never exposes internal details.
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError instead
//    - Direct c.JSON() for errors - Use the helper functions

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return sendErrorResponse(c, errorResponse)
}

func sendErrorResponse(c echo.Context, errorResponse *errors.ErrorResponse) error {
	if errorResponse.IsServerError() {
		slog.Error("Request failed",
			"trace_id", errorResponse.Error.TraceID,
			"error_code", errorResponse.Error.Code,
			"path", c.Request().URL.Path,
		)
	}
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
