package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"money-tracker/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingChecker struct{}

func (failingChecker) HealthCheck() error { return errors.New("connection refused") }

func runHealthCheck(t *testing.T, handler *HealthCheckHandler) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	require.NoError(t, handler.HealthCheck(c))
	return rec
}

func TestHealthCheck_NoChecker(t *testing.T) {
	rec := runHealthCheck(t, NewHealthCheckHandler("json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "json", body["storage"])
}

func TestHealthCheck_Database(t *testing.T) {
	db := database.SetupTestDB(t)

	rec := runHealthCheck(t, NewHealthCheckHandler("sqlite", db))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthCheck_Unavailable(t *testing.T) {
	rec := runHealthCheck(t, NewHealthCheckHandler("postgres", failingChecker{}))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SYSTEM_002", body.Error.Code)
	assert.Equal(t, []string{"Storage backend unreachable"}, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
