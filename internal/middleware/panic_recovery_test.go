package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"money-tracker/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

// PanicRecoveryTestSuite defines the test suite for panic recovery middleware
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = NewErrorHandler(prometheus.NewRegistry()).Handle
	s.echo.Use(RequestID(), PanicRecovery())
}

// TestPanicRecoveryTestSuite runs the test suite
func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

// TestPanicRecovery_ReturnsError tests that the panic becomes an error
func (s *PanicRecoveryTestSuite) TestPanicRecovery_ReturnsError() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("test panic")
	})

	err := handler(c)
	s.Require().Error(err)
	s.Contains(err.Error(), "test panic")
}

// TestPanicRecovery_RendersSystemError tests the full server path
func (s *PanicRecoveryTestSuite) TestPanicRecovery_RendersSystemError() {
	s.echo.GET("/boom", func(c echo.Context) error {
		panic("nil map write")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(TraceIDHeader, "trace-from-client")
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusInternalServerError, rec.Code)

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(errors.SystemInternalError), response.Error.Code)
	s.Equal("trace-from-client", response.Error.TraceID)
	s.NotContains(rec.Body.String(), "nil map write")
}

// TestPanicRecovery_NoPanic tests that normal handlers pass through
func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoPanic() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}
