package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// RequestIDTestSuite defines the test suite for request ID middleware
type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

// TestRequestIDTestSuite runs the test suite
func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) run(header string) (string, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(TraceIDHeader, header)
	}
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	var seen string
	handler := RequestID()(func(c echo.Context) error {
		seen = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})
	s.Require().NoError(handler(c))
	return seen, rec
}

// TestRequestID_GeneratesTraceID tests that middleware generates a trace ID
func (s *RequestIDTestSuite) TestRequestID_GeneratesTraceID() {
	traceID, rec := s.run("")

	_, err := uuid.Parse(traceID)
	s.NoError(err)
	s.Equal(traceID, rec.Header().Get(TraceIDHeader))
}

// TestRequestID_UsesExistingTraceID tests that a client trace ID is kept
func (s *RequestIDTestSuite) TestRequestID_UsesExistingTraceID() {
	traceID, rec := s.run("existing-trace-id")

	s.Equal("existing-trace-id", traceID)
	s.Equal("existing-trace-id", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestRequestID_ReplacesOversizedTraceID() {
	traceID, _ := s.run(strings.Repeat("x", maxTraceIDLength+1))

	_, err := uuid.Parse(traceID)
	s.NoError(err)
}

func (s *RequestIDTestSuite) TestGetTraceID_Missing() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	s.Empty(GetTraceID(c))
}
