package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(TransactionNotFound, s.traceID)

	s.Equal("TRANSACTION_001", response.Error.Code)
	s.Equal("Transaction not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	details := []string{"amount: must be greater than 0", "title: is required"}
	response := NewErrorResponse(
		ValidationGeneral,
		s.traceID,
		WithMessage("Request body is invalid"),
		WithDetails(details...),
	)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Request body is invalid", response.Error.Message)
	s.Equal(details, response.Error.Details)
}

func (s *ResponseTestSuite) TestWithDetails_LastInvocationWins() {
	response := NewErrorResponse(ValidationGeneral, s.traceID,
		WithDetails("first"),
		WithDetails("second", "third"),
	)
	s.Equal([]string{"second", "third"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList() {
	response := NewValidationErrorFromList([]string{"date: invalid"}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{"date: invalid"}, response.Error.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	internal := errors.New("open /var/data/transactions.json: permission denied")

	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "permission denied")
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapStorageError() {
	internal := errors.New("database is locked")

	response, err := WrapStorageError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal(string(SystemStorageError), response.Error.Code)
	s.NotContains(response.Error.Message, "locked")
	s.Equal(http.StatusServiceUnavailable, response.GetHTTPStatus())
	s.True(response.IsServerError())
}

func (s *ResponseTestSuite) TestJSON_MatchesAPIShape() {
	response := NewErrorResponse(TransactionCategoryMismatch, s.traceID, WithDetails("category: Salary"))

	data, err := json.Marshal(response)
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("TRANSACTION_006", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
	s.Equal([]interface{}{"category: Salary"}, decoded["error"]["details"])
}

func (s *ResponseTestSuite) TestJSON_EmptyDetailsOmitted() {
	data, err := json.Marshal(NewErrorResponse(SystemInternalError, s.traceID))
	s.Require().NoError(err)
	s.NotContains(string(data), "details")
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidDate, http.StatusBadRequest},
		{ValidationInvalidID, http.StatusBadRequest},
		{TransactionInvalidAmount, http.StatusBadRequest},
		{TransactionNotFound, http.StatusNotFound},
		{TransactionInvalidType, http.StatusUnprocessableEntity},
		{TransactionInvalidCategory, http.StatusUnprocessableEntity},
		{TransactionCategoryMismatch, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemStorageError, http.StatusServiceUnavailable},
		{ErrorCode("UNKNOWN"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestIsServerError() {
	s.False(NewErrorResponse(TransactionNotFound, s.traceID).IsServerError())
	s.False(NewErrorResponse(ValidationGeneral, s.traceID).IsServerError())
	s.True(NewErrorResponse(SystemUnexpectedError, s.traceID).IsServerError())
	s.True(NewErrorResponse(SystemStorageError, s.traceID).IsServerError())
}

func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	response := NewErrorResponse(TransactionNotFound, s.traceID)
	s.Equal("[TRANSACTION_001] Transaction not found (trace: "+s.traceID+")", response.String())
}
