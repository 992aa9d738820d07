package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

var allCodes = []ErrorCode{
	ValidationGeneral,
	ValidationRequiredField,
	ValidationInvalidFormat,
	ValidationOutOfRange,
	ValidationInvalidDate,
	ValidationInvalidID,
	TransactionNotFound,
	TransactionInvalidAmount,
	TransactionValidationFailed,
	TransactionInvalidType,
	TransactionInvalidCategory,
	TransactionCategoryMismatch,
	SystemInternalError,
	SystemStorageError,
	SystemServiceUnavailable,
	SystemConfigurationError,
	SystemUnexpectedError,
	SystemRateLimitExceeded,
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Transaction Not Found",
			code:     TransactionNotFound,
			expected: "Transaction not found",
		},
		{
			name:     "Category Mismatch",
			code:     TransactionCategoryMismatch,
			expected: "Category is not allowed for this transaction type",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for unknown codes
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("UNKNOWN_999")))
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("")))
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
}

// TestErrorCodeConstants_Format ensures all error codes follow naming convention
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	for _, code := range allCodes {
		prefix, _, found := strings.Cut(string(code), "_")
		s.True(found, "code %s has no prefix", code)
		s.Contains([]string{"VALIDATION", "TRANSACTION", "SYSTEM"}, prefix)
	}
}

// TestAllErrorCodesHaveMessages ensures every error code has a message
func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allCodes {
		s.Run(string(code), func() {
			message := GetErrorMessage(code)
			s.NotEmpty(message)
			s.NotEqual("An error occurred", message, "Error code %s should have a specific message", code)
		})
	}
}
