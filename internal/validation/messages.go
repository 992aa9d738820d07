package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "not_blank":
		return "must not be blank"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "transaction_amount":
		return "must be a valid transaction amount (positive, up to 2 decimal places)"
	case "transaction_type":
		return "must be a valid transaction type (Income, Expense)"
	case "transaction_category":
		return "must be a valid transaction category"
	case TagCategoryForType:
		return fmt.Sprintf("is not allowed for %s transactions", fe.Param())
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

// Details flattens validation errors into "field: message" strings.
// Any other error is returned as its message.
func Details(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), FormatFieldError(fe)))
	}
	return details
}

// OnlyTag reports whether err holds validation failures and all of them carry tag
func OnlyTag(err error, tag string) bool {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return false
	}

	for _, fe := range validationErrs {
		if fe.Tag() != tag {
			return false
		}
	}
	return true
}
