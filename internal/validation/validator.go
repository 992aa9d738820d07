package validation

import (
	"reflect"
	"strings"
	"sync"

	"money-tracker/internal/dto"
	"money-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxAmountPlaces is the number of decimal places an amount may carry
const maxAmountPlaces = 2

// TagCategoryForType is reported when a category does not belong to the transaction type
const TagCategoryForType = "category_for_type"

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// Decimals are validated through their canonical string form
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("transaction_amount", validateTransactionAmount)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("transaction_category", validateTransactionCategory)
	_ = v.RegisterValidation("not_blank", validateNotBlank)

	v.RegisterStructValidation(validateCategoryForType, dto.TransactionRequest{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func parseAmount(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if fl.Field().Kind() != reflect.String {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}

// validateTransactionAmount validates that a transaction amount is positive and has at most 2 decimal places
func validateTransactionAmount(fl validator.FieldLevel) bool {
	amount, ok := parseAmount(fl)
	if !ok || !amount.IsPositive() {
		return false
	}
	return amount.Equal(amount.Truncate(maxAmountPlaces))
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(models.TransactionType(fl.Field().String()))
}

func validateTransactionCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(models.TransactionCategory(fl.Field().String()))
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateCategoryForType enforces the income/expense category partition.
// Unknown tags are left to the field rules.
func validateCategoryForType(sl validator.StructLevel) {
	req := sl.Current().Interface().(dto.TransactionRequest)

	transactionType := models.TransactionType(req.Type)
	category := models.TransactionCategory(req.Category)
	if !models.IsValidTransactionType(transactionType) || !models.IsValidCategory(category) {
		return
	}

	if !models.IsCategoryAllowedForType(transactionType, category) {
		sl.ReportError(req.Category, "category", "Category", TagCategoryForType, req.Type)
	}
}
