package handlers

import (
	stderrors "errors"
	"net/http"

	"money-tracker/internal/dto"
	"money-tracker/internal/errors"
	"money-tracker/internal/models"
	"money-tracker/internal/services"
	"money-tracker/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	store      services.TransactionStoreInterface
	statistics services.StatisticsServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	store services.TransactionStoreInterface,
	statistics services.StatisticsServiceInterface,
) *TransactionHandler {
	return &TransactionHandler{
		store:      store,
		statistics: statistics,
	}
}

// ListTransactions returns the filtered collection newest first, optionally grouped by day
// @Param type query string false "Transaction type" Enums(Income, Expense)
// @Param category query string false "Transaction category"
// @Param q query string false "Case-insensitive search over title and notes"
// @Param group query string false "Set to 'day' to bucket by calendar day"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := parseTransactionFilters(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	switch c.QueryParam("group") {
	case "":
		transactions := h.statistics.ListTransactions(filters)
		return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
			Transactions: transactions,
			Count:        len(transactions),
		})
	case "day":
		days := h.statistics.GroupTransactionsByDay(filters)
		count := 0
		for _, day := range days {
			count += len(day.Transactions)
		}
		return c.JSON(http.StatusOK, dto.GroupedTransactionsResponse{
			Days:  days,
			Count: count,
		})
	default:
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("group must be 'day' when set"))
	}
}

// GetTransaction retrieves a single transaction
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := getTransactionID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	transaction, ok := h.store.Find(id)
	if !ok {
		return SendError(c, errors.TransactionNotFound)
	}

	return c.JSON(http.StatusOK, transaction)
}

// CreateTransaction records a new transaction with a fresh id
// @Param request body dto.TransactionRequest true "Transaction details"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	transaction := req.ToTransaction(uuid.New())
	if code, err := checkTransaction(transaction); err != nil {
		return SendError(c, code, errors.WithDetails(err.Error()))
	}

	h.store.Add(transaction)

	return c.JSON(http.StatusCreated, transaction)
}

// UpdateTransaction replaces the whole record with the given id.
// Every field is replaced, so a body without a date stamps the record with the current time.
// @Param request body dto.TransactionRequest true "Replacement transaction; date defaults to now when omitted"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := getTransactionID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return sendValidationError(c, err)
	}

	transaction := req.ToTransaction(id)
	if code, err := checkTransaction(transaction); err != nil {
		return SendError(c, code, errors.WithDetails(err.Error()))
	}

	if !h.store.Update(transaction) {
		return SendError(c, errors.TransactionNotFound)
	}

	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes every record with the given id
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := getTransactionID(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidID)
	}

	removed := h.store.Delete(id)
	if removed == 0 {
		return SendError(c, errors.TransactionNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.DeleteTransactionResponse{ID: id, Removed: removed},
		Message: "Transaction deleted",
	})
}

// sendValidationError maps request validation failures to error codes.
// A request whose only problem is the category/type pairing is a mismatch.
func sendValidationError(c echo.Context, err error) error {
	details := validation.Details(err)
	if validation.OnlyTag(err, validation.TagCategoryForType) {
		return SendError(c, errors.TransactionCategoryMismatch, errors.WithDetails(details...))
	}
	return SendError(c, errors.ValidationGeneral, errors.WithDetails(details...))
}

// checkTransaction applies the record's own rules to what is about to be stored
func checkTransaction(transaction models.Transaction) (errors.ErrorCode, error) {
	err := transaction.Validate()
	if err == nil {
		err = transaction.ValidateCategoryForType()
	}

	switch {
	case err == nil:
		return "", nil
	case stderrors.Is(err, models.ErrInvalidAmount):
		return errors.TransactionInvalidAmount, err
	case stderrors.Is(err, models.ErrInvalidTransactionType):
		return errors.TransactionInvalidType, err
	case stderrors.Is(err, models.ErrInvalidCategory):
		return errors.TransactionInvalidCategory, err
	case stderrors.Is(err, models.ErrCategoryNotAllowed):
		return errors.TransactionCategoryMismatch, err
	default:
		return errors.TransactionValidationFailed, err
	}
}
