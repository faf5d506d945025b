package handlers

import (
	pkgerrors "errors"
	"net/http"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction records a new transaction
// @Summary Record a transaction
// @Description Record an income, expense, or transfer. Amounts are always positive; the type carries the direction. Transfers require to_account_id.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse "Transaction recorded successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body, TRANSACTION_002 - Non-positive amount, TRANSACTION_004 - Transfer to same account"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found, CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.CreateTransaction(userID, &req)
	if err != nil {
		return h.mapTransactionErr(c, err)
	}

	return c.JSON(http.StatusCreated, dto.TransactionResponse{Transaction: transaction})
}

// ListTransactions retrieves the user's transactions with filters and pagination
// @Summary List transactions
// @Description Retrieve transactions for the authenticated user with optional account, category, type, date range, amount range, and description filters
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param account_id query string false "Filter by account ID (UUID)"
// @Param category_id query string false "Filter by category ID (UUID)"
// @Param type query string false "Filter by type" Enums(income, expense, transfer)
// @Param start_date query string false "Start of date range (RFC 3339)"
// @Param end_date query string false "End of date range (RFC 3339)"
// @Param min_amount query string false "Minimum amount"
// @Param max_amount query string false "Maximum amount"
// @Param search query string false "Search within descriptions"
// @Param offset query int false "Pagination offset" default(0)
// @Param limit query int false "Number of results (max 100)" default(20)
// @Success 200 {object} dto.TransactionListResponse "Paginated transactions"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid filter format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var params dto.ListTransactionsParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	filters, err := buildTransactionFilters(params)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	transactions, total, err := h.transactionService.ListTransactions(userID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Offset:       filters.Offset,
		Limit:        filters.Limit,
	})
}

// GetTransaction retrieves a single transaction by ID
// @Summary Get transaction by ID
// @Description Retrieve a specific transaction belonging to the authenticated user
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param transactionId path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Transaction details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{transactionId} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionService.GetTransaction(transactionID, userID)
	if err != nil {
		return h.mapTransactionErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{Transaction: transaction})
}

// UpdateTransaction edits a transaction's category, amount, description, or date
// @Summary Update transaction
// @Description Edit a transaction. Type and accounts are immutable; delete and re-record to move a transaction between accounts. Amount changes re-adjust balances.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param transactionId path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body, TRANSACTION_002 - Non-positive amount"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found, CATEGORY_001 - Category not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{transactionId} [patch]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.UpdateTransaction(transactionID, userID, &req)
	if err != nil {
		return h.mapTransactionErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionResponse{Transaction: transaction})
}

// DeleteTransaction removes a transaction and reverses its balance effect
// @Summary Delete transaction
// @Description Delete a transaction. The balance effect on the involved accounts is reversed.
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param transactionId path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Transaction deleted successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{transactionId} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.DeleteTransaction(transactionID, userID); err != nil {
		return h.mapTransactionErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}

// buildTransactionFilters converts raw query params into typed filters
func buildTransactionFilters(params dto.ListTransactionsParams) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		Type:   params.Type,
		Search: params.Search,
		Offset: params.Offset,
		Limit:  params.Limit,
	}

	if filters.Offset < 0 {
		filters.Offset = 0
	}
	if filters.Limit <= 0 {
		filters.Limit = defaultPageLimit
	}
	if filters.Limit > maxPageLimit {
		filters.Limit = maxPageLimit
	}

	if params.AccountID != "" {
		accountID, err := uuid.Parse(params.AccountID)
		if err != nil {
			return filters, pkgerrors.New("invalid account_id")
		}
		filters.AccountID = &accountID
	}

	if params.CategoryID != "" {
		categoryID, err := uuid.Parse(params.CategoryID)
		if err != nil {
			return filters, pkgerrors.New("invalid category_id")
		}
		filters.CategoryID = &categoryID
	}

	if params.StartDate != "" {
		startDate, err := time.Parse(time.RFC3339, params.StartDate)
		if err != nil {
			return filters, pkgerrors.New("invalid start_date, expected RFC 3339")
		}
		filters.StartDate = &startDate
	}

	if params.EndDate != "" {
		endDate, err := time.Parse(time.RFC3339, params.EndDate)
		if err != nil {
			return filters, pkgerrors.New("invalid end_date, expected RFC 3339")
		}
		filters.EndDate = &endDate
	}

	if params.MinAmount != "" {
		minAmount, err := decimal.NewFromString(params.MinAmount)
		if err != nil {
			return filters, pkgerrors.New("invalid min_amount")
		}
		filters.MinAmount = &minAmount
	}

	if params.MaxAmount != "" {
		maxAmount, err := decimal.NewFromString(params.MaxAmount)
		if err != nil {
			return filters, pkgerrors.New("invalid max_amount")
		}
		filters.MaxAmount = &maxAmount
	}

	return filters, nil
}

func (h *TransactionHandler) mapTransactionErr(c echo.Context, err error) error {
	switch {
	case pkgerrors.Is(err, services.ErrTransactionNotFound):
		return SendError(c, errors.TransactionNotFound)
	case pkgerrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case pkgerrors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, errors.CategoryNotFound)
	case pkgerrors.Is(err, models.ErrInvalidAmount):
		return SendError(c, errors.TransactionInvalidAmount)
	case pkgerrors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, errors.TransactionInvalidType)
	case pkgerrors.Is(err, models.ErrTransferToSameAccount):
		return SendError(c, errors.TransactionSameAccount)
	case pkgerrors.Is(err, models.ErrTransferTargetRequired):
		return SendError(c, errors.TransactionMissingTarget)
	default:
		return SendSystemError(c, err)
	}
}
