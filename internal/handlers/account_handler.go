package handlers

import (
	pkgerrors "errors"
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService   services.AccountServiceInterface
	metricsCollector services.MetricsRecorderInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface, metricsCollector services.MetricsRecorderInterface) *AccountHandler {
	return &AccountHandler{
		accountService:   accountService,
		metricsCollector: metricsCollector,
	}
}

// CreateAccount creates a new account for the authenticated user
// @Summary Create a new account
// @Description Create a checking, savings, cash, investment, or credit account. Credit fields are only accepted on credit accounts.
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account creation details"
// @Success 201 {object} dto.AccountResponse "Account created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or validation error"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "SHARED_LIMIT_001 - Shared credit limit not found"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_003 - Credit fields on a non-credit account"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.CreateAccount(userID, &req)
	if err != nil {
		return h.mapAccountErr(c, err)
	}

	if h.metricsCollector != nil {
		h.metricsCollector.IncrementCounter("account_created", map[string]string{
			"account_type": account.AccountType,
		})
	}

	return c.JSON(http.StatusCreated, dto.AccountResponse{Account: account})
}

// GetUserAccounts retrieves all accounts for the authenticated user
// @Summary List accounts
// @Description Retrieve all accounts belonging to the authenticated user. Archived accounts are excluded unless include_archived=true.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param include_archived query bool false "Include archived accounts" default(false)
// @Success 200 {object} dto.AccountListResponse "List of user's accounts"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) GetUserAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	includeArchived := c.QueryParam("include_archived") == "true"

	accounts, err := h.accountService.GetUserAccounts(userID, includeArchived)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}

// GetAccount retrieves a specific account by ID
// @Summary Get account by ID
// @Description Retrieve detailed information about a specific account belonging to the authenticated user
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountResponse "Account details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	account, err := h.accountService.GetAccount(accountID, userID)
	if err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountResponse{Account: account})
}

// UpdateAccount applies a partial update to an account
// @Summary Update account
// @Description Update account fields. Only the fields present in the request body are changed. Account type is immutable.
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse "Updated account details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or account ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_003 - Credit fields on a non-credit account"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [patch]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	account, err := h.accountService.UpdateAccount(accountID, userID, &req)
	if err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountResponse{Account: account})
}

// ArchiveAccount hides an account from active listings
// @Summary Archive account
// @Description Archive an account. Archived accounts keep their transaction history and can be listed with include_archived=true.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Account archived successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId}/archive [post]
func (h *AccountHandler) ArchiveAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	if err := h.accountService.ArchiveAccount(accountID, userID); err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account archived successfully"})
}

// UnarchiveAccount returns an archived account to active listings
// @Summary Unarchive account
// @Description Return an archived account to active listings.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Account unarchived successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId}/unarchive [post]
func (h *AccountHandler) UnarchiveAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	if err := h.accountService.UnarchiveAccount(accountID, userID); err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account unarchived successfully"})
}

// DeleteAccount permanently deletes an account
// @Summary Delete account
// @Description Permanently delete an account. Refused when the account has transactions; archive it instead.
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Account deleted successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 409 {object} errors.ErrorResponse "ACCOUNT_004 - Account has transactions"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	if err := h.accountService.DeleteAccount(accountID, userID); err != nil {
		return h.mapAccountErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted successfully"})
}

func (h *AccountHandler) mapAccountErr(c echo.Context, err error) error {
	switch {
	case pkgerrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case pkgerrors.Is(err, services.ErrAccountInUse):
		return SendError(c, errors.AccountHasTransactions)
	case pkgerrors.Is(err, services.ErrSharedLimitNotFound):
		return SendError(c, errors.SharedLimitNotFound)
	case pkgerrors.Is(err, services.ErrSharedLimitMemberInvalid):
		return SendError(c, errors.SharedLimitMemberInvalid)
	case pkgerrors.Is(err, models.ErrCreditFieldsOnNonCredit):
		return SendError(c, errors.AccountCreditFieldsMisuse)
	case pkgerrors.Is(err, models.ErrInvalidAccountType):
		return SendError(c, errors.AccountInvalidType)
	case pkgerrors.Is(err, models.ErrAccountNameRequired),
		pkgerrors.Is(err, models.ErrInvalidDayOfMonth),
		pkgerrors.Is(err, models.ErrInvalidAlertPercent):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
