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

// SharedLimitHandler handles shared credit limit pool HTTP requests
type SharedLimitHandler struct {
	sharedLimitService services.SharedLimitServiceInterface
}

// NewSharedLimitHandler creates a new shared limit handler
func NewSharedLimitHandler(sharedLimitService services.SharedLimitServiceInterface) *SharedLimitHandler {
	return &SharedLimitHandler{sharedLimitService: sharedLimitService}
}

// CreateSharedLimit creates a credit limit pool
// @Summary Create a shared credit limit
// @Description Create a pool that shares one credit limit across several credit card accounts, optionally attaching initial members
// @Tags SharedLimits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSharedLimitRequest true "Pool details"
// @Success 201 {object} dto.SharedLimitResponse "Pool created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body, SHARED_LIMIT_002 - Negative total limit"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Member account not found"
// @Failure 422 {object} errors.ErrorResponse "SHARED_LIMIT_003 - Member is not a credit card"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /shared-limits [post]
func (h *SharedLimitHandler) CreateSharedLimit(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateSharedLimitRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	limit, err := h.sharedLimitService.CreateSharedLimit(userID, &req)
	if err != nil {
		return h.mapSharedLimitErr(c, err)
	}

	return c.JSON(http.StatusCreated, dto.SharedLimitResponse{SharedCreditLimit: limit})
}

// GetUserSharedLimits lists the user's pools with computed utilization
// @Summary List shared credit limits
// @Description Retrieve every pool the authenticated user owns, each with pooled outstanding, available credit, and utilization
// @Tags SharedLimits
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.SharedLimitOverview "List of pools with stats"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /shared-limits [get]
func (h *SharedLimitHandler) GetUserSharedLimits(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	overviews, err := h.sharedLimitService.GetUserSharedLimits(userID)
	if err != nil {
		return h.mapSharedLimitErr(c, err)
	}

	return c.JSON(http.StatusOK, overviews)
}

// GetSharedLimit retrieves one pool with computed utilization
// @Summary Get shared credit limit by ID
// @Description Retrieve a pool with its member cards, pooled outstanding, available credit, and utilization
// @Tags SharedLimits
// @Security BearerAuth
// @Produce json
// @Param limitId path string true "Pool ID (UUID)"
// @Success 200 {object} models.SharedLimitOverview "Pool with stats"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid pool ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "SHARED_LIMIT_001 - Pool not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /shared-limits/{limitId} [get]
func (h *SharedLimitHandler) GetSharedLimit(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	limitID, err := uuid.Parse(c.Param("limitId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid shared limit ID"))
	}

	overview, err := h.sharedLimitService.GetSharedLimit(limitID, userID)
	if err != nil {
		return h.mapSharedLimitErr(c, err)
	}

	return c.JSON(http.StatusOK, overview)
}

// UpdateSharedLimit applies a partial update to a pool
// @Summary Update shared credit limit
// @Description Update a pool's name, total limit, or description. Only the fields present in the request body are changed.
// @Tags SharedLimits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param limitId path string true "Pool ID (UUID)"
// @Param request body dto.UpdateSharedLimitRequest true "Fields to update"
// @Success 200 {object} dto.SharedLimitResponse "Updated pool"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body, SHARED_LIMIT_002 - Negative total limit"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "SHARED_LIMIT_001 - Pool not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /shared-limits/{limitId} [patch]
func (h *SharedLimitHandler) UpdateSharedLimit(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	limitID, err := uuid.Parse(c.Param("limitId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid shared limit ID"))
	}

	var req dto.UpdateSharedLimitRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	limit, err := h.sharedLimitService.UpdateSharedLimit(limitID, userID, &req)
	if err != nil {
		return h.mapSharedLimitErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.SharedLimitResponse{SharedCreditLimit: limit})
}

// DeleteSharedLimit removes a pool
// @Summary Delete shared credit limit
// @Description Delete a pool. Member cards survive the deletion with their pool reference cleared.
// @Tags SharedLimits
// @Security BearerAuth
// @Produce json
// @Param limitId path string true "Pool ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Pool deleted successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid pool ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "SHARED_LIMIT_001 - Pool not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /shared-limits/{limitId} [delete]
func (h *SharedLimitHandler) DeleteSharedLimit(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	limitID, err := uuid.Parse(c.Param("limitId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid shared limit ID"))
	}

	if err := h.sharedLimitService.DeleteSharedLimit(limitID, userID); err != nil {
		return h.mapSharedLimitErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Shared limit deleted successfully"})
}

// AttachAccount joins a credit card account to a pool
// @Summary Attach account to pool
// @Description Attach a credit card account to a shared credit limit pool. Only credit accounts can join.
// @Tags SharedLimits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param limitId path string true "Pool ID (UUID)"
// @Param request body dto.SharedLimitMemberRequest true "Account to attach"
// @Success 200 {object} dto.MessageResponse "Account attached successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or pool ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "SHARED_LIMIT_001 - Pool not found, ACCOUNT_001 - Account not found"
// @Failure 422 {object} errors.ErrorResponse "SHARED_LIMIT_003 - Account is not a credit card"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /shared-limits/{limitId}/accounts [post]
func (h *SharedLimitHandler) AttachAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	limitID, err := uuid.Parse(c.Param("limitId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid shared limit ID"))
	}

	var req dto.SharedLimitMemberRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	if err := h.sharedLimitService.AttachAccount(limitID, accountID, userID); err != nil {
		return h.mapSharedLimitErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account attached to shared limit"})
}

// DetachAccount removes a card from a pool
// @Summary Detach account from pool
// @Description Detach a credit card account from a shared credit limit pool. The account itself is untouched.
// @Tags SharedLimits
// @Security BearerAuth
// @Produce json
// @Param limitId path string true "Pool ID (UUID)"
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.MessageResponse "Account detached successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid pool or account ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "SHARED_LIMIT_001 - Pool not found or account not a member, ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /shared-limits/{limitId}/accounts/{accountId} [delete]
func (h *SharedLimitHandler) DetachAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	limitID, err := uuid.Parse(c.Param("limitId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid shared limit ID"))
	}

	accountID, err := uuid.Parse(c.Param("accountId"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	if err := h.sharedLimitService.DetachAccount(limitID, accountID, userID); err != nil {
		return h.mapSharedLimitErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account detached from shared limit"})
}

func (h *SharedLimitHandler) mapSharedLimitErr(c echo.Context, err error) error {
	switch {
	case pkgerrors.Is(err, services.ErrSharedLimitNotFound):
		return SendError(c, errors.SharedLimitNotFound)
	case pkgerrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case pkgerrors.Is(err, services.ErrSharedLimitMemberInvalid):
		return SendError(c, errors.SharedLimitMemberInvalid)
	case pkgerrors.Is(err, services.ErrNegativeSharedLimit),
		pkgerrors.Is(err, models.ErrNegativeSharedLimit):
		return SendError(c, errors.SharedLimitInvalidAmount)
	case pkgerrors.Is(err, models.ErrSharedLimitNameRequired):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
