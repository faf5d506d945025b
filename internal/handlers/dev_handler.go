package handlers

import (
	"net/http"

	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints must only be mounted in non-production environments
type DevHandler struct {
	tokenService services.TokenServiceInterface
	demoSeeder   services.DemoSeederInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(tokenService services.TokenServiceInterface, demoSeeder services.DemoSeederInterface) *DevHandler {
	return &DevHandler{
		tokenService: tokenService,
		demoSeeder:   demoSeeder,
	}
}

// devTokenRequest is the payload for minting a development token
type devTokenRequest struct {
	UserID string `json:"user_id,omitempty" validate:"omitempty,uuid"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
}

// IssueToken mints a development JWT
//
// Method: POST /api/v1/dev/token
// Environment: Development only
//
// In deployed environments tokens come from the external identity provider;
// this endpoint exists so the API can be exercised locally without one.
// When user_id is omitted a fresh UUID is generated.
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req devTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	userID := uuid.New()
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid user ID"))
		}
		userID = parsed
	}

	email := req.Email
	if email == "" {
		email = "dev@localhost"
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(userID, email)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token":      token,
		"user_id":    userID,
		"expires_at": expiresAt,
	})
}

// SeedDemoData populates the authenticated user with realistic sample data
//
// Method: POST /api/v1/dev/seed
// Authentication: Required
// Environment: Development only
//
// Seeding is idempotent: a user that already has accounts is left untouched.
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.demoSeeder.Seed(userID); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "demo data seeded",
		"user_id": userID,
	})
}
