package dto

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// CreateSharedLimitRequest represents the request payload for creating a shared credit limit
type CreateSharedLimitRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	TotalLimit  decimal.Decimal `json:"total_limit" validate:"required"`
	Description string          `json:"description,omitempty" validate:"max=255"`
	AccountIDs  []string        `json:"account_ids,omitempty" validate:"omitempty,dive,uuid"`
}

// UpdateSharedLimitRequest represents the request payload for updating a shared credit limit
type UpdateSharedLimitRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	TotalLimit  *decimal.Decimal `json:"total_limit,omitempty"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=255"`
}

// SharedLimitMemberRequest represents the request payload for attaching an account to a pool
type SharedLimitMemberRequest struct {
	AccountID string `json:"account_id" validate:"required,uuid"`
}

// SharedLimitResponse represents a shared credit limit with its member accounts
type SharedLimitResponse struct {
	*models.SharedCreditLimit
}
