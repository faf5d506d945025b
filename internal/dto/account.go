package dto

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating a new account
type CreateAccountRequest struct {
	Name                    string           `json:"name" validate:"required,min=1,max=100"`
	AccountType             string           `json:"account_type" validate:"required,account_type"`
	Balance                 *decimal.Decimal `json:"balance,omitempty"`
	Currency                string           `json:"currency,omitempty" validate:"omitempty,len=3"`
	CreditLimit             *decimal.Decimal `json:"credit_limit,omitempty"`
	BillingCycleDay         *int             `json:"billing_cycle_day,omitempty" validate:"omitempty,day_of_month"`
	PaymentDueDay           *int             `json:"payment_due_day,omitempty" validate:"omitempty,day_of_month"`
	UtilizationAlertEnabled bool             `json:"utilization_alert_enabled"`
	UtilizationAlertPercent *int             `json:"utilization_alert_percent,omitempty" validate:"omitempty,min=0,max=100"`
	SharedCreditLimitID     *string          `json:"shared_credit_limit_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateAccountRequest represents the request payload for updating an account
// Pointer fields distinguish "not provided" from explicit zero values
type UpdateAccountRequest struct {
	Name                    *string          `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Balance                 *decimal.Decimal `json:"balance,omitempty"`
	CreditLimit             *decimal.Decimal `json:"credit_limit,omitempty"`
	BillingCycleDay         *int             `json:"billing_cycle_day,omitempty" validate:"omitempty,day_of_month"`
	PaymentDueDay           *int             `json:"payment_due_day,omitempty" validate:"omitempty,day_of_month"`
	UtilizationAlertEnabled *bool            `json:"utilization_alert_enabled,omitempty"`
	UtilizationAlertPercent *int             `json:"utilization_alert_percent,omitempty" validate:"omitempty,min=0,max=100"`
	SharedCreditLimitID     *string          `json:"shared_credit_limit_id,omitempty" validate:"omitempty,uuid"`
}

// Account Response DTOs

// AccountResponse represents a single account in API responses
type AccountResponse struct {
	*models.Account
}

// AccountListResponse represents the list of a user's accounts
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
	Total    int              `json:"total"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
