package dto

import (
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	AccountID       string          `json:"account_id" validate:"required,uuid"`
	ToAccountID     *string         `json:"to_account_id,omitempty" validate:"omitempty,uuid"`
	CategoryID      *string         `json:"category_id,omitempty" validate:"omitempty,uuid"`
	TransactionType string          `json:"transaction_type" validate:"required,transaction_type"`
	Amount          decimal.Decimal `json:"amount" validate:"required"`
	Description     string          `json:"description" validate:"max=255"`
	Date            time.Time       `json:"date" validate:"required"`
}

// UpdateTransactionRequest represents the request payload for editing a transaction
type UpdateTransactionRequest struct {
	CategoryID  *string          `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=255"`
	Date        *time.Time       `json:"date,omitempty"`
}

// ListTransactionsParams contains filtering and pagination options for transaction queries
type ListTransactionsParams struct {
	AccountID  string `query:"account_id"`
	CategoryID string `query:"category_id"`
	StartDate  string `query:"start_date"`
	EndDate    string `query:"end_date"`
	Type       string `query:"type"`
	MinAmount  string `query:"min_amount"`
	MaxAmount  string `query:"max_amount"`
	Search     string `query:"search"`
	Offset     int    `query:"offset"`
	Limit      int    `query:"limit"`
}

// Transaction Response DTOs

// TransactionResponse represents a single transaction in API responses
type TransactionResponse struct {
	*models.Transaction
}

// TransactionListResponse represents a paginated list of transactions
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Offset       int                  `json:"offset"`
	Limit        int                  `json:"limit"`
}
