package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrTransferToSameAccount  = errors.New("transfer source and destination must differ")
	ErrTransferTargetRequired = errors.New("transfer target account is required")
)

// Transaction represents a single income, expense, or transfer entry.
// Amounts are always positive; the type carries the direction. Transfers
// name a destination account and never count toward income or spending.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	ToAccountID     *uuid.UUID      `gorm:"type:uuid;index" json:"to_account_id,omitempty"`
	CategoryID      *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	TransactionType string          `gorm:"type:varchar(20);not null" json:"transaction_type"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	Date            time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`

	// Associations
	Account   Account   `gorm:"foreignKey:AccountID" json:"-"`
	ToAccount *Account  `gorm:"foreignKey:ToAccountID" json:"-"`
	Category  *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.Date.IsZero() {
		t.Date = now
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if t.IsTransfer() {
		if t.ToAccountID == nil {
			return ErrTransferTargetRequired
		}
		if *t.ToAccountID == t.AccountID {
			return ErrTransferToSameAccount
		}
	} else if t.ToAccountID != nil {
		return errors.New("to_account_id is only valid on transfers")
	}

	return nil
}

// IsTransfer returns true for transfer transactions
func (t *Transaction) IsTransfer() bool {
	return t.TransactionType == TransactionTypeTransfer
}

// IsIncome returns true for income transactions
func (t *Transaction) IsIncome() bool {
	return t.TransactionType == TransactionTypeIncome
}

// IsExpense returns true for expense transactions
func (t *Transaction) IsExpense() bool {
	return t.TransactionType == TransactionTypeExpense
}

// BalanceDelta returns the signed effect of this transaction on the source
// account balance: income adds, expense and transfer-out subtract.
func (t *Transaction) BalanceDelta() decimal.Decimal {
	if t.IsIncome() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// Helper functions

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}
