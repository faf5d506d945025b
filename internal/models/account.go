package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeChecking   = "checking"
	AccountTypeSavings    = "savings"
	AccountTypeCredit     = "credit"
	AccountTypeCash       = "cash"
	AccountTypeInvestment = "investment"
	AccountTypeLoan       = "loan"
	AccountTypeOther      = "other"
)

var (
	ErrInvalidAccountType      = errors.New("invalid account type")
	ErrAccountNameRequired     = errors.New("account name is required")
	ErrCreditFieldsOnNonCredit = errors.New("credit fields are only valid on credit accounts")
	ErrInvalidDayOfMonth       = errors.New("day of month must be between 1 and 31")
	ErrInvalidAlertPercent     = errors.New("utilization alert percent must be between 0 and 100")
)

// Account represents a financial account. Balances are signed; for credit
// accounts the stored balance follows the negative-outstanding convention,
// so a balance of -500 means 500 owed.
//
// Credit-specific fields (limit, cycle and due days, alert settings, shared
// limit link) are meaningful only when AccountType is credit; other account
// types carry them as null.
type Account struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	AccountType string          `gorm:"type:varchar(20);not null" json:"account_type"`
	Balance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Archived    bool            `gorm:"not null;default:false" json:"archived"`

	CreditLimit             *decimal.Decimal `gorm:"type:decimal(15,2)" json:"credit_limit,omitempty"`
	BillingCycleDay         *int             `json:"billing_cycle_day,omitempty"`
	PaymentDueDay           *int             `json:"payment_due_day,omitempty"`
	UtilizationAlertEnabled bool             `gorm:"not null;default:false" json:"utilization_alert_enabled"`
	UtilizationAlertPercent *int             `json:"utilization_alert_percent,omitempty"`
	SharedCreditLimitID     *uuid.UUID       `gorm:"type:uuid;index" json:"shared_credit_limit_id,omitempty"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Associations
	SharedCreditLimit *SharedCreditLimit `gorm:"foreignKey:SharedCreditLimitID" json:"-"`
	Transactions      []Transaction      `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	// Set default currency if not provided
	if a.Currency == "" {
		a.Currency = "USD"
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if a.Name == "" {
		return ErrAccountNameRequired
	}

	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	if !a.IsCredit() && a.hasCreditFields() {
		return ErrCreditFieldsOnNonCredit
	}

	if err := validateDayOfMonth(a.BillingCycleDay); err != nil {
		return err
	}
	if err := validateDayOfMonth(a.PaymentDueDay); err != nil {
		return err
	}

	if a.UtilizationAlertPercent != nil {
		if *a.UtilizationAlertPercent < 0 || *a.UtilizationAlertPercent > 100 {
			return ErrInvalidAlertPercent
		}
	}

	return nil
}

// IsCredit returns true for credit card accounts
func (a *Account) IsCredit() bool {
	return a.AccountType == AccountTypeCredit
}

func (a *Account) hasCreditFields() bool {
	return a.CreditLimit != nil ||
		a.BillingCycleDay != nil ||
		a.PaymentDueDay != nil ||
		a.UtilizationAlertEnabled ||
		a.UtilizationAlertPercent != nil ||
		a.SharedCreditLimitID != nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// Helper functions

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCredit,
		AccountTypeCash, AccountTypeInvestment, AccountTypeLoan, AccountTypeOther:
		return true
	default:
		return false
	}
}

func validateDayOfMonth(day *int) error {
	if day == nil {
		return nil
	}
	if *day < 1 || *day > 31 {
		return ErrInvalidDayOfMonth
	}
	return nil
}
