package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrSharedLimitNameRequired = errors.New("shared limit name is required")
	ErrNegativeSharedLimit     = errors.New("shared limit total must not be negative")
)

// SharedCreditLimit is a pooled credit ceiling shared by several credit
// card accounts, the way issuers spread one limit across sibling cards.
// Member cards reference the pool via Account.SharedCreditLimitID.
type SharedCreditLimit struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	TotalLimit  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_limit"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`

	// Associations
	Accounts []Account `gorm:"foreignKey:SharedCreditLimitID" json:"-"`
}

// BeforeCreate hook for SharedCreditLimit
func (s *SharedCreditLimit) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

// BeforeUpdate hook for SharedCreditLimit
func (s *SharedCreditLimit) BeforeUpdate(tx *gorm.DB) error {
	s.UpdatedAt = time.Now()
	return s.Validate()
}

// Validate validates the shared limit fields
func (s *SharedCreditLimit) Validate() error {
	if s.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if s.Name == "" {
		return ErrSharedLimitNameRequired
	}

	if s.TotalLimit.LessThan(decimal.Zero) {
		return ErrNegativeSharedLimit
	}

	return nil
}

// TableName returns the table name for SharedCreditLimit
func (s *SharedCreditLimit) TableName() string {
	return "shared_credit_limits"
}
