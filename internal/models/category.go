package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"
)

var (
	ErrInvalidCategoryType  = errors.New("invalid category type")
	ErrCategoryNameRequired = errors.New("category name is required")
)

// Category labels transactions for reporting. Names are unique per user
// and type; IsSystem marks the seeded defaults that cannot be deleted.
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name_type" json:"user_id"`
	Name      string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_categories_user_name_type" json:"name"`
	Type      string         `gorm:"type:varchar(10);not null;uniqueIndex:idx_categories_user_name_type" json:"type"`
	Icon      string         `gorm:"type:varchar(50)" json:"icon,omitempty"`
	Color     string         `gorm:"type:varchar(7)" json:"color,omitempty"`
	IsSystem  bool           `gorm:"not null;default:false" json:"is_system"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// BeforeUpdate hook for Category
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if c.Name == "" {
		return ErrCategoryNameRequired
	}

	if !IsValidCategoryType(c.Type) {
		return ErrInvalidCategoryType
	}

	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// IsValidCategoryType checks if the category type is valid
func IsValidCategoryType(categoryType string) bool {
	switch categoryType {
	case CategoryTypeIncome, CategoryTypeExpense:
		return true
	default:
		return false
	}
}

// DefaultCategorySpec describes one seeded category.
type DefaultCategorySpec struct {
	Name  string
	Type  string
	Icon  string
	Color string
}

// DefaultCategories returns the system categories seeded for every new user.
func DefaultCategories() []DefaultCategorySpec {
	return []DefaultCategorySpec{
		{Name: "Salary", Type: CategoryTypeIncome, Icon: "briefcase", Color: "#16a34a"},
		{Name: "Interest", Type: CategoryTypeIncome, Icon: "percent", Color: "#0d9488"},
		{Name: "Other Income", Type: CategoryTypeIncome, Icon: "plus-circle", Color: "#2563eb"},
		{Name: "Groceries", Type: CategoryTypeExpense, Icon: "shopping-cart", Color: "#ea580c"},
		{Name: "Dining", Type: CategoryTypeExpense, Icon: "utensils", Color: "#db2777"},
		{Name: "Transportation", Type: CategoryTypeExpense, Icon: "car", Color: "#7c3aed"},
		{Name: "Housing", Type: CategoryTypeExpense, Icon: "home", Color: "#0891b2"},
		{Name: "Utilities", Type: CategoryTypeExpense, Icon: "zap", Color: "#ca8a04"},
		{Name: "Entertainment", Type: CategoryTypeExpense, Icon: "film", Color: "#9333ea"},
		{Name: "Healthcare", Type: CategoryTypeExpense, Icon: "heart-pulse", Color: "#dc2626"},
		{Name: "Other", Type: CategoryTypeExpense, Icon: "circle", Color: "#6b7280"},
	}
}
