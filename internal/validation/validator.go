package validation

import (
	"reflect"
	"strings"

	"fintrack/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("category_type", validateCategoryType)
	_ = v.RegisterValidation("day_of_month", validateDayOfMonth)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateAccountType validates that account type is one of the allowed types
func validateAccountType(fl validator.FieldLevel) bool {
	return models.IsValidAccountType(strings.ToLower(fl.Field().String()))
}

// validateTransactionType validates that transaction type is one of the allowed types
func validateTransactionType(fl validator.FieldLevel) bool {
	txType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		string(models.TransactionTypeIncome):   true,
		string(models.TransactionTypeExpense):  true,
		string(models.TransactionTypeTransfer): true,
	}
	return validTypes[txType]
}

// validateCategoryType validates that category type is income or expense
func validateCategoryType(fl validator.FieldLevel) bool {
	catType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		string(models.CategoryTypeIncome):  true,
		string(models.CategoryTypeExpense): true,
	}
	return validTypes[catType]
}

// validateDayOfMonth validates that a billing cycle or due day falls in 1-31
func validateDayOfMonth(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 1 && day <= 31
}
