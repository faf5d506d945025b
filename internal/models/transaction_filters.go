package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Type       string
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Search     string
	Offset     int
	Limit      int
}
