package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditCardOverview is the computed state of one credit card account.
type CreditCardOverview struct {
	AccountID               uuid.UUID        `json:"account_id"`
	Name                    string           `json:"name"`
	Outstanding             decimal.Decimal  `json:"outstanding"`
	CreditLimit             *decimal.Decimal `json:"credit_limit,omitempty"`
	AvailableCredit         decimal.Decimal  `json:"available_credit"`
	Utilization             int              `json:"utilization"`
	Status                  string           `json:"status"`
	DaysUntilDue            *int             `json:"days_until_due,omitempty"`
	SharedCreditLimitID     *uuid.UUID       `json:"shared_credit_limit_id,omitempty"`
	UtilizationAlertEnabled bool             `json:"utilization_alert_enabled"`
	UtilizationAlertPercent *int             `json:"utilization_alert_percent,omitempty"`
}

// SharedLimitOverview is the computed state of a shared credit limit pool.
type SharedLimitOverview struct {
	ID               uuid.UUID              `json:"id"`
	Name             string                 `json:"name"`
	TotalLimit       decimal.Decimal        `json:"total_limit"`
	TotalOutstanding decimal.Decimal        `json:"total_outstanding"`
	AvailableCredit  decimal.Decimal        `json:"available_credit"`
	Utilization      int                    `json:"utilization"`
	LinkedAccounts   []LinkedAccountSummary `json:"linked_accounts"`
}

// LinkedAccountSummary is one member card inside a shared limit pool.
type LinkedAccountSummary struct {
	AccountID   uuid.UUID       `json:"account_id"`
	Name        string          `json:"name"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// CreditSummary aggregates every credit card a user holds.
type CreditSummary struct {
	TotalLimit         decimal.Decimal       `json:"total_limit"`
	TotalOutstanding   decimal.Decimal       `json:"total_outstanding"`
	TotalAvailable     decimal.Decimal       `json:"total_available"`
	OverallUtilization int                   `json:"overall_utilization"`
	Cards              []CreditCardOverview  `json:"cards"`
	SharedLimits       []SharedLimitOverview `json:"shared_limits"`
}

// CreditAlertsOverview groups the actionable credit warnings.
type CreditAlertsOverview struct {
	HighUtilization []CreditCardOverview `json:"high_utilization"`
	UpcomingDue     []CreditCardOverview `json:"upcoming_due"`
}
