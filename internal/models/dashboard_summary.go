package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardSummary is the computed overview served to the dashboard page.
// Monetary fields are rounded to cents, change percentages to one decimal.
type DashboardSummary struct {
	NetWorth       decimal.Decimal      `json:"net_worth"`
	MonthlyIncome  decimal.Decimal      `json:"monthly_income"`
	MonthlyExpense decimal.Decimal      `json:"monthly_expense"`
	IncomeChange   decimal.Decimal      `json:"income_change"`
	ExpenseChange  decimal.Decimal      `json:"expense_change"`
	AllTimeIncome  decimal.Decimal      `json:"all_time_income"`
	AllTimeExpense decimal.Decimal      `json:"all_time_expense"`
	WeeklyActivity []DailyActivityItem  `json:"weekly_activity"`
	RecentActivity []RecentActivityItem `json:"recent_activity"`
}

// DailyActivityItem is one bar of the weekly income/expense chart.
type DailyActivityItem struct {
	Label   string          `json:"label"`
	Date    time.Time       `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// RecentActivityItem is a transaction joined with its display names.
type RecentActivityItem struct {
	ID              uuid.UUID       `json:"id"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	Date            time.Time       `json:"date"`
	AccountName     string          `json:"account_name"`
	CategoryName    string          `json:"category_name,omitempty"`
}
