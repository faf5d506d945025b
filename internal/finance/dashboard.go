package finance

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"

	// AccountTypeCredit marks the one account type whose balance is debt.
	AccountTypeCredit = "credit"

	WeeklyActivityDays  = 7
	RecentActivityCount = 5
	weekdayLabelFormat  = "Mon"
)

// AccountRecord is the engine's view of an account for net worth purposes.
type AccountRecord struct {
	ID          uuid.UUID
	AccountType string
	Balance     decimal.Decimal
}

// TransactionRecord is the engine's view of a transaction.
type TransactionRecord struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	CategoryID *uuid.UUID
	Type       string
	Amount     decimal.Decimal
	Date       time.Time
}

// PeriodTotals partitions a period's transaction amounts by type.
type PeriodTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DayActivity is one bucket of the 7-day activity series.
type DayActivity struct {
	Label   string          `json:"label"`
	Date    time.Time       `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DashboardSnapshot is the point-in-time financial summary for one user.
// Monetary fields are pre-rounded to 2 decimals; change percentages carry
// 1 decimal. Computed, never persisted.
type DashboardSnapshot struct {
	NetWorth       decimal.Decimal     `json:"net_worth"`
	MonthlyIncome  decimal.Decimal     `json:"monthly_income"`
	MonthlyExpense decimal.Decimal     `json:"monthly_expense"`
	IncomeChange   decimal.Decimal     `json:"income_change"`
	ExpenseChange  decimal.Decimal     `json:"expense_change"`
	AllTimeIncome  decimal.Decimal     `json:"all_time_income"`
	AllTimeExpense decimal.Decimal     `json:"all_time_expense"`
	WeeklyActivity []DayActivity       `json:"weekly_activity"`
	Recent         []TransactionRecord `json:"-"`
}

// NetWorth sums account balances. Credit accounts always subtract their
// absolute balance: debt reduces net worth regardless of the sign convention
// the balance was stored with.
func NetWorth(accounts []AccountRecord) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		if account.AccountType == AccountTypeCredit {
			total = total.Sub(account.Balance.Abs())
			continue
		}
		total = total.Add(account.Balance)
	}
	return RoundMoney(total)
}

// MonthRange returns the first and last instants of now's calendar month.
func MonthRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// PreviousMonthRange returns the first and last instants of the calendar
// month before now's.
func PreviousMonthRange(now time.Time) (time.Time, time.Time) {
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start := currentStart.AddDate(0, -1, 0)
	end := currentStart.Add(-time.Nanosecond)
	return start, end
}

// SumPeriod totals income and expense amounts for transactions dated within
// [from, to] inclusive. Transfers are neither income nor expense.
func SumPeriod(transactions []TransactionRecord, from, to time.Time) PeriodTotals {
	totals := PeriodTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, txn := range transactions {
		if txn.Date.Before(from) || txn.Date.After(to) {
			continue
		}
		switch txn.Type {
		case TransactionTypeIncome:
			totals.Income = totals.Income.Add(txn.Amount)
		case TransactionTypeExpense:
			totals.Expense = totals.Expense.Add(txn.Amount)
		}
	}
	return totals
}

// WeeklyActivity buckets transactions into the 7 calendar days ending today,
// oldest first. Each bucket spans local midnight to the last instant of the
// day and is labelled with its weekday short name.
func WeeklyActivity(transactions []TransactionRecord, now time.Time) []DayActivity {
	days := make([]DayActivity, 0, WeeklyActivityDays)

	for offset := WeeklyActivityDays - 1; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)

		totals := SumPeriod(transactions, start, end)
		days = append(days, DayActivity{
			Label:   start.Format(weekdayLabelFormat),
			Date:    start,
			Income:  RoundMoney(totals.Income),
			Expense: RoundMoney(totals.Expense),
		})
	}

	return days
}

// RecentTransactions returns the count most recent transactions by date,
// descending. Ties keep their input order.
func RecentTransactions(transactions []TransactionRecord, count int) []TransactionRecord {
	recent := make([]TransactionRecord, len(transactions))
	copy(recent, transactions)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})

	if len(recent) > count {
		recent = recent[:count]
	}
	return recent
}

// BuildDashboardSnapshot assembles the full dashboard summary. All-time
// totals are supplied by the caller (computed with an aggregate query rather
// than by loading full history); everything else derives from the supplied
// records and the injected now.
func BuildDashboardSnapshot(
	accounts []AccountRecord,
	transactions []TransactionRecord,
	allTimeIncome, allTimeExpense decimal.Decimal,
	now time.Time,
) DashboardSnapshot {
	currentStart, currentEnd := MonthRange(now)
	previousStart, previousEnd := PreviousMonthRange(now)

	current := SumPeriod(transactions, currentStart, currentEnd)
	previous := SumPeriod(transactions, previousStart, previousEnd)

	return DashboardSnapshot{
		NetWorth:       NetWorth(accounts),
		MonthlyIncome:  RoundMoney(current.Income),
		MonthlyExpense: RoundMoney(current.Expense),
		IncomeChange:   PercentChange(current.Income, previous.Income),
		ExpenseChange:  PercentChange(current.Expense, previous.Expense),
		AllTimeIncome:  RoundMoney(allTimeIncome),
		AllTimeExpense: RoundMoney(allTimeExpense),
		WeeklyActivity: WeeklyActivity(transactions, now),
		Recent:         RecentTransactions(transactions, RecentActivityCount),
	}
}
