package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetWorth_CreditAlwaysSubtracts(t *testing.T) {
	accounts := []AccountRecord{
		{AccountType: "checking", Balance: decimal.NewFromInt(1000)},
		{AccountType: "credit", Balance: decimal.NewFromInt(-400)},
	}
	assert.Equal(t, "600", NetWorth(accounts).String())

	// The stored sign convention must not matter for credit accounts.
	accounts[1].Balance = decimal.NewFromInt(400)
	assert.Equal(t, "600", NetWorth(accounts).String())
}

func TestNetWorth_MixedAccountTypes(t *testing.T) {
	accounts := []AccountRecord{
		{AccountType: "checking", Balance: decimal.NewFromFloat(1500.50)},
		{AccountType: "savings", Balance: decimal.NewFromInt(5000)},
		{AccountType: "investment", Balance: decimal.NewFromInt(12000)},
		{AccountType: "loan", Balance: decimal.NewFromInt(-8000)},
		{AccountType: "credit", Balance: decimal.NewFromInt(-750)},
	}

	// 1500.50 + 5000 + 12000 - 8000 - 750
	assert.Equal(t, "9750.5", NetWorth(accounts).String())
}

func TestMonthRange(t *testing.T) {
	now := time.Date(2025, time.June, 15, 14, 30, 0, 0, time.UTC)

	start, end := MonthRange(now)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.June, 30, 23, 59, 59, 999999999, time.UTC), end)

	prevStart, prevEnd := PreviousMonthRange(now)
	assert.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), prevStart)
	assert.Equal(t, time.Date(2025, time.May, 31, 23, 59, 59, 999999999, time.UTC), prevEnd)
}

func TestPreviousMonthRange_JanuaryRollsToDecember(t *testing.T) {
	now := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)

	start, end := PreviousMonthRange(now)
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.December, end.Month())
	assert.Equal(t, 31, end.Day())
}

func TestSumPeriod(t *testing.T) {
	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.June, 30, 23, 59, 59, 999999999, time.UTC)

	transactions := []TransactionRecord{
		{Type: TransactionTypeIncome, Amount: decimal.NewFromInt(3000), Date: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)},
		{Type: TransactionTypeExpense, Amount: decimal.NewFromInt(120), Date: time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)},
		{Type: TransactionTypeExpense, Amount: decimal.NewFromInt(80), Date: time.Date(2025, time.June, 30, 23, 59, 59, 999999999, time.UTC)},
		{Type: TransactionTypeTransfer, Amount: decimal.NewFromInt(500), Date: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)},
		{Type: TransactionTypeExpense, Amount: decimal.NewFromInt(999), Date: time.Date(2025, time.May, 31, 23, 59, 59, 0, time.UTC)},
		{Type: TransactionTypeIncome, Amount: decimal.NewFromInt(999), Date: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)},
	}

	totals := SumPeriod(transactions, from, to)

	assert.Equal(t, "3000", totals.Income.String())
	assert.Equal(t, "200", totals.Expense.String())
}

func TestWeeklyActivity(t *testing.T) {
	now := time.Date(2025, time.June, 11, 15, 0, 0, 0, time.UTC) // a Wednesday

	transactions := []TransactionRecord{
		{Type: TransactionTypeExpense, Amount: decimal.NewFromInt(50), Date: time.Date(2025, time.June, 11, 9, 0, 0, 0, time.UTC)},
		{Type: TransactionTypeIncome, Amount: decimal.NewFromInt(200), Date: time.Date(2025, time.June, 5, 23, 59, 59, 0, time.UTC)},
		// outside the window
		{Type: TransactionTypeExpense, Amount: decimal.NewFromInt(75), Date: time.Date(2025, time.June, 4, 12, 0, 0, 0, time.UTC)},
	}

	activity := WeeklyActivity(transactions, now)

	require.Len(t, activity, 7)

	// oldest first: Jun 5 (Thu) ... Jun 11 (Wed)
	assert.Equal(t, "Thu", activity[0].Label)
	assert.Equal(t, "200", activity[0].Income.String())
	assert.Equal(t, "0", activity[0].Expense.String())

	assert.Equal(t, "Wed", activity[6].Label)
	assert.Equal(t, "50", activity[6].Expense.String())

	for _, day := range activity[1:6] {
		assert.Equal(t, "0", day.Income.String())
		assert.Equal(t, "0", day.Expense.String())
	}
}

func TestRecentTransactions(t *testing.T) {
	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	transactions := make([]TransactionRecord, 0, 8)
	for i := 0; i < 8; i++ {
		transactions = append(transactions, TransactionRecord{
			ID:   uuid.New(),
			Date: base.AddDate(0, 0, i),
		})
	}

	recent := RecentTransactions(transactions, RecentActivityCount)

	require.Len(t, recent, 5)
	assert.Equal(t, transactions[7].ID, recent[0].ID)
	assert.Equal(t, transactions[3].ID, recent[4].ID)

	// input slice must not be reordered
	assert.Equal(t, base, transactions[0].Date)
}

func TestBuildDashboardSnapshot(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

	accounts := []AccountRecord{
		{AccountType: "checking", Balance: decimal.NewFromInt(1000)},
		{AccountType: "credit", Balance: decimal.NewFromInt(-400)},
	}
	transactions := []TransactionRecord{
		{ID: uuid.New(), Type: TransactionTypeIncome, Amount: decimal.NewFromInt(3000), Date: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Type: TransactionTypeExpense, Amount: decimal.NewFromInt(500), Date: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Type: TransactionTypeIncome, Amount: decimal.NewFromInt(2000), Date: time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Type: TransactionTypeExpense, Amount: decimal.NewFromInt(1000), Date: time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)},
	}

	snapshot := BuildDashboardSnapshot(
		accounts, transactions,
		decimal.NewFromInt(5000), decimal.NewFromInt(1500),
		now,
	)

	assert.Equal(t, "600", snapshot.NetWorth.String())
	assert.Equal(t, "3000", snapshot.MonthlyIncome.String())
	assert.Equal(t, "500", snapshot.MonthlyExpense.String())
	assert.Equal(t, "50", snapshot.IncomeChange.String())  // 2000 -> 3000
	assert.Equal(t, "-50", snapshot.ExpenseChange.String()) // 1000 -> 500
	assert.Equal(t, "5000", snapshot.AllTimeIncome.String())
	assert.Equal(t, "1500", snapshot.AllTimeExpense.String())
	assert.Len(t, snapshot.WeeklyActivity, 7)
	assert.Len(t, snapshot.Recent, 4)
	assert.Equal(t, transactions[1].ID, snapshot.Recent[0].ID)
}

func TestBuildDashboardSnapshot_GrowthFromNothing(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	transactions := []TransactionRecord{
		{Type: TransactionTypeIncome, Amount: decimal.NewFromInt(50), Date: now},
	}

	snapshot := BuildDashboardSnapshot(nil, transactions, decimal.NewFromInt(50), decimal.Zero, now)

	assert.Equal(t, "100", snapshot.IncomeChange.String())
	assert.Equal(t, "0", snapshot.ExpenseChange.String())
}

func TestBuildDashboardSnapshot_Idempotent(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	accounts := []AccountRecord{
		{AccountType: "savings", Balance: decimal.NewFromFloat(1234.56)},
	}
	transactions := []TransactionRecord{
		{ID: uuid.New(), Type: TransactionTypeExpense, Amount: decimal.NewFromFloat(19.99), Date: now.AddDate(0, 0, -2)},
		{ID: uuid.New(), Type: TransactionTypeIncome, Amount: decimal.NewFromInt(900), Date: now.AddDate(0, 0, -1)},
	}

	first := BuildDashboardSnapshot(accounts, transactions, decimal.NewFromInt(900), decimal.NewFromFloat(19.99), now)
	second := BuildDashboardSnapshot(accounts, transactions, decimal.NewFromInt(900), decimal.NewFromFloat(19.99), now)

	assert.Equal(t, first, second)
}
