package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCardStatus(t *testing.T) {
	status := CalculateCardStatus(decimal.NewFromInt(-500), decimal.NewFromInt(2000))

	assert.Equal(t, "500", status.Outstanding.String())
	assert.Equal(t, "1500", status.AvailableCredit.String())
	assert.Equal(t, 25, status.Utilization)
}

func TestCalculateCardStatus_Overpayment(t *testing.T) {
	// A positive balance on a credit card is an overpayment, not debt.
	status := CalculateCardStatus(decimal.NewFromInt(100), decimal.NewFromInt(2000))

	assert.Equal(t, "0", status.Outstanding.String())
	assert.Equal(t, "2100", status.AvailableCredit.String())
	assert.Equal(t, 0, status.Utilization)
}

func TestCalculateCardStatus_ZeroLimit(t *testing.T) {
	status := CalculateCardStatus(decimal.NewFromInt(-500), decimal.Zero)

	assert.Equal(t, "500", status.Outstanding.String())
	assert.Equal(t, "0", status.AvailableCredit.String())
	assert.Equal(t, 0, status.Utilization)
}

func TestCalculateCardStatus_OverLimit(t *testing.T) {
	status := CalculateCardStatus(decimal.NewFromInt(-2500), decimal.NewFromInt(2000))

	assert.Equal(t, "2500", status.Outstanding.String())
	assert.Equal(t, "0", status.AvailableCredit.String())
	assert.Equal(t, 125, status.Utilization)
}

func TestCalculateCardStatus_OutstandingPlusAvailableEqualsLimit(t *testing.T) {
	limit := decimal.NewFromInt(3000)
	for _, balance := range []int64{0, -1, -750, -2999, -3000} {
		status := CalculateCardStatus(decimal.NewFromInt(balance), limit)
		sum := status.Outstanding.Add(status.AvailableCredit)
		assert.True(t, sum.Equal(limit), "balance %d: %s + %s != %s",
			balance, status.Outstanding, status.AvailableCredit, limit)
	}
}

func TestUtilizationStatus_Tiers(t *testing.T) {
	threshold := 30

	tests := []struct {
		utilization int
		want        string
	}{
		{20, UtilizationStatusGood},
		{29, UtilizationStatusGood},
		{30, UtilizationStatusWarning}, // threshold is inclusive
		{74, UtilizationStatusWarning},
		{75, UtilizationStatusDanger},
		{100, UtilizationStatusDanger},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, UtilizationStatus(tt.utilization, &threshold),
			"utilization %d", tt.utilization)
	}
}

func TestUtilizationStatus_DefaultThreshold(t *testing.T) {
	assert.Equal(t, UtilizationStatusGood, UtilizationStatus(29, nil))
	assert.Equal(t, UtilizationStatusWarning, UtilizationStatus(30, nil))
}

func TestUtilizationStatus_ExplicitZeroThreshold(t *testing.T) {
	// An explicit 0 is a valid threshold, distinct from unset.
	zero := 0
	assert.Equal(t, UtilizationStatusWarning, UtilizationStatus(0, &zero))
	assert.Equal(t, UtilizationStatusWarning, UtilizationStatus(10, &zero))
	assert.Equal(t, UtilizationStatusDanger, UtilizationStatus(80, &zero))
}

func TestDaysUntilDue_MonthEndClamp(t *testing.T) {
	// Due day 31 in non-leap February resolves to Feb 28.
	now := time.Date(2025, time.February, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, 13, DaysUntilDue(31, now))
}

func TestDaysUntilDue_LeapFebruary(t *testing.T) {
	now := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 14, DaysUntilDue(31, now))
}

func TestDaysUntilDue_DueToday(t *testing.T) {
	now := time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 0, DaysUntilDue(10, now))
}

func TestDaysUntilDue_RollsIntoNextMonth(t *testing.T) {
	now := time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 15, DaysUntilDue(5, now))
}

func TestDaysUntilDue_YearRollover(t *testing.T) {
	now := time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 16, DaysUntilDue(5, now))
}

func TestDaysUntilDue_AcrossSpringForward(t *testing.T) {
	// US clocks spring forward on 2026-03-08; the lost hour must not shave a
	// day off the count.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := time.Date(2026, time.March, 6, 9, 0, 0, 0, loc)
	assert.Equal(t, 4, DaysUntilDue(10, now))
}

func TestDaysUntilDue_AcrossFallBack(t *testing.T) {
	// US clocks fall back on 2026-11-01; the extra hour must not add a day.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	now := time.Date(2026, time.October, 30, 9, 0, 0, 0, loc)
	assert.Equal(t, 4, DaysUntilDue(3, now))
}

func TestDaysUntilDue_NeverNegative(t *testing.T) {
	now := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	for day := 1; day <= 31; day++ {
		assert.GreaterOrEqual(t, DaysUntilDue(day, now), 0, "due day %d", day)
	}
}

func TestBuildCreditCardInsight(t *testing.T) {
	limit := decimal.NewFromInt(2000)
	dueDay := 28
	alertPercent := 50
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	card := CreditCardRecord{
		AccountID:               uuid.New(),
		Name:                    "Everyday Card",
		Balance:                 decimal.NewFromInt(-1200),
		CreditLimit:             &limit,
		PaymentDueDay:           &dueDay,
		UtilizationAlertEnabled: true,
		UtilizationAlertPercent: &alertPercent,
	}

	insight := BuildCreditCardInsight(card, now)

	assert.Equal(t, card.AccountID, insight.AccountID)
	assert.Equal(t, "1200", insight.Outstanding.String())
	assert.Equal(t, "800", insight.AvailableCredit.String())
	assert.Equal(t, 60, insight.Utilization)
	assert.Equal(t, UtilizationStatusWarning, insight.Status)
	if assert.NotNil(t, insight.DaysUntilDue) {
		assert.Equal(t, 18, *insight.DaysUntilDue)
	}
}

func TestBuildCreditCardInsight_NoLimitNoDueDay(t *testing.T) {
	card := CreditCardRecord{
		AccountID: uuid.New(),
		Name:      "Pooled Card",
		Balance:   decimal.NewFromInt(-300),
	}

	insight := BuildCreditCardInsight(card, time.Now())

	assert.Equal(t, "300", insight.Outstanding.String())
	assert.Equal(t, 0, insight.Utilization)
	assert.Nil(t, insight.DaysUntilDue)
}
