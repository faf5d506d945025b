package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Utilization tier thresholds. The danger tier is fixed; the warning tier is
// configurable per card via the alert percent.
const (
	DangerUtilizationPercent = 75
	DefaultWarningPercent    = 30
	UpcomingDueWindowDays    = 7
)

const (
	UtilizationStatusGood    = "good"
	UtilizationStatusWarning = "warning"
	UtilizationStatusDanger  = "danger"
)

// CreditCardRecord is the engine's view of a credit account. Balances follow
// the negative-outstanding convention: -500 means 500 owed.
type CreditCardRecord struct {
	AccountID               uuid.UUID
	Name                    string
	Balance                 decimal.Decimal
	CreditLimit             *decimal.Decimal
	BillingCycleDay         *int
	PaymentDueDay           *int
	UtilizationAlertEnabled bool
	UtilizationAlertPercent *int
	SharedLimitID           *uuid.UUID
}

// CardStatus is the per-card utilization snapshot.
type CardStatus struct {
	Outstanding     decimal.Decimal `json:"outstanding"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	Utilization     int             `json:"utilization"`
}

// CreditCardInsight combines a card's status with its due-date arithmetic
// and alert configuration. Computed, never persisted.
type CreditCardInsight struct {
	AccountID               uuid.UUID  `json:"account_id"`
	Name                    string     `json:"name"`
	CardStatus
	Status                  string     `json:"status"`
	DaysUntilDue            *int       `json:"days_until_due,omitempty"`
	SharedLimitID           *uuid.UUID `json:"shared_limit_id,omitempty"`
	UtilizationAlertEnabled bool       `json:"utilization_alert_enabled"`
	UtilizationAlertPercent *int       `json:"utilization_alert_percent,omitempty"`
}

// CalculateCardStatus derives outstanding debt, available credit and
// utilization for a single card. Only negative balances count as debt; an
// overpaid card has zero outstanding. A zero or absent limit yields zero
// utilization.
func CalculateCardStatus(balance decimal.Decimal, creditLimit decimal.Decimal) CardStatus {
	outstanding := balance.Neg()
	if outstanding.LessThan(decimal.Zero) {
		outstanding = decimal.Zero
	}

	available := creditLimit.Add(balance)
	if available.LessThan(decimal.Zero) {
		available = decimal.Zero
	}

	return CardStatus{
		Outstanding:     RoundMoney(outstanding),
		AvailableCredit: RoundMoney(available),
		Utilization:     RoundPercent(outstanding, creditLimit),
	}
}

// UtilizationStatus classifies a utilization percentage into good, warning
// or danger. The warning threshold defaults to 30 when alertPercent is nil;
// an explicit 0 is a valid threshold and distinct from unset.
func UtilizationStatus(utilization int, alertPercent *int) string {
	if utilization >= DangerUtilizationPercent {
		return UtilizationStatusDanger
	}

	threshold := DefaultWarningPercent
	if alertPercent != nil {
		threshold = *alertPercent
	}

	if utilization >= threshold {
		return UtilizationStatusWarning
	}
	return UtilizationStatusGood
}

// DaysUntilDue computes the number of days from now until the next occurrence
// of a day-of-month payment due day. Due days past the end of a month clamp
// to that month's last day (due day 31 in February resolves to Feb 28/29).
// Returns 0 when due today; never negative.
func DaysUntilDue(paymentDueDay int, now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	due := clampToMonth(today.Year(), today.Month(), paymentDueDay, now.Location())
	if due.Before(today) {
		year, month := today.Year(), today.Month()+1
		if month > time.December {
			year, month = year+1, time.January
		}
		due = clampToMonth(year, month, paymentDueDay, now.Location())
	}

	return daysBetween(today, due)
}

// daysBetween counts calendar days from a to b. Both midnights are re-anchored
// in UTC first, so a DST transition between the two dates cannot shave an hour
// off the difference and undercount by a day.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}

// BuildCreditCardInsight computes the full per-card snapshot from the card's
// own limit. Cards pooled into a shared limit usually carry a nil individual
// limit; their limit is accounted for at the pool level (see sharedlimit.go).
func BuildCreditCardInsight(card CreditCardRecord, now time.Time) CreditCardInsight {
	limit := decimal.Zero
	if card.CreditLimit != nil {
		limit = *card.CreditLimit
	}

	insight := CreditCardInsight{
		AccountID:               card.AccountID,
		Name:                    card.Name,
		CardStatus:              CalculateCardStatus(card.Balance, limit),
		SharedLimitID:           card.SharedLimitID,
		UtilizationAlertEnabled: card.UtilizationAlertEnabled,
		UtilizationAlertPercent: card.UtilizationAlertPercent,
	}
	insight.Status = UtilizationStatus(insight.Utilization, card.UtilizationAlertPercent)

	if card.PaymentDueDay != nil {
		days := DaysUntilDue(*card.PaymentDueDay, now)
		insight.DaysUntilDue = &days
	}

	return insight
}

func clampToMonth(year int, month time.Month, day int, loc *time.Location) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
