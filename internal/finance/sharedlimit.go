package finance

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidTotalLimit signals a construction contract violation. Callers
// must reject negative pool limits before invoking the aggregator; all other
// data-shape issues are coerced, not raised.
var ErrInvalidTotalLimit = errors.New("shared limit total must not be negative")

// SharedLimitRecord is the engine's view of a credit limit pool and the
// balances of its member cards.
type SharedLimitRecord struct {
	ID          uuid.UUID
	Name        string
	TotalLimit  decimal.Decimal
	Description string
	Members     []CreditCardRecord
}

// SharedLimitStats is the pooled utilization snapshot for one group.
type SharedLimitStats struct {
	ID               uuid.UUID           `json:"id"`
	Name             string              `json:"name"`
	TotalLimit       decimal.Decimal     `json:"total_limit"`
	TotalOutstanding decimal.Decimal     `json:"total_outstanding"`
	AvailableCredit  decimal.Decimal     `json:"available_credit"`
	Utilization      int                 `json:"utilization"`
	LinkedAccounts   []LinkedAccountStat `json:"linked_accounts"`
}

// LinkedAccountStat reports one member card's contribution to the pool.
type LinkedAccountStat struct {
	AccountID   uuid.UUID       `json:"account_id"`
	Name        string          `json:"name"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// CalculateSharedLimitStats aggregates pooled debt across the member cards of
// a shared limit. Available credit is computed at the pool level, not summed
// per card, so the shared ceiling is never subtracted twice.
func CalculateSharedLimitStats(group SharedLimitRecord) (SharedLimitStats, error) {
	if group.TotalLimit.LessThan(decimal.Zero) {
		return SharedLimitStats{}, ErrInvalidTotalLimit
	}

	totalOutstanding := decimal.Zero
	linked := make([]LinkedAccountStat, 0, len(group.Members))

	for _, member := range group.Members {
		outstanding := member.Balance.Neg()
		if outstanding.LessThan(decimal.Zero) {
			outstanding = decimal.Zero
		}
		totalOutstanding = totalOutstanding.Add(outstanding)
		linked = append(linked, LinkedAccountStat{
			AccountID:   member.AccountID,
			Name:        member.Name,
			Outstanding: RoundMoney(outstanding),
		})
	}

	available := group.TotalLimit.Sub(totalOutstanding)
	if available.LessThan(decimal.Zero) {
		available = decimal.Zero
	}

	return SharedLimitStats{
		ID:               group.ID,
		Name:             group.Name,
		TotalLimit:       RoundMoney(group.TotalLimit),
		TotalOutstanding: RoundMoney(totalOutstanding),
		AvailableCredit:  RoundMoney(available),
		Utilization:      RoundPercent(totalOutstanding, group.TotalLimit),
		LinkedAccounts:   linked,
	}, nil
}
