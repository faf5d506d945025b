package finance

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FleetSummary totals credit capacity across every card and pool a user
// holds. Shared limits are counted exactly once per distinct group, never
// once per member card.
type FleetSummary struct {
	TotalLimit         decimal.Decimal `json:"total_limit"`
	TotalOutstanding   decimal.Decimal `json:"total_outstanding"`
	TotalAvailable     decimal.Decimal `json:"total_available"`
	OverallUtilization int             `json:"overall_utilization"`
}

// CreditAlerts holds the derived alert lists for a user's cards.
type CreditAlerts struct {
	HighUtilization []CreditCardInsight `json:"high_utilization"`
	UpcomingDue     []CreditCardInsight `json:"upcoming_due"`
}

// HighUtilizationAlerts returns the cards that opted into utilization
// alerting and meet or exceed their configured threshold. A card without a
// configured threshold uses the default 30, matching the status tiers; an
// explicit threshold of 0 alerts on any utilization.
func HighUtilizationAlerts(insights []CreditCardInsight) []CreditCardInsight {
	alerts := make([]CreditCardInsight, 0)
	for _, insight := range insights {
		if !insight.UtilizationAlertEnabled {
			continue
		}

		threshold := DefaultWarningPercent
		if insight.UtilizationAlertPercent != nil {
			threshold = *insight.UtilizationAlertPercent
		}

		if insight.Utilization >= threshold {
			alerts = append(alerts, insight)
		}
	}
	return alerts
}

// UpcomingDueAlerts returns cards due within the next 7 days, soonest first.
// Ties keep their input order.
func UpcomingDueAlerts(insights []CreditCardInsight) []CreditCardInsight {
	alerts := make([]CreditCardInsight, 0)
	for _, insight := range insights {
		if insight.DaysUntilDue != nil && *insight.DaysUntilDue <= UpcomingDueWindowDays {
			alerts = append(alerts, insight)
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return *alerts[i].DaysUntilDue < *alerts[j].DaysUntilDue
	})

	return alerts
}

// CalculateFleetSummary sums limits and debt across unlinked cards and
// shared-limit pools. Every card's outstanding counts; a pooled card's
// individual limit does not, since the pool's ceiling already covers it.
// Deduplication is keyed by group id so a pool with three member cards still
// contributes its limit once.
func CalculateFleetSummary(cards []CreditCardRecord, groups []SharedLimitRecord) FleetSummary {
	groupsByID := make(map[uuid.UUID]SharedLimitRecord, len(groups))
	for _, group := range groups {
		groupsByID[group.ID] = group
	}

	totalLimit := decimal.Zero
	totalOutstanding := decimal.Zero
	countedGroups := make(map[uuid.UUID]bool, len(groups))

	for _, card := range cards {
		outstanding := card.Balance.Neg()
		if outstanding.LessThan(decimal.Zero) {
			outstanding = decimal.Zero
		}
		totalOutstanding = totalOutstanding.Add(outstanding)

		if card.SharedLimitID != nil {
			group, ok := groupsByID[*card.SharedLimitID]
			if ok {
				if !countedGroups[group.ID] {
					countedGroups[group.ID] = true
					totalLimit = totalLimit.Add(group.TotalLimit)
				}
				continue
			}
			// Dangling group reference: treat the card as unpooled.
		}

		if card.CreditLimit != nil {
			totalLimit = totalLimit.Add(*card.CreditLimit)
		}
	}

	available := totalLimit.Sub(totalOutstanding)
	if available.LessThan(decimal.Zero) {
		available = decimal.Zero
	}

	return FleetSummary{
		TotalLimit:         RoundMoney(totalLimit),
		TotalOutstanding:   RoundMoney(totalOutstanding),
		TotalAvailable:     RoundMoney(available),
		OverallUtilization: RoundPercent(totalOutstanding, totalLimit),
	}
}
