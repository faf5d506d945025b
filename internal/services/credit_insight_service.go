package services

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/finance"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// creditInsightService implements CreditInsightServiceInterface
type creditInsightService struct {
	accountRepo repositories.AccountRepositoryInterface
	limitRepo   repositories.SharedLimitRepositoryInterface
	logger      *slog.Logger
}

// NewCreditInsightService creates a credit insight service
func NewCreditInsightService(
	accountRepo repositories.AccountRepositoryInterface,
	limitRepo repositories.SharedLimitRepositoryInterface,
	logger *slog.Logger,
) CreditInsightServiceInterface {
	return &creditInsightService{
		accountRepo: accountRepo,
		limitRepo:   limitRepo,
		logger:      logger,
	}
}

// GetCreditSummary computes per-card utilization, pooled limit stats and the
// fleet-wide totals for every credit card a user holds.
func (s *creditInsightService) GetCreditSummary(userID uuid.UUID, now time.Time) (*models.CreditSummary, error) {
	cards, groups, err := s.loadCreditRecords(userID)
	if err != nil {
		return nil, err
	}

	overviews := make([]models.CreditCardOverview, 0, len(cards))
	for _, card := range cards {
		insight := finance.BuildCreditCardInsight(card, now)
		overviews = append(overviews, overviewFromInsight(insight, card.CreditLimit))
	}

	sharedOverviews := make([]models.SharedLimitOverview, 0, len(groups))
	for _, group := range groups {
		stats, err := finance.CalculateSharedLimitStats(group)
		if err != nil {
			return nil, fmt.Errorf("failed to compute stats for shared limit %s: %w", group.ID, err)
		}

		linked := make([]models.LinkedAccountSummary, 0, len(stats.LinkedAccounts))
		for _, member := range stats.LinkedAccounts {
			linked = append(linked, models.LinkedAccountSummary{
				AccountID:   member.AccountID,
				Name:        member.Name,
				Outstanding: member.Outstanding,
			})
		}

		sharedOverviews = append(sharedOverviews, models.SharedLimitOverview{
			ID:               stats.ID,
			Name:             stats.Name,
			TotalLimit:       stats.TotalLimit,
			TotalOutstanding: stats.TotalOutstanding,
			AvailableCredit:  stats.AvailableCredit,
			Utilization:      stats.Utilization,
			LinkedAccounts:   linked,
		})
	}

	fleet := finance.CalculateFleetSummary(cards, groups)

	return &models.CreditSummary{
		TotalLimit:         fleet.TotalLimit,
		TotalOutstanding:   fleet.TotalOutstanding,
		TotalAvailable:     fleet.TotalAvailable,
		OverallUtilization: fleet.OverallUtilization,
		Cards:              overviews,
		SharedLimits:       sharedOverviews,
	}, nil
}

// GetCreditAlerts derives the actionable credit warnings: cards at or above
// their configured utilization threshold and cards due within the next week.
func (s *creditInsightService) GetCreditAlerts(userID uuid.UUID, now time.Time) (*models.CreditAlertsOverview, error) {
	cards, _, err := s.loadCreditRecords(userID)
	if err != nil {
		return nil, err
	}

	insights := make([]finance.CreditCardInsight, 0, len(cards))
	limitsByCard := make(map[uuid.UUID]*decimal.Decimal, len(cards))
	for _, card := range cards {
		insights = append(insights, finance.BuildCreditCardInsight(card, now))
		limitsByCard[card.AccountID] = card.CreditLimit
	}

	highUtilization := make([]models.CreditCardOverview, 0)
	for _, insight := range finance.HighUtilizationAlerts(insights) {
		highUtilization = append(highUtilization, overviewFromInsight(insight, limitsByCard[insight.AccountID]))
	}

	upcomingDue := make([]models.CreditCardOverview, 0)
	for _, insight := range finance.UpcomingDueAlerts(insights) {
		upcomingDue = append(upcomingDue, overviewFromInsight(insight, limitsByCard[insight.AccountID]))
	}

	return &models.CreditAlertsOverview{
		HighUtilization: highUtilization,
		UpcomingDue:     upcomingDue,
	}, nil
}

// loadCreditRecords fetches a user's credit cards and shared limit pools as
// engine records.
func (s *creditInsightService) loadCreditRecords(userID uuid.UUID) ([]finance.CreditCardRecord, []finance.SharedLimitRecord, error) {
	accounts, err := s.accountRepo.GetCreditAccountsByUserID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load credit accounts: %w", err)
	}

	cards := make([]finance.CreditCardRecord, 0, len(accounts))
	for i := range accounts {
		cards = append(cards, creditCardRecordFromModel(&accounts[i]))
	}

	limits, err := s.limitRepo.GetByUserIDWithAccounts(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load shared limits: %w", err)
	}

	groups := make([]finance.SharedLimitRecord, 0, len(limits))
	for i := range limits {
		groups = append(groups, sharedLimitRecordFromModel(&limits[i]))
	}

	return cards, groups, nil
}

func overviewFromInsight(insight finance.CreditCardInsight, creditLimit *decimal.Decimal) models.CreditCardOverview {
	return models.CreditCardOverview{
		AccountID:               insight.AccountID,
		Name:                    insight.Name,
		Outstanding:             insight.Outstanding,
		CreditLimit:             creditLimit,
		AvailableCredit:         insight.AvailableCredit,
		Utilization:             insight.Utilization,
		Status:                  insight.Status,
		DaysUntilDue:            insight.DaysUntilDue,
		SharedCreditLimitID:     insight.SharedLimitID,
		UtilizationAlertEnabled: insight.UtilizationAlertEnabled,
		UtilizationAlertPercent: insight.UtilizationAlertPercent,
	}
}
