package services

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/finance"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

// dashboardService implements DashboardServiceInterface
type dashboardService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	logger          *slog.Logger
}

// NewDashboardService creates a dashboard service
func NewDashboardService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &dashboardService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		logger:          logger,
	}
}

// GetDashboard assembles the dashboard overview: net worth across active
// accounts, current-month income and spending with month-over-month change,
// all-time totals, the 7-day activity series and recent transactions.
//
// Only the previous and current calendar months are loaded; all-time totals
// come from an aggregate query so full history is never pulled into memory.
func (s *dashboardService) GetDashboard(userID uuid.UUID, now time.Time) (*models.DashboardSummary, error) {
	accounts, err := s.accountRepo.GetByUserID(userID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	windowStart, _ := finance.PreviousMonthRange(now)
	_, windowEnd := finance.MonthRange(now)

	transactions, err := s.transactionRepo.GetByDateRange(userID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	allTimeIncome, allTimeExpense, err := s.transactionRepo.GetAllTimeTotals(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load all-time totals: %w", err)
	}

	accountRecords := make([]finance.AccountRecord, 0, len(accounts))
	for _, account := range accounts {
		accountRecords = append(accountRecords, finance.AccountRecord{
			ID:          account.ID,
			AccountType: account.AccountType,
			Balance:     account.Balance,
		})
	}

	transactionRecords := make([]finance.TransactionRecord, 0, len(transactions))
	for _, txn := range transactions {
		transactionRecords = append(transactionRecords, finance.TransactionRecord{
			ID:         txn.ID,
			AccountID:  txn.AccountID,
			CategoryID: txn.CategoryID,
			Type:       txn.TransactionType,
			Amount:     txn.Amount,
			Date:       txn.Date,
		})
	}

	snapshot := finance.BuildDashboardSnapshot(
		accountRecords, transactionRecords, allTimeIncome, allTimeExpense, now)

	recent, err := s.buildRecentActivity(userID)
	if err != nil {
		return nil, err
	}

	weekly := make([]models.DailyActivityItem, 0, len(snapshot.WeeklyActivity))
	for _, day := range snapshot.WeeklyActivity {
		weekly = append(weekly, models.DailyActivityItem{
			Label:   day.Label,
			Date:    day.Date,
			Income:  day.Income,
			Expense: day.Expense,
		})
	}

	return &models.DashboardSummary{
		NetWorth:       snapshot.NetWorth,
		MonthlyIncome:  snapshot.MonthlyIncome,
		MonthlyExpense: snapshot.MonthlyExpense,
		IncomeChange:   snapshot.IncomeChange,
		ExpenseChange:  snapshot.ExpenseChange,
		AllTimeIncome:  snapshot.AllTimeIncome,
		AllTimeExpense: snapshot.AllTimeExpense,
		WeeklyActivity: weekly,
		RecentActivity: recent,
	}, nil
}

// buildRecentActivity fetches the newest transactions and joins display names.
// Recency comes from a dedicated repository query rather than the dashboard
// window, so a long-idle user still sees their last entries. Names are looked
// up across archived accounts too, since history outlives archival.
func (s *dashboardService) buildRecentActivity(userID uuid.UUID) ([]models.RecentActivityItem, error) {
	recent, err := s.transactionRepo.GetRecentByUserID(userID, finance.RecentActivityCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	allAccounts, err := s.accountRepo.GetByUserID(userID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	accountNames := make(map[uuid.UUID]string, len(allAccounts))
	for _, account := range allAccounts {
		accountNames[account.ID] = account.Name
	}

	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	items := make([]models.RecentActivityItem, 0, len(recent))
	for _, txn := range recent {
		item := models.RecentActivityItem{
			ID:              txn.ID,
			TransactionType: txn.TransactionType,
			Amount:          txn.Amount,
			Description:     txn.Description,
			Date:            txn.Date,
			AccountName:     accountNames[txn.AccountID],
		}
		if txn.CategoryID != nil {
			item.CategoryName = categoryNames[*txn.CategoryID]
		}
		items = append(items, item)
	}

	return items, nil
}
