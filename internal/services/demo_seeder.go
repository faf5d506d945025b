package services

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	seedMonthsOfHistory  = 3
	seedExpensesPerMonth = 22
	seedSalaryAmount     = 4200
)

// demoSeeder populates a demo user with a realistic account fleet and three
// months of transaction history. Used by demo environments only; production
// never constructs one.
type demoSeeder struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	limitRepo       repositories.SharedLimitRepositoryInterface
	categoryService CategoryServiceInterface
	faker           *gofakeit.Faker
	logger          *slog.Logger
}

// NewDemoSeeder creates a demo data seeder
func NewDemoSeeder(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	limitRepo repositories.SharedLimitRepositoryInterface,
	categoryService CategoryServiceInterface,
	logger *slog.Logger,
) DemoSeederInterface {
	return &demoSeeder{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		limitRepo:       limitRepo,
		categoryService: categoryService,
		faker:           gofakeit.New(uint64(time.Now().UnixNano())),
		logger:          logger,
	}
}

// Seed creates the demo dataset for a user. Idempotent: a user who already
// has accounts is left untouched.
func (s *demoSeeder) Seed(userID uuid.UUID) error {
	existing, err := s.accountRepo.GetByUserID(userID, true)
	if err != nil {
		return fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	if err := s.categoryService.EnsureDefaultCategories(userID); err != nil {
		return err
	}

	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	expenseCategories := make([]models.Category, 0, len(categories))
	var salaryCategory *models.Category
	for i, category := range categories {
		if category.Type == models.CategoryTypeExpense {
			expenseCategories = append(expenseCategories, category)
		}
		if category.Name == "Salary" {
			salaryCategory = &categories[i]
		}
	}

	checking, savings, cards, err := s.seedAccounts(userID)
	if err != nil {
		return err
	}

	if err := s.seedHistory(userID, checking, savings, cards, salaryCategory, expenseCategories); err != nil {
		return err
	}

	s.logger.Info("demo data seeded", "user_id", userID)
	return nil
}

func (s *demoSeeder) seedAccounts(userID uuid.UUID) (*models.Account, *models.Account, []*models.Account, error) {
	checking := &models.Account{
		UserID:      userID,
		Name:        "Everyday Checking",
		AccountType: models.AccountTypeChecking,
		Balance:     decimal.NewFromFloat(s.faker.Float64Range(1200, 4800)).Round(2),
	}
	if err := s.accountRepo.Create(checking); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to seed checking account: %w", err)
	}

	savings := &models.Account{
		UserID:      userID,
		Name:        "Rainy Day Savings",
		AccountType: models.AccountTypeSavings,
		Balance:     decimal.NewFromFloat(s.faker.Float64Range(5000, 20000)).Round(2),
	}
	if err := s.accountRepo.Create(savings); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to seed savings account: %w", err)
	}

	limit := &models.SharedCreditLimit{
		UserID:      userID,
		Name:        fmt.Sprintf("%s Family Cards", s.faker.LastName()),
		TotalLimit:  decimal.NewFromInt(15000),
		Description: "Pooled limit across the family cards",
	}
	if err := s.limitRepo.Create(limit); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to seed shared limit: %w", err)
	}

	alertPercent := 50
	dueDay := 15
	cycleDay := 20

	soloLimit := decimal.NewFromInt(5000)
	soloCard := &models.Account{
		UserID:                  userID,
		Name:                    fmt.Sprintf("%s Rewards Card", s.faker.Company()),
		AccountType:             models.AccountTypeCredit,
		Balance:                 decimal.NewFromFloat(-s.faker.Float64Range(200, 2400)).Round(2),
		CreditLimit:             &soloLimit,
		PaymentDueDay:           &dueDay,
		BillingCycleDay:         &cycleDay,
		UtilizationAlertEnabled: true,
		UtilizationAlertPercent: &alertPercent,
	}
	if err := s.accountRepo.Create(soloCard); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to seed credit card: %w", err)
	}

	cards := []*models.Account{soloCard}
	for i := 0; i < 2; i++ {
		pooledDueDay := 5 + i*10
		pooledCard := &models.Account{
			UserID:              userID,
			Name:                fmt.Sprintf("%s Card", s.faker.FirstName()),
			AccountType:         models.AccountTypeCredit,
			Balance:             decimal.NewFromFloat(-s.faker.Float64Range(100, 1500)).Round(2),
			PaymentDueDay:       &pooledDueDay,
			SharedCreditLimitID: &limit.ID,
		}
		if err := s.accountRepo.Create(pooledCard); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to seed pooled card: %w", err)
		}
		cards = append(cards, pooledCard)
	}

	return checking, savings, cards, nil
}

func (s *demoSeeder) seedHistory(
	userID uuid.UUID,
	checking, savings *models.Account,
	cards []*models.Account,
	salaryCategory *models.Category,
	expenseCategories []models.Category,
) error {
	now := time.Now()

	for monthsBack := seedMonthsOfHistory; monthsBack >= 0; monthsBack-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 9, 0, 0, 0, now.Location()).AddDate(0, -monthsBack, 0)

		salary := &models.Transaction{
			UserID:          userID,
			AccountID:       checking.ID,
			TransactionType: models.TransactionTypeIncome,
			Amount:          decimal.NewFromInt(seedSalaryAmount),
			Description:     "Monthly salary",
			Date:            monthStart,
		}
		if salaryCategory != nil {
			salary.CategoryID = &salaryCategory.ID
		}
		if err := s.transactionRepo.Create(salary); err != nil {
			return fmt.Errorf("failed to seed salary: %w", err)
		}

		transfer := &models.Transaction{
			UserID:          userID,
			AccountID:       checking.ID,
			ToAccountID:     &savings.ID,
			TransactionType: models.TransactionTypeTransfer,
			Amount:          decimal.NewFromInt(500),
			Description:     "Savings top-up",
			Date:            monthStart.AddDate(0, 0, 1),
		}
		if err := s.transactionRepo.Create(transfer); err != nil {
			return fmt.Errorf("failed to seed transfer: %w", err)
		}

		expenseCount := seedExpensesPerMonth
		if monthsBack == 0 {
			// Partial current month
			expenseCount = rand.Intn(seedExpensesPerMonth) + 1
		}

		for i := 0; i < expenseCount; i++ {
			account := checking
			if len(cards) > 0 && s.faker.Bool() {
				account = cards[rand.Intn(len(cards))]
			}

			day := rand.Intn(27) + 1
			date := monthStart.AddDate(0, 0, day)
			if date.After(now) {
				continue
			}

			expense := &models.Transaction{
				UserID:          userID,
				AccountID:       account.ID,
				TransactionType: models.TransactionTypeExpense,
				Amount:          decimal.NewFromFloat(s.faker.Float64Range(4, 180)).Round(2),
				Description:     s.faker.Company(),
				Date:            date,
			}
			if len(expenseCategories) > 0 {
				category := expenseCategories[rand.Intn(len(expenseCategories))]
				expense.CategoryID = &category.ID
			}
			if err := s.transactionRepo.Create(expense); err != nil {
				return fmt.Errorf("failed to seed expense: %w", err)
			}
		}
	}

	return nil
}
