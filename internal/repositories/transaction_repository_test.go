package repositories

import (
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionRepositorySuite defines the test suite for TransactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    TransactionRepositoryInterface
	userID  uuid.UUID
	account *models.Account
}

// SetupTest runs before each test in the suite
func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.userID = uuid.New()
	s.account = database.CreateTestAccount(s.T(), s.db, s.userID, "Everyday Checking", models.AccountTypeChecking)
}

// TearDownTest runs after each test in the suite
func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionRepositorySuite runs the test suite
func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) createTransaction(txType string, amount int64, date time.Time) *models.Transaction {
	transaction := &models.Transaction{
		UserID:          s.userID,
		AccountID:       s.account.ID,
		TransactionType: txType,
		Amount:          decimal.NewFromInt(amount),
		Date:            date,
	}
	s.Require().NoError(s.repo.Create(transaction))
	return transaction
}

func (s *TransactionRepositorySuite) TestCreateAndGetByID() {
	transaction := s.createTransaction(models.TransactionTypeExpense, 42, time.Now())

	found, err := s.repo.GetByID(transaction.ID)
	s.NoError(err)
	s.Equal(transaction.ID, found.ID)

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestGetByUserID_Filters() {
	now := time.Now()
	s.createTransaction(models.TransactionTypeIncome, 3000, now.AddDate(0, 0, -3))
	s.createTransaction(models.TransactionTypeExpense, 50, now.AddDate(0, 0, -2))
	s.createTransaction(models.TransactionTypeExpense, 80, now.AddDate(0, 0, -1))

	expenses, total, err := s.repo.GetByUserID(s.userID, models.TransactionFilters{Type: models.TransactionTypeExpense})
	s.NoError(err)
	s.EqualValues(2, total)
	s.Len(expenses, 2)

	// newest first
	s.True(expenses[0].Date.After(expenses[1].Date))

	minAmount := decimal.NewFromInt(60)
	big, total, err := s.repo.GetByUserID(s.userID, models.TransactionFilters{MinAmount: &minAmount})
	s.NoError(err)
	s.EqualValues(2, total)
	s.Len(big, 2)
}

func (s *TransactionRepositorySuite) TestGetByUserID_Pagination() {
	now := time.Now()
	for i := 0; i < 5; i++ {
		s.createTransaction(models.TransactionTypeExpense, int64(i+1), now.AddDate(0, 0, -i))
	}

	page, total, err := s.repo.GetByUserID(s.userID, models.TransactionFilters{Offset: 2, Limit: 2})
	s.NoError(err)
	s.EqualValues(5, total)
	s.Len(page, 2)
}

func (s *TransactionRepositorySuite) TestGetByDateRange_Inclusive() {
	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC)

	s.createTransaction(models.TransactionTypeExpense, 10, from)
	s.createTransaction(models.TransactionTypeExpense, 20, to)
	s.createTransaction(models.TransactionTypeExpense, 30, from.AddDate(0, 0, -1))

	inRange, err := s.repo.GetByDateRange(s.userID, from, to)
	s.NoError(err)
	s.Len(inRange, 2)
}

func (s *TransactionRepositorySuite) TestGetRecentByUserID() {
	now := time.Now()
	for i := 0; i < 7; i++ {
		s.createTransaction(models.TransactionTypeExpense, int64(i+1), now.AddDate(0, 0, -i))
	}

	recent, err := s.repo.GetRecentByUserID(s.userID, 5)
	s.NoError(err)
	s.Len(recent, 5)
	s.True(recent[0].Date.After(recent[4].Date))
}

func (s *TransactionRepositorySuite) TestGetAllTimeTotals() {
	now := time.Now()
	s.createTransaction(models.TransactionTypeIncome, 3000, now)
	s.createTransaction(models.TransactionTypeIncome, 2000, now.AddDate(0, -2, 0))
	s.createTransaction(models.TransactionTypeExpense, 750, now.AddDate(0, -1, 0))

	// transfers never count
	savings := database.CreateTestAccount(s.T(), s.db, s.userID, "Savings", models.AccountTypeSavings)
	transfer := &models.Transaction{
		UserID:          s.userID,
		AccountID:       s.account.ID,
		ToAccountID:     &savings.ID,
		TransactionType: models.TransactionTypeTransfer,
		Amount:          decimal.NewFromInt(999),
		Date:            now,
	}
	s.Require().NoError(s.repo.Create(transfer))

	income, expense, err := s.repo.GetAllTimeTotals(s.userID)
	s.NoError(err)
	s.True(income.Equal(decimal.NewFromInt(5000)), "income %s", income)
	s.True(expense.Equal(decimal.NewFromInt(750)), "expense %s", expense)
}

func (s *TransactionRepositorySuite) TestGetAllTimeTotals_Empty() {
	income, expense, err := s.repo.GetAllTimeTotals(s.userID)
	s.NoError(err)
	s.True(income.IsZero())
	s.True(expense.IsZero())
}

func (s *TransactionRepositorySuite) TestDelete() {
	transaction := s.createTransaction(models.TransactionTypeExpense, 42, time.Now())

	s.NoError(s.repo.Delete(transaction.ID, s.userID))

	_, err := s.repo.GetByID(transaction.ID)
	s.ErrorIs(err, ErrTransactionNotFound)

	s.ErrorIs(s.repo.Delete(uuid.New(), s.userID), ErrTransactionNotFound)
}
