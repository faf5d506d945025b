package repositories

import (
	"strings"
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// CategoryRepositorySuite defines the test suite for CategoryRepository
type CategoryRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   CategoryRepositoryInterface
	userID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.userID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCategoryRepositorySuite runs the test suite
func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

func (s *CategoryRepositorySuite) TestCreate() {
	category := &models.Category{UserID: s.userID, Name: "Groceries", Type: models.CategoryTypeExpense}

	err := s.repo.Create(category)
	s.NoError(err)
	s.NotEqual(uuid.Nil, category.ID)
}

func (s *CategoryRepositorySuite) TestCreate_DuplicateNameAndType() {
	first := &models.Category{UserID: s.userID, Name: "Groceries", Type: models.CategoryTypeExpense}
	s.NoError(s.repo.Create(first))

	duplicate := &models.Category{UserID: s.userID, Name: "Groceries", Type: models.CategoryTypeExpense}
	err := s.repo.Create(duplicate)
	s.Error(err)
	// Check for either PostgreSQL or SQLite duplicate error messages
	s.True(errorIsDuplicate(err), "expected duplicate error but got: %v", err)
}

func (s *CategoryRepositorySuite) TestCreate_SameNameDifferentType() {
	expense := &models.Category{UserID: s.userID, Name: "Consulting", Type: models.CategoryTypeExpense}
	income := &models.Category{UserID: s.userID, Name: "Consulting", Type: models.CategoryTypeIncome}

	s.NoError(s.repo.Create(expense))
	s.NoError(s.repo.Create(income))
}

func (s *CategoryRepositorySuite) TestCreateBatch_SeedsDefaults() {
	specs := models.DefaultCategories()
	categories := make([]models.Category, 0, len(specs))
	for _, spec := range specs {
		categories = append(categories, models.Category{
			UserID:   s.userID,
			Name:     spec.Name,
			Type:     spec.Type,
			Icon:     spec.Icon,
			Color:    spec.Color,
			IsSystem: true,
		})
	}

	s.NoError(s.repo.CreateBatch(categories))

	count, err := s.repo.CountByUserID(s.userID)
	s.NoError(err)
	s.EqualValues(len(specs), count)
}

func (s *CategoryRepositorySuite) TestGetByUserIDAndType() {
	s.NoError(s.repo.Create(&models.Category{UserID: s.userID, Name: "Salary", Type: models.CategoryTypeIncome}))
	s.NoError(s.repo.Create(&models.Category{UserID: s.userID, Name: "Groceries", Type: models.CategoryTypeExpense}))

	income, err := s.repo.GetByUserIDAndType(s.userID, models.CategoryTypeIncome)
	s.NoError(err)
	s.Len(income, 1)
	s.Equal("Salary", income[0].Name)
}

func (s *CategoryRepositorySuite) TestDelete_RefusedWhenReferenced() {
	category := &models.Category{UserID: s.userID, Name: "Groceries", Type: models.CategoryTypeExpense}
	s.NoError(s.repo.Create(category))

	account := database.CreateTestAccount(s.T(), s.db, s.userID, "Checking", models.AccountTypeChecking)
	transaction := &models.Transaction{
		UserID:          s.userID,
		AccountID:       account.ID,
		CategoryID:      &category.ID,
		TransactionType: models.TransactionTypeExpense,
		Amount:          decimal.NewFromInt(10),
	}
	s.NoError(s.db.Create(transaction).Error)

	s.ErrorIs(s.repo.Delete(category.ID, s.userID), ErrCategoryInUse)
}

func (s *CategoryRepositorySuite) TestDelete() {
	category := &models.Category{UserID: s.userID, Name: "Unused", Type: models.CategoryTypeExpense}
	s.NoError(s.repo.Create(category))

	s.NoError(s.repo.Delete(category.ID, s.userID))

	_, err := s.repo.GetByID(category.ID)
	s.ErrorIs(err, ErrCategoryNotFound)
}

func errorIsDuplicate(err error) bool {
	return strings.Contains(err.Error(), "duplicate key value") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
