package repositories

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.Account, error)
	GetByUserID(userID uuid.UUID, includeArchived bool) ([]models.Account, error)
	GetCreditAccountsByUserID(userID uuid.UUID) ([]models.Account, error)
	GetBySharedLimitID(sharedLimitID uuid.UUID) ([]models.Account, error)
	Update(account *models.Account) error
	AdjustBalance(accountID uuid.UUID, delta decimal.Decimal) error
	ClearSharedLimitRef(sharedLimitID uuid.UUID) error
	Archive(id, userID uuid.UUID) error
	Unarchive(id, userID uuid.UUID) error
	Delete(id, userID uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetByDateRange(userID uuid.UUID, from, to time.Time) ([]models.Transaction, error)
	GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error)
	GetAllTimeTotals(userID uuid.UUID) (income, expense decimal.Decimal, err error)
	Update(transaction *models.Transaction) error
	Delete(id, userID uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	CreateBatch(categories []models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.Category, error)
	GetByUserID(userID uuid.UUID) ([]models.Category, error)
	GetByUserIDAndType(userID uuid.UUID, categoryType string) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id, userID uuid.UUID) error
	CountByUserID(userID uuid.UUID) (int64, error)
}

// SharedLimitRepositoryInterface defines the contract for shared credit limit repository operations
type SharedLimitRepositoryInterface interface {
	Create(limit *models.SharedCreditLimit) error
	GetByID(id uuid.UUID) (*models.SharedCreditLimit, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.SharedCreditLimit, error)
	GetByIDWithAccounts(id, userID uuid.UUID) (*models.SharedCreditLimit, error)
	GetByUserID(userID uuid.UUID) ([]models.SharedCreditLimit, error)
	GetByUserIDWithAccounts(userID uuid.UUID) ([]models.SharedCreditLimit, error)
	Update(limit *models.SharedCreditLimit) error
	Delete(id, userID uuid.UUID) error
}
