package services

import (
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
)

// AccountServiceInterface defines account-related business operations
type AccountServiceInterface interface {
	CreateAccount(userID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error)
	GetAccount(accountID, userID uuid.UUID) (*models.Account, error)
	GetUserAccounts(userID uuid.UUID, includeArchived bool) ([]models.Account, error)
	UpdateAccount(accountID, userID uuid.UUID, req *dto.UpdateAccountRequest) (*models.Account, error)
	ArchiveAccount(accountID, userID uuid.UUID) error
	UnarchiveAccount(accountID, userID uuid.UUID) error
	DeleteAccount(accountID, userID uuid.UUID) error
}

// TransactionServiceInterface defines transaction recording and querying operations
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(transactionID, userID uuid.UUID) (*models.Transaction, error)
	ListTransactions(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	UpdateTransaction(transactionID, userID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(transactionID, userID uuid.UUID) error
}

// CategoryServiceInterface defines category management operations
type CategoryServiceInterface interface {
	EnsureDefaultCategories(userID uuid.UUID) error
	CreateCategory(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error)
	GetUserCategories(userID uuid.UUID, categoryType string) ([]models.Category, error)
	UpdateCategory(categoryID, userID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(categoryID, userID uuid.UUID) error
}

// SharedLimitServiceInterface defines shared credit limit pool operations
type SharedLimitServiceInterface interface {
	CreateSharedLimit(userID uuid.UUID, req *dto.CreateSharedLimitRequest) (*models.SharedCreditLimit, error)
	GetSharedLimit(limitID, userID uuid.UUID) (*models.SharedLimitOverview, error)
	GetUserSharedLimits(userID uuid.UUID) ([]models.SharedLimitOverview, error)
	UpdateSharedLimit(limitID, userID uuid.UUID, req *dto.UpdateSharedLimitRequest) (*models.SharedCreditLimit, error)
	DeleteSharedLimit(limitID, userID uuid.UUID) error
	AttachAccount(limitID, accountID, userID uuid.UUID) error
	DetachAccount(limitID, accountID, userID uuid.UUID) error
}

// DashboardServiceInterface assembles the dashboard overview for a user
type DashboardServiceInterface interface {
	GetDashboard(userID uuid.UUID, now time.Time) (*models.DashboardSummary, error)
}

// CreditInsightServiceInterface derives credit card utilization views and alerts
type CreditInsightServiceInterface interface {
	GetCreditSummary(userID uuid.UUID, now time.Time) (*models.CreditSummary, error)
	GetCreditAlerts(userID uuid.UUID, now time.Time) (*models.CreditAlertsOverview, error)
}

// TokenServiceInterface defines JWT issuing and verification operations
type TokenServiceInterface interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// MetricsRecorderInterface records application metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// DemoSeederInterface populates a demo user with realistic sample data
type DemoSeederInterface interface {
	Seed(userID uuid.UUID) error
}
