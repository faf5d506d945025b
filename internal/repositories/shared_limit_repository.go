package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSharedLimitNotFound = errors.New("shared credit limit not found")

// sharedLimitRepository implements SharedLimitRepositoryInterface
type sharedLimitRepository struct {
	db *gorm.DB
}

// NewSharedLimitRepository creates a new shared credit limit repository
func NewSharedLimitRepository(db *gorm.DB) SharedLimitRepositoryInterface {
	return &sharedLimitRepository{
		db: db,
	}
}

// Create creates a new shared credit limit
func (r *sharedLimitRepository) Create(limit *models.SharedCreditLimit) error {
	if err := r.db.Create(limit).Error; err != nil {
		return fmt.Errorf("failed to create shared limit: %w", err)
	}
	return nil
}

// GetByID retrieves a shared credit limit by ID
func (r *sharedLimitRepository) GetByID(id uuid.UUID) (*models.SharedCreditLimit, error) {
	limit := &models.SharedCreditLimit{ID: id}
	if err := r.db.First(limit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSharedLimitNotFound
		}
		return nil, fmt.Errorf("failed to get shared limit: %w", err)
	}
	return limit, nil
}

// GetByIDForUser retrieves a shared credit limit by ID scoped to its owner
func (r *sharedLimitRepository) GetByIDForUser(id, userID uuid.UUID) (*models.SharedCreditLimit, error) {
	var limit models.SharedCreditLimit
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&limit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSharedLimitNotFound
		}
		return nil, fmt.Errorf("failed to get shared limit: %w", err)
	}
	return &limit, nil
}

// GetByIDWithAccounts retrieves a shared credit limit with its member accounts preloaded
func (r *sharedLimitRepository) GetByIDWithAccounts(id, userID uuid.UUID) (*models.SharedCreditLimit, error) {
	var limit models.SharedCreditLimit
	if err := r.db.Preload("Accounts").
		Where("id = ? AND user_id = ?", id, userID).First(&limit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSharedLimitNotFound
		}
		return nil, fmt.Errorf("failed to get shared limit with accounts: %w", err)
	}
	return &limit, nil
}

// GetByUserID retrieves all shared credit limits for a user
func (r *sharedLimitRepository) GetByUserID(userID uuid.UUID) ([]models.SharedCreditLimit, error) {
	var limits []models.SharedCreditLimit
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").Find(&limits).Error; err != nil {
		return nil, fmt.Errorf("failed to get shared limits for user: %w", err)
	}
	return limits, nil
}

// GetByUserIDWithAccounts retrieves all shared credit limits for a user with members preloaded
func (r *sharedLimitRepository) GetByUserIDWithAccounts(userID uuid.UUID) ([]models.SharedCreditLimit, error) {
	var limits []models.SharedCreditLimit
	if err := r.db.Preload("Accounts").
		Where("user_id = ?", userID).
		Order("created_at ASC").Find(&limits).Error; err != nil {
		return nil, fmt.Errorf("failed to get shared limits with accounts: %w", err)
	}
	return limits, nil
}

// Update updates a shared credit limit
func (r *sharedLimitRepository) Update(limit *models.SharedCreditLimit) error {
	if err := r.db.Save(limit).Error; err != nil {
		return fmt.Errorf("failed to update shared limit: %w", err)
	}
	return nil
}

// Delete soft deletes a shared credit limit and detaches its member accounts.
// Member cards survive the delete; they simply stop pooling.
func (r *sharedLimitRepository) Delete(id, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.SharedCreditLimit{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete shared limit: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrSharedLimitNotFound
		}

		if err := tx.Model(&models.Account{}).
			Where("shared_credit_limit_id = ?", id).
			Update("shared_credit_limit_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach member accounts: %w", err)
		}

		return nil
	})
}
