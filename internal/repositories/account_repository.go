package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountInUse    = errors.New("account has transactions and cannot be deleted")
)

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by ID
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	account := &models.Account{ID: id}
	if err := r.db.First(account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetByIDForUser retrieves an account by ID scoped to its owner
func (r *accountRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByUserID retrieves all accounts for a user, optionally including archived ones
func (r *accountRepository) GetByUserID(userID uuid.UUID, includeArchived bool) ([]models.Account, error) {
	var accounts []models.Account
	query := r.db.Where("user_id = ?", userID)
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}
	if err := query.Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for user: %w", err)
	}
	return accounts, nil
}

// GetCreditAccountsByUserID retrieves the active credit card accounts for a user
func (r *accountRepository) GetCreditAccountsByUserID(userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("user_id = ? AND account_type = ? AND archived = ?",
		userID, models.AccountTypeCredit, false).
		Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get credit accounts: %w", err)
	}
	return accounts, nil
}

// GetBySharedLimitID retrieves the accounts linked to a shared credit limit
func (r *accountRepository) GetBySharedLimitID(sharedLimitID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("shared_credit_limit_id = ?", sharedLimitID).
		Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for shared limit: %w", err)
	}
	return accounts, nil
}

// Update updates an account
func (r *accountRepository) Update(account *models.Account) error {
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// AdjustBalance applies a signed delta to an account balance.
// Row-level locking prevents concurrent balance modifications.
func (r *accountRepository) AdjustBalance(accountID uuid.UUID, delta decimal.Decimal) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		account := &models.Account{ID: accountID}
		if err := tx.Set("gorm:query_option", "FOR UPDATE").
			First(account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to lock account: %w", err)
		}

		newBalance := account.Balance.Add(delta)
		if err := tx.Model(account).Update("balance", newBalance).Error; err != nil {
			return fmt.Errorf("failed to adjust account balance: %w", err)
		}

		return nil
	})
}

// ClearSharedLimitRef detaches every account from a shared credit limit
func (r *accountRepository) ClearSharedLimitRef(sharedLimitID uuid.UUID) error {
	if err := r.db.Model(&models.Account{}).
		Where("shared_credit_limit_id = ?", sharedLimitID).
		Update("shared_credit_limit_id", nil).Error; err != nil {
		return fmt.Errorf("failed to clear shared limit references: %w", err)
	}
	return nil
}

// Archive marks an account as archived without touching its history
func (r *accountRepository) Archive(id, userID uuid.UUID) error {
	return r.setArchived(id, userID, true)
}

// Unarchive returns an archived account to active listings
func (r *accountRepository) Unarchive(id, userID uuid.UUID) error {
	return r.setArchived(id, userID, false)
}

func (r *accountRepository) setArchived(id, userID uuid.UUID, archived bool) error {
	result := r.db.Model(&models.Account{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("archived", archived)

	if result.Error != nil {
		return fmt.Errorf("failed to update account archived flag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// Delete soft deletes an account that has no transactions
func (r *accountRepository) Delete(id, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Transaction{}).
			Where("account_id = ? OR to_account_id = ?", id, id).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count account transactions: %w", err)
		}
		if count > 0 {
			return ErrAccountInUse
		}

		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Account{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete account: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAccountNotFound
		}
		return nil
	})
}
