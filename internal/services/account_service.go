package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountInUse        = errors.New("account has transactions and cannot be deleted")
	ErrInvalidAccountData  = errors.New("invalid account data")
	ErrNotCreditAccount    = errors.New("account is not a credit card")
	ErrSharedLimitNotFound = errors.New("shared credit limit not found")
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
	limitRepo   repositories.SharedLimitRepositoryInterface
	logger      *slog.Logger
}

// NewAccountService creates an account service
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	limitRepo repositories.SharedLimitRepositoryInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo: accountRepo,
		limitRepo:   limitRepo,
		logger:      logger,
	}
}

// CreateAccount creates a new account for a user
func (s *accountService) CreateAccount(userID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error) {
	account := &models.Account{
		UserID:                  userID,
		Name:                    req.Name,
		AccountType:             req.AccountType,
		Currency:                req.Currency,
		CreditLimit:             req.CreditLimit,
		BillingCycleDay:         req.BillingCycleDay,
		PaymentDueDay:           req.PaymentDueDay,
		UtilizationAlertEnabled: req.UtilizationAlertEnabled,
		UtilizationAlertPercent: req.UtilizationAlertPercent,
	}

	if req.Balance != nil {
		account.Balance = *req.Balance
	} else {
		account.Balance = decimal.Zero
	}

	if req.SharedCreditLimitID != nil {
		limitID, err := uuid.Parse(*req.SharedCreditLimitID)
		if err != nil {
			return nil, models.ErrCreditFieldsOnNonCredit
		}
		if err := s.verifySharedLimitMembership(limitID, userID, account); err != nil {
			return nil, err
		}
		account.SharedCreditLimitID = &limitID
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account created",
		"account_id", account.ID,
		"user_id", userID,
		"account_type", account.AccountType)

	return account, nil
}

// GetAccount returns a single account scoped to its owner
func (s *accountService) GetAccount(accountID, userID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByIDForUser(accountID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetUserAccounts returns all of a user's accounts, optionally including archived ones
func (s *accountService) GetUserAccounts(userID uuid.UUID, includeArchived bool) ([]models.Account, error) {
	accounts, err := s.accountRepo.GetByUserID(userID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount applies a partial update to an account. Fields left nil in the
// request keep their stored values; the account type is immutable.
func (s *accountService) UpdateAccount(accountID, userID uuid.UUID, req *dto.UpdateAccountRequest) (*models.Account, error) {
	account, err := s.accountRepo.GetByIDForUser(accountID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Balance != nil {
		account.Balance = *req.Balance
	}
	if req.CreditLimit != nil {
		account.CreditLimit = req.CreditLimit
	}
	if req.BillingCycleDay != nil {
		account.BillingCycleDay = req.BillingCycleDay
	}
	if req.PaymentDueDay != nil {
		account.PaymentDueDay = req.PaymentDueDay
	}
	if req.UtilizationAlertEnabled != nil {
		account.UtilizationAlertEnabled = *req.UtilizationAlertEnabled
	}
	if req.UtilizationAlertPercent != nil {
		account.UtilizationAlertPercent = req.UtilizationAlertPercent
	}
	if req.SharedCreditLimitID != nil {
		limitID, err := uuid.Parse(*req.SharedCreditLimitID)
		if err != nil {
			return nil, models.ErrCreditFieldsOnNonCredit
		}
		if err := s.verifySharedLimitMembership(limitID, userID, account); err != nil {
			return nil, err
		}
		account.SharedCreditLimitID = &limitID
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return account, nil
}

// ArchiveAccount hides an account from active listings without deleting its history
func (s *accountService) ArchiveAccount(accountID, userID uuid.UUID) error {
	if err := s.accountRepo.Archive(accountID, userID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to archive account: %w", err)
	}

	s.logger.Info("account archived", "account_id", accountID, "user_id", userID)
	return nil
}

// UnarchiveAccount returns an archived account to active listings
func (s *accountService) UnarchiveAccount(accountID, userID uuid.UUID) error {
	if err := s.accountRepo.Unarchive(accountID, userID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to unarchive account: %w", err)
	}

	s.logger.Info("account unarchived", "account_id", accountID, "user_id", userID)
	return nil
}

// DeleteAccount removes an account that has no transaction history. Accounts
// with history must be archived instead.
func (s *accountService) DeleteAccount(accountID, userID uuid.UUID) error {
	if err := s.accountRepo.Delete(accountID, userID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrAccountNotFound):
			return ErrAccountNotFound
		case errors.Is(err, repositories.ErrAccountInUse):
			return ErrAccountInUse
		default:
			return fmt.Errorf("failed to delete account: %w", err)
		}
	}

	s.logger.Info("account deleted", "account_id", accountID, "user_id", userID)
	return nil
}

// verifySharedLimitMembership checks that the target pool exists, belongs to
// the same user, and that the joining account is a credit card.
func (s *accountService) verifySharedLimitMembership(limitID, userID uuid.UUID, account *models.Account) error {
	if !account.IsCredit() {
		return ErrSharedLimitMemberInvalid
	}

	if _, err := s.limitRepo.GetByIDForUser(limitID, userID); err != nil {
		if errors.Is(err, repositories.ErrSharedLimitNotFound) {
			return ErrSharedLimitNotFound
		}
		return fmt.Errorf("failed to verify shared limit: %w", err)
	}

	return nil
}
