package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/dto"
	"fintrack/internal/finance"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrSharedLimitMemberInvalid = errors.New("only credit card accounts can join a shared credit limit")
	ErrNegativeSharedLimit      = errors.New("shared limit total must not be negative")
)

// sharedLimitService implements SharedLimitServiceInterface
type sharedLimitService struct {
	limitRepo   repositories.SharedLimitRepositoryInterface
	accountRepo repositories.AccountRepositoryInterface
	logger      *slog.Logger
}

// NewSharedLimitService creates a shared credit limit service
func NewSharedLimitService(
	limitRepo repositories.SharedLimitRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	logger *slog.Logger,
) SharedLimitServiceInterface {
	return &sharedLimitService{
		limitRepo:   limitRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// CreateSharedLimit creates a credit limit pool and optionally attaches the
// requested credit card accounts as initial members.
func (s *sharedLimitService) CreateSharedLimit(userID uuid.UUID, req *dto.CreateSharedLimitRequest) (*models.SharedCreditLimit, error) {
	limit := &models.SharedCreditLimit{
		UserID:      userID,
		Name:        req.Name,
		TotalLimit:  req.TotalLimit,
		Description: req.Description,
	}

	if err := limit.Validate(); err != nil {
		return nil, err
	}

	if err := s.limitRepo.Create(limit); err != nil {
		return nil, fmt.Errorf("failed to create shared limit: %w", err)
	}

	for _, rawID := range req.AccountIDs {
		accountID, err := uuid.Parse(rawID)
		if err != nil {
			return nil, ErrAccountNotFound
		}
		if err := s.AttachAccount(limit.ID, accountID, userID); err != nil {
			return nil, err
		}
	}

	s.logger.Info("shared limit created",
		"shared_limit_id", limit.ID,
		"user_id", userID,
		"members", len(req.AccountIDs))

	return limit, nil
}

// GetSharedLimit returns one pool with its computed utilization stats
func (s *sharedLimitService) GetSharedLimit(limitID, userID uuid.UUID) (*models.SharedLimitOverview, error) {
	limit, err := s.limitRepo.GetByIDWithAccounts(limitID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSharedLimitNotFound) {
			return nil, ErrSharedLimitNotFound
		}
		return nil, fmt.Errorf("failed to get shared limit: %w", err)
	}

	overview, err := s.buildOverview(limit)
	if err != nil {
		return nil, err
	}
	return overview, nil
}

// GetUserSharedLimits returns every pool a user owns with computed stats
func (s *sharedLimitService) GetUserSharedLimits(userID uuid.UUID) ([]models.SharedLimitOverview, error) {
	limits, err := s.limitRepo.GetByUserIDWithAccounts(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shared limits: %w", err)
	}

	overviews := make([]models.SharedLimitOverview, 0, len(limits))
	for i := range limits {
		overview, err := s.buildOverview(&limits[i])
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, *overview)
	}
	return overviews, nil
}

// UpdateSharedLimit applies a partial update to a pool's name, limit or description
func (s *sharedLimitService) UpdateSharedLimit(limitID, userID uuid.UUID, req *dto.UpdateSharedLimitRequest) (*models.SharedCreditLimit, error) {
	limit, err := s.limitRepo.GetByIDForUser(limitID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrSharedLimitNotFound) {
			return nil, ErrSharedLimitNotFound
		}
		return nil, fmt.Errorf("failed to get shared limit: %w", err)
	}

	if req.Name != nil {
		limit.Name = *req.Name
	}
	if req.TotalLimit != nil {
		limit.TotalLimit = *req.TotalLimit
	}
	if req.Description != nil {
		limit.Description = *req.Description
	}

	if err := limit.Validate(); err != nil {
		return nil, err
	}

	if err := s.limitRepo.Update(limit); err != nil {
		return nil, fmt.Errorf("failed to update shared limit: %w", err)
	}

	return limit, nil
}

// DeleteSharedLimit removes a pool. Member cards survive the deletion with
// their pool reference cleared.
func (s *sharedLimitService) DeleteSharedLimit(limitID, userID uuid.UUID) error {
	if err := s.limitRepo.Delete(limitID, userID); err != nil {
		if errors.Is(err, repositories.ErrSharedLimitNotFound) {
			return ErrSharedLimitNotFound
		}
		return fmt.Errorf("failed to delete shared limit: %w", err)
	}

	s.logger.Info("shared limit deleted", "shared_limit_id", limitID, "user_id", userID)
	return nil
}

// AttachAccount joins a credit card account to a pool
func (s *sharedLimitService) AttachAccount(limitID, accountID, userID uuid.UUID) error {
	if _, err := s.limitRepo.GetByIDForUser(limitID, userID); err != nil {
		if errors.Is(err, repositories.ErrSharedLimitNotFound) {
			return ErrSharedLimitNotFound
		}
		return fmt.Errorf("failed to verify shared limit: %w", err)
	}

	account, err := s.accountRepo.GetByIDForUser(accountID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to get account: %w", err)
	}

	if !account.IsCredit() {
		return ErrSharedLimitMemberInvalid
	}

	account.SharedCreditLimitID = &limitID
	if err := s.accountRepo.Update(account); err != nil {
		return fmt.Errorf("failed to attach account: %w", err)
	}

	return nil
}

// DetachAccount removes a card from a pool without touching the card itself
func (s *sharedLimitService) DetachAccount(limitID, accountID, userID uuid.UUID) error {
	account, err := s.accountRepo.GetByIDForUser(accountID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to get account: %w", err)
	}

	if account.SharedCreditLimitID == nil || *account.SharedCreditLimitID != limitID {
		return ErrSharedLimitNotFound
	}

	account.SharedCreditLimitID = nil
	if err := s.accountRepo.Update(account); err != nil {
		return fmt.Errorf("failed to detach account: %w", err)
	}

	return nil
}

func (s *sharedLimitService) buildOverview(limit *models.SharedCreditLimit) (*models.SharedLimitOverview, error) {
	record := sharedLimitRecordFromModel(limit)

	stats, err := finance.CalculateSharedLimitStats(record)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidTotalLimit) {
			return nil, ErrNegativeSharedLimit
		}
		return nil, fmt.Errorf("failed to compute shared limit stats: %w", err)
	}

	linked := make([]models.LinkedAccountSummary, 0, len(stats.LinkedAccounts))
	for _, member := range stats.LinkedAccounts {
		linked = append(linked, models.LinkedAccountSummary{
			AccountID:   member.AccountID,
			Name:        member.Name,
			Outstanding: member.Outstanding,
		})
	}

	return &models.SharedLimitOverview{
		ID:               stats.ID,
		Name:             stats.Name,
		TotalLimit:       stats.TotalLimit,
		TotalOutstanding: stats.TotalOutstanding,
		AvailableCredit:  stats.AvailableCredit,
		Utilization:      stats.Utilization,
		LinkedAccounts:   linked,
	}, nil
}

// sharedLimitRecordFromModel maps a stored pool and its members into the
// engine's record type.
func sharedLimitRecordFromModel(limit *models.SharedCreditLimit) finance.SharedLimitRecord {
	members := make([]finance.CreditCardRecord, 0, len(limit.Accounts))
	for i := range limit.Accounts {
		members = append(members, creditCardRecordFromModel(&limit.Accounts[i]))
	}

	return finance.SharedLimitRecord{
		ID:          limit.ID,
		Name:        limit.Name,
		TotalLimit:  limit.TotalLimit,
		Description: limit.Description,
		Members:     members,
	}
}

// creditCardRecordFromModel maps a stored credit account into the engine's
// record type.
func creditCardRecordFromModel(account *models.Account) finance.CreditCardRecord {
	return finance.CreditCardRecord{
		AccountID:               account.ID,
		Name:                    account.Name,
		Balance:                 account.Balance,
		CreditLimit:             account.CreditLimit,
		BillingCycleDay:         account.BillingCycleDay,
		PaymentDueDay:           account.PaymentDueDay,
		UtilizationAlertEnabled: account.UtilizationAlertEnabled,
		UtilizationAlertPercent: account.UtilizationAlertPercent,
		SharedLimitID:           account.SharedCreditLimitID,
	}
}
