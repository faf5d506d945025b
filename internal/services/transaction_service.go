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
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotFound    = errors.New("category not found")
)

// transactionService implements TransactionServiceInterface
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateTransaction records a transaction and applies its effect to account
// balances. Income adds to the source account, expense subtracts, and a
// transfer moves the amount from the source to the destination.
func (s *transactionService) CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	if _, err := s.accountRepo.GetByIDForUser(accountID, userID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to verify account: %w", err)
	}

	transaction := &models.Transaction{
		UserID:          userID,
		AccountID:       accountID,
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Description:     req.Description,
		Date:            req.Date,
	}

	if req.ToAccountID != nil {
		toAccountID, err := uuid.Parse(*req.ToAccountID)
		if err != nil {
			return nil, ErrAccountNotFound
		}
		if _, err := s.accountRepo.GetByIDForUser(toAccountID, userID); err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				return nil, ErrAccountNotFound
			}
			return nil, fmt.Errorf("failed to verify destination account: %w", err)
		}
		transaction.ToAccountID = &toAccountID
	}

	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(*req.CategoryID, userID)
		if err != nil {
			return nil, err
		}
		transaction.CategoryID = categoryID
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := s.applyBalanceEffect(transaction, decimal.NewFromInt(1)); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("transaction_recorded", map[string]string{"type": transaction.TransactionType})
	s.logger.Info("transaction recorded",
		"transaction_id", transaction.ID,
		"user_id", userID,
		"type", transaction.TransactionType)

	return transaction, nil
}

// GetTransaction returns a single transaction scoped to its owner
func (s *transactionService) GetTransaction(transactionID, userID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByIDForUser(transactionID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// ListTransactions returns a filtered, paginated page of a user's transactions
func (s *transactionService) ListTransactions(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	transactions, total, err := s.transactionRepo.GetByUserID(userID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, total, nil
}

// UpdateTransaction edits a transaction's amount, category, description or
// date. The type and accounts are immutable; delete and re-record to move a
// transaction between accounts. Balance effects are re-applied when the
// amount changes.
func (s *transactionService) UpdateTransaction(transactionID, userID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByIDForUser(transactionID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	oldAmount := transaction.Amount

	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(*req.CategoryID, userID)
		if err != nil {
			return nil, err
		}
		transaction.CategoryID = categoryID
	}
	if req.Amount != nil {
		transaction.Amount = *req.Amount
	}
	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Date != nil {
		transaction.Date = *req.Date
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	if !transaction.Amount.Equal(oldAmount) {
		if err := s.applyAmountChange(transaction, oldAmount); err != nil {
			return nil, err
		}
	}

	return transaction, nil
}

// DeleteTransaction removes a transaction and reverses its balance effect
func (s *transactionService) DeleteTransaction(transactionID, userID uuid.UUID) error {
	transaction, err := s.transactionRepo.GetByIDForUser(transactionID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	if err := s.transactionRepo.Delete(transactionID, userID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if err := s.applyBalanceEffect(transaction, decimal.NewFromInt(-1)); err != nil {
		return err
	}

	s.logger.Info("transaction deleted", "transaction_id", transactionID, "user_id", userID)
	return nil
}

// applyBalanceEffect adjusts account balances by the transaction's signed
// delta, scaled by sign (+1 to apply, -1 to reverse).
func (s *transactionService) applyBalanceEffect(transaction *models.Transaction, sign decimal.Decimal) error {
	delta := transaction.BalanceDelta().Mul(sign)
	if err := s.accountRepo.AdjustBalance(transaction.AccountID, delta); err != nil {
		return fmt.Errorf("failed to adjust source balance: %w", err)
	}

	if transaction.IsTransfer() && transaction.ToAccountID != nil {
		credit := transaction.Amount.Mul(sign)
		if err := s.accountRepo.AdjustBalance(*transaction.ToAccountID, credit); err != nil {
			return fmt.Errorf("failed to adjust destination balance: %w", err)
		}
	}

	return nil
}

// applyAmountChange adjusts balances by the difference between the new and
// old amounts after an edit.
func (s *transactionService) applyAmountChange(transaction *models.Transaction, oldAmount decimal.Decimal) error {
	diff := transaction.Amount.Sub(oldAmount)

	sourceDiff := diff
	if !transaction.IsIncome() {
		sourceDiff = diff.Neg()
	}
	if err := s.accountRepo.AdjustBalance(transaction.AccountID, sourceDiff); err != nil {
		return fmt.Errorf("failed to adjust source balance: %w", err)
	}

	if transaction.IsTransfer() && transaction.ToAccountID != nil {
		if err := s.accountRepo.AdjustBalance(*transaction.ToAccountID, diff); err != nil {
			return fmt.Errorf("failed to adjust destination balance: %w", err)
		}
	}

	return nil
}

func (s *transactionService) resolveCategory(rawID string, userID uuid.UUID) (*uuid.UUID, error) {
	categoryID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	if _, err := s.categoryRepo.GetByIDForUser(categoryID, userID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}

	return &categoryID, nil
}
