package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()
	otherAccountID := uuid.New()

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name: "valid expense",
			transaction: Transaction{
				UserID:          userID,
				AccountID:       accountID,
				TransactionType: TransactionTypeExpense,
				Amount:          decimal.NewFromFloat(42.50),
			},
		},
		{
			name: "valid transfer",
			transaction: Transaction{
				UserID:          userID,
				AccountID:       accountID,
				ToAccountID:     &otherAccountID,
				TransactionType: TransactionTypeTransfer,
				Amount:          decimal.NewFromInt(500),
			},
		},
		{
			name: "invalid type",
			transaction: Transaction{
				UserID:          userID,
				AccountID:       accountID,
				TransactionType: "debit",
				Amount:          decimal.NewFromInt(10),
			},
			wantErr: ErrInvalidTransactionType,
		},
		{
			name: "zero amount",
			transaction: Transaction{
				UserID:          userID,
				AccountID:       accountID,
				TransactionType: TransactionTypeIncome,
				Amount:          decimal.Zero,
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "negative amount",
			transaction: Transaction{
				UserID:          userID,
				AccountID:       accountID,
				TransactionType: TransactionTypeExpense,
				Amount:          decimal.NewFromInt(-5),
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "transfer without target",
			transaction: Transaction{
				UserID:          userID,
				AccountID:       accountID,
				TransactionType: TransactionTypeTransfer,
				Amount:          decimal.NewFromInt(100),
			},
			wantErr: ErrTransferTargetRequired,
		},
		{
			name: "transfer to itself",
			transaction: Transaction{
				UserID:          userID,
				AccountID:       accountID,
				ToAccountID:     &accountID,
				TransactionType: TransactionTypeTransfer,
				Amount:          decimal.NewFromInt(100),
			},
			wantErr: ErrTransferToSameAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_BalanceDelta(t *testing.T) {
	income := Transaction{TransactionType: TransactionTypeIncome, Amount: decimal.NewFromInt(100)}
	expense := Transaction{TransactionType: TransactionTypeExpense, Amount: decimal.NewFromInt(40)}
	transfer := Transaction{TransactionType: TransactionTypeTransfer, Amount: decimal.NewFromInt(25)}

	assert.Equal(t, "100", income.BalanceDelta().String())
	assert.Equal(t, "-40", expense.BalanceDelta().String())
	assert.Equal(t, "-25", transfer.BalanceDelta().String())
}

func TestTransaction_TypePredicates(t *testing.T) {
	assert.True(t, (&Transaction{TransactionType: TransactionTypeTransfer}).IsTransfer())
	assert.True(t, (&Transaction{TransactionType: TransactionTypeIncome}).IsIncome())
	assert.True(t, (&Transaction{TransactionType: TransactionTypeExpense}).IsExpense())
	assert.False(t, (&Transaction{TransactionType: TransactionTypeIncome}).IsExpense())
}
