package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalPtr(v decimal.Decimal) *decimal.Decimal { return &v }
func intPtr(v int) *int                             { return &v }

func TestAccount_Validate(t *testing.T) {
	validUserID := uuid.New()
	sharedLimitID := uuid.New()

	tests := []struct {
		name    string
		account Account
		wantErr error
	}{
		{
			name: "valid checking account",
			account: Account{
				UserID:      validUserID,
				Name:        "Everyday Checking",
				AccountType: AccountTypeChecking,
				Balance:     decimal.NewFromFloat(1000.50),
			},
		},
		{
			name: "valid credit account with credit fields",
			account: Account{
				UserID:                  validUserID,
				Name:                    "Rewards Card",
				AccountType:             AccountTypeCredit,
				Balance:                 decimal.NewFromInt(-500),
				CreditLimit:             decimalPtr(decimal.NewFromInt(2000)),
				BillingCycleDay:         intPtr(1),
				PaymentDueDay:           intPtr(15),
				UtilizationAlertEnabled: true,
				UtilizationAlertPercent: intPtr(50),
			},
		},
		{
			name: "valid pooled credit account without own limit",
			account: Account{
				UserID:              validUserID,
				Name:                "Pooled Card",
				AccountType:         AccountTypeCredit,
				SharedCreditLimitID: &sharedLimitID,
			},
		},
		{
			name: "missing user ID",
			account: Account{
				Name:        "Everyday Checking",
				AccountType: AccountTypeChecking,
			},
			wantErr: assert.AnError,
		},
		{
			name: "missing name",
			account: Account{
				UserID:      validUserID,
				AccountType: AccountTypeChecking,
			},
			wantErr: ErrAccountNameRequired,
		},
		{
			name: "invalid account type",
			account: Account{
				UserID:      validUserID,
				Name:        "Mystery",
				AccountType: "invalid",
			},
			wantErr: ErrInvalidAccountType,
		},
		{
			name: "credit limit on checking account",
			account: Account{
				UserID:      validUserID,
				Name:        "Everyday Checking",
				AccountType: AccountTypeChecking,
				CreditLimit: decimalPtr(decimal.NewFromInt(1000)),
			},
			wantErr: ErrCreditFieldsOnNonCredit,
		},
		{
			name: "shared limit link on savings account",
			account: Account{
				UserID:              validUserID,
				Name:                "Rainy Day",
				AccountType:         AccountTypeSavings,
				SharedCreditLimitID: &sharedLimitID,
			},
			wantErr: ErrCreditFieldsOnNonCredit,
		},
		{
			name: "due day out of range",
			account: Account{
				UserID:        validUserID,
				Name:          "Rewards Card",
				AccountType:   AccountTypeCredit,
				PaymentDueDay: intPtr(32),
			},
			wantErr: ErrInvalidDayOfMonth,
		},
		{
			name: "billing cycle day zero",
			account: Account{
				UserID:          validUserID,
				Name:            "Rewards Card",
				AccountType:     AccountTypeCredit,
				BillingCycleDay: intPtr(0),
			},
			wantErr: ErrInvalidDayOfMonth,
		},
		{
			name: "alert percent above 100",
			account: Account{
				UserID:                  validUserID,
				Name:                    "Rewards Card",
				AccountType:             AccountTypeCredit,
				UtilizationAlertPercent: intPtr(101),
			},
			wantErr: ErrInvalidAlertPercent,
		},
		{
			name: "alert percent zero is valid",
			account: Account{
				UserID:                  validUserID,
				Name:                    "Rewards Card",
				AccountType:             AccountTypeCredit,
				UtilizationAlertEnabled: true,
				UtilizationAlertPercent: intPtr(0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr != nil {
				assert.Error(t, err)
				if tt.wantErr != assert.AnError {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccount_NegativeBalanceAllowed(t *testing.T) {
	// Unlike bank ledgers, tracked accounts may legitimately go negative.
	account := Account{
		UserID:      uuid.New(),
		Name:        "Overdrawn Checking",
		AccountType: AccountTypeChecking,
		Balance:     decimal.NewFromInt(-250),
	}

	assert.NoError(t, account.Validate())
}

func TestAccount_IsCredit(t *testing.T) {
	assert.True(t, (&Account{AccountType: AccountTypeCredit}).IsCredit())
	assert.False(t, (&Account{AccountType: AccountTypeLoan}).IsCredit())
}

func TestIsValidAccountType(t *testing.T) {
	for _, accountType := range []string{
		AccountTypeChecking, AccountTypeSavings, AccountTypeCredit,
		AccountTypeCash, AccountTypeInvestment, AccountTypeLoan, AccountTypeOther,
	} {
		assert.True(t, IsValidAccountType(accountType), accountType)
	}

	assert.False(t, IsValidAccountType("money_market"))
	assert.False(t, IsValidAccountType(""))
}
