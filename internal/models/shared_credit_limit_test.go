package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSharedCreditLimit_Validate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		limit   SharedCreditLimit
		wantErr error
	}{
		{
			name:  "valid",
			limit: SharedCreditLimit{UserID: userID, Name: "Family Cards", TotalLimit: decimal.NewFromInt(10000)},
		},
		{
			name:  "zero limit is allowed",
			limit: SharedCreditLimit{UserID: userID, Name: "Frozen Pool", TotalLimit: decimal.Zero},
		},
		{
			name:    "missing name",
			limit:   SharedCreditLimit{UserID: userID, TotalLimit: decimal.NewFromInt(1000)},
			wantErr: ErrSharedLimitNameRequired,
		},
		{
			name:    "negative limit",
			limit:   SharedCreditLimit{UserID: userID, Name: "Family Cards", TotalLimit: decimal.NewFromInt(-100)},
			wantErr: ErrNegativeSharedLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.limit.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
