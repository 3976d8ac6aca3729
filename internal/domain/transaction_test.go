package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name: "Well-formed purchase should pass",
			tx: Transaction{
				ID:            "TX-0001",
				FundAccountID: "TD-1234",
				Date:          time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				Type:          TransactionTypePurchase,
				GrossAmount:   decimal.NewFromInt(1000),
				NetAmount:     decimal.NewFromInt(990),
				Price:         decimal.RequireFromString("11.42"),
				UnitBalance:   decimal.RequireFromString("86.6900"),
			},
			wantErr: false,
		},
		{
			name: "Missing fund account should fail",
			tx: Transaction{
				ID:   "TX-0002",
				Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				Type: TransactionTypePurchase,
			},
			wantErr: true,
			errMsg:  "must belong to a fund account",
		},
		{
			name: "Zero date should fail",
			tx: Transaction{
				ID:            "TX-0003",
				FundAccountID: "TD-1234",
				Type:          TransactionTypeDistribution,
			},
			wantErr: true,
			errMsg:  "date cannot be zero",
		},
		{
			name: "Unknown type should fail",
			tx: Transaction{
				ID:            "TX-0004",
				FundAccountID: "TD-1234",
				Date:          time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				Type:          TransactionType("WIRE"),
			},
			wantErr: true,
			errMsg:  "transaction type must be",
		},
		{
			name: "Net amount above gross should fail",
			tx: Transaction{
				ID:            "TX-0005",
				FundAccountID: "TD-1234",
				Date:          time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				Type:          TransactionTypeRedemption,
				GrossAmount:   decimal.NewFromInt(100),
				NetAmount:     decimal.NewFromInt(110),
			},
			wantErr: true,
			errMsg:  "net amount cannot exceed gross",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
