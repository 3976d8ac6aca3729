package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of transaction recorded against a fund account
type TransactionType string

const (
	TransactionTypePurchase     TransactionType = "PURCHASE"
	TransactionTypeRedemption   TransactionType = "REDEMPTION"
	TransactionTypeDistribution TransactionType = "DISTRIBUTION"
	TransactionTypeTransfer     TransactionType = "TRANSFER"
	TransactionTypeFee          TransactionType = "FEE"
)

// Transaction represents a single historical transaction on a fund account.
// Transactions are immutable once created and ordered by date; UnitBalance is
// the fund account's unit balance after the transaction settled.
type Transaction struct {
	ID            string
	FundAccountID string
	Date          time.Time
	Type          TransactionType
	GrossAmount   decimal.Decimal
	NetAmount     decimal.Decimal
	Price         decimal.Decimal
	UnitBalance   decimal.Decimal
}

// Validate ensures the transaction adheres to domain rules
// Returns an error if validation fails
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return errors.New("transaction ID cannot be empty")
	}
	if t.FundAccountID == "" {
		return errors.New("transaction must belong to a fund account")
	}
	if t.Date.IsZero() {
		return errors.New("transaction date cannot be zero")
	}

	switch t.Type {
	case TransactionTypePurchase, TransactionTypeRedemption,
		TransactionTypeDistribution, TransactionTypeTransfer, TransactionTypeFee:
	default:
		return errors.New("transaction type must be PURCHASE, REDEMPTION, DISTRIBUTION, TRANSFER or FEE")
	}

	if t.NetAmount.GreaterThan(t.GrossAmount) {
		return errors.New("transaction net amount cannot exceed gross amount")
	}

	return nil
}
