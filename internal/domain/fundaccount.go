package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// FundAccount represents a single holding of one investment product within a
// plan. The market value is kept as a display string with currency decoration
// ("$92,650.00") and is the source of truth for aggregation; share balances
// and other live figures are derived, not stored.
//
// CompanyID is the fund company resolved once at ingestion time from the
// supplier code and product name, so classification is a lookup rather than a
// keyword search on every read.
type FundAccount struct {
	ID          string
	PlanID      string
	Supplier    string
	ProductName string
	Price       decimal.Decimal
	MarketValue string
	CompanyID   string
}

// Validate ensures the fund account adheres to domain rules
// Returns an error if validation fails
func (f *FundAccount) Validate() error {
	if f.ID == "" {
		return errors.New("fund account ID cannot be empty")
	}
	if f.PlanID == "" {
		return errors.New("fund account must belong to a plan")
	}
	if f.ProductName == "" {
		return errors.New("fund account product name cannot be empty")
	}
	if f.Price.IsNegative() {
		return errors.New("fund account price cannot be negative")
	}
	return nil
}
