package domain

import "github.com/shopspring/decimal"

// Company represents a fund company (supplier) in the catalog
type Company struct {
	Name string
}

// Fund represents one investment product offered by a fund company.
// Price is the current unit price used when the fund is chosen as an order
// destination before any holding exists.
type Fund struct {
	Name     string
	Symbol   string
	Category string
	Company  string
	Price    decimal.Decimal
}
