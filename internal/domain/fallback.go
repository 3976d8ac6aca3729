package domain

import "github.com/shopspring/decimal"

// Fallback records substituted when a lookup fails. Availability over
// correctness: a demo-data console must never reach an unrenderable state, so
// unknown identifiers resolve to these fixed records instead of surfacing an
// error to the caller.

// FallbackClient returns the default client record for an unknown client ID.
func FallbackClient(id string) *Client {
	return &Client{ID: id, Name: "Valued Client"}
}

// FallbackFundAccount returns the default fund account for an unknown fund
// account ID. Its market value parses to zero, so it contributes nothing to
// any aggregate.
func FallbackFundAccount(id string) *FundAccount {
	return &FundAccount{
		ID:          id,
		PlanID:      "",
		Supplier:    "",
		ProductName: "Unlisted Fund",
		Price:       decimal.Zero,
		MarketValue: "$0.00",
	}
}

// FallbackPlan returns the default plan record for an unknown plan ID. It
// holds no fund accounts, so its derived total is zero.
func FallbackPlan(id, clientID string) *Plan {
	return &Plan{ID: id, Type: PlanTypeNonRegistered, ClientID: clientID}
}
