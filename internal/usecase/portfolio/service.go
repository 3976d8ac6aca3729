package portfolio

import (
	"context"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"github.com/simaogato/advisordesk/internal/domain"
)

// ParseCurrency parses a currency-decorated display string ("$92,650.00")
// into a decimal amount.
// Logic: strip every rune that is not a digit or '.', then parse the
// remainder. A parse failure contributes 0 rather than an error, so no input
// can poison an aggregate.
func ParseCurrency(s string) decimal.Decimal {
	stripped := make([]rune, 0, len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			stripped = append(stripped, r)
		}
	}

	d, err := decimal.NewFromString(string(stripped))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatCurrency renders a decimal amount as a display string with
// locale-aware grouping and exactly two decimal places.
func FormatCurrency(d decimal.Decimal) string {
	cents := d.Round(2).Shift(2).IntPart()
	return money.New(cents, money.CAD).Display()
}

// Service aggregates fund account market values up the portfolio hierarchy:
// fund account -> plan -> client
type Service struct {
	FundAccountRepo domain.FundAccountRepository
}

// NewService creates a new portfolio Service instance
func NewService(fundAccountRepo domain.FundAccountRepository) *Service {
	return &Service{
		FundAccountRepo: fundAccountRepo,
	}
}

// PlanTotal computes a plan's total market value as the sum of its fund
// accounts' parsed market values.
// An unknown fund account ID resolves to the fallback record, whose market
// value parses to zero, so a bad reference can lower a total but never break
// it. The sum is order-independent.
func (s *Service) PlanTotal(ctx context.Context, fundAccountIDs []string) decimal.Decimal {
	total := decimal.Zero
	for _, id := range fundAccountIDs {
		account, err := s.FundAccountRepo.GetByID(ctx, id)
		if err != nil {
			account = domain.FallbackFundAccount(id)
		}
		total = total.Add(ParseCurrency(account.MarketValue))
	}
	return total
}

// ClientTotal computes a client's total market value as the sum of the plan
// totals of every supplied plan.
func (s *Service) ClientTotal(ctx context.Context, plans []*domain.Plan) decimal.Decimal {
	total := decimal.Zero
	for _, plan := range plans {
		total = total.Add(s.PlanTotal(ctx, plan.FundAccountIDs))
	}
	return total
}
