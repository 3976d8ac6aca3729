package valuation

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/advisordesk/internal/domain"
	"github.com/simaogato/advisordesk/internal/usecase/portfolio"
)

// Bundle is the self-consistent set of derived display figures for one
// (client, fund) pair: live figures, their historical counterparts and the
// reporting dates. Every field is a pure function of the two identifiers, so
// re-requesting the bundle always yields byte-identical output.
type Bundle struct {
	ClientID string
	FundID   string

	MarketValue        decimal.Decimal
	CurrentMarketValue string // currency-formatted, 2 decimals

	ShareUnits   decimal.Decimal
	ShareBalance string // 4 decimals

	CostBaseValue decimal.Decimal
	CostBase      string // currency-formatted, always <= market value

	RateOfReturnValue decimal.Decimal
	RateOfReturn      string // signed percent, 5 decimals, explicit +/- prefix

	HistoricalMarketValue  string
	HistoricalShareBalance string

	HistoricalTargetDate time.Time
	ReturnStartDate      time.Time
	ReturnEndDate        time.Time
}

// Engine derives internally-consistent "live" financial figures from a
// client/fund identifier pair. It performs no I/O and holds no state; results
// are safe to memoize by their input keys.
type Engine struct{}

// NewEngine creates a new valuation Engine instance
func NewEngine() *Engine {
	return &Engine{}
}

// Valuation derives the complete display bundle for a (client, fund) pair.
// Logic, in derivation order:
//  1. Market value base in [50, 5000)
//  2. Share balance in [0.1, 1000), kept to 4 decimals
//  3. Cost base = market value x factor in [0.85, 1.00), so the unrealized
//     gain is never negative
//  4. Rate of return in [-5.0, 25.0) percent
//  5. Historical figures = current figures x factor in [0.90, 1.09)
//  6. Three calendar dates, with the return end date 1-3 years after the
//     return start date
func (e *Engine) Valuation(clientID, fundID string) Bundle {
	seed := Seed(clientID, fundID)

	marketValue := decimal.NewFromInt(int64(Derive(seed, 1, 4950, 50)))

	// Tenths of a unit in [1, 10000) => units in [0.1, 1000)
	units := decimal.New(int64(Derive(seed, 7, 9999, 1)), -1)

	costFactor := decimal.New(int64(Derive(seed, 3, 15, 85)), -2)
	costBase := marketValue.Mul(costFactor).Round(2)

	// Hundred-thousandths of a percent in [0, 3000000) => [-5, 25)
	rateOfReturn := decimal.New(int64(Derive(seed, 11, 3000000, 0)), -5).
		Sub(decimal.NewFromInt(5))

	histFactor := decimal.New(int64(Derive(seed, 13, 19, 90)), -2)
	histMarketValue := marketValue.Mul(histFactor).Round(2)
	histUnits := units.Mul(histFactor).Round(4)

	histDate := deriveDate(seed, 17, 2018, 6)
	returnStart := deriveDate(seed, 29, 2019, 5)
	returnEnd := returnStart.AddDate(Derive(seed, 41, 3, 1), 0, 0)

	return Bundle{
		ClientID: clientID,
		FundID:   fundID,

		MarketValue:        marketValue,
		CurrentMarketValue: portfolio.FormatCurrency(marketValue),

		ShareUnits:   units,
		ShareBalance: units.StringFixed(4),

		CostBaseValue: costBase,
		CostBase:      portfolio.FormatCurrency(costBase),

		RateOfReturnValue: rateOfReturn,
		RateOfReturn:      signedPercent(rateOfReturn),

		HistoricalMarketValue:  portfolio.FormatCurrency(histMarketValue),
		HistoricalShareBalance: histUnits.StringFixed(4),

		HistoricalTargetDate: histDate,
		ReturnStartDate:      returnStart,
		ReturnEndDate:        returnEnd,
	}
}

// History derives a deterministic synthetic transaction history for a
// (client, fund) pair, most recent first. The running unit balance steps down
// into the past from the pair's current share balance, so the newest row is
// consistent with the live figures.
func (e *Engine) History(clientID, fundID string, count int) []*domain.Transaction {
	if count <= 0 {
		return nil
	}

	bundle := e.Valuation(clientID, fundID)
	anchor := bundle.ReturnEndDate
	step := bundle.ShareUnits.Div(decimal.NewFromInt(int64(count + 1))).Round(4)

	kinds := []domain.TransactionType{
		domain.TransactionTypePurchase,
		domain.TransactionTypePurchase,
		domain.TransactionTypeDistribution,
		domain.TransactionTypeRedemption,
	}

	transactions := make([]*domain.Transaction, 0, count)
	for i := 0; i < count; i++ {
		txSeed := Seed(clientID, fundID, strconv.Itoa(i))

		// Cents in [5000, 245000) => $50.00 to $2,449.99 gross
		gross := decimal.New(int64(Derive(txSeed, 7, 240000, 5000)), -2)
		fee := decimal.New(int64(Derive(txSeed, 11, 500, 0)), -2)

		transactions = append(transactions, &domain.Transaction{
			ID:            fundID + "-TX" + strconv.Itoa(i+1),
			FundAccountID: fundID,
			Date:          anchor.AddDate(0, -i, 0),
			Type:          kinds[Derive(txSeed, 3, len(kinds), 0)],
			GrossAmount:   gross,
			NetAmount:     gross.Sub(fee),
			Price:         bundle.MarketValue.Div(bundle.ShareUnits).Round(4),
			UnitBalance:   bundle.ShareUnits.Sub(step.Mul(decimal.NewFromInt(int64(i)))),
		})
	}

	return transactions
}

// deriveDate maps seed-derived offsets onto a bounded year/month/day range.
// Days cap at 28 so every derived date is valid in every month.
func deriveDate(seed, multiplier, baseYear, yearSpan int) time.Time {
	year := Derive(seed, multiplier, yearSpan, baseYear)
	month := time.Month(Derive(seed, multiplier+2, 12, 1))
	day := Derive(seed, multiplier+6, 28, 1)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// signedPercent formats a percentage with 5 decimals and an explicit sign
// prefix. Negative values already carry their minus sign.
func signedPercent(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.StringFixed(5) + "%"
	}
	return "+" + d.StringFixed(5) + "%"
}
