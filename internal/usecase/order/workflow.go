package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/advisordesk/internal/domain"
)

// Step is the single state tag of a workflow. Each order kind walks its own
// subset of steps; invalid flag combinations are unrepresentable because the
// step is the only mutable mode the workflow has.
type Step string

const (
	StepSelect    Step = "SELECT"
	StepFrom      Step = "FROM"
	StepTo        Step = "TO"
	StepDetails   Step = "DETAILS"
	StepSubmitted Step = "SUBMITTED"
)

// Candidate annotates a destination fund with its transfer classification
// relative to the workflow's source holding, so the picker can label every
// option as a switch or a conversion before it is chosen.
type Candidate struct {
	Fund  *domain.Fund
	Class domain.TransferClass
}

// Seed carries the origination context a workflow starts from: who the client
// is, which plan the action was invoked against, and (for fund-context
// actions, sells and pre-filled transfers) the holding itself together with
// its current unit balance.
type Seed struct {
	ClientID  string
	PlanID    string
	From      *domain.FundAccount
	FromUnits decimal.Decimal
}

// Workflow is the stepwise state machine behind the buy, sell, switch and
// convert wizards. All state is local to the instance: cancellation is simply
// discarding it, and submission is the single transition into the terminal
// result.
type Workflow struct {
	ID      uuid.UUID
	Kind    domain.OrderKind
	Context domain.OrderContext
	Step    Step

	ClientID string
	PlanID   string

	From     *domain.FundAccount
	MaxUnits decimal.Decimal

	Company string
	Fund    *domain.Fund

	// Price is the unit price the amount/units derivation runs against:
	// the destination fund's price for a new buy, the holding's price
	// otherwise.
	Price decimal.Decimal

	amount    decimal.Decimal
	units     decimal.Decimal
	hasAmount bool
	hasUnits  bool

	Result *domain.OrderResult
}

// New creates a workflow for the given order kind and origination context.
// Logic per kind:
//   - Buy: plan context starts at the fund selection step; fund context skips
//     straight to details because the fund is already known
//   - Sell: always starts at details over the supplied holding
//   - Switch/Convert: plan context starts at the source step; fund context
//     pre-fills the source and starts at the destination step
func New(kind domain.OrderKind, context domain.OrderContext, seed Seed) (*Workflow, error) {
	w := &Workflow{
		ID:       uuid.New(),
		Kind:     kind,
		Context:  context,
		ClientID: seed.ClientID,
		PlanID:   seed.PlanID,
		From:     seed.From,
		MaxUnits: seed.FromUnits,
	}

	switch kind {
	case domain.OrderKindBuy:
		if context == domain.OrderContextFund {
			if seed.From == nil {
				return nil, fmt.Errorf("%w: a fund-context buy requires the holding", domain.ErrValidation)
			}
			w.Price = seed.From.Price
			w.Step = StepDetails
		} else {
			w.Step = StepSelect
		}

	case domain.OrderKindSell:
		if seed.From == nil {
			return nil, fmt.Errorf("%w: a sell requires an existing holding", domain.ErrValidation)
		}
		w.Price = seed.From.Price
		w.Step = StepDetails

	case domain.OrderKindSwitch, domain.OrderKindConvert:
		if context == domain.OrderContextFund {
			if seed.From == nil {
				return nil, fmt.Errorf("%w: a fund-context transfer requires the holding", domain.ErrValidation)
			}
			w.Price = seed.From.Price
			w.Step = StepTo
		} else {
			w.Step = StepFrom
		}

	default:
		return nil, fmt.Errorf("%w: unknown order kind %q", domain.ErrValidation, kind)
	}

	return w, nil
}

// SelectCompany records the chosen fund company during a plan-context buy.
// It narrows the fund picker; it does not advance the step.
func (w *Workflow) SelectCompany(name string) error {
	if w.Step != StepSelect {
		return w.refuse("company selection")
	}
	if name == "" {
		return fmt.Errorf("%w: company name cannot be empty", domain.ErrValidation)
	}

	w.Company = name
	w.Fund = nil
	return nil
}

// SelectFund records the chosen destination fund and advances to the details
// step. For a buy the fund's own price drives the derivation; for a transfer
// the source holding's price stays in effect (the estimated destination value
// is units x source price), and the overall operation is re-classified
// against the new destination.
func (w *Workflow) SelectFund(fund *domain.Fund) error {
	if fund == nil {
		return fmt.Errorf("%w: a fund must be selected", domain.ErrValidation)
	}

	switch w.Step {
	case StepSelect:
		w.Fund = fund
		w.Company = fund.Company
		w.Price = fund.Price
	case StepTo:
		w.Fund = fund
	default:
		return w.refuse("fund selection")
	}

	w.Step = StepDetails
	w.clearFields()
	return nil
}

// SelectHolding records an existing holding.
// During a plan-context buy it stands in for a catalog fund (buying more of a
// held product); during a transfer it is the source the move draws from.
func (w *Workflow) SelectHolding(account *domain.FundAccount, units decimal.Decimal) error {
	if account == nil {
		return fmt.Errorf("%w: a holding must be selected", domain.ErrValidation)
	}

	switch {
	case w.Kind == domain.OrderKindBuy && w.Step == StepSelect:
		w.From = account
		w.Price = account.Price
		w.MaxUnits = units
		w.Step = StepDetails
		w.clearFields()

	case (w.Kind == domain.OrderKindSwitch || w.Kind == domain.OrderKindConvert) && w.Step == StepFrom:
		w.From = account
		w.Price = account.Price
		w.MaxUnits = units
		w.Step = StepTo

	default:
		return w.refuse("holding selection")
	}

	return nil
}

// SetAmount records an edit of the amount field and re-derives the units
// field: units = amount / price, kept to 4 decimals. A non-positive price
// leaves the derived field blank instead of producing a division blow-up; an
// unparseable edit blanks both fields.
func (w *Workflow) SetAmount(value string) error {
	if w.Step != StepDetails {
		return w.refuse("amount entry")
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		w.clearFields()
		return nil
	}

	w.amount = amount
	w.hasAmount = true

	if w.Price.IsPositive() {
		w.units = amount.Div(w.Price).Round(4)
		w.hasUnits = true
	} else {
		w.hasUnits = false
	}

	return nil
}

// SetUnits records an edit of the units field and re-derives the amount
// field: amount = units x price, kept to 2 decimals. For a sell, input above
// the holding's balance is silently capped down to the balance, mirroring the
// on-blur clamp in the wizard.
func (w *Workflow) SetUnits(value string) error {
	if w.Step != StepDetails {
		return w.refuse("units entry")
	}

	units, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		w.clearFields()
		return nil
	}

	if w.Kind == domain.OrderKindSell && units.GreaterThan(w.MaxUnits) {
		units = w.MaxUnits
	}

	w.units = units
	w.hasUnits = true

	if w.Price.IsPositive() {
		w.amount = units.Mul(w.Price).Round(2)
		w.hasAmount = true
	} else {
		w.hasAmount = false
	}

	return nil
}

// Annotate classifies every candidate destination fund relative to the
// workflow's source holding, so the destination picker can label each option
// before it is chosen.
func (w *Workflow) Annotate(funds []*domain.Fund) []Candidate {
	candidates := make([]Candidate, 0, len(funds))
	for _, fund := range funds {
		candidates = append(candidates, Candidate{
			Fund:  fund,
			Class: Classify(w.sourceCompany(), fund.Company),
		})
	}
	return candidates
}

// EffectiveKind returns the operation the workflow currently labels itself
// as. A transfer re-classifies against the chosen destination: selecting a
// fund from a different company mid-flow turns a switch into a conversion and
// vice versa. Buy and sell never relabel.
func (w *Workflow) EffectiveKind() domain.OrderKind {
	if (w.Kind == domain.OrderKindSwitch || w.Kind == domain.OrderKindConvert) &&
		w.From != nil && w.Fund != nil {
		return Classify(w.sourceCompany(), w.Fund.Company).OrderKind()
	}
	return w.Kind
}

// Submit validates the entered details and produces the terminal order
// result. Validation failures refuse the transition and leave the workflow at
// the details step; after a successful submit the workflow accepts nothing.
func (w *Workflow) Submit() (*domain.OrderResult, error) {
	if w.Step != StepDetails {
		return nil, w.refuse("submission")
	}

	kind := w.EffectiveKind()

	switch kind {
	case domain.OrderKindBuy:
		if !w.hasAmount || !w.amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
		}

	case domain.OrderKindSell:
		if !w.hasUnits || !w.units.IsPositive() {
			return nil, fmt.Errorf("%w: units must be positive", domain.ErrValidation)
		}

	case domain.OrderKindSwitch, domain.OrderKindConvert:
		if !w.hasUnits || !w.units.IsPositive() {
			return nil, fmt.Errorf("%w: units must be positive", domain.ErrValidation)
		}
		if w.units.GreaterThan(w.MaxUnits) {
			return nil, fmt.Errorf("%w: units exceed the available balance", domain.ErrValidation)
		}
	}

	result := &domain.OrderResult{
		ConfirmationID: uuid.New(),
		Kind:           kind,
		ClientID:       w.ClientID,
		PlanID:         w.PlanID,
		Amount:         w.amount,
		Units:          w.units,
		EstimatedValue: w.EstimatedValue(),
		SubmittedAt:    time.Now(),
	}
	if w.From != nil {
		result.SourceFundID = w.From.ID
	}
	if w.Fund != nil {
		result.TargetFund = w.Fund.Symbol
	} else if w.From != nil {
		result.TargetFund = w.From.ProductName
	}

	w.Result = result
	w.Step = StepSubmitted
	return result, nil
}

// Amount returns the entered (or derived) amount; the boolean reports whether
// the field is populated.
func (w *Workflow) Amount() (decimal.Decimal, bool) {
	return w.amount, w.hasAmount
}

// Units returns the entered (or derived) units; the boolean reports whether
// the field is populated.
func (w *Workflow) Units() (decimal.Decimal, bool) {
	return w.units, w.hasUnits
}

// AmountText renders the amount field as the wizard displays it: 2 decimals,
// or blank when the field is unpopulated.
func (w *Workflow) AmountText() string {
	if !w.hasAmount {
		return ""
	}
	return w.amount.StringFixed(2)
}

// UnitsText renders the units field as the wizard displays it: 4 decimals,
// or blank when the field is unpopulated.
func (w *Workflow) UnitsText() string {
	if !w.hasUnits {
		return ""
	}
	return w.units.StringFixed(4)
}

// EstimatedValue returns the value the entered units represent at the
// derivation price. For a transfer this is the estimated destination value.
func (w *Workflow) EstimatedValue() decimal.Decimal {
	if !w.hasUnits || !w.Price.IsPositive() {
		if w.hasAmount {
			return w.amount
		}
		return decimal.Zero
	}
	return w.units.Mul(w.Price).Round(2)
}

// sourceCompany returns the source holding's company, resolving it on the
// fly for records that were never annotated.
func (w *Workflow) sourceCompany() string {
	if w.From == nil {
		return DefaultCompany
	}
	if w.From.CompanyID != "" {
		return w.From.CompanyID
	}
	return ResolveCompany(w.From.Supplier, w.From.ProductName)
}

// clearFields blanks both detail fields
func (w *Workflow) clearFields() {
	w.amount = decimal.Zero
	w.units = decimal.Zero
	w.hasAmount = false
	w.hasUnits = false
}

// refuse builds a validation error for an action the current step does not
// offer. The workflow state is left untouched.
func (w *Workflow) refuse(action string) error {
	return fmt.Errorf("%w: %s not available at step %s", domain.ErrValidation, action, w.Step)
}
