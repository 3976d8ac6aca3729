package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderKind represents the kind of order a representative can place
type OrderKind string

const (
	OrderKindBuy     OrderKind = "BUY"
	OrderKindSell    OrderKind = "SELL"
	OrderKindSwitch  OrderKind = "SWITCH"
	OrderKindConvert OrderKind = "CONVERT"
)

// OrderContext represents where an order was initiated from: against an
// aggregate plan balance or against a single holding
type OrderContext string

const (
	OrderContextPlan OrderContext = "PLAN"
	OrderContextFund OrderContext = "FUND"
)

// TransferClass classifies a fund-to-fund move. A move between two funds of
// the same fund company is a switch; a move across companies is a conversion.
type TransferClass string

const (
	TransferClassSwitch  TransferClass = "SWITCH"
	TransferClassConvert TransferClass = "CONVERT"
)

// OrderKind maps a transfer class onto the order kind it relabels the
// workflow to.
func (tc TransferClass) OrderKind() OrderKind {
	if tc == TransferClassConvert {
		return OrderKindConvert
	}
	return OrderKindSwitch
}

// OrderResult is the terminal confirmation produced when a workflow is
// submitted. It is a transient value object: displayed, acknowledged, never
// persisted and never edited.
type OrderResult struct {
	ConfirmationID uuid.UUID
	Kind           OrderKind
	ClientID       string
	PlanID         string
	SourceFundID   string
	TargetFund     string
	Amount         decimal.Decimal
	Units          decimal.Decimal
	EstimatedValue decimal.Decimal
	SubmittedAt    time.Time
}
