package domain

import "errors"

// PlanType represents the registration category of a plan
type PlanType string

const (
	PlanTypeRRSP          PlanType = "RRSP"
	PlanTypeTFSA          PlanType = "TFSA"
	PlanTypeRESP          PlanType = "RESP"
	PlanTypeLIRA          PlanType = "LIRA"
	PlanTypeNonRegistered PlanType = "NON_REGISTERED"
)

// Plan represents a client's account-level grouping of fund holdings.
// A plan owns an ordered set of fund accounts; that membership is fixed for
// the lifetime of the session. The plan's total market value is never stored:
// it is always recomputed as the sum of its fund accounts' market values.
type Plan struct {
	ID             string
	Type           PlanType
	ClientID       string
	FundAccountIDs []string
}

// Validate ensures the plan adheres to domain rules
// Returns an error if validation fails
func (p *Plan) Validate() error {
	if p.ID == "" {
		return errors.New("plan ID cannot be empty")
	}
	if p.ClientID == "" {
		return errors.New("plan must belong to a client")
	}

	switch p.Type {
	case PlanTypeRRSP, PlanTypeTFSA, PlanTypeRESP, PlanTypeLIRA, PlanTypeNonRegistered:
	default:
		return errors.New("plan type must be RRSP, TFSA, RESP, LIRA or NON_REGISTERED")
	}

	return nil
}
