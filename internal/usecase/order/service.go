package order

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/advisordesk/internal/domain"
	"github.com/simaogato/advisordesk/internal/usecase/valuation"
)

// Service manages the single active order workflow and resolves the
// identifiers arriving from the presentation layer into domain records.
// Exactly one workflow is active at a time: starting a new one discards any
// uncommitted prior one. The workflow itself is exclusively owned by its
// dialog; the mutex only serializes handle dispatch.
type Service struct {
	mu     sync.Mutex
	active *Workflow

	Catalog   domain.FundCatalog
	Accounts  domain.FundAccountRepository
	Valuation *valuation.Engine
}

// NewService creates a new order Service instance
func NewService(catalog domain.FundCatalog, accounts domain.FundAccountRepository, engine *valuation.Engine) *Service {
	return &Service{
		Catalog:   catalog,
		Accounts:  accounts,
		Valuation: engine,
	}
}

// StartInput carries the parameters of the button that opened the wizard
type StartInput struct {
	Kind          domain.OrderKind
	Context       domain.OrderContext
	ClientID      string
	PlanID        string
	FundAccountID string
}

// Input carries one user interaction for Advance. Exactly one field should be
// set; fields are checked in declaration order and the first populated one is
// dispatched.
type Input struct {
	Company    *string
	FundSymbol *string
	HoldingID  *string
	Amount     *string
	Units      *string
}

// Start opens a new workflow, discarding any uncommitted active one.
// A fund account ID, when supplied, is resolved to the holding (falling back
// to the default record for unknown ids) and its current unit balance is
// derived from the valuation engine.
func (s *Service) Start(ctx context.Context, input StartInput) (*Workflow, error) {
	seed := Seed{
		ClientID: input.ClientID,
		PlanID:   input.PlanID,
	}

	if input.FundAccountID != "" {
		account, err := s.Accounts.GetByID(ctx, input.FundAccountID)
		if err != nil {
			account = domain.FallbackFundAccount(input.FundAccountID)
		}
		seed.From = account
		seed.FromUnits = s.Valuation.Valuation(input.ClientID, account.ID).ShareUnits
	}

	w, err := New(input.Kind, input.Context, seed)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.active = w
	s.mu.Unlock()

	return w, nil
}

// Get retrieves the active workflow by handle
func (s *Service) Get(handle uuid.UUID) (*Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(handle)
}

// Advance applies one user interaction to the active workflow and returns
// its updated state. Validation refusals come back as ErrValidation-wrapped
// errors with the state unchanged.
func (s *Service) Advance(ctx context.Context, handle uuid.UUID, input Input) (*Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.lookup(handle)
	if err != nil {
		return nil, err
	}

	switch {
	case input.Company != nil:
		return w, w.SelectCompany(*input.Company)

	case input.FundSymbol != nil:
		fund, err := s.Catalog.FundBySymbol(ctx, *input.FundSymbol)
		if err != nil {
			return w, fmt.Errorf("%w: unknown fund %q", domain.ErrValidation, *input.FundSymbol)
		}
		return w, w.SelectFund(fund)

	case input.HoldingID != nil:
		account, err := s.Accounts.GetByID(ctx, *input.HoldingID)
		if err != nil {
			account = domain.FallbackFundAccount(*input.HoldingID)
		}
		units := s.Valuation.Valuation(w.ClientID, account.ID).ShareUnits
		return w, w.SelectHolding(account, units)

	case input.Amount != nil:
		return w, w.SetAmount(*input.Amount)

	case input.Units != nil:
		return w, w.SetUnits(*input.Units)
	}

	return w, fmt.Errorf("%w: no input supplied", domain.ErrValidation)
}

// Candidates lists a company's funds annotated with their transfer
// classification relative to the active workflow's source holding, for the
// destination picker.
func (s *Service) Candidates(ctx context.Context, handle uuid.UUID, companyName string) ([]Candidate, error) {
	s.mu.Lock()
	w, err := s.lookup(handle)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	funds, err := s.Catalog.FundsOf(ctx, companyName)
	if err != nil {
		return nil, fmt.Errorf("failed to list funds of %q: %w", companyName, err)
	}

	return w.Annotate(funds), nil
}

// Submit validates and commits the active workflow, producing the terminal
// order result.
func (s *Service) Submit(handle uuid.UUID) (*domain.OrderResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.lookup(handle)
	if err != nil {
		return nil, err
	}
	return w.Submit()
}

// Cancel discards the active workflow and all of its state
func (s *Service) Cancel(handle uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(handle); err != nil {
		return err
	}
	s.active = nil
	return nil
}

// lookup resolves a handle against the active workflow. Callers hold the
// mutex.
func (s *Service) lookup(handle uuid.UUID) (*Workflow, error) {
	if s.active == nil || s.active.ID != handle {
		return nil, fmt.Errorf("%w: no active workflow %s", domain.ErrNotFound, handle)
	}
	return s.active, nil
}
