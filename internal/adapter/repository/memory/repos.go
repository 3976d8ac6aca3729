package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/simaogato/advisordesk/internal/domain"
)

// clientDirectory implements domain.ClientDirectory
type clientDirectory struct {
	store *Store
}

// NewClientDirectory creates a new in-memory client directory
func NewClientDirectory(store *Store) domain.ClientDirectory {
	return &clientDirectory{store: store}
}

// Lookup retrieves a client by its ID
func (r *clientDirectory) Lookup(ctx context.Context, clientID string) (*domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	client, ok := r.store.clients[clientID]
	if !ok {
		return nil, fmt.Errorf("%w: client %s", domain.ErrNotFound, clientID)
	}
	return client, nil
}

// planRepository implements domain.PlanRepository
type planRepository struct {
	store *Store
}

// NewPlanRepository creates a new in-memory plan repository
func NewPlanRepository(store *Store) domain.PlanRepository {
	return &planRepository{store: store}
}

// GetByID retrieves a plan by its ID
func (r *planRepository) GetByID(ctx context.Context, planID string) (*domain.Plan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	plan, ok := r.store.plans[planID]
	if !ok {
		return nil, fmt.Errorf("%w: plan %s", domain.ErrNotFound, planID)
	}
	return plan, nil
}

// ListByClient retrieves all plans owned by a client, in fixture order
func (r *planRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Plan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	plans := make([]*domain.Plan, 0, len(r.store.clientPlans[clientID]))
	for _, planID := range r.store.clientPlans[clientID] {
		plans = append(plans, r.store.plans[planID])
	}
	return plans, nil
}

// fundAccountRepository implements domain.FundAccountRepository
type fundAccountRepository struct {
	store *Store
}

// NewFundAccountRepository creates a new in-memory fund account repository
func NewFundAccountRepository(store *Store) domain.FundAccountRepository {
	return &fundAccountRepository{store: store}
}

// GetByID retrieves a fund account by its ID
func (r *fundAccountRepository) GetByID(ctx context.Context, fundAccountID string) (*domain.FundAccount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[fundAccountID]
	if !ok {
		return nil, fmt.Errorf("%w: fund account %s", domain.ErrNotFound, fundAccountID)
	}
	return account, nil
}

// ListByPlan retrieves a plan's fund accounts in the plan's holding order
func (r *fundAccountRepository) ListByPlan(ctx context.Context, planID string) ([]*domain.FundAccount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	plan, ok := r.store.plans[planID]
	if !ok {
		return nil, fmt.Errorf("%w: plan %s", domain.ErrNotFound, planID)
	}

	accounts := make([]*domain.FundAccount, 0, len(plan.FundAccountIDs))
	for _, id := range plan.FundAccountIDs {
		if account, ok := r.store.accounts[id]; ok {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

// transactionRepository implements domain.TransactionRepository
type transactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a new in-memory transaction repository
func NewTransactionRepository(store *Store) domain.TransactionRepository {
	return &transactionRepository{store: store}
}

// ListByFundAccount retrieves the transactions recorded against a fund
// account, most recent first (fixtures are stored in that order)
func (r *transactionRepository) ListByFundAccount(ctx context.Context, fundAccountID string) ([]*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.transactions[fundAccountID], nil
}

// fundCatalog implements domain.FundCatalog
type fundCatalog struct {
	store *Store
}

// NewFundCatalog creates a new in-memory fund catalog
func NewFundCatalog(store *Store) domain.FundCatalog {
	return &fundCatalog{store: store}
}

// Companies retrieves every fund company in the catalog
func (r *fundCatalog) Companies(ctx context.Context) ([]*domain.Company, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.companies, nil
}

// FundsOf retrieves the funds offered by a company
func (r *fundCatalog) FundsOf(ctx context.Context, companyName string) ([]*domain.Fund, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.companyFunds[companyName], nil
}

// FundBySymbol retrieves a single fund by its symbol
func (r *fundCatalog) FundBySymbol(ctx context.Context, symbol string) (*domain.Fund, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	fund, ok := r.store.symbolIndex[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: fund %s", domain.ErrNotFound, symbol)
	}
	return fund, nil
}

// noteRepository implements domain.NoteRepository
type noteRepository struct {
	store *Store
}

// NewNoteRepository creates a new in-memory note repository
func NewNoteRepository(store *Store) domain.NoteRepository {
	return &noteRepository{store: store}
}

// ListByClient retrieves every note owned by a client
func (r *noteRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	collection := r.store.notes[clientID]
	out := make([]*domain.Note, len(collection))
	copy(out, collection)
	return out, nil
}

// Append stores a new note
func (r *noteRepository) Append(ctx context.Context, note *domain.Note) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.notes[note.ClientID] = append(r.store.notes[note.ClientID], note)
	return nil
}

// GetByID retrieves a note by its ID
func (r *noteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, collection := range r.store.notes {
		for _, note := range collection {
			if note.ID == id {
				return note, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: note %s", domain.ErrNotFound, id)
}
