package domain

import (
	"context"

	"github.com/google/uuid"
)

// ClientDirectory defines the interface for client identity lookups
type ClientDirectory interface {
	// Lookup retrieves a client by its ID
	Lookup(ctx context.Context, clientID string) (*Client, error)
}

// PlanRepository defines the interface for plan lookups
type PlanRepository interface {
	// GetByID retrieves a plan by its ID
	GetByID(ctx context.Context, planID string) (*Plan, error)

	// ListByClient retrieves all plans owned by a client, in fixture order
	ListByClient(ctx context.Context, clientID string) ([]*Plan, error)
}

// FundAccountRepository defines the interface for fund account lookups
type FundAccountRepository interface {
	// GetByID retrieves a fund account by its ID
	GetByID(ctx context.Context, fundAccountID string) (*FundAccount, error)

	// ListByPlan retrieves all fund accounts held by a plan, in fixture order
	ListByPlan(ctx context.Context, planID string) ([]*FundAccount, error)
}

// TransactionRepository defines the interface for transaction history lookups
type TransactionRepository interface {
	// ListByFundAccount retrieves the transactions recorded against a fund
	// account, most recent first
	ListByFundAccount(ctx context.Context, fundAccountID string) ([]*Transaction, error)
}

// FundCatalog defines the interface for the fund/company catalog
type FundCatalog interface {
	// Companies retrieves every fund company in the catalog
	Companies(ctx context.Context) ([]*Company, error)

	// FundsOf retrieves the funds offered by a company
	FundsOf(ctx context.Context, companyName string) ([]*Fund, error)

	// FundBySymbol retrieves a single fund by its symbol
	FundBySymbol(ctx context.Context, symbol string) (*Fund, error)
}

// NoteRepository defines the interface for note persistence operations
type NoteRepository interface {
	// ListByClient retrieves every note owned by a client
	ListByClient(ctx context.Context, clientID string) ([]*Note, error)

	// Append stores a new note
	Append(ctx context.Context, note *Note) error

	// GetByID retrieves a note by its ID
	GetByID(ctx context.Context, id uuid.UUID) (*Note, error)
}
