package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// NoteType represents the kind of entity a note was written against
type NoteType string

const (
	NoteTypeClient            NoteType = "CLIENT"
	NoteTypePlan              NoteType = "PLAN"
	NoteTypeInvestmentProduct NoteType = "INVESTMENT_PRODUCT"
	NoteTypeTransaction       NoteType = "TRANSACTION"
)

// Note represents a free-form annotation owned by a client in aggregate.
// Each note points at exactly one origin entity (a plan, a product, a
// transaction or the client itself) by ID and display name; no referential
// integrity is enforced against the origin.
type Note struct {
	ID          uuid.UUID
	ClientID    string
	Type        NoteType
	Summary     string
	Description string
	CreatedAt   time.Time
	OriginID    string
	OriginName  string
	Author      string
}

// Validate ensures the note adheres to domain rules
// Returns an error if validation fails
func (n *Note) Validate() error {
	if n.ClientID == "" {
		return errors.New("note must belong to a client")
	}
	if n.Summary == "" {
		return errors.New("note summary cannot be empty")
	}
	if n.Author == "" {
		return errors.New("note author cannot be empty")
	}

	switch n.Type {
	case NoteTypeClient, NoteTypePlan, NoteTypeInvestmentProduct, NoteTypeTransaction:
	default:
		return errors.New("note type must be CLIENT, PLAN, INVESTMENT_PRODUCT or TRANSACTION")
	}

	return nil
}
