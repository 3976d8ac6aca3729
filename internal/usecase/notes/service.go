package notes

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/advisordesk/internal/domain"
)

// SortOrder controls the timestamp ordering of query results
type SortOrder string

const (
	SortDesc SortOrder = "desc" // most recent first (default)
	SortAsc  SortOrder = "asc"  // oldest first
)

// TypeFilterAll disables type filtering
const TypeFilterAll = "all"

// Params are the filter/sort parameters of a note query
type Params struct {
	TypeFilter string // "all", empty, or a domain.NoteType value
	SearchTerm string
	SortOrder  SortOrder
}

// Query filters and sorts a heterogeneous note collection.
// Logic, applied left to right:
//  1. Type filter: unless the filter is "all" (or empty), keep only notes
//     whose type equals it
//  2. Search: if the term is non-empty, keep only notes whose summary,
//     description or origin display name contains it, case-insensitively
//  3. Stable sort by timestamp; equal timestamps preserve relative input
//     order (no secondary key)
//
// The input slice is never mutated, and repeating the query with identical
// parameters yields an identical result list.
func Query(collection []*domain.Note, params Params) []*domain.Note {
	result := make([]*domain.Note, 0, len(collection))
	term := strings.ToLower(params.SearchTerm)

	for _, note := range collection {
		if params.TypeFilter != "" && params.TypeFilter != TypeFilterAll &&
			string(note.Type) != params.TypeFilter {
			continue
		}
		if term != "" && !matches(note, term) {
			continue
		}
		result = append(result, note)
	}

	if params.SortOrder == SortAsc {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		})
	} else {
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}

	return result
}

// matches reports whether a note's summary, description or origin display
// name contains the lowercased search term
func matches(note *domain.Note, term string) bool {
	return strings.Contains(strings.ToLower(note.Summary), term) ||
		strings.Contains(strings.ToLower(note.Description), term) ||
		strings.Contains(strings.ToLower(note.OriginName), term)
}

// Service handles note aggregation and appends over the note store
type Service struct {
	NoteRepo domain.NoteRepository
}

// NewService creates a new notes Service instance
func NewService(noteRepo domain.NoteRepository) *Service {
	return &Service{
		NoteRepo: noteRepo,
	}
}

// QueryByClient loads a client's notes and applies the query parameters
func (s *Service) QueryByClient(ctx context.Context, clientID string, params Params) ([]*domain.Note, error) {
	collection, err := s.NoteRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes for client %s: %w", clientID, err)
	}
	return Query(collection, params), nil
}

// Add validates and appends a new note, stamping its ID and timestamp
func (s *Service) Add(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}

	if err := note.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.NoteRepo.Append(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to append note: %w", err)
	}

	return note, nil
}
