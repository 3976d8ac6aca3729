package notes

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simaogato/advisordesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockNoteRepository is a mock implementation of NoteRepository for testing
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Note, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Note), args.Error(1)
}

func (m *MockNoteRepository) Append(ctx context.Context, note *domain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 12, 0, 0, 0, time.UTC)
}

func sampleNotes() []*domain.Note {
	return []*domain.Note{
		{ClientID: "CL002", Type: domain.NoteTypePlan, Summary: "RRSP contribution room", Description: "Discussed carry-forward room", OriginName: "RRSP", Author: "J. Fontaine", CreatedAt: day(3)},
		{ClientID: "CL002", Type: domain.NoteTypeClient, Summary: "Annual review booked", Description: "Client prefers mornings", OriginName: "David Kowalski", Author: "J. Fontaine", CreatedAt: day(8)},
		{ClientID: "CL002", Type: domain.NoteTypeInvestmentProduct, Summary: "Fee schedule change", Description: "TD bond fund MER drops in July", OriginName: "TD Canadian Bond Index Fund", Author: "M. Osei", CreatedAt: day(5)},
		{ClientID: "CL002", Type: domain.NoteTypePlan, Summary: "TFSA overcontribution warning", Description: "Flagged by compliance", OriginName: "TFSA", Author: "M. Osei", CreatedAt: day(5)},
	}
}

func TestQuery_TypeFilter(t *testing.T) {
	result := Query(sampleNotes(), Params{TypeFilter: string(domain.NoteTypePlan)})

	require.Len(t, result, 2)
	for _, note := range result {
		assert.Equal(t, domain.NoteTypePlan, note.Type)
	}
}

func TestQuery_TypeFilterAllKeepsEverything(t *testing.T) {
	assert.Len(t, Query(sampleNotes(), Params{TypeFilter: TypeFilterAll}), 4)
	assert.Len(t, Query(sampleNotes(), Params{}), 4)
}

func TestQuery_SearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	// Matches the summary
	assert.Len(t, Query(sampleNotes(), Params{SearchTerm: "rrsp CONTRIBUTION"}), 1)

	// Matches the description
	assert.Len(t, Query(sampleNotes(), Params{SearchTerm: "compliance"}), 1)

	// Matches the origin display name
	assert.Len(t, Query(sampleNotes(), Params{SearchTerm: "kowalski"}), 1)

	// No match
	assert.Len(t, Query(sampleNotes(), Params{SearchTerm: "mortgage"}), 0)
}

func TestQuery_SortDescending(t *testing.T) {
	result := Query(sampleNotes(), Params{SortOrder: SortDesc})

	require.Len(t, result, 4)
	for i := 1; i < len(result); i++ {
		assert.False(t, result[i].CreatedAt.After(result[i-1].CreatedAt),
			"timestamps must be non-increasing")
	}
}

func TestQuery_SortAscending(t *testing.T) {
	result := Query(sampleNotes(), Params{SortOrder: SortAsc})

	require.Len(t, result, 4)
	for i := 1; i < len(result); i++ {
		assert.False(t, result[i].CreatedAt.Before(result[i-1].CreatedAt),
			"timestamps must be non-decreasing")
	}
}

func TestQuery_EqualTimestampsPreserveInputOrder(t *testing.T) {
	collection := sampleNotes()
	result := Query(collection, Params{SortOrder: SortAsc})

	// Two notes share day(5); the fee schedule note comes first in the input
	require.Len(t, result, 4)
	assert.Equal(t, "Fee schedule change", result[1].Summary)
	assert.Equal(t, "TFSA overcontribution warning", result[2].Summary)
}

func TestQuery_Idempotent(t *testing.T) {
	collection := sampleNotes()
	params := Params{TypeFilter: string(domain.NoteTypePlan), SearchTerm: "r", SortOrder: SortDesc}

	first := Query(collection, params)
	second := Query(collection, params)

	assert.Equal(t, first, second)
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	collection := sampleNotes()
	original := make([]*domain.Note, len(collection))
	copy(original, collection)

	Query(collection, Params{SortOrder: SortAsc})

	assert.Equal(t, original, collection)
}

func TestQueryByClient_LoadsThroughRepository(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockNoteRepository)
	service := NewService(mockRepo)

	mockRepo.On("ListByClient", ctx, "CL002").Return(sampleNotes(), nil)

	result, err := service.QueryByClient(ctx, "CL002", Params{TypeFilter: string(domain.NoteTypeClient)})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Annual review booked", result[0].Summary)
	mockRepo.AssertExpectations(t)
}

func TestAdd_StampsAndAppends(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockNoteRepository)
	service := NewService(mockRepo)

	mockRepo.On("Append", ctx, mock.MatchedBy(func(note *domain.Note) bool {
		return note.ID != uuid.Nil && !note.CreatedAt.IsZero()
	})).Return(nil)

	note, err := service.Add(ctx, &domain.Note{
		ClientID: "CL002",
		Type:     domain.NoteTypeClient,
		Summary:  "Risk tolerance reconfirmed",
		Author:   "J. Fontaine",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, note.ID)
	assert.False(t, note.CreatedAt.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestAdd_InvalidNoteRefused(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockNoteRepository)
	service := NewService(mockRepo)

	_, err := service.Add(ctx, &domain.Note{
		ClientID: "CL002",
		Type:     domain.NoteTypeClient,
		// Missing summary and author
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	mockRepo.AssertNotCalled(t, "Append")
}
