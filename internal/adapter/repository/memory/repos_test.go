package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/simaogato/advisordesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFundAccounts_AnnotatedWithCompanyAtLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewFundAccountRepository(NewStore())

	tests := []struct {
		accountID string
		company   string
	}{
		{accountID: "TD-1234", company: "TD Asset Management"},
		{accountID: "RBC-5678", company: "RBC Global Asset Management"},
		{accountID: "FID-9012", company: "Fidelity Investments"},
		{accountID: "CIG-7890", company: "CI Global Asset Management"},
	}

	for _, tt := range tests {
		account, err := repo.GetByID(ctx, tt.accountID)
		require.NoError(t, err)
		assert.Equal(t, tt.company, account.CompanyID)
	}
}

func TestClientDirectory_Lookup(t *testing.T) {
	ctx := context.Background()
	directory := NewClientDirectory(NewStore())

	client, err := directory.Lookup(ctx, "CL002")
	require.NoError(t, err)
	assert.Equal(t, "David Kowalski", client.Name)

	_, err = directory.Lookup(ctx, "CL999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlanRepository_ListByClient(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanRepository(NewStore())

	plans, err := repo.ListByClient(ctx, "CL002")
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, domain.PlanTypeRRSP, plans[0].Type)
	assert.Equal(t, []string{"TD-1234", "RBC-5678"}, plans[0].FundAccountIDs)
}

func TestFundCatalog_SymbolIndex(t *testing.T) {
	ctx := context.Background()
	catalog := NewFundCatalog(NewStore())

	fund, err := catalog.FundBySymbol(ctx, "TDB972")
	require.NoError(t, err)
	assert.Equal(t, "TD Dividend Growth Fund", fund.Name)

	_, err = catalog.FundBySymbol(ctx, "ZZZ999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteRepository_AppendIsVisible(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository(NewStore())

	before, err := repo.ListByClient(ctx, "CL002")
	require.NoError(t, err)

	note := &domain.Note{
		ID:       uuid.New(),
		ClientID: "CL002",
		Type:     domain.NoteTypeClient,
		Summary:  "Beneficiary update requested",
		Author:   "J. Fontaine",
	}
	require.NoError(t, repo.Append(ctx, note))

	after, err := repo.ListByClient(ctx, "CL002")
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	got, err := repo.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beneficiary update requested", got.Summary)
}
