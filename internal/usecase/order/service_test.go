package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/simaogato/advisordesk/internal/domain"
	"github.com/simaogato/advisordesk/internal/usecase/valuation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFundCatalog is a mock implementation of FundCatalog for testing
type MockFundCatalog struct {
	mock.Mock
}

func (m *MockFundCatalog) Companies(ctx context.Context) ([]*domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Company), args.Error(1)
}

func (m *MockFundCatalog) FundsOf(ctx context.Context, companyName string) ([]*domain.Fund, error) {
	args := m.Called(ctx, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Fund), args.Error(1)
}

func (m *MockFundCatalog) FundBySymbol(ctx context.Context, symbol string) (*domain.Fund, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

// MockFundAccountRepository is a mock implementation of FundAccountRepository for testing
type MockFundAccountRepository struct {
	mock.Mock
}

func (m *MockFundAccountRepository) GetByID(ctx context.Context, fundAccountID string) (*domain.FundAccount, error) {
	args := m.Called(ctx, fundAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundAccount), args.Error(1)
}

func (m *MockFundAccountRepository) ListByPlan(ctx context.Context, planID string) ([]*domain.FundAccount, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FundAccount), args.Error(1)
}

func TestServiceStart_ResolvesHoldingAndBalance(t *testing.T) {
	ctx := context.Background()
	mockCatalog := new(MockFundCatalog)
	mockAccounts := new(MockFundAccountRepository)
	service := NewService(mockCatalog, mockAccounts, valuation.NewEngine())

	mockAccounts.On("GetByID", ctx, "TD-1234").Return(tdHolding(), nil)

	w, err := service.Start(ctx, StartInput{
		Kind:          domain.OrderKindSell,
		Context:       domain.OrderContextFund,
		ClientID:      "CL002",
		PlanID:        "P-2001",
		FundAccountID: "TD-1234",
	})
	require.NoError(t, err)

	// The holding's balance comes from the valuation engine
	expected := valuation.NewEngine().Valuation("CL002", "TD-1234").ShareUnits
	assert.True(t, w.MaxUnits.Equal(expected))
	assert.Equal(t, StepDetails, w.Step)

	mockAccounts.AssertExpectations(t)
}

func TestServiceStart_UnknownHoldingFallsBack(t *testing.T) {
	ctx := context.Background()
	mockCatalog := new(MockFundCatalog)
	mockAccounts := new(MockFundAccountRepository)
	service := NewService(mockCatalog, mockAccounts, valuation.NewEngine())

	mockAccounts.On("GetByID", ctx, "GHOST-404").Return(nil, domain.ErrNotFound)

	w, err := service.Start(ctx, StartInput{
		Kind:          domain.OrderKindSell,
		Context:       domain.OrderContextFund,
		ClientID:      "CL002",
		FundAccountID: "GHOST-404",
	})
	require.NoError(t, err)

	// The fallback record stands in; the wizard still renders
	assert.Equal(t, "Unlisted Fund", w.From.ProductName)
}

func TestServiceStart_DiscardsPriorWorkflow(t *testing.T) {
	ctx := context.Background()
	mockCatalog := new(MockFundCatalog)
	mockAccounts := new(MockFundAccountRepository)
	service := NewService(mockCatalog, mockAccounts, valuation.NewEngine())

	first, err := service.Start(ctx, StartInput{
		Kind: domain.OrderKindBuy, Context: domain.OrderContextPlan,
		ClientID: "CL002", PlanID: "P-2001",
	})
	require.NoError(t, err)

	second, err := service.Start(ctx, StartInput{
		Kind: domain.OrderKindBuy, Context: domain.OrderContextPlan,
		ClientID: "CL002", PlanID: "P-2002",
	})
	require.NoError(t, err)

	// The first workflow's handle is dead
	_, err = service.Get(first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.Get(second.ID)
	assert.NoError(t, err)
}

func TestServiceAdvance_DispatchesBuySelection(t *testing.T) {
	ctx := context.Background()
	mockCatalog := new(MockFundCatalog)
	mockAccounts := new(MockFundAccountRepository)
	service := NewService(mockCatalog, mockAccounts, valuation.NewEngine())

	mockCatalog.On("FundBySymbol", ctx, "TDB972").Return(tdFund(), nil)

	w, err := service.Start(ctx, StartInput{
		Kind: domain.OrderKindBuy, Context: domain.OrderContextPlan,
		ClientID: "CL002", PlanID: "P-2001",
	})
	require.NoError(t, err)

	company := "TD Asset Management"
	_, err = service.Advance(ctx, w.ID, Input{Company: &company})
	require.NoError(t, err)

	symbol := "TDB972"
	_, err = service.Advance(ctx, w.ID, Input{FundSymbol: &symbol})
	require.NoError(t, err)
	assert.Equal(t, StepDetails, w.Step)

	amount := "250"
	_, err = service.Advance(ctx, w.ID, Input{Amount: &amount})
	require.NoError(t, err)

	result, err := service.Submit(w.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderKindBuy, result.Kind)
	assert.Equal(t, "TDB972", result.TargetFund)
}

func TestServiceAdvance_UnknownFundRefused(t *testing.T) {
	ctx := context.Background()
	mockCatalog := new(MockFundCatalog)
	mockAccounts := new(MockFundAccountRepository)
	service := NewService(mockCatalog, mockAccounts, valuation.NewEngine())

	mockCatalog.On("FundBySymbol", ctx, "NOPE01").Return(nil, domain.ErrNotFound)

	w, err := service.Start(ctx, StartInput{
		Kind: domain.OrderKindBuy, Context: domain.OrderContextPlan, ClientID: "CL002",
	})
	require.NoError(t, err)

	symbol := "NOPE01"
	_, err = service.Advance(ctx, w.ID, Input{FundSymbol: &symbol})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, StepSelect, w.Step)
}

func TestServiceAdvance_EmptyInputRefused(t *testing.T) {
	ctx := context.Background()
	service := NewService(new(MockFundCatalog), new(MockFundAccountRepository), valuation.NewEngine())

	w, err := service.Start(ctx, StartInput{
		Kind: domain.OrderKindBuy, Context: domain.OrderContextPlan, ClientID: "CL002",
	})
	require.NoError(t, err)

	_, err = service.Advance(ctx, w.ID, Input{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestServiceCancel_DiscardsState(t *testing.T) {
	ctx := context.Background()
	service := NewService(new(MockFundCatalog), new(MockFundAccountRepository), valuation.NewEngine())

	w, err := service.Start(ctx, StartInput{
		Kind: domain.OrderKindBuy, Context: domain.OrderContextPlan, ClientID: "CL002",
	})
	require.NoError(t, err)

	require.NoError(t, service.Cancel(w.ID))

	_, err = service.Get(w.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Cancelling twice is a not-found, not a crash
	assert.ErrorIs(t, service.Cancel(w.ID), domain.ErrNotFound)
}

func TestServiceCandidates_AnnotatesAgainstSource(t *testing.T) {
	ctx := context.Background()
	mockCatalog := new(MockFundCatalog)
	mockAccounts := new(MockFundAccountRepository)
	service := NewService(mockCatalog, mockAccounts, valuation.NewEngine())

	mockAccounts.On("GetByID", ctx, "TD-1234").Return(tdHolding(), nil)
	mockCatalog.On("FundsOf", ctx, "RBC Global Asset Management").
		Return([]*domain.Fund{rbcFund()}, nil)

	w, err := service.Start(ctx, StartInput{
		Kind: domain.OrderKindSwitch, Context: domain.OrderContextFund,
		ClientID: "CL002", FundAccountID: "TD-1234",
	})
	require.NoError(t, err)

	candidates, err := service.Candidates(ctx, w.ID, "RBC Global Asset Management")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, domain.TransferClassConvert, candidates[0].Class)
}

func TestServiceGet_StaleHandle(t *testing.T) {
	service := NewService(new(MockFundCatalog), new(MockFundAccountRepository), valuation.NewEngine())

	_, err := service.Get(uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
