package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/simaogato/advisordesk/internal/domain"
	"github.com/simaogato/advisordesk/internal/usecase/notes"
	"github.com/simaogato/advisordesk/internal/usecase/order"
	"github.com/simaogato/advisordesk/internal/usecase/portfolio"
)

// fundAccountView is one holding row in the portfolio view
type fundAccountView struct {
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Company     string `json:"company"`
	Price       string `json:"price"`
	MarketValue string `json:"market_value"`
}

// planView is one plan section in the portfolio view
type planView struct {
	ID           string            `json:"id"`
	Type         string            `json:"type"`
	Total        string            `json:"total"`
	FundAccounts []fundAccountView `json:"fund_accounts"`
}

// clientView is the composed portfolio page payload
type clientView struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Total string     `json:"total"`
	Plans []planView `json:"plans"`
}

// handleClient composes the client portfolio view: identity, plans, holdings
// and derived totals. Unknown client ids render the fallback record.
func (s *Server) handleClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := chi.URLParam(r, "clientID")

	client, err := s.deps.Clients.Lookup(ctx, clientID)
	if err != nil {
		client = domain.FallbackClient(clientID)
	}

	plans, err := s.deps.Plans.ListByClient(ctx, clientID)
	if err != nil {
		plans = nil
	}

	view := clientView{
		ID:    client.ID,
		Name:  client.Name,
		Total: portfolio.FormatCurrency(s.deps.Portfolio.ClientTotal(ctx, plans)),
	}

	for _, plan := range plans {
		pv := planView{
			ID:           plan.ID,
			Type:         string(plan.Type),
			Total:        portfolio.FormatCurrency(s.deps.Portfolio.PlanTotal(ctx, plan.FundAccountIDs)),
			FundAccounts: make([]fundAccountView, 0, len(plan.FundAccountIDs)),
		}
		for _, accountID := range plan.FundAccountIDs {
			account, err := s.deps.Accounts.GetByID(ctx, accountID)
			if err != nil {
				account = domain.FallbackFundAccount(accountID)
			}
			pv.FundAccounts = append(pv.FundAccounts, fundAccountView{
				ID:          account.ID,
				ProductName: account.ProductName,
				Company:     account.CompanyID,
				Price:       account.Price.StringFixed(2),
				MarketValue: account.MarketValue,
			})
		}
		view.Plans = append(view.Plans, pv)
	}

	s.respondJSON(w, http.StatusOK, view)
}

// valuationView renders a valuation bundle
type valuationView struct {
	ClientID               string `json:"client_id"`
	FundID                 string `json:"fund_id"`
	CurrentMarketValue     string `json:"current_market_value"`
	ShareBalance           string `json:"share_balance"`
	CostBase               string `json:"cost_base"`
	RateOfReturn           string `json:"rate_of_return"`
	HistoricalMarketValue  string `json:"historical_market_value"`
	HistoricalShareBalance string `json:"historical_share_balance"`
	HistoricalTargetDate   string `json:"historical_target_date"`
	RateOfReturnStartDate  string `json:"rate_of_return_start_date"`
	RateOfReturnEndDate    string `json:"rate_of_return_end_date"`
}

func (s *Server) handleValuation(w http.ResponseWriter, r *http.Request) {
	bundle := s.deps.Valuation.Valuation(chi.URLParam(r, "clientID"), chi.URLParam(r, "fundID"))

	s.respondJSON(w, http.StatusOK, valuationView{
		ClientID:               bundle.ClientID,
		FundID:                 bundle.FundID,
		CurrentMarketValue:     bundle.CurrentMarketValue,
		ShareBalance:           bundle.ShareBalance,
		CostBase:               bundle.CostBase,
		RateOfReturn:           bundle.RateOfReturn,
		HistoricalMarketValue:  bundle.HistoricalMarketValue,
		HistoricalShareBalance: bundle.HistoricalShareBalance,
		HistoricalTargetDate:   bundle.HistoricalTargetDate.Format(time.DateOnly),
		RateOfReturnStartDate:  bundle.ReturnStartDate.Format(time.DateOnly),
		RateOfReturnEndDate:    bundle.ReturnEndDate.Format(time.DateOnly),
	})
}

// transactionView renders one transaction row
type transactionView struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	GrossAmount string `json:"gross_amount"`
	NetAmount   string `json:"net_amount"`
	Price       string `json:"price"`
	UnitBalance string `json:"unit_balance"`
}

// handleTransactions serves a fund account's history: the recorded
// transactions when any exist, otherwise a derived synthetic history so the
// tab is never empty.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := chi.URLParam(r, "clientID")
	fundID := chi.URLParam(r, "fundID")

	transactions, err := s.deps.Transactions.ListByFundAccount(ctx, fundID)
	if err != nil || len(transactions) == 0 {
		transactions = s.deps.Valuation.History(clientID, fundID, 8)
	}

	views := make([]transactionView, 0, len(transactions))
	for _, tx := range transactions {
		views = append(views, transactionView{
			ID:          tx.ID,
			Date:        tx.Date.Format(time.DateOnly),
			Type:        string(tx.Type),
			GrossAmount: portfolio.FormatCurrency(tx.GrossAmount),
			NetAmount:   portfolio.FormatCurrency(tx.NetAmount),
			Price:       tx.Price.StringFixed(4),
			UnitBalance: tx.UnitBalance.StringFixed(4),
		})
	}

	s.respondJSON(w, http.StatusOK, views)
}

// noteView renders one note
type noteView struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	OriginID    string `json:"origin_id"`
	OriginName  string `json:"origin_name"`
	Author      string `json:"author"`
}

func (s *Server) handleNotesQuery(w http.ResponseWriter, r *http.Request) {
	params := notes.Params{
		TypeFilter: r.URL.Query().Get("type"),
		SearchTerm: r.URL.Query().Get("q"),
		SortOrder:  notes.SortOrder(r.URL.Query().Get("sort")),
	}

	result, err := s.deps.Notes.QueryByClient(r.Context(), chi.URLParam(r, "clientID"), params)
	if err != nil {
		s.respondError(w, err)
		return
	}

	views := make([]noteView, 0, len(result))
	for _, note := range result {
		views = append(views, noteView{
			ID:          note.ID.String(),
			Type:        string(note.Type),
			Summary:     note.Summary,
			Description: note.Description,
			CreatedAt:   note.CreatedAt.Format(time.RFC3339),
			OriginID:    note.OriginID,
			OriginName:  note.OriginName,
			Author:      note.Author,
		})
	}

	s.respondJSON(w, http.StatusOK, views)
}

// addNoteRequest is the POST body for appending a note
type addNoteRequest struct {
	Type        string `json:"type"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	OriginID    string `json:"origin_id"`
	OriginName  string `json:"origin_name"`
	Author      string `json:"author"`
}

func (s *Server) handleNoteAdd(w http.ResponseWriter, r *http.Request) {
	var req addNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	note, err := s.deps.Notes.Add(r.Context(), &domain.Note{
		ClientID:    chi.URLParam(r, "clientID"),
		Type:        domain.NoteType(req.Type),
		Summary:     req.Summary,
		Description: req.Description,
		OriginID:    req.OriginID,
		OriginName:  req.OriginName,
		Author:      req.Author,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, map[string]string{"id": note.ID.String()})
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.deps.Catalog.Companies(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	names := make([]string, 0, len(companies))
	for _, company := range companies {
		names = append(names, company.Name)
	}
	s.respondJSON(w, http.StatusOK, names)
}

// fundView renders one catalog fund
type fundView struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Category string `json:"category"`
	Company  string `json:"company"`
	Price    string `json:"price"`
}

// handleFunds lists the funds of the company named by the ?company= query
// parameter
func (s *Server) handleFunds(w http.ResponseWriter, r *http.Request) {
	funds, err := s.deps.Catalog.FundsOf(r.Context(), r.URL.Query().Get("company"))
	if err != nil {
		s.respondError(w, err)
		return
	}

	views := make([]fundView, 0, len(funds))
	for _, fund := range funds {
		views = append(views, newFundView(fund))
	}
	s.respondJSON(w, http.StatusOK, views)
}

func newFundView(fund *domain.Fund) fundView {
	return fundView{
		Name:     fund.Name,
		Symbol:   fund.Symbol,
		Category: fund.Category,
		Company:  fund.Company,
		Price:    fund.Price.StringFixed(2),
	}
}

// workflowView renders the live state of a workflow
type workflowView struct {
	Handle       string `json:"handle"`
	Kind         string `json:"kind"`
	Context      string `json:"context"`
	Step         string `json:"step"`
	ClientID     string `json:"client_id"`
	PlanID       string `json:"plan_id"`
	SourceFundID string `json:"source_fund_id,omitempty"`
	TargetFund   string `json:"target_fund,omitempty"`
	Amount       string `json:"amount"`
	Units        string `json:"units"`
	MaxUnits     string `json:"max_units"`
	Estimated    string `json:"estimated_value"`
}

func newWorkflowView(w *order.Workflow) workflowView {
	view := workflowView{
		Handle:    w.ID.String(),
		Kind:      string(w.EffectiveKind()),
		Context:   string(w.Context),
		Step:      string(w.Step),
		ClientID:  w.ClientID,
		PlanID:    w.PlanID,
		Amount:    w.AmountText(),
		Units:     w.UnitsText(),
		MaxUnits:  w.MaxUnits.StringFixed(4),
		Estimated: portfolio.FormatCurrency(w.EstimatedValue()),
	}
	if w.From != nil {
		view.SourceFundID = w.From.ID
	}
	if w.Fund != nil {
		view.TargetFund = w.Fund.Symbol
	}
	return view
}

// startWorkflowRequest is the POST body for opening a wizard
type startWorkflowRequest struct {
	Kind          string `json:"kind"`
	Context       string `json:"context"`
	ClientID      string `json:"client_id"`
	PlanID        string `json:"plan_id"`
	FundAccountID string `json:"fund_account_id"`
}

func (s *Server) handleWorkflowStart(w http.ResponseWriter, r *http.Request) {
	var req startWorkflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	workflow, err := s.deps.Orders.Start(r.Context(), order.StartInput{
		Kind:          domain.OrderKind(req.Kind),
		Context:       domain.OrderContext(req.Context),
		ClientID:      req.ClientID,
		PlanID:        req.PlanID,
		FundAccountID: req.FundAccountID,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, newWorkflowView(workflow))
}

func (s *Server) handleWorkflowGet(w http.ResponseWriter, r *http.Request) {
	handle, err := uuid.Parse(chi.URLParam(r, "handle"))
	if err != nil {
		s.respondError(w, domain.ErrNotFound)
		return
	}

	workflow, err := s.deps.Orders.Get(handle)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, newWorkflowView(workflow))
}

// advanceRequest is the POST body for one wizard interaction; exactly one
// field should be set
type advanceRequest struct {
	Company    *string `json:"company"`
	FundSymbol *string `json:"fund_symbol"`
	HoldingID  *string `json:"holding_id"`
	Amount     *string `json:"amount"`
	Units      *string `json:"units"`
}

func (s *Server) handleWorkflowAdvance(w http.ResponseWriter, r *http.Request) {
	handle, err := uuid.Parse(chi.URLParam(r, "handle"))
	if err != nil {
		s.respondError(w, domain.ErrNotFound)
		return
	}

	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	workflow, err := s.deps.Orders.Advance(r.Context(), handle, order.Input{
		Company:    req.Company,
		FundSymbol: req.FundSymbol,
		HoldingID:  req.HoldingID,
		Amount:     req.Amount,
		Units:      req.Units,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, newWorkflowView(workflow))
}

// candidateView renders one annotated destination fund
type candidateView struct {
	Fund  fundView `json:"fund"`
	Class string   `json:"class"`
}

// handleWorkflowCandidates lists a company's funds annotated as switch or
// conversion relative to the active workflow's source holding
func (s *Server) handleWorkflowCandidates(w http.ResponseWriter, r *http.Request) {
	handle, err := uuid.Parse(chi.URLParam(r, "handle"))
	if err != nil {
		s.respondError(w, domain.ErrNotFound)
		return
	}

	candidates, err := s.deps.Orders.Candidates(r.Context(), handle, r.URL.Query().Get("company"))
	if err != nil {
		s.respondError(w, err)
		return
	}

	views := make([]candidateView, 0, len(candidates))
	for _, candidate := range candidates {
		views = append(views, candidateView{
			Fund:  newFundView(candidate.Fund),
			Class: string(candidate.Class),
		})
	}
	s.respondJSON(w, http.StatusOK, views)
}

// orderResultView renders the terminal confirmation
type orderResultView struct {
	ConfirmationID string `json:"confirmation_id"`
	Kind           string `json:"kind"`
	ClientID       string `json:"client_id"`
	PlanID         string `json:"plan_id"`
	SourceFundID   string `json:"source_fund_id,omitempty"`
	TargetFund     string `json:"target_fund,omitempty"`
	Amount         string `json:"amount"`
	Units          string `json:"units"`
	EstimatedValue string `json:"estimated_value"`
	SubmittedAt    string `json:"submitted_at"`
}

func (s *Server) handleWorkflowSubmit(w http.ResponseWriter, r *http.Request) {
	handle, err := uuid.Parse(chi.URLParam(r, "handle"))
	if err != nil {
		s.respondError(w, domain.ErrNotFound)
		return
	}

	result, err := s.deps.Orders.Submit(handle)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, orderResultView{
		ConfirmationID: result.ConfirmationID.String(),
		Kind:           string(result.Kind),
		ClientID:       result.ClientID,
		PlanID:         result.PlanID,
		SourceFundID:   result.SourceFundID,
		TargetFund:     result.TargetFund,
		Amount:         portfolio.FormatCurrency(result.Amount),
		Units:          result.Units.StringFixed(4),
		EstimatedValue: portfolio.FormatCurrency(result.EstimatedValue),
		SubmittedAt:    result.SubmittedAt.Format(time.RFC3339),
	})
}

func (s *Server) handleWorkflowCancel(w http.ResponseWriter, r *http.Request) {
	handle, err := uuid.Parse(chi.URLParam(r, "handle"))
	if err != nil {
		s.respondError(w, domain.ErrNotFound)
		return
	}

	if err := s.deps.Orders.Cancel(handle); err != nil {
		s.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
