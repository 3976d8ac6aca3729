package memory

import (
	"sync"

	"github.com/simaogato/advisordesk/internal/domain"
	"github.com/simaogato/advisordesk/internal/usecase/order"
)

// Store holds the session's in-memory dataset: clients, plans, fund accounts,
// transactions, the fund/company catalog and the note collection. Everything
// except notes is read-only for the lifetime of the session; notes are
// appendable.
//
// Fund accounts are annotated with their resolved company at load time, so
// switch/convert classification downstream is a field lookup instead of a
// keyword search on every read.
type Store struct {
	mu sync.RWMutex

	clients      map[string]*domain.Client
	plans        map[string]*domain.Plan
	clientPlans  map[string][]string
	accounts     map[string]*domain.FundAccount
	transactions map[string][]*domain.Transaction
	companies    []*domain.Company
	companyFunds map[string][]*domain.Fund
	symbolIndex  map[string]*domain.Fund
	notes        map[string][]*domain.Note
}

// NewStore creates a store seeded with the demo fixture dataset
func NewStore() *Store {
	s := &Store{
		clients:      make(map[string]*domain.Client),
		plans:        make(map[string]*domain.Plan),
		clientPlans:  make(map[string][]string),
		accounts:     make(map[string]*domain.FundAccount),
		transactions: make(map[string][]*domain.Transaction),
		companyFunds: make(map[string][]*domain.Fund),
		symbolIndex:  make(map[string]*domain.Fund),
		notes:        make(map[string][]*domain.Note),
	}
	s.load(fixtureClients, fixturePlans, fixtureAccounts, fixtureTransactions,
		fixtureCompanies, fixtureFunds, fixtureNotes)
	return s
}

// load ingests the fixture dataset, annotating each fund account with its
// resolved company
func (s *Store) load(
	clients []*domain.Client,
	plans []*domain.Plan,
	accounts []*domain.FundAccount,
	transactions []*domain.Transaction,
	companies []*domain.Company,
	funds []*domain.Fund,
	notes []*domain.Note,
) {
	for _, client := range clients {
		s.clients[client.ID] = client
	}

	for _, plan := range plans {
		s.plans[plan.ID] = plan
		s.clientPlans[plan.ClientID] = append(s.clientPlans[plan.ClientID], plan.ID)
	}

	for _, account := range accounts {
		account.CompanyID = order.ResolveCompany(account.Supplier, account.ProductName)
		s.accounts[account.ID] = account
	}

	for _, tx := range transactions {
		s.transactions[tx.FundAccountID] = append(s.transactions[tx.FundAccountID], tx)
	}

	s.companies = companies
	for _, fund := range funds {
		s.companyFunds[fund.Company] = append(s.companyFunds[fund.Company], fund)
		s.symbolIndex[fund.Symbol] = fund
	}

	for _, note := range notes {
		s.notes[note.ClientID] = append(s.notes[note.ClientID], note)
	}
}
