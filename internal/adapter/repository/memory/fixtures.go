package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/advisordesk/internal/domain"
)

// Demo fixture dataset. Market value strings are the source of truth for
// aggregation; CL002's RRSP plan totals $138,150.00 ($92,650.00 + $45,500.00).

var fixtureClients = []*domain.Client{
	{ID: "CL001", Name: "Margaret Chen"},
	{ID: "CL002", Name: "David Kowalski"},
	{ID: "CL003", Name: "Priya Narayanan"},
}

var fixturePlans = []*domain.Plan{
	{ID: "P-1001", Type: domain.PlanTypeRRSP, ClientID: "CL001", FundAccountIDs: []string{"MFC-3456"}},
	{ID: "P-1002", Type: domain.PlanTypeNonRegistered, ClientID: "CL001", FundAccountIDs: []string{"CIG-7890"}},
	{ID: "P-2001", Type: domain.PlanTypeRRSP, ClientID: "CL002", FundAccountIDs: []string{"TD-1234", "RBC-5678"}},
	{ID: "P-2002", Type: domain.PlanTypeTFSA, ClientID: "CL002", FundAccountIDs: []string{"FID-9012"}},
	{ID: "P-3001", Type: domain.PlanTypeRESP, ClientID: "CL003", FundAccountIDs: []string{"TD-2468"}},
}

var fixtureAccounts = []*domain.FundAccount{
	{ID: "TD-1234", PlanID: "P-2001", Supplier: "TD", ProductName: "TD Canadian Bond Index Fund", Price: decimal.RequireFromString("11.42"), MarketValue: "$92,650.00"},
	{ID: "RBC-5678", PlanID: "P-2001", Supplier: "RBC", ProductName: "RBC Balanced Growth Fund", Price: decimal.RequireFromString("24.18"), MarketValue: "$45,500.00"},
	{ID: "FID-9012", PlanID: "P-2002", Supplier: "FID", ProductName: "Fidelity True North Fund", Price: decimal.RequireFromString("38.75"), MarketValue: "$28,340.00"},
	{ID: "MFC-3456", PlanID: "P-1001", Supplier: "MFC", ProductName: "Mackenzie Global Equity Fund", Price: decimal.RequireFromString("19.06"), MarketValue: "$61,220.00"},
	{ID: "CIG-7890", PlanID: "P-1002", Supplier: "CIG", ProductName: "CI Signature Dividend Fund", Price: decimal.RequireFromString("15.33"), MarketValue: "$17,895.00"},
	{ID: "TD-2468", PlanID: "P-3001", Supplier: "TD", ProductName: "TD Dividend Growth Fund", Price: decimal.RequireFromString("52.61"), MarketValue: "$9,480.00"},
}

var fixtureTransactions = []*domain.Transaction{
	{ID: "TX-10001", FundAccountID: "TD-1234", Date: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), Type: domain.TransactionTypePurchase, GrossAmount: decimal.RequireFromString("1500.00"), NetAmount: decimal.RequireFromString("1500.00"), Price: decimal.RequireFromString("11.38"), UnitBalance: decimal.RequireFromString("8113.8400")},
	{ID: "TX-10002", FundAccountID: "TD-1234", Date: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), Type: domain.TransactionTypeDistribution, GrossAmount: decimal.RequireFromString("214.55"), NetAmount: decimal.RequireFromString("214.55"), Price: decimal.RequireFromString("11.21"), UnitBalance: decimal.RequireFromString("7982.0100")},
	{ID: "TX-10003", FundAccountID: "TD-1234", Date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), Type: domain.TransactionTypePurchase, GrossAmount: decimal.RequireFromString("2000.00"), NetAmount: decimal.RequireFromString("1995.00"), Price: decimal.RequireFromString("11.05"), UnitBalance: decimal.RequireFromString("7962.8700")},
	{ID: "TX-20001", FundAccountID: "RBC-5678", Date: time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), Type: domain.TransactionTypePurchase, GrossAmount: decimal.RequireFromString("1000.00"), NetAmount: decimal.RequireFromString("1000.00"), Price: decimal.RequireFromString("23.90"), UnitBalance: decimal.RequireFromString("1881.9500")},
}

var fixtureCompanies = []*domain.Company{
	{Name: "TD Asset Management"},
	{Name: "RBC Global Asset Management"},
	{Name: "Fidelity Investments"},
	{Name: "Mackenzie Investments"},
	{Name: "CI Global Asset Management"},
}

var fixtureFunds = []*domain.Fund{
	{Name: "TD Canadian Bond Index Fund", Symbol: "TDB909", Category: "Canadian Fixed Income", Company: "TD Asset Management", Price: decimal.RequireFromString("11.42")},
	{Name: "TD Dividend Growth Fund", Symbol: "TDB972", Category: "Canadian Dividend", Company: "TD Asset Management", Price: decimal.RequireFromString("52.61")},
	{Name: "TD US Index Fund", Symbol: "TDB661", Category: "US Equity", Company: "TD Asset Management", Price: decimal.RequireFromString("74.19")},
	{Name: "RBC Balanced Growth Fund", Symbol: "RBF272", Category: "Balanced", Company: "RBC Global Asset Management", Price: decimal.RequireFromString("24.18")},
	{Name: "RBC Canadian Equity Fund", Symbol: "RBF269", Category: "Canadian Equity", Company: "RBC Global Asset Management", Price: decimal.RequireFromString("31.55")},
	{Name: "Fidelity True North Fund", Symbol: "FID225", Category: "Canadian Equity", Company: "Fidelity Investments", Price: decimal.RequireFromString("38.75")},
	{Name: "Fidelity Global Innovators Fund", Symbol: "FID398", Category: "Global Equity", Company: "Fidelity Investments", Price: decimal.RequireFromString("29.42")},
	{Name: "Mackenzie Global Equity Fund", Symbol: "MFC1146", Category: "Global Equity", Company: "Mackenzie Investments", Price: decimal.RequireFromString("19.06")},
	{Name: "Mackenzie Income Fund", Symbol: "MFC071", Category: "Fixed Income Balanced", Company: "Mackenzie Investments", Price: decimal.RequireFromString("12.84")},
	{Name: "CI Signature Dividend Fund", Symbol: "CIG610", Category: "Canadian Dividend", Company: "CI Global Asset Management", Price: decimal.RequireFromString("15.33")},
	{Name: "CI Global Income & Growth Fund", Symbol: "CIG686", Category: "Global Balanced", Company: "CI Global Asset Management", Price: decimal.RequireFromString("21.77")},
}

var fixtureNotes = []*domain.Note{
	{ID: uuid.MustParse("6f1a2b3c-0001-4d5e-8f90-a1b2c3d4e501"), ClientID: "CL002", Type: domain.NoteTypeClient, Summary: "Annual review booked", Description: "Client prefers morning meetings; review set for mid-September.", CreatedAt: time.Date(2025, 6, 8, 10, 30, 0, 0, time.UTC), OriginID: "CL002", OriginName: "David Kowalski", Author: "J. Fontaine"},
	{ID: uuid.MustParse("6f1a2b3c-0002-4d5e-8f90-a1b2c3d4e502"), ClientID: "CL002", Type: domain.NoteTypePlan, Summary: "RRSP contribution room", Description: "Confirmed carry-forward room with client; plans to top up before deadline.", CreatedAt: time.Date(2025, 6, 3, 9, 15, 0, 0, time.UTC), OriginID: "P-2001", OriginName: "RRSP", Author: "J. Fontaine"},
	{ID: uuid.MustParse("6f1a2b3c-0003-4d5e-8f90-a1b2c3d4e503"), ClientID: "CL002", Type: domain.NoteTypeInvestmentProduct, Summary: "Fee schedule change", Description: "TD bond fund MER drops 4bps effective July.", CreatedAt: time.Date(2025, 6, 5, 14, 0, 0, 0, time.UTC), OriginID: "TD-1234", OriginName: "TD Canadian Bond Index Fund", Author: "M. Osei"},
	{ID: uuid.MustParse("6f1a2b3c-0004-4d5e-8f90-a1b2c3d4e504"), ClientID: "CL002", Type: domain.NoteTypeTransaction, Summary: "Distribution reinvested", Description: "Q1 distribution reinvested per standing instruction.", CreatedAt: time.Date(2025, 4, 2, 16, 45, 0, 0, time.UTC), OriginID: "TX-10002", OriginName: "Distribution 2025-03-31", Author: "M. Osei"},
	{ID: uuid.MustParse("6f1a2b3c-0005-4d5e-8f90-a1b2c3d4e505"), ClientID: "CL001", Type: domain.NoteTypeClient, Summary: "KYC refresh complete", Description: "Updated risk tolerance: balanced.", CreatedAt: time.Date(2025, 5, 12, 11, 0, 0, 0, time.UTC), OriginID: "CL001", OriginName: "Margaret Chen", Author: "J. Fontaine"},
	{ID: uuid.MustParse("6f1a2b3c-0006-4d5e-8f90-a1b2c3d4e506"), ClientID: "CL003", Type: domain.NoteTypePlan, Summary: "RESP grant received", Description: "CESG for 2025 landed; invest per existing allocation.", CreatedAt: time.Date(2025, 5, 28, 13, 20, 0, 0, time.UTC), OriginID: "P-3001", OriginName: "RESP", Author: "M. Osei"},
}
