package order

import (
	"strings"

	"github.com/simaogato/advisordesk/internal/domain"
)

// DefaultCompany is the company an unrecognized supplier code or product name
// resolves to. The legacy console silently defaulted misses to one company
// instead of an explicit "unknown" sentinel; that behaviour is kept.
const DefaultCompany = "Fidelity Investments"

// supplierCompanies maps supplier codes to fund companies. The supplier code
// is checked before any keyword search.
var supplierCompanies = map[string]string{
	"TD":  "TD Asset Management",
	"RBC": "RBC Global Asset Management",
	"FID": "Fidelity Investments",
	"MFC": "Mackenzie Investments",
	"CIG": "CI Global Asset Management",
	"AGF": "AGF Investments",
}

// keywordRule maps a product-name keyword to a fund company
type keywordRule struct {
	keyword string
	company string
}

// keywordRules is the ordered fallback table searched against the product's
// display name. The first match wins.
var keywordRules = []keywordRule{
	{keyword: "td ", company: "TD Asset Management"},
	{keyword: "rbc", company: "RBC Global Asset Management"},
	{keyword: "fidelity", company: "Fidelity Investments"},
	{keyword: "mackenzie", company: "Mackenzie Investments"},
	{keyword: "ci ", company: "CI Global Asset Management"},
	{keyword: "signature", company: "CI Global Asset Management"},
	{keyword: "agf", company: "AGF Investments"},
}

// ResolveCompany resolves the fund company for a holding.
// Logic:
//  1. Match the supplier code against the supplier table
//  2. Search the product display name against the ordered keyword table,
//     case-insensitively; first match wins
//  3. Fall back to DefaultCompany
//
// Repositories call this once at ingestion time and store the result on the
// fund account, so classification afterwards is a field lookup.
func ResolveCompany(supplier, productName string) string {
	if company, ok := supplierCompanies[strings.ToUpper(strings.TrimSpace(supplier))]; ok {
		return company
	}

	name := strings.ToLower(productName)
	for _, rule := range keywordRules {
		if strings.Contains(name, rule.keyword) {
			return rule.company
		}
	}

	return DefaultCompany
}

// Classify determines whether a source->destination fund move is a switch
// (same fund company) or a conversion (different fund companies).
func Classify(sourceCompany, destinationCompany string) domain.TransferClass {
	if sourceCompany == destinationCompany {
		return domain.TransferClassSwitch
	}
	return domain.TransferClassConvert
}
