package dashboard

import (
	"slices"
	"strings"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

// CompanyStats is one billed client across every representative.
type CompanyStats struct {
	Client          string   `json:"client"`
	InvoiceCount    int      `json:"invoice_count"`
	TotalValue      float64  `json:"total_value"`
	Representatives []string `json:"representatives"`
}

// CompanyDetail backs the single-company view.
type CompanyDetail struct {
	CompanyStats
	Months   []MonthlyBucket   `json:"months"`
	Invoices []billing.Invoice `json:"invoices"`
	Record   *billing.Company  `json:"record,omitempty"`
}

// Companies groups invoices by client, collecting the distinct
// representative names that billed each one. Largest total first.
func Companies(invoices []billing.Invoice) []CompanyStats {
	groups := ByClient(invoices)
	out := make([]CompanyStats, 0, len(groups))

	for _, g := range groups {
		st := CompanyStats{
			Client:          g.Client,
			InvoiceCount:    g.InvoiceCount,
			TotalValue:      g.TotalValue,
			Representatives: []string{},
		}

		for _, inv := range g.Invoices {
			if !slices.Contains(st.Representatives, inv.RepresentativeName) {
				st.Representatives = append(st.Representatives, inv.RepresentativeName)
			}
		}

		out = append(out, st)
	}

	return out
}

// CompanyTrend is the twelve-month series of one client.
func CompanyTrend(invoices []billing.Invoice, client string) []MonthlyBucket {
	return ByMonth(filter(invoices, func(inv billing.Invoice) bool {
		return inv.ClientName == client
	}))
}

// FindCompanyRecord finds the registered company behind a client name.
// An exact trade or legal name match wins; failing that, the first
// company whose leading name word appears in the client name is used.
// The fallback is a loose heuristic and can pick the wrong company.
func FindCompanyRecord(companies []billing.Company, client string) (*billing.Company, bool) {
	for i, c := range companies {
		if (c.FullName != "" && c.FullName == client) || (c.LegalName != "" && c.LegalName == client) {
			return &companies[i], true
		}
	}

	for i, c := range companies {
		for _, name := range []string{c.FullName, c.LegalName} {
			if w := firstWord(name); w != "" && strings.Contains(client, w) {
				return &companies[i], true
			}
		}
	}

	return nil, false
}

func firstWord(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}

	return ""
}
