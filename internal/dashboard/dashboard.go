// Package dashboard groups invoices into the monthly, per-client and
// per-representative rollups shown on the dashboard. Every function is
// total: empty input yields zeroed or empty output.
package dashboard

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

// AllMonths selects every month in MonthDetails.
const AllMonths = "all"

// Growth is the fixed growth figure shown on the summary card.
const Growth = 12.5

var monthLabels = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName returns the full Portuguese name for a "01".."12" key, or the
// key itself when it is out of range.
func MonthName(key string) string {
	if i := monthIndex(key); i >= 0 {
		return monthNames[i]
	}

	return key
}

func monthIndex(key string) int {
	n, err := strconv.Atoi(key)
	if err != nil || len(key) != 2 || n < 1 || n > 12 {
		return -1
	}

	return n - 1
}

type MonthlyBucket struct {
	Month string  `json:"month"`
	Label string  `json:"label"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

type ClientGroup struct {
	Client       string            `json:"client"`
	InvoiceCount int               `json:"invoice_count"`
	TotalValue   float64           `json:"total_value"`
	Invoices     []billing.Invoice `json:"invoices"`
}

// ClientTrend is a client group with its own monthly series.
type ClientTrend struct {
	Client       string          `json:"client"`
	InvoiceCount int             `json:"invoice_count"`
	TotalValue   float64         `json:"total_value"`
	Months       []MonthlyBucket `json:"months"`
}

type RepresentativeStats struct {
	Representative billing.Representative `json:"representative"`
	InvoiceCount   int                    `json:"invoice_count"`
	TotalValue     float64                `json:"total_value"`
	Clients        []string               `json:"clients"`
	ClientGroups   []ClientGroup          `json:"client_groups"`
}

type Summary struct {
	TotalRevenue      float64                `json:"total_revenue"`
	InvoiceCount      int                    `json:"invoice_count"`
	CollaboratorCount int                    `json:"collaborator_count"`
	StatusCounts      map[billing.Status]int `json:"status_counts"`
	Growth            float64                `json:"growth"`
}

func emptyBuckets() []MonthlyBucket {
	buckets := make([]MonthlyBucket, 12)
	for i := range buckets {
		buckets[i] = MonthlyBucket{
			Month: fmt.Sprintf("%02d", i+1),
			Label: monthLabels[i],
		}
	}

	return buckets
}

// ByMonth buckets invoices by issue month, January first. All twelve
// buckets are always present. Invoices without an issue date are skipped.
func ByMonth(invoices []billing.Invoice) []MonthlyBucket {
	buckets := emptyBuckets()

	for _, inv := range invoices {
		if inv.IssueDate.IsZero() {
			continue
		}

		b := &buckets[inv.IssueDate.Month()-1]
		b.Count++
		b.Value += inv.GrossValue
	}

	return buckets
}

// ByMonthForRepresentative restricts ByMonth to one representative id.
func ByMonthForRepresentative(invoices []billing.Invoice, id string) []MonthlyBucket {
	return ByMonth(filter(invoices, func(inv billing.Invoice) bool {
		return inv.RepresentativeID == id
	}))
}

// ByMonthForRepresentativeName restricts ByMonth by the denormalized
// representative name (exact, case-sensitive). Renaming a representative
// detaches their older invoices; prefer ByMonthForRepresentative.
func ByMonthForRepresentativeName(invoices []billing.Invoice, name string) []MonthlyBucket {
	return ByMonth(filter(invoices, func(inv billing.Invoice) bool {
		return inv.RepresentativeName == name
	}))
}

// ByClient groups invoices by exact client name, largest total first.
// Groups with equal totals keep the order they were first seen in.
func ByClient(invoices []billing.Invoice) []ClientGroup {
	var groups []ClientGroup

	index := make(map[string]int)

	for _, inv := range invoices {
		i, ok := index[inv.ClientName]
		if !ok {
			i = len(groups)
			index[inv.ClientName] = i
			groups = append(groups, ClientGroup{Client: inv.ClientName})
		}

		g := &groups[i]
		g.InvoiceCount++
		g.TotalValue += inv.GrossValue
		g.Invoices = append(g.Invoices, inv)
	}

	sortByTotal(groups, func(g ClientGroup) float64 { return g.TotalValue })

	if groups == nil {
		return []ClientGroup{}
	}

	return groups
}

// ClientTrends is ByClient with a twelve-month series per client.
func ClientTrends(invoices []billing.Invoice) []ClientTrend {
	groups := ByClient(invoices)
	trends := make([]ClientTrend, 0, len(groups))

	for _, g := range groups {
		trends = append(trends, ClientTrend{
			Client:       g.Client,
			InvoiceCount: g.InvoiceCount,
			TotalValue:   g.TotalValue,
			Months:       ByMonth(g.Invoices),
		})
	}

	return trends
}

// MonthDetails groups the invoices issued in month ("01".."12") by client.
// AllMonths groups every invoice.
func MonthDetails(invoices []billing.Invoice, month string) []ClientGroup {
	if month == AllMonths {
		return ByClient(invoices)
	}

	return ByClient(filter(invoices, func(inv billing.Invoice) bool {
		return !inv.IssueDate.IsZero() && inv.IssueDate.MonthKey() == month
	}))
}

// ByRepresentative computes per-representative totals, largest first.
// A non-empty scope keeps only the representative with that id.
func ByRepresentative(reps []billing.Representative, invoices []billing.Invoice, scope string) []RepresentativeStats {
	stats := make([]RepresentativeStats, 0, len(reps))

	for _, rep := range reps {
		if scope != "" && rep.ID != scope {
			continue
		}

		own := filter(invoices, func(inv billing.Invoice) bool {
			return inv.RepresentativeID == rep.ID
		})

		st := RepresentativeStats{
			Representative: rep,
			InvoiceCount:   len(own),
			Clients:        []string{},
			ClientGroups:   ByClient(own),
		}

		for _, inv := range own {
			st.TotalValue += inv.GrossValue

			if !slices.Contains(st.Clients, inv.ClientName) {
				st.Clients = append(st.Clients, inv.ClientName)
			}
		}

		stats = append(stats, st)
	}

	sortByTotal(stats, func(s RepresentativeStats) float64 { return s.TotalValue })

	return stats
}

// Summarize builds the summary card figures.
func Summarize(invoices []billing.Invoice, collaboratorCount int) Summary {
	s := Summary{
		InvoiceCount:      len(invoices),
		CollaboratorCount: collaboratorCount,
		StatusCounts:      billing.CountByStatus(invoices),
		Growth:            Growth,
	}

	for _, inv := range invoices {
		s.TotalRevenue += inv.GrossValue
	}

	return s
}

func filter(invoices []billing.Invoice, keep func(billing.Invoice) bool) []billing.Invoice {
	var out []billing.Invoice

	for _, inv := range invoices {
		if keep(inv) {
			out = append(out, inv)
		}
	}

	return out
}

func sortByTotal[T any](items []T, total func(T) float64) {
	slices.SortStableFunc(items, func(a, b T) int {
		ta, tb := total(a), total(b)

		switch {
		case ta > tb:
			return -1
		case ta < tb:
			return 1
		}

		return 0
	})
}
