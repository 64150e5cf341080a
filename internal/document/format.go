// Package document renders single invoices for people: the JSON export,
// the printable NFS-e (HTML and PDF) and the share text.
package document

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

// FormatBRL formats v as Brazilian reais, e.g. "R$ 1.234,56".
func FormatBRL(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	whole, cents, _ := strings.Cut(d.StringFixed(2), ".")

	var sb strings.Builder

	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte('.')
		}

		sb.WriteRune(r)
	}

	return sign + "R$ " + sb.String() + "," + cents
}

// FormatDate formats d as dd/mm/yyyy, or "-" when the date is absent.
func FormatDate(d billing.Date) string {
	if d.IsZero() {
		return "-"
	}

	return d.Format("02/01/2006")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}

	return s
}
