package document

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

type exported struct {
	billing.Invoice
	ExportedAt time.Time `json:"exportedAt"`
}

// ExportJSON returns the indented JSON document of inv stamped with now.
func ExportJSON(inv billing.Invoice, now time.Time) ([]byte, error) {
	b, err := json.MarshalIndent(exported{Invoice: inv, ExportedAt: now.UTC()}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding invoice %s: %w", inv.ID, err)
	}

	return b, nil
}

var unsafeFilename = strings.NewReplacer(
	"/", "-", `\`, "-", ":", "-", "*", "-", "?", "-", `"`, "-", "<", "-", ">", "-", "|", "-",
)

// ExportFilename derives the download name from an invoice number.
func ExportFilename(number string) string {
	name := strings.TrimSpace(unsafeFilename.Replace(number))
	if name == "" {
		name = "nota-fiscal"
	}

	return name + ".json"
}
