// Package report builds the dashboard spreadsheet.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/faturamento/internal/dashboard"
)

const (
	SheetMonthly         = "Mensal"
	SheetClients         = "Clientes"
	SheetRepresentatives = "Representantes"
)

// Workbook lays the three dashboard rollups out on one sheet each.
func Workbook(monthly []dashboard.MonthlyBucket, clients []dashboard.ClientGroup, reps []dashboard.RepresentativeStats) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), SheetMonthly); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	for _, name := range []string{SheetClients, SheetRepresentatives} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("creating sheet %s: %w", name, err)
		}
	}

	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("creating style: %w", err)
	}

	w := sheetWriter{f: f}

	w.rows(SheetMonthly, []any{"Mês", "Notas", "Valor"}, len(monthly), func(i int) []any {
		b := monthly[i]
		return []any{dashboard.MonthName(b.Month), b.Count, b.Value}
	})

	w.rows(SheetClients, []any{"Cliente", "Notas", "Valor"}, len(clients), func(i int) []any {
		c := clients[i]
		return []any{c.Client, c.InvoiceCount, c.TotalValue}
	})

	w.rows(SheetRepresentatives, []any{"Representante", "Notas", "Valor", "Clientes"}, len(reps), func(i int) []any {
		r := reps[i]
		return []any{r.Representative.Name, r.InvoiceCount, r.TotalValue, strings.Join(r.Clients, ", ")}
	})

	if w.err != nil {
		return nil, w.err
	}

	for sheet, n := range map[string]int{SheetMonthly: len(monthly), SheetClients: len(clients), SheetRepresentatives: len(reps)} {
		if err := f.SetCellStyle(sheet, "C2", fmt.Sprintf("C%d", n+1), money); err != nil {
			return nil, fmt.Errorf("styling %s: %w", sheet, err)
		}

		if err := f.SetColWidth(sheet, "A", "A", 32); err != nil {
			return nil, fmt.Errorf("sizing %s: %w", sheet, err)
		}
	}

	return f, nil
}

// Write renders the workbook straight to w.
func Write(w io.Writer, monthly []dashboard.MonthlyBucket, clients []dashboard.ClientGroup, reps []dashboard.RepresentativeStats) error {
	f, err := Workbook(monthly, clients, reps)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) rows(sheet string, header []any, n int, row func(i int) []any) {
	if w.err != nil {
		return
	}

	if err := w.f.SetSheetRow(sheet, "A1", &header); err != nil {
		w.err = fmt.Errorf("writing %s header: %w", sheet, err)
		return
	}

	for i := range n {
		cells := row(i)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			w.err = fmt.Errorf("addressing %s row %d: %w", sheet, i, err)
			return
		}

		if err := w.f.SetSheetRow(sheet, cell, &cells); err != nil {
			w.err = fmt.Errorf("writing %s row %d: %w", sheet, i, err)
			return
		}
	}
}
