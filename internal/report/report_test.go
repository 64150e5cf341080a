package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/dashboard"
	"github.com/MrJamesThe3rd/faturamento/internal/report"
)

func TestWrite(t *testing.T) {
	invoices := []billing.Invoice{
		{ClientName: "Acme", GrossValue: 1000, RepresentativeID: "v1", IssueDate: billing.NewDate(2024, 1, 10)},
		{ClientName: "Beta", GrossValue: 2000, RepresentativeID: "v1", IssueDate: billing.NewDate(2024, 2, 10)},
	}
	reps := []billing.Representative{{ID: "v1", Name: "Luís Santos"}}

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf,
		dashboard.ByMonth(invoices),
		dashboard.ByClient(invoices),
		dashboard.ByRepresentative(reps, invoices, ""),
	))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{report.SheetMonthly, report.SheetClients, report.SheetRepresentatives}, f.GetSheetList())

	monthly, err := f.GetRows(report.SheetMonthly)
	require.NoError(t, err)
	require.Len(t, monthly, 13)
	assert.Equal(t, "Janeiro", monthly[1][0])
	assert.Equal(t, "1", monthly[1][1])

	clients, err := f.GetRows(report.SheetClients)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "Beta", clients[1][0])

	rows, err := f.GetRows(report.SheetRepresentatives)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Luís Santos", "2"}, rows[1][:2])
	assert.Equal(t, "Acme, Beta", rows[1][3])
}

func TestWorkbook_Empty(t *testing.T) {
	f, err := report.Workbook(dashboard.ByMonth(nil), nil, nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.SheetClients)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
