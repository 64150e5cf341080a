package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/dashboard"
)

func TestCompanies(t *testing.T) {
	invoices := []billing.Invoice{
		{ClientName: "Acme", GrossValue: 100, RepresentativeName: "Luís Santos"},
		{ClientName: "Beta", GrossValue: 900, RepresentativeName: "Fábio Oliveira"},
		{ClientName: "Acme", GrossValue: 200, RepresentativeName: "Mariana Costa"},
		{ClientName: "Acme", GrossValue: 50, RepresentativeName: "Luís Santos"},
	}

	got := dashboard.Companies(invoices)
	require.Len(t, got, 2)

	assert.Equal(t, "Beta", got[0].Client)
	assert.Equal(t, dashboard.CompanyStats{
		Client:          "Acme",
		InvoiceCount:    3,
		TotalValue:      350,
		Representatives: []string{"Luís Santos", "Mariana Costa"},
	}, got[1])
}

func TestCompanyTrend(t *testing.T) {
	trend := dashboard.CompanyTrend(sampleInvoices(), "Acme")
	require.Len(t, trend, 12)
	assert.Equal(t, 1, trend[0].Count)
	assert.Equal(t, 500.0, trend[1].Value)
}

func TestFindCompanyRecord(t *testing.T) {
	companies := []billing.Company{
		{ID: "et1", LegalName: "MICROSOFT BRASIL LTDA"},
		{ID: "e1", FullName: "Tech Solutions Ltda"},
		{ID: "e2", FullName: "Tech Solutions"},
		{ID: "blank"},
	}

	tests := []struct {
		name   string
		client string
		wantID string
	}{
		{name: "exact trade name beats fragment", client: "Tech Solutions", wantID: "e2"},
		{name: "exact legal name", client: "MICROSOFT BRASIL LTDA", wantID: "et1"},
		{name: "first word fragment", client: "Filial Tech Norte", wantID: "e1"},
		{name: "no match", client: "Padaria", wantID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := dashboard.FindCompanyRecord(companies, tt.client)
			if tt.wantID == "" {
				assert.False(t, ok)
				assert.Nil(t, got)

				return
			}

			require.True(t, ok)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}
