package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/migration"
)

func TestComputeTaxes(t *testing.T) {
	tests := []struct {
		name      string
		gross     float64
		wantTaxes billing.Taxes
		wantNet   float64
	}{
		{
			name:      "round thousand",
			gross:     1000,
			wantTaxes: billing.Taxes{ISS: 50, PIS: 16.5, COFINS: 76, IRRF: 15},
			wantNet:   842.5,
		},
		{
			name:    "zero",
			gross:   0,
			wantNet: 0,
		},
		{
			name:      "taxes are rounded one by one",
			gross:     1234.56,
			wantTaxes: billing.Taxes{ISS: 61.73, PIS: 20.37, COFINS: 93.83, IRRF: 18.52},
			wantNet:   1040.12,
		},
		{
			name:      "net from unrounded taxes",
			gross:     1234.57,
			wantTaxes: billing.Taxes{ISS: 61.73, PIS: 20.37, COFINS: 93.83, IRRF: 18.52},
			wantNet:   1040.13,
		},
		{
			name:      "below one real",
			gross:     0.33,
			wantTaxes: billing.Taxes{ISS: 0.02, PIS: 0.01, COFINS: 0.03, IRRF: 0},
			wantNet:   0.28,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxes, net := migration.ComputeTaxes(tt.gross)

			assert.Equal(t, tt.wantTaxes, taxes)
			assert.InDelta(t, tt.wantNet, net, 1e-9)
		})
	}
}

func TestAssignByIndex(t *testing.T) {
	list := []string{"a", "b", "c"}

	for i, want := range []string{"a", "b", "c", "a", "b", "c", "a"} {
		got, ok := migration.AssignByIndex(list, i)
		require.True(t, ok)
		assert.Equal(t, want, got, "index %d", i)
	}

	_, ok := migration.AssignByIndex([]string{}, 3)
	assert.False(t, ok)
}

func TestTransform_EmptyLegacyUsesSeeds(t *testing.T) {
	res := migration.Transform(migration.Legacy{})

	require.Len(t, res.Representatives, 5)
	require.Len(t, res.Companies, 5)
	require.Len(t, res.Collaborators, 5)
	assert.Empty(t, res.Invoices)

	assert.Equal(t, "v1", res.Representatives[0].ID)
	assert.Equal(t, "Luís Santos", res.Representatives[0].Name)
	assert.Equal(t, "v5", res.Representatives[4].ID)

	assert.Equal(t, "e1", res.Companies[0].ID)
	assert.Equal(t, "Tech Solutions Ltda", res.Companies[0].FullName)
	assert.Equal(t, "Indústria XYZ Ltda", res.Companies[4].FullName)

	assert.Equal(t, "c3", res.Collaborators[2].ID)
	assert.Equal(t, billing.WorkHybrid, res.Collaborators[2].WorkType)
	assert.Equal(t, "3x2", res.Collaborators[2].HybridSchedule)

	require.NotNil(t, res.Settings)
	assert.Equal(t, billing.DefaultSettings(), res.Settings)

	require.Len(t, res.Tomadores, 10)
	assert.Equal(t, "MICROSOFT BRASIL LTDA", res.Tomadores[0].LegalName)
	assert.Equal(t, "et10", res.Tomadores[9].ID)
}

func TestTransform_LegacyRecords(t *testing.T) {
	legacy := migration.Legacy{
		Collaborators: []migration.LegacyCollaborator{
			{ID: "v2", Name: "Fábio Oliveira", Kind: "vendedor", Status: "ativo", AdmissionDate: "2022-03-15"},
			{ID: "e10", Name: "Acme Serviços", Kind: "empresa", Email: "acme@example.com"},
			{ID: "e11", Name: "Beta", Kind: "empresa"},
			{ID: "e12", Name: "Gama", Kind: "empresa"},
			{ID: "e13", Name: "Delta", Kind: "empresa"},
			{ID: "35", Name: "Paula", Kind: "vendedor", Role: "Analista", Status: "inativo"},
			{ID: "36", Name: "Rui", Kind: "vendedor"},
			{ID: "37", Name: "Sara", Kind: "vendedor"},
		},
	}

	res := migration.Transform(legacy)

	require.Len(t, res.Representatives, 1)
	assert.Equal(t, "v2", res.Representatives[0].ID)
	assert.Equal(t, billing.NewDate(2022, 3, 15), res.Representatives[0].RegistrationDate)

	require.Len(t, res.Companies, 4)
	assert.Equal(t, "6201-5/00", res.Companies[0].ClassificationCode)
	assert.Equal(t, "6204-5/00", res.Companies[3].ClassificationCode)
	assert.Equal(t, "Gestor Acme", res.Companies[0].ManagerName)
	assert.Equal(t, "acme@example.com", res.Companies[0].ManagerEmail)
	assert.Equal(t, []string{"Tecnologia", "Consultoria", "Serviços", "Tecnologia"}, []string{
		res.Companies[0].Category, res.Companies[1].Category, res.Companies[2].Category, res.Companies[3].Category,
	})

	for _, c := range res.Companies {
		assert.Equal(t, "v2", c.RepresentativeID)
		assert.Equal(t, billing.RecordActive, c.Status)
	}

	require.Len(t, res.Collaborators, 3)
	assert.Equal(t, "35", res.Collaborators[0].ID)
	assert.Equal(t, billing.CollaboratorStaff, res.Collaborators[0].Type)
	assert.Equal(t, billing.RecordInactive, res.Collaborators[0].Status)
	assert.Equal(t, "Analista", res.Collaborators[0].Role)

	assert.Equal(t, "CLT", res.Collaborators[0].Category)
	assert.Equal(t, "PJ", res.Collaborators[1].Category)
	assert.Equal(t, billing.WorkOnSite, res.Collaborators[0].WorkType)
	assert.Equal(t, billing.WorkRemote, res.Collaborators[1].WorkType)
	assert.Equal(t, billing.WorkHybrid, res.Collaborators[2].WorkType)
	assert.Equal(t, "3x2", res.Collaborators[2].HybridSchedule)
	assert.Empty(t, res.Collaborators[1].HybridSchedule)

	assert.Equal(t, "e10", res.Collaborators[0].CompanyID)
	assert.Equal(t, "e12", res.Collaborators[2].CompanyID)
}

func TestTransform_Invoices(t *testing.T) {
	legacy := migration.Legacy{
		Invoices: []migration.LegacyInvoice{
			{
				ID: "n1", Number: "2024/001", Client: "Cliente A", CollaboratorID: "v3", CollaboratorName: "Mariana Costa",
				Value: 1000, IssueDate: "2024-03-10", DueDate: "2024-04-10", Status: "paga", Category: "Consultoria",
			},
			{ID: "n2", Number: "2024/002", Value: 500, IssueDate: "not a date", Status: "vencida"},
			{Number: "2024/003", Status: "arquivada"},
		},
	}

	res := migration.Transform(legacy)
	require.Len(t, res.Invoices, 3)

	first := res.Invoices[0]
	assert.Equal(t, "n1", first.ID)
	assert.Equal(t, "2024/001", first.Number)
	assert.Equal(t, "Cliente A", first.ClientName)
	assert.Equal(t, "v3", first.RepresentativeID)
	assert.Equal(t, "Mariana Costa", first.RepresentativeName)
	assert.Equal(t, "e1", first.CompanyID)
	assert.Equal(t, billing.Taxes{ISS: 50, PIS: 16.5, COFINS: 76, IRRF: 15}, first.Taxes)
	assert.InDelta(t, 842.5, first.NetValue, 1e-9)
	assert.Equal(t, "Serviços prestados", first.Description)
	assert.Equal(t, "Lucro Presumido", first.TaxRegime)
	assert.Equal(t, billing.NewDate(2024, 3, 10), first.IssueDate)
	assert.Equal(t, billing.StatusPaid, first.Status)

	second := res.Invoices[1]
	assert.Equal(t, "v2", second.RepresentativeID)
	assert.Equal(t, "Fábio Oliveira", second.RepresentativeName)
	assert.Equal(t, "Consultoria ABC", second.ClientName)
	assert.True(t, second.IssueDate.IsZero())
	assert.Equal(t, billing.StatusNotIssued, second.Status)

	third := res.Invoices[2]
	assert.Equal(t, "legacy-invoice-3", third.ID)
	assert.Equal(t, billing.Status("arquivada"), third.Status)
	assert.Zero(t, third.GrossValue)
}
