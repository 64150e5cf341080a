package migration

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

var (
	rateISS    = decimal.RequireFromString("0.05")
	ratePIS    = decimal.RequireFromString("0.0165")
	rateCOFINS = decimal.RequireFromString("0.076")
	rateIRRF   = decimal.RequireFromString("0.015")
)

const firstClassificationCode = 6201

// Result is the new-schema data produced from a legacy snapshot.
type Result struct {
	Representatives []billing.Representative
	Companies       []billing.Company
	Collaborators   []billing.Collaborator
	Invoices        []billing.Invoice
	Settings        *billing.Settings
	// Tomadores replace Companies once everything else has been written.
	Tomadores []billing.Company
}

// AssignByIndex picks the element at i modulo len(list). It reports false
// for an empty list.
func AssignByIndex[T any](list []T, i int) (T, bool) {
	var zero T
	if len(list) == 0 || i < 0 {
		return zero, false
	}

	return list[i%len(list)], true
}

// ComputeTaxes applies the fixed presumed-profit rates to gross, rounding
// each tax to cents. The net value is taken from the unrounded taxes and
// rounded once, so it need not equal gross minus the rounded taxes.
func ComputeTaxes(gross float64) (billing.Taxes, float64) {
	g := decimal.NewFromFloat(gross)

	iss := g.Mul(rateISS).Round(2)
	pis := g.Mul(ratePIS).Round(2)
	cofins := g.Mul(rateCOFINS).Round(2)
	irrf := g.Mul(rateIRRF).Round(2)

	net := g.Sub(g.Mul(rateISS.Add(ratePIS).Add(rateCOFINS).Add(rateIRRF))).Round(2)

	taxes := billing.Taxes{
		ISS:    iss.InexactFloat64(),
		PIS:    pis.InexactFloat64(),
		COFINS: cofins.InexactFloat64(),
		IRRF:   irrf.InexactFloat64(),
	}

	return taxes, net.InexactFloat64()
}

// Transform maps a legacy snapshot onto the new schema. It never fails:
// missing or malformed records fall back to seed data and defaults.
func Transform(legacy Legacy) Result {
	var (
		legacyReps      []LegacyCollaborator
		legacyCompanies []LegacyCollaborator
	)

	for _, c := range legacy.Collaborators {
		switch c.kind() {
		case legacyKindRepresentative:
			legacyReps = append(legacyReps, c)
		case legacyKindCompany:
			legacyCompanies = append(legacyCompanies, c)
		}
	}

	reps := representativesFrom(legacyReps)
	if len(reps) == 0 {
		reps = seedRepresentatives()
	}

	companies := companiesFrom(legacyCompanies, reps)
	if len(companies) == 0 {
		companies = seedCompanies()
	}

	collaborators := collaboratorsFrom(legacyReps, companies, reps)
	if len(collaborators) == 0 {
		collaborators = seedCollaborators()
	}

	return Result{
		Representatives: reps,
		Companies:       companies,
		Collaborators:   collaborators,
		Invoices:        invoicesFrom(legacy.Invoices, companies, reps),
		Settings:        billing.DefaultSettings(),
		Tomadores:       Tomadores(),
	}
}

func legacyID(id looseString, prefix string, i int) string {
	if s := strings.TrimSpace(string(id)); s != "" {
		return s
	}

	return fmt.Sprintf("legacy-%s-%d", prefix, i+1)
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

func isSeedRepresentative(c LegacyCollaborator) bool {
	return slices.Contains(seedRepresentativeIDs, strings.TrimSpace(string(c.ID)))
}

func representativesFrom(legacy []LegacyCollaborator) []billing.Representative {
	var reps []billing.Representative

	for _, c := range legacy {
		if !isSeedRepresentative(c) {
			continue
		}

		reps = append(reps, billing.Representative{
			ID:               strings.TrimSpace(string(c.ID)),
			Name:             string(c.Name),
			Email:            string(c.Email),
			Phone:            string(c.Phone),
			RegistrationDate: legacyDate(c.AdmissionDate),
			Status:           legacyRecordStatus(c.Status),
		})
	}

	return reps
}

func companiesFrom(legacy []LegacyCollaborator, reps []billing.Representative) []billing.Company {
	companies := make([]billing.Company, 0, len(legacy))

	for i, c := range legacy {
		rep, _ := AssignByIndex(reps, i)
		category, _ := AssignByIndex(companyCategories, i)
		name := string(c.Name)

		companies = append(companies, billing.Company{
			ID:                 legacyID(c.ID, "company", i),
			FullName:           name,
			ClassificationCode: fmt.Sprintf("%d-5/00", firstClassificationCode+i),
			ManagerName:        strings.TrimSpace("Gestor " + firstWord(name)),
			ManagerEmail:       string(c.Email),
			ManagerPhone:       string(c.Phone),
			RepresentativeID:   rep.ID,
			RepresentativeName: rep.Name,
			Category:           category,
			Status:             billing.RecordActive,
			RegistrationDate:   legacyDate(c.AdmissionDate),
		})
	}

	return companies
}

func collaboratorsFrom(legacy []LegacyCollaborator, companies []billing.Company, reps []billing.Representative) []billing.Collaborator {
	cols := make([]billing.Collaborator, 0, len(legacy))

	for _, c := range legacy {
		if isSeedRepresentative(c) {
			continue
		}

		i := len(cols)
		company, _ := AssignByIndex(companies, i)
		rep, _ := AssignByIndex(reps, i)
		category, _ := AssignByIndex(collaboratorCategories, i)
		workType, _ := AssignByIndex(workTypes, i)

		col := billing.Collaborator{
			ID:                 legacyID(c.ID, "collaborator", i),
			Name:               string(c.Name),
			Email:              string(c.Email),
			Phone:              string(c.Phone),
			Type:               billing.CollaboratorStaff,
			Category:           category,
			WorkType:           workType,
			CompanyID:          company.ID,
			CompanyName:        company.DisplayName(),
			RepresentativeID:   rep.ID,
			RepresentativeName: rep.Name,
			Role:               string(c.Role),
			Department:         string(c.Department),
			AdmissionDate:      legacyDate(c.AdmissionDate),
			Status:             legacyRecordStatus(c.Status),
		}

		if workType == billing.WorkHybrid {
			col.HybridSchedule = "3x2"
		}

		cols = append(cols, col)
	}

	return cols
}

func invoicesFrom(legacy []LegacyInvoice, companies []billing.Company, reps []billing.Representative) []billing.Invoice {
	invoices := make([]billing.Invoice, 0, len(legacy))

	for i, n := range legacy {
		company, _ := AssignByIndex(companies, i)
		rep, _ := AssignByIndex(reps, i)

		repID := strings.TrimSpace(string(n.CollaboratorID))
		if repID == "" {
			repID = rep.ID
		}

		repName := strings.TrimSpace(string(n.CollaboratorName))
		if repName == "" {
			repName = rep.Name
		}

		client := strings.TrimSpace(string(n.Client))
		if client == "" {
			client = company.DisplayName()
		}

		description := string(n.Description)
		if strings.TrimSpace(description) == "" {
			description = defaultDescription
		}

		gross := float64(n.Value)
		taxes, net := ComputeTaxes(gross)

		invoices = append(invoices, billing.Invoice{
			ID:                 legacyID(n.ID, "invoice", i),
			Number:             string(n.Number),
			ClientName:         client,
			CompanyID:          company.ID,
			CompanyName:        company.DisplayName(),
			RepresentativeID:   repID,
			RepresentativeName: repName,
			Description:        description,
			Category:           string(n.Category),
			GrossValue:         gross,
			Taxes:              taxes,
			NetValue:           net,
			TaxRegime:          defaultTaxRegime,
			IssueDate:          legacyDate(n.IssueDate),
			DueDate:            legacyDate(n.DueDate),
			SentDate:           legacyDate(n.SentDate),
			Status:             legacyInvoiceStatus(n.Status),
		})
	}

	return invoices
}
