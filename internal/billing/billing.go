package billing

// Collection keys in the Record Store.
const (
	KeyRepresentatives    = "representatives"
	KeyCompanies          = "companies"
	KeyCollaborators      = "collaborators"
	KeyInvoices           = "invoices"
	KeySettings           = "settings"
	KeySession            = "session"
	KeyMigrationCompleted = "migration_completed"
)

// RecordStatus is the active/inactive flag shared by people and companies.
type RecordStatus string

const (
	RecordActive   RecordStatus = "active"
	RecordInactive RecordStatus = "inactive"
)

// Representative is a salesperson credited on invoices.
type Representative struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Role             string       `json:"role,omitempty"`
	Department       string       `json:"department,omitempty"`
	RegistrationDate Date         `json:"registration_date,omitzero"`
	Status           RecordStatus `json:"status"`
}

// Company is a client company owned by exactly one representative.
type Company struct {
	ID                 string       `json:"id"`
	FullName           string       `json:"full_name"`
	ClassificationCode string       `json:"classification_code,omitempty"`
	ManagerName        string       `json:"manager_name,omitempty"`
	ManagerEmail       string       `json:"manager_email,omitempty"`
	ManagerPhone       string       `json:"manager_phone,omitempty"`
	RepresentativeID   string       `json:"representative_id,omitempty"`
	RepresentativeName string       `json:"representative_name,omitempty"`
	Category           string       `json:"category,omitempty"`
	Status             RecordStatus `json:"status"`
	RegistrationDate   Date         `json:"registration_date,omitzero"`

	// Registration data, used as prestador/tomador details on invoices.
	LegalName             string `json:"legal_name,omitempty"`
	TaxID                 string `json:"tax_id,omitempty"`
	MunicipalRegistration string `json:"municipal_registration,omitempty"`
	StateRegistration     string `json:"state_registration,omitempty"`
	Address               string `json:"address,omitempty"`
	PostalCode            string `json:"postal_code,omitempty"`
	Municipality          string `json:"municipality,omitempty"`
	State                 string `json:"state,omitempty"`
	Email                 string `json:"email,omitempty"`
	Phone                 string `json:"phone,omitempty"`
}

// DisplayName prefers the trade name and falls back to the legal name.
func (c Company) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}

	return c.LegalName
}

// CollaboratorType distinguishes representatives from other staff in
// schemas that keep both in one collection.
type CollaboratorType string

const (
	CollaboratorRepresentative CollaboratorType = "representative"
	CollaboratorStaff          CollaboratorType = "collaborator"
)

// WorkType is where a collaborator works from.
type WorkType string

const (
	WorkOnSite WorkType = "on_site"
	WorkRemote WorkType = "remote"
	WorkHybrid WorkType = "hybrid"
)

// Collaborator is a staff member, optionally linked to a company.
type Collaborator struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	Type               CollaboratorType `json:"type"`
	Category           string           `json:"category,omitempty"`
	WorkType           WorkType         `json:"work_type,omitempty"`
	HybridSchedule     string           `json:"hybrid_schedule,omitempty"`
	CompanyID          string           `json:"company_id,omitempty"`
	CompanyName        string           `json:"company_name,omitempty"`
	RepresentativeID   string           `json:"representative_id,omitempty"`
	RepresentativeName string           `json:"representative_name,omitempty"`
	Role               string           `json:"role,omitempty"`
	Department         string           `json:"department,omitempty"`
	AdmissionDate      Date             `json:"admission_date,omitzero"`
	DismissalDate      Date             `json:"dismissal_date,omitzero"`
	Status             RecordStatus     `json:"status"`
}

// RepresentativesFromCollaborators picks the collaborators typed as
// representatives, for stores where both share one collection.
func RepresentativesFromCollaborators(cols []Collaborator) []Representative {
	reps := make([]Representative, 0, len(cols))

	for _, c := range cols {
		if c.Type != CollaboratorRepresentative {
			continue
		}

		reps = append(reps, Representative{
			ID:               c.ID,
			Name:             c.Name,
			Email:            c.Email,
			Phone:            c.Phone,
			Role:             c.Role,
			Department:       c.Department,
			RegistrationDate: c.AdmissionDate,
			Status:           c.Status,
		})
	}

	return reps
}

// Taxes holds the tax line items of an invoice. They are free-form values
// entered by the user (or synthesized by migration) and only summed.
type Taxes struct {
	ISS    float64 `json:"iss,omitempty"`
	PIS    float64 `json:"pis,omitempty"`
	COFINS float64 `json:"cofins,omitempty"`
	IRPJ   float64 `json:"irpj,omitempty"`
	CSLL   float64 `json:"csll,omitempty"`
	INSS   float64 `json:"inss,omitempty"`
	IRRF   float64 `json:"irrf,omitempty"`
}

// Total sums every tax line.
func (t Taxes) Total() float64 {
	return t.ISS + t.PIS + t.COFINS + t.IRPJ + t.CSLL + t.INSS + t.IRRF
}

// Party is the prestador or tomador block of an NFS-e.
type Party struct {
	LegalName             string `json:"legal_name,omitempty"`
	TaxID                 string `json:"tax_id,omitempty"`
	StateRegistration     string `json:"state_registration,omitempty"`
	MunicipalRegistration string `json:"municipal_registration,omitempty"`
	Address               string `json:"address,omitempty"`
	Municipality          string `json:"municipality,omitempty"`
	State                 string `json:"state,omitempty"`
	Email                 string `json:"email,omitempty"`
}

// BankDetails tells the client where to pay.
type BankDetails struct {
	Bank    string `json:"bank,omitempty"`
	Agency  string `json:"agency,omitempty"`
	Account string `json:"account,omitempty"`
	Pix     string `json:"pix,omitempty"`
}

// Invoice is a municipal service invoice (NFS-e).
type Invoice struct {
	ID                 string  `json:"id"`
	Number             string  `json:"number"`
	VerificationCode   string  `json:"verification_code,omitempty"`
	ClientName         string  `json:"client_name"`
	CompanyID          string  `json:"company_id,omitempty"`
	CompanyName        string  `json:"company_name,omitempty"`
	RepresentativeID   string  `json:"representative_id"`
	RepresentativeName string  `json:"representative_name"`
	Description        string  `json:"description"`
	Category           string  `json:"category,omitempty"`
	GrossValue         float64 `json:"gross_value"`
	Taxes              Taxes   `json:"taxes,omitzero"`
	NetValue           float64 `json:"net_value,omitempty"`
	TaxRegime          string  `json:"tax_regime,omitempty"`
	IssueDate          Date    `json:"issue_date,omitzero"`
	DueDate            Date    `json:"due_date,omitzero"`
	SentDate           Date    `json:"sent_date,omitzero"`
	Status             Status  `json:"status"`

	Provider  Party       `json:"provider,omitzero"`
	Recipient Party       `json:"recipient,omitzero"`
	Bank      BankDetails `json:"bank,omitzero"`

	ServiceCode         string  `json:"service_code,omitempty"`
	Deductions          float64 `json:"deductions,omitempty"`
	CalculationBase     float64 `json:"calculation_base,omitempty"`
	Rate                float64 `json:"rate,omitempty"`
	CreditValue         float64 `json:"credit_value,omitempty"`
	ServiceMunicipality string  `json:"service_municipality,omitempty"`
	WorksRegistration   string  `json:"works_registration,omitempty"`
	ApproxTaxes         float64 `json:"approx_taxes,omitempty"`
	Notes               string  `json:"notes,omitempty"`
}
