package billing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TaxType describes a tax line the UI offers.
type TaxType struct {
	Code        string `json:"code" yaml:"code"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Settings is the singleton record of configurable enumerations.
type Settings struct {
	CompanyCategories      []string  `json:"company_categories" yaml:"company_categories"`
	CollaboratorCategories []string  `json:"collaborator_categories" yaml:"collaborator_categories"`
	WorkTypes              []string  `json:"work_types" yaml:"work_types"`
	HybridSchedules        []string  `json:"hybrid_schedules" yaml:"hybrid_schedules"`
	TaxRegimes             []string  `json:"tax_regimes" yaml:"tax_regimes"`
	TaxTypes               []TaxType `json:"tax_types" yaml:"tax_types"`
	NoteTemplates          []string  `json:"note_templates,omitempty" yaml:"note_templates"`
}

// DefaultSettings returns a fresh copy of the built-in settings.
func DefaultSettings() *Settings {
	return &Settings{
		CompanyCategories:      []string{"Banco", "Indústria", "Comércio", "Serviços", "Tecnologia", "Saúde", "Educação", "Outros"},
		CollaboratorCategories: []string{"CLT", "PJ", "RPA", "Flex"},
		WorkTypes:              []string{string(WorkOnSite), string(WorkRemote), string(WorkHybrid)},
		HybridSchedules:        []string{"3x2", "2x3", "4x1", "1x4"},
		TaxRegimes:             []string{"Lucro Presumido", "Simples Nacional", "Lucro Real", "MEI"},
		TaxTypes: []TaxType{
			{Code: "ISS", Name: "ISS", Description: "Imposto Sobre Serviços"},
			{Code: "PIS", Name: "PIS", Description: "Programa de Integração Social"},
			{Code: "COFINS", Name: "COFINS", Description: "Contribuição para o Financiamento da Seguridade Social"},
			{Code: "IRPJ", Name: "IRPJ", Description: "Imposto de Renda Pessoa Jurídica"},
			{Code: "CSLL", Name: "CSLL", Description: "Contribuição Social sobre o Lucro Líquido"},
			{Code: "INSS", Name: "INSS", Description: "Instituto Nacional do Seguro Social"},
			{Code: "IRRF", Name: "IRRF", Description: "Imposto de Renda Retido na Fonte"},
		},
		NoteTemplates: []string{
			"(1) Esta NFS-e foi emitida com respaldo na Lei nº 14.097/2005",
			"(2) Esta NFS-e não gera crédito",
			"(3) Faturamento referente aos serviços do mês de [mês/ano]",
		},
	}
}

// LoadSettingsFile reads settings from a YAML file. Lists missing from the
// file keep their built-in defaults.
func LoadSettingsFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	var fromFile Settings
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return nil, fmt.Errorf("parsing settings file: %w", err)
	}

	return fromFile.withDefaults(DefaultSettings()), nil
}

func (s Settings) withDefaults(def *Settings) *Settings {
	if len(s.CompanyCategories) == 0 {
		s.CompanyCategories = def.CompanyCategories
	}

	if len(s.CollaboratorCategories) == 0 {
		s.CollaboratorCategories = def.CollaboratorCategories
	}

	if len(s.WorkTypes) == 0 {
		s.WorkTypes = def.WorkTypes
	}

	if len(s.HybridSchedules) == 0 {
		s.HybridSchedules = def.HybridSchedules
	}

	if len(s.TaxRegimes) == 0 {
		s.TaxRegimes = def.TaxRegimes
	}

	if len(s.TaxTypes) == 0 {
		s.TaxTypes = def.TaxTypes
	}

	if len(s.NoteTemplates) == 0 {
		s.NoteTemplates = def.NoteTemplates
	}

	return &s
}
