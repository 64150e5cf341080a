package billing_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	content := `
company_categories:
  - Varejo
  - Logística
tax_types:
  - code: ISS
    name: ISS
    description: Imposto Sobre Serviços
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	got, err := billing.LoadSettingsFile(path)
	require.NoError(t, err)

	def := billing.DefaultSettings()

	assert.Equal(t, []string{"Varejo", "Logística"}, got.CompanyCategories)
	assert.Len(t, got.TaxTypes, 1)
	assert.Equal(t, def.TaxRegimes, got.TaxRegimes)
	assert.Equal(t, def.HybridSchedules, got.HybridSchedules)
}

func TestLoadSettingsFile_Missing(t *testing.T) {
	_, err := billing.LoadSettingsFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
