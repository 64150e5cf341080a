package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/dashboard"
)

func TestMonthFilter(t *testing.T) {
	var f monthFilter

	assert.Equal(t, dashboard.AllMonths, f.key())
	assert.Equal(t, "Todos os meses", f.String())

	f = f.next()
	assert.Equal(t, "01", f.key())
	assert.Equal(t, "Janeiro", f.String())

	for range 11 {
		f = f.next()
	}

	assert.Equal(t, "12", f.key())
	assert.Equal(t, monthFilter(0), f.next())
}

func TestInvoicesModel_Filter(t *testing.T) {
	m := NewInvoicesModel(nil, billing.Scope{})
	assert.Equal(t, billing.ListFilter{}, m.filter())

	m.statusFilterIdx = 5
	m.month = 3

	got := m.filter()
	if assert.NotNil(t, got.Status) {
		assert.Equal(t, billing.StatusPaid, *got.Status)
	}
	assert.Equal(t, "03", got.Month)
}
