package document_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/document"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 5,00"},
		{842.5, "R$ 842,50"},
		{1234.56, "R$ 1.234,56"},
		{1000000, "R$ 1.000.000,00"},
		{0.005, "R$ 0,01"},
		{-1500.1, "-R$ 1.500,10"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, document.FormatBRL(tt.in))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05/03/2024", document.FormatDate(billing.NewDate(2024, time.March, 5)))
	assert.Equal(t, "-", document.FormatDate(billing.Date{}))
}
