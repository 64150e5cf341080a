package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
)

func TestScope_Apply(t *testing.T) {
	invoices := []billing.Invoice{
		{ID: "1", RepresentativeID: "v1", RepresentativeName: "Luís Santos"},
		{ID: "2", RepresentativeID: "v2", RepresentativeName: "Luís Santos"},
		{ID: "3", RepresentativeName: "Luís Santos"},
		{ID: "4", RepresentativeName: "Fábio Oliveira"},
	}

	ids := func(in []billing.Invoice) []string {
		out := []string{}
		for _, inv := range in {
			out = append(out, inv.ID)
		}

		return out
	}

	tests := []struct {
		name  string
		scope billing.Scope
		want  []string
	}{
		{name: "admin sees all", want: []string{"1", "2", "3", "4"}},
		{
			name:  "id match, name fallback only for invoices without id",
			scope: billing.Scope{RepresentativeID: "v1", RepresentativeName: "Luís Santos"},
			want:  []string{"1", "3"},
		},
		{
			name:  "unknown representative sees nothing",
			scope: billing.Scope{RepresentativeID: "v9"},
			want:  []string{},
		},
		{
			name:  "by name ignores ids",
			scope: billing.ByName("Luís Santos"),
			want:  []string{"1", "2", "3"},
		},
		{
			name:  "nobody sees nothing",
			scope: billing.Nobody(),
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.scope.Apply(invoices)))
		})
	}
}

func TestScope_IsAdmin(t *testing.T) {
	assert.True(t, billing.Scope{}.IsAdmin())
	assert.False(t, billing.Nobody().IsAdmin())
	assert.False(t, billing.ByName("Luís Santos").IsAdmin())
	assert.False(t, billing.Scope{RepresentativeID: "v1"}.IsAdmin())
}
