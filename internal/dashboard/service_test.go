package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/dashboard"
)

func TestService_Summary(t *testing.T) {
	type testCase struct {
		name        string
		scope       billing.Scope
		setupMock   func(m *dashboard.MockRepository)
		wantRevenue float64
		wantErr     bool
	}

	tests := []testCase{
		{
			name: "AdminSeesEverything",
			setupMock: func(m *dashboard.MockRepository) {
				m.EXPECT().Invoices(gomock.Any()).Return(sampleInvoices(), nil)
				m.EXPECT().Collaborators(gomock.Any()).Return(make([]billing.Collaborator, 4), nil)
			},
			wantRevenue: 3500,
		},
		{
			name:  "RepresentativeSeesOwnInvoices",
			scope: billing.Scope{RepresentativeID: "v2"},
			setupMock: func(m *dashboard.MockRepository) {
				m.EXPECT().Invoices(gomock.Any()).Return(sampleInvoices(), nil)
				m.EXPECT().Collaborators(gomock.Any()).Return(nil, nil)
			},
			wantRevenue: 2000,
		},
		{
			name: "RepoError",
			setupMock: func(m *dashboard.MockRepository) {
				m.EXPECT().Invoices(gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := dashboard.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := dashboard.NewService(repo).Summary(context.Background(), tt.scope)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRevenue, got.TotalRevenue)
		})
	}
}

func TestService_Representatives_Scoped(t *testing.T) {
	reps := []billing.Representative{
		{ID: "v1", Name: "Luís Santos"},
		{ID: "v2", Name: "Fábio Oliveira"},
	}

	tests := []struct {
		name    string
		scope   billing.Scope
		wantIDs []string
	}{
		{name: "admin", wantIDs: []string{"v2", "v1"}},
		{name: "by id", scope: billing.Scope{RepresentativeID: "v1"}, wantIDs: []string{"v1"}},
		{name: "by name only", scope: billing.Scope{RepresentativeName: "Fábio Oliveira"}, wantIDs: []string{"v2"}},
		{name: "unknown name", scope: billing.Scope{RepresentativeName: "Ninguém"}, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := dashboard.NewMockRepository(ctrl)
			repo.EXPECT().Invoices(gomock.Any()).Return(sampleInvoices(), nil)
			repo.EXPECT().Representatives(gomock.Any()).Return(reps, nil)

			stats, err := dashboard.NewService(repo).Representatives(context.Background(), tt.scope)
			require.NoError(t, err)

			ids := []string{}
			for _, s := range stats {
				ids = append(ids, s.Representative.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestService_Company(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := dashboard.NewMockRepository(ctrl)
	repo.EXPECT().Invoices(gomock.Any()).Return(sampleInvoices(), nil).Times(2)
	repo.EXPECT().
		Companies(gomock.Any()).
		Return([]billing.Company{{ID: "e9", FullName: "Acme Corp"}}, nil)

	svc := dashboard.NewService(repo)

	detail, err := svc.Company(context.Background(), billing.Scope{}, "Acme")
	require.NoError(t, err)

	assert.Equal(t, 2, detail.InvoiceCount)
	assert.Equal(t, 1500.0, detail.TotalValue)
	assert.Len(t, detail.Months, 12)
	require.NotNil(t, detail.Record)
	assert.Equal(t, "e9", detail.Record.ID)

	_, err = svc.Company(context.Background(), billing.Scope{RepresentativeID: "v2"}, "Acme")
	assert.ErrorIs(t, err, billing.ErrNotFound)
}

func TestService_Monthly_Scoped(t *testing.T) {
	invoices := sampleInvoices()
	invoices[0].RepresentativeName = "Luís Santos"
	invoices[1].RepresentativeName = "Luís Santos"
	invoices[2].RepresentativeName = "Fábio Oliveira"

	tests := []struct {
		name    string
		scope   billing.Scope
		wantJan monthCount
		wantFeb monthCount
	}{
		{name: "admin", wantJan: monthCount{2, 3000}, wantFeb: monthCount{1, 500}},
		{name: "by name", scope: billing.ByName("Luís Santos"), wantJan: monthCount{1, 1000}, wantFeb: monthCount{1, 500}},
		{name: "by id", scope: billing.Scope{RepresentativeID: "v2"}, wantJan: monthCount{1, 2000}},
		{
			name:    "session scope",
			scope:   billing.Scope{RepresentativeID: "v1", RepresentativeName: "Luís Santos"},
			wantJan: monthCount{1, 1000},
			wantFeb: monthCount{1, 500},
		},
		{name: "nobody", scope: billing.Nobody()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := dashboard.NewMockRepository(ctrl)
			repo.EXPECT().Invoices(gomock.Any()).Return(invoices, nil)

			got, err := dashboard.NewService(repo).Monthly(context.Background(), tt.scope)
			require.NoError(t, err)
			require.Len(t, got, 12)

			assert.Equal(t, tt.wantJan, monthCount{got[0].Count, got[0].Value})
			assert.Equal(t, tt.wantFeb, monthCount{got[1].Count, got[1].Value})
		})
	}
}

type monthCount struct {
	Count int
	Value float64
}
