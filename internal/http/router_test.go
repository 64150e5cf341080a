package http_test

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/faturamento/internal/auth"
	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/dashboard"
	apihttp "github.com/MrJamesThe3rd/faturamento/internal/http"
	authHandler "github.com/MrJamesThe3rd/faturamento/internal/http/auth"
	dashboardHandler "github.com/MrJamesThe3rd/faturamento/internal/http/dashboard"
	invoiceHandler "github.com/MrJamesThe3rd/faturamento/internal/http/invoice"
	migrationHandler "github.com/MrJamesThe3rd/faturamento/internal/http/migration"
	"github.com/MrJamesThe3rd/faturamento/internal/http/registry"
	"github.com/MrJamesThe3rd/faturamento/internal/migration"
)

const secret = "router-secret"

type fixture struct {
	billing   *billing.MockRepository
	dashboard *dashboard.MockRepository
	auth      *auth.MockRepository
	migration *migration.MockRepository
	handler   http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		billing:   billing.NewMockRepository(ctrl),
		dashboard: dashboard.NewMockRepository(ctrl),
		auth:      auth.NewMockRepository(ctrl),
		migration: migration.NewMockRepository(ctrl),
	}

	var (
		authService      = auth.NewService(f.auth, secret, time.Hour)
		billingService   = billing.NewService(f.billing)
		dashboardService = dashboard.NewService(f.dashboard)
		migrationService = migration.NewService(f.migration)
	)

	f.handler = apihttp.New(
		apihttp.Options{AllowedOrigins: []string{"*"}, Verifier: authService},
		authHandler.NewHandler(authService),
		registry.NewHandler(billingService),
		invoiceHandler.NewHandler(billingService),
		dashboardHandler.NewHandler(dashboardService),
		migrationHandler.NewHandler(migrationService),
	)

	return f
}

func token(t *testing.T, s auth.Session) string {
	t.Helper()

	s.LoggedInAt = time.Now()

	tok, err := auth.GenerateJWT(s, secret, time.Hour)
	require.NoError(t, err)

	return tok
}

var (
	admin = auth.Session{Role: auth.RoleAdmin, Email: "chefe@novigoit.com", Name: "chefe"}
	luis  = auth.Session{Role: auth.RoleRepresentative, Email: "luis@novigoit.com", Name: "Luís Santos", RepresentativeID: "v1"}
)

func invoices() []billing.Invoice {
	return []billing.Invoice{
		{ID: "i1", Number: "NF/001", ClientName: "Acme", GrossValue: 1000, RepresentativeID: "v1", RepresentativeName: "Luís Santos", Status: billing.StatusIssued, IssueDate: billing.NewDate(2024, time.January, 5)},
		{ID: "i2", Number: "NF/002", ClientName: "Beta", GrossValue: 2000, RepresentativeID: "v2", RepresentativeName: "Fábio Oliveira", Status: billing.StatusPaid, IssueDate: billing.NewDate(2024, time.February, 5)},
	}
}

func (f *fixture) do(t *testing.T, method, path, tok string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	return rec
}

func TestLoginThenListInvoices(t *testing.T) {
	f := newFixture(t)

	f.auth.EXPECT().Representatives(gomock.Any()).Return([]billing.Representative{{ID: "v1", Name: "Luís Santos", Email: "luis@novigoit.com"}}, nil)
	f.auth.EXPECT().Collaborators(gomock.Any()).Return(nil, nil)
	f.auth.EXPECT().Save(gomock.Any(), billing.KeySession, gomock.Any()).Return(nil)
	f.billing.EXPECT().Invoices(gomock.Any()).Return(invoices(), nil)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "Luis@NovigoIT.com",
		"role":  "representative",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login struct {
		Token   string       `json:"token"`
		Session auth.Session `json:"session"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&login))
	assert.Equal(t, "v1", login.Session.RepresentativeID)

	rec = f.do(t, http.MethodGet, "/api/v1/invoices", login.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []billing.Invoice
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "i1", got[0].ID)
}

func TestLogin_UnknownRepresentative(t *testing.T) {
	f := newFixture(t)

	f.auth.EXPECT().Representatives(gomock.Any()).Return(nil, nil)
	f.auth.EXPECT().Collaborators(gomock.Any()).Return(nil, nil)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "x@y.com", "role": "representative"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "x@y.com", "role": "guest"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSession(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/auth/session", token(t, luis), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"v1"`)

	f.auth.EXPECT().Delete(gomock.Any(), billing.KeySession).Return(nil)
	rec = f.do(t, http.MethodPost, "/api/v1/auth/logout", token(t, luis), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthorization(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		session    *auth.Session
		body       any
		wantStatus int
	}{
		{name: "no token", method: http.MethodGet, path: "/api/v1/invoices", wantStatus: http.StatusUnauthorized},
		{name: "representative cannot create representatives", method: http.MethodPost, path: "/api/v1/representatives", session: &luis, body: billing.Representative{Name: "X"}, wantStatus: http.StatusForbidden},
		{name: "representative cannot change settings", method: http.MethodPut, path: "/api/v1/settings", session: &luis, body: billing.Settings{}, wantStatus: http.StatusForbidden},
		{name: "representative cannot run migration", method: http.MethodPost, path: "/api/v1/migration/run", session: &luis, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			tok := ""
			if tt.session != nil {
				tok = token(t, *tt.session)
			}

			rec := f.do(t, tt.method, tt.path, tok, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestInvoice_OutOfScopeIsNotFound(t *testing.T) {
	f := newFixture(t)
	f.billing.EXPECT().Invoices(gomock.Any()).Return(invoices(), nil)

	rec := f.do(t, http.MethodGet, "/api/v1/invoices/i2", token(t, luis), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvoice_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		setupMock  func(m *billing.MockRepository)
		wantStatus int
	}{
		{
			name:   "legacy label",
			status: "Conferida",
			setupMock: func(m *billing.MockRepository) {
				m.EXPECT().Invoices(gomock.Any()).Return(invoices(), nil).Times(2)
				m.EXPECT().
					SaveInvoices(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, got []billing.Invoice) error {
						assert.Equal(t, billing.StatusReviewed, got[0].Status)
						return nil
					})
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "backwards is allowed",
			status: "not_issued",
			setupMock: func(m *billing.MockRepository) {
				m.EXPECT().Invoices(gomock.Any()).Return(invoices(), nil).Times(2)
				m.EXPECT().SaveInvoices(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "unknown status",
			status: "cancelada",
			setupMock: func(m *billing.MockRepository) {
				m.EXPECT().Invoices(gomock.Any()).Return(invoices(), nil)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f.billing)

			rec := f.do(t, http.MethodPatch, "/api/v1/invoices/i1/status", token(t, luis), map[string]string{"status": tt.status})
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestInvoice_CreateByRepresentativeIsAttributedToThem(t *testing.T) {
	f := newFixture(t)

	f.billing.EXPECT().Invoices(gomock.Any()).Return(nil, nil)
	f.billing.EXPECT().
		SaveInvoices(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, got []billing.Invoice) error {
			require.Len(t, got, 1)
			assert.Equal(t, "v1", got[0].RepresentativeID)
			assert.Equal(t, "Luís Santos", got[0].RepresentativeName)
			return nil
		})

	rec := f.do(t, http.MethodPost, "/api/v1/invoices", token(t, luis), billing.Invoice{
		Number: "NF/003", ClientName: "Gama", GrossValue: 10, RepresentativeID: "v2",
		IssueDate: billing.NewDate(2024, time.March, 1),
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestInvoice_CreateRejected(t *testing.T) {
	tests := []struct {
		name       string
		body       billing.Invoice
		setupMock  func(m *billing.MockRepository)
		wantStatus int
	}{
		{
			name:       "missing issue date",
			body:       billing.Invoice{Number: "NF/003", ClientName: "Gama", GrossValue: 10},
			setupMock:  func(m *billing.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "id taken by another representative",
			body: billing.Invoice{ID: "i2", Number: "NF/003", ClientName: "Gama", GrossValue: 10, IssueDate: billing.NewDate(2024, time.March, 1)},
			setupMock: func(m *billing.MockRepository) {
				m.EXPECT().Invoices(gomock.Any()).Return(invoices(), nil)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f.billing)

			rec := f.do(t, http.MethodPost, "/api/v1/invoices", token(t, luis), tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestInvoice_ExportNonASCIINumber(t *testing.T) {
	f := newFixture(t)

	stored := invoices()
	stored[0].Number = "Nº 001"
	f.billing.EXPECT().Invoices(gomock.Any()).Return(stored, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/invoices/i1/export", token(t, admin), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	_, params, err := mime.ParseMediaType(rec.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	assert.Equal(t, "Nº 001.json", params["filename"])
}

func TestMigration_LegacyUploadAfterMigrationConflicts(t *testing.T) {
	f := newFixture(t)
	f.migration.EXPECT().
		Load(gomock.Any(), billing.KeyMigrationCompleted, gomock.Any()).
		DoAndReturn(func(_ any, _ string, dst any) (bool, error) {
			*(dst.(*bool)) = true
			return true, nil
		})

	rec := f.do(t, http.MethodPost, "/api/v1/migration/legacy", token(t, admin), map[string]any{"notasFiscais": []any{}})
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestInvoice_Documents(t *testing.T) {
	f := newFixture(t)
	f.billing.EXPECT().Invoices(gomock.Any()).Return(invoices(), nil).Times(4)

	tok := token(t, admin)

	rec := f.do(t, http.MethodGet, "/api/v1/invoices/i2/export", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=NF-002.json", rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "exportedAt")

	rec = f.do(t, http.MethodGet, "/api/v1/invoices/i2/print", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOTA FISCAL DE SERVIÇOS ELETRÔNICA")

	rec = f.do(t, http.MethodGet, "/api/v1/invoices/i2/print.pdf", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))

	rec = f.do(t, http.MethodGet, "/api/v1/invoices/i2/share", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://wa.me/?text=")
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	f.dashboard.EXPECT().Invoices(gomock.Any()).Return(invoices(), nil).Times(2)

	rec := f.do(t, http.MethodGet, "/api/v1/dashboard/monthly", token(t, admin), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var buckets []dashboard.MonthlyBucket
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&buckets))
	require.Len(t, buckets, 12)
	assert.Equal(t, 1000.0, buckets[0].Value)
	assert.Equal(t, 2000.0, buckets[1].Value)

	// A representative cannot widen their scope through the query string.
	rec = f.do(t, http.MethodGet, "/api/v1/dashboard/clients?representative_id=v2", token(t, luis), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var groups []dashboard.ClientGroup
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "Acme", groups[0].Client)
}

func TestDashboard_AdminNarrowsToRepresentative(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantJan float64
		wantFeb float64
	}{
		{name: "by name", query: "?representative=F%C3%A1bio%20Oliveira", wantFeb: 2000},
		{name: "by id", query: "?representative_id=v1", wantJan: 1000},
		{name: "unknown name", query: "?representative=Ningu%C3%A9m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.dashboard.EXPECT().Invoices(gomock.Any()).Return(invoices(), nil)

			rec := f.do(t, http.MethodGet, "/api/v1/dashboard/monthly"+tt.query, token(t, admin), nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var buckets []dashboard.MonthlyBucket
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&buckets))
			require.Len(t, buckets, 12)
			assert.Equal(t, tt.wantJan, buckets[0].Value)
			assert.Equal(t, tt.wantFeb, buckets[1].Value)
		})
	}
}

func TestDashboard_CompanyNotFound(t *testing.T) {
	f := newFixture(t)
	f.dashboard.EXPECT().Invoices(gomock.Any()).Return(invoices(), nil)

	rec := f.do(t, http.MethodGet, "/api/v1/dashboard/companies/Beta", token(t, luis), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMigrationStatus(t *testing.T) {
	f := newFixture(t)
	f.migration.EXPECT().
		Load(gomock.Any(), billing.KeyMigrationCompleted, gomock.Any()).
		DoAndReturn(func(_ any, _ string, dst any) (bool, error) {
			*(dst.(*bool)) = true
			return true, nil
		})

	rec := f.do(t, http.MethodGet, "/api/v1/migration/status", token(t, admin), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"completed":true}`, rec.Body.String())
}
