package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/faturamento/internal/auth"
)

type verifier struct{ secret string }

func (v verifier) Verify(token string) (*auth.Session, error) {
	return auth.ValidateJWT(token, v.secret)
}

func TestMiddleware(t *testing.T) {
	token, err := auth.GenerateJWT(auth.Session{
		Role:       auth.RoleRepresentative,
		Email:      "luis@novigoit.com",
		RepresentativeID: "v1",
		LoggedInAt: time.Now(),
	}, secret, time.Hour)
	require.NoError(t, err)

	adminToken, err := auth.GenerateJWT(auth.Session{Role: auth.RoleAdmin, Email: "a@b.com", LoggedInAt: time.Now()}, secret, time.Hour)
	require.NoError(t, err)

	var seen *auth.Session

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = auth.SessionFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		header     string
		handler    http.Handler
		wantStatus int
	}{
		{name: "missing header", handler: ok, wantStatus: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", handler: ok, wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, handler: ok, wantStatus: http.StatusNoContent},
		{name: "admin only rejects representative", header: "Bearer " + token, handler: auth.RequireAdmin(ok), wantStatus: http.StatusForbidden},
		{name: "admin only accepts admin", header: "Bearer " + adminToken, handler: auth.RequireAdmin(ok), wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			auth.Middleware(verifier{secret: secret})(tt.handler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusNoContent {
				require.NotNil(t, seen)
			}
		})
	}

	assert.Equal(t, "v1", func() string {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		auth.Middleware(verifier{secret: secret})(ok).ServeHTTP(httptest.NewRecorder(), req)

		return seen.RepresentativeID
	}())
}
