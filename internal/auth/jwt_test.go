package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/faturamento/internal/auth"
)

func TestJWT(t *testing.T) {
	session := auth.Session{
		Role:             auth.RoleRepresentative,
		Email:            "luis@novigoit.com",
		Name:             "Luís Santos",
		RepresentativeID: "v1",
		LoggedInAt:       time.Now().UTC().Truncate(time.Second),
	}

	token, err := auth.GenerateJWT(session, "s3cret", time.Hour)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		got, err := auth.ValidateJWT(token, "s3cret")
		require.NoError(t, err)
		assert.Equal(t, session, *got)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := auth.ValidateJWT(token, "other")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		old := session
		old.LoggedInAt = time.Now().Add(-2 * time.Hour)

		expired, err := auth.GenerateJWT(old, "s3cret", time.Hour)
		require.NoError(t, err)

		_, err = auth.ValidateJWT(expired, "s3cret")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := auth.ValidateJWT("not.a.token", "s3cret")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
