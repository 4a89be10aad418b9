package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitmoney/splitmoney/pkg/config"
	"github.com/splitmoney/splitmoney/pkg/domain"
	"github.com/splitmoney/splitmoney/pkg/dto"
	authsvc "github.com/splitmoney/splitmoney/pkg/service/auth"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	t.Parallel()
	issuer := authsvc.NewTokenIssuer(testConfig())
	u := &dto.UserRead{ID: uuid.New(), FullName: "Test User", Email: "test@example.com"}

	resp, err := issuer.Issue(u, "User")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := issuer.Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Email, claims.Username)
	assert.Equal(t, "User", claims.Role)
}

func TestTokenIssuer_Expired(t *testing.T) {
	t.Parallel()
	issuer := authsvc.NewTokenIssuer(&config.Jwt{
		Secret:        "test-secret",
		ExpiryMinutes: -1,
	})
	u := &dto.UserRead{ID: uuid.New(), Email: "test@example.com"}

	resp, err := issuer.Issue(u, "User")
	require.NoError(t, err)

	_, err = issuer.Validate(resp.AccessToken)
	require.ErrorIs(t, err, domain.ErrExpiredToken)
}

func TestTokenIssuer_Malformed(t *testing.T) {
	t.Parallel()
	issuer := authsvc.NewTokenIssuer(testConfig())

	_, err := issuer.Validate("not-a-token")
	require.ErrorIs(t, err, domain.ErrMalformedToken)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	t.Parallel()
	issuer := authsvc.NewTokenIssuer(testConfig())
	other := authsvc.NewTokenIssuer(&config.Jwt{Secret: "other-secret", ExpiryMinutes: 60})
	u := &dto.UserRead{ID: uuid.New(), Email: "test@example.com"}

	resp, err := other.Issue(u, "User")
	require.NoError(t, err)

	_, err = issuer.Validate(resp.AccessToken)
	require.ErrorIs(t, err, domain.ErrMalformedToken)
}
