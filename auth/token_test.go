package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Issue(1, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a").Issue(1, "admin")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := issuer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	token, err := issuer.Issue(1, "admin")
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "xxxx"
	_, err = issuer.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
