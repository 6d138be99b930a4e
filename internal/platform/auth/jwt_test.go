package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewJWTManager("secret", 30*time.Minute, 720*time.Hour)

	token, expiresAt, err := m.IssueAdminToken(false)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, time.Minute)

	claims, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.False(t, claims.Remember)
}

func TestRememberUsesExtendedTTL(t *testing.T) {
	m := NewJWTManager("secret", 30*time.Minute, 720*time.Hour)

	token, expiresAt, err := m.IssueAdminToken(true)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(720*time.Hour), expiresAt, time.Minute)

	claims, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.True(t, claims.Remember)
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Minute, time.Hour)
	verifier := NewJWTManager("secret-b", time.Minute, time.Hour)

	token, _, err := issuer.IssueAdminToken(false)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute, time.Hour)

	token, _, err := m.IssueAdminToken(false)
	require.NoError(t, err)

	_, err = m.VerifyToken(token)
	assert.Error(t, err)
}
