// Package auth issues and verifies admin session tokens. Sessions carry an
// explicit expiry and a "remember" flag instead of an ambient logged-in
// marker; the remember flag only changes the token TTL.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/walker-cleaning/site-api/internal/apperror"
)

// RoleAdmin is the only role the site API issues.
const RoleAdmin = "admin"

// SessionClaims are the JWT claims carried by an admin session token.
type SessionClaims struct {
	Role     string `json:"role"`
	Remember bool   `json:"remember"`
	jwt.RegisteredClaims
}

// JWTManager issues and verifies admin session tokens.
type JWTManager struct {
	secret      []byte
	sessionTTL  time.Duration
	rememberTTL time.Duration
}

// NewJWTManager creates a JWTManager with the given signing secret and TTLs.
func NewJWTManager(secret string, sessionTTL, rememberTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:      []byte(secret),
		sessionTTL:  sessionTTL,
		rememberTTL: rememberTTL,
	}
}

// IssueAdminToken creates a signed admin session token. When remember is set
// the token lives for the extended TTL.
func (m *JWTManager) IssueAdminToken(remember bool) (string, time.Time, error) {
	ttl := m.sessionTTL
	if remember {
		ttl = m.rememberTTL
	}

	now := time.Now().UTC()
	expiresAt := now.Add(ttl)
	claims := SessionClaims{
		Role:     RoleAdmin,
		Remember: remember,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// VerifyToken parses and validates a session token.
func (m *JWTManager) VerifyToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.NewUnauthorizedError("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.NewUnauthorizedError("invalid or expired session token")
	}
	return claims, nil
}
