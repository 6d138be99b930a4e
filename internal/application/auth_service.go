package application

import (
	"crypto/subtle"
	"time"

	"go.uber.org/zap"

	"github.com/walker-cleaning/site-api/internal/apperror"
	"github.com/walker-cleaning/site-api/internal/platform/auth"
)

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

// SessionDTO is the issued admin session.
type SessionDTO struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	Remember  bool      `json:"remember"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthService authenticates the site admin and issues session tokens.
type AuthService struct {
	adminPassword string
	jwtManager    *auth.JWTManager
	logger        *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(adminPassword string, jwtManager *auth.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminPassword: adminPassword,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Login checks the admin password and returns a session token. The remember
// flag extends the token lifetime; it never changes what the token can do.
func (s *AuthService) Login(req LoginRequest) (*SessionDTO, error) {
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.adminPassword)) != 1 {
		s.logger.Warn("admin login rejected")
		return nil, apperror.NewUnauthorizedError("invalid password")
	}

	token, expiresAt, err := s.jwtManager.IssueAdminToken(req.Remember)
	if err != nil {
		return nil, err
	}

	return &SessionDTO{
		Token:     token,
		Role:      auth.RoleAdmin,
		Remember:  req.Remember,
		ExpiresAt: expiresAt,
	}, nil
}
