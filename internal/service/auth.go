package service

import (
	"github.com/clerk/clerk-sdk-go/v2"

	"github.com/homehero/homehero-server/internal/server"
)

// AuthService configures Clerk for bearer token verification.
type AuthService struct {
	enabled bool
}

// NewAuthService sets the Clerk secret key when one is configured.
// Without it, callers are identified only by request-supplied uid/email.
func NewAuthService(s *server.Server) *AuthService {
	key := s.Config.Auth.SecretKey
	if key != "" {
		clerk.SetKey(key)
	}
	return &AuthService{enabled: key != ""}
}

// Enabled reports whether bearer tokens are verified.
func (a *AuthService) Enabled() bool {
	return a.enabled
}
