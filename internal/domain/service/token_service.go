package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims holds the identity asserted by an access token.
type Claims struct {
	UserID    uuid.UUID
	Username  string
	Roles     []string
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
// Accounts are managed elsewhere; this service only needs to trust their tokens.
type TokenService interface {
	// GenerateAccessToken signs an access token for the given identity.
	GenerateAccessToken(userID uuid.UUID, username string, roles []string) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
