package ports

import (
	"context"
	"time"

	"github.com/nine-chairs/myflix-api/internal/core/domain"
)

// RegisterInput carries the validated registration payload.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Birthday *time.Time
}

// AuthService implements the local authentication strategy: credential
// verification, token issuance, and token-to-principal resolution.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Verify parses and validates a raw bearer token and resolves its
	// subject to a currently existing user. A token for a deleted user is
	// invalid even when unexpired.
	Verify(ctx context.Context, token string) (*domain.User, error)
}
