package ports

import (
	"context"
	"time"

	"github.com/nine-chairs/myflix-api/internal/core/domain"
)

// UpdateUserFields carries a partial profile update. Nil fields are left
// untouched by the store. PasswordHash must already be hashed by the caller.
type UpdateUserFields struct {
	Username     *string
	PasswordHash *string
	Email        *string
	Birthday     *time.Time
}

// UserRepository is the credential-store contract. Implementations must make
// MutateFavorites a single atomic read-and-update so concurrent mutations on
// the same user cannot lose writes.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateFields(ctx context.Context, username string, fields UpdateUserFields) (*domain.User, error)
	MutateFavorites(ctx context.Context, username string, op domain.FavoritesOp, movieID string) (*domain.User, error)
	Delete(ctx context.Context, username string) (bool, error)
}
