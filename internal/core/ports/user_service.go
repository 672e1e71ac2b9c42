package ports

import (
	"context"
	"time"

	"github.com/nine-chairs/myflix-api/internal/core/domain"
)

// UpdateUserInput carries a partial profile update. A non-nil Password is
// re-hashed by the service before it reaches the store.
type UpdateUserInput struct {
	Username *string
	Password *string
	Email    *string
	Birthday *time.Time
}

// UserService owns profile and favorites mutations. Every mutation takes the
// acting principal's username and enforces ownership: a user may only change
// their own record.
type UserService interface {
	Get(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, actor, username string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor, username string) error
	AddFavorite(ctx context.Context, actor, username, movieID string) (*domain.User, error)
	RemoveFavorite(ctx context.Context, actor, username, movieID string) (*domain.User, error)
	ListFavorites(ctx context.Context, username string) ([]string, error)
}
