package ports

import (
	"context"

	"github.com/nine-chairs/myflix-api/internal/core/domain"
)

// MovieService defines catalog read operations.
type MovieService interface {
	List(ctx context.Context) ([]*domain.Movie, error)
	GetByTitle(ctx context.Context, title string) (*domain.Movie, error)
	GetGenre(ctx context.Context, name string) (*domain.Genre, error)
	GetDirector(ctx context.Context, name string) (*domain.Director, error)
}
