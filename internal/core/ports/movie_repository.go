package ports

import (
	"context"

	"github.com/nine-chairs/myflix-api/internal/core/domain"
)

// MovieRepository defines read access to the movie catalog.
type MovieRepository interface {
	FindAll(ctx context.Context) ([]*domain.Movie, error)
	FindByTitle(ctx context.Context, title string) (*domain.Movie, error)
	FindByGenreName(ctx context.Context, name string) (*domain.Movie, error)
	FindByDirectorName(ctx context.Context, name string) (*domain.Movie, error)
}
