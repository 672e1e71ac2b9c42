package service

import (
	"context"

	"github.com/nine-chairs/myflix-api/internal/core/domain"
	"github.com/nine-chairs/myflix-api/internal/core/ports"
)

// MovieService exposes catalog reads.
type MovieService struct {
	repo ports.MovieRepository
}

func NewMovieService(repo ports.MovieRepository) *MovieService {
	return &MovieService{repo: repo}
}

func (s *MovieService) List(ctx context.Context) ([]*domain.Movie, error) {
	return s.repo.FindAll(ctx)
}

func (s *MovieService) GetByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return s.repo.FindByTitle(ctx, title)
}

// GetGenre returns the genre subdocument of any movie carrying the named genre.
func (s *MovieService) GetGenre(ctx context.Context, name string) (*domain.Genre, error) {
	movie, err := s.repo.FindByGenreName(ctx, name)
	if err != nil {
		return nil, err
	}
	return &movie.Genre, nil
}

// GetDirector returns the director subdocument of any movie by that director.
func (s *MovieService) GetDirector(ctx context.Context, name string) (*domain.Director, error) {
	movie, err := s.repo.FindByDirectorName(ctx, name)
	if err != nil {
		return nil, err
	}
	return &movie.Director, nil
}
