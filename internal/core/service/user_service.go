package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nine-chairs/myflix-api/internal/core/domain"
	"github.com/nine-chairs/myflix-api/internal/core/ports"
)

// UserService owns profile and favorites mutations. All mutations enforce
// ownership: the acting principal may only change their own record.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

// Update applies a partial profile update. A provided password is re-hashed
// before it reaches the store; the plaintext never leaves this method.
func (s *UserService) Update(ctx context.Context, actor, username string, input ports.UpdateUserInput) (*domain.User, error) {
	if actor != username {
		return nil, domain.ErrForbidden
	}

	fields := ports.UpdateUserFields{
		Username: input.Username,
		Email:    input.Email,
		Birthday: input.Birthday,
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		fields.PasswordHash = &hashed
	}

	updated, err := s.repo.UpdateFields(ctx, username, fields)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Msg("user profile updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, actor, username string) error {
	if actor != username {
		return domain.ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, username)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrUserNotFound
	}

	s.log.Info().Str("username", username).Msg("user deregistered")
	return nil
}

// AddFavorite appends movieID to the user's favorites. The sequence is a
// multiset: adding an ID already present appends another occurrence.
func (s *UserService) AddFavorite(ctx context.Context, actor, username, movieID string) (*domain.User, error) {
	if actor != username {
		return nil, domain.ErrForbidden
	}
	return s.repo.MutateFavorites(ctx, username, domain.FavoritesAdd, movieID)
}

// RemoveFavorite pulls every occurrence of movieID from the user's favorites.
// Removing an ID that is not present is a no-op, not an error.
func (s *UserService) RemoveFavorite(ctx context.Context, actor, username, movieID string) (*domain.User, error) {
	if actor != username {
		return nil, domain.ErrForbidden
	}
	return s.repo.MutateFavorites(ctx, username, domain.FavoritesRemove, movieID)
}

func (s *UserService) ListFavorites(ctx context.Context, username string) ([]string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user.FavoriteMovies == nil {
		return []string{}, nil
	}
	return user.FavoriteMovies, nil
}
