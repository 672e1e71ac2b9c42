package domain

import "time"

// User models a registered account. The password hash is set-only: it is
// persisted but never serialized into a JSON response.
type User struct {
	ID             string     `json:"id,omitempty"`
	Username       string     `json:"username"`
	PasswordHash   string     `json:"-"`
	Email          string     `json:"email"`
	Birthday       *time.Time `json:"birthday,omitempty"`
	FavoriteMovies []string   `json:"favorite_movies"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// FavoritesOp selects the mutation applied by MutateFavorites.
type FavoritesOp string

const (
	FavoritesAdd    FavoritesOp = "add"
	FavoritesRemove FavoritesOp = "remove"
)
