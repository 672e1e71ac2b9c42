package handler

import (
	"time"

	"github.com/nine-chairs/myflix-api/internal/core/domain"
)

const birthdayLayout = "2006-01-02"

type registerRequest struct {
	Username string `json:"username" validate:"required,min=5,alphanum"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Birthday string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// parseBirthday converts an already-validated birthday string to a time.
// Empty input yields nil.
func parseBirthday(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(birthdayLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
