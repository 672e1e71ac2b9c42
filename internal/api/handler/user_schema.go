package handler

import "github.com/nine-chairs/myflix-api/internal/core/ports"

// updateUserRequest is a partial update: only provided fields are applied.
type updateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,alphanum"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1"`
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
	Birthday *string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r *updateUserRequest) toInput() ports.UpdateUserInput {
	input := ports.UpdateUserInput{
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
	}
	if r.Birthday != nil {
		input.Birthday = parseBirthday(*r.Birthday)
	}
	return input
}

type deleteUserResponse struct {
	Message string `json:"message"`
}
