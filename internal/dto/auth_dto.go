package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	Username string   `json:"username" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	Role     string   `json:"role" validate:"required,oneof=mentor student"`
	Courses  []string `json:"courses" validate:"required,min=1"`
	// Contact arrives as one comma-separated string and is split server-side.
	Contact string `json:"contact" validate:"required"`
}

type RegisterResponse struct {
	Id       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the identity reference the controller snapshots into the
// session on success.
type LoginResult struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}
