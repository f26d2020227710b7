package auth

import (
	"github.com/google/uuid"
	"github.com/sanjaykhanna/clubcrm-backend/internal/users"
)

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the tokens and user produced by a successful login.
type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	User         *users.UserDTO `json:"user"`
}

// AddUserRequest is the payload superadmins submit when onboarding staff.
type AddUserRequest struct {
	Name       string `json:"name" validate:"required"`
	Username   string `json:"username" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"omitempty,min=8"`
	Role       string `json:"role" validate:"required"`
	ManagerRef string `json:"manager_ref,omitempty"`
}

// AddUserResponse returns the created account without credentials. When the
// request omitted a password the generated one is included exactly once.
type AddUserResponse struct {
	User         *users.UserDTO `json:"user"`
	TempPassword string         `json:"temp_password,omitempty"`
}

// RefreshResponse carries a rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ManagerRefToID parses a manager reference into a UUID when present.
func ManagerRefToID(ref string) (*uuid.UUID, error) {
	if ref == "" {
		return nil, nil
	}
	id, err := uuid.Parse(ref)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
