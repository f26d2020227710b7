package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/sanjaykhanna/clubcrm-backend/pkg/db/models"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/enums"
)

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Role           enums.Role `json:"role"`
	ManagerID      *uuid.UUID `json:"manager_id,omitempty"`
	TotalLeads     int64      `json:"total_leads"`
	ConfirmedLeads int64      `json:"confirmed_leads"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Role         enums.Role
	ManagerID    *uuid.UUID
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:             u.ID,
		Name:           u.Name,
		Username:       u.Username,
		Email:          u.Email,
		Role:           u.Role,
		ManagerID:      u.ManagerID,
		TotalLeads:     u.TotalLeads,
		ConfirmedLeads: u.ConfirmedLeads,
		LastLoginAt:    u.LastLoginAt,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func FromModels(list []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Name:         c.Name,
		Username:     c.Username,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Role:         c.Role,
		ManagerID:    c.ManagerID,
	}
}
