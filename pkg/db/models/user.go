package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/enums"
	"gorm.io/gorm"
)

// User represents the canonical identity entity. PasswordHash only ever holds
// the argon2id digest; the plaintext secret never reaches the model.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"column:name;not null"`
	Username     string     `gorm:"column:username;not null;uniqueIndex"`
	Email        string     `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Role         enums.Role `gorm:"column:role;type:text;not null"`
	ManagerID    *uuid.UUID `gorm:"type:uuid;column:manager_id"`
	Manager      *User      `gorm:"foreignKey:ManagerID"`

	// Aggregates bumped by bulk lead uploads; denormalized for the dashboard.
	TotalLeads     int64 `gorm:"column:total_leads;not null;default:0"`
	ConfirmedLeads int64 `gorm:"column:confirmed_leads;not null;default:0"`

	LastLoginAt *time.Time `gorm:"column:last_login_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
