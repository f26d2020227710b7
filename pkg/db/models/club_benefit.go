package models

import (
	"time"

	"github.com/google/uuid"
	dbtypes "github.com/sanjaykhanna/clubcrm-backend/pkg/db/types"
	"gorm.io/gorm"
)

// ClubBenefit covers the on-premise club facilities granted to a member.
type ClubBenefit struct {
	ID                uuid.UUID          `gorm:"type:uuid;primaryKey"`
	MedicalFacilities string             `gorm:"column:medical_facilities"`
	Games             string             `gorm:"column:games"`
	Gym               string             `gorm:"column:gym"`
	Movie             string             `gorm:"column:movie"`
	AnniversaryDinner string             `gorm:"column:anniversary_dinner"`
	Events            dbtypes.StringList `gorm:"column:events;type:text"`
	MemberID          *uuid.UUID         `gorm:"type:uuid;column:member_id;index"`
	BenefitStatus     string             `gorm:"column:benefit_status;not null;default:new"`
	StatusNote        string             `gorm:"column:status_note"`
	CreatedAt         time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (c *ClubBenefit) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
