package models

import (
	"time"

	"github.com/google/uuid"
	dbtypes "github.com/sanjaykhanna/clubcrm-backend/pkg/db/types"
	"gorm.io/gorm"
)

// Benefit tracks the travel entitlements attached to a membership.
type Benefit struct {
	ID                uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Travelling        string             `gorm:"column:travelling"`
	PickUpDrop        string             `gorm:"column:pick_up_drop"`
	Accommodation     string             `gorm:"column:accommodation"`
	Food              string             `gorm:"column:food"`
	Sightseeing       string             `gorm:"column:sightseeing"`
	MedicalFacilities string             `gorm:"column:medical_facilities"`
	Games             string             `gorm:"column:games"`
	Gym               string             `gorm:"column:gym"`
	Movie             string             `gorm:"column:movie"`
	AnniversaryDinner string             `gorm:"column:anniversary_dinner"`
	Events            dbtypes.StringList `gorm:"column:events;type:text"`
	MemberID          *uuid.UUID         `gorm:"type:uuid;column:member_id;index"`
	StatusNote        string             `gorm:"column:status_note"`
	TravelStatus      string             `gorm:"column:travel_status;not null;default:new"`
	CreatedAt         time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (b *Benefit) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
