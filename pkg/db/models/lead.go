package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/enums"
	"gorm.io/gorm"
)

// Lead holds one row of the capture sheet plus assignment state. The capture
// fields are free text as the floor enters them; only status is normalized.
type Lead struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date        string    `gorm:"column:date"`
	Location    string    `gorm:"column:location;index"`
	Name        string    `gorm:"column:name"`
	Phone1      string    `gorm:"column:phone1"`
	Phone2      string    `gorm:"column:phone2"`
	Email       string    `gorm:"column:email"`
	Age         *int      `gorm:"column:age"`
	Profession  string    `gorm:"column:profession"`
	Income      string    `gorm:"column:income"`
	LastHoliday *string   `gorm:"column:last_holiday"`
	Car         string    `gorm:"column:car"`
	CreditCard  string    `gorm:"column:credit_card"`
	Time        *string   `gorm:"column:time"`

	Executive string     `gorm:"column:executive;index"`
	TLID      *uuid.UUID `gorm:"type:uuid;column:tl_id;index"`
	Manager   *string    `gorm:"column:manager"`

	Status enums.LeadStatus `gorm:"column:status;type:text;index"`
	Remark string           `gorm:"column:remark"`

	AssignedTo    *uuid.UUID `gorm:"type:uuid;column:assigned_to;index"`
	SaleExecutive *string    `gorm:"column:sale_executive"`
	SaleTL        *string    `gorm:"column:sale_tl"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
