package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Membership is the record of a sold holiday-club package. Monetary fields
// stay strings: the record mirrors the signed paper agreement verbatim.
type Membership struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberName       string    `gorm:"column:member_name;not null"`
	PartnerName      string    `gorm:"column:partner_name"`
	Mobile           string    `gorm:"column:mobile;not null"`
	MembershipPeriod string    `gorm:"column:membership_period;not null"`
	MembershipPrice  string    `gorm:"column:membership_price;not null"`
	PackageType      string    `gorm:"column:package_type;not null"`
	PrivilegeClub    bool      `gorm:"column:privilege_club;not null"`
	Gym              bool      `gorm:"column:gym;not null"`
	PurchasedPrice   string    `gorm:"column:purchased_price;not null"`
	DownPayment      string    `gorm:"column:down_payment"`
	Balance          string    `gorm:"column:balance"`
	ModeOfPayment    string    `gorm:"column:mode_of_payment"`
	SaleRep          string    `gorm:"column:sale_rep"`
	Manager          string    `gorm:"column:manager"`
	BranchInCharge   string    `gorm:"column:branch_in_charge"`
	PaymentProof     string    `gorm:"column:payment_proof"`
	MemberKYC        string    `gorm:"column:member_kyc"`
	DigitalSignature string    `gorm:"column:digital_signature"`
	AgreementNumber  string    `gorm:"column:agreement_number"`
	AMC              string    `gorm:"column:amc"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
