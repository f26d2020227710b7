package memberships

import (
	"time"

	"github.com/google/uuid"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/db/models"
)

// MembershipDTO is the transport shape of one sold package.
type MembershipDTO struct {
	ID               uuid.UUID `json:"id"`
	MemberName       string    `json:"member_name"`
	PartnerName      string    `json:"partner_name,omitempty"`
	Mobile           string    `json:"mobile"`
	MembershipPeriod string    `json:"membership_period"`
	MembershipPrice  string    `json:"membership_price"`
	PackageType      string    `json:"package_type"`
	PrivilegeClub    bool      `json:"privilege_club"`
	Gym              bool      `json:"gym"`
	PurchasedPrice   string    `json:"purchased_price"`
	DownPayment      string    `json:"down_payment,omitempty"`
	Balance          string    `json:"balance,omitempty"`
	ModeOfPayment    string    `json:"mode_of_payment,omitempty"`
	SaleRep          string    `json:"sale_rep,omitempty"`
	Manager          string    `json:"manager,omitempty"`
	BranchInCharge   string    `json:"branch_in_charge,omitempty"`
	PaymentProof     string    `json:"payment_proof,omitempty"`
	MemberKYC        string    `json:"member_kyc,omitempty"`
	DigitalSignature string    `json:"digital_signature,omitempty"`
	AgreementNumber  string    `json:"agreement_number,omitempty"`
	AMC              string    `json:"amc,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateMembershipDTO mirrors the agreement sheet submitted at sale time.
type CreateMembershipDTO struct {
	MemberName       string `json:"member_name" validate:"required"`
	PartnerName      string `json:"partner_name"`
	Mobile           string `json:"mobile" validate:"required"`
	MembershipPeriod string `json:"membership_period" validate:"required"`
	MembershipPrice  string `json:"membership_price" validate:"required"`
	PackageType      string `json:"package_type" validate:"required"`
	PrivilegeClub    bool   `json:"privilege_club"`
	Gym              bool   `json:"gym"`
	PurchasedPrice   string `json:"purchased_price" validate:"required"`
	DownPayment      string `json:"down_payment"`
	Balance          string `json:"balance"`
	ModeOfPayment    string `json:"mode_of_payment"`
	SaleRep          string `json:"sale_rep"`
	Manager          string `json:"manager"`
	BranchInCharge   string `json:"branch_in_charge"`
	PaymentProof     string `json:"payment_proof"`
	MemberKYC        string `json:"member_kyc"`
	DigitalSignature string `json:"digital_signature"`
	AgreementNumber  string `json:"agreement_number"`
	AMC              string `json:"amc"`
}

func FromModel(m *models.Membership) *MembershipDTO {
	if m == nil {
		return nil
	}
	return &MembershipDTO{
		ID:               m.ID,
		MemberName:       m.MemberName,
		PartnerName:      m.PartnerName,
		Mobile:           m.Mobile,
		MembershipPeriod: m.MembershipPeriod,
		MembershipPrice:  m.MembershipPrice,
		PackageType:      m.PackageType,
		PrivilegeClub:    m.PrivilegeClub,
		Gym:              m.Gym,
		PurchasedPrice:   m.PurchasedPrice,
		DownPayment:      m.DownPayment,
		Balance:          m.Balance,
		ModeOfPayment:    m.ModeOfPayment,
		SaleRep:          m.SaleRep,
		Manager:          m.Manager,
		BranchInCharge:   m.BranchInCharge,
		PaymentProof:     m.PaymentProof,
		MemberKYC:        m.MemberKYC,
		DigitalSignature: m.DigitalSignature,
		AgreementNumber:  m.AgreementNumber,
		AMC:              m.AMC,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func FromModels(list []models.Membership) []MembershipDTO {
	out := make([]MembershipDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

func (c CreateMembershipDTO) ToModel() *models.Membership {
	return &models.Membership{
		MemberName:       c.MemberName,
		PartnerName:      c.PartnerName,
		Mobile:           c.Mobile,
		MembershipPeriod: c.MembershipPeriod,
		MembershipPrice:  c.MembershipPrice,
		PackageType:      c.PackageType,
		PrivilegeClub:    c.PrivilegeClub,
		Gym:              c.Gym,
		PurchasedPrice:   c.PurchasedPrice,
		DownPayment:      c.DownPayment,
		Balance:          c.Balance,
		ModeOfPayment:    c.ModeOfPayment,
		SaleRep:          c.SaleRep,
		Manager:          c.Manager,
		BranchInCharge:   c.BranchInCharge,
		PaymentProof:     c.PaymentProof,
		MemberKYC:        c.MemberKYC,
		DigitalSignature: c.DigitalSignature,
		AgreementNumber:  c.AgreementNumber,
		AMC:              c.AMC,
	}
}
