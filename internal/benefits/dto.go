package benefits

import (
	"time"

	"github.com/google/uuid"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/db/models"
	dbtypes "github.com/sanjaykhanna/clubcrm-backend/pkg/db/types"
)

// BenefitDTO is the transport shape of a travel entitlement record.
type BenefitDTO struct {
	ID                uuid.UUID  `json:"id"`
	Travelling        string     `json:"travelling,omitempty"`
	PickUpDrop        string     `json:"pick_up_drop,omitempty"`
	Accommodation     string     `json:"accommodation,omitempty"`
	Food              string     `json:"food,omitempty"`
	Sightseeing       string     `json:"sightseeing,omitempty"`
	MedicalFacilities string     `json:"medical_facilities,omitempty"`
	Games             string     `json:"games,omitempty"`
	Gym               string     `json:"gym,omitempty"`
	Movie             string     `json:"movie,omitempty"`
	AnniversaryDinner string     `json:"anniversary_dinner,omitempty"`
	Events            []string   `json:"events,omitempty"`
	MemberID          *uuid.UUID `json:"member_id,omitempty"`
	StatusNote        string     `json:"status_note,omitempty"`
	TravelStatus      string     `json:"travel_status"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CreateBenefitDTO carries the travel entitlements granted with a package.
type CreateBenefitDTO struct {
	Travelling        string     `json:"travelling"`
	PickUpDrop        string     `json:"pick_up_drop"`
	Accommodation     string     `json:"accommodation"`
	Food              string     `json:"food"`
	Sightseeing       string     `json:"sightseeing"`
	MedicalFacilities string     `json:"medical_facilities"`
	Games             string     `json:"games"`
	Gym               string     `json:"gym"`
	Movie             string     `json:"movie"`
	AnniversaryDinner string     `json:"anniversary_dinner"`
	Events            []string   `json:"events"`
	MemberID          *uuid.UUID `json:"member_id"`
	StatusNote        string     `json:"status_note"`
}

// ClubBenefitDTO is the transport shape of an on-premise facility grant.
type ClubBenefitDTO struct {
	ID                uuid.UUID  `json:"id"`
	MedicalFacilities string     `json:"medical_facilities,omitempty"`
	Games             string     `json:"games,omitempty"`
	Gym               string     `json:"gym,omitempty"`
	Movie             string     `json:"movie,omitempty"`
	AnniversaryDinner string     `json:"anniversary_dinner,omitempty"`
	Events            []string   `json:"events,omitempty"`
	MemberID          *uuid.UUID `json:"member_id,omitempty"`
	BenefitStatus     string     `json:"benefit_status"`
	StatusNote        string     `json:"status_note,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CreateClubBenefitDTO carries the club facilities granted with a package.
type CreateClubBenefitDTO struct {
	MedicalFacilities string     `json:"medical_facilities"`
	Games             string     `json:"games"`
	Gym               string     `json:"gym"`
	Movie             string     `json:"movie"`
	AnniversaryDinner string     `json:"anniversary_dinner"`
	Events            []string   `json:"events"`
	MemberID          *uuid.UUID `json:"member_id"`
	StatusNote        string     `json:"status_note"`
}

func FromBenefitModel(b *models.Benefit) *BenefitDTO {
	if b == nil {
		return nil
	}
	return &BenefitDTO{
		ID:                b.ID,
		Travelling:        b.Travelling,
		PickUpDrop:        b.PickUpDrop,
		Accommodation:     b.Accommodation,
		Food:              b.Food,
		Sightseeing:       b.Sightseeing,
		MedicalFacilities: b.MedicalFacilities,
		Games:             b.Games,
		Gym:               b.Gym,
		Movie:             b.Movie,
		AnniversaryDinner: b.AnniversaryDinner,
		Events:            append([]string(nil), b.Events...),
		MemberID:          b.MemberID,
		StatusNote:        b.StatusNote,
		TravelStatus:      b.TravelStatus,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func FromBenefitModels(list []models.Benefit) []BenefitDTO {
	out := make([]BenefitDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromBenefitModel(&list[i]))
	}
	return out
}

func FromClubBenefitModel(c *models.ClubBenefit) *ClubBenefitDTO {
	if c == nil {
		return nil
	}
	return &ClubBenefitDTO{
		ID:                c.ID,
		MedicalFacilities: c.MedicalFacilities,
		Games:             c.Games,
		Gym:               c.Gym,
		Movie:             c.Movie,
		AnniversaryDinner: c.AnniversaryDinner,
		Events:            append([]string(nil), c.Events...),
		MemberID:          c.MemberID,
		BenefitStatus:     c.BenefitStatus,
		StatusNote:        c.StatusNote,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func FromClubBenefitModels(list []models.ClubBenefit) []ClubBenefitDTO {
	out := make([]ClubBenefitDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromClubBenefitModel(&list[i]))
	}
	return out
}

func (c CreateBenefitDTO) ToModel() *models.Benefit {
	return &models.Benefit{
		Travelling:        c.Travelling,
		PickUpDrop:        c.PickUpDrop,
		Accommodation:     c.Accommodation,
		Food:              c.Food,
		Sightseeing:       c.Sightseeing,
		MedicalFacilities: c.MedicalFacilities,
		Games:             c.Games,
		Gym:               c.Gym,
		Movie:             c.Movie,
		AnniversaryDinner: c.AnniversaryDinner,
		Events:            dbtypes.StringList(c.Events),
		MemberID:          c.MemberID,
		StatusNote:        c.StatusNote,
		TravelStatus:      "new",
	}
}

func (c CreateClubBenefitDTO) ToModel() *models.ClubBenefit {
	return &models.ClubBenefit{
		MedicalFacilities: c.MedicalFacilities,
		Games:             c.Games,
		Gym:               c.Gym,
		Movie:             c.Movie,
		AnniversaryDinner: c.AnniversaryDinner,
		Events:            dbtypes.StringList(c.Events),
		MemberID:          c.MemberID,
		StatusNote:        c.StatusNote,
		BenefitStatus:     "new",
	}
}
