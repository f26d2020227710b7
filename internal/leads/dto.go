package leads

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/db/models"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/enums"
)

// Actor identifies the authenticated caller for scoping decisions.
type Actor struct {
	ID   uuid.UUID
	Role enums.Role
}

// LeadDTO is the transport shape for one lead row.
type LeadDTO struct {
	ID            uuid.UUID        `json:"id"`
	Date          string           `json:"date"`
	Location      string           `json:"location"`
	Name          string           `json:"name"`
	Phone1        string           `json:"phone1"`
	Phone2        string           `json:"phone2,omitempty"`
	Email         string           `json:"email,omitempty"`
	Age           *int             `json:"age,omitempty"`
	Profession    string           `json:"profession,omitempty"`
	Income        string           `json:"income,omitempty"`
	LastHoliday   *string          `json:"last_holiday,omitempty"`
	Car           string           `json:"car,omitempty"`
	CreditCard    string           `json:"credit_card,omitempty"`
	Time          *string          `json:"time,omitempty"`
	Executive     string           `json:"executive"`
	TLID          *uuid.UUID       `json:"tl_id,omitempty"`
	Manager       *string          `json:"manager,omitempty"`
	Status        enums.LeadStatus `json:"status"`
	Remark        string           `json:"remark"`
	AssignedTo    *uuid.UUID       `json:"assigned_to,omitempty"`
	SaleExecutive *string          `json:"sale_executive,omitempty"`
	SaleTL        *string          `json:"sale_tl,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// LeadInput carries one capture-sheet row for create/update calls.
type LeadInput struct {
	Date        string  `json:"date"`
	Location    string  `json:"location"`
	Name        string  `json:"name" validate:"required"`
	Phone1      string  `json:"phone1" validate:"required"`
	Phone2      string  `json:"phone2"`
	Email       string  `json:"email"`
	Age         *int    `json:"age"`
	Profession  string  `json:"profession"`
	Income      string  `json:"income"`
	LastHoliday *string `json:"last_holiday"`
	Car         string  `json:"car"`
	CreditCard  string  `json:"credit_card"`
	Time        *string `json:"time"`
	Executive   string  `json:"executive"`
	Manager     *string `json:"manager"`
	Status      string  `json:"status"`
}

// AssignRequest moves a batch of leads to one sales user.
type AssignRequest struct {
	Assigns       []uuid.UUID `json:"assigns" validate:"required,min=1"`
	UserID        uuid.UUID   `json:"user_id" validate:"required"`
	SaleExecutive *string     `json:"sale_executive,omitempty"`
	SaleTL        *string     `json:"sale_tl,omitempty"`
}

// ExecutiveCount is one row of the per-executive report.
type ExecutiveCount struct {
	Executive string `json:"executive"`
	Count     int64  `json:"count"`
}

// AgentSummary reports one agent's denormalized lead totals.
type AgentSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	TotalLeads     int64     `json:"total_leads"`
	ConfirmedLeads int64     `json:"confirmed_leads"`
}

// DashboardCounts aggregates lead totals for the dashboard widget.
type DashboardCounts struct {
	Total          int64   `json:"total"`
	New            int64   `json:"new"`
	Followup       int64   `json:"followup"`
	Confirmed      int64   `json:"confirmed"`
	Rejected       int64   `json:"rejected"`
	Closed         int64   `json:"closed"`
	ConversionRate float64 `json:"conversion_rate"`
}

func FromModel(l *models.Lead) *LeadDTO {
	if l == nil {
		return nil
	}
	return &LeadDTO{
		ID:            l.ID,
		Date:          l.Date,
		Location:      l.Location,
		Name:          l.Name,
		Phone1:        l.Phone1,
		Phone2:        l.Phone2,
		Email:         l.Email,
		Age:           l.Age,
		Profession:    l.Profession,
		Income:        l.Income,
		LastHoliday:   l.LastHoliday,
		Car:           l.Car,
		CreditCard:    l.CreditCard,
		Time:          l.Time,
		Executive:     l.Executive,
		TLID:          l.TLID,
		Manager:       l.Manager,
		Status:        l.Status,
		Remark:        l.Remark,
		AssignedTo:    l.AssignedTo,
		SaleExecutive: l.SaleExecutive,
		SaleTL:        l.SaleTL,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func FromModels(list []models.Lead) []LeadDTO {
	out := make([]LeadDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}

func (in LeadInput) toModel(tlID *uuid.UUID) models.Lead {
	// Sheet rows may arrive pre-statused (followups re-imported, confirmed
	// walk-ins); rows without one start the funnel.
	status := enums.LeadStatusNew
	if strings.TrimSpace(in.Status) != "" {
		status = enums.NormalizeLeadStatus(in.Status)
	}
	return models.Lead{
		Date:        in.Date,
		Location:    in.Location,
		Name:        in.Name,
		Phone1:      in.Phone1,
		Phone2:      in.Phone2,
		Email:       in.Email,
		Age:         in.Age,
		Profession:  in.Profession,
		Income:      in.Income,
		LastHoliday: in.LastHoliday,
		Car:         in.Car,
		CreditCard:  in.CreditCard,
		Time:        in.Time,
		Executive:   in.Executive,
		Manager:     in.Manager,
		TLID:        tlID,
		Status:      status,
	}
}
