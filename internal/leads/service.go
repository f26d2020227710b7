package leads

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sanjaykhanna/clubcrm-backend/internal/users"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/db"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/db/models"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/enums"
	pkgerrors "github.com/sanjaykhanna/clubcrm-backend/pkg/errors"
	"gorm.io/gorm"
)

const leadNotFoundMessage = "lead not found"

// statusAll disables the status filter on list endpoints.
const statusAll = "all"

// Service wires role scoping and transactions around the leads repo.
type Service struct {
	db *db.Client
}

// NewService builds a leads service over the shared DB client.
func NewService(client *db.Client) (*Service, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &Service{db: client}, nil
}

// scopeFor translates the caller's role into a repo filter. Superadmin and
// reception see the whole floor, team leads their own uploads, everyone
// else only what was assigned to them.
func scopeFor(actor Actor) ListFilter {
	switch actor.Role {
	case enums.RoleSuperadmin, enums.RoleReception:
		return ListFilter{}
	case enums.RoleTL:
		id := actor.ID
		return ListFilter{TLID: &id}
	default:
		id := actor.ID
		return ListFilter{AssignedTo: &id}
	}
}

// ListForActor returns the caller's visible leads, optionally status-filtered.
func (s *Service) ListForActor(ctx context.Context, actor Actor, status string) ([]LeadDTO, error) {
	filter := scopeFor(actor)
	status = strings.TrimSpace(status)
	if status != "" && !strings.EqualFold(status, statusAll) {
		filter.Status = enums.NormalizeLeadStatus(status)
	}
	list, err := NewRepository(s.db.DB()).List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list leads")
	}
	return FromModels(list), nil
}

// ListByLocation matches the location column case-insensitively.
func (s *Service) ListByLocation(ctx context.Context, location string) ([]LeadDTO, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location is required")
	}
	list, err := NewRepository(s.db.DB()).ListByLocation(ctx, location)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list leads by location")
	}
	return FromModels(list), nil
}

// GetByID loads one lead.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*LeadDTO, error) {
	lead, err := NewRepository(s.db.DB()).FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, leadNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load lead")
	}
	return FromModel(lead), nil
}

// ListByAssignee returns the leads assigned to one user.
func (s *Service) ListByAssignee(ctx context.Context, userID uuid.UUID) ([]LeadDTO, error) {
	list, err := NewRepository(s.db.DB()).List(ctx, ListFilter{AssignedTo: &userID})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list assigned leads")
	}
	return FromModels(list), nil
}

// UpdateStatus normalizes and stores the new status. A transition into
// `confirmed` also bumps the owning team lead's confirmed counter.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*LeadDTO, error) {
	status := enums.NormalizeLeadStatus(rawStatus)
	if status == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "status is required")
	}

	var updated *LeadDTO
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)
		lead, err := repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, leadNotFoundMessage)
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load lead")
		}

		if _, err := repo.UpdateStatus(ctx, id, status); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update status")
		}

		if status == enums.LeadStatusConfirmed && lead.Status != enums.LeadStatusConfirmed && lead.TLID != nil {
			if err := users.NewRepository(tx).IncrementLeadCounters(ctx, *lead.TLID, 0, 1); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "bump confirmed counter")
			}
		}

		lead.Status = status
		updated = FromModel(lead)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateRemark stores the free-text remark.
func (s *Service) UpdateRemark(ctx context.Context, id uuid.UUID, remark string) error {
	affected, err := NewRepository(s.db.DB()).UpdateRemark(ctx, id, remark)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update remark")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, leadNotFoundMessage)
	}
	return nil
}

// Update overwrites the capture fields of one lead.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in LeadInput) (*LeadDTO, error) {
	fields := map[string]any{
		"date":         in.Date,
		"location":     in.Location,
		"name":         in.Name,
		"phone1":       in.Phone1,
		"phone2":       in.Phone2,
		"email":        in.Email,
		"age":          in.Age,
		"profession":   in.Profession,
		"income":       in.Income,
		"last_holiday": in.LastHoliday,
		"car":          in.Car,
		"credit_card":  in.CreditCard,
		"time":         in.Time,
		"executive":    in.Executive,
		"manager":      in.Manager,
	}

	repo := NewRepository(s.db.DB())
	affected, err := repo.UpdateFields(ctx, id, fields)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update lead")
	}
	if affected == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, leadNotFoundMessage)
	}

	lead, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload lead")
	}
	return FromModel(lead), nil
}

// Delete removes one lead.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := NewRepository(s.db.DB()).Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete lead")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, leadNotFoundMessage)
	}
	return nil
}

// BulkCreate inserts an uploaded batch. Team-lead uploads own the rows via
// tl_id and bump the uploader's total and confirmed counters in the same
// transaction.
func (s *Service) BulkCreate(ctx context.Context, actor Actor, inputs []LeadInput) ([]LeadDTO, error) {
	if len(inputs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one lead is required")
	}

	var tlID *uuid.UUID
	if actor.Role == enums.RoleTL {
		id := actor.ID
		tlID = &id
	}

	var created []LeadDTO
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		batch := make([]models.Lead, 0, len(inputs))
		var confirmed int64
		for _, in := range inputs {
			if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone1) == "" {
				return pkgerrors.New(pkgerrors.CodeValidation, "name and phone1 are required on every lead")
			}
			row := in.toModel(tlID)
			if row.Status == enums.LeadStatusConfirmed {
				confirmed++
			}
			batch = append(batch, row)
		}

		inserted, err := repo.BulkInsert(ctx, batch)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "insert leads")
		}

		if tlID != nil {
			if err := users.NewRepository(tx).IncrementLeadCounters(ctx, *tlID, int64(len(inserted)), confirmed); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "bump lead counters")
			}
		}

		created = FromModels(inserted)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Assign points a batch of leads at one sales user, all or nothing.
func (s *Service) Assign(ctx context.Context, req AssignRequest) (int64, error) {
	if len(req.Assigns) == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "assigns cannot be empty")
	}
	if req.UserID == uuid.Nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "user_id is required")
	}

	var assigned int64
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		if _, err := users.NewRepository(tx).FindByID(ctx, req.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeValidation, "assignee not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup assignee")
		}

		affected, err := NewRepository(tx).AssignBatch(ctx, req.Assigns, req.UserID, req.SaleExecutive, req.SaleTL)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "assign leads")
		}
		if affected != int64(len(req.Assigns)) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "one or more leads not found")
		}
		assigned = affected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return assigned, nil
}

// ExecutiveCounts reports the per-executive lead tally for a team lead.
func (s *Service) ExecutiveCounts(ctx context.Context, tlID uuid.UUID) ([]ExecutiveCount, error) {
	counts, err := NewRepository(s.db.DB()).CountsByExecutive(ctx, tlID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count leads by executive")
	}
	return counts, nil
}

// AgentSummaries lists the agents reporting to a team lead with their
// denormalized totals.
func (s *Service) AgentSummaries(ctx context.Context, tlID uuid.UUID) ([]AgentSummary, error) {
	team, err := users.NewRepository(s.db.DB()).ListByManager(ctx, tlID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list team")
	}
	out := make([]AgentSummary, 0, len(team))
	for _, member := range team {
		out = append(out, AgentSummary{
			ID:             member.ID,
			Name:           member.Name,
			Username:       member.Username,
			TotalLeads:     member.TotalLeads,
			ConfirmedLeads: member.ConfirmedLeads,
		})
	}
	return out, nil
}

// Dashboard aggregates lead totals within the caller's scope.
func (s *Service) Dashboard(ctx context.Context, actor Actor) (*DashboardCounts, error) {
	counts, err := NewRepository(s.db.DB()).StatusCounts(ctx, scopeFor(actor))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count leads")
	}

	out := &DashboardCounts{
		New:       counts[enums.LeadStatusNew],
		Followup:  counts[enums.LeadStatusFollowup],
		Confirmed: counts[enums.LeadStatusConfirmed],
		Rejected:  counts[enums.LeadStatusRejected],
		Closed:    counts[enums.LeadStatusClosed],
	}
	for _, n := range counts {
		out.Total += n
	}
	if out.Total > 0 {
		out.ConversionRate = float64(out.Confirmed) / float64(out.Total)
	}
	return out, nil
}
