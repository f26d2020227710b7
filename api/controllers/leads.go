package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sanjaykhanna/clubcrm-backend/api/middleware"
	"github.com/sanjaykhanna/clubcrm-backend/api/responses"
	"github.com/sanjaykhanna/clubcrm-backend/api/validators"
	"github.com/sanjaykhanna/clubcrm-backend/internal/leads"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/enums"
	pkgerrors "github.com/sanjaykhanna/clubcrm-backend/pkg/errors"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/logger"
)

// LeadsService is the surface the lead controllers depend on.
type LeadsService interface {
	ListForActor(ctx context.Context, actor leads.Actor, status string) ([]leads.LeadDTO, error)
	ListByLocation(ctx context.Context, location string) ([]leads.LeadDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*leads.LeadDTO, error)
	ListByAssignee(ctx context.Context, userID uuid.UUID) ([]leads.LeadDTO, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*leads.LeadDTO, error)
	UpdateRemark(ctx context.Context, id uuid.UUID, remark string) error
	Update(ctx context.Context, id uuid.UUID, in leads.LeadInput) (*leads.LeadDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkCreate(ctx context.Context, actor leads.Actor, inputs []leads.LeadInput) ([]leads.LeadDTO, error)
	Assign(ctx context.Context, req leads.AssignRequest) (int64, error)
	ExecutiveCounts(ctx context.Context, tlID uuid.UUID) ([]leads.ExecutiveCount, error)
	AgentSummaries(ctx context.Context, tlID uuid.UUID) ([]leads.AgentSummary, error)
	Dashboard(ctx context.Context, actor leads.Actor) (*leads.DashboardCounts, error)
}

func actorFromContext(ctx context.Context) (leads.Actor, error) {
	rawID := middleware.UserIDFromContext(ctx)
	if rawID == "" {
		return leads.Actor{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return leads.Actor{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user id")
	}
	role, err := enums.ParseRole(middleware.RoleFromContext(ctx))
	if err != nil {
		return leads.Actor{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid role")
	}
	return leads.Actor{ID: id, Role: role}, nil
}

// ListLeads returns leads visible to the caller, optionally filtered by status.
func ListLeads(svc LeadsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		actor, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status := strings.TrimSpace(r.URL.Query().Get("status"))
		rows, err := svc.ListForActor(r.Context(), actor, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// ListLeadsByLocation returns leads captured at the named location.
func ListLeadsByLocation(svc LeadsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		location := strings.TrimSpace(chi.URLParam(r, "location"))
		if location == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "location is required"))
			return
		}

		rows, err := svc.ListByLocation(r.Context(), location)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// GetLead returns one lead by id.
func GetLead(svc LeadsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lead, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, lead)
	}
}

// AssignedLeads returns the leads currently assigned to one user.
func AssignedLeads(svc LeadsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.ListByAssignee(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateLeadStatus moves one lead through the pipeline.
func UpdateLeadStatus(svc LeadsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lead, err := svc.UpdateStatus(r.Context(), id, body.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, lead)
	}
}

type updateRemarkRequest struct {
	Remark string `json:"remark" validate:"required"`
}

// UpdateLeadRemark records follow-up notes on one lead.
func UpdateLeadRemark(svc LeadsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateRemarkRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateRemark(r.Context(), id, body.Remark); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "updated"})
	}
}

// UpdateLead rewrites the capture-sheet fields of one lead.
func UpdateLead(svc LeadsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body leads.LeadInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lead, err := svc.Update(r.Context(), id, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, lead)
	}
}

// DeleteLead removes one lead.
func DeleteLead(svc LeadsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// UploadLeads ingests a batch of capture-sheet rows.
func UploadLeads(svc LeadsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		actor, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var inputs []leads.LeadInput
		if err := validators.DecodeJSONSlice(r, &inputs); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if len(inputs) == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "at least one lead is required"))
			return
		}

		created, err := svc.BulkCreate(r.Context(), actor, inputs)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"message":  "leads uploaded",
			"inserted": len(created),
			"leads":    created,
		})
	}
}

// AssignLeads moves a batch of leads to one sales user.
func AssignLeads(svc LeadsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		var body leads.AssignRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		assigned, err := svc.Assign(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"message":  "leads assigned",
			"assigned": assigned,
		})
	}
}

// ExecutiveCounts reports lead counts per capture executive under one TL.
func ExecutiveCounts(svc LeadsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.ExecutiveCounts(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// AgentSummaries reports denormalized lead totals for agents under one TL.
func AgentSummaries(svc LeadsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.AgentSummaries(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// DashboardCounts aggregates the caller's visible pipeline totals.
func DashboardCounts(svc LeadsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "leads service unavailable"))
			return
		}

		actor, err := actorFromContext(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		counts, err := svc.Dashboard(r.Context(), actor)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, counts)
	}
}
