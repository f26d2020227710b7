package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sanjaykhanna/clubcrm-backend/api/responses"
	"github.com/sanjaykhanna/clubcrm-backend/api/validators"
	"github.com/sanjaykhanna/clubcrm-backend/internal/memberships"
	pkgerrors "github.com/sanjaykhanna/clubcrm-backend/pkg/errors"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/logger"
)

// MembershipService is the surface the membership controllers depend on.
type MembershipService interface {
	Create(ctx context.Context, in memberships.CreateMembershipDTO) (*memberships.MembershipDTO, error)
	List(ctx context.Context) ([]memberships.MembershipDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*memberships.MembershipDTO, error)
}

// CreateMembership records a sold package agreement.
func CreateMembership(svc MembershipService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "memberships service unavailable"))
			return
		}

		var body memberships.CreateMembershipDTO
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		membership, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, membership)
	}
}

// ListMemberships returns all sold packages, newest first.
func ListMemberships(svc MembershipService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "memberships service unavailable"))
			return
		}

		rows, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// GetMembership returns one sold package by id.
func GetMembership(svc MembershipService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "memberships service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		membership, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, membership)
	}
}
