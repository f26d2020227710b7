package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sanjaykhanna/clubcrm-backend/api/responses"
	"github.com/sanjaykhanna/clubcrm-backend/api/validators"
	"github.com/sanjaykhanna/clubcrm-backend/internal/benefits"
	pkgerrors "github.com/sanjaykhanna/clubcrm-backend/pkg/errors"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/logger"
)

// BenefitService is the surface the benefit controllers depend on.
type BenefitService interface {
	CreateBenefit(ctx context.Context, in benefits.CreateBenefitDTO) (*benefits.BenefitDTO, error)
	ListBenefits(ctx context.Context, memberID *uuid.UUID) ([]benefits.BenefitDTO, error)
	UpdateTravelStatus(ctx context.Context, id uuid.UUID, status, note string) error
	CreateClubBenefit(ctx context.Context, in benefits.CreateClubBenefitDTO) (*benefits.ClubBenefitDTO, error)
	ListClubBenefits(ctx context.Context, memberID *uuid.UUID) ([]benefits.ClubBenefitDTO, error)
	UpdateClubBenefitStatus(ctx context.Context, id uuid.UUID, status, note string) error
}

func memberFilter(r *http.Request) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("member_id"))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "member_id must be a uuid")
	}
	return &id, nil
}

type benefitStatusRequest struct {
	Status     string `json:"status" validate:"required"`
	StatusNote string `json:"status_note"`
}

// CreateBenefit records the travel entitlements granted with a package.
func CreateBenefit(svc BenefitService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "benefits service unavailable"))
			return
		}

		var body benefits.CreateBenefitDTO
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		benefit, err := svc.CreateBenefit(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, benefit)
	}
}

// ListBenefits returns travel benefits, optionally narrowed to one member.
func ListBenefits(svc BenefitService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "benefits service unavailable"))
			return
		}

		memberID, err := memberFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.ListBenefits(r.Context(), memberID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// UpdateBenefitStatus moves one travel benefit through fulfilment.
func UpdateBenefitStatus(svc BenefitService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "benefits service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body benefitStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateTravelStatus(r.Context(), id, body.Status, body.StatusNote); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "updated"})
	}
}

// CreateClubBenefit records the club facilities granted with a package.
func CreateClubBenefit(svc BenefitService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "benefits service unavailable"))
			return
		}

		var body benefits.CreateClubBenefitDTO
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		benefit, err := svc.CreateClubBenefit(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, benefit)
	}
}

// ListClubBenefits returns club facility grants, optionally per member.
func ListClubBenefits(svc BenefitService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "benefits service unavailable"))
			return
		}

		memberID, err := memberFilter(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.ListClubBenefits(r.Context(), memberID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// UpdateClubBenefitStatus moves one club facility grant through fulfilment.
func UpdateClubBenefitStatus(svc BenefitService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "benefits service unavailable"))
			return
		}

		id, err := validators.ParsePathUUID(chi.URLParam(r, "id"), "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body benefitStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateClubBenefitStatus(r.Context(), id, body.Status, body.StatusNote); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "updated"})
	}
}
