package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/sanjaykhanna/clubcrm-backend/api/responses"
	"github.com/sanjaykhanna/clubcrm-backend/api/validators"
	"github.com/sanjaykhanna/clubcrm-backend/internal/auth"
	pkgerrors "github.com/sanjaykhanna/clubcrm-backend/pkg/errors"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/logger"
)

type loginResponse struct {
	Message      string    `json:"message"`
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	Role         string    `json:"role"`
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
}

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("X-CC-Token", result.AccessToken)
		responses.WriteSuccess(w, loginResponse{
			Message:      "login successful",
			Token:        result.AccessToken,
			RefreshToken: result.RefreshToken,
			Role:         string(result.User.Role),
			ID:           result.User.ID,
			Name:         result.User.Name,
		})
	}
}

// AddUser lets privileged roles onboard staff accounts.
func AddUser(svc auth.AddUserService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.AddUserRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.AddUser(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		payload := map[string]any{
			"message": "user created",
			"user":    result.User,
		}
		if result.TempPassword != "" {
			payload["temp_password"] = result.TempPassword
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, payload)
	}
}
