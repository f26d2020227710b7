package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sanjaykhanna/clubcrm-backend/internal/auth"
	"github.com/sanjaykhanna/clubcrm-backend/internal/users"
	pkgerrors "github.com/sanjaykhanna/clubcrm-backend/pkg/errors"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func addRouteParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

type stubAuthService struct {
	loginFn func(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error)
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, req)
	}
	return nil, nil
}

type stubAddUserService struct {
	addFn func(ctx context.Context, req auth.AddUserRequest) (*auth.AddUserResponse, error)
}

func (s *stubAddUserService) AddUser(ctx context.Context, req auth.AddUserRequest) (*auth.AddUserResponse, error) {
	if s.addFn != nil {
		return s.addFn(ctx, req)
	}
	return nil, nil
}

func TestAuthLoginSuccess(t *testing.T) {
	userID := uuid.New()
	svc := &stubAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
			if req.Username != "jdoe" {
				t.Fatalf("unexpected username %s", req.Username)
			}
			return &auth.LoginResponse{
				AccessToken:  "token-1",
				RefreshToken: "refresh-1",
				User:         &users.UserDTO{ID: userID, Name: "J Doe", Role: "tl"},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(`{"username":"jdoe","password":"secret"}`))
	resp := httptest.NewRecorder()
	AuthLogin(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if got := resp.Header().Get("X-CC-Token"); got != "token-1" {
		t.Fatalf("unexpected token header %q", got)
	}

	var envelope struct {
		Data loginResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.Token != "token-1" || envelope.Data.RefreshToken != "refresh-1" {
		t.Fatalf("unexpected tokens %+v", envelope.Data)
	}
	if envelope.Data.Role != "tl" || envelope.Data.ID != userID || envelope.Data.Name != "J Doe" {
		t.Fatalf("unexpected identity %+v", envelope.Data)
	}
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(`{"username":"jdoe","password":"wrong"}`))
	resp := httptest.NewRecorder()
	AuthLogin(svc, testLogger())(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthLoginMissingFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(`{"username":"jdoe"}`))
	resp := httptest.NewRecorder()
	AuthLogin(&stubAuthService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAddUserCreated(t *testing.T) {
	svc := &stubAddUserService{
		addFn: func(ctx context.Context, req auth.AddUserRequest) (*auth.AddUserResponse, error) {
			return &auth.AddUserResponse{
				User: &users.UserDTO{Username: req.Username, Email: req.Email, Role: "agent"},
			}, nil
		},
	}

	body := `{"name":"New Agent","username":"agent1","email":"agent1@club.example","password":"longenough","role":"agent"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/addUser", strings.NewReader(body))
	resp := httptest.NewRecorder()
	AddUser(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	var envelope struct {
		Data struct {
			Message string        `json:"message"`
			User    users.UserDTO `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.User.Username != "agent1" {
		t.Fatalf("unexpected user %+v", envelope.Data.User)
	}
	if strings.Contains(resp.Body.String(), "password") {
		t.Fatal("response must not expose credentials")
	}
}

func TestAddUserDuplicateConflict(t *testing.T) {
	svc := &stubAddUserService{
		addFn: func(ctx context.Context, req auth.AddUserRequest) (*auth.AddUserResponse, error) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "username or email already registered")
		},
	}

	body := `{"name":"New Agent","username":"agent1","email":"agent1@club.example","password":"longenough","role":"agent"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/addUser", strings.NewReader(body))
	resp := httptest.NewRecorder()
	AddUser(svc, testLogger())(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
}
