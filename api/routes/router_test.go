package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sanjaykhanna/clubcrm-backend/api/controllers"
	"github.com/sanjaykhanna/clubcrm-backend/internal/auth"
	"github.com/sanjaykhanna/clubcrm-backend/internal/leads"
	"github.com/sanjaykhanna/clubcrm-backend/internal/users"
	pkgAuth "github.com/sanjaykhanna/clubcrm-backend/pkg/auth"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/auth/session"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/config"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/enums"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/logger"
)

type stubSessions struct{}

func (stubSessions) HasSession(ctx context.Context, accessID string) (bool, error) { return true, nil }
func (stubSessions) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	return session.NewAccessID(), "refresh", nil
}
func (stubSessions) Revoke(ctx context.Context, accessID string) error { return nil }

type stubAuth struct{}

func (stubAuth) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return &auth.LoginResponse{
		AccessToken:  "token",
		RefreshToken: "refresh",
		User:         &users.UserDTO{ID: uuid.New(), Name: "Stub", Role: "agent"},
	}, nil
}

type stubAddUsers struct{}

func (stubAddUsers) AddUser(ctx context.Context, req auth.AddUserRequest) (*auth.AddUserResponse, error) {
	return &auth.AddUserResponse{User: &users.UserDTO{Username: req.Username}}, nil
}

type stubUsers struct{}

func (stubUsers) List(ctx context.Context) ([]users.UserDTO, error) { return nil, nil }
func (stubUsers) ListByRole(ctx context.Context, role string) ([]users.UserDTO, error) {
	return nil, nil
}
func (stubUsers) Get(ctx context.Context, id uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{ID: id}, nil
}
func (stubUsers) ListByTL(ctx context.Context, tlID uuid.UUID) ([]users.UserDTO, error) {
	return nil, nil
}

type stubLeads struct{}

func (stubLeads) ListForActor(ctx context.Context, actor leads.Actor, status string) ([]leads.LeadDTO, error) {
	return []leads.LeadDTO{}, nil
}
func (stubLeads) ListByLocation(ctx context.Context, location string) ([]leads.LeadDTO, error) {
	return nil, nil
}
func (stubLeads) GetByID(ctx context.Context, id uuid.UUID) (*leads.LeadDTO, error) {
	return &leads.LeadDTO{ID: id}, nil
}
func (stubLeads) ListByAssignee(ctx context.Context, userID uuid.UUID) ([]leads.LeadDTO, error) {
	return nil, nil
}
func (stubLeads) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*leads.LeadDTO, error) {
	return &leads.LeadDTO{ID: id}, nil
}
func (stubLeads) UpdateRemark(ctx context.Context, id uuid.UUID, remark string) error { return nil }
func (stubLeads) Update(ctx context.Context, id uuid.UUID, in leads.LeadInput) (*leads.LeadDTO, error) {
	return &leads.LeadDTO{ID: id}, nil
}
func (stubLeads) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (stubLeads) BulkCreate(ctx context.Context, actor leads.Actor, inputs []leads.LeadInput) ([]leads.LeadDTO, error) {
	return []leads.LeadDTO{}, nil
}
func (stubLeads) Assign(ctx context.Context, req leads.AssignRequest) (int64, error) { return 0, nil }
func (stubLeads) ExecutiveCounts(ctx context.Context, tlID uuid.UUID) ([]leads.ExecutiveCount, error) {
	return nil, nil
}
func (stubLeads) AgentSummaries(ctx context.Context, tlID uuid.UUID) ([]leads.AgentSummary, error) {
	return nil, nil
}
func (stubLeads) Dashboard(ctx context.Context, actor leads.Actor) (*leads.DashboardCounts, error) {
	return &leads.DashboardCounts{}, nil
}

func testRouter(t *testing.T) (http.Handler, config.JWTConfig) {
	t.Helper()
	return testRouterWithLeads(t, stubLeads{})
}

func testRouterWithLeads(t *testing.T, leadsSvc controllers.LeadsService) (http.Handler, config.JWTConfig) {
	t.Helper()
	cfg := &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 60},
	}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	handler := NewRouter(Dependencies{
		Config:      cfg,
		Logger:      logg,
		Sessions:    stubSessions{},
		AuthService: stubAuth{},
		AddUsers:    stubAddUsers{},
		Users:       stubUsers{},
		Leads:       leadsSvc,
	})
	return handler, cfg.JWT
}

func mintToken(t *testing.T, cfg config.JWTConfig, role enums.Role) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Role:   role,
		JTI:    session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func strBody(s string) io.Reader {
	return strings.NewReader(s)
}

func loginBody() io.Reader {
	return strBody(`{"username":"jdoe","password":"secret"}`)
}

func TestRouterHealthEndpoints(t *testing.T) {
	handler, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestRouterLoginIsPublic(t *testing.T) {
	handler, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", loginBody())
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRouterProtectedRouteRejectsAnonymous(t *testing.T) {
	handler, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/getleads", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestRouterProtectedRouteAllowsToken(t *testing.T) {
	handler, jwtCfg := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/getleads", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, jwtCfg, enums.RoleSuperadmin))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRouterAddUserRequiresPrivilegedRole(t *testing.T) {
	handler, jwtCfg := testRouter(t)

	body := `{"name":"A","username":"a1","email":"a1@club.example","password":"longenough","role":"agent"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/addUser", strBody(body))
	req.Header.Set("Authorization", "Bearer "+mintToken(t, jwtCfg, enums.RoleAgent))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/addUser", strBody(body))
	req.Header.Set("Authorization", "Bearer "+mintToken(t, jwtCfg, enums.RoleTL))
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestRouterUploadLeadRoleGate(t *testing.T) {
	handler, jwtCfg := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploadLead", strBody(`[{"name":"A","phone1":"1"}]`))
	req.Header.Set("Authorization", "Bearer "+mintToken(t, jwtCfg, enums.RoleSales))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

type assignedViewLeads struct{ stubLeads }

func (assignedViewLeads) ListByAssignee(ctx context.Context, userID uuid.UUID) ([]leads.LeadDTO, error) {
	return []leads.LeadDTO{{ID: uuid.New(), Name: "assigned to " + userID.String()}}, nil
}

// The getleadsbyId path predates the detail getter: its id names a user and
// the response is that user's assigned leads.
func TestRouterGetLeadsByIDReturnsAssignedLeads(t *testing.T) {
	handler, jwtCfg := testRouterWithLeads(t, assignedViewLeads{})
	userID := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/getleadsbyId/"+userID, nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, jwtCfg, enums.RoleTL))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "assigned to "+userID) {
		t.Fatalf("expected assigned leads for user %s, got %s", userID, resp.Body.String())
	}
}

func TestRouterLeadPathParams(t *testing.T) {
	handler, jwtCfg := testRouter(t)
	token := mintToken(t, jwtCfg, enums.RoleSuperadmin)
	leadID := uuid.NewString()

	paths := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/v1/getleadsbyId/" + leadID, ""},
		{http.MethodGet, "/api/v1/lead/" + leadID, ""},
		{http.MethodPut, "/api/v1/" + leadID + "/status", `{"status":"confirmed"}`},
		{http.MethodPut, "/api/v1/" + leadID + "/remark", `{"remark":"call back"}`},
		{http.MethodDelete, "/api/v1/" + leadID, ""},
	}
	for _, tc := range paths {
		var req *http.Request
		if tc.body != "" {
			req = httptest.NewRequest(tc.method, tc.path, strBody(tc.body))
		} else {
			req = httptest.NewRequest(tc.method, tc.path, nil)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s %s: expected 200 got %d: %s", tc.method, tc.path, resp.Code, resp.Body.String())
		}
	}
}
