package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanjaykhanna/clubcrm-backend/api/controllers"
	"github.com/sanjaykhanna/clubcrm-backend/api/middleware"
	"github.com/sanjaykhanna/clubcrm-backend/internal/auth"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/auth/session"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/config"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/db"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/enums"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/logger"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/metrics"
	"github.com/sanjaykhanna/clubcrm-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Dependencies carries everything the HTTP surface needs.
type Dependencies struct {
	Config        *config.Config
	Logger        *logger.Logger
	DB            db.Pinger
	Redis         *redis.Client
	Sessions      sessionManager
	AuthService   auth.Service
	AddUsers      auth.AddUserService
	Users         controllers.UserDirectory
	Leads         controllers.LeadsService
	Memberships   controllers.MembershipService
	Benefits      controllers.BenefitService
	HTTPMetrics   *metrics.HTTPMetrics
	MetricsSource prometheus.Gatherer
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.LoginRateLimitPolicy(cfg.AuthRateLimit)
	if deps.Redis == nil {
		loginPolicy = middleware.AuthRateLimitPolicy{}
	}

	var cachePinger db.Pinger
	if deps.Redis != nil {
		cachePinger = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, cachePinger))
	})

	if deps.MetricsSource != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.MetricsSource, promhttp.HandlerOpts{}))
	}

	r.Get("/api/public/ping", controllers.PublicPing())

	r.Route("/api/v1", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(deps.Sessions, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.Sessions, cfg.JWT, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))
			r.Get("/ping", controllers.PrivatePing())

			r.With(middleware.RequireRole(logg, enums.RoleSuperadmin, enums.RoleTL)).
				Post("/addUser", controllers.AddUser(deps.AddUsers, logg))

			r.Post("/getUsers", controllers.ListUsers(deps.Users, logg))
			r.Get("/getUsersByRole/{role}", controllers.ListUsersByRole(deps.Users, logg))
			r.Get("/{id}/getUser", controllers.GetUser(deps.Users, logg))
			r.Get("/{id}/getUsersByTl", controllers.ListUsersByTL(deps.Users, logg))

			r.Get("/getleads", controllers.ListLeads(deps.Leads, logg))
			r.Get("/getleads/{location}", controllers.ListLeadsByLocation(deps.Leads, logg))
			// Legacy path: the id names a user, the response is their
			// assigned leads.
			r.Get("/getleadsbyId/{id}", controllers.AssignedLeads(deps.Leads, logg))
			r.Get("/lead/{id}", controllers.GetLead(deps.Leads, logg))
			r.Get("/{id}/executiveCount", controllers.ExecutiveCounts(deps.Leads, logg))
			r.Get("/{id}/agentSummary", controllers.AgentSummaries(deps.Leads, logg))
			r.Get("/dashboard_count", controllers.DashboardCounts(deps.Leads, logg))

			r.Put("/{id}/status", controllers.UpdateLeadStatus(deps.Leads, logg))
			r.Put("/{id}/remark", controllers.UpdateLeadRemark(deps.Leads, logg))
			r.Put("/updateLead/{id}", controllers.UpdateLead(deps.Leads, logg))
			r.Delete("/{id}", controllers.DeleteLead(deps.Leads, logg))

			r.With(middleware.RequireRole(logg, enums.RoleSuperadmin, enums.RoleTL)).
				Post("/uploadLead", controllers.UploadLeads(deps.Leads, logg))
			r.Post("/assignto", controllers.AssignLeads(deps.Leads, logg))

			r.Route("/membership", func(r chi.Router) {
				r.Post("/", controllers.CreateMembership(deps.Memberships, logg))
				r.Get("/", controllers.ListMemberships(deps.Memberships, logg))
				r.Get("/{id}", controllers.GetMembership(deps.Memberships, logg))
			})

			r.Route("/benefit", func(r chi.Router) {
				r.Post("/", controllers.CreateBenefit(deps.Benefits, logg))
				r.Get("/", controllers.ListBenefits(deps.Benefits, logg))
				r.Put("/{id}/status", controllers.UpdateBenefitStatus(deps.Benefits, logg))
			})

			r.Route("/clubBenefit", func(r chi.Router) {
				r.Post("/", controllers.CreateClubBenefit(deps.Benefits, logg))
				r.Get("/", controllers.ListClubBenefits(deps.Benefits, logg))
				r.Put("/{id}/status", controllers.UpdateClubBenefitStatus(deps.Benefits, logg))
			})
		})
	})

	return r
}
