package http

import (
	"net/http"

	"github.com/codnextech/anchored-api/internal/application/auth"
	"github.com/codnextech/anchored-api/internal/application/waitlist"
	"github.com/codnextech/anchored-api/internal/config"
	"github.com/codnextech/anchored-api/internal/credentials"
	"github.com/codnextech/anchored-api/internal/transport/http/handler"
	appmiddleware "github.com/codnextech/anchored-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		// Credentials because the admin session travels in a cookie.
		AllowCredentials: true,
		MaxAge:           300,
	}))

	creds := credentials.NewStore(deps.AllowlistRepo, cfg.AdminPasswordHashes)
	waitlistSvc := waitlist.NewService(deps.WaitlistRepo)
	authSvc := auth.NewService(creds, deps.SessionTokens)

	gate := appmiddleware.Auth(deps.SessionTokens, creds)
	// 5 requests/second, burst of 10 — applied to the sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	healthH := handler.NewHealthHandler()
	waitlistH := handler.NewWaitlistHandler(waitlistSvc)
	authH := handler.NewAuthHandler(authSvc, handler.CookieSettings{
		TTL:    cfg.SessionTTL,
		Secure: cfg.IsProduction(),
	})

	// ── Public routes (no auth) ──────────────────────────────────────────
	r.Get("/health-check/{action}", healthH.Ping)
	r.With(sensitiveRL.Limit).Post("/waitlist", waitlistH.Submit)
	r.With(sensitiveRL.Limit).Post("/auth/login", authH.Login)

	// ── Cookie-gated routes ──────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(gate)

		r.Get("/auth/check", authH.Check)
		r.Get("/admin/waitlist", waitlistH.List)
	})

	return r
}
