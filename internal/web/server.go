// Package web provides the HTTP server and handlers for the DealBell
// admin console.
package web

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/dealbell/console/internal/backend"
	"github.com/dealbell/console/internal/config"
	"github.com/dealbell/console/internal/store"
	"github.com/dealbell/console/internal/web/middleware"
)

//go:embed static
var staticFiles embed.FS

// Server is the console's HTTP server. The backend client handles all
// business data; the store holds console-only state (saved views, the
// audit trail).
type Server struct {
	cfg       *config.Config
	api       *backend.Client
	analytics *backend.AnalyticsCache
	store     *store.Store
	router    *chi.Mux
	server    *http.Server
}

// NewServer wires the router, middleware, and routes.
func NewServer(cfg *config.Config, api *backend.Client, analytics *backend.AnalyticsCache, st *store.Store) *Server {
	s := &Server{
		cfg:       cfg,
		api:       api,
		analytics: analytics,
		store:     st,
		router:    chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(chimw.Compress(5))
	s.router.Use(chimw.Timeout(s.cfg.Server.RequestTimeout))

	s.router.Use(securityHeaders(s.cfg.Security.EnableCSP))
	s.router.Use(auditMetadata)

	if s.cfg.Rate.Enabled {
		limiter := newRateLimiter(s.cfg.Rate.RequestsPerMinute)
		s.router.Use(limiter.middleware)
	}
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Pages
	s.router.Get("/", s.handleDashboard)
	s.router.Get("/analytics", s.handleAnalytics)
	s.router.Get("/analytics/channels/export", s.handleChannelsExport)
	s.router.Get("/billing", s.handleBilling)
	s.router.Get("/billing/table", s.handleBillingTable)
	s.router.Get("/audit", s.handleAudit)
	s.router.Get("/audit/table", s.handleAuditTable)
	s.router.Get("/audit/export", s.handleAuditExport)
	s.router.Get("/onboarding", s.handleOnboarding)
	s.router.Get("/onboarding/callback", s.handleOAuthCallback)
	s.router.Post("/onboarding/space", s.handleChooseSpace)
	s.router.Post("/onboarding/test", s.handleTestNotification)

	// Webhooks
	s.router.Route("/webhooks", func(r chi.Router) {
		r.Get("/", s.handleWebhooksPage)
		r.Get("/table", s.handleWebhooksTable)
		r.Get("/export", s.handleWebhooksExport)
		r.Get("/new", s.handleWebhookNew)
		r.Post("/", s.handleWebhookCreate)
		r.Get("/{id}/edit", s.handleWebhookEdit)
		r.Post("/{id}", s.handleWebhookUpdate)
		r.Post("/{id}/delete", s.handleWebhookDelete)
		r.Post("/{id}/ping", s.handleWebhookPing)
	})

	// Rules
	s.router.Route("/rules", func(r chi.Router) {
		r.Get("/", s.handleRulesPage)
		r.Get("/table", s.handleRulesTable)
		r.Get("/export", s.handleRulesExport)
		r.Get("/new", s.handleRuleNew)
		r.Post("/", s.handleRuleCreate)
		r.Get("/{id}/edit", s.handleRuleEdit)
		r.Post("/{id}", s.handleRuleUpdate)
		r.Post("/{id}/delete", s.handleRuleDelete)
		r.Post("/{id}/toggle", s.handleRuleToggle)
	})

	// Delivery log
	s.router.Route("/deliveries", func(r chi.Router) {
		r.Get("/", s.handleDeliveriesPage)
		r.Get("/table", s.handleDeliveriesTable)
		r.Get("/export", s.handleDeliveriesExport)
	})

	// Settings
	s.router.Get("/settings", s.handleSettingsPage)
	s.router.Post("/settings", s.handleSettingsSave)

	// Saved views
	s.router.Post("/views", s.handleViewCreate)
	s.router.Post("/views/{id}/delete", s.handleViewDelete)
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses. The CSP
// allows unpkg.com because htmx is loaded from there.
func securityHeaders(enableCSP bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			if enableCSP {
				w.Header().Set("Content-Security-Policy",
					"default-src 'self'; script-src 'self' 'unsafe-inline' https://unpkg.com; style-src 'self' 'unsafe-inline'; img-src 'self' data:; font-src 'self'")
			}
			next.ServeHTTP(w, r)
		})
	}
}

// auditMetadata stashes request identity into the context so audit
// entries written deeper in the stack can record who did what.
func auditMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = store.WithIPAddress(ctx, clientIP(r))
		ctx = store.WithUserAgent(ctx, r.UserAgent())
		if actor := r.Header.Get("X-Forwarded-User"); actor != "" {
			ctx = store.WithActor(ctx, actor)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIP(r *http.Request) string {
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}

// rateLimiter limits requests per IP with a token bucket per visitor.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newRateLimiter creates a per-IP limiter allowing rpm requests per
// minute with a burst of the same size.
func newRateLimiter(rpm int) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(rpm) / 60.0),
		burst:    rpm,
	}
	go rl.cleanup()
	return rl
}

// cleanup removes stale visitor entries every minute.
func (rl *rateLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	rl.mu.Unlock()

	return v.limiter.Allow()
}

// middleware returns an HTTP middleware that rate limits by IP.
func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			w.Header().Set("Retry-After", "60")
			slog.Warn("rate limit exceeded", "ip", clientIP(r), "path", r.URL.Path)
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
