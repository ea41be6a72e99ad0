package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dealbell/console/internal/backend"
	"github.com/dealbell/console/internal/config"
	"github.com/dealbell/console/internal/store"
)

// server_test.go holds the shared harness: a fake delivery backend
// served over httptest and a no-op database, so handler tests exercise
// the full router without external services.

// testBackend fakes the delivery backend. Paths in fail return 500.
type testBackend struct {
	srv  *httptest.Server
	fail map[string]bool

	// lastMethod/lastPath record the most recent mutation call.
	lastMethod string
	lastPath   string
}

func newTestBackend() *testBackend {
	tb := &testBackend{fail: make(map[string]bool)}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if tb.fail[r.URL.Path] {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"backend exploded"}`))
			return
		}
		if r.Method != http.MethodGet {
			tb.lastMethod = r.Method
			tb.lastPath = r.URL.Path
		}
		tb.respond(w, r)
	})

	tb.srv = httptest.NewServer(mux)
	return tb
}

func (tb *testBackend) respond(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/v1/webhooks":
		if r.Method != http.MethodGet {
			json.NewEncoder(w).Encode(backend.Webhook{
				ID: "wh-new", Name: "Pipeline watch", Event: "deal.updated", TargetSpace: "Ops", Status: "active",
			})
			return
		}
		json.NewEncoder(w).Encode([]backend.Webhook{
			{ID: "wh-1", Name: "Deals won", Event: "deal.won", TargetSpace: "Sales", Status: "active", SuccessRate: 0.98, Deliveries: 412},
			{ID: "wh-2", Name: "New leads", Event: "deal.added", TargetSpace: "Sales", Status: "paused", SuccessRate: 0.71, Deliveries: 88},
			{ID: "wh-3", Name: "Lost deals", Event: "deal.lost", TargetSpace: "Management", Status: "failing", SuccessRate: 0.42, Deliveries: 35},
		})
	case "/v1/rules":
		json.NewEncoder(w).Encode([]backend.Rule{
			{ID: "r-1", Name: "Big deal alert", Event: "deal.won", Channel: "Sales", Enabled: true, UpdatedAt: time.Now()},
			{ID: "r-2", Name: "Daily digest", Event: "deal.updated", Channel: "Ops", Enabled: false, UpdatedAt: time.Now()},
		})
	case "/v1/deliveries":
		json.NewEncoder(w).Encode([]backend.Delivery{
			{ID: "d-1", Time: time.Now(), Event: "deal.won", RuleName: "Big deal alert", Channel: "Sales", Status: "delivered", Attempts: 1},
			{ID: "d-2", Time: time.Now(), Event: "deal.added", RuleName: "New leads", Channel: "Sales", Status: "failed", Attempts: 3, Error: "space not found"},
		})
	case "/v1/analytics/summary":
		w.Write([]byte(`{"totalSent": 1200, "failed": 34, "successRate": 0.97, "activeRules": 4}`))
	case "/v1/analytics/timeseries":
		w.Write([]byte(`{"series": [{"date":"2026-08-20","delivered":40,"failed":2},{"date":"2026-08-21","delivered":55,"failed":1}]}`))
	case "/v1/analytics/events":
		w.Write([]byte(`{"events": [{"label":"deal.won","count":300},{"label":"deal.added","count":220}]}`))
	case "/v1/analytics/channels":
		w.Write([]byte(`{"channels": [{"label":"Sales","count":410},{"label":"Ops","count":120}]}`))
	case "/v1/billing":
		json.NewEncoder(w).Encode(backend.BillingInfo{
			Plan:  backend.Plan{Name: "Team", MonthlyQuota: 5000, PricePerMonth: "$49"},
			Usage: backend.Usage{Notifications: 4700, Quota: 5000},
			Invoices: []backend.Invoice{
				{ID: "inv-1", Date: time.Now(), Amount: "$49.00", Status: "paid"},
			},
		})
	case "/v1/settings":
		json.NewEncoder(w).Encode(backend.Settings{
			QuietHours:     backend.QuietHours{Enabled: true, Start: "22:00", End: "07:00", Timezone: "Europe/Stockholm"},
			DefaultChannel: "Sales",
		})
	case "/v1/onboarding":
		json.NewEncoder(w).Encode(backend.OnboardingStatus{
			Completed:   []string{backend.StepConnectPipedrive},
			CurrentStep: backend.StepChooseSpace,
			ConnectURL:  "https://example.test/oauth",
		})
	case "/v1/onboarding/spaces":
		json.NewEncoder(w).Encode([]backend.ChatSpace{
			{ID: "spaces/1", Name: "Sales"},
			{ID: "spaces/2", Name: "Ops"},
		})
	default:
		w.Write([]byte(`{}`))
	}
}

// fakeDB satisfies store.DBTX with empty results, so saved views come
// back empty and audit writes are swallowed.
type fakeDB struct{}

func (fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return emptyRows{}, nil
}

func (fakeDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{}
}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(...any) error                            { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

type errRow struct{}

func (errRow) Scan(...any) error { return pgx.ErrNoRows }

// testEnv bundles a server wired to the fake backend.
type testEnv struct {
	backend *testBackend
	server  *Server
}

func newTestEnv() *testEnv {
	tb := newTestBackend()

	cfg := &config.Config{}
	cfg.Server.RequestTimeout = 30 * time.Second
	cfg.Rate.Enabled = false
	cfg.Security.EnableCSP = true

	api := backend.New(backend.Options{
		BaseURL:           tb.srv.URL,
		Timeout:           5 * time.Second,
		RequestsPerSecond: 1000,
	})
	analytics := backend.NewAnalyticsCache(api, time.Minute)
	st := store.New(fakeDB{})

	return &testEnv{
		backend: tb,
		server:  NewServer(cfg, api, analytics, st),
	}
}

func (e *testEnv) close() {
	e.backend.srv.Close()
}

// get performs a GET against the router and returns the recorder.
func (e *testEnv) get(path string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	e.server.Router().ServeHTTP(rec, req)
	return rec
}

// getJSON performs a GET with an Accept: application/json header.
func (e *testEnv) getJSON(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	e.server.Router().ServeHTTP(rec, req)
	return rec
}

// postForm performs a form POST against the router.
func (e *testEnv) postForm(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e.server.Router().ServeHTTP(rec, req)
	return rec
}
