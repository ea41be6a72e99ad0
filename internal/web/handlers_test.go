package web

import (
	"net/http"
	"strings"
	"testing"
)

// ============================================================
// Table screens
// ============================================================

func TestWebhooksPageRendersRows(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.get("/webhooks", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{"Deals won", "New leads", "Lost deals", `data-row-id="wh-1"`} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestWebhooksTableFilterByStatus(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.get("/webhooks/table?filter%5Bstatus%5D=active", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Deals won") {
		t.Error("active webhook missing from filtered table")
	}
	if strings.Contains(body, `data-row-id="wh-2"`) {
		t.Error("paused webhook should be filtered out")
	}
}

func TestWebhooksTableSearch(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.get("/webhooks/table?search=lost", true)
	body := rec.Body.String()

	if !strings.Contains(body, "Lost deals") {
		t.Error("matching row missing")
	}
	if strings.Contains(body, `data-row-id="wh-1"`) {
		t.Error("non-matching row should be excluded")
	}
}

func TestWebhooksTableSuccessRateBucket(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.get("/webhooks/table?filter%5BsuccessRate%5D=95-100%25", true)
	body := rec.Body.String()

	if !strings.Contains(body, `data-row-id="wh-1"`) {
		t.Error("98% webhook should match the 95-100% bucket")
	}
	if strings.Contains(body, `data-row-id="wh-3"`) {
		t.Error("42% webhook should not match the 95-100% bucket")
	}
}

func TestWebhooksTablePageClamped(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	// Three rows fit on one page; an absurd page number clamps to it.
	rec := env.get("/webhooks/table?page=999", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `data-row-id="wh-1"`) {
		t.Error("clamped page should show rows")
	}
}

func TestWebhooksExportCSV(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.get("/webhooks/export?filter%5Bstatus%5D=active", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "webhooks.csv") {
		t.Errorf("Content-Disposition = %q, want webhooks.csv", cd)
	}

	body := rec.Body.String()
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) != 2 {
		t.Fatalf("exported %d lines, want header plus one filtered row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Name,") {
		t.Errorf("header = %q", lines[0])
	}
	// Export carries raw values, not display formatting.
	if !strings.Contains(lines[1], "0.98") {
		t.Errorf("row = %q, want raw success rate", lines[1])
	}
}

func TestRulesPageRendersRows(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.get("/rules", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Big deal alert") {
		t.Error("rule missing from page")
	}
	if !strings.Contains(body, "enabled") || !strings.Contains(body, "disabled") {
		t.Error("rule states missing")
	}
}

func TestDeliveriesPageRendersSkeleton(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	// The delivery log loads lazily: the page carries a skeleton that
	// fetches the fragment on load.
	rec := env.get("/deliveries", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "skeleton-row") {
		t.Error("lazy page should render the loading skeleton")
	}
	if !strings.Contains(body, `hx-get="/deliveries/table"`) {
		t.Error("skeleton should fetch the table fragment on load")
	}
}

func TestDeliveriesTableRendersLog(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.get("/deliveries/table", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "space not found") {
		t.Error("delivery error detail missing")
	}
}

// ============================================================
// Dashboard and analytics
// ============================================================

func TestDashboardRendersPanels(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.get("/", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{"Notifications sent", "Success rate", "Recent deliveries", "<svg"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestDashboardPanelDegradesIndependently(t *testing.T) {
	env := newTestEnv()
	defer env.close()
	env.backend.fail["/v1/analytics/summary"] = true

	rec := env.get("/", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 despite a failed panel", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "API001") {
		t.Error("failed panel should carry the support code")
	}
	if !strings.Contains(body, "Recent deliveries") {
		t.Error("healthy panels should still render")
	}
}

func TestAnalyticsInvalidPeriodDefaultsTo30(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.get("/analytics?days=17", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `class="period active" href="/analytics?days=30"`) {
		t.Error("invalid period should fall back to the 30-day view")
	}
}

func TestChannelsExportCSV(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.get("/analytics/channels/export?days=7", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "Channel,Deliveries") {
		t.Errorf("header = %q", strings.SplitN(body, "\n", 2)[0])
	}
	if !strings.Contains(body, "Sales,410") {
		t.Error("channel row missing")
	}
}

// ============================================================
// Billing, settings, onboarding
// ============================================================

func TestBillingPageShowsUsage(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.get("/billing", false)
	body := rec.Body.String()

	if !strings.Contains(body, "Team") {
		t.Error("plan name missing")
	}
	if !strings.Contains(body, "4700 of 5000") {
		t.Error("usage note missing")
	}
	if !strings.Contains(body, "usage-hot") {
		t.Error("94% usage should render the hot bar")
	}
}

func TestSettingsSaveRoundTrip(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.postForm("/settings", "quiet_enabled=on&quiet_start=21%3A00&quiet_end=06%3A00&default_channel=Ops")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if env.backend.lastMethod != http.MethodPut || env.backend.lastPath != "/v1/settings" {
		t.Errorf("backend saw %s %s, want PUT /v1/settings", env.backend.lastMethod, env.backend.lastPath)
	}
}

func TestOnboardingShowsCurrentStep(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.get("/onboarding", false)
	body := rec.Body.String()

	if !strings.Contains(body, "Choose a Google Chat space") {
		t.Error("current step missing")
	}
	// The space picker only renders on the current step.
	if !strings.Contains(body, "spaces/1") {
		t.Error("chat space options missing")
	}
}

// ============================================================
// Mutations and error handling
// ============================================================

func TestWebhookCreateRedirects(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.postForm("/webhooks", "name=Pipeline+watch&event=deal.updated&targetSpace=Ops")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/webhooks") {
		t.Errorf("Location = %q", loc)
	}
	if env.backend.lastMethod != http.MethodPost || env.backend.lastPath != "/v1/webhooks" {
		t.Errorf("backend saw %s %s", env.backend.lastMethod, env.backend.lastPath)
	}
}

func TestWebhookCreateMissingNameRejected(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.postForm("/webhooks", "event=deal.won&targetSpace=Ops")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPartialErrorRendersBannerFragment(t *testing.T) {
	env := newTestEnv()
	defer env.close()
	env.backend.fail["/v1/webhooks"] = true

	rec := env.get("/webhooks/table", true)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "banner-error") {
		t.Error("HTMX error should be a banner fragment")
	}
	if !strings.Contains(body, "API001") {
		t.Error("banner should carry the support code")
	}
	if !strings.Contains(body, "Retry") {
		t.Error("banner should offer a manual retry")
	}
}

func TestPageErrorKeepsNavigation(t *testing.T) {
	env := newTestEnv()
	defer env.close()
	env.backend.fail["/v1/webhooks"] = true

	rec := env.get("/webhooks", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 error page", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "sidebar") {
		t.Error("error page should keep the shell")
	}
	if !strings.Contains(body, "API001") {
		t.Error("error page should carry the support code")
	}
}

func TestJSONClientGetsJSONError(t *testing.T) {
	env := newTestEnv()
	defer env.close()
	env.backend.fail["/v1/webhooks"] = true

	rec := env.getJSON("/webhooks/table")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("Content-Type = %q, want JSON", ct)
	}
	if !strings.Contains(rec.Body.String(), `"code":"API001"`) {
		t.Error("JSON error should carry the support code")
	}
}

func TestViewCreateUnknownTableRejected(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.postForm("/views", "table=nonsense&name=My+view&query=search%3Dfoo")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// ============================================================
// Middleware
// ============================================================

func TestSecurityHeadersPresent(t *testing.T) {
	env := newTestEnv()
	defer env.close()

	rec := env.get("/webhooks", false)
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q", got)
	}
	if got := rec.Header().Get("Content-Security-Policy"); got == "" {
		t.Error("CSP header missing")
	}
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := newRateLimiter(2)

	if !rl.allow("10.0.0.1") || !rl.allow("10.0.0.1") {
		t.Fatal("first requests within burst should pass")
	}
	if rl.allow("10.0.0.1") {
		t.Error("request beyond burst should be blocked")
	}
	if !rl.allow("10.0.0.2") {
		t.Error("other IPs should have their own bucket")
	}
}
