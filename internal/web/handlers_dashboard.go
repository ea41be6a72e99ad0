package web

import (
	"net/http"

	"github.com/a-h/templ"
	"golang.org/x/sync/errgroup"

	"github.com/dealbell/console/internal/backend"
	"github.com/dealbell/console/internal/chart"
	"github.com/dealbell/console/internal/web/templates"
)

// handleDashboard fans the panel fetches out in parallel. Panels
// degrade independently: a failed fetch renders an error banner in
// that panel's slot while the rest of the page stays usable.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	const days = 30

	var (
		summary    *backend.Summary
		series     []backend.SeriesPoint
		channels   []backend.Breakdown
		recent     []backend.Delivery
		summaryErr error
		seriesErr  error
		chanErr    error
		recentErr  error
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		summary, summaryErr = s.analytics.Summary(ctx, days)
		return nil
	})
	g.Go(func() error {
		series, seriesErr = s.analytics.Timeseries(ctx, days)
		return nil
	})
	g.Go(func() error {
		channels, chanErr = s.analytics.TopChannels(ctx, days)
		return nil
	})
	g.Go(func() error {
		recent, recentErr = s.api.ListDeliveries(ctx, "", 8)
		return nil
	})
	g.Wait()

	var panels []templ.Component
	panels = append(panels, templates.PageHeader("Dashboard", "Last 30 days at a glance"))
	panels = append(panels, flashFromRequest(r))

	if summaryErr != nil {
		panels = append(panels, s.panelError(summaryErr))
	} else {
		panels = append(panels,
			templates.DashboardStats(summary),
			templates.ChartCard("Success rate", chart.Donut("Success rate", summary.SuccessRate)),
		)
	}

	if seriesErr != nil {
		panels = append(panels, s.panelError(seriesErr))
	} else {
		panels = append(panels, templates.ChartCard("Deliveries per day", deliveredLine(series)))
	}

	if chanErr != nil {
		panels = append(panels, s.panelError(chanErr))
	} else {
		panels = append(panels, templates.ChartCard("By channel", breakdownBar("By channel", channels)))
	}

	if recentErr != nil {
		panels = append(panels, s.panelError(recentErr))
	} else {
		panels = append(panels, templates.RecentDeliveries(recent))
	}

	params := templates.LayoutParams{Title: "Dashboard", ActivePage: "dashboard"}
	s.renderPage(w, r, params, templates.Group(panels...))
}

// panelError renders one degraded panel with a full-page retry.
func (s *Server) panelError(err error) templ.Component {
	msg := backend.MapError(err)
	return templates.ErrorBanner(msg.Message, msg.Action, msg.Code, "")
}

// deliveredLine builds the delivered-per-day line chart.
func deliveredLine(series []backend.SeriesPoint) string {
	points := make([]chart.Point, len(series))
	for i, p := range series {
		points[i] = chart.Point{Label: shortDate(p.Date), Value: float64(p.Delivered)}
	}
	return chart.Line("Deliveries per day", points)
}

// shortDate trims an ISO date to month-day for axis labels.
func shortDate(date string) string {
	if len(date) == 10 {
		return date[5:]
	}
	return date
}
