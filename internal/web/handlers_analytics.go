package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/sync/errgroup"

	"github.com/dealbell/console/internal/backend"
	"github.com/dealbell/console/internal/chart"
	"github.com/dealbell/console/internal/table"
	"github.com/dealbell/console/internal/web/templates"
)

// handleAnalytics renders the analytics page for the selected period
// (7, 30, or 90 days). Sections degrade independently like the
// dashboard panels.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	days := parseDays(r)

	var (
		summary    *backend.Summary
		series     []backend.SeriesPoint
		events     []backend.Breakdown
		channels   []backend.Breakdown
		summaryErr error
		seriesErr  error
		eventsErr  error
		chanErr    error
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
		events, eventsErr = s.analytics.EventBreakdown(ctx, days)
		return nil
	})
	g.Go(func() error {
		channels, chanErr = s.analytics.TopChannels(ctx, days)
		return nil
	})
	g.Wait()

	var sections []templ.Component
	sections = append(sections,
		templates.PageHeader("Analytics", "Delivery volume and health"),
		templates.PeriodPicker(days, "/analytics"),
	)

	if summaryErr != nil {
		sections = append(sections, s.panelError(summaryErr))
	} else {
		sections = append(sections,
			templates.ChartCard("Success rate", chart.Donut("Success rate", summary.SuccessRate)),
		)
	}

	if seriesErr != nil {
		sections = append(sections, s.panelError(seriesErr))
	} else {
		sections = append(sections,
			templates.ChartCard("Delivered per day", deliveredLine(series)),
			templates.ChartCard("Failed per day", failedLine(series)),
		)
	}

	if eventsErr != nil {
		sections = append(sections, s.panelError(eventsErr))
	} else {
		sections = append(sections, templates.ChartCard("By event type", breakdownBar("By event type", events)))
	}

	if chanErr != nil {
		sections = append(sections, s.panelError(chanErr))
	} else {
		sections = append(sections,
			templates.BreakdownTable("Top channels", channels),
			actionLink("/analytics/channels/export?days="+strconv.Itoa(days), "Export channels CSV"),
		)
	}

	params := templates.LayoutParams{Title: "Analytics", ActivePage: "analytics"}
	s.renderPage(w, r, params, templates.Group(sections...))
}

// handleChannelsExport streams the period's per-channel counts as CSV.
func (s *Server) handleChannelsExport(w http.ResponseWriter, r *http.Request) {
	days := parseDays(r)

	channels, err := s.analytics.TopChannels(r.Context(), days)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	cols := []table.Column{
		{Key: "channel", Title: "Channel"},
		{Key: "count", Title: "Deliveries"},
	}
	rows := make([]table.Row, len(channels))
	for i, c := range channels {
		rows[i] = table.Row{"channel": c.Label, "count": c.Count}
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+table.ExportFilename("Top Channels")+`"`)
	if err := table.ExportCSV(w, cols, rows); err != nil {
		slog.Error("csv export failed", "table", "channels", "error", err)
	}
}

func failedLine(series []backend.SeriesPoint) string {
	points := make([]chart.Point, len(series))
	for i, p := range series {
		points[i] = chart.Point{Label: shortDate(p.Date), Value: float64(p.Failed)}
	}
	return chart.Line("Failed per day", points)
}

func breakdownBar(title string, items []backend.Breakdown) string {
	points := make([]chart.Point, len(items))
	for i, item := range items {
		points[i] = chart.Point{Label: item.Label, Value: float64(item.Count)}
	}
	return chart.Bar(title, points)
}
