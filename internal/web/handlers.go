package web

// handlers.go holds the shared plumbing for page handlers: layout
// rendering, the flash mechanism, and the generic table-screen flow
// used by webhooks, rules, deliveries, invoices, and the audit trail.

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"github.com/dealbell/console/internal/table"
	"github.com/dealbell/console/internal/web/templates"
)

// renderPage writes a full layout-wrapped page.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, p templates.LayoutParams, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Layout(p, body).Render(r.Context(), w); err != nil {
		slog.Error("render page", "path", r.URL.Path, "error", err)
	}
}

// renderFragment writes a bare component for HTMX swaps.
func (s *Server) renderFragment(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		slog.Error("render fragment", "path", r.URL.Path, "error", err)
	}
}

// redirectFlash redirects to path with a one-shot notice in the query
// string. The target page renders it as a success banner.
func redirectFlash(w http.ResponseWriter, r *http.Request, path, message string) {
	u := path
	if message != "" {
		u += "?flash=" + url.QueryEscape(message)
	}
	http.Redirect(w, r, u, http.StatusSeeOther)
}

// flashFromRequest returns the flash banner for the request, or nil.
func flashFromRequest(r *http.Request) templ.Component {
	msg := r.URL.Query().Get("flash")
	if msg == "" {
		return nil
	}
	return templates.FlashBanner(msg)
}

// tableScreen describes one table-backed page so the page, partial,
// and export handlers share a single flow.
type tableScreen struct {
	key        string // saved-view key and nav key
	title      string
	subtitle   string
	basePath   string
	config     func() table.Config
	fetch      func(ctx context.Context) ([]table.Row, error)
	rowActions func(row table.Row) templ.Component
	headerEnd  templ.Component // rendered after the page header (e.g. a New button)

	// lazy renders the initial page with a loading skeleton that pulls
	// the table fragment on load, keeping heavy fetches off the page
	// request.
	lazy bool
}

func (sc tableScreen) options() templates.TableOptions {
	return templates.TableOptions{
		BasePath:   sc.basePath + "/table",
		ExportPath: sc.basePath + "/export",
		TargetID:   sc.key + "-table",
		RowActions: sc.rowActions,
	}
}

// model fetches the dataset and builds the request's table state.
func (sc tableScreen) model(r *http.Request) (*table.Model, error) {
	rows, err := sc.fetch(r.Context())
	if err != nil {
		return nil, err
	}
	m := table.New(sc.config())
	m.SetData(rows)
	applyTableState(m, r)
	return m, nil
}

// servePage renders the full screen: header, flash, saved views bar,
// and the table (populated, or a lazy skeleton that fetches on load).
func (s *Server) servePage(w http.ResponseWriter, r *http.Request, sc tableScreen) {
	params := templates.LayoutParams{Title: sc.title, ActivePage: sc.key}

	q := r.URL.Query()
	q.Del("flash")

	var tableView templ.Component
	if sc.lazy {
		colCount := len(sc.config().Columns)
		if sc.rowActions != nil {
			colCount++
		}
		src := sc.basePath + "/table"
		if enc := q.Encode(); enc != "" {
			src += "?" + enc
		}
		tableView = templates.DataTableLazy(colCount, src, sc.options().TargetID)
	} else {
		m, err := sc.model(r)
		if err != nil {
			s.renderPageError(w, r, params, err)
			return
		}
		tableView = templates.DataTable(m, sc.options())
	}

	// Saved views are an enhancement; losing them does not block the page.
	views, err := s.store.ListViews(r.Context(), sc.key)
	if err != nil {
		slog.Warn("list saved views failed", "table", sc.key, "error", err)
	}

	body := templates.Group(
		templates.PageHeader(sc.title, sc.subtitle),
		sc.headerEnd,
		flashFromRequest(r),
		templates.SavedViewsBar(views, sc.key, sc.basePath, q.Encode()),
		tableView,
	)
	s.renderPage(w, r, params, body)
}

// servePartial renders just the table fragment for HTMX swaps.
func (s *Server) servePartial(w http.ResponseWriter, r *http.Request, sc tableScreen) {
	m, err := sc.model(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, r.URL.RequestURI())
		return
	}
	s.renderFragment(w, r, templates.DataTable(m, sc.options()))
}

// serveExport streams the filtered set (all pages) as a CSV download.
func (s *Server) serveExport(w http.ResponseWriter, r *http.Request, sc tableScreen) {
	m, err := sc.model(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+table.ExportFilename(sc.config().Title)+`"`)
	if err := m.Export(w); err != nil {
		slog.Error("csv export failed", "table", sc.key, "error", err)
	}
}
