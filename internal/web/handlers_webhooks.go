package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dealbell/console/internal/backend"
	"github.com/dealbell/console/internal/store"
	"github.com/dealbell/console/internal/table"
	"github.com/dealbell/console/internal/web/templates"
)

func (s *Server) webhookScreen() tableScreen {
	return tableScreen{
		key:      "webhooks",
		title:    "Webhooks",
		subtitle: "Pipedrive endpoints forwarding events into Google Chat",
		basePath: "/webhooks",
		config:   webhookTableConfig,
		fetch: func(ctx context.Context) ([]table.Row, error) {
			webhooks, err := s.api.ListWebhooks(ctx)
			if err != nil {
				return nil, err
			}
			return webhookRows(webhooks), nil
		},
		rowActions: webhookActions,
		headerEnd:  actionLink("/webhooks/new", "New webhook"),
	}
}

// webhookActions renders the per-row edit, ping, and delete controls.
func webhookActions(row table.Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := templ.EscapeString(fmt.Sprint(row["id"]))
		fmt.Fprintf(w, `<a class="row-action" href="/webhooks/%s/edit">Edit</a>`, id)
		fmt.Fprintf(w, `<form method="post" action="/webhooks/%s/ping" class="inline-form"><button class="row-action">Ping</button></form>`, id)
		fmt.Fprintf(w, `<form method="post" action="/webhooks/%s/delete" class="inline-form" onsubmit="return confirm('Delete this webhook?')"><button class="row-action danger">Delete</button></form>`, id)
		return nil
	})
}

func (s *Server) handleWebhooksPage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, s.webhookScreen())
}

func (s *Server) handleWebhooksTable(w http.ResponseWriter, r *http.Request) {
	s.servePartial(w, r, s.webhookScreen())
}

func (s *Server) handleWebhooksExport(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r, s.webhookScreen())
}

func (s *Server) handleWebhookNew(w http.ResponseWriter, r *http.Request) {
	params := templates.LayoutParams{Title: "New Webhook", ActivePage: "webhooks"}
	body := templates.Group(
		templates.PageHeader("New Webhook", ""),
		templates.WebhookForm(nil, backend.PipedriveEvents),
	)
	s.renderPage(w, r, params, body)
}

func (s *Server) handleWebhookEdit(w http.ResponseWriter, r *http.Request) {
	params := templates.LayoutParams{Title: "Edit Webhook", ActivePage: "webhooks"}

	wh, err := s.api.GetWebhook(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.renderPageError(w, r, params, err)
		return
	}

	body := templates.Group(
		templates.PageHeader("Edit Webhook", wh.Name),
		templates.WebhookForm(wh, backend.PipedriveEvents),
	)
	s.renderPage(w, r, params, body)
}

func (s *Server) handleWebhookCreate(w http.ResponseWriter, r *http.Request) {
	in, err := webhookInputFromForm(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest, "")
		return
	}

	wh, err := s.api.CreateWebhook(r.Context(), in)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	s.store.RecordAudit(r.Context(), store.ActionWebhookCreate, "webhook", wh.ID, wh.Name)
	s.analytics.Invalidate()
	redirectFlash(w, r, "/webhooks", "Webhook created")
}

func (s *Server) handleWebhookUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	in, err := webhookInputFromForm(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest, "")
		return
	}

	wh, err := s.api.UpdateWebhook(r.Context(), id, in)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	s.store.RecordAudit(r.Context(), store.ActionWebhookUpdate, "webhook", wh.ID, wh.Name)
	s.analytics.Invalidate()
	redirectFlash(w, r, "/webhooks", "Webhook updated")
}

func (s *Server) handleWebhookDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.api.DeleteWebhook(r.Context(), id); err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	s.store.RecordAudit(r.Context(), store.ActionWebhookDelete, "webhook", id, "")
	s.analytics.Invalidate()
	redirectFlash(w, r, "/webhooks", "Webhook deleted")
}

func (s *Server) handleWebhookPing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.api.PingWebhook(r.Context(), id); err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	s.store.RecordAudit(r.Context(), store.ActionWebhookPing, "webhook", id, "")
	redirectFlash(w, r, "/webhooks", "Test notification sent")
}

func webhookInputFromForm(r *http.Request) (backend.WebhookInput, error) {
	if err := r.ParseForm(); err != nil {
		return backend.WebhookInput{}, fmt.Errorf("parse form: %w", err)
	}
	in := backend.WebhookInput{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Event:       r.PostFormValue("event"),
		TargetSpace: strings.TrimSpace(r.PostFormValue("targetSpace")),
	}
	if in.Name == "" {
		return in, fmt.Errorf("webhook name is required")
	}
	if in.TargetSpace == "" {
		return in, fmt.Errorf("target space is required")
	}
	return in, nil
}

// actionLink renders a standalone button-styled link under the header.
func actionLink(href, label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="page-actions"><a class="btn btn-primary" href="%s">%s</a></div>`,
			templ.EscapeString(href), templ.EscapeString(label))
		return nil
	})
}
