package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/dealbell/console/internal/backend"
	"github.com/dealbell/console/internal/store"
	"github.com/dealbell/console/internal/table"
	"github.com/dealbell/console/internal/web/templates"
)

// maxConditions caps the rule editor's condition rows.
const maxConditions = 10

func (s *Server) ruleScreen() tableScreen {
	return tableScreen{
		key:      "rules",
		title:    "Rules",
		subtitle: "Which events become notifications, and how they read",
		basePath: "/rules",
		config:   ruleTableConfig,
		fetch: func(ctx context.Context) ([]table.Row, error) {
			rules, err := s.api.ListRules(ctx)
			if err != nil {
				return nil, err
			}
			return ruleRows(rules), nil
		},
		rowActions: ruleActions,
		headerEnd:  actionLink("/rules/new", "New rule"),
	}
}

// ruleActions renders per-row edit, enable/disable, and delete.
func ruleActions(row table.Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := templ.EscapeString(fmt.Sprint(row["id"]))
		toggleLabel := "Enable"
		if row["state"] == "enabled" {
			toggleLabel = "Disable"
		}
		fmt.Fprintf(w, `<a class="row-action" href="/rules/%s/edit">Edit</a>`, id)
		fmt.Fprintf(w, `<form method="post" action="/rules/%s/toggle" class="inline-form"><button class="row-action">%s</button></form>`, id, toggleLabel)
		fmt.Fprintf(w, `<form method="post" action="/rules/%s/delete" class="inline-form" onsubmit="return confirm('Delete this rule?')"><button class="row-action danger">Delete</button></form>`, id)
		return nil
	})
}

func (s *Server) handleRulesPage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, s.ruleScreen())
}

func (s *Server) handleRulesTable(w http.ResponseWriter, r *http.Request) {
	s.servePartial(w, r, s.ruleScreen())
}

func (s *Server) handleRulesExport(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r, s.ruleScreen())
}

func (s *Server) handleRuleNew(w http.ResponseWriter, r *http.Request) {
	params := templates.LayoutParams{Title: "New Rule", ActivePage: "rules"}
	body := templates.Group(
		templates.PageHeader("New Rule", ""),
		templates.RuleForm(nil, backend.RuleFields, backend.RuleOperators, backend.PipedriveEvents),
	)
	s.renderPage(w, r, params, body)
}

func (s *Server) handleRuleEdit(w http.ResponseWriter, r *http.Request) {
	params := templates.LayoutParams{Title: "Edit Rule", ActivePage: "rules"}

	rule, err := s.api.GetRule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.renderPageError(w, r, params, err)
		return
	}

	body := templates.Group(
		templates.PageHeader("Edit Rule", rule.Name),
		templates.RuleForm(rule, backend.RuleFields, backend.RuleOperators, backend.PipedriveEvents),
	)
	s.renderPage(w, r, params, body)
}

func (s *Server) handleRuleCreate(w http.ResponseWriter, r *http.Request) {
	in, err := ruleInputFromForm(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest, "")
		return
	}

	rule, err := s.api.CreateRule(r.Context(), in)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	s.store.RecordAudit(r.Context(), store.ActionRuleCreate, "rule", rule.ID, rule.Name)
	s.analytics.Invalidate()
	redirectFlash(w, r, "/rules", "Rule created")
}

func (s *Server) handleRuleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	in, err := ruleInputFromForm(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest, "")
		return
	}

	rule, err := s.api.UpdateRule(r.Context(), id, in)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	s.store.RecordAudit(r.Context(), store.ActionRuleUpdate, "rule", rule.ID, rule.Name)
	s.analytics.Invalidate()
	redirectFlash(w, r, "/rules", "Rule updated")
}

func (s *Server) handleRuleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.api.DeleteRule(r.Context(), id); err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	s.store.RecordAudit(r.Context(), store.ActionRuleDelete, "rule", id, "")
	s.analytics.Invalidate()
	redirectFlash(w, r, "/rules", "Rule deleted")
}

// handleRuleToggle flips a rule between enabled and disabled without
// opening the editor.
func (s *Server) handleRuleToggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rule, err := s.api.GetRule(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	if err := s.api.SetRuleEnabled(r.Context(), id, !rule.Enabled); err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	detail := "disabled"
	if !rule.Enabled {
		detail = "enabled"
	}
	s.store.RecordAudit(r.Context(), store.ActionRuleToggle, "rule", id, detail)
	redirectFlash(w, r, "/rules", "Rule "+detail)
}

func ruleInputFromForm(r *http.Request) (backend.RuleInput, error) {
	if err := r.ParseForm(); err != nil {
		return backend.RuleInput{}, fmt.Errorf("parse form: %w", err)
	}

	in := backend.RuleInput{
		Name:     strings.TrimSpace(r.PostFormValue("name")),
		Event:    r.PostFormValue("event"),
		Template: r.PostFormValue("template"),
		Channel:  strings.TrimSpace(r.PostFormValue("channel")),
		Enabled:  r.PostFormValue("enabled") != "",
	}
	if in.Name == "" {
		return in, fmt.Errorf("rule name is required")
	}

	// Condition rows arrive as indexed triples; blank field selects are
	// skipped so empty editor rows do not become conditions.
	for i := 0; i < maxConditions; i++ {
		field := r.PostFormValue("cond_field_" + strconv.Itoa(i))
		if field == "" {
			continue
		}
		in.Conditions = append(in.Conditions, backend.RuleCondition{
			Field:    field,
			Operator: r.PostFormValue("cond_op_" + strconv.Itoa(i)),
			Value:    r.PostFormValue("cond_value_" + strconv.Itoa(i)),
		})
	}

	return in, nil
}
