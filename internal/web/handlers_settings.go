package web

import (
	"net/http"
	"strings"

	"github.com/dealbell/console/internal/backend"
	"github.com/dealbell/console/internal/store"
	"github.com/dealbell/console/internal/web/templates"
)

func (s *Server) handleSettingsPage(w http.ResponseWriter, r *http.Request) {
	params := templates.LayoutParams{Title: "Settings", ActivePage: "settings"}

	settings, err := s.api.GetSettings(r.Context())
	if err != nil {
		s.renderPageError(w, r, params, err)
		return
	}

	body := templates.Group(
		templates.PageHeader("Settings", "Quiet hours and notification defaults"),
		flashFromRequest(r),
		templates.SettingsForm(settings),
	)
	s.renderPage(w, r, params, body)
}

func (s *Server) handleSettingsSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest, "")
		return
	}

	settings := backend.Settings{
		QuietHours: backend.QuietHours{
			Enabled:     r.PostFormValue("quiet_enabled") != "",
			Start:       r.PostFormValue("quiet_start"),
			End:         r.PostFormValue("quiet_end"),
			Timezone:    strings.TrimSpace(r.PostFormValue("quiet_tz")),
			MuteWeekend: r.PostFormValue("quiet_weekend") != "",
		},
		DefaultChannel: strings.TrimSpace(r.PostFormValue("default_channel")),
		DailyDigest:    r.PostFormValue("daily_digest") != "",
		FailureAlerts:  r.PostFormValue("failure_alerts") != "",
	}

	if _, err := s.api.UpdateSettings(r.Context(), settings); err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	s.store.RecordAudit(r.Context(), store.ActionSettingsSave, "settings", "", "")
	redirectFlash(w, r, "/settings", "Settings saved")
}
