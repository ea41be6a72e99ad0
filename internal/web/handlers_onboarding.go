package web

import (
	"net/http"

	"github.com/dealbell/console/internal/backend"
	"github.com/dealbell/console/internal/web/templates"
)

// handleOnboarding renders the setup wizard. The chat space list is
// only needed while the choose-space step is current.
func (s *Server) handleOnboarding(w http.ResponseWriter, r *http.Request) {
	params := templates.LayoutParams{Title: "Get Started", ActivePage: ""}

	status, err := s.api.Onboarding(r.Context())
	if err != nil {
		s.renderPageError(w, r, params, err)
		return
	}

	var spaces []backend.ChatSpace
	if status.CurrentStep == backend.StepChooseSpace {
		spaces, err = s.api.ListChatSpaces(r.Context())
		if err != nil {
			s.renderPageError(w, r, params, err)
			return
		}
	}

	body := templates.Group(
		templates.PageHeader("Get Started", "Connect Pipedrive to Google Chat in four steps"),
		flashFromRequest(r),
		templates.OnboardingWizard(status, spaces),
	)
	s.renderPage(w, r, params, body)
}

// handleOAuthCallback receives the Pipedrive redirect and forwards the
// code to the backend, which owns the token exchange.
func (s *Server) handleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" {
		http.Redirect(w, r, "/onboarding", http.StatusSeeOther)
		return
	}

	if err := s.api.ForwardOAuthCode(r.Context(), code, state); err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	redirectFlash(w, r, "/onboarding", "Pipedrive connected")
}

func (s *Server) handleChooseSpace(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondError(w, r, err, http.StatusBadRequest, "")
		return
	}

	space := r.PostFormValue("space")
	if space == "" {
		http.Redirect(w, r, "/onboarding", http.StatusSeeOther)
		return
	}

	if err := s.api.ChooseSpace(r.Context(), space); err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	redirectFlash(w, r, "/onboarding", "Space selected")
}

func (s *Server) handleTestNotification(w http.ResponseWriter, r *http.Request) {
	if err := s.api.SendTestNotification(r.Context()); err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, "")
		return
	}

	redirectFlash(w, r, "/onboarding", "Test notification sent")
}
