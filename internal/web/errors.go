package web

// errors.go turns backend and store failures into responses. Every
// error is logged with full detail server-side and mapped through
// backend.MapError to a user message with a support code. The response
// shape depends on the caller: HTMX requests get a banner fragment with
// a manual Retry control, API-style callers get JSON, plain navigation
// gets an error page. There is no automatic retry anywhere.

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dealbell/console/internal/backend"
	"github.com/dealbell/console/internal/web/templates"
)

// ErrorResponse is the JSON error shape.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

// respondError logs err and writes the mapped user message in the
// format the client expects. retryURL, when non-empty, gives the HTMX
// banner a Retry control that re-requests the failed fragment.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int, retryURL string) {
	userMsg := backend.MapError(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	switch {
	case isHTMX(r):
		renderErrorPartial(r.Context(), w, userMsg, statusCode, retryURL)
	case wantsJSON(r):
		respondErrorJSON(w, userMsg, statusCode)
	default:
		respondErrorHTML(w, userMsg, statusCode)
	}
}

// renderPageError renders a full page whose content is the error
// banner, so a failed data fetch still leaves the user inside the
// console with navigation and a Retry control.
func (s *Server) renderPageError(w http.ResponseWriter, r *http.Request, p templates.LayoutParams, err error) {
	userMsg := backend.MapError(err)

	slog.Error("page load failed",
		"path", r.URL.Path,
		"error", err.Error(),
		"code", userMsg.Code,
		"request_id", middleware.GetReqID(r.Context()),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	body := templates.Group(
		templates.PageHeader(p.Title, ""),
		templates.ErrorBanner(userMsg.Message, userMsg.Action, userMsg.Code, r.URL.RequestURI()),
	)
	if rerr := templates.Layout(p, body).Render(r.Context(), w); rerr != nil {
		slog.Error("render error page", "error", rerr)
	}
}

func respondErrorJSON(w http.ResponseWriter, msg backend.UserMessage, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	})
}

func respondErrorHTML(w http.ResponseWriter, msg backend.UserMessage, statusCode int) {
	http.Error(w, msg.Message+" ("+msg.Code+")", statusCode)
}

func renderErrorPartial(ctx context.Context, w http.ResponseWriter, msg backend.UserMessage, statusCode int, retryURL string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	templates.ErrorBanner(msg.Message, msg.Action, msg.Code, retryURL).Render(ctx, w)
}

// isHTMX checks if the request came from htmx.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// wantsJSON checks if the client prefers a JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}
