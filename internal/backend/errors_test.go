package backend

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMapError_StatusCodes(t *testing.T) {
	cases := []struct {
		status   int
		wantCode string
	}{
		{http.StatusUnauthorized, "AUTH001"},
		{http.StatusForbidden, "AUTH002"},
		{http.StatusNotFound, "API002"},
		{http.StatusConflict, "API003"},
		{http.StatusUnprocessableEntity, "API004"},
		{http.StatusTooManyRequests, "API005"},
		{http.StatusInternalServerError, "API001"},
		{http.StatusBadGateway, "API001"},
		{http.StatusTeapot, "API000"},
	}

	for _, tc := range cases {
		err := fmt.Errorf("get webhook: %w", &APIError{Status: tc.status, Path: "/v1/webhooks/x"})
		if got := MapError(err); got.Code != tc.wantCode {
			t.Errorf("status %d: code = %s, want %s", tc.status, got.Code, tc.wantCode)
		}
	}
}

func TestMapError_NetworkPatterns(t *testing.T) {
	cases := []struct {
		text     string
		wantCode string
	}{
		{`GET /v1/rules: dial tcp 10.0.0.1:443: connect: connection refused`, "NET001"},
		{`dial tcp: lookup api.dealbell.invalid: no such host`, "NET002"},
		{`context deadline exceeded`, "NET003"},
		{`Client.Timeout exceeded while awaiting headers`, "NET003"},
		{`context canceled`, "NET004"},
		{`read tcp: connection reset by peer`, "NET005"},
		{`something entirely novel`, "ERR000"},
	}

	for _, tc := range cases {
		if got := MapError(errors.New(tc.text)); got.Code != tc.wantCode {
			t.Errorf("%q: code = %s, want %s", tc.text, got.Code, tc.wantCode)
		}
	}
}

func TestMapError_AlwaysActionable(t *testing.T) {
	msgs := []UserMessage{
		MapError(&APIError{Status: 500}),
		MapError(errors.New("connection refused")),
		MapError(errors.New("mystery")),
	}
	for _, m := range msgs {
		if m.Message == "" || m.Action == "" || m.Code == "" {
			t.Errorf("incomplete user message: %+v", m)
		}
	}
}

func TestAPIError_Error(t *testing.T) {
	withMsg := &APIError{Status: 422, Path: "/v1/rules", Message: "name is required"}
	if got := withMsg.Error(); got != "backend /v1/rules: 422 name is required" {
		t.Errorf("Error() = %q", got)
	}

	bare := &APIError{Status: 503, Path: "/v1/billing"}
	if got := bare.Error(); got != "backend /v1/billing: status 503" {
		t.Errorf("Error() = %q", got)
	}
}
