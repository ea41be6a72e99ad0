package store

import (
	"context"
	"testing"
)

func TestContextMetadataRoundTrip(t *testing.T) {
	ctx := context.Background()
	ctx = WithActor(ctx, "ops@example.com")
	ctx = WithIPAddress(ctx, "203.0.113.9")
	ctx = WithUserAgent(ctx, "Mozilla/5.0")

	if got := ActorFromContext(ctx); got != "ops@example.com" {
		t.Errorf("actor = %q", got)
	}
	if got := IPFromContext(ctx); got != "203.0.113.9" {
		t.Errorf("ip = %q", got)
	}
	if got := UserAgentFromContext(ctx); got != "Mozilla/5.0" {
		t.Errorf("user agent = %q", got)
	}
}

func TestContextMetadataDefaultsEmpty(t *testing.T) {
	ctx := context.Background()
	if ActorFromContext(ctx) != "" || IPFromContext(ctx) != "" || UserAgentFromContext(ctx) != "" {
		t.Error("missing metadata must read as empty strings")
	}
}
