package backend

import (
	"context"
	"fmt"
	"net/http"
)

// PipedriveEvents lists the event types a webhook or rule can bind to.
var PipedriveEvents = []string{
	"deal.added", "deal.updated", "deal.won", "deal.lost", "deal.deleted",
	"person.added", "person.updated",
	"org.added", "org.updated",
	"activity.added", "activity.done",
	"note.added",
}

// ListWebhooks returns every webhook configured for the tenant.
func (c *Client) ListWebhooks(ctx context.Context) ([]Webhook, error) {
	var out []Webhook
	if err := c.getJSON(ctx, "/v1/webhooks", nil, &out); err != nil {
		return nil, fmt.Errorf("list webhooks: %w", err)
	}
	return out, nil
}

// GetWebhook returns one webhook by id.
func (c *Client) GetWebhook(ctx context.Context, id string) (*Webhook, error) {
	var out Webhook
	if err := c.getJSON(ctx, "/v1/webhooks/"+id, nil, &out); err != nil {
		return nil, fmt.Errorf("get webhook %s: %w", id, err)
	}
	return &out, nil
}

// CreateWebhook creates a webhook and returns the stored record.
func (c *Client) CreateWebhook(ctx context.Context, in WebhookInput) (*Webhook, error) {
	var out Webhook
	if err := c.sendJSON(ctx, http.MethodPost, "/v1/webhooks", in, &out); err != nil {
		return nil, fmt.Errorf("create webhook: %w", err)
	}
	return &out, nil
}

// UpdateWebhook replaces a webhook's mutable fields.
func (c *Client) UpdateWebhook(ctx context.Context, id string, in WebhookInput) (*Webhook, error) {
	var out Webhook
	if err := c.sendJSON(ctx, http.MethodPut, "/v1/webhooks/"+id, in, &out); err != nil {
		return nil, fmt.Errorf("update webhook %s: %w", id, err)
	}
	return &out, nil
}

// DeleteWebhook removes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, id string) error {
	if err := c.sendJSON(ctx, http.MethodDelete, "/v1/webhooks/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete webhook %s: %w", id, err)
	}
	return nil
}

// PingWebhook asks the backend to send a test notification through the
// webhook's target space.
func (c *Client) PingWebhook(ctx context.Context, id string) error {
	if err := c.sendJSON(ctx, http.MethodPost, "/v1/webhooks/"+id+"/ping", nil, nil); err != nil {
		return fmt.Errorf("ping webhook %s: %w", id, err)
	}
	return nil
}
