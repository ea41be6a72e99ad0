package backend

import (
	"context"
	"fmt"
	"net/http"
)

// GetSettings returns the tenant-level configuration.
func (c *Client) GetSettings(ctx context.Context) (*Settings, error) {
	var out Settings
	if err := c.getJSON(ctx, "/v1/settings", nil, &out); err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &out, nil
}

// UpdateSettings replaces the tenant-level configuration.
func (c *Client) UpdateSettings(ctx context.Context, in Settings) (*Settings, error) {
	var out Settings
	if err := c.sendJSON(ctx, http.MethodPut, "/v1/settings", in, &out); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return &out, nil
}
