package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ListDeliveries returns up to limit recent delivery-log entries,
// optionally narrowed to one status ("delivered", "failed", "skipped").
// Pagination, search, and sorting over the result are presentation
// concerns handled by the table engine.
func (c *Client) ListDeliveries(ctx context.Context, status string, limit int) ([]Delivery, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out []Delivery
	if err := c.getJSON(ctx, "/v1/deliveries", q, &out); err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return out, nil
}
