package backend

import (
	"context"
	"fmt"
)

// BillingInfo bundles everything the billing page shows.
type BillingInfo struct {
	Plan     Plan      `json:"plan"`
	Usage    Usage     `json:"usage"`
	Invoices []Invoice `json:"invoices"`
}

// Billing returns the tenant's plan, current usage, and invoice history.
func (c *Client) Billing(ctx context.Context) (*BillingInfo, error) {
	var out BillingInfo
	if err := c.getJSON(ctx, "/v1/billing", nil, &out); err != nil {
		return nil, fmt.Errorf("billing: %w", err)
	}
	return &out, nil
}

// UsagePercent returns consumption as a 0-1 fraction, clamped so an
// over-quota tenant still renders a full bar.
func (u Usage) UsagePercent() float64 {
	if u.Quota <= 0 {
		return 0
	}
	p := float64(u.Notifications) / float64(u.Quota)
	if p > 1 {
		return 1
	}
	return p
}
