package backend

import (
	"context"
	"fmt"
	"net/http"
)

// RuleFields lists the Pipedrive fields the rule editor offers for
// conditions, mirroring the backend's filter schema.
var RuleFields = []string{
	"deal.title", "deal.value", "deal.currency", "deal.stage",
	"deal.owner", "deal.pipeline", "person.name", "org.name",
	"activity.type", "activity.subject",
}

// RuleOperators lists the comparison operators the backend accepts.
var RuleOperators = []string{"eq", "neq", "contains", "gt", "lt", "changed"}

// ListRules returns every notification rule for the tenant.
func (c *Client) ListRules(ctx context.Context) ([]Rule, error) {
	var out []Rule
	if err := c.getJSON(ctx, "/v1/rules", nil, &out); err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	return out, nil
}

// GetRule returns one rule by id.
func (c *Client) GetRule(ctx context.Context, id string) (*Rule, error) {
	var out Rule
	if err := c.getJSON(ctx, "/v1/rules/"+id, nil, &out); err != nil {
		return nil, fmt.Errorf("get rule %s: %w", id, err)
	}
	return &out, nil
}

// CreateRule creates a rule and returns the stored record.
func (c *Client) CreateRule(ctx context.Context, in RuleInput) (*Rule, error) {
	var out Rule
	if err := c.sendJSON(ctx, http.MethodPost, "/v1/rules", in, &out); err != nil {
		return nil, fmt.Errorf("create rule: %w", err)
	}
	return &out, nil
}

// UpdateRule replaces a rule's mutable fields.
func (c *Client) UpdateRule(ctx context.Context, id string, in RuleInput) (*Rule, error) {
	var out Rule
	if err := c.sendJSON(ctx, http.MethodPut, "/v1/rules/"+id, in, &out); err != nil {
		return nil, fmt.Errorf("update rule %s: %w", id, err)
	}
	return &out, nil
}

// DeleteRule removes a rule.
func (c *Client) DeleteRule(ctx context.Context, id string) error {
	if err := c.sendJSON(ctx, http.MethodDelete, "/v1/rules/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete rule %s: %w", id, err)
	}
	return nil
}

// SetRuleEnabled toggles a rule without touching its other fields.
func (c *Client) SetRuleEnabled(ctx context.Context, id string, enabled bool) error {
	body := map[string]bool{"enabled": enabled}
	if err := c.sendJSON(ctx, http.MethodPatch, "/v1/rules/"+id, body, nil); err != nil {
		return fmt.Errorf("toggle rule %s: %w", id, err)
	}
	return nil
}
