package backend

import (
	"context"
	"fmt"
	"net/http"
)

// OnboardingSteps lists the wizard steps in order. The wizard is
// strictly linear: it only moves forward or repeats the current step.
var OnboardingSteps = []string{
	StepConnectPipedrive,
	StepChooseSpace,
	StepFirstRule,
	StepTestNotification,
}

// Onboarding returns the tenant's wizard progress. The backend supplies
// the Pipedrive OAuth URL while the connect step is pending.
func (c *Client) Onboarding(ctx context.Context) (*OnboardingStatus, error) {
	var out OnboardingStatus
	if err := c.getJSON(ctx, "/v1/onboarding", nil, &out); err != nil {
		return nil, fmt.Errorf("onboarding status: %w", err)
	}
	return &out, nil
}

// ForwardOAuthCode hands the Pipedrive OAuth callback code to the
// backend, which owns the token exchange. The console never sees
// credentials.
func (c *Client) ForwardOAuthCode(ctx context.Context, code, state string) error {
	body := map[string]string{"code": code, "state": state}
	if err := c.sendJSON(ctx, http.MethodPost, "/v1/onboarding/oauth", body, nil); err != nil {
		return fmt.Errorf("forward oauth code: %w", err)
	}
	return nil
}

// ListChatSpaces returns the Google Chat spaces available as targets
// for the choose-space step.
func (c *Client) ListChatSpaces(ctx context.Context) ([]ChatSpace, error) {
	var out []ChatSpace
	if err := c.getJSON(ctx, "/v1/onboarding/spaces", nil, &out); err != nil {
		return nil, fmt.Errorf("list chat spaces: %w", err)
	}
	return out, nil
}

// ChooseSpace sets the tenant's notification target space and advances
// the wizard past the choose-space step.
func (c *Client) ChooseSpace(ctx context.Context, spaceID string) error {
	body := map[string]string{"space": spaceID}
	if err := c.sendJSON(ctx, http.MethodPost, "/v1/onboarding/space", body, nil); err != nil {
		return fmt.Errorf("choose space: %w", err)
	}
	return nil
}

// CompleteStep records a wizard step as done.
func (c *Client) CompleteStep(ctx context.Context, step string) error {
	body := map[string]string{"step": step}
	if err := c.sendJSON(ctx, http.MethodPost, "/v1/onboarding/complete", body, nil); err != nil {
		return fmt.Errorf("complete step %s: %w", step, err)
	}
	return nil
}

// SendTestNotification fires the final-step test message into the
// tenant's chosen space.
func (c *Client) SendTestNotification(ctx context.Context) error {
	if err := c.sendJSON(ctx, http.MethodPost, "/v1/onboarding/test", nil, nil); err != nil {
		return fmt.Errorf("send test notification: %w", err)
	}
	return nil
}

// StepIndex returns a step's position in the wizard, or -1.
func StepIndex(step string) int {
	for i, s := range OnboardingSteps {
		if s == step {
			return i
		}
	}
	return -1
}
