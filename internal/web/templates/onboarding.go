package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/dealbell/console/internal/backend"
)

// stepTitles labels the wizard steps for display.
var stepTitles = map[string]string{
	backend.StepConnectPipedrive: "Connect Pipedrive",
	backend.StepChooseSpace:      "Choose a Google Chat space",
	backend.StepFirstRule:        "Create your first rule",
	backend.StepTestNotification: "Send a test notification",
}

// OnboardingWizard renders the linear setup flow. Completed steps show
// a check, the current step shows its form, and future steps are
// locked until the current one is done.
func OnboardingWizard(status *backend.OnboardingStatus, spaces []backend.ChatSpace) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if status.Done {
			io.WriteString(w, `<section class="card wizard-done"><h2>You're all set</h2>`)
			io.WriteString(w, `<p>Pipedrive events are flowing to Google Chat. Head to the dashboard to watch deliveries.</p>`)
			io.WriteString(w, `<a class="btn btn-primary" href="/">Go to dashboard</a></section>`)
			return nil
		}

		done := make(map[string]bool, len(status.Completed))
		for _, s := range status.Completed {
			done[s] = true
		}
		currentIdx := backend.StepIndex(status.CurrentStep)

		io.WriteString(w, `<ol class="wizard">`)
		for i, step := range backend.OnboardingSteps {
			cls := "wizard-step"
			switch {
			case done[step]:
				cls += " done"
			case i == currentIdx:
				cls += " current"
			default:
				cls += " locked"
			}
			fmt.Fprintf(w, `<li class="%s"><div class="wizard-title">`, cls)
			if done[step] {
				io.WriteString(w, `<span class="check">&#10003;</span> `)
			}
			fmt.Fprintf(w, `%s</div>`, templ.EscapeString(stepTitles[step]))

			if i == currentIdx && !done[step] {
				if err := wizardStepBody(step, status, spaces).Render(ctx, w); err != nil {
					return err
				}
			}
			io.WriteString(w, `</li>`)
		}
		io.WriteString(w, `</ol>`)
		return nil
	})
}

func wizardStepBody(step string, status *backend.OnboardingStatus, spaces []backend.ChatSpace) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch step {
		case backend.StepConnectPipedrive:
			io.WriteString(w, `<p>Authorize DealBell to receive events from your Pipedrive account.</p>`)
			if status.ConnectURL != "" {
				fmt.Fprintf(w, `<a class="btn btn-primary" href="%s">Connect Pipedrive</a>`,
					templ.EscapeString(status.ConnectURL))
			} else {
				io.WriteString(w, `<p class="muted">The authorization link is not available right now. Reload to try again.</p>`)
			}

		case backend.StepChooseSpace:
			io.WriteString(w, `<p>Pick the Google Chat space notifications should land in.</p>`)
			io.WriteString(w, `<form method="post" action="/onboarding/space" class="form">`)
			io.WriteString(w, `<select name="space">`)
			for _, sp := range spaces {
				fmt.Fprintf(w, `<option value="%s">%s</option>`,
					templ.EscapeString(sp.ID), templ.EscapeString(sp.Name))
			}
			io.WriteString(w, `</select><button class="btn btn-primary" type="submit">Use this space</button></form>`)

		case backend.StepFirstRule:
			io.WriteString(w, `<p>Rules decide which events become notifications.</p>`)
			io.WriteString(w, `<a class="btn btn-primary" href="/rules/new">Create a rule</a>`)

		case backend.StepTestNotification:
			io.WriteString(w, `<p>Send a test message to confirm the pipeline end to end.</p>`)
			io.WriteString(w, `<form method="post" action="/onboarding/test"><button class="btn btn-primary" type="submit">Send test notification</button></form>`)
		}
		return nil
	})
}
