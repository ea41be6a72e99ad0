package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/dealbell/console/internal/backend"
)

// DashboardStats renders the headline stat cards.
func DashboardStats(s *backend.Summary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div class="stat-grid">`)
		cards := []templ.Component{
			StatCard("Notifications sent", formatCount(s.TotalSent), "last 30 days"),
			StatCard("Failed", formatCount(s.Failed), "last 30 days"),
			StatCard("Success rate", fmt.Sprintf("%.1f%%", s.SuccessRate*100), ""),
			StatCard("Active rules", strconv.Itoa(s.ActiveRules), ""),
		}
		for _, c := range cards {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		io.WriteString(w, `</div>`)
		return nil
	})
}

// PeriodPicker renders the analytics range selector.
func PeriodPicker(active int, basePath string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div class="period-picker">`)
		for _, days := range []int{7, 30, 90} {
			cls := "period"
			if days == active {
				cls += " active"
			}
			fmt.Fprintf(w, `<a class="%s" href="%s?days=%d">%d days</a>`, cls, basePath, days, days)
		}
		io.WriteString(w, `</div>`)
		return nil
	})
}

// WebhookForm renders the create/edit form. A nil webhook renders the
// create variant.
func WebhookForm(wh *backend.Webhook, events []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/webhooks"
		heading := "New webhook"
		var name, event, space string
		if wh != nil {
			action = "/webhooks/" + wh.ID
			heading = "Edit webhook"
			name, event, space = wh.Name, wh.Event, wh.TargetSpace
		}

		fmt.Fprintf(w, `<section class="card"><h2>%s</h2><form method="post" action="%s" class="form">`,
			templ.EscapeString(heading), templ.EscapeString(action))
		fmt.Fprintf(w, `<label>Name<input name="name" value="%s" required></label>`, templ.EscapeString(name))

		io.WriteString(w, `<label>Pipedrive event<select name="event">`)
		for _, ev := range events {
			selected := ""
			if ev == event {
				selected = " selected"
			}
			fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
				templ.EscapeString(ev), selected, templ.EscapeString(ev))
		}
		io.WriteString(w, `</select></label>`)

		fmt.Fprintf(w, `<label>Google Chat space<input name="targetSpace" value="%s" required></label>`,
			templ.EscapeString(space))
		io.WriteString(w, `<button class="btn btn-primary" type="submit">Save</button></form></section>`)
		return nil
	})
}

// RuleForm renders the rule editor with its structured condition rows.
func RuleForm(rule *backend.Rule, fields, operators, events []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/rules"
		heading := "New rule"
		var r backend.Rule
		if rule != nil {
			action = "/rules/" + rule.ID
			heading = "Edit rule"
			r = *rule
		}
		// Always render at least one blank condition row.
		conditions := r.Conditions
		if len(conditions) == 0 {
			conditions = []backend.RuleCondition{{}}
		}

		fmt.Fprintf(w, `<section class="card"><h2>%s</h2><form method="post" action="%s" class="form">`,
			templ.EscapeString(heading), templ.EscapeString(action))
		fmt.Fprintf(w, `<label>Name<input name="name" value="%s" required></label>`, templ.EscapeString(r.Name))

		io.WriteString(w, `<label>Trigger event<select name="event">`)
		for _, ev := range events {
			selected := ""
			if ev == r.Event {
				selected = " selected"
			}
			fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
				templ.EscapeString(ev), selected, templ.EscapeString(ev))
		}
		io.WriteString(w, `</select></label>`)

		io.WriteString(w, `<fieldset class="conditions"><legend>Conditions</legend>`)
		for i, c := range conditions {
			fmt.Fprintf(w, `<div class="condition-row">`)
			fmt.Fprintf(w, `<select name="cond_field_%d"><option value="">field</option>`, i)
			for _, f := range fields {
				selected := ""
				if f == c.Field {
					selected = " selected"
				}
				fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
					templ.EscapeString(f), selected, templ.EscapeString(f))
			}
			io.WriteString(w, `</select>`)
			fmt.Fprintf(w, `<select name="cond_op_%d">`, i)
			for _, op := range operators {
				selected := ""
				if op == c.Operator {
					selected = " selected"
				}
				fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
					templ.EscapeString(op), selected, templ.EscapeString(op))
			}
			io.WriteString(w, `</select>`)
			fmt.Fprintf(w, `<input name="cond_value_%d" value="%s" placeholder="value">`,
				i, templ.EscapeString(c.Value))
			io.WriteString(w, `</div>`)
		}
		io.WriteString(w, `</fieldset>`)

		fmt.Fprintf(w, `<label>Message template<textarea name="template" rows="3">%s</textarea></label>`,
			templ.EscapeString(r.Template))
		fmt.Fprintf(w, `<label>Channel<input name="channel" value="%s"></label>`, templ.EscapeString(r.Channel))

		checked := ""
		if rule == nil || r.Enabled {
			checked = " checked"
		}
		fmt.Fprintf(w, `<label class="inline"><input type="checkbox" name="enabled"%s> Enabled</label>`, checked)
		io.WriteString(w, `<button class="btn btn-primary" type="submit">Save</button></form></section>`)
		return nil
	})
}

// SettingsForm renders the tenant settings panel.
func SettingsForm(s *backend.Settings) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<section class="card"><h2>Quiet hours</h2><form method="post" action="/settings" class="form">`)

		checked := ""
		if s.QuietHours.Enabled {
			checked = " checked"
		}
		fmt.Fprintf(w, `<label class="inline"><input type="checkbox" name="quiet_enabled"%s> Suppress notifications during quiet hours</label>`, checked)
		fmt.Fprintf(w, `<label>Start<input type="time" name="quiet_start" value="%s"></label>`, templ.EscapeString(s.QuietHours.Start))
		fmt.Fprintf(w, `<label>End<input type="time" name="quiet_end" value="%s"></label>`, templ.EscapeString(s.QuietHours.End))
		fmt.Fprintf(w, `<label>Timezone<input name="quiet_tz" value="%s" placeholder="Europe/Stockholm"></label>`, templ.EscapeString(s.QuietHours.Timezone))

		checked = ""
		if s.QuietHours.MuteWeekend {
			checked = " checked"
		}
		fmt.Fprintf(w, `<label class="inline"><input type="checkbox" name="quiet_weekend"%s> Mute all weekend</label>`, checked)

		io.WriteString(w, `<h2>Notifications</h2>`)
		fmt.Fprintf(w, `<label>Default channel<input name="default_channel" value="%s"></label>`, templ.EscapeString(s.DefaultChannel))

		checked = ""
		if s.DailyDigest {
			checked = " checked"
		}
		fmt.Fprintf(w, `<label class="inline"><input type="checkbox" name="daily_digest"%s> Send a daily digest</label>`, checked)

		checked = ""
		if s.FailureAlerts {
			checked = " checked"
		}
		fmt.Fprintf(w, `<label class="inline"><input type="checkbox" name="failure_alerts"%s> Alert me on delivery failures</label>`, checked)

		io.WriteString(w, `<button class="btn btn-primary" type="submit">Save settings</button></form></section>`)
		return nil
	})
}

// BillingPanel renders the plan summary and usage bar. The invoice
// table is rendered separately by the table engine.
func BillingPanel(info *backend.BillingInfo) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<section class="card"><h2>Plan</h2><p class="plan-name">%s</p><p class="plan-price">%s / month</p>`,
			templ.EscapeString(info.Plan.Name), templ.EscapeString(info.Plan.PricePerMonth))
		if err := UsageBar(info.Usage.Notifications, info.Usage.Quota, info.Usage.UsagePercent()).Render(ctx, w); err != nil {
			return err
		}
		io.WriteString(w, `</section>`)
		return nil
	})
}

func formatCount(n int64) string {
	if n >= 10000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return strconv.FormatInt(n, 10)
}
