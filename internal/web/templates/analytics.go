package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/dealbell/console/internal/backend"
)

// BreakdownTable renders a small label/count table for analytics
// breakdowns (per event type, per channel).
func BreakdownTable(title string, items []backend.Breakdown) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<section class="card"><h2>%s</h2>`, templ.EscapeString(title))
		if len(items) == 0 {
			io.WriteString(w, `<p class="muted">No data for this period</p></section>`)
			return nil
		}
		io.WriteString(w, `<table class="table table-compact"><tbody>`)
		for _, item := range items {
			fmt.Fprintf(w, `<tr><td>%s</td><td class="align-right">%d</td></tr>`,
				templ.EscapeString(item.Label), item.Count)
		}
		io.WriteString(w, `</tbody></table></section>`)
		return nil
	})
}

// RecentDeliveries renders the dashboard's latest-activity panel with a
// link to the full delivery log.
func RecentDeliveries(deliveries []backend.Delivery) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<section class="card"><h2>Recent deliveries</h2>`)
		if len(deliveries) == 0 {
			io.WriteString(w, `<p class="muted">Nothing delivered yet</p>`)
		} else {
			io.WriteString(w, `<table class="table table-compact"><tbody>`)
			for _, d := range deliveries {
				cls := "status status-" + d.Status
				fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td><span class="%s">%s</span></td></tr>`,
					templ.EscapeString(d.Time.Format("15:04")),
					templ.EscapeString(d.Event),
					templ.EscapeString(d.RuleName),
					cls, templ.EscapeString(d.Status))
			}
			io.WriteString(w, `</tbody></table>`)
		}
		io.WriteString(w, `<a class="card-link" href="/deliveries">View full log</a></section>`)
		return nil
	})
}
