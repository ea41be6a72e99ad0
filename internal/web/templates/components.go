package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ErrorBanner renders the dismissible failure banner. retryURL, when
// set, adds a Retry control that re-requests the failed fragment; that
// manual action is the console's only retry mechanism.
func ErrorBanner(message, action, code, retryURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div class="banner banner-error" role="alert">`)
		fmt.Fprintf(w, `<div class="banner-body"><strong>%s</strong>`, templ.EscapeString(message))
		if action != "" {
			fmt.Fprintf(w, `<span class="banner-action">%s</span>`, templ.EscapeString(action))
		}
		fmt.Fprintf(w, `<code class="banner-code">%s</code></div>`, templ.EscapeString(code))
		if retryURL != "" {
			fmt.Fprintf(w, `<button class="btn btn-retry" hx-get="%s" hx-target="closest .banner" hx-swap="outerHTML">Retry</button>`,
				templ.EscapeString(retryURL))
		}
		io.WriteString(w, `<button class="banner-dismiss" onclick="this.closest('.banner').remove()" aria-label="Dismiss">&times;</button>`)
		io.WriteString(w, `</div>`)
		return nil
	})
}

// FlashBanner renders a one-shot success notice.
func FlashBanner(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="banner banner-ok" role="status">%s`, templ.EscapeString(message))
		io.WriteString(w, `<button class="banner-dismiss" onclick="this.closest('.banner').remove()" aria-label="Dismiss">&times;</button></div>`)
		return nil
	})
}

// StatCard renders one dashboard headline number.
func StatCard(label, value, hint string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="stat-card"><div class="stat-value">%s</div><div class="stat-label">%s</div>`,
			templ.EscapeString(value), templ.EscapeString(label))
		if hint != "" {
			fmt.Fprintf(w, `<div class="stat-hint">%s</div>`, templ.EscapeString(hint))
		}
		io.WriteString(w, `</div>`)
		return nil
	})
}

// ChartCard embeds a pre-rendered SVG chart. The SVG comes from the
// chart package, which escapes its own labels, so it is written raw.
func ChartCard(title, svg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<section class="card chart-card"><h2>%s</h2><div class="chart">`,
			templ.EscapeString(title))
		if err := templ.Raw(svg).Render(ctx, w); err != nil {
			return err
		}
		io.WriteString(w, `</div></section>`)
		return nil
	})
}

// UsageBar renders billing consumption as a filled bar.
func UsageBar(used, quota int64, percent float64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cls := "usage-fill"
		if percent >= 0.9 {
			cls += " usage-hot"
		}
		fmt.Fprintf(w, `<div class="usage-bar" role="meter" aria-valuenow="%d" aria-valuemax="%d">`, used, quota)
		fmt.Fprintf(w, `<div class="%s" style="width:%.1f%%"></div></div>`, cls, percent*100)
		fmt.Fprintf(w, `<p class="usage-note">%d of %d notifications used this period</p>`, used, quota)
		return nil
	})
}
