// Package templates renders the console's HTML. Components are built
// directly on the templ runtime (templ.Component / templ.ComponentFunc)
// so handlers compose and render them the same way generated templ code
// would be used.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LayoutParams configures the page shell.
type LayoutParams struct {
	Title      string
	ActivePage string // nav key: "dashboard", "webhooks", ...
}

// navItem is one sidebar entry.
type navItem struct {
	Key   string
	Label string
	Href  string
}

var navItems = []navItem{
	{"dashboard", "Dashboard", "/"},
	{"webhooks", "Webhooks", "/webhooks"},
	{"rules", "Rules", "/rules"},
	{"analytics", "Analytics", "/analytics"},
	{"deliveries", "Delivery Log", "/deliveries"},
	{"billing", "Billing", "/billing"},
	{"settings", "Settings", "/settings"},
	{"audit", "Audit Trail", "/audit"},
}

// Layout wraps body in the full page shell with the sidebar.
func Layout(p LayoutParams, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := p.Title
		if title == "" {
			title = "DealBell Console"
		} else {
			title += " · DealBell Console"
		}

		fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/app.css">
<script src="https://unpkg.com/htmx.org@1.9.12/dist/htmx.min.js" defer></script>
</head>
<body>
<div class="shell">`, templ.EscapeString(title))

		if err := sidebar(p.ActivePage).Render(ctx, w); err != nil {
			return err
		}

		io.WriteString(w, `<main class="content" id="content">`)
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		io.WriteString(w, `</main></div></body></html>`)
		return nil
	})
}

// sidebar renders the navigation column.
func sidebar(active string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<aside class="sidebar"><div class="brand">DealBell</div><nav>`)
		for _, item := range navItems {
			class := "nav-link"
			if item.Key == active {
				class += " active"
			}
			fmt.Fprintf(w, `<a class="%s" href="%s">%s</a>`,
				class, item.Href, templ.EscapeString(item.Label))
		}
		io.WriteString(w, `</nav></aside>`)
		return nil
	})
}

// PageHeader renders the heading row above a page's content.
func PageHeader(title, subtitle string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<header class="page-header"><h1>%s</h1>`, templ.EscapeString(title))
		if subtitle != "" {
			fmt.Fprintf(w, `<p class="subtitle">%s</p>`, templ.EscapeString(subtitle))
		}
		io.WriteString(w, `</header>`)
		return nil
	})
}

// Group renders components in sequence.
func Group(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
