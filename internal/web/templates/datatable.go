package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/dealbell/console/internal/table"
)

// TableOptions wires a table.Model to its routes.
type TableOptions struct {
	// BasePath serves the table partial (e.g. "/webhooks/table").
	BasePath string

	// ExportPath serves the CSV download.
	ExportPath string

	// TargetID is the DOM id the partial swaps into.
	TargetID string

	// RowActions renders trailing action cells per row (optional).
	RowActions func(row table.Row) templ.Component
}

// DataTable renders the full table fragment: toolbar (search, filters,
// export), header with sort controls, body, and pagination strip.
func DataTable(m *table.Model, opts TableOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg := m.Config()
		fmt.Fprintf(w, `<div class="datatable" id="%s">`, templ.EscapeString(opts.TargetID))

		if err := toolbar(m, opts).Render(ctx, w); err != nil {
			return err
		}

		io.WriteString(w, `<table class="table"><thead><tr>`)
		sortKey, sortDir := m.Sort()
		for _, col := range cfg.Columns {
			if err := headerCell(m, opts, col, sortKey, sortDir).Render(ctx, w); err != nil {
				return err
			}
		}
		if opts.RowActions != nil {
			io.WriteString(w, `<th class="col-actions"></th>`)
		}
		io.WriteString(w, `</tr></thead><tbody>`)

		rows := m.PageRows()
		if len(rows) == 0 {
			if err := emptyRow(m, opts).Render(ctx, w); err != nil {
				return err
			}
		} else {
			for _, row := range rows {
				if err := bodyRow(m, opts, row).Render(ctx, w); err != nil {
					return err
				}
			}
		}
		io.WriteString(w, `</tbody></table>`)

		if err := pageStrip(m, opts).Render(ctx, w); err != nil {
			return err
		}

		io.WriteString(w, `</div>`)
		return nil
	})
}

// DataTableLazy renders the loading skeleton; it fetches the real
// fragment on load, so the skeleton is exactly the isLoading state.
func DataTableLazy(colCount int, src, targetID string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="datatable" id="%s" hx-get="%s" hx-trigger="load" hx-swap="outerHTML">`,
			templ.EscapeString(targetID), templ.EscapeString(src))
		io.WriteString(w, `<table class="table"><tbody>`)
		for range 5 {
			io.WriteString(w, `<tr class="skeleton-row">`)
			for range colCount {
				io.WriteString(w, `<td><span class="skeleton"></span></td>`)
			}
			io.WriteString(w, `</tr>`)
		}
		io.WriteString(w, `</tbody></table></div>`)
		return nil
	})
}

// toolbar renders search, per-column filter controls, and the export
// link. Changing search or any filter resets the page parameter to 1;
// the export link carries the filters but never the page.
func toolbar(m *table.Model, opts TableOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		cfg := m.Config()
		fmt.Fprintf(w, `<form class="table-toolbar" hx-get="%s" hx-target="#%s" hx-swap="outerHTML" hx-trigger="input changed delay:300ms from:find input, change from:find select">`,
			templ.EscapeString(opts.BasePath), templ.EscapeString(opts.TargetID))

		fmt.Fprintf(w, `<input type="search" name="search" value="%s" placeholder="Search...">`,
			templ.EscapeString(m.Search()))

		filters := m.Filters()
		for _, col := range cfg.Columns {
			if !col.Filterable {
				continue
			}
			name := "filter[" + col.Key + "]"
			active := filters[col.Key]
			if col.FilterType == table.FilterSelect {
				fmt.Fprintf(w, `<select name="%s"><option value="">%s: all</option>`,
					templ.EscapeString(name), templ.EscapeString(col.Title))
				for _, opt := range col.FilterOptions {
					selected := ""
					if opt == active {
						selected = " selected"
					}
					fmt.Fprintf(w, `<option value="%s"%s>%s</option>`,
						templ.EscapeString(opt), selected, templ.EscapeString(opt))
				}
				io.WriteString(w, `</select>`)
			} else {
				fmt.Fprintf(w, `<input type="text" name="%s" value="%s" placeholder="%s">`,
					templ.EscapeString(name), templ.EscapeString(active), templ.EscapeString(col.Title))
			}
		}

		// Sort state survives filter changes via hidden fields.
		sortKey, sortDir := m.Sort()
		if sortKey != "" {
			fmt.Fprintf(w, `<input type="hidden" name="sort" value="%s"><input type="hidden" name="dir" value="%s">`,
				templ.EscapeString(sortKey), sortDir)
		}

		if opts.ExportPath != "" {
			fmt.Fprintf(w, `<a class="btn btn-export" href="%s">Export CSV</a>`,
				templ.EscapeString(opts.ExportPath+"?"+stateQuery(m, 0).Encode()))
		}

		io.WriteString(w, `</form>`)
		return nil
	})
}

func headerCell(m *table.Model, opts TableOptions, col table.Column, sortKey string, sortDir table.Direction) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		attrs := ""
		if col.Align != "" {
			attrs = ` class="align-` + col.Align + `"`
		}
		if !col.Sortable {
			fmt.Fprintf(w, `<th%s>%s</th>`, attrs, templ.EscapeString(col.Title))
			return nil
		}

		// Clicking the active column toggles direction; a new column
		// starts ascending. The page parameter is carried unchanged.
		nextDir := table.Asc
		indicator := ""
		if col.Key == sortKey {
			nextDir = sortDir.Toggle()
			if sortDir == table.Asc {
				indicator = " &#9650;"
			} else {
				indicator = " &#9660;"
			}
		}

		q := stateQuery(m, m.Page())
		q.Set("sort", col.Key)
		q.Set("dir", string(nextDir))
		fmt.Fprintf(w, `<th%s><a href="#" hx-get="%s?%s" hx-target="#%s" hx-swap="outerHTML">%s%s</a></th>`,
			attrs, templ.EscapeString(opts.BasePath), templ.EscapeString(q.Encode()),
			templ.EscapeString(opts.TargetID), templ.EscapeString(col.Title), indicator)
		return nil
	})
}

func bodyRow(m *table.Model, opts TableOptions, row table.Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<tr data-row-id="%s">`, templ.EscapeString(m.RowKey(row)))
		for _, col := range m.Config().Columns {
			cls := ""
			if col.Align != "" {
				cls = ` class="align-` + col.Align + `"`
			}
			fmt.Fprintf(w, `<td%s>%s</td>`, cls, templ.EscapeString(m.Display(col, row)))
		}
		if opts.RowActions != nil {
			io.WriteString(w, `<td class="col-actions">`)
			if err := opts.RowActions(row).Render(ctx, w); err != nil {
				return err
			}
			io.WriteString(w, `</td>`)
		}
		io.WriteString(w, `</tr>`)
		return nil
	})
}

func emptyRow(m *table.Model, opts TableOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		span := len(m.Config().Columns)
		if opts.RowActions != nil {
			span++
		}
		msg := m.Config().EmptyMessage
		if msg == "" {
			msg = "No matching records"
		}
		fmt.Fprintf(w, `<tr class="empty-row"><td colspan="%d">%s</td></tr>`,
			span, templ.EscapeString(msg))
		return nil
	})
}

func pageStrip(m *table.Model, opts TableOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		total := m.TotalPages()
		if total <= 1 {
			return nil
		}
		current := m.Page()

		io.WriteString(w, `<nav class="page-strip">`)
		for _, p := range m.Strip() {
			if p == table.Ellipsis {
				io.WriteString(w, `<span class="page-ellipsis">&hellip;</span>`)
				continue
			}
			if p == current {
				fmt.Fprintf(w, `<span class="page-current">%d</span>`, p)
				continue
			}
			q := stateQuery(m, p)
			fmt.Fprintf(w, `<a class="page-link" href="#" hx-get="%s?%s" hx-target="#%s" hx-swap="outerHTML">%d</a>`,
				templ.EscapeString(opts.BasePath), templ.EscapeString(q.Encode()),
				templ.EscapeString(opts.TargetID), p)
		}
		io.WriteString(w, `</nav>`)
		return nil
	})
}

// stateQuery serializes the model's view state as URL parameters.
// page <= 0 omits the page parameter (used by export links, which
// always cover the whole filtered set).
func stateQuery(m *table.Model, page int) url.Values {
	q := url.Values{}
	if s := m.Search(); s != "" {
		q.Set("search", s)
	}
	for key, val := range m.Filters() {
		q.Set("filter["+key+"]", val)
	}
	if key, dir := m.Sort(); key != "" {
		q.Set("sort", key)
		q.Set("dir", string(dir))
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	return q
}
