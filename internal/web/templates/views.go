package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/dealbell/console/internal/store"
)

// SavedViewsBar renders the saved-view picker for a table screen:
// links that re-apply a stored query string, per-view delete buttons,
// and a form that saves the current state under a name.
func SavedViewsBar(views []store.SavedView, tableKey, basePath, currentQuery string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div class="saved-views">`)
		for _, v := range views {
			href := basePath
			if v.Query != "" {
				href += "?" + v.Query
			}
			fmt.Fprintf(w, `<span class="saved-view"><a href="%s">%s</a>`,
				templ.EscapeString(href), templ.EscapeString(v.Name))
			fmt.Fprintf(w, `<form method="post" action="/views/%s/delete" class="inline-form"><button class="view-delete" aria-label="Delete view">&times;</button></form></span>`,
				templ.EscapeString(v.ID))
		}

		fmt.Fprintf(w, `<form method="post" action="/views" class="inline-form save-view">`)
		fmt.Fprintf(w, `<input type="hidden" name="table" value="%s">`, templ.EscapeString(tableKey))
		fmt.Fprintf(w, `<input type="hidden" name="query" value="%s">`, templ.EscapeString(currentQuery))
		io.WriteString(w, `<input name="name" placeholder="Save current view as..." required>`)
		io.WriteString(w, `<button class="btn" type="submit">Save view</button></form>`)

		io.WriteString(w, `</div>`)
		return nil
	})
}
