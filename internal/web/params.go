package web

// params.go maps query parameters onto table view state. Each table
// screen serializes its state into the URL (search, filter[col], sort,
// dir, page) so views are linkable, saveable, and survive HTMX swaps.

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dealbell/console/internal/table"
)

// applyTableState sets search, filters, sort, and page on the model
// from the request's query parameters. Order matters: search and
// filters reset the page, so the explicit page parameter is applied
// last.
func applyTableState(m *table.Model, r *http.Request) {
	q := r.URL.Query()

	m.SetSearch(strings.TrimSpace(q.Get("search")))

	for key, values := range q {
		if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "]") {
			continue
		}
		col := key[7 : len(key)-1]
		if col == "" || len(values) == 0 {
			continue
		}
		m.SetFilter(col, strings.TrimSpace(values[0]))
	}

	if sort := q.Get("sort"); sort != "" {
		m.SetSort(sort, table.Direction(q.Get("dir")))
	}

	if page := parseIntParam(r, "page", 1); page > 1 {
		m.SetPage(page)
	}
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

// parseDays parses the analytics period, constrained to the offered
// ranges.
func parseDays(r *http.Request) int {
	switch parseIntParam(r, "days", 30) {
	case 7:
		return 7
	case 90:
		return 90
	default:
		return 30
	}
}
