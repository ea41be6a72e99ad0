// Package table implements the data-table engine behind every list screen
// in the console: global search, per-column filters, sorting, pagination,
// and CSV export. It has no HTTP or template dependencies and operates on
// plain row maps so any screen can drive it.
package table

import (
	"strconv"
	"time"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// FilterType selects the filter control rendered for a column.
type FilterType string

const (
	FilterText   FilterType = "text"
	FilterSelect FilterType = "select"
)

// Row is one record, a mapping from column key to raw value.
// Values are whatever the backend's JSON decoded to (string, float64,
// bool, nil, ...). A key missing from the map renders and filters as
// empty; it is never an error.
type Row map[string]any

// Matcher decides whether a raw cell value satisfies a filter value.
// Columns without a Matcher use case-insensitive substring matching on
// the stringified raw value.
type Matcher func(value any, filterValue string) bool

// Formatter maps a raw value (and the whole row, for cross-field
// displays) to display text. Formatting affects rendering only; search,
// filters, sort, and export all operate on raw values.
type Formatter func(value any, row Row) string

// Column describes how one field is displayed, sorted, and filtered.
type Column struct {
	Key           string
	Title         string
	Sortable      bool
	Filterable    bool
	FilterType    FilterType
	FilterOptions []string
	Matcher       Matcher
	Format        Formatter
	Align         string // "left" (default), "right", "center"
	Width         string // optional CSS width hint
}

// Config configures a table instance.
type Config struct {
	Columns []Column

	// RowID names the column whose value uniquely identifies a row.
	// Row routes and swap targets key on it; it is never positional.
	RowID string

	// PerPage is the fixed page size (default 10).
	PerPage int

	// Title names the table; it becomes the export file name.
	Title string

	// EmptyMessage is shown when the filtered set is empty.
	EmptyMessage string
}

// cellString converts a raw value to its canonical string form, used by
// search, substring filters, and export. nil maps to "".
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return ""
	}
}

// toFloat extracts a numeric value if the cell holds one.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}
