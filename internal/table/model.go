package table

import "io"

// model.go ties the engine pieces into a stateful table instance with
// the interaction semantics the screens rely on: filter and search
// changes reset to page one, sort changes do not, and the current page
// is clamped whenever the filtered set shrinks.

// Model holds one table's data and view state. It is not safe for
// concurrent use; the web layer builds one per request from query
// parameters.
type Model struct {
	cfg   Config
	rows  []Row
	index []rowProjection

	search  string
	filters map[string]string
	sortKey string
	sortDir Direction
	page    int

	// cached filtered+sorted result, invalidated on any mutation
	cached []Row
	dirty  bool
}

// New creates a Model for the given configuration. PerPage defaults to
// 10 when unset.
func New(cfg Config) *Model {
	if cfg.PerPage <= 0 {
		cfg.PerPage = 10
	}
	return &Model{
		cfg:     cfg,
		filters: make(map[string]string),
		sortDir: Asc,
		page:    1,
		dirty:   true,
	}
}

// Config returns the table configuration.
func (m *Model) Config() Config { return m.cfg }

// SetData replaces the dataset and rebuilds the search index. View
// state (search, filters, sort, page) is preserved; the page clamps on
// the next read if the new set is smaller.
func (m *Model) SetData(rows []Row) {
	m.rows = rows
	m.index = buildIndex(rows, m.cfg.Columns)
	m.dirty = true
}

// SetSearch sets the global search term and resets to page one.
func (m *Model) SetSearch(term string) {
	if term == m.search {
		return
	}
	m.search = term
	m.page = 1
	m.dirty = true
}

// Search returns the active search term.
func (m *Model) Search() string { return m.search }

// SetFilter sets one column's filter value and resets to page one.
// An empty value clears the column's filter.
func (m *Model) SetFilter(key, value string) {
	if m.filters[key] == value {
		return
	}
	if value == "" {
		delete(m.filters, key)
	} else {
		m.filters[key] = value
	}
	m.page = 1
	m.dirty = true
}

// Filters returns the active column filters.
func (m *Model) Filters() map[string]string { return m.filters }

// ToggleSort sorts by the given column: a new column starts ascending,
// the already-active column flips direction. The page is left alone.
func (m *Model) ToggleSort(key string) {
	if key == m.sortKey {
		m.sortDir = m.sortDir.Toggle()
	} else {
		m.sortKey = key
		m.sortDir = Asc
	}
	m.dirty = true
}

// SetSort sets the sort column and direction directly (used when the
// state arrives in query parameters rather than from a click).
func (m *Model) SetSort(key string, dir Direction) {
	if dir != Desc {
		dir = Asc
	}
	m.sortKey = key
	m.sortDir = dir
	m.dirty = true
}

// Sort returns the active sort column and direction.
func (m *Model) Sort() (string, Direction) { return m.sortKey, m.sortDir }

// SetPage moves to the given page; it is clamped on read.
func (m *Model) SetPage(page int) { m.page = page }

// Filtered returns the filtered and sorted row set.
func (m *Model) Filtered() []Row {
	if m.dirty {
		filtered := filterIndexed(m.rows, m.index, m.cfg.Columns, m.search, m.filters)
		m.cached = Sort(filtered, m.sortKey, m.sortDir)
		m.dirty = false
	}
	return m.cached
}

// TotalPages returns the page count for the current filtered set.
func (m *Model) TotalPages() int {
	return TotalPages(len(m.Filtered()), m.cfg.PerPage)
}

// Page returns the clamped current page number.
func (m *Model) Page() int {
	return ClampPage(m.page, m.TotalPages())
}

// PageRows returns the rows of the current page.
func (m *Model) PageRows() []Row {
	return PageSlice(m.Filtered(), m.page, m.cfg.PerPage)
}

// Strip returns the page-number strip for the current view.
func (m *Model) Strip() []int {
	return PageStrip(m.Page(), m.TotalPages())
}

// Export writes the filtered set (all pages) as CSV.
func (m *Model) Export(w io.Writer) error {
	return ExportCSV(w, m.cfg.Columns, m.Filtered())
}

// Display returns the display text for one cell, applying the column's
// formatter when present.
func (m *Model) Display(col Column, row Row) string {
	if col.Format != nil {
		return col.Format(row[col.Key], row)
	}
	return cellString(row[col.Key])
}

// RowKey returns the reconciliation key for a row: the value of the
// configured RowID column, or "" when unset.
func (m *Model) RowKey(row Row) string {
	if m.cfg.RowID == "" {
		return ""
	}
	return cellString(row[m.cfg.RowID])
}
