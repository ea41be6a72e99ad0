package table

import "strings"

// filter.go implements the filter engine: a global search term OR'd
// across columns, AND'd with every active per-column filter. Lowercase
// projections of each row are built once per dataset swap so repeated
// filtering does not re-lowercase every cell.

// rowProjection holds the precomputed lowercase string form of each
// column's raw value for one row.
type rowProjection map[string]string

// buildIndex computes lowercase projections for a dataset.
func buildIndex(rows []Row, cols []Column) []rowProjection {
	index := make([]rowProjection, len(rows))
	for i, row := range rows {
		proj := make(rowProjection, len(cols))
		for _, col := range cols {
			proj[col.Key] = strings.ToLower(cellString(row[col.Key]))
		}
		index[i] = proj
	}
	return index
}

// Filter returns the subset of rows matching the search term and every
// active column filter. Search matches a row when any column's
// stringified raw value contains the term case-insensitively; column
// filters compose with AND. Empty filter values are ignored.
//
// This is the uncached form; Model keeps a projection index and goes
// through filterIndexed instead.
func Filter(rows []Row, cols []Column, search string, filters map[string]string) []Row {
	return filterIndexed(rows, buildIndex(rows, cols), cols, search, filters)
}

func filterIndexed(rows []Row, index []rowProjection, cols []Column, search string, filters map[string]string) []Row {
	search = strings.ToLower(strings.TrimSpace(search))

	// Resolve matchers up front so the row loop stays cheap.
	matchers := make(map[string]Matcher, len(cols))
	for _, col := range cols {
		if col.Matcher != nil {
			matchers[col.Key] = col.Matcher
		}
	}

	var out []Row
	for i, row := range rows {
		if search != "" && !matchesSearch(index[i], cols, search) {
			continue
		}
		if !matchesFilters(row, index[i], matchers, filters) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// matchesSearch reports whether any column's lowercase value contains
// the (already lowercased) search term.
func matchesSearch(proj rowProjection, cols []Column, search string) bool {
	for _, col := range cols {
		if s := proj[col.Key]; s != "" && strings.Contains(s, search) {
			return true
		}
	}
	return false
}

// matchesFilters reports whether the row satisfies every active column
// filter. A nil or missing value never matches a non-empty filter.
func matchesFilters(row Row, proj rowProjection, matchers map[string]Matcher, filters map[string]string) bool {
	for key, val := range filters {
		if val == "" {
			continue
		}
		if m, ok := matchers[key]; ok {
			if !m(row[key], val) {
				return false
			}
			continue
		}
		s := proj[key]
		if s == "" {
			return false
		}
		if !strings.Contains(s, strings.ToLower(val)) {
			return false
		}
	}
	return true
}
