package table

// paginate.go slices the filtered set into fixed-size pages and renders
// the page-number strip. Pages are 1-indexed. The current page is
// clamped into [1, totalPages] whenever the filtered set is consulted,
// so a filter that shrinks the set can never leave the view stranded on
// a page that no longer exists.

// Ellipsis is the page-strip marker for a gap between page numbers.
// It is decorative; there is no jump-by-ellipsis interaction.
const Ellipsis = -1

// TotalPages returns ceil(total / perPage), and at least 1 so an empty
// set still has a current page to clamp to.
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	n := (total + perPage - 1) / perPage
	if n < 1 {
		return 1
	}
	return n
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageSlice returns the rows for the given page: indices
// [(page-1)*perPage, page*perPage) of the filtered set.
func PageSlice(rows []Row, page, perPage int) []Row {
	if perPage <= 0 {
		return rows
	}
	page = ClampPage(page, TotalPages(len(rows), perPage))
	start := (page - 1) * perPage
	if start >= len(rows) {
		return nil
	}
	end := start + perPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// PageStrip returns the page numbers to render: the first page, the
// last page, a window of two pages on each side of current, and
// Ellipsis markers for the gaps.
func PageStrip(current, totalPages int) []int {
	var strip []int
	for p := 1; p <= totalPages; p++ {
		switch {
		case p == 1 || p == totalPages:
			strip = append(strip, p)
		case p >= current-2 && p <= current+2:
			strip = append(strip, p)
		default:
			if len(strip) > 0 && strip[len(strip)-1] != Ellipsis {
				strip = append(strip, Ellipsis)
			}
		}
	}
	return strip
}
