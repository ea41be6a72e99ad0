package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// export.go serializes the filtered (never the paginated) row set as
// RFC 4180 CSV. Cells carry raw field values, not formatted display
// text; encoding/csv handles quote, comma, and newline escaping.

// ExportCSV writes a header row of column titles followed by one record
// per row. Missing values serialize as empty strings.
func ExportCSV(w io.Writer, cols []Column, rows []Row) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.Title
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(cols))
	for _, row := range rows {
		for i, col := range cols {
			record[i] = cellString(row[col.Key])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ExportFilename derives the download name from the table title,
// falling back to "data" when the title is empty.
func ExportFilename(title string) string {
	name := strings.TrimSpace(strings.ToLower(title))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		name = "data"
	}
	return name + ".csv"
}
