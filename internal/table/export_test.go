package table

import (
	"strings"
	"testing"
)

func TestExportCSV_HeaderAndRawValues(t *testing.T) {
	cols := []Column{
		{Key: "name", Title: "Name", Format: func(v any, _ Row) string { return "FORMATTED" }},
		{Key: "rate", Title: "Success Rate"},
	}
	rows := []Row{
		{"name": "Deal won alerts", "rate": 0.99},
	}

	var buf strings.Builder
	if err := ExportCSV(&buf, cols, rows); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 record, got %d lines", len(lines))
	}
	if lines[0] != "Name,Success Rate" {
		t.Errorf("header = %q", lines[0])
	}
	// Export carries raw values, never formatter output.
	if strings.Contains(lines[1], "FORMATTED") {
		t.Error("export must use raw values, not the formatter")
	}
	if lines[1] != "Deal won alerts,0.99" {
		t.Errorf("record = %q", lines[1])
	}
}

func TestExportCSV_EscapesQuotesAndCommas(t *testing.T) {
	cols := []Column{{Key: "name", Title: "Name"}}
	rows := []Row{
		{"name": `Say "hello", world`},
	}

	var buf strings.Builder
	if err := ExportCSV(&buf, cols, rows); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// RFC 4180: the field is quoted and embedded quotes are doubled.
	want := `"Say ""hello"", world"`
	if lines[1] != want {
		t.Errorf("escaped record = %q, want %q", lines[1], want)
	}
}

func TestExportCSV_MissingValuesAreEmpty(t *testing.T) {
	cols := []Column{
		{Key: "name", Title: "Name"},
		{Key: "channel", Title: "Channel"},
	}
	rows := []Row{
		{"name": "Stage changes"}, // no channel key
	}

	var buf strings.Builder
	if err := ExportCSV(&buf, cols, rows); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[1] != "Stage changes," {
		t.Errorf("record = %q, want trailing empty field", lines[1])
	}
}

func TestExportFilename(t *testing.T) {
	cases := []struct {
		title, want string
	}{
		{"Webhooks", "webhooks.csv"},
		{"Delivery Log", "delivery-log.csv"},
		{"", "data.csv"},
		{"   ", "data.csv"},
	}
	for _, tc := range cases {
		if got := ExportFilename(tc.title); got != tc.want {
			t.Errorf("ExportFilename(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}
