package table

import (
	"fmt"
	"testing"
)

func sequentialRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{"id": fmt.Sprintf("row-%d", i), "n": float64(i)}
	}
	return rows
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, perPage, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{100, 25, 4},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.perPage); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.perPage, got, tc.want)
		}
	}
}

func TestPageSlice_SecondPageOfTwentyFive(t *testing.T) {
	rows := sequentialRows(25)

	got := PageSlice(rows, 2, 10)
	if len(got) != 10 {
		t.Fatalf("expected 10 rows on page 2, got %d", len(got))
	}
	if got[0]["id"] != "row-10" || got[9]["id"] != "row-19" {
		t.Errorf("page 2 must cover indices 10-19, got %v..%v", got[0]["id"], got[9]["id"])
	}
}

func TestPageSlice_LastPartialPage(t *testing.T) {
	got := PageSlice(sequentialRows(25), 3, 10)
	if len(got) != 5 {
		t.Fatalf("expected 5 rows on the final page, got %d", len(got))
	}
	if got[0]["id"] != "row-20" {
		t.Errorf("final page starts at row-20, got %v", got[0]["id"])
	}
}

func TestPageSlice_OutOfRangePageClamps(t *testing.T) {
	// Page 9 of a 25-row set clamps to the last real page rather than
	// returning nothing.
	got := PageSlice(sequentialRows(25), 9, 10)
	if len(got) != 5 {
		t.Fatalf("expected clamp to final page (5 rows), got %d rows", len(got))
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page, total, want int
	}{
		{0, 3, 1},
		{-2, 3, 1},
		{1, 3, 1},
		{3, 3, 3},
		{7, 3, 3},
	}
	for _, tc := range cases {
		if got := ClampPage(tc.page, tc.total); got != tc.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tc.page, tc.total, got, tc.want)
		}
	}
}

// ============================================================================
// Page strip
// ============================================================================

func TestPageStrip_SmallSetHasNoEllipsis(t *testing.T) {
	got := PageStrip(2, 5)
	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("strip %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("strip %v, want %v", got, want)
		}
	}
}

func TestPageStrip_MiddleOfLargeSet(t *testing.T) {
	got := PageStrip(10, 20)
	want := []int{1, Ellipsis, 8, 9, 10, 11, 12, Ellipsis, 20}
	if len(got) != len(want) {
		t.Fatalf("strip %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("strip %v, want %v", got, want)
		}
	}
}

func TestPageStrip_NearStart(t *testing.T) {
	got := PageStrip(1, 20)
	want := []int{1, 2, 3, Ellipsis, 20}
	if len(got) != len(want) {
		t.Fatalf("strip %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("strip %v, want %v", got, want)
		}
	}
}
