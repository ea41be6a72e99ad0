package table

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sort.go implements single-column sorting. At most one (column,
// direction) pair is active; selecting a new column replaces the old
// sort rather than composing with it.

// Sort returns a new slice ordered by the given column. An empty key is
// a no-op and preserves the input order. Equal values keep their
// relative order (the sort is stable). When both values are numeric the
// comparison is arithmetic; otherwise both sides are stringified and
// compared with locale-aware collation.
func Sort(rows []Row, key string, dir Direction) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	if key == "" {
		return out
	}

	coll := collate.New(language.Und)
	sort.SliceStable(out, func(i, j int) bool {
		c := compareValues(coll, out[i][key], out[j][key])
		if dir == Desc {
			c = -c
		}
		return c < 0
	})
	return out
}

// compareValues orders two raw cell values: 0 for identical values,
// numeric difference when both are numbers, collated string comparison
// otherwise.
func compareValues(coll *collate.Collator, a, b any) int {
	if a == b {
		return 0
	}

	fa, aok := toFloat(a)
	fb, bok := toFloat(b)
	if aok && bok {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}

	return coll.CompareString(cellString(a), cellString(b))
}
