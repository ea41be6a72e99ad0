package table

import "math"

// buckets.go provides range-bucket matchers for select filters over
// numeric columns. Buckets are configuration wired into a Column, so
// the engine itself knows nothing about any particular field.

// Bucket is one labelled half-open percentage range [Min, Max).
// Max is exclusive except for the top bucket, which is closed so a
// perfect 100 still lands somewhere.
type Bucket struct {
	Label string
	Min   int
	Max   int
}

// SuccessRateBuckets are the stock delivery success-rate ranges used by
// the webhook and rule screens. Values are fractions in [0, 1]; the
// matcher compares the integer percentage.
var SuccessRateBuckets = []Bucket{
	{Label: "95-100%", Min: 95, Max: 101},
	{Label: "80-94%", Min: 80, Max: 95},
	{Label: "50-79%", Min: 50, Max: 80},
	{Label: "0-49%", Min: 0, Max: 50},
}

// BucketLabels returns the labels in declaration order, for use as a
// column's FilterOptions.
func BucketLabels(buckets []Bucket) []string {
	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
	}
	return labels
}

// PercentBucketMatcher returns a Matcher that treats the cell value as
// a 0-1 fraction, converts it to an integer percentage, and matches the
// filter value against the label of the containing bucket. Non-numeric
// and missing values never match.
func PercentBucketMatcher(buckets []Bucket) Matcher {
	return func(value any, filterValue string) bool {
		f, ok := toFloat(value)
		if !ok {
			return false
		}
		// Truncate the true decimal percentage. A bare int(f*100)
		// misplaces exact boundaries (0.95*100 is 94.999... in
		// float64), so nudge before flooring.
		pct := int(math.Floor(f*100 + 1e-9))
		for _, b := range buckets {
			if b.Label != filterValue {
				continue
			}
			return pct >= b.Min && pct < b.Max
		}
		return false
	}
}
