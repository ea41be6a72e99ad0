package chart

import (
	"strings"
	"testing"
)

func TestLine_EmptySeriesRendersPlaceholder(t *testing.T) {
	svg := Line("Deliveries", nil)

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not a self-contained svg: %q", svg)
	}
	if !strings.Contains(svg, "No data for this period") {
		t.Error("empty series must render the placeholder note")
	}
}

func TestLine_RendersPathAndLabels(t *testing.T) {
	svg := Line("Deliveries", []Point{
		{Label: "Mon", Value: 12},
		{Label: "Tue", Value: 30},
		{Label: "Wed", Value: 7},
	})

	if !strings.Contains(svg, `<path`) {
		t.Error("line chart must contain a path element")
	}
	for _, label := range []string{"Mon", "Tue", "Wed"} {
		if !strings.Contains(svg, label) {
			t.Errorf("missing x label %q", label)
		}
	}
}

func TestBar_OneRectPerPoint(t *testing.T) {
	svg := Bar("By event", []Point{
		{Label: "deal.won", Value: 40},
		{Label: "deal.lost", Value: 10},
	})

	if got := strings.Count(svg, "<rect"); got != 2 {
		t.Errorf("expected 2 bars, found %d rects", got)
	}
}

func TestBar_EscapesLabels(t *testing.T) {
	svg := Bar("By event", []Point{{Label: `<script>`, Value: 1}})

	if strings.Contains(svg, "<script>") {
		t.Error("labels must be HTML-escaped")
	}
	if !strings.Contains(svg, "&lt;script&gt;") {
		t.Error("expected escaped label text")
	}
}

func TestDonut_PercentageAndClamping(t *testing.T) {
	svg := Donut("Success rate", 0.87)
	if !strings.Contains(svg, ">87%<") {
		t.Errorf("expected 87%% center label in %q", svg)
	}

	over := Donut("Success rate", 1.7)
	if !strings.Contains(over, ">100%<") {
		t.Error("ratio above 1 must clamp to 100%")
	}

	under := Donut("Success rate", -0.2)
	if !strings.Contains(under, ">0%<") {
		t.Error("ratio below 0 must clamp to 0%")
	}
}

func TestDonut_ColorBands(t *testing.T) {
	if !strings.Contains(Donut("t", 0.99), "#16a34a") {
		t.Error("healthy rate must use the green ring")
	}
	if !strings.Contains(Donut("t", 0.85), "#d97706") {
		t.Error("degraded rate must use the amber ring")
	}
	if !strings.Contains(Donut("t", 0.30), "#dc2626") {
		t.Error("failing rate must use the red ring")
	}
}
