// Package chart renders the inline SVG charts used on the dashboard and
// analytics pages: a time-series line chart, a category bar chart, and a
// success-rate donut. Output is a plain SVG string embedded directly in
// the page, so the charts need no client-side scripting.
package chart

import (
	"fmt"
	"html"
	"math"
	"strings"
)

// Point is one sample in a series.
type Point struct {
	Label string
	Value float64
}

// Geometry defaults shared by the builders. Width/height describe the
// SVG viewBox; rendering scales to the container.
const (
	defaultWidth  = 640
	defaultHeight = 240
	padLeft       = 48
	padBottom     = 28
	padTop        = 16
	padRight      = 16
)

// Palette used across charts, index-wrapped for arbitrary series counts.
var palette = []string{"#2563eb", "#16a34a", "#dc2626", "#d97706", "#7c3aed", "#0891b2"}

// Line renders a single-series line chart with an area fill, axis
// baseline, and x labels. An empty series renders a placeholder frame.
func Line(title string, points []Point) string {
	var b strings.Builder
	openSVG(&b, title)

	if len(points) == 0 {
		b.WriteString(emptyNote())
		b.WriteString("</svg>")
		return b.String()
	}

	maxV := maxValue(points)
	plotW := float64(defaultWidth - padLeft - padRight)
	plotH := float64(defaultHeight - padTop - padBottom)

	step := plotW
	if len(points) > 1 {
		step = plotW / float64(len(points)-1)
	}

	var path, area strings.Builder
	for i, p := range points {
		x := float64(padLeft) + step*float64(i)
		y := float64(padTop) + plotH - plotH*(p.Value/maxV)
		cmd := "L"
		if i == 0 {
			cmd = "M"
			fmt.Fprintf(&area, "M%.1f,%.1f ", x, float64(padTop)+plotH)
		}
		fmt.Fprintf(&path, "%s%.1f,%.1f ", cmd, x, y)
		fmt.Fprintf(&area, "L%.1f,%.1f ", x, y)
	}
	fmt.Fprintf(&area, "L%.1f,%.1f Z", float64(padLeft)+step*float64(len(points)-1), float64(padTop)+plotH)

	fmt.Fprintf(&b, `<path d="%s" fill="%s" fill-opacity="0.12" stroke="none"/>`, area.String(), palette[0])
	fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s" stroke-width="2"/>`, strings.TrimSpace(path.String()), palette[0])

	axis(&b)
	xLabels(&b, points, step)
	yMaxLabel(&b, maxV)

	b.WriteString("</svg>")
	return b.String()
}

// Bar renders a vertical bar chart, one bar per point.
func Bar(title string, points []Point) string {
	var b strings.Builder
	openSVG(&b, title)

	if len(points) == 0 {
		b.WriteString(emptyNote())
		b.WriteString("</svg>")
		return b.String()
	}

	maxV := maxValue(points)
	plotW := float64(defaultWidth - padLeft - padRight)
	plotH := float64(defaultHeight - padTop - padBottom)
	slot := plotW / float64(len(points))
	barW := slot * 0.6

	for i, p := range points {
		h := plotH * (p.Value / maxV)
		x := float64(padLeft) + slot*float64(i) + (slot-barW)/2
		y := float64(padTop) + plotH - h
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill="%s">`,
			x, y, barW, h, palette[i%len(palette)])
		fmt.Fprintf(&b, `<title>%s: %s</title></rect>`, html.EscapeString(p.Label), trimFloat(p.Value))
	}

	axis(&b)
	xLabels(&b, points, slot)
	yMaxLabel(&b, maxV)

	b.WriteString("</svg>")
	return b.String()
}

// Donut renders a two-segment donut for a 0-1 ratio with the percentage
// in the center. Out-of-range ratios are clamped.
func Donut(title string, ratio float64) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	const size = 160.0
	const r = 58.0
	c := size / 2
	circumference := 2 * math.Pi * r
	filled := circumference * ratio

	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %.0f %.0f" role="img" aria-label=%q xmlns="http://www.w3.org/2000/svg">`,
		size, size, title)
	fmt.Fprintf(&b, `<circle cx="%.0f" cy="%.0f" r="%.0f" fill="none" stroke="#e5e7eb" stroke-width="14"/>`, c, c, r)
	fmt.Fprintf(&b,
		`<circle cx="%.0f" cy="%.0f" r="%.0f" fill="none" stroke="%s" stroke-width="14" stroke-dasharray="%.2f %.2f" stroke-linecap="round" transform="rotate(-90 %.0f %.0f)"/>`,
		c, c, r, donutColor(ratio), filled, circumference-filled, c, c)
	fmt.Fprintf(&b, `<text x="%.0f" y="%.0f" text-anchor="middle" dominant-baseline="central" font-size="28" font-weight="600">%d%%</text>`,
		c, c, int(math.Round(ratio*100)))
	b.WriteString("</svg>")
	return b.String()
}

// donutColor picks the ring color by health band.
func donutColor(ratio float64) string {
	switch {
	case ratio >= 0.95:
		return "#16a34a"
	case ratio >= 0.80:
		return "#d97706"
	default:
		return "#dc2626"
	}
}

func openSVG(b *strings.Builder, title string) {
	fmt.Fprintf(b, `<svg viewBox="0 0 %d %d" role="img" aria-label=%q xmlns="http://www.w3.org/2000/svg">`,
		defaultWidth, defaultHeight, title)
}

func emptyNote() string {
	return fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" fill="#9ca3af" font-size="14">No data for this period</text>`,
		defaultWidth/2, defaultHeight/2)
}

func axis(b *strings.Builder) {
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#e5e7eb"/>`,
		padLeft, defaultHeight-padBottom, defaultWidth-padRight, defaultHeight-padBottom)
}

// xLabels writes up to eight evenly thinned labels along the x axis.
func xLabels(b *strings.Builder, points []Point, step float64) {
	every := 1
	if len(points) > 8 {
		every = (len(points) + 7) / 8
	}
	for i, p := range points {
		if i%every != 0 {
			continue
		}
		x := float64(padLeft) + step*float64(i)
		fmt.Fprintf(b, `<text x="%.1f" y="%d" text-anchor="middle" fill="#6b7280" font-size="11">%s</text>`,
			x, defaultHeight-8, html.EscapeString(p.Label))
	}
}

func yMaxLabel(b *strings.Builder, maxV float64) {
	fmt.Fprintf(b, `<text x="%d" y="%d" text-anchor="end" fill="#6b7280" font-size="11">%s</text>`,
		padLeft-6, padTop+4, trimFloat(maxV))
}

// maxValue returns the largest value, and at least 1 so a flat-zero
// series still scales.
func maxValue(points []Point) float64 {
	max := 1.0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	return max
}

func trimFloat(f float64) string {
	if f == math.Trunc(f) {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprintf("%.1f", f)
}
