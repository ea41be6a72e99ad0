package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"
)

func parse(data []byte) gjson.Result {
	return gjson.ParseBytes(data)
}

// analytics.go reads the aggregation endpoints. Their payloads have
// grown additively across backend versions, so values are plucked by
// gjson path instead of being bound to rigid structs — unknown siblings
// never break the console.

// Summary returns the headline stats for the last `days` days.
func (c *Client) Summary(ctx context.Context, days int) (*Summary, error) {
	data, err := c.do(ctx, "GET", "/v1/analytics/summary", periodQuery(days), nil)
	if err != nil {
		return nil, fmt.Errorf("analytics summary: %w", err)
	}

	root := parse(data)
	return &Summary{
		TotalSent:   root.Get("totalSent").Int(),
		Failed:      root.Get("failed").Int(),
		SuccessRate: root.Get("successRate").Float(),
		ActiveRules: int(root.Get("activeRules").Int()),
	}, nil
}

// Timeseries returns per-day delivered/failed counts for the period.
func (c *Client) Timeseries(ctx context.Context, days int) ([]SeriesPoint, error) {
	data, err := c.do(ctx, "GET", "/v1/analytics/timeseries", periodQuery(days), nil)
	if err != nil {
		return nil, fmt.Errorf("analytics timeseries: %w", err)
	}

	var points []SeriesPoint
	for _, item := range parse(data).Get("series").Array() {
		points = append(points, SeriesPoint{
			Date:      item.Get("date").String(),
			Delivered: item.Get("delivered").Int(),
			Failed:    item.Get("failed").Int(),
		})
	}
	return points, nil
}

// EventBreakdown returns delivery counts per Pipedrive event type.
func (c *Client) EventBreakdown(ctx context.Context, days int) ([]Breakdown, error) {
	return c.breakdown(ctx, "/v1/analytics/events", "events", days)
}

// TopChannels returns delivery counts per Chat space.
func (c *Client) TopChannels(ctx context.Context, days int) ([]Breakdown, error) {
	return c.breakdown(ctx, "/v1/analytics/channels", "channels", days)
}

func (c *Client) breakdown(ctx context.Context, path, key string, days int) ([]Breakdown, error) {
	data, err := c.do(ctx, "GET", path, periodQuery(days), nil)
	if err != nil {
		return nil, fmt.Errorf("analytics %s: %w", key, err)
	}

	var out []Breakdown
	for _, item := range parse(data).Get(key).Array() {
		out = append(out, Breakdown{
			Label: item.Get("label").String(),
			Count: item.Get("count").Int(),
		})
	}
	return out, nil
}

func periodQuery(days int) url.Values {
	if days <= 0 {
		days = 30
	}
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	return q
}
