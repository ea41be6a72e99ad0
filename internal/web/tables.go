package web

// tables.go defines the column configuration and row mapping for each
// table screen. Raw values stay in the rows so sorting and export work
// on real data; display formatting happens per column.

import (
	"fmt"
	"time"

	"github.com/dealbell/console/internal/backend"
	"github.com/dealbell/console/internal/store"
	"github.com/dealbell/console/internal/table"
)

var statusOptions = []string{"active", "paused", "failing"}
var deliveryStatusOptions = []string{"delivered", "failed", "skipped"}

func formatPercent(v any, _ table.Row) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%.1f%%", f*100)
}

func formatTime(v any, _ table.Row) string {
	t, ok := v.(time.Time)
	if !ok || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

func webhookTableConfig() table.Config {
	return table.Config{
		Title:        "Webhooks",
		RowID:        "id",
		PerPage:      10,
		EmptyMessage: "No webhooks match the current filters",
		Columns: []table.Column{
			{Key: "name", Title: "Name", Sortable: true, Filterable: true, FilterType: table.FilterText},
			{Key: "event", Title: "Event", Sortable: true, Filterable: true,
				FilterType: table.FilterSelect, FilterOptions: backend.PipedriveEvents},
			{Key: "targetSpace", Title: "Chat Space", Sortable: true, Filterable: true, FilterType: table.FilterText},
			{Key: "status", Title: "Status", Sortable: true, Filterable: true,
				FilterType: table.FilterSelect, FilterOptions: statusOptions},
			{Key: "successRate", Title: "Success Rate", Sortable: true, Filterable: true, Align: "right",
				FilterType: table.FilterSelect, FilterOptions: table.BucketLabels(table.SuccessRateBuckets),
				Matcher: table.PercentBucketMatcher(table.SuccessRateBuckets), Format: formatPercent},
			{Key: "deliveries", Title: "Deliveries", Sortable: true, Align: "right"},
			{Key: "lastDelivery", Title: "Last Delivery", Sortable: true, Format: formatTime},
		},
	}
}

func webhookRows(webhooks []backend.Webhook) []table.Row {
	rows := make([]table.Row, len(webhooks))
	for i, wh := range webhooks {
		row := table.Row{
			"id":          wh.ID,
			"name":        wh.Name,
			"event":       wh.Event,
			"targetSpace": wh.TargetSpace,
			"status":      wh.Status,
			"successRate": wh.SuccessRate,
			"deliveries":  wh.Deliveries,
		}
		if wh.LastDelivery != nil {
			row["lastDelivery"] = *wh.LastDelivery
		}
		rows[i] = row
	}
	return rows
}

func ruleTableConfig() table.Config {
	return table.Config{
		Title:        "Rules",
		RowID:        "id",
		PerPage:      10,
		EmptyMessage: "No rules match the current filters",
		Columns: []table.Column{
			{Key: "name", Title: "Name", Sortable: true, Filterable: true, FilterType: table.FilterText},
			{Key: "event", Title: "Event", Sortable: true, Filterable: true,
				FilterType: table.FilterSelect, FilterOptions: backend.PipedriveEvents},
			{Key: "channel", Title: "Channel", Sortable: true, Filterable: true, FilterType: table.FilterText},
			{Key: "state", Title: "State", Sortable: true, Filterable: true,
				FilterType: table.FilterSelect, FilterOptions: []string{"enabled", "disabled"}},
			{Key: "updatedAt", Title: "Updated", Sortable: true, Format: formatTime},
		},
	}
}

func ruleRows(rules []backend.Rule) []table.Row {
	rows := make([]table.Row, len(rules))
	for i, rule := range rules {
		state := "disabled"
		if rule.Enabled {
			state = "enabled"
		}
		rows[i] = table.Row{
			"id":        rule.ID,
			"name":      rule.Name,
			"event":     rule.Event,
			"channel":   rule.Channel,
			"state":     state,
			"updatedAt": rule.UpdatedAt,
		}
	}
	return rows
}

func deliveryTableConfig() table.Config {
	return table.Config{
		Title:        "Delivery Log",
		RowID:        "id",
		PerPage:      20,
		EmptyMessage: "No deliveries match the current filters",
		Columns: []table.Column{
			{Key: "time", Title: "Time", Sortable: true, Format: formatTime},
			{Key: "event", Title: "Event", Sortable: true, Filterable: true,
				FilterType: table.FilterSelect, FilterOptions: backend.PipedriveEvents},
			{Key: "ruleName", Title: "Rule", Sortable: true, Filterable: true, FilterType: table.FilterText},
			{Key: "channel", Title: "Channel", Sortable: true, Filterable: true, FilterType: table.FilterText},
			{Key: "status", Title: "Status", Sortable: true, Filterable: true,
				FilterType: table.FilterSelect, FilterOptions: deliveryStatusOptions},
			{Key: "attempts", Title: "Attempts", Sortable: true, Align: "right"},
			{Key: "error", Title: "Error"},
		},
	}
}

func deliveryRows(deliveries []backend.Delivery) []table.Row {
	rows := make([]table.Row, len(deliveries))
	for i, d := range deliveries {
		rows[i] = table.Row{
			"id":       d.ID,
			"time":     d.Time,
			"event":    d.Event,
			"ruleName": d.RuleName,
			"channel":  d.Channel,
			"status":   d.Status,
			"attempts": d.Attempts,
			"error":    d.Error,
		}
	}
	return rows
}

func invoiceTableConfig() table.Config {
	return table.Config{
		Title:        "Invoices",
		RowID:        "id",
		PerPage:      12,
		EmptyMessage: "No invoices yet",
		Columns: []table.Column{
			{Key: "date", Title: "Date", Sortable: true, Format: formatTime},
			{Key: "amount", Title: "Amount", Sortable: true, Align: "right"},
			{Key: "status", Title: "Status", Sortable: true, Filterable: true,
				FilterType: table.FilterSelect, FilterOptions: []string{"paid", "open", "void"}},
		},
	}
}

func invoiceRows(invoices []backend.Invoice) []table.Row {
	rows := make([]table.Row, len(invoices))
	for i, inv := range invoices {
		rows[i] = table.Row{
			"id":     inv.ID,
			"date":   inv.Date,
			"amount": inv.Amount,
			"status": inv.Status,
			"pdfUrl": inv.PDFURL,
		}
	}
	return rows
}

func auditTableConfig() table.Config {
	return table.Config{
		Title:        "Audit Trail",
		RowID:        "id",
		PerPage:      20,
		EmptyMessage: "No console actions recorded yet",
		Columns: []table.Column{
			{Key: "createdAt", Title: "Time", Sortable: true, Format: formatTime},
			{Key: "actor", Title: "Actor", Sortable: true, Filterable: true, FilterType: table.FilterText},
			{Key: "action", Title: "Action", Sortable: true, Filterable: true, FilterType: table.FilterText},
			{Key: "entity", Title: "Entity", Sortable: true},
			{Key: "entityId", Title: "Entity ID"},
			{Key: "detail", Title: "Detail"},
		},
	}
}

func auditRows(entries []store.AuditEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			"id":        e.ID,
			"createdAt": e.CreatedAt,
			"actor":     e.Actor,
			"action":    string(e.Action),
			"entity":    e.Entity,
			"entityId":  e.EntityID,
			"detail":    e.Detail,
		}
	}
	return rows
}
