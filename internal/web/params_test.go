package web

import (
	"net/http/httptest"
	"testing"

	"github.com/dealbell/console/internal/table"
)

func paramModel(url string) *table.Model {
	m := table.New(webhookTableConfig())

	rows := make([]table.Row, 30)
	for i := range rows {
		rows[i] = table.Row{"id": i, "name": "deal row", "status": "active"}
	}
	m.SetData(rows)

	applyTableState(m, httptest.NewRequest("GET", url, nil))
	return m
}

func TestApplyTableStateReadsAllParams(t *testing.T) {
	m := paramModel("/webhooks/table?search=deal&filter%5Bstatus%5D=active&sort=name&dir=desc&page=2")

	if m.Search() != "deal" {
		t.Errorf("search = %q", m.Search())
	}
	if m.Filters()["status"] != "active" {
		t.Errorf("filters = %v", m.Filters())
	}
	key, dir := m.Sort()
	if key != "name" || dir != table.Desc {
		t.Errorf("sort = %s %s", key, dir)
	}
	if m.Page() != 2 {
		t.Errorf("page = %d, want 2", m.Page())
	}
}

func TestApplyTableStateInvalidDirFallsBackToAsc(t *testing.T) {
	m := paramModel("/webhooks/table?sort=name&dir=sideways")

	_, dir := m.Sort()
	if dir != table.Asc {
		t.Errorf("dir = %s, want asc", dir)
	}
}

func TestApplyTableStateBadPageIgnored(t *testing.T) {
	m := paramModel("/webhooks/table?page=banana")

	if m.Page() != 1 {
		t.Errorf("page = %d, want 1", m.Page())
	}
}

func TestApplyTableStatePageAppliedAfterFilters(t *testing.T) {
	// Filters reset the page internally; the explicit page parameter
	// must still win because it is applied last.
	m := paramModel("/webhooks/table?filter%5Bstatus%5D=active&page=3")

	if m.Page() != 3 {
		t.Errorf("page = %d, want 3", m.Page())
	}
}
