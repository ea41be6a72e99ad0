package web

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dealbell/console/internal/table"
	"github.com/dealbell/console/internal/web/templates"
)

// handleBilling renders the plan summary, usage bar, and invoice
// history. Invoices go through the table engine so they sort and
// filter like every other table.
func (s *Server) handleBilling(w http.ResponseWriter, r *http.Request) {
	params := templates.LayoutParams{Title: "Billing", ActivePage: "billing"}

	info, err := s.api.Billing(r.Context())
	if err != nil {
		s.renderPageError(w, r, params, err)
		return
	}

	m := table.New(invoiceTableConfig())
	m.SetData(invoiceRows(info.Invoices))
	applyTableState(m, r)

	body := templates.Group(
		templates.PageHeader("Billing", "Plan, usage, and invoices"),
		templates.BillingPanel(info),
		templates.DataTable(m, invoiceTableOptions()),
	)
	s.renderPage(w, r, params, body)
}

// handleBillingTable serves the invoice table fragment for HTMX swaps.
func (s *Server) handleBillingTable(w http.ResponseWriter, r *http.Request) {
	info, err := s.api.Billing(r.Context())
	if err != nil {
		s.respondError(w, r, err, http.StatusBadGateway, r.URL.RequestURI())
		return
	}

	m := table.New(invoiceTableConfig())
	m.SetData(invoiceRows(info.Invoices))
	applyTableState(m, r)

	s.renderFragment(w, r, templates.DataTable(m, invoiceTableOptions()))
}

func invoiceTableOptions() templates.TableOptions {
	return templates.TableOptions{
		BasePath:   "/billing/table",
		TargetID:   "invoices-table",
		RowActions: invoiceActions,
	}
}

// invoiceActions links to the invoice PDF when the backend has one.
func invoiceActions(row table.Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		url, _ := row["pdfUrl"].(string)
		if url == "" {
			return nil
		}
		fmt.Fprintf(w, `<a class="row-action" href="%s" target="_blank" rel="noopener">PDF</a>`,
			templ.EscapeString(url))
		return nil
	})
}
