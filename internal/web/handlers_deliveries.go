package web

import (
	"context"
	"net/http"

	"github.com/dealbell/console/internal/table"
)

// deliveryFetchLimit bounds how much of the log one request pulls; the
// table engine paginates within it.
const deliveryFetchLimit = 500

func (s *Server) deliveryScreen() tableScreen {
	return tableScreen{
		key:      "deliveries",
		title:    "Delivery Log",
		subtitle: "Every notification the backend attempted",
		basePath: "/deliveries",
		config:   deliveryTableConfig,
		fetch: func(ctx context.Context) ([]table.Row, error) {
			deliveries, err := s.api.ListDeliveries(ctx, "", deliveryFetchLimit)
			if err != nil {
				return nil, err
			}
			return deliveryRows(deliveries), nil
		},
		lazy: true,
	}
}

func (s *Server) handleDeliveriesPage(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, s.deliveryScreen())
}

func (s *Server) handleDeliveriesTable(w http.ResponseWriter, r *http.Request) {
	s.servePartial(w, r, s.deliveryScreen())
}

func (s *Server) handleDeliveriesExport(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r, s.deliveryScreen())
}
