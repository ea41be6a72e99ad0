package web

import (
	"context"
	"net/http"

	"github.com/dealbell/console/internal/table"
)

func (s *Server) auditScreen() tableScreen {
	return tableScreen{
		key:      "audit",
		title:    "Audit Trail",
		subtitle: "Who changed what in this console",
		basePath: "/audit",
		config:   auditTableConfig,
		fetch: func(ctx context.Context) ([]table.Row, error) {
			entries, err := s.store.ListAudit(ctx, 0)
			if err != nil {
				return nil, err
			}
			return auditRows(entries), nil
		},
	}
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, s.auditScreen())
}

func (s *Server) handleAuditTable(w http.ResponseWriter, r *http.Request) {
	s.servePartial(w, r, s.auditScreen())
}

func (s *Server) handleAuditExport(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r, s.auditScreen())
}
