package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SavedView is a named search/filter/sort state for one table, stored
// as the raw query string the table screens already use in URLs.
type SavedView struct {
	ID        string    `json:"id"`
	TableKey  string    `json:"tableKey"`
	Name      string    `json:"name"`
	Query     string    `json:"query"`
	CreatedAt time.Time `json:"createdAt"`
}

// ErrViewNotFound is returned when a saved view does not exist.
var ErrViewNotFound = errors.New("saved view not found")

// CreateView stores the current table state under a name. Names are
// unique per table.
func (s *Store) CreateView(ctx context.Context, tableKey, name, query string) (*SavedView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("view name is required")
	}

	view := &SavedView{
		ID:       uuid.NewString(),
		TableKey: tableKey,
		Name:     name,
		Query:    query,
	}

	err := s.db.QueryRow(ctx,
		`INSERT INTO saved_views (id, table_key, name, query)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		view.ID, view.TableKey, view.Name, view.Query,
	).Scan(&view.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "unique") {
			return nil, fmt.Errorf("a view named %q already exists for this table", name)
		}
		return nil, fmt.Errorf("create view: %w", err)
	}

	return view, nil
}

// ListViews returns all saved views for a table, newest first.
func (s *Store) ListViews(ctx context.Context, tableKey string) ([]SavedView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, table_key, name, query, created_at
		 FROM saved_views
		 WHERE table_key = $1
		 ORDER BY created_at DESC`,
		tableKey,
	)
	if err != nil {
		return nil, fmt.Errorf("list views: %w", err)
	}
	defer rows.Close()

	var views []SavedView
	for rows.Next() {
		var v SavedView
		if err := rows.Scan(&v.ID, &v.TableKey, &v.Name, &v.Query, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan view: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list views: %w", err)
	}
	return views, nil
}

// GetView returns one saved view by id.
func (s *Store) GetView(ctx context.Context, id string) (*SavedView, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid view id: %w", err)
	}

	var v SavedView
	err := s.db.QueryRow(ctx,
		`SELECT id, table_key, name, query, created_at
		 FROM saved_views WHERE id = $1`,
		id,
	).Scan(&v.ID, &v.TableKey, &v.Name, &v.Query, &v.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrViewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get view: %w", err)
	}
	return &v, nil
}

// DeleteView removes a saved view.
func (s *Store) DeleteView(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid view id: %w", err)
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM saved_views WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete view: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrViewNotFound
	}
	return nil
}
