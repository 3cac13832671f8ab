// Package store keeps a small sqlite mirror of the last reference data the
// client managed to fetch: hospitals, work types, and per-work-type
// checklists. The façade refreshes it after every successful read and
// consults it when the server is unreachable, before falling back to the
// built-in defaults. Nothing else is persisted client-side.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/safecheck/safecheck/internal/client/models"
	"github.com/safecheck/safecheck/internal/client/store/migrations"
	"github.com/safecheck/safecheck/internal/dbx"

	_ "modernc.org/sqlite"
)

// List names for the reference_lists table.
const (
	ListHospitals = "hospitals"
	ListWorkTypes = "work_types"
)

type Store struct {
	db *sql.DB
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the cache database at dsn and applies
// the schema migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate cache db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveList replaces the named reference list with values, preserving order.
func (s *Store) SaveList(ctx context.Context, name string, values []string) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.Querier) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM reference_lists WHERE name = ?`, name); err != nil {
			return fmt.Errorf("clear list %s: %w", name, err)
		}
		for i, v := range values {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO reference_lists (name, position, value) VALUES (?, ?, ?)`,
				name, i, v)
			if err != nil {
				return fmt.Errorf("insert into list %s: %w", name, err)
			}
		}
		return nil
	})
}

// List returns the named reference list in its saved order. A list that was
// never saved comes back empty, not as an error.
func (s *Store) List(ctx context.Context, name string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT value FROM reference_lists WHERE name = ? ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("select list %s: %w", name, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// SaveChecklist replaces the cached checklist for a work type.
func (s *Store) SaveChecklist(ctx context.Context, workType string, items []models.ChecklistItem) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.Querier) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM checklist_items WHERE work_type = ?`, workType); err != nil {
			return fmt.Errorf("clear checklist %s: %w", workType, err)
		}
		for _, it := range items {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO checklist_items (work_type, item_order, item_id, text, code) VALUES (?, ?, ?, ?, ?)`,
				workType, it.Order, it.ID, it.Text, it.Code)
			if err != nil {
				return fmt.Errorf("insert checklist item: %w", err)
			}
		}
		return nil
	})
}

// Checklist returns the cached checklist for a work type, ordered.
func (s *Store) Checklist(ctx context.Context, workType string) ([]models.ChecklistItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT item_id, text, item_order, code FROM checklist_items WHERE work_type = ? ORDER BY item_order`,
		workType)
	if err != nil {
		return nil, fmt.Errorf("select checklist %s: %w", workType, err)
	}
	defer rows.Close()

	var items []models.ChecklistItem
	for rows.Next() {
		var it models.ChecklistItem
		if err := rows.Scan(&it.ID, &it.Text, &it.Order, &it.Code); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Reset empties the cache. Called on logout.
func (s *Store) Reset(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.Querier) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM reference_lists`); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM checklist_items`)
		return err
	})
}
