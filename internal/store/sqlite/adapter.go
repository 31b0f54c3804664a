// Package sqlite implements the whisky store on modernc.org/sqlite, the
// default driver for local and single-node deployments.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/whiskyhouse/whisky-service/internal/model"
	"github.com/whiskyhouse/whisky-service/internal/store"
)

// EnsureSchema creates the whiskys table if it does not exist. It is
// idempotent and runs on every startup.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS whiskys (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL,
            origin TEXT NOT NULL
        );`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// New constructs a SQLite-backed store over an open database handle.
func New(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Save(ctx context.Context, w *model.Whisky) (*model.Whisky, error) {
	if w.ID == nil {
		return s.insert(ctx, w)
	}
	return s.update(ctx, w)
}

func (s *sqliteStore) insert(ctx context.Context, w *model.Whisky) (*model.Whisky, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO whiskys (name, origin) VALUES (?, ?)`, w.Name, w.Origin)
	if err != nil {
		return nil, fmt.Errorf("insert whisky: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read assigned whisky id: %w", err)
	}
	out := *w
	out.ID = &id
	return &out, nil
}

func (s *sqliteStore) update(ctx context.Context, w *model.Whisky) (*model.Whisky, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE whiskys SET name=?, origin=? WHERE id=?`, w.Name, w.Origin, *w.ID)
	if err != nil {
		return nil, fmt.Errorf("update whisky: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	out := *w
	return &out, nil
}

func (s *sqliteStore) Get(ctx context.Context, id int64) (*model.Whisky, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, origin FROM whiskys WHERE id=?`, id)
	var out model.Whisky
	var got int64
	if err := row.Scan(&got, &out.Name, &out.Origin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("get whisky: %w", err)
	}
	out.ID = &got
	return &out, nil
}

func (s *sqliteStore) List(ctx context.Context) ([]*model.Whisky, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, origin FROM whiskys ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list whiskys: %w", err)
	}
	defer func() { _ = rows.Close() }()
	out := []*model.Whisky{}
	for rows.Next() {
		var w model.Whisky
		var id int64
		if err := rows.Scan(&id, &w.Name, &w.Origin); err != nil {
			return nil, err
		}
		w.ID = &id
		out = append(out, &w)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM whiskys WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("delete whisky: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqliteStore) Close() error { return s.db.Close() }
