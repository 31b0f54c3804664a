// Package postgres implements the whisky store on PostgreSQL via the pgx
// stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/whiskyhouse/whisky-service/internal/model"
	"github.com/whiskyhouse/whisky-service/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies
// connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Bootstrap applies the embedded schema so a fresh database is usable
// without external migrations. Every statement is idempotent.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	for _, stmt := range DDLStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply whisky schema: %w", err)
		}
	}
	return nil
}

// New constructs a Postgres-backed store over an open database handle.
func New(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Save(ctx context.Context, w *model.Whisky) (*model.Whisky, error) {
	if w.ID == nil {
		return s.insert(ctx, w)
	}
	return s.update(ctx, w)
}

func (s *pgStore) insert(ctx context.Context, w *model.Whisky) (*model.Whisky, error) {
	var id int64
	row := s.db.QueryRowContext(ctx, `
        INSERT INTO whiskys (name, origin)
        VALUES ($1,$2)
        RETURNING id
    `, w.Name, w.Origin)
	if err := row.Scan(&id); err != nil {
		return nil, fmt.Errorf("insert whisky: %w", err)
	}
	out := *w
	out.ID = &id
	return &out, nil
}

func (s *pgStore) update(ctx context.Context, w *model.Whisky) (*model.Whisky, error) {
	res, err := s.db.ExecContext(ctx, `
        UPDATE whiskys SET name=$1, origin=$2 WHERE id=$3
    `, w.Name, w.Origin, *w.ID)
	if err != nil {
		return nil, fmt.Errorf("update whisky: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	out := *w
	return &out, nil
}

func (s *pgStore) Get(ctx context.Context, id int64) (*model.Whisky, error) {
	var out model.Whisky
	var got int64
	row := s.db.QueryRowContext(ctx, `
        SELECT id, name, origin FROM whiskys WHERE id=$1
    `, id)
	if err := row.Scan(&got, &out.Name, &out.Origin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("get whisky: %w", err)
	}
	out.ID = &got
	return &out, nil
}

func (s *pgStore) List(ctx context.Context) ([]*model.Whisky, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, origin FROM whiskys ORDER BY id
    `)
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

func (s *pgStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM whiskys WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete whisky: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *pgStore) Close() error { return s.db.Close() }
