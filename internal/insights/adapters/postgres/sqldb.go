package postgres

import (
	"context"
	"database/sql"
)

// Snapshotter runs fn against a DB view that sees one consistent state of
// the database.
type Snapshotter interface {
	Snapshot(ctx context.Context, fn func(DB) error) error
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type sqlDB struct {
	db *sql.DB
	q  querier
}

// NewSQLDB adapts a *sql.DB opened with the "postgres" driver. The result
// also implements Snapshotter.
func NewSQLDB(db *sql.DB) DB {
	return &sqlDB{db: db, q: db}
}

func (s *sqlDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Snapshot runs fn inside a read-only repeatable-read transaction so the
// column lookup and the row select see the same table.
func (s *sqlDB) Snapshot(ctx context.Context, fn func(DB) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(&sqlDB{q: tx}); err != nil {
		return err
	}
	return tx.Commit()
}
