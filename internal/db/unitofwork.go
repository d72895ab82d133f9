package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/lexibox/internal/domain"
)

// DBTX is what the vocabulary, progress, stats and session repositories
// need from a connection. Both *sql.DB and *sql.Tx satisfy it, so the same
// repository type serves plain reads and transactional writes.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// UnitOfWork runs a multi-store update atomically. fn receives a DBTX backed
// by the transaction; repositories built from it see each other's writes.
// With one open connection, fn must not call repositories bound to the
// plain *sql.DB or it will wait on itself.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

type SQLiteUnitOfWork struct {
	db *sql.DB
}

func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

// WithinTx commits when fn returns nil and rolls back otherwise, including
// on panic. Errors from fn pass through unchanged; begin and commit failures
// wrap domain.ErrPersistence.
func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w: %w", domain.ErrPersistence, err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w: %w", domain.ErrPersistence, err)
	}
	committed = true
	return nil
}
