// Package repomanager provides a dialect-aware RepositoryManager, wiring
// together repository constructors, database migrations (via goose) and
// opening the connection pool for the configured driver.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/radar/internal/dbx"
	"github.com/dmitrijs2005/radar/internal/server/migrations"
	"github.com/dmitrijs2005/radar/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLRepositoryManager vends SQL-backed repository implementations for one
// dialect and exposes a schema migration hook.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
}

// NewSQLRepositoryManager constructs a RepositoryManager for dialect.
func NewSQLRepositoryManager(dialect dbx.Dialect) (RepositoryManager, error) {
	if dialect.DriverName() == "" {
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	return &SQLRepositoryManager{dialect: dialect}, nil
}

func (m *SQLRepositoryManager) Dialect() dbx.Dialect {
	return m.dialect
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db, m.dialect)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func gooseDialect(d dbx.Dialect) string {
	if d == dbx.SQLite {
		return "sqlite3"
	}
	return "pgx"
}

// RunMigrations points goose at the embedded migrations of the manager's
// dialect and applies the pending ones.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	sub, err := fs.Sub(migrations.Migrations, string(m.dialect))
	if err != nil {
		return fmt.Errorf("migrations for %s: %w", m.dialect, err)
	}

	goose.SetBaseFS(sub)
	if err := goose.SetDialect(gooseDialect(m.dialect)); err != nil {
		return err
	}

	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// Open creates the connection pool for dialect and verifies the store is
// reachable.
func Open(ctx context.Context, dialect dbx.Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if dialect == dbx.SQLite {
		// sqlite allows a single writer; one pooled connection avoids SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return db, nil
}
