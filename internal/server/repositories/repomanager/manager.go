package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/radar/internal/dbx"
	"github.com/dmitrijs2005/radar/internal/server/repositories/users"
)

type RepositoryManager interface {
	Dialect() dbx.Dialect
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
