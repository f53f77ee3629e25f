// Package repomanager vends repositories for a concrete database backend,
// bound either to the pool or to an open transaction.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/dbx"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/migrations"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/repositories/accounts"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/repositories/categories"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/repositories/contacts"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Categories(db dbx.DBTX) categories.Repository
	Contacts(db dbx.DBTX) contacts.Repository
}

// migrateUp is a seam for tests.
var migrateUp = migrations.Up

// New returns the manager for a database/sql driver name ("pgx" or "sqlite").
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case "pgx":
		return NewPostgresRepositoryManager(), nil
	case "sqlite":
		return NewSQLiteRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
