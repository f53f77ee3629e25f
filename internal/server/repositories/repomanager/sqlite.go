package repomanager

import (
	"context"
	"database/sql"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/dbx"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/migrations"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/repositories/accounts"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/repositories/categories"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/repositories/contacts"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Categories(db dbx.DBTX) categories.Repository {
	return categories.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Contacts(db dbx.DBTX) contacts.Repository {
	return contacts.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrateUp(ctx, db, migrations.DialectSQLite)
}
