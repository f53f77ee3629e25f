// Package testutil provides fixtures shared by the server's package tests.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/migrations"
	_ "modernc.org/sqlite"
)

// SQLiteDSN returns a DSN for an on-disk database with foreign keys enabled.
func SQLiteDSN(path string) string {
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// NewSQLiteDB opens a fresh, fully migrated SQLite database in t.TempDir.
// A file is used instead of :memory: so every pooled connection sees the
// same data.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", SQLiteDSN(filepath.Join(t.TempDir(), "agenda.db")))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := migrations.Up(context.Background(), db, migrations.DialectSQLite); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// FixedClock returns a clock that always reports ts.
func FixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func Ptr[T any](v T) *T { return &v }
