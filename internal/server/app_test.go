package server

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/logging"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/archive"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/config"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDriver = config.DriverSQLite
	c.DatabaseDSN = filepath.Join(t.TempDir(), "agenda.db")
	c.EndpointAddrHTTP = "127.0.0.1:0"
	c.ShutdownTimeout = time.Second
	c.Argon2Memory = 1024
	c.Argon2Iterations = 1
	c.Argon2Parallelism = 1
	return c
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		in     string
		want   string
	}{
		{"bare path", config.DriverSQLite, "/tmp/a.db", "file:/tmp/a.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"file uri", config.DriverSQLite, "file:x.db", "file:x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"file uri with query", config.DriverSQLite, "file:x.db?mode=rwc", "file:x.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"pragmas kept", config.DriverSQLite, "file:x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(100)", "file:x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(100)"},
		{"postgres untouched", config.DriverPostgres, "postgres://h/db", "postgres://h/db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &config.Config{DatabaseDriver: tt.driver, DatabaseDSN: tt.in}
			assert.Equal(t, tt.want, dsn(c))
		})
	}
}

func TestNewApp_FileDSNEnforcesForeignKeys(t *testing.T) {
	c := sqliteConfig(t)
	c.DatabaseDSN = "file:" + filepath.Join(t.TempDir(), "fk.db")

	app, err := NewApp(context.Background(), c, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	var on int
	require.NoError(t, app.db.QueryRow("PRAGMA foreign_keys").Scan(&on))
	assert.Equal(t, 1, on)

	_, err = app.db.Exec(`INSERT INTO usuarios (nombre, email, password, creado_en) VALUES ('Ana', 'ana@example.com', 'h', '2025-01-01 00:00:00')`)
	require.NoError(t, err)
	_, err = app.db.Exec(`INSERT INTO contactos (nombre, telefono, creado_en, usuario_id) VALUES ('Luis', '1', '2025-01-01 00:00:00', 1)`)
	require.NoError(t, err)
	_, err = app.db.Exec(`DELETE FROM usuarios WHERE id = 1`)
	require.NoError(t, err)

	var n int
	require.NoError(t, app.db.QueryRow("SELECT COUNT(*) FROM contactos").Scan(&n))
	assert.Zero(t, n, "contacts must be deleted with their account")
}

func TestNewApp_SQLite(t *testing.T) {
	c := sqliteConfig(t)

	app, err := NewApp(context.Background(), c, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	resp, err := app.http.App().Test(httptest.NewRequest("GET", "/health", nil), fiber.TestConfig{Timeout: 10 * time.Second})
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)

	var n int
	require.NoError(t, app.db.QueryRow("SELECT COUNT(*) FROM usuarios").Scan(&n))
	assert.Zero(t, n)
}

func TestNewApp_RejectsInvalidConfig(t *testing.T) {
	c := sqliteConfig(t)
	c.DatabaseDriver = "mysql"

	_, err := NewApp(context.Background(), c, logging.Discard())
	assert.Error(t, err)

	c = sqliteConfig(t)
	c.DeleteConfirmation = "never"
	_, err = NewApp(context.Background(), c, logging.Discard())
	assert.Error(t, err)
}

func TestNewArchive(t *testing.T) {
	c := sqliteConfig(t)

	a, err := newArchive(context.Background(), c)
	require.NoError(t, err)
	assert.IsType(t, archive.Nop{}, a)

	c.S3Bucket = "exports"
	c.S3AccessKey = "key"
	c.S3SecretKey = "secret"
	c.S3BaseEndpoint = "http://localhost:9000"
	a, err = newArchive(context.Background(), c)
	require.NoError(t, err)
	assert.IsType(t, &archive.S3Archive{}, a)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), sqliteConfig(t), logging.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
