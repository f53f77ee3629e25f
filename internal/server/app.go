// Package server wires configuration, storage, services and the HTTP
// transport together and runs them until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/cryptox"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/logging"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/archive"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/config"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/repositories/repomanager"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/rest"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   *rest.HTTPServer
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	policy, err := services.ParseDeletePolicy(c.DeleteConfirmation)
	if err != nil {
		return nil, err
	}

	rm, err := repomanager.New(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}

	db, err := sqlOpen(c.DatabaseDriver, dsn(c))
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	arch, err := newArchive(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	hasher := &cryptox.Argon2{
		Memory:      c.Argon2Memory,
		Iterations:  c.Argon2Iterations,
		Parallelism: c.Argon2Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	}

	svc := rest.Services{
		Accounts:   services.NewAccountService(db, rm, hasher, policy),
		Categories: services.NewCategoryService(db, rm, policy),
		Contacts:   services.NewContactService(db, rm, policy),
		Auth:       services.NewAuthService(db, rm, hasher),
		Exports:    services.NewExportService(db, rm, arch, logger),
		Ping:       db.PingContext,
	}

	return &App{
		config: c,
		logger: logger,
		db:     db,
		http:   rest.NewHTTPServer(c.EndpointAddrHTTP, logger, svc, c.ShutdownTimeout),
	}, nil
}

func newArchive(ctx context.Context, c *config.Config) (archive.Archive, error) {
	if !c.ArchiveEnabled() {
		return archive.Nop{}, nil
	}

	a, err := archive.NewS3Archive(ctx, archive.Settings{
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
		BaseEndpoint: c.S3BaseEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("export archive init error: %w", err)
	}
	return a, nil
}

// dsn makes sure a SQLite DSN enables foreign keys (cascades depend on it)
// and a busy timeout. Bare paths get the file: prefix. Other drivers pass
// through.
func dsn(c *config.Config) string {
	if c.DatabaseDriver != config.DriverSQLite {
		return c.DatabaseDSN
	}

	out := c.DatabaseDSN
	if !strings.HasPrefix(out, "file:") {
		out = "file:" + out
	}

	for _, pragma := range []struct{ name, value string }{
		{"foreign_keys", "_pragma=foreign_keys(1)"},
		{"busy_timeout", "_pragma=busy_timeout(5000)"},
	} {
		if strings.Contains(out, "_pragma="+pragma.name) {
			continue
		}
		sep := "?"
		if strings.Contains(out, "?") {
			sep = "&"
		}
		out += sep + pragma.value
	}

	return out
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until ctx is cancelled or a termination signal arrives,
// then closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "driver", app.config.DatabaseDriver, "archive", app.config.ArchiveEnabled())

	app.initSignalHandler(cancelFunc)

	err := app.http.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, "http server stopped", "error", err.Error())
	}

	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(ctx, "db close failed", "error", cerr.Error())
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
