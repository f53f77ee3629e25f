package services

import (
	"context"
	"database/sql"
	"strconv"
	"testing"
	"time"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/cryptox"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/logging"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/export"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/repositories/repomanager"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/testutil"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	db         *sql.DB
	hasher     *cryptox.Argon2
	archive    *fakeArchive
	accounts   *AccountService
	categories *CategoryService
	contacts   *ContactService
	exports    *ExportService
	auth       *AuthService
}

func cheapHasher() *cryptox.Argon2 {
	return &cryptox.Argon2{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}
}

func newFixture(t *testing.T, policy DeletePolicy) *fixture {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	m := repomanager.NewSQLiteRepositoryManager()
	h := cheapHasher()
	a := &fakeArchive{}

	f := &fixture{
		db:         db,
		hasher:     h,
		archive:    a,
		accounts:   NewAccountService(db, m, h, policy),
		categories: NewCategoryService(db, m, policy),
		contacts:   NewContactService(db, m, policy),
		exports:    NewExportService(db, m, a, logging.Discard()),
		auth:       NewAuthService(db, m, h),
	}
	f.accounts.clock = testutil.FixedClock(fixedNow)
	f.contacts.clock = testutil.FixedClock(fixedNow)

	return f
}

func (f *fixture) account(t *testing.T, name, email string) *models.Account {
	t.Helper()
	a, err := f.accounts.Create(context.Background(), models.NewAccount{Name: name, Email: email, Password: "secreto"})
	require.NoError(t, err)
	return a
}

func (f *fixture) contact(t *testing.T, accountID int64, in models.NewContact) *models.Contact {
	t.Helper()
	c, err := f.contacts.Create(context.Background(), accountID, in)
	require.NoError(t, err)
	return c
}

type fakeArchive struct {
	calls []string
	err   error
}

func (a *fakeArchive) Store(ctx context.Context, accountID int64, doc *export.Document) (string, error) {
	a.calls = append(a.calls, doc.Filename)
	if a.err != nil {
		return "", a.err
	}
	return "exports/" + doc.Filename, nil
}

func ptr[T any](v T) *T { return &v }

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
