package categories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgresCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	desc := "gente del trabajo"
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+categorias\s*\(nombre,\s*descripcion\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id$`).
		WithArgs("Trabajo", desc).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	got, err := repo.Create(context.Background(), &models.Category{Name: "Trabajo", Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

func TestPostgresCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+categorias`).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Category{Name: "Trabajo"})
	assert.ErrorContains(t, err, "db error: db down")
}

func TestPostgresGetByID(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`^SELECT\s+id,\s*nombre,\s*descripcion\s+FROM\s+categorias\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "descripcion"}).AddRow(int64(3), "Trabajo", nil))

	got, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, &models.Category{ID: 3, Name: "Trabajo"}, got)
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+categorias`).WithArgs(int64(4)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 4)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPostgresList(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+categorias\s+ORDER\s+BY\s+id$`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "descripcion"}).
			AddRow(int64(1), "Familia", "casa").
			AddRow(int64(2), "Trabajo", nil))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Description)
	assert.Equal(t, "casa", *got[0].Description)
	assert.Nil(t, got[1].Description)
}

func TestPostgresDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^DELETE\s+FROM\s+categorias\s+WHERE\s+id\s*=\s*\$1$`).WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^DELETE\s+FROM\s+categorias`).WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`^DELETE\s+FROM\s+categorias`).WithArgs(int64(3)).
		WillReturnError(errors.New("locked"))

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.ErrorIs(t, repo.Delete(context.Background(), 2), common.ErrorNotFound)
	assert.ErrorContains(t, repo.Delete(context.Background(), 3), "db error: locked")
}
