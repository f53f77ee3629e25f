package accounts

import (
	"context"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/dbx"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO usuarios (nombre, apellido, email, password, creado_en)
		 VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		account.Name, account.LastName, account.Email, account.PasswordHash, account.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, translate(err)
	}
	account.ID = id

	return account, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM usuarios WHERE id = ?`, id)

	a, err := scanAccount(row)
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM usuarios WHERE email = ?`, email)

	a, err := scanAccount(row)
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM usuarios ORDER BY id`)
	if err != nil {
		return nil, translate(err)
	}
	return scanAccounts(rows)
}

func (r *SQLiteRepository) Update(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`UPDATE usuarios SET nombre = ?, apellido = ?, email = ?, password = ?
		 WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		account.Name, account.LastName, account.Email, account.PasswordHash, account.ID)
	if err != nil {
		return nil, translate(err)
	}
	if err := checkAffected(res); err != nil {
		return nil, err
	}
	return account, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM usuarios WHERE id = ?`, id)
	if err != nil {
		return translate(err)
	}
	return checkAffected(res)
}
