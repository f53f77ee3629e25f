package accounts

import (
	"context"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/dbx"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO usuarios (nombre, apellido, email, password, creado_en)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		account.Name, account.LastName, account.Email, account.PasswordHash, account.CreatedAt).Scan(&account.ID)
	if err != nil {
		return nil, translate(err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM usuarios WHERE id = $1`, id)

	a, err := scanAccount(row)
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM usuarios WHERE email = $1`, email)

	a, err := scanAccount(row)
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Account, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM usuarios ORDER BY id`)
	if err != nil {
		return nil, translate(err)
	}
	return scanAccounts(rows)
}

func (r *PostgresRepository) Update(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`UPDATE usuarios SET nombre = $1, apellido = $2, email = $3, password = $4
		 WHERE id = $5`

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

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	return checkAffected(res)
}
