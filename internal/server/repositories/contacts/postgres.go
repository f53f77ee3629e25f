package contacts

import (
	"context"
	"fmt"

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

func (r *PostgresRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query :=
		`INSERT INTO contactos (nombre, apellido, telefono, email, creado_en, usuario_id, categoria_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		contact.Name, contact.LastName, contact.Phone, contact.Email,
		contact.CreatedAt, contact.AccountID, contact.CategoryID).Scan(&contact.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return contact, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	c, err := scanContact(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM contactos WHERE id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return c, nil
}

func (r *PostgresRepository) ListByAccount(ctx context.Context, accountID int64) ([]*models.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+columns+` FROM contactos WHERE usuario_id = $1 ORDER BY id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanContacts(rows)
}

func (r *PostgresRepository) Update(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query :=
		`UPDATE contactos
		 SET nombre = $1, apellido = $2, telefono = $3, email = $4, categoria_id = $5
		 WHERE id = $6`

	res, err := r.db.ExecContext(ctx, query,
		contact.Name, contact.LastName, contact.Phone, contact.Email, contact.CategoryID, contact.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := checkAffected(res); err != nil {
		return nil, err
	}
	return contact, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contactos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}
