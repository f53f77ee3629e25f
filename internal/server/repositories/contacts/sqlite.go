package contacts

import (
	"context"
	"fmt"

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

func (r *SQLiteRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query :=
		`INSERT INTO contactos (nombre, apellido, telefono, email, creado_en, usuario_id, categoria_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		contact.Name, contact.LastName, contact.Phone, contact.Email,
		contact.CreatedAt, contact.AccountID, contact.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	contact.ID = id

	return contact, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	c, err := scanContact(r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM contactos WHERE id = ?`, id))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return c, nil
}

func (r *SQLiteRepository) ListByAccount(ctx context.Context, accountID int64) ([]*models.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+columns+` FROM contactos WHERE usuario_id = ? ORDER BY id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanContacts(rows)
}

func (r *SQLiteRepository) Update(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query :=
		`UPDATE contactos
		 SET nombre = ?, apellido = ?, telefono = ?, email = ?, categoria_id = ?
		 WHERE id = ?`

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

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contactos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}
