package contacts

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
)

const columns = `id, nombre, apellido, telefono, email, creado_en, usuario_id, categoria_id`

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(row scanner) (*models.Contact, error) {
	c := &models.Contact{}
	err := row.Scan(&c.ID, &c.Name, &c.LastName, &c.Phone, &c.Email, &c.CreatedAt, &c.AccountID, &c.CategoryID)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func scanContacts(rows *sql.Rows) ([]*models.Contact, error) {
	defer rows.Close()

	list := make([]*models.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
