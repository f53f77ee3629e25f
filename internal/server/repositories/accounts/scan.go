package accounts

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/dbx"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
)

const columns = `id, nombre, apellido, email, password, creado_en`

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (*models.Account, error) {
	a := &models.Account{}
	if err := row.Scan(&a.ID, &a.Name, &a.LastName, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

func scanAccounts(rows *sql.Rows) ([]*models.Account, error) {
	defer rows.Close()

	list := make([]*models.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return common.ErrorNotFound
	case dbx.IsUniqueViolation(err):
		return common.ErrorAlreadyExists
	default:
		return fmt.Errorf("db error: %w", err)
	}
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
