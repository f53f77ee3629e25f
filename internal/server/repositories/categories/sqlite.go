package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
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

func (r *SQLiteRepository) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO categorias (nombre, descripcion) VALUES (?, ?)`,
		category.Name, category.Description)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	category.ID = id
	return category, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	c := &models.Category{}
	err := r.db.QueryRowContext(ctx, `SELECT id, nombre, descripcion FROM categorias WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, nombre, descripcion FROM categorias ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanCategories(rows)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categorias WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}
