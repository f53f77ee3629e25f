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

type PostgresRepository struct {
	db dbx.DBTX
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, category *models.Category) (*models.Category, error) {
	query :=
		`INSERT INTO categorias (nombre, descripcion)
		 VALUES ($1, $2)
		 RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, category.Name, category.Description).Scan(&category.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return category, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	c := &models.Category{}
	err := r.db.QueryRowContext(ctx, `SELECT id, nombre, descripcion FROM categorias WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, nombre, descripcion FROM categorias ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return scanCategories(rows)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return checkAffected(res)
}

func scanCategories(rows *sql.Rows) ([]*models.Category, error) {
	defer rows.Close()

	list := make([]*models.Category, 0)
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
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
