// Package categories stores categorias rows.
package categories

import (
	"context"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	Delete(ctx context.Context, id int64) error
}
