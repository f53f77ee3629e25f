// Package accounts stores usuarios rows.
package accounts

import (
	"context"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
)

// Repository persists accounts. Missing rows are reported as
// common.ErrorNotFound and duplicate emails as common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	List(ctx context.Context) ([]*models.Account, error)
	Update(ctx context.Context, account *models.Account) (*models.Account, error)
	Delete(ctx context.Context, id int64) error
}
