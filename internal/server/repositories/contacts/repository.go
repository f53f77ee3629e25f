// Package contacts stores contactos rows.
package contacts

import (
	"context"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	GetByID(ctx context.Context, id int64) (*models.Contact, error)
	// ListByAccount returns the account's contacts ordered by id.
	ListByAccount(ctx context.Context, accountID int64) ([]*models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	Delete(ctx context.Context, id int64) error
}
