package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/dbx"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/repositories/repomanager"
)

type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	policy      DeletePolicy
	clock       Clock
}

func NewContactService(db *sql.DB, m repomanager.RepositoryManager, policy DeletePolicy) *ContactService {
	return &ContactService{db: db, repomanager: m, policy: policy, clock: time.Now}
}

// Create adds a contact to the account. The account and, when given, the
// category must exist.
func (s *ContactService) Create(ctx context.Context, accountID int64, in models.NewContact) (*models.Contact, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	contact := in.Contact(accountID)
	contact.CreatedAt = stamp(s.clock)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.accountExists(ctx, tx, accountID); err != nil {
			return err
		}
		if err := s.categoryExists(ctx, tx, contact.CategoryID); err != nil {
			return err
		}

		var err error
		contact, err = s.repomanager.Contacts(tx).Create(ctx, contact)
		return err
	})
	if err != nil {
		return nil, err
	}

	return contact, nil
}

func (s *ContactService) Get(ctx context.Context, id int64) (*models.Contact, error) {
	contact, err := s.repomanager.Contacts(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityContact, id)
	}
	return contact, nil
}

// ListByAccount returns the account's contacts in id order.
func (s *ContactService) ListByAccount(ctx context.Context, accountID int64) ([]*models.Contact, error) {
	var list []*models.Contact

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.accountExists(ctx, tx, accountID); err != nil {
			return err
		}

		var err error
		list, err = s.repomanager.Contacts(tx).ListByAccount(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Search returns the account's contacts whose display name contains query,
// ignoring case. No match is an empty, non-nil slice.
func (s *ContactService) Search(ctx context.Context, accountID int64, query string) ([]*models.Contact, error) {
	if strings.TrimSpace(query) == "" {
		return nil, common.NewValidationError("el parametro nombre es requerido")
	}

	list, err := s.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return FilterByName(list, strings.TrimSpace(query)), nil
}

// Update merges patch into the stored contact. A category set to an id is
// checked inside the same transaction.
func (s *ContactService) Update(ctx context.Context, id int64, patch models.ContactPatch) (*models.Contact, error) {
	var contact *models.Contact

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Contacts(tx)

		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return notFound(err, entityContact, id)
		}

		if err := patch.Apply(current); err != nil {
			return err
		}

		if patch.CategoryID.Set {
			if err := s.categoryExists(ctx, tx, current.CategoryID); err != nil {
				return err
			}
		}

		contact, err = repo.Update(ctx, current)
		if err != nil {
			return notFound(err, entityContact, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return contact, nil
}

// Delete removes a contact. Contacts always require confirmed == true.
func (s *ContactService) Delete(ctx context.Context, id int64, confirmed bool) error {
	if err := s.policy.Check(KindContact, confirmed); err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return notFound(s.repomanager.Contacts(tx).Delete(ctx, id), entityContact, id)
	})
}

func (s *ContactService) accountExists(ctx context.Context, tx dbx.DBTX, id int64) error {
	_, err := s.repomanager.Accounts(tx).GetByID(ctx, id)
	return notFound(err, entityAccount, id)
}

func (s *ContactService) categoryExists(ctx context.Context, tx dbx.DBTX, id *int64) error {
	if id == nil {
		return nil
	}
	_, err := s.repomanager.Categories(tx).GetByID(ctx, *id)
	return notFound(err, entityCategory, *id)
}
