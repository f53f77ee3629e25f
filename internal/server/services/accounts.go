package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/cryptox"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/dbx"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/repositories/repomanager"
)

type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      cryptox.PasswordHasher
	policy      DeletePolicy
	clock       Clock
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, hasher cryptox.PasswordHasher, policy DeletePolicy) *AccountService {
	return &AccountService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		policy:      policy,
		clock:       time.Now,
	}
}

func (s *AccountService) Create(ctx context.Context, in models.NewAccount) (*models.Account, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		Name:         in.Name,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    stamp(s.clock),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		account, err = s.repomanager.Accounts(tx).Create(ctx, account)
		return err
	})
	if err != nil {
		return nil, emailConflict(err, in.Email)
	}

	return account, nil
}

func (s *AccountService) Get(ctx context.Context, id int64) (*models.Account, error) {
	account, err := s.repomanager.Accounts(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityAccount, id)
	}
	return account, nil
}

func (s *AccountService) List(ctx context.Context) ([]*models.Account, error) {
	return s.repomanager.Accounts(s.db).List(ctx)
}

// Update merges patch into the stored account. A new password is re-hashed.
func (s *AccountService) Update(ctx context.Context, id int64, patch models.AccountPatch) (*models.Account, error) {
	var account *models.Account

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return notFound(err, entityAccount, id)
		}

		if err := patch.Apply(current); err != nil {
			return err
		}

		if patch.Password.Set {
			hash, err := s.hasher.Hash(patch.Password.Value)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			current.PasswordHash = hash
		}

		account, err = repo.Update(ctx, current)
		if err != nil {
			return notFound(err, entityAccount, id)
		}
		return nil
	})
	if err != nil {
		return nil, emailConflict(err, patch.Email.Value)
	}

	return account, nil
}

// Delete removes the account. Its contacts go with it (ON DELETE CASCADE).
func (s *AccountService) Delete(ctx context.Context, id int64, confirmed bool) error {
	if err := s.policy.Check(KindAccount, confirmed); err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return notFound(s.repomanager.Accounts(tx).Delete(ctx, id), entityAccount, id)
	})
}

func emailConflict(err error, email string) error {
	if errors.Is(err, common.ErrorAlreadyExists) {
		return common.NewConflictError("el email %s ya esta registrado", email)
	}
	return err
}
