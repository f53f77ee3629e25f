package services

import (
	"context"
	"database/sql"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/dbx"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/repositories/repomanager"
)

type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	policy      DeletePolicy
}

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager, policy DeletePolicy) *CategoryService {
	return &CategoryService{db: db, repomanager: m, policy: policy}
}

func (s *CategoryService) Create(ctx context.Context, in models.NewCategory) (*models.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	category := &models.Category{Name: in.Name, Description: in.Description}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		category, err = s.repomanager.Categories(tx).Create(ctx, category)
		return err
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.repomanager.Categories(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, entityCategory, id)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.repomanager.Categories(s.db).List(ctx)
}

// Delete removes the category; contacts pointing at it keep existing with
// no category (ON DELETE SET NULL).
func (s *CategoryService) Delete(ctx context.Context, id int64, confirmed bool) error {
	if err := s.policy.Check(KindCategory, confirmed); err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return notFound(s.repomanager.Categories(tx).Delete(ctx, id), entityCategory, id)
	})
}
