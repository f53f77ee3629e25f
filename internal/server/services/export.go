package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/dbx"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/logging"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/archive"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/export"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/repositories/repomanager"
)

type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	archive     archive.Archive
	log         logging.Logger
}

func NewExportService(db *sql.DB, m repomanager.RepositoryManager, a archive.Archive, log logging.Logger) *ExportService {
	if a == nil {
		a = archive.Nop{}
	}
	return &ExportService{db: db, repomanager: m, archive: a, log: log.With("module", "export")}
}

// Export renders all contacts of an account in the requested format
// ("csv" or "pdf", default csv). An account without contacts is NotFound.
// Archiving is best effort and never fails the export.
func (s *ExportService) Export(ctx context.Context, accountID int64, rawFormat string) (*export.Document, error) {
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return nil, err
	}

	var (
		account    *models.Account
		contacts   []*models.Contact
		categories []*models.Category
	)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error

		account, err = s.repomanager.Accounts(tx).GetByID(ctx, accountID)
		if err != nil {
			return notFound(err, entityAccount, accountID)
		}

		contacts, err = s.repomanager.Contacts(tx).ListByAccount(ctx, accountID)
		if err != nil {
			return err
		}
		if len(contacts) == 0 {
			return &common.NotFoundError{
				Entity:  entityContact,
				ID:      accountID,
				Message: fmt.Sprintf("el usuario %d no tiene contactos para exportar", accountID),
			}
		}

		categories, err = s.repomanager.Categories(tx).List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	doc, err := export.Render(format, export.NewInput(account, contacts, categories))
	if err != nil {
		return nil, err
	}

	key, err := s.archive.Store(ctx, accountID, doc)
	if err != nil {
		s.log.Warn(ctx, "export archive failed", "account_id", accountID, "file", doc.Filename, "error", err)
	} else if key != "" {
		s.log.Debug(ctx, "export archived", "account_id", accountID, "key", key)
	}

	return doc, nil
}
