package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/cryptox"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/repositories/repomanager"
)

// ErrInvalidCredentials is returned for an unknown email and for a wrong
// password alike.
var ErrInvalidCredentials = fmt.Errorf("credenciales invalidas: %w", common.ErrorUnauthorized)

type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      cryptox.PasswordHasher

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher cryptox.PasswordHasher) *AuthService {
	return &AuthService{db: db, repomanager: m, hasher: hasher}
}

// Login checks email and password and returns the matching account.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Account, error) {
	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, common.NewValidationError("email y password son requeridos")
	}

	account, err := s.repomanager.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.burnVerify(password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password for account %d: %w", account.ID, err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// burnVerify spends the same work as a real verification so unknown emails
// cannot be told apart by response time.
func (s *AuthService) burnVerify(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("agenda-dummy-password")
	})
	if s.dummyHash != "" {
		_, _ = s.hasher.Verify(password, s.dummyHash)
	}
}
