// Package services implements the agenda use cases on top of the
// repositories. Every operation runs inside one transaction.
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
)

// Clock returns the current time.
type Clock func() time.Time

// stamp returns a creation timestamp both backends can store losslessly.
func stamp(c Clock) time.Time {
	return c().UTC().Truncate(time.Microsecond)
}

// DeletePolicy decides which delete operations need {"confirmar": true}.
type DeletePolicy int

const (
	// ConfirmContactDeletes gates only contact deletion.
	ConfirmContactDeletes DeletePolicy = iota
	// ConfirmAllDeletes gates account, category and contact deletion alike.
	ConfirmAllDeletes
)

// ParseDeletePolicy maps the configuration value ("contacts" or "all").
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch s {
	case "", "contacts":
		return ConfirmContactDeletes, nil
	case "all":
		return ConfirmAllDeletes, nil
	default:
		return 0, fmt.Errorf("unknown delete policy %q", s)
	}
}

// Kind of entity a delete targets.
type Kind int

const (
	KindAccount Kind = iota
	KindCategory
	KindContact
)

// Check returns a ValidationError when the policy requires confirmation for
// kind and confirmed is false.
func (p DeletePolicy) Check(kind Kind, confirmed bool) error {
	if confirmed {
		return nil
	}
	if kind == KindContact || p == ConfirmAllDeletes {
		return common.NewValidationError(`se requiere confirmacion: envie {"confirmar": true}`)
	}
	return nil
}

// notFound turns a bare repository ErrorNotFound into a NotFoundError naming
// the entity. Other errors pass through.
func notFound(err error, entity string, id int64) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.NewNotFoundError(entity, id)
	}
	return err
}

const (
	entityAccount  = "usuario"
	entityCategory = "categoria"
	entityContact  = "contacto"
)
