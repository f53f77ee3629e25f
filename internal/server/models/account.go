// Package models defines the records persisted by the agenda server and the
// request payloads that create or modify them.
package models

import (
	"net/mail"
	"strings"
	"time"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
)

// Account owns contacts. PasswordHash never leaves the server.
type Account struct {
	ID           int64     `json:"id"`
	Name         string    `json:"nombre"`
	LastName     *string   `json:"apellido"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"creado_en"`
}

// FullName is the name shown in export titles.
func (a *Account) FullName() string {
	return joinName(a.Name, a.LastName)
}

type NewAccount struct {
	Name     string  `json:"nombre"`
	LastName *string `json:"apellido"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
}

// Validate checks required fields and normalises the payload in place.
func (n *NewAccount) Validate() error {
	n.Name = strings.TrimSpace(n.Name)
	n.Email = NormalizeEmail(n.Email)
	n.LastName = blankToNil(n.LastName)

	if n.Name == "" || n.Email == "" || n.Password == "" {
		return common.NewValidationError("nombre, email y password son requeridos")
	}
	return ValidateEmail(n.Email)
}

// NormalizeEmail trims and lower-cases an address. Emails are stored and
// looked up in this form, so uniqueness ignores case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail accepts a bare address such as "ana@example.com".
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return common.NewValidationError("email invalido: %s", email)
	}
	return nil
}

// AccountPatch is a partial update. Absent keys leave the stored value alone.
type AccountPatch struct {
	Name     Optional[string] `json:"nombre"`
	LastName Optional[string] `json:"apellido"`
	Email    Optional[string] `json:"email"`
	Password Optional[string] `json:"password"`
}

// Apply merges everything except the password into a. The caller hashes
// Password itself.
func (p *AccountPatch) Apply(a *Account) error {
	if p.Name.Set {
		v, err := requiredString(p.Name, "nombre")
		if err != nil {
			return err
		}
		a.Name = v
	}

	if p.LastName.Set {
		a.LastName = optionalString(p.LastName)
	}

	if p.Email.Set {
		v, err := requiredString(p.Email, "email")
		if err != nil {
			return err
		}
		v = NormalizeEmail(v)
		if err := ValidateEmail(v); err != nil {
			return err
		}
		a.Email = v
	}

	if p.Password.Set && (p.Password.Null || p.Password.Value == "") {
		return common.NewValidationError("password no puede estar vacio")
	}

	return nil
}
