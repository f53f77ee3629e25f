package models

import (
	"strings"
	"time"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
)

// Contact belongs to exactly one account and at most one category.
type Contact struct {
	ID         int64     `json:"id"`
	Name       string    `json:"nombre"`
	LastName   *string   `json:"apellido"`
	Phone      string    `json:"telefono"`
	Email      *string   `json:"email"`
	CreatedAt  time.Time `json:"creado_en"`
	AccountID  int64     `json:"usuario_id"`
	CategoryID *int64    `json:"categoria_id"`
}

// DisplayName is "nombre apellido", or just nombre when there is no apellido.
// Search and the PDF export both work on it.
func (c *Contact) DisplayName() string {
	return joinName(c.Name, c.LastName)
}

type NewContact struct {
	Name       string      `json:"nombre"`
	LastName   *string     `json:"apellido"`
	Phone      string      `json:"telefono"`
	Email      *string     `json:"email"`
	CategoryID CategoryRef `json:"categoria_id"`
}

func (n *NewContact) Validate() error {
	n.Name = strings.TrimSpace(n.Name)
	n.Phone = strings.TrimSpace(n.Phone)
	n.LastName = blankToNil(n.LastName)
	n.Email = blankToNil(n.Email)

	if n.Name == "" || n.Phone == "" {
		return common.NewValidationError("nombre y telefono son requeridos")
	}
	return nil
}

// Contact builds the record to insert for the given owner.
func (n *NewContact) Contact(accountID int64) *Contact {
	return &Contact{
		Name:       n.Name,
		LastName:   n.LastName,
		Phone:      n.Phone,
		Email:      n.Email,
		AccountID:  accountID,
		CategoryID: n.CategoryID.ID,
	}
}

// ContactPatch is a partial update of a contact.
type ContactPatch struct {
	Name       Optional[string] `json:"nombre"`
	LastName   Optional[string] `json:"apellido"`
	Phone      Optional[string] `json:"telefono"`
	Email      Optional[string] `json:"email"`
	CategoryID CategoryRef      `json:"categoria_id"`
}

// Apply merges the patch into c. A category id is copied as-is; checking
// that it exists is up to the caller.
func (p *ContactPatch) Apply(c *Contact) error {
	if p.Name.Set {
		v, err := requiredString(p.Name, "nombre")
		if err != nil {
			return err
		}
		c.Name = v
	}

	if p.Phone.Set {
		v, err := requiredString(p.Phone, "telefono")
		if err != nil {
			return err
		}
		c.Phone = v
	}

	if p.LastName.Set {
		c.LastName = optionalString(p.LastName)
	}

	if p.Email.Set {
		c.Email = optionalString(p.Email)
	}

	if p.CategoryID.Set {
		c.CategoryID = p.CategoryID.ID
	}

	return nil
}
