package models

import (
	"strings"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
)

type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
}

type NewCategory struct {
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
}

func (n *NewCategory) Validate() error {
	n.Name = strings.TrimSpace(n.Name)
	n.Description = blankToNil(n.Description)
	if n.Name == "" {
		return common.NewValidationError("nombre es requerido")
	}
	return nil
}
