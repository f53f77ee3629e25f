// Package export renders an account's contacts as downloadable documents.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
)

type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat accepts "csv" or "pdf" in any case. Empty means csv.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", common.NewValidationError("formato no soportado: %q (use csv o pdf)", raw)
	}
}

func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// Input is everything a renderer needs. Contacts are rendered in slice order.
type Input struct {
	AccountID  int64
	Title      string
	Contacts   []*models.Contact
	Categories map[int64]string
}

// NewInput titles the export after the account.
func NewInput(account *models.Account, contacts []*models.Contact, categories []*models.Category) *Input {
	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return &Input{
		AccountID:  account.ID,
		Title:      "Contactos de " + account.FullName(),
		Contacts:   contacts,
		Categories: names,
	}
}

func (in *Input) categoryName(id *int64) string {
	if id == nil {
		return ""
	}
	return in.Categories[*id]
}

type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Render produces the document for f.
func Render(f Format, in *Input) (*Document, error) {
	var buf bytes.Buffer

	var err error
	switch f {
	case FormatCSV:
		err = WriteCSV(&buf, in)
	case FormatPDF:
		err = WritePDF(&buf, in)
	default:
		return nil, common.NewValidationError("formato no soportado: %q (use csv o pdf)", string(f))
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", f, err)
	}

	return &Document{
		Filename:    fmt.Sprintf("contactos_%d.%s", in.AccountID, f),
		ContentType: f.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}
