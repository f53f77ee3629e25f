package services

import (
	"strings"

	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// foldName normalises s for case-insensitive comparison: NFC first, so a
// precomposed "í" and "i"+U+0301 compare equal, then Unicode case folding.
func foldName(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// FilterByName keeps the contacts whose display name contains query,
// ignoring case. Input order is preserved; the result is never nil.
func FilterByName(contacts []*models.Contact, query string) []*models.Contact {
	needle := foldName(query)

	matches := make([]*models.Contact, 0)
	for _, c := range contacts {
		if strings.Contains(foldName(c.DisplayName()), needle) {
			matches = append(matches, c)
		}
	}
	return matches
}
