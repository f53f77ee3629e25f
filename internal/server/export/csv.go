package export

import (
	"encoding/csv"
	"io"
	"strconv"
)

const timestampLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"ID", "Nombre", "Apellido", "Telefono", "Email", "Categoria", "Creado En"}

// WriteCSV writes a one-cell title record, the header, then one record per
// contact. Absent optional values are empty cells.
func WriteCSV(w io.Writer, in *Input) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{in.Title}); err != nil {
		return err
	}
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, c := range in.Contacts {
		record := []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			deref(c.LastName),
			c.Phone,
			deref(c.Email),
			in.categoryName(c.CategoryID),
			c.CreatedAt.UTC().Format(timestampLayout),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

