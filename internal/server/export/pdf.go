package export

import (
	"io"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// compressPDF is switched off by tests that look at the raw content stream.
var compressPDF = true

// WritePDF draws the title and column header on page one, then the rows
// placed by Layout.
func WritePDF(w io.Writer, in *Input) error {
	pdf, err := buildPDF(in)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func buildPDF(in *Input) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCompression(compressPDF)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(in.Title, true)

	// core fonts are cp1252; translate so accented names survive
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.Text(ColName, TitleY, tr(in.Title))

	pdf.SetFont(fontFamily, "B", 11)
	pdf.Text(ColName, HeaderY, "Nombre")
	pdf.Text(ColPhone, HeaderY, "Telefono")
	pdf.Text(ColEmail, HeaderY, "Email")

	pdf.SetFont(fontFamily, "", 10)

	rows, _ := Layout(in.Contacts)
	for _, row := range rows {
		for pdf.PageNo() < row.Page {
			pdf.AddPage()
			pdf.SetFont(fontFamily, "", 10)
		}
		pdf.Text(ColName, row.Y, tr(row.Name))
		pdf.Text(ColPhone, row.Y, tr(row.Phone))
		pdf.Text(ColEmail, row.Y, tr(row.Email))
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	return pdf, nil
}
