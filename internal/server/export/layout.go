package export

import (
	"github.com/Focus0Wizard/backEnd-ContactList/internal/common"
	"github.com/Focus0Wizard/backEnd-ContactList/internal/server/models"
)

// Page geometry in points, origin at the top-left corner of a Letter page.
const (
	PageWidth    = 612.0
	PageHeight   = 792.0
	TopMargin    = 50.0
	BottomMargin = 50.0

	TitleY    = 50.0
	HeaderY   = 80.0
	FirstRowY = 100.0
	RowStep   = 20.0

	ColName  = 50.0
	ColPhone = 250.0
	ColEmail = 400.0
)

// Cursor hands out the vertical position of successive rows and decides
// when a new page is needed. Title and header exist on page one only, so
// continuation pages start at the top margin.
type Cursor struct {
	page int
	y    float64
}

func NewCursor() *Cursor {
	return &Cursor{page: 1, y: FirstRowY}
}

// Next returns the page and baseline for the next row. When the cursor has
// passed the bottom margin a page break happens first.
func (c *Cursor) Next() (page int, y float64) {
	if c.y > PageHeight-BottomMargin {
		c.page++
		c.y = TopMargin
	}
	page, y = c.page, c.y
	c.y += RowStep
	return page, y
}

// Page is the current page number, starting at 1.
func (c *Cursor) Page() int {
	return c.page
}

// Row is one contact line placed on a page.
type Row struct {
	Page  int
	Y     float64
	Name  string
	Phone string
	Email string
}

// Layout places every contact, in order, and reports the page count.
func Layout(contacts []*models.Contact) (rows []Row, pages int) {
	cur := NewCursor()
	rows = make([]Row, 0, len(contacts))

	for _, c := range contacts {
		page, y := cur.Next()

		email := common.PlaceholderNotAvailable
		if c.Email != nil && *c.Email != "" {
			email = *c.Email
		}

		rows = append(rows, Row{Page: page, Y: y, Name: c.DisplayName(), Phone: c.Phone, Email: email})
	}

	return rows, cur.Page()
}
