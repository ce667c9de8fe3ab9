package table

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// Renderer renders a table to text.
type Renderer struct {
	Color      bool
	Round      int32
	green, red *color.Color
}

// NewRenderer returns a new console renderer. Numbers are rendered
// with two decimal places.
func NewRenderer(enableColor bool) *Renderer {
	return &Renderer{
		Color: enableColor,
		Round: 2,
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed),
	}
}

// Render renders the table.
func (r *Renderer) Render(t *Table, w io.Writer) error {
	color.NoColor = !r.Color

	widths := make([]int, t.Width())
	for _, row := range t.rows {
		for i, c := range row.cells {
			if widths[i] < r.minLength(c) {
				widths[i] = r.minLength(c)
			}
		}
	}
	for _, row := range t.rows {
		if row.cells[0].isSep() {
			if err := writeString(w, "+-"); err != nil {
				return err
			}
		} else {
			if err := writeString(w, "| "); err != nil {
				return err
			}
		}
		for i, c := range row.cells {
			if err := r.renderCell(c, widths[i], w); err != nil {
				return err
			}
			if i < len(row.cells)-1 {
				if err := writeString(w, createSep(c, row.cells[i+1])); err != nil {
					return err
				}
			}
		}
		if row.cells[len(row.cells)-1].isSep() {
			if err := writeString(w, "-+\n"); err != nil {
				return err
			}
		} else {
			if err := writeString(w, " |\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) renderCell(c cell, l int, w io.Writer) error {
	switch t := c.(type) {

	case emptyCell:
		return writeSpace(w, l)

	case separatorCell:
		return writeStrings(w, "-", l)

	case textCell:
		var before int
		switch t.Align {
		case Left:
			before = 0
		case Right:
			before = l - utf8.RuneCountInString(t.Content)
		case Center:
			before = (l - utf8.RuneCountInString(t.Content)) / 2
		}
		if err := writeSpace(w, before); err != nil {
			return err
		}
		if err := writeString(w, t.Content); err != nil {
			return err
		}
		return writeSpace(w, l-before-utf8.RuneCountInString(t.Content))

	case numberCell:
		s := t.n.StringFixed(r.Round)
		before := l - utf8.RuneCountInString(s)
		if err := writeSpace(w, before); err != nil {
			return err
		}
		var err error
		switch {
		case t.n.LessThan(decimal.Zero):
			_, err = r.red.Fprint(w, s)
		case t.n.GreaterThan(decimal.Zero):
			_, err = r.green.Fprint(w, s)
		default:
			err = writeString(w, s)
		}
		return err
	}
	return fmt.Errorf("%v is not a valid cell type", c)
}

func (r *Renderer) minLength(c cell) int {
	switch t := c.(type) {
	case emptyCell, separatorCell:
		return 0
	case textCell:
		return utf8.RuneCountInString(t.Content)
	case numberCell:
		return utf8.RuneCountInString(t.n.StringFixed(r.Round))
	}
	return 0
}

func createSep(c1, c2 cell) string {
	switch {
	case c1.isSep() && c2.isSep():
		return "-+-"
	case c1.isSep():
		return "-+ "
	case c2.isSep():
		return " +-"
	default:
		return " | "
	}
}

func writeStrings(w io.Writer, s string, l int) error {
	for i := 0; i < l; i++ {
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func writeSpace(w io.Writer, l int) error {
	return writeStrings(w, " ", l)
}
