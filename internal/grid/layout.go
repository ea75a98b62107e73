// Package grid slices a glyph sheet image into fixed size cells and turns
// each cell into a labeled convfont.Glyph.
package grid

import (
	"fmt"
	"image"

	"github.com/pbnjay/convfont"
)

// Params describes how glyph cells are arranged on the sheet.
type Params struct {
	GlyphWidth, GlyphHeight int

	// XPad and YPad offset the top-left corner of the grid from the image
	// origin.
	XPad, YPad int

	// XCellPad and YCellPad are the gaps between adjacent cells.
	XCellPad, YCellPad int
}

// Layout is the cell grid computed for one image. Build it with NewLayout.
type Layout struct {
	Params
	Columns, Rows int
}

// NewLayout computes the grid for an image of the given size. It fails with
// convfont.ErrInvalidLayout if not even a single cell fits.
func NewLayout(width, height int, p Params) (*Layout, error) {
	if p.GlyphWidth <= 0 || p.GlyphHeight <= 0 {
		return nil, fmt.Errorf("%w: glyph size %dx%d", convfont.ErrInvalidParameter, p.GlyphWidth, p.GlyphHeight)
	}
	if p.XPad < 0 || p.YPad < 0 || p.XCellPad < 0 || p.YCellPad < 0 {
		return nil, fmt.Errorf("%w: negative padding", convfont.ErrInvalidParameter)
	}

	usableWidth := width - p.XPad
	usableHeight := height - p.YPad
	if usableWidth < p.GlyphWidth || usableHeight < p.GlyphHeight {
		return nil, fmt.Errorf("%w: image dimensions (%dx%d) minus padding (%dx%d) are smaller than glyph dimensions (%dx%d)",
			convfont.ErrInvalidLayout, width, height, p.XPad, p.YPad, p.GlyphWidth, p.GlyphHeight)
	}

	l := &Layout{
		Params:  p,
		Columns: 1 + (usableWidth-p.GlyphWidth)/(p.GlyphWidth+p.XCellPad),
		Rows:    1 + (usableHeight-p.GlyphHeight)/(p.GlyphHeight+p.YCellPad),
	}
	if err := l.check(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Layout) check() error {
	if l == nil {
		return fmt.Errorf("%w: no layout", convfont.ErrInvalidLayout)
	}
	if l.Columns <= 0 || l.Rows <= 0 || l.GlyphWidth <= 0 || l.GlyphHeight <= 0 {
		return fmt.Errorf("%w: %d columns x %d rows of %dx%d glyphs",
			convfont.ErrInvalidLayout, l.Columns, l.Rows, l.GlyphWidth, l.GlyphHeight)
	}
	return nil
}

// Total returns the number of cells in the grid.
func (l *Layout) Total() int {
	return l.Columns * l.Rows
}

// Origin returns the top-left pixel of the cell at row, col, relative to
// the image origin.
func (l *Layout) Origin(row, col int) image.Point {
	return image.Point{
		X: l.XPad + col*(l.GlyphWidth+l.XCellPad),
		Y: l.YPad + row*(l.GlyphHeight+l.YCellPad),
	}
}

// Cell returns the rectangle covered by the cell at row, col. It may extend
// past the image bounds.
func (l *Layout) Cell(row, col int) image.Rectangle {
	o := l.Origin(row, col)
	return image.Rectangle{Min: o, Max: o.Add(image.Pt(l.GlyphWidth, l.GlyphHeight))}
}
