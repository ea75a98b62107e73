// Package convfont holds the glyph model shared by the convfont tools and a
// writer for the convfont text format, a simple line-oriented description of
// a fixed width bitmap font:
//
//	convfont
//	Height: 8
//	Fixed width: 5
//	Font data:
//
//	Code point: 'A'
//	Data:
//	  #
//	 # #
//	...
//
// See cmd/convfont for a tool that slices a glyph sheet image into this
// format, and cmd/bdf2convfont for one that converts BDF fonts.
package convfont

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// CodePoint labels a glyph. For glyphs labeled from a character map it is
// the character's rune value.
type CodePoint int

// String renders c the way it appears after "Code point:" in the output.
// Printable ASCII is quoted as a character, everything else is a decimal
// integer.
func (c CodePoint) String() string {
	if c >= 32 && c <= 126 {
		return "'" + string(rune(c)) + "'"
	}
	return strconv.Itoa(int(c))
}

// Bitmap is a glyph raster stored row by row; true means ink.
type Bitmap [][]bool

// NewBitmap returns an empty w x h bitmap.
func NewBitmap(w, h int) Bitmap {
	b := make(Bitmap, h)
	for y := range b {
		b[y] = make([]bool, w)
	}
	return b
}

// ParseBitmap builds a bitmap from rows of text where '#' or 'X' marks ink.
// Rows shorter than the longest one are padded with blanks.
func ParseBitmap(rows ...string) Bitmap {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	b := NewBitmap(w, len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			b[y][x] = r[x] == '#' || r[x] == 'X'
		}
	}
	return b
}

// Width returns the length of the longest row.
func (b Bitmap) Width() int {
	w := 0
	for _, row := range b {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Height returns the number of rows.
func (b Bitmap) Height() int {
	return len(b)
}

// At reports whether (x, y) is inked. Coordinates outside the bitmap are
// never inked.
func (b Bitmap) At(x, y int) bool {
	if y < 0 || y >= len(b) || x < 0 || x >= len(b[y]) {
		return false
	}
	return b[y][x]
}

// Line renders row y as exactly w characters of '#' and ' '.
func (b Bitmap) Line(y, w int) string {
	var sb strings.Builder
	sb.Grow(w)
	for x := 0; x < w; x++ {
		if b.At(x, y) {
			sb.WriteByte('#')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// String renders the whole bitmap, one line per row.
func (b Bitmap) String() string {
	w := b.Width()
	lines := make([]string, len(b))
	for y := range b {
		lines[y] = b.Line(y, w)
	}
	return strings.Join(lines, "\n")
}

// Drawable is an interface which supports setting an x,y coordinate to a
// color. *image.RGBA and friends satisfy it.
type Drawable interface {
	Set(x, y int, c color.Color)
}

// Draw paints the bitmap into dr with its top-left corner at x,y.
// Drawable.Set is called for each inked pixel, leaving all other pixels in
// the Drawable as-is.
func (b Bitmap) Draw(dr Drawable, x, y int, clr color.Color) {
	for yy, row := range b {
		for xx, set := range row {
			if set {
				dr.Set(x+xx, y+yy, clr)
			}
		}
	}
}

// Glyph is a single labeled entry of a font.
type Glyph struct {
	CodePoint CodePoint
	Bitmap    Bitmap
}

func (g Glyph) String() string {
	return fmt.Sprintf("%s\n%s", g.CodePoint, g.Bitmap)
}
