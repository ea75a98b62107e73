package grid

import "github.com/pbnjay/convfont"

// Labeling decides which cells become glyphs and how they are labeled. It is
// implemented by Sequential and CharacterMapped only.
type Labeling interface {
	// limit returns the most glyphs this labeling can produce.
	limit() int

	// columns returns how many cells of the given grid row are used, and
	// false once no further rows are wanted.
	columns(row, gridColumns int) (int, bool)

	// label returns the code point for the n-th emitted glyph at row, col.
	label(row, col, n int) convfont.CodePoint
}

// Sequential labels glyphs with consecutive code points in row-major order,
// starting at Start.
type Sequential struct {
	Start int

	// Max caps the number of glyphs. Zero means every cell is used.
	Max int
}

func (s Sequential) limit() int {
	if s.Max > 0 {
		return s.Max
	}
	return -1
}

func (s Sequential) columns(_, gridColumns int) (int, bool) {
	return gridColumns, true
}

func (s Sequential) label(_, _, n int) convfont.CodePoint {
	return convfont.CodePoint(s.Start + n)
}

// CharacterMapped labels the cell at row, col with Rows[row][col]. Grid
// rows without a matching character row are not used, and a row is used
// only as far as its character row reaches.
type CharacterMapped struct {
	Rows [][]rune
}

// Len returns the number of characters over all rows.
func (m CharacterMapped) Len() int {
	n := 0
	for _, r := range m.Rows {
		n += len(r)
	}
	return n
}

func (m CharacterMapped) limit() int {
	return m.Len()
}

func (m CharacterMapped) columns(row, gridColumns int) (int, bool) {
	if row >= len(m.Rows) {
		return 0, false
	}
	return min(gridColumns, len(m.Rows[row])), true
}

func (m CharacterMapped) label(row, col, _ int) convfont.CodePoint {
	return convfont.CodePoint(m.Rows[row][col])
}

// Limit returns the maximum number of glyphs Extract emits for the layout
// and labeling. Fewer may be emitted when a character map's rows are
// shorter than the grid.
func Limit(l *Layout, m Labeling) int {
	total := l.Total()
	if n := m.limit(); n >= 0 && n < total {
		return n
	}
	return total
}
