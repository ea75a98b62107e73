package grid

import (
	"fmt"
	"image"
	"image/color"
	"iter"

	"github.com/pbnjay/convfont"
)

// Ink reports whether a pixel counts as set: it must be more than half
// opaque and darker than mid-grey. The threshold is fixed so that faint and
// light pixels always read as blank.
func Ink(c color.Color) bool {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.A > 128 && (int(n.R)+int(n.G)+int(n.B))/3 < 128
}

// Extract returns the glyphs of img in row-major order. The sequence is
// produced lazily from img and may be ranged over more than once.
//
// Cells are read relative to img.Bounds().Min. Pixels of a cell that fall
// outside the image are blank.
func Extract(img image.Image, l *Layout, m Labeling) (iter.Seq[convfont.Glyph], error) {
	if err := l.check(); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: no labeling", convfont.ErrInvalidParameter)
	}

	bounds := img.Bounds()
	limit := Limit(l, m)

	return func(yield func(convfont.Glyph) bool) {
		n := 0
		for row := 0; row < l.Rows && n < limit; row++ {
			cols, ok := m.columns(row, l.Columns)
			if !ok {
				return
			}
			for col := 0; col < cols && n < limit; col++ {
				g := convfont.Glyph{
					CodePoint: m.label(row, col, n),
					Bitmap:    readCell(img, bounds, l, row, col),
				}
				n++
				if !yield(g) {
					return
				}
			}
		}
	}, nil
}

func readCell(img image.Image, bounds image.Rectangle, l *Layout, row, col int) convfont.Bitmap {
	o := bounds.Min.Add(l.Origin(row, col))
	b := convfont.NewBitmap(l.GlyphWidth, l.GlyphHeight)
	for y := 0; y < l.GlyphHeight; y++ {
		for x := 0; x < l.GlyphWidth; x++ {
			p := image.Point{X: o.X + x, Y: o.Y + y}
			if !p.In(bounds) {
				continue
			}
			b[y][x] = Ink(img.At(p.X, p.Y))
		}
	}
	return b
}
