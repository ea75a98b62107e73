package convfont

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// Writer streams glyphs to an io.Writer in the convfont text format.
// Every glyph is rendered as a fixed width x height cell, regardless of the
// size of its own bitmap.
type Writer struct {
	w             *bufio.Writer
	width, height int

	header bool
	n      int
	err    error
}

// NewWriter returns a Writer for a font with the given cell size.
func NewWriter(w io.Writer, width, height int) *Writer {
	return &Writer{
		w:      bufio.NewWriter(w),
		width:  width,
		height: height,
	}
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintf(w.w, format, args...); err != nil {
		w.err = fmt.Errorf("%w: %v", ErrIO, err)
	}
}

func (w *Writer) writeHeader() {
	if w.header {
		return
	}
	w.header = true
	w.printf("convfont\n")
	w.printf("Height: %d\n", w.height)
	w.printf("Fixed width: %d\n", w.width)
	w.printf("Font data:\n")
	w.printf("\n")
}

// WriteGlyph appends one glyph entry. Entries are separated by a single
// blank line. The first error encountered is returned by this and all
// later calls.
func (w *Writer) WriteGlyph(g Glyph) error {
	w.writeHeader()
	if w.n > 0 {
		w.printf("\n")
	}
	w.printf("Code point: %s\n", g.CodePoint)
	w.printf("Data:\n")
	for y := 0; y < w.height; y++ {
		w.printf("%s\n", g.Bitmap.Line(y, w.width))
	}
	if w.err != nil {
		return w.err
	}
	w.n++
	return nil
}

// Count returns the number of glyphs written so far.
func (w *Writer) Count() int {
	return w.n
}

// Flush writes any buffered data, including the header of a font without
// glyphs, to the underlying io.Writer.
func (w *Writer) Flush() error {
	w.writeHeader()
	if w.err != nil {
		return w.err
	}
	if err := w.w.Flush(); err != nil {
		w.err = fmt.Errorf("%w: %v", ErrIO, err)
	}
	return w.err
}

// Encode writes all glyphs of the sequence to out and returns how many were
// written.
func Encode(out io.Writer, width, height int, glyphs iter.Seq[Glyph]) (int, error) {
	w := NewWriter(out, width, height)
	for g := range glyphs {
		if err := w.WriteGlyph(g); err != nil {
			return w.Count(), err
		}
	}
	return w.Count(), w.Flush()
}
