// Package bdf reads bitmap fonts in the Glyph Bitmap Distribution Format.
//
// https://www.adobe.com/content/dam/acom/en/devnet/font/pdfs/5005.BDF_Spec.pdf
package bdf

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pbnjay/convfont"
)

var errFormat = errors.New("malformed BDF font")

// maxSize bounds the width and height of any bounding box.
const maxSize = 4096

// Char represents a single glyph in the BDF font definition.
type Char struct {
	Name     string // "SPACE"
	Encoding int    // 32, or -1 for glyphs without a standard encoding
	Width    int    // DWIDTH in pixels, e.g. 5

	BoundingBox [4]int // Width, Height, X offset, Y offset
	Bitmap      [][]byte
}

// Font represents a set of glyphs in the BDF font definition.
type Font struct {
	Version  string // "2.1"
	Comments string
	Name     string

	PointSize   int // font point size e.g. 8
	ResolutionX int // display resolution e.g. 72
	ResolutionY int

	BoundingBox [4]int // Width, Height, X offset, Y offset

	Properties map[string]string

	Chars []*Char
}

type decoder struct {
	s    *bufio.Scanner
	line int
	font *Font
	char *Char
}

func (d *decoder) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", errFormat, d.line, fmt.Sprintf(format, args...))
}

func (d *decoder) next() (keyword, rest string, ok bool) {
	for d.s.Scan() {
		d.line++
		text := strings.TrimSpace(d.s.Text())
		if text == "" {
			continue
		}
		keyword, rest, _ = strings.Cut(text, " ")
		return keyword, strings.TrimSpace(rest), true
	}
	return "", "", false
}

// ints parses exactly n whitespace separated integers.
func (d *decoder) ints(s string, n int) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) < n {
		return nil, d.errorf("expected %d numbers, got %q", n, s)
	}
	res := make([]int, n)
	for i := range res {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, d.errorf("%v", err)
		}
		res[i] = v
	}
	return res, nil
}

// bbox parses a bounding box, rejecting negative or oversized dimensions.
func (d *decoder) bbox(s string) ([4]int, error) {
	var box [4]int
	v, err := d.ints(s, 4)
	if err != nil {
		return box, err
	}
	if v[0] < 0 || v[1] < 0 || v[0] > maxSize || v[1] > maxSize {
		return box, d.errorf("bad bounding box size %dx%d", v[0], v[1])
	}
	copy(box[:], v)
	return box, nil
}

// Decode reads a BDF font.
func Decode(r io.Reader) (*Font, error) {
	d := &decoder{
		s:    bufio.NewScanner(r),
		font: &Font{Properties: map[string]string{}},
	}

	keyword, rest, ok := d.next()
	if !ok || keyword != "STARTFONT" {
		return nil, d.errorf("missing STARTFONT")
	}
	d.font.Version = rest

	for {
		keyword, rest, ok := d.next()
		if !ok {
			if err := d.s.Err(); err != nil {
				return nil, err
			}
			return nil, d.errorf("missing ENDFONT")
		}
		if keyword == "ENDFONT" {
			break
		}
		if pfunc, ok := parsers[keyword]; ok {
			if err := pfunc(d, rest); err != nil {
				return nil, err
			}
		}
	}

	if d.font.BoundingBox[0] <= 0 || d.font.BoundingBox[1] <= 0 {
		return nil, fmt.Errorf("%w: missing FONTBOUNDINGBOX", errFormat)
	}
	return d.font, nil
}

var parsers = map[string]func(*decoder, string) error{
	"COMMENT": func(d *decoder, line string) error {
		d.font.Comments += line + "\n"
		return nil
	},
	"FONT": func(d *decoder, line string) error {
		d.font.Name = line
		return nil
	},
	"SIZE": func(d *decoder, line string) error {
		v, err := d.ints(line, 3)
		if err != nil {
			return err
		}
		d.font.PointSize, d.font.ResolutionX, d.font.ResolutionY = v[0], v[1], v[2]
		return nil
	},
	"FONTBOUNDINGBOX": func(d *decoder, line string) error {
		box, err := d.bbox(line)
		if err != nil {
			return err
		}
		d.font.BoundingBox = box
		return nil
	},
	"STARTPROPERTIES": func(d *decoder, line string) error {
		for {
			keyword, rest, ok := d.next()
			if !ok {
				return d.errorf("missing ENDPROPERTIES")
			}
			if keyword == "ENDPROPERTIES" {
				return nil
			}
			d.font.Properties[keyword] = strings.Trim(rest, `"`)
		}
	},
	"STARTCHAR": func(d *decoder, line string) error {
		d.char = &Char{Name: line, Encoding: -1}
		for {
			keyword, rest, ok := d.next()
			if !ok {
				return d.errorf("missing ENDCHAR for %q", d.char.Name)
			}
			switch keyword {
			case "ENDCHAR":
				d.font.Chars = append(d.font.Chars, d.char)
				d.char = nil
				return nil
			case "BITMAP":
				if err := d.bitmap(); err != nil {
					return err
				}
			default:
				if cfunc, ok := charparsers[keyword]; ok {
					if err := cfunc(d, rest); err != nil {
						return err
					}
				}
			}
		}
	},
}

var charparsers = map[string]func(*decoder, string) error{
	"ENCODING": func(d *decoder, line string) error {
		v, err := d.ints(line, 1)
		if err != nil {
			return err
		}
		d.char.Encoding = v[0]
		return nil
	},
	"DWIDTH": func(d *decoder, line string) error {
		v, err := d.ints(line, 1)
		if err != nil {
			return err
		}
		d.char.Width = v[0]
		return nil
	},
	"BBX": func(d *decoder, line string) error {
		box, err := d.bbox(line)
		if err != nil {
			return err
		}
		d.char.BoundingBox = box
		return nil
	},
}

// bitmap reads the hex rows following BITMAP, one per row of the glyph's
// bounding box.
func (d *decoder) bitmap() error {
	d.char.Bitmap = nil
	for range d.char.BoundingBox[1] {
		if !d.s.Scan() {
			return d.errorf("short BITMAP for %q", d.char.Name)
		}
		d.line++
		row, err := hex.DecodeString(strings.TrimSpace(d.s.Text()))
		if err != nil {
			return d.errorf("bad BITMAP row for %q: %v", d.char.Name, err)
		}
		d.char.Bitmap = append(d.char.Bitmap, row)
	}
	return nil
}

// Glyph places c into a cell the size of the font bounding box, positioned
// relative to the font's baseline. Pixels falling outside the cell are
// dropped.
func (f *Font) Glyph(c *Char) convfont.Glyph {
	fw, fh, fx, fy := f.BoundingBox[0], f.BoundingBox[1], f.BoundingBox[2], f.BoundingBox[3]
	w, h, x0, y0 := c.BoundingBox[0], c.BoundingBox[1], c.BoundingBox[2], c.BoundingBox[3]

	// NB DESCENT and OFFSET are negative for characters that extend below
	// the baseline, so the baseline lies fh+fy rows below the top of the
	// cell and the bitmap starts h rows above the glyph's own offset.
	top := (fh + fy) - y0 - h
	left := x0 - fx

	b := convfont.NewBitmap(fw, fh)
	for y, row := range c.Bitmap {
		cy := top + y
		if cy < 0 || cy >= fh {
			continue
		}
		for x := 0; x < w && x < 8*len(row); x++ {
			cx := left + x
			if cx < 0 || cx >= fw {
				continue
			}
			b[cy][cx] = row[x/8]&(0x80>>(x%8)) != 0
		}
	}
	return convfont.Glyph{CodePoint: convfont.CodePoint(c.Encoding), Bitmap: b}
}

// Glyphs returns all encoded glyphs of the font, ordered by code point.
func (f *Font) Glyphs() []convfont.Glyph {
	chars := make([]*Char, 0, len(f.Chars))
	for _, c := range f.Chars {
		if c.Encoding >= 0 {
			chars = append(chars, c)
		}
	}
	slices.SortStableFunc(chars, func(a, b *Char) int {
		return a.Encoding - b.Encoding
	})

	glyphs := make([]convfont.Glyph, len(chars))
	for i, c := range chars {
		glyphs[i] = f.Glyph(c)
	}
	return glyphs
}
