package main

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/pbnjay/convfont"
	"github.com/pbnjay/convfont/internal/charmap"
	"github.com/pbnjay/convfont/internal/grid"
	"github.com/pbnjay/convfont/internal/imagefile"
)

func run(args []string, stdout io.Writer) error {
	if wantsHelp(args) {
		writeHelp(stdout)
		return nil
	}

	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	j, err := opts.validate()
	if err != nil {
		return err
	}
	if !imagefile.Exists(j.image) {
		return fmt.Errorf("%w: image file '%s'", convfont.ErrMissingFile, j.image)
	}

	var labeling grid.Labeling = j.sequence
	var chars grid.CharacterMapped
	if j.charsFile != "" {
		chars, err = charmap.ReadFile(j.charsFile)
		if err != nil {
			return err
		}
		labeling = chars
	}

	img, err := imagefile.Open(j.image)
	if err != nil {
		return err
	}
	size := img.Bounds().Size()
	layout, err := grid.NewLayout(size.X, size.Y, j.params)
	if err != nil {
		return err
	}

	limit := grid.Limit(layout, labeling)
	if j.charsFile != "" {
		fmt.Fprintf(stdout, "Processing %dx%d image using up to %d glyphs defined in '%s'.\n",
			size.X, size.Y, limit, j.charsFile)
		if n := chars.Len(); n > limit {
			fmt.Fprintf(stdout, "Note: Character file defines %d glyphs but only %d fit within the image grid.\n", n, limit)
		}
	} else {
		fmt.Fprintf(stdout, "Processing %dx%d image into %d glyphs (%d columns x %d rows)\n",
			size.X, size.Y, limit, layout.Columns, layout.Rows)
		if limit < layout.Total() {
			fmt.Fprintf(stdout, "Note: Limiting to %d glyphs (image contains %d total)\n", limit, layout.Total())
		}
	}

	glyphs, err := grid.Extract(img, layout, labeling)
	if err != nil {
		return err
	}
	n, err := writeFont(j.output, j.params.GlyphWidth, j.params.GlyphHeight, glyphs)
	if err != nil {
		return err
	}

	if j.charsFile != "" {
		fmt.Fprintf(stdout, "Successfully created '%s' with %d glyphs defined by '%s'.\n", j.output, n, j.charsFile)
	} else {
		start := j.sequence.Start
		fmt.Fprintf(stdout, "Successfully created '%s' with %d glyphs (code points %d-%d)\n", j.output, n, start, start+n-1)
	}

	if j.verbose {
		dumpFont(stdout, j.params.GlyphWidth, glyphs)
	}
	return nil
}

// writeFont creates (or truncates) the named file and writes the glyphs to
// it. On error the file is left partially written.
func writeFont(name string, width, height int, glyphs iter.Seq[convfont.Glyph]) (int, error) {
	f, err := os.Create(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", convfont.ErrIO, err)
	}
	defer f.Close()

	n, err := convfont.Encode(f, width, height, glyphs)
	if err != nil {
		return n, err
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("%w: %v", convfont.ErrIO, err)
	}
	return n, nil
}

// dumpFont prints a simple text representation of the extracted glyphs.
func dumpFont(w io.Writer, width int, glyphs iter.Seq[convfont.Glyph]) {
	for g := range glyphs {
		for y := range g.Bitmap {
			fmt.Fprintf(w, "%-5s [%s]\n", g.CodePoint, g.Bitmap.Line(y, width))
		}
	}
}
