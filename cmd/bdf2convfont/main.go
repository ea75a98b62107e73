// Command bdf2convfont opens a BDF format font and writes it in convfont
// format. Every glyph is placed in a cell the size of the font bounding box.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/pbnjay/convfont"
	"github.com/pbnjay/convfont/internal/bdf"
)

type options struct {
	Output    flags.Filename `short:"o" long:"output"    description:"Output file path, or - for standard output (defaults to the font path with a .txt extension)"`
	NumGlyphs int            `short:"n" long:"numglyphs" description:"Only write the first N glyphs, in code point order"`

	Args struct {
		Font flags.Filename `positional-arg-name:"filename.bdf" description:"BDF font to convert"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] filename.bdf"
	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := convert(&opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func convert(opts *options, stdout io.Writer) error {
	if opts.NumGlyphs < 0 {
		return fmt.Errorf("%w: number of glyphs must be a positive integer", convfont.ErrInvalidParameter)
	}

	f, err := os.Open(string(opts.Args.Font))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: font file '%s'", convfont.ErrMissingFile, opts.Args.Font)
	} else if err != nil {
		return err
	}
	defer f.Close()

	font, err := bdf.Decode(f)
	if err != nil {
		return err
	}
	glyphs := font.Glyphs()
	if opts.NumGlyphs > 0 && opts.NumGlyphs < len(glyphs) {
		glyphs = glyphs[:opts.NumGlyphs]
	}

	name := strings.TrimSpace(string(opts.Output))
	if name == "" {
		name = strings.TrimSuffix(string(opts.Args.Font), filepath.Ext(string(opts.Args.Font))) + ".txt"
	}

	out := stdout
	var of *os.File
	if name != "-" {
		of, err = os.Create(name)
		if err != nil {
			return fmt.Errorf("%w: %v", convfont.ErrIO, err)
		}
		defer of.Close()
		out = of
	}

	w, h := font.BoundingBox[0], font.BoundingBox[1]
	if _, err := convfont.Encode(out, w, h, slices.Values(glyphs)); err != nil {
		return err
	}
	if of != nil {
		if err := of.Close(); err != nil {
			return fmt.Errorf("%w: %v", convfont.ErrIO, err)
		}
	}
	return nil
}
