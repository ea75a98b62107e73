package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"

	"github.com/pbnjay/convfont"
	"github.com/pbnjay/convfont/internal/grid"
)

type options struct {
	Width          int            `short:"w" long:"width"          description:"Width of each glyph in pixels" required:"true"`
	Height         int            `short:"h" long:"height"         description:"Height of each glyph in pixels" required:"true"`
	StartCodePoint *int           `short:"s" long:"startcodepoint" description:"Starting code point (e.g., 32 for space, 65 for 'A'; defaults to 0)"`
	NumGlyphs      *int           `short:"n" long:"numglyphs"      description:"Number of glyphs to read from the image (defaults to all)"`
	XPad           int            `long:"xpad"                     description:"Left padding, in pixels, before the glyph grid starts" default:"0"`
	YPad           int            `long:"ypad"                     description:"Top padding, in pixels, before the glyph grid starts" default:"0"`
	XCellPad       int            `long:"xcellpad"                 description:"Horizontal spacing, in pixels, between glyph cells" default:"0"`
	YCellPad       int            `long:"ycellpad"                 description:"Vertical spacing, in pixels, between glyph cells" default:"0"`
	Output         flags.Filename `short:"o" long:"output"         description:"Output file path (defaults to the image path with a .txt extension)"`
	CharsFile      flags.Filename `short:"c" long:"charsfile"      description:"Text file naming the character in each cell, one line per grid row"`
	Verbose        bool           `short:"v" long:"verbose"        description:"Print a text preview of every glyph"`
	Help           bool           `long:"help"                     description:"Show this help message"`

	Args struct {
		ImageFile flags.Filename `positional-arg-name:"imagefile" description:"Path to the image file (BMP, PNG, GIF, JPEG, TIFF or WebP)"`
	} `positional-args:"yes" required:"yes"`
}

// job is a validated set of options.
type job struct {
	image     string
	output    string
	charsFile string
	params    grid.Params
	sequence  grid.Sequential
	verbose   bool
}

func newParser(opts *options) *flags.Parser {
	// the built-in help flag would take -h, which is the glyph height
	p := flags.NewParser(opts, flags.PassDoubleDash)
	p.Name = "convfont"
	p.Usage = "[OPTIONS] imagefile"
	p.ShortDescription = "Converts an image of a glyph grid to convfont format"
	return p
}

func wantsHelp(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "--help", "-help", "/?":
			return true
		}
	}
	return false
}

func writeHelp(w io.Writer) {
	newParser(&options{}).WriteHelp(w)
}

// parseArgs parses the command line. Any problem is reported as
// convfont.ErrInvalidParameter.
func parseArgs(args []string) (*options, error) {
	opts := &options{}
	rest, err := newParser(opts).ParseArgs(args)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) {
			return nil, fmt.Errorf("%w: %s", convfont.ErrInvalidParameter, ferr.Message)
		}
		return nil, fmt.Errorf("%w: %v", convfont.ErrInvalidParameter, err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected argument '%s'", convfont.ErrInvalidParameter, rest[0])
	}
	return opts, nil
}

// validate checks the options without touching any file.
func (o *options) validate() (*job, error) {
	if o.Width <= 0 {
		return nil, fmt.Errorf("%w: width must be a positive integer", convfont.ErrInvalidParameter)
	}
	if o.Height <= 0 {
		return nil, fmt.Errorf("%w: height must be a positive integer", convfont.ErrInvalidParameter)
	}
	if o.XPad < 0 || o.YPad < 0 {
		return nil, fmt.Errorf("%w: padding values must be non-negative integers", convfont.ErrInvalidParameter)
	}
	if o.XCellPad < 0 || o.YCellPad < 0 {
		return nil, fmt.Errorf("%w: cell padding values must be non-negative integers", convfont.ErrInvalidParameter)
	}

	j := &job{
		image:     string(o.Args.ImageFile),
		output:    strings.TrimSpace(string(o.Output)),
		charsFile: strings.TrimSpace(string(o.CharsFile)),
		params: grid.Params{
			GlyphWidth:  o.Width,
			GlyphHeight: o.Height,
			XPad:        o.XPad,
			YPad:        o.YPad,
			XCellPad:    o.XCellPad,
			YCellPad:    o.YCellPad,
		},
		verbose: o.Verbose,
	}

	if j.charsFile != "" {
		if o.StartCodePoint != nil {
			return nil, fmt.Errorf("%w: --startcodepoint cannot be used with --charsfile", convfont.ErrConflictingOptions)
		}
		if o.NumGlyphs != nil {
			return nil, fmt.Errorf("%w: --numglyphs cannot be used with --charsfile", convfont.ErrConflictingOptions)
		}
	} else {
		if o.StartCodePoint != nil {
			if *o.StartCodePoint < 0 {
				return nil, fmt.Errorf("%w: start code point must be a non-negative integer", convfont.ErrInvalidParameter)
			}
			j.sequence.Start = *o.StartCodePoint
		}
		if o.NumGlyphs != nil {
			if *o.NumGlyphs <= 0 {
				return nil, fmt.Errorf("%w: number of glyphs must be a positive integer", convfont.ErrInvalidParameter)
			}
			j.sequence.Max = *o.NumGlyphs
		}
	}

	if j.output == "" {
		j.output = strings.TrimSuffix(j.image, filepath.Ext(j.image)) + ".txt"
	}
	return j, nil
}
