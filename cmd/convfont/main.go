// convfont is a commandline tool that converts an image of a glyph grid into
// a convfont text font. Draw your glyphs on a sheet in equally sized cells,
// one cell per character, e.g. 16 columns of 8x16 pixel glyphs starting with
// the space character. Ink must be dark and opaque, the background light or
// transparent. Then run:
//
//	convfont -w 8 -h 16 -s 32 font.bmp
//
// to get font.txt. Use --xpad/--ypad if the grid does not start at the
// top-left corner of the image, and --xcellpad/--ycellpad if cells are
// separated by gaps. Instead of numbering glyphs from a start code point, a
// text file given with -c can name the character in each cell, one line of
// text per row of the grid.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
