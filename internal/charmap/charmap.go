// Package charmap reads character map files. A character map lists, line by
// line, the characters drawn in each row of a glyph sheet.
package charmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pbnjay/convfont"
	"github.com/pbnjay/convfont/internal/grid"
)

// maxLine is the longest line, in bytes, a character map may hold.
const maxLine = 1 << 20

// Decode reads a character map into a grid labeling. The text is UTF-8
// unless it starts with a UTF-8 or UTF-16 byte order mark. Empty lines are
// kept, since they still stand for a row of the sheet. A map without any
// characters fails with convfont.ErrEmptyCharacterMap, and a line longer
// than 1 MiB with convfont.ErrInvalidParameter.
func Decode(r io.Reader) (grid.CharacterMapped, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	s := bufio.NewScanner(transform.NewReader(r, dec))
	s.Buffer(make([]byte, 0, 4096), maxLine)

	var m grid.CharacterMapped
	for s.Scan() {
		m.Rows = append(m.Rows, []rune(s.Text()))
	}
	if err := s.Err(); errors.Is(err, bufio.ErrTooLong) {
		return grid.CharacterMapped{}, fmt.Errorf("%w: character map line %d is longer than %d bytes", convfont.ErrInvalidParameter, len(m.Rows)+1, maxLine)
	} else if err != nil {
		return grid.CharacterMapped{}, err
	}

	if m.Len() == 0 {
		return grid.CharacterMapped{}, convfont.ErrEmptyCharacterMap
	}
	return m, nil
}

// ReadFile reads the character map stored in the named file.
func ReadFile(name string) (grid.CharacterMapped, error) {
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return grid.CharacterMapped{}, fmt.Errorf("%w: chars file '%s'", convfont.ErrMissingFile, name)
	} else if err != nil {
		return grid.CharacterMapped{}, err
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return grid.CharacterMapped{}, fmt.Errorf("%s: %w", name, err)
	}
	return m, nil
}
