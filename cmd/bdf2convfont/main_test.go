package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	flags "github.com/jessevdk/go-flags"

	"github.com/pbnjay/convfont"
)

const tinyFont = `STARTFONT 2.1
FONTBOUNDINGBOX 3 3 0 0
CHARS 2
STARTCHAR B
ENCODING 66
BBX 3 3 0 0
BITMAP
C0
A0
C0
ENDCHAR
STARTCHAR A
ENCODING 65
BBX 3 3 0 0
BITMAP
40
A0
E0
ENDCHAR
ENDFONT
`

func writeFont(t *testing.T) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "tiny.bdf")
	if err := os.WriteFile(name, []byte(tinyFont), 0644); err != nil {
		t.Fatal(err)
	}
	return name
}

const tinyExpected = "convfont\nHeight: 3\nFixed width: 3\nFont data:\n\n" +
	"Code point: 'A'\nData:\n # \n# #\n###\n\n" +
	"Code point: 'B'\nData:\n## \n# #\n## \n"

func TestConvert(t *testing.T) {
	font := writeFont(t)
	opts := &options{}
	opts.Args.Font = flags.Filename(font)

	var stdout strings.Builder
	if err := convert(opts, &stdout); err != nil {
		t.Fatal(err)
	}
	if stdout.Len() != 0 {
		t.Error("unexpected output on stdout")
	}
	data, err := os.ReadFile(filepath.Join(filepath.Dir(font), "tiny.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != tinyExpected {
		t.Errorf("unexpected output:\n%s", data)
	}
}

func TestConvertToStdout(t *testing.T) {
	opts := &options{Output: "-"}
	opts.Args.Font = flags.Filename(writeFont(t))

	var stdout strings.Builder
	if err := convert(opts, &stdout); err != nil {
		t.Fatal(err)
	}
	if stdout.String() != tinyExpected {
		t.Errorf("unexpected output:\n%s", stdout.String())
	}
}

func TestConvertToFile(t *testing.T) {
	opts := &options{NumGlyphs: 1}
	opts.Args.Font = flags.Filename(writeFont(t))
	opts.Output = flags.Filename(filepath.Join(t.TempDir(), "tiny.txt"))

	var stdout strings.Builder
	if err := convert(opts, &stdout); err != nil {
		t.Fatal(err)
	}
	if stdout.Len() != 0 {
		t.Error("unexpected output on stdout")
	}
	data, err := os.ReadFile(string(opts.Output))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "Code point:"); n != 1 {
		t.Error("expected a single glyph, got", n)
	}
}

func TestConvertErrors(t *testing.T) {
	opts := &options{}
	opts.Args.Font = flags.Filename(filepath.Join(t.TempDir(), "missing.bdf"))
	if err := convert(opts, &strings.Builder{}); !errors.Is(err, convfont.ErrMissingFile) {
		t.Errorf("expected ErrMissingFile, got %v", err)
	}

	opts = &options{NumGlyphs: -1}
	opts.Args.Font = flags.Filename(writeFont(t))
	if err := convert(opts, &strings.Builder{}); !errors.Is(err, convfont.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}
