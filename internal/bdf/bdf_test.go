package bdf

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pbnjay/convfont"
)

var document = `STARTFONT 2.1
COMMENT a tiny test font
FONT -test-fixed-medium-r-normal--7-70-75-75-c-50-iso10646-1
SIZE 7 75 75
FONTBOUNDINGBOX 5 7 0 -1
STARTPROPERTIES 2
FONT_ASCENT 6
COPYRIGHT "public domain"
ENDPROPERTIES
CHARS 3
STARTCHAR g
ENCODING 103
SWIDTH 500 0
DWIDTH 5 0
BBX 4 4 0 -1
BITMAP
70
90
70
10
ENDCHAR
STARTCHAR A
ENCODING 65
SWIDTH 500 0
DWIDTH 5 0
BBX 5 5 0 0
BITMAP
20
50
88
F8
88
ENDCHAR
STARTCHAR unnamed
ENCODING -1
DWIDTH 5 0
BBX 1 1 0 0
BITMAP
80
ENDCHAR
ENDFONT
`

func TestDecode(t *testing.T) {
	font, err := Decode(strings.NewReader(document))
	if err != nil {
		t.Fatal(err)
	}

	if font.Version != "2.1" {
		t.Error("unexpected version", font.Version)
	}
	if font.BoundingBox != [4]int{5, 7, 0, -1} {
		t.Error("unexpected bounding box", font.BoundingBox)
	}
	if font.PointSize != 7 || font.ResolutionX != 75 || font.ResolutionY != 75 {
		t.Error("unexpected size", font.PointSize, font.ResolutionX, font.ResolutionY)
	}
	if font.Properties["COPYRIGHT"] != "public domain" {
		t.Error("unexpected properties", font.Properties)
	}
	if len(font.Chars) != 3 {
		t.Fatal("unexpected glyph count", len(font.Chars))
	}
	a := font.Chars[1]
	if a.Name != "A" || a.Encoding != 65 || a.Width != 5 || a.BoundingBox != [4]int{5, 5, 0, 0} {
		t.Errorf("unexpected glyph %+v", a)
	}
}

func TestGlyphs(t *testing.T) {
	font, err := Decode(strings.NewReader(document))
	if err != nil {
		t.Fatal(err)
	}

	glyphs := font.Glyphs()
	want := []convfont.Glyph{
		{CodePoint: 'A', Bitmap: convfont.ParseBitmap(
			"     ",
			"  #  ",
			" # # ",
			"#   #",
			"#####",
			"#   #",
			"     ",
		)},
		{CodePoint: 'g', Bitmap: convfont.ParseBitmap(
			"     ",
			"     ",
			"     ",
			" ### ",
			"#  # ",
			" ### ",
			"   # ",
		)},
	}
	if diff := cmp.Diff(want, glyphs); diff != "" {
		t.Errorf("glyphs mismatch (-want +got):\n%s", diff)
	}
}

func TestGlyphClipped(t *testing.T) {
	font := &Font{BoundingBox: [4]int{3, 3, 0, 0}}
	c := &Char{Encoding: 1, BoundingBox: [4]int{4, 4, -1, 0}, Bitmap: [][]byte{{0xf0}, {0xf0}, {0xf0}, {0xf0}}}
	g := font.Glyph(c)
	want := convfont.ParseBitmap("###", "###", "###")
	if diff := cmp.Diff(want, g.Bitmap); diff != "" {
		t.Errorf("bitmap mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"no header":     "FONT x\nENDFONT\n",
		"no end":        "STARTFONT 2.1\nFONTBOUNDINGBOX 5 7 0 -1\n",
		"no bbox":       "STARTFONT 2.1\nENDFONT\n",
		"bad bbox":      "STARTFONT 2.1\nFONTBOUNDINGBOX 5 seven\nENDFONT\n",
		"short bitmap":  "STARTFONT 2.1\nFONTBOUNDINGBOX 5 7 0 -1\nSTARTCHAR A\nBBX 1 3 0 0\nBITMAP\n80\n",
		"bad hex":       "STARTFONT 2.1\nFONTBOUNDINGBOX 5 7 0 -1\nSTARTCHAR A\nBBX 1 1 0 0\nBITMAP\nZZ\nENDCHAR\nENDFONT\n",
		"no endchar":    "STARTFONT 2.1\nFONTBOUNDINGBOX 5 7 0 -1\nSTARTCHAR A\nENCODING 65\n",
		"no endprops":   "STARTFONT 2.1\nSTARTPROPERTIES 1\nFOO 1\n",
		"bad encoding":  "STARTFONT 2.1\nFONTBOUNDINGBOX 5 7 0 -1\nSTARTCHAR A\nENCODING x\nENDCHAR\nENDFONT\n",
		"empty":         "",
		"blank lines":   "\n\n\n",
		"wrong keyword": "STARTCHAR A\n",
		"negative bbx":  "STARTFONT 2.1\nFONTBOUNDINGBOX 5 8 0 -1\nSTARTCHAR A\nENCODING 65\nBBX 5 -1 0 0\nBITMAP\nENDCHAR\nENDFONT\n",
		"huge bbx":      "STARTFONT 2.1\nFONTBOUNDINGBOX 5 8 0 -1\nSTARTCHAR A\nBBX 1 2000000000 0 0\nBITMAP\n80\nENDCHAR\nENDFONT\n",
		"negative font": "STARTFONT 2.1\nFONTBOUNDINGBOX -5 8 0 -1\nENDFONT\n",
		"huge font":     "STARTFONT 2.1\nFONTBOUNDINGBOX 100000 100000 0 0\nENDFONT\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(input))
			if !errors.Is(err, errFormat) {
				t.Errorf("expected a format error, got %v", err)
			}
		})
	}
}
