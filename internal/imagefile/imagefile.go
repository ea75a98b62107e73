// Package imagefile loads glyph sheet images. BMP, PNG, GIF, JPEG, TIFF and
// WebP files are supported.
package imagefile

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"

	// used by image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pbnjay/convfont"
)

// Decode decodes an image in any of the supported formats. Failures are
// reported as convfont.ErrImageDecode.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", convfont.ErrImageDecode, err)
	}
	return img, nil
}

// Open reads and decodes the named image file.
func Open(name string) (image.Image, error) {
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: image file '%s'", convfont.ErrMissingFile, name)
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", convfont.ErrImageDecode, err)
	}
	defer f.Close()

	return Decode(f)
}

// Exists reports whether name refers to an existing regular file.
func Exists(name string) bool {
	fi, err := os.Stat(name)
	return err == nil && fi.Mode().IsRegular()
}
