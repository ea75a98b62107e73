package convfont

import "errors"

// Error kinds reported by the convfont tools. They are wrapped with context
// using fmt.Errorf and should be tested for with errors.Is.
var (
	ErrMissingFile        = errors.New("file not found")
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrConflictingOptions = errors.New("conflicting options")
	ErrEmptyCharacterMap  = errors.New("character map does not define any glyphs")
	ErrInvalidLayout      = errors.New("invalid glyph layout")
	ErrImageDecode        = errors.New("failed to load image")
	ErrIO                 = errors.New("i/o failure")
)
