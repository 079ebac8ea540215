package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownBackend is returned when a rasterizer backend name is not registered.
	ErrUnknownBackend = errors.New("text: unknown rasterizer backend")

	// ErrSourceClosed is returned when a closed FontSource is used.
	ErrSourceClosed = errors.New("text: font source is closed")
)

// FontError reports a failure to parse or prepare a font.
type FontError struct {
	Backend string
	Op      string
	Err     error
}

func (e *FontError) Error() string {
	return "text: " + e.Backend + ": " + e.Op + ": " + e.Err.Error()
}

func (e *FontError) Unwrap() error {
	return e.Err
}
