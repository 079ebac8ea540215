package fontatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for atlas building. Typed errors below wrap them, so
// callers can use errors.Is without inspecting the details.
var (
	// ErrInvalidArgument is returned for a pixel size below 1, an empty
	// character set or a non-positive glyph count.
	ErrInvalidArgument = errors.New("fontatlas: invalid argument")

	// ErrCapacityExceeded is returned when the glyphs do not fit into the
	// largest supported texture. No partial atlas is produced.
	ErrCapacityExceeded = errors.New("fontatlas: atlas capacity exceeded")

	// ErrDuplicateCharacter is returned when a character is added to a
	// CharacterInfoTable twice.
	ErrDuplicateCharacter = errors.New("fontatlas: duplicate character")

	// ErrTableSealed is returned when adding to a table owned by a finished
	// FontResource.
	ErrTableSealed = errors.New("fontatlas: character table is sealed")
)

// ArgumentError describes a rejected input value.
type ArgumentError struct {
	Name   string
	Value  any
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("fontatlas: invalid %s %v: %s", e.Name, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidArgument.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// CapacityError reports the character whose row would have crossed the
// bottom of the working canvas.
type CapacityError struct {
	Char        rune
	PixelSize   int
	CanvasWidth int
	RowY        int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("fontatlas: no room for %q at %dpx: row y=%d exceeds %dx%d canvas",
		e.Char, e.PixelSize, e.RowY, e.CanvasWidth, e.CanvasWidth)
}

// Unwrap returns ErrCapacityExceeded.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
