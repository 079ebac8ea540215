package fontatlas

import (
	"image"
	"iter"
)

// CharacterInfo is the placement of one character inside the atlas image,
// in pixels with a top-left origin.
type CharacterInfo struct {
	X, Y          int
	Width, Height int
}

// Rect returns the placement as an image.Rectangle.
func (c CharacterInfo) Rect() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
}

// Empty reports whether the placement covers no pixels.
func (c CharacterInfo) Empty() bool {
	return c.Width <= 0 || c.Height <= 0
}

// UV returns normalized texture coordinates of the placement in an atlas of
// the given size. (u0, v0) is the top-left corner.
func (c CharacterInfo) UV(atlasWidth, atlasHeight int) (u0, v0, u1, v1 float32) {
	if atlasWidth <= 0 || atlasHeight <= 0 {
		return 0, 0, 0, 0
	}
	w, h := float32(atlasWidth), float32(atlasHeight)
	return float32(c.X) / w, float32(c.Y) / h,
		float32(c.X+c.Width) / w, float32(c.Y+c.Height) / h
}

// CharacterInfoTable maps characters to their atlas placements.
//
// Get never fails: characters that were not packed resolve to the default
// entry. Each character is recorded at most once. Once the table belongs to a
// finished FontResource it is sealed and read-only, and safe for concurrent
// reads.
type CharacterInfoTable struct {
	entries map[rune]CharacterInfo
	order   []rune
	def     CharacterInfo
	sealed  bool
}

// NewCharacterInfoTable creates an empty table whose lookups of absent
// characters return def.
func NewCharacterInfoTable(def CharacterInfo) *CharacterInfoTable {
	return &CharacterInfoTable{
		entries: make(map[rune]CharacterInfo),
		def:     def,
	}
}

// Add records the placement of r.
func (t *CharacterInfoTable) Add(r rune, info CharacterInfo) error {
	if t.sealed {
		return ErrTableSealed
	}
	if _, ok := t.entries[r]; ok {
		return ErrDuplicateCharacter
	}
	t.entries[r] = info
	t.order = append(t.order, r)
	return nil
}

// Get returns the placement of r, or the default entry if r was not packed.
func (t *CharacterInfoTable) Get(r rune) CharacterInfo {
	if info, ok := t.entries[r]; ok {
		return info
	}
	return t.def
}

// Lookup returns the placement of r and whether it was packed.
func (t *CharacterInfoTable) Lookup(r rune) (CharacterInfo, bool) {
	info, ok := t.entries[r]
	return info, ok
}

// Default returns the entry used for absent characters.
func (t *CharacterInfoTable) Default() CharacterInfo {
	return t.def
}

// Len returns the number of packed characters.
func (t *CharacterInfoTable) Len() int {
	return len(t.order)
}

// Runes returns the packed characters in packing order.
func (t *CharacterInfoTable) Runes() []rune {
	out := make([]rune, len(t.order))
	copy(out, t.order)
	return out
}

// All iterates over the entries in packing order.
func (t *CharacterInfoTable) All() iter.Seq2[rune, CharacterInfo] {
	return func(yield func(rune, CharacterInfo) bool) {
		for _, r := range t.order {
			if !yield(r, t.entries[r]) {
				return
			}
		}
	}
}

// Sealed reports whether the table is read-only.
func (t *CharacterInfoTable) Sealed() bool {
	return t.sealed
}

func (t *CharacterInfoTable) seal() {
	t.sealed = true
}
