package text

// Glyph is a rasterized glyph: an 8-bit coverage bitmap plus the metrics
// needed to place it relative to a baseline.
type Glyph struct {
	// Coverage holds Width*Height bytes, one per pixel, row-major with a
	// stride of Width. 0 is empty, 255 is full ink.
	Coverage []byte

	// Width and Height are the rendered bitmap size in pixels.
	Width, Height int

	// BearingX is the horizontal offset from the pen position to the left
	// edge of the bitmap.
	BearingX int

	// BearingY is the distance from the baseline up to the top edge of the
	// bitmap. Positive for glyphs that rise above the baseline.
	BearingY int

	// Advance is the horizontal advance in pixels.
	Advance float64
}

// Empty reports whether the glyph has no pixels.
func (g Glyph) Empty() bool {
	return g.Width <= 0 || g.Height <= 0
}

// At returns the coverage at (x, y), or 0 outside the bitmap.
func (g Glyph) At(x, y int) byte {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0
	}
	return g.Coverage[y*g.Width+x]
}

// GlyphRasterizer renders single characters at a pixel size.
//
// RenderGlyph reports ok=false when the face has no glyph for r. That is a
// normal outcome, not an error. Implementations need not be safe for
// concurrent use.
type GlyphRasterizer interface {
	RenderGlyph(r rune, pixelSize int) (g Glyph, ok bool)
}

// RasterizerFunc adapts a plain function to GlyphRasterizer.
type RasterizerFunc func(r rune, pixelSize int) (Glyph, bool)

// RenderGlyph implements GlyphRasterizer.
func (f RasterizerFunc) RenderGlyph(r rune, pixelSize int) (Glyph, bool) {
	return f(r, pixelSize)
}
