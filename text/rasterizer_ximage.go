package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageBackend implements RasterizerBackend using golang.org/x/image/font/opentype.
type ximageBackend struct{}

// Parse implements RasterizerBackend.Parse.
func (p *ximageBackend) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &FontError{Backend: BackendXImage, Op: "parse", Err: err}
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
type ximageParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && buf != "" {
		return buf
	}
	return ""
}

// FullName implements ParsedFont.FullName.
func (f *ximageParsedFont) FullName() string {
	if buf, err := f.font.Name(nil, sfnt.NameIDFull); err == nil && buf != "" {
		return buf
	}
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// HasGlyph implements ParsedFont.HasGlyph.
func (f *ximageParsedFont) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// NewRasterizer implements ParsedFont.NewRasterizer.
func (f *ximageParsedFont) NewRasterizer() (GlyphRasterizer, error) {
	return &ximageRasterizer{
		font:  f.font,
		faces: make(map[int]font.Face),
	}, nil
}

// ximageRasterizer renders glyphs through an opentype face, one face per
// pixel size. The face reuses its mask between calls, so every glyph is copied
// out before returning.
type ximageRasterizer struct {
	font  *opentype.Font
	faces map[int]font.Face
	buf   sfnt.Buffer
}

func (r *ximageRasterizer) face(pixelSize int) (font.Face, error) {
	if face, ok := r.faces[pixelSize]; ok {
		return face, nil
	}

	// At 72 DPI one point is one pixel, so Size is the pixel size.
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &FontError{Backend: BackendXImage, Op: "new face", Err: err}
	}
	r.faces[pixelSize] = face
	return face, nil
}

// RenderGlyph implements GlyphRasterizer.
func (r *ximageRasterizer) RenderGlyph(ch rune, pixelSize int) (Glyph, bool) {
	if pixelSize <= 0 {
		return Glyph{}, false
	}
	// Face.Glyph renders .notdef for unmapped runes.
	if idx, err := r.font.GlyphIndex(&r.buf, ch); err != nil || idx == 0 {
		return Glyph{}, false
	}
	face, err := r.face(pixelSize)
	if err != nil {
		return Glyph{}, false
	}

	// With the dot at the origin, dr is the ink box relative to the baseline.
	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, ch)
	if !ok {
		return Glyph{}, false
	}

	return Glyph{
		Coverage: copyCoverage(mask, maskp, dr.Dx(), dr.Dy()),
		Width:    dr.Dx(),
		Height:   dr.Dy(),
		BearingX: dr.Min.X,
		BearingY: -dr.Min.Y,
		Advance:  fixedToFloat64(advance),
	}, true
}

// copyCoverage copies a w x h region of mask starting at maskp into an owned,
// tightly packed slice.
func copyCoverage(mask image.Image, maskp image.Point, w, h int) []byte {
	if w <= 0 || h <= 0 {
		return nil
	}
	out := make([]byte, w*h)

	if alpha, ok := mask.(*image.Alpha); ok {
		for y := range h {
			start := alpha.PixOffset(maskp.X, maskp.Y+y)
			copy(out[y*w:(y+1)*w], alpha.Pix[start:start+w])
		}
		return out
	}

	for y := range h {
		for x := range w {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			out[y*w+x] = byte(a >> 8)
		}
	}
	return out
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
