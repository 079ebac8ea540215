package text

import (
	"bytes"
	"image"
	"image/draw"
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
	"golang.org/x/image/vector"
)

// gotextBackend implements RasterizerBackend using go-text/typesetting for
// outline extraction and golang.org/x/image/vector for scan conversion.
type gotextBackend struct{}

// Parse implements RasterizerBackend.Parse.
func (p *gotextBackend) Parse(data []byte) (ParsedFont, error) {
	ld, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, &FontError{Backend: BackendGoText, Op: "parse", Err: err}
	}
	ft, err := font.NewFont(ld)
	if err != nil {
		return nil, &FontError{Backend: BackendGoText, Op: "parse", Err: err}
	}

	numGlyphs := 0
	if raw, err := ld.RawTable(ot.MustNewTag("maxp")); err == nil {
		if maxp, _, err := tables.ParseMaxp(raw); err == nil {
			numGlyphs = int(maxp.NumGlyphs)
		}
	}

	return &gotextParsedFont{font: ft, numGlyphs: numGlyphs}, nil
}

// gotextParsedFont implements ParsedFont over a go-text font.Font.
// font.Font is read-only and safe for concurrent use; font.Face is not,
// so each rasterizer gets its own face.
type gotextParsedFont struct {
	font      *font.Font
	numGlyphs int
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return f.font.Describe().Family
}

// FullName implements ParsedFont.FullName.
// go-text exposes only the family name.
func (f *gotextParsedFont) FullName() string {
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *gotextParsedFont) NumGlyphs() int {
	return f.numGlyphs
}

// HasGlyph implements ParsedFont.HasGlyph.
func (f *gotextParsedFont) HasGlyph(r rune) bool {
	gid, ok := f.font.NominalGlyph(r)
	return ok && gid != 0
}

// NewRasterizer implements ParsedFont.NewRasterizer.
func (f *gotextParsedFont) NewRasterizer() (GlyphRasterizer, error) {
	return &gotextRasterizer{
		face: font.NewFace(f.font),
		upem: float32(f.font.Upem()),
	}, nil
}

// gotextRasterizer scan-converts glyph outlines with vector.Rasterizer.
type gotextRasterizer struct {
	face *font.Face
	upem float32
	rast *vector.Rasterizer
}

// RenderGlyph implements GlyphRasterizer.
func (r *gotextRasterizer) RenderGlyph(ch rune, pixelSize int) (Glyph, bool) {
	if pixelSize <= 0 || r.upem == 0 {
		return Glyph{}, false
	}
	gid, ok := r.face.NominalGlyph(ch)
	if !ok || gid == 0 {
		return Glyph{}, false
	}

	var outline font.GlyphOutline
	switch data := r.face.GlyphData(gid).(type) {
	case font.GlyphOutline:
		outline = data
	case font.GlyphSVG:
		outline = data.Outline
	default:
		// Bitmap and color glyphs are not rasterized.
		return Glyph{}, false
	}

	scale := float32(pixelSize) / r.upem
	g := Glyph{Advance: float64(r.face.HorizontalAdvance(gid) * scale)}
	if len(outline.Segments) == 0 {
		return g, true
	}

	// Font units grow up; the coverage grid grows down.
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for i := range outline.Segments {
		for _, pt := range outline.Segments[i].ArgsSlice() {
			x, y := pt.X*scale, -pt.Y*scale
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}

	left := int(math.Floor(float64(minX)))
	top := int(math.Floor(float64(minY)))
	w := int(math.Ceil(float64(maxX))) - left
	h := int(math.Ceil(float64(maxY))) - top
	if w <= 0 || h <= 0 {
		return g, true
	}

	if r.rast == nil {
		r.rast = vector.NewRasterizer(w, h)
	} else {
		r.rast.Reset(w, h)
	}
	r.rast.DrawOp = draw.Src

	ox, oy := float32(left), float32(top)
	tx := func(pt ot.SegmentPoint) (float32, float32) {
		return pt.X*scale - ox, -pt.Y*scale - oy
	}

	started := false
	for i := range outline.Segments {
		seg := &outline.Segments[i]
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if started {
				r.rast.ClosePath()
			}
			r.rast.MoveTo(tx(seg.Args[0]))
			started = true
		case ot.SegmentOpLineTo:
			r.rast.LineTo(tx(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := tx(seg.Args[0])
			cx, cy := tx(seg.Args[1])
			r.rast.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := tx(seg.Args[0])
			cx, cy := tx(seg.Args[1])
			dx, dy := tx(seg.Args[2])
			r.rast.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if started {
		r.rast.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.rast.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	g.Coverage = mask.Pix
	g.Width = w
	g.Height = h
	g.BearingX = left
	g.BearingY = -top
	return g, true
}
