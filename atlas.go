package fontatlas

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/fontatlas/charset"
	intImage "github.com/gogpu/fontatlas/internal/image"
	"github.com/gogpu/fontatlas/text"
)

// FontResource is a finished atlas: an RGB8 image holding every packed glyph
// and the table locating each character in it.
//
// FontResource is immutable and safe for concurrent reads.
type FontResource struct {
	fontHeight int
	image      *intImage.ImageBuf
	table      *CharacterInfoTable
}

// FontHeight returns the pixel size the glyphs were rasterized at.
func (f *FontResource) FontHeight() int { return f.fontHeight }

// Table returns the character placement table.
func (f *FontResource) Table() *CharacterInfoTable { return f.table }

// CharacterInfo returns the placement of r, or the default entry.
func (f *FontResource) CharacterInfo(r rune) CharacterInfo { return f.table.Get(r) }

// Width returns the atlas width in pixels. It is always a power of two.
func (f *FontResource) Width() int { return f.image.Width() }

// Height returns the atlas height in pixels.
func (f *FontResource) Height() int { return f.image.Height() }

// Stride returns the number of bytes per row (Width * 3).
func (f *FontResource) Stride() int { return f.image.Stride() }

// Pix returns the RGB8 pixels, row-major with a top-left origin.
// The slice is shared with the resource and must not be modified.
func (f *FontResource) Pix() []byte { return f.image.Data() }

// ToStdImage converts the atlas to an opaque *image.NRGBA.
func (f *FontResource) ToStdImage() image.Image { return f.image.ToStdImage() }

// EncodePNG writes the atlas as PNG.
func (f *FontResource) EncodePNG(w io.Writer) error { return f.image.EncodePNG(w) }

// SavePNG writes the atlas to a PNG file.
func (f *FontResource) SavePNG(path string) error { return f.image.SavePNG(path) }

// Build rasterizes every rune of set with rast and packs the results into a
// new atlas.
//
// Characters without a glyph are skipped and resolve to the default table
// entry. The build fails as a whole with ErrInvalidArgument for a pixel size
// below 1 or an empty set, and with ErrCapacityExceeded when the glyphs do
// not fit the largest supported texture.
func Build(rast text.GlyphRasterizer, set charset.Set, opts ...BuildOption) (*FontResource, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.pixelSize < 1 {
		return nil, &ArgumentError{Name: "pixel size", Value: o.pixelSize, Reason: "must be at least 1"}
	}
	if set.Len() == 0 {
		return nil, &ArgumentError{Name: "character set", Value: "{}", Reason: "is empty"}
	}
	if rast == nil {
		return nil, &ArgumentError{Name: "rasterizer", Value: nil, Reason: "is nil"}
	}

	width, err := o.widths().Estimate(o.pixelSize, set.Len())
	if err != nil {
		return nil, err
	}
	Logger().Debug("fontatlas: canvas estimated",
		"pixelSize", o.pixelSize, "glyphs", set.Len(), "width", width)

	canvas, err := o.newCanvas(width)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: allocate %dx%d canvas: %w", width, width, err)
	}
	defer o.releaseCanvas(canvas)

	packer := newRowPacker(canvas, o.pixelSize, rast)
	lastRowY, err := packer.pack(set.Runes())
	if err != nil {
		return nil, err
	}

	img, err := crop(canvas, lastRowY, o.pixelSize)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: crop: %w", err)
	}

	packer.table.seal()
	Logger().Info("fontatlas: atlas built",
		"width", img.Width(), "height", img.Height(),
		"pixelSize", o.pixelSize, "entries", packer.table.Len())

	return &FontResource{
		fontHeight: o.pixelSize,
		image:      img,
		table:      packer.table,
	}, nil
}

// BuildSource builds an atlas from a shared FontSource. The source may feed
// any number of concurrent builds.
func BuildSource(source *text.FontSource, set charset.Set, opts ...BuildOption) (*FontResource, error) {
	rast, err := source.Rasterizer()
	if err != nil {
		return nil, err
	}
	return Build(rast, set, opts...)
}

// Load parses TrueType/OpenType data and builds an atlas for set.
func Load(data []byte, set charset.Set, opts ...BuildOption) (*FontResource, error) {
	return loadSource(func(so text.SourceOption) (*text.FontSource, error) {
		return text.NewFontSource(data, so)
	}, set, opts)
}

// LoadFile reads a font file and builds an atlas for set.
func LoadFile(path string, set charset.Set, opts ...BuildOption) (*FontResource, error) {
	return loadSource(func(so text.SourceOption) (*text.FontSource, error) {
		return text.NewFontSourceFromFile(path, so)
	}, set, opts)
}

// LoadReader reads font data from r and builds an atlas for set.
func LoadReader(r io.Reader, set charset.Set, opts ...BuildOption) (*FontResource, error) {
	return loadSource(func(so text.SourceOption) (*text.FontSource, error) {
		return text.NewFontSourceFromReader(r, so)
	}, set, opts)
}

// loadSource opens a font source with the backend selected by opts, builds
// from it and closes it.
func loadSource(open func(text.SourceOption) (*text.FontSource, error), set charset.Set, opts []BuildOption) (*FontResource, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	source, err := open(text.WithRasterizer(o.backend))
	if err != nil {
		return nil, fmt.Errorf("fontatlas: load font: %w", err)
	}
	defer func() { _ = source.Close() }()

	return BuildSource(source, set, opts...)
}

// newCanvas returns a blank square RGB8 working canvas.
func (o *buildOptions) newCanvas(width int) (*intImage.ImageBuf, error) {
	if o.usePool {
		return intImage.Default().Get(width, width, intImage.FormatRGB8)
	}
	return intImage.NewImageBuf(width, width, intImage.FormatRGB8)
}

func (o *buildOptions) releaseCanvas(canvas *intImage.ImageBuf) {
	if o.usePool {
		intImage.Default().Put(canvas)
	}
}
