package fontatlas

import "github.com/gogpu/fontatlas/text"

// DefaultPixelSize is the pixel size used when WithPixelSize is not given.
const DefaultPixelSize = 32

// BuildOption configures an atlas build.
//
// Example:
//
//	res, err := fontatlas.LoadFile("Roboto-Regular.ttf", charset.Range(' ', '~'),
//	    fontatlas.WithPixelSize(48),
//	    fontatlas.WithBackend(text.BackendGoText))
type BuildOption func(*buildOptions)

// buildOptions holds optional configuration for a build.
type buildOptions struct {
	pixelSize    int
	backend      string
	maxDimension int // 0 uses StandardWidths
	usePool      bool
}

// defaultBuildOptions returns the default build options.
func defaultBuildOptions() buildOptions {
	return buildOptions{
		pixelSize: DefaultPixelSize,
		backend:   text.BackendXImage,
		usePool:   true,
	}
}

// widths returns the width table for this build.
func (o *buildOptions) widths() *WidthTable {
	if o.maxDimension > 0 {
		return NewWidthTable(o.maxDimension)
	}
	return StandardWidths()
}

// WithPixelSize sets the nominal font height in pixels. Values below 1 make
// the build fail with ErrInvalidArgument.
func WithPixelSize(px int) BuildOption {
	return func(o *buildOptions) {
		o.pixelSize = px
	}
}

// WithBackend selects the text rasterizer backend used by Load, LoadFile and
// LoadReader. It has no effect on Build, which receives a rasterizer directly.
func WithBackend(name string) BuildOption {
	return func(o *buildOptions) {
		o.backend = name
	}
}

// WithMaxTextureDimension overrides the process-wide texture limit for one
// build. A value of 0 restores the default behavior.
func WithMaxTextureDimension(n int) BuildOption {
	return func(o *buildOptions) {
		o.maxDimension = n
	}
}

// WithCanvasPool controls whether the working canvas is drawn from and
// returned to the shared canvas pool. Enabled by default; canvases wider than
// 2048 pixels are never retained.
func WithCanvasPool(enabled bool) BuildOption {
	return func(o *buildOptions) {
		o.usePool = enabled
	}
}
