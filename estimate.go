package fontatlas

import (
	"math"
	"math/bits"
	"sync"
)

const (
	// minTextureShift is the exponent of the smallest supported width (4).
	minTextureShift = 2

	// DefaultMaxTextureDimension is used when no TextureLimits provider is
	// installed or the provider has no answer.
	DefaultMaxTextureDimension = 1 << 14
)

// TextureLimits reports the largest 2D texture edge the graphics device
// accepts. A zero or negative value means the limit is unknown.
//
// The gpu sub-package adapts gputypes.Limits to this interface.
type TextureLimits interface {
	MaxTextureDimension() int
}

// TextureLimitsFunc adapts a plain function to TextureLimits.
type TextureLimitsFunc func() int

// MaxTextureDimension implements TextureLimits.
func (f TextureLimitsFunc) MaxTextureDimension() int { return f() }

// WidthTable is the ordered set of canvas widths an atlas may use: the powers
// of two from 4 up to a maximum texture dimension.
type WidthTable struct {
	widths []int
}

// NewWidthTable builds the table for maxDimension. Values below 4 fall back
// to DefaultMaxTextureDimension. A maxDimension that is not a power of two is
// rounded down to one.
func NewWidthTable(maxDimension int) *WidthTable {
	if maxDimension < 1<<minTextureShift {
		maxDimension = DefaultMaxTextureDimension
	}
	var widths []int
	// The sign bit of int is never a width.
	for shift := minTextureShift; shift < bits.UintSize-1; shift++ {
		w := 1 << shift
		if w > maxDimension {
			break
		}
		widths = append(widths, w)
	}
	return &WidthTable{widths: widths}
}

// Widths returns the supported widths in ascending order.
func (t *WidthTable) Widths() []int {
	out := make([]int, len(t.widths))
	copy(out, t.widths)
	return out
}

// Max returns the largest supported width.
func (t *WidthTable) Max() int {
	return t.widths[len(t.widths)-1]
}

// Estimate returns the canvas width for glyphCount glyphs at pixelSize:
// the smallest supported width not below ceil(sqrt(glyphCount)*pixelSize)
// (and not below pixelSize), or the largest supported width when none is big
// enough.
func (t *WidthTable) Estimate(pixelSize, glyphCount int) (int, error) {
	if pixelSize < 1 {
		return 0, &ArgumentError{Name: "pixel size", Value: pixelSize, Reason: "must be at least 1"}
	}
	if glyphCount < 1 {
		return 0, &ArgumentError{Name: "glyph count", Value: glyphCount, Reason: "must be at least 1"}
	}

	raw := int(math.Ceil(math.Sqrt(float64(glyphCount)) * float64(pixelSize)))
	raw = max(raw, pixelSize)

	for _, w := range t.widths {
		if w >= raw {
			return w, nil
		}
	}
	return t.Max(), nil
}

var (
	limitsMu       sync.Mutex
	textureLimits  TextureLimits
	standardOnce   sync.Once
	standardWidths *WidthTable
)

// SetTextureLimits installs the provider consulted for the maximum texture
// dimension. The provider is queried once, on the first estimate in the
// process; installing one after that has no effect and is logged.
func SetTextureLimits(l TextureLimits) {
	limitsMu.Lock()
	defer limitsMu.Unlock()

	if standardWidths != nil {
		Logger().Warn("fontatlas: texture limits installed after width table was cached; ignored")
		return
	}
	textureLimits = l
}

// StandardWidths returns the process-wide width table, computing it on first
// use from the installed TextureLimits.
func StandardWidths() *WidthTable {
	standardOnce.Do(func() {
		limitsMu.Lock()
		defer limitsMu.Unlock()

		maxDim := 0
		if textureLimits != nil {
			maxDim = textureLimits.MaxTextureDimension()
		}
		standardWidths = NewWidthTable(maxDim)
		Logger().Debug("fontatlas: width table cached",
			"limitsProvider", textureLimits != nil,
			"maxWidth", standardWidths.Max())
	})
	return standardWidths
}

// EstimateWidth estimates the canvas width using the process-wide table.
func EstimateWidth(pixelSize, glyphCount int) (int, error) {
	return StandardWidths().Estimate(pixelSize, glyphCount)
}
