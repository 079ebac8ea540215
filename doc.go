// Package fontatlas builds font glyph atlases.
//
// # Overview
//
// An atlas is one RGB image holding a rasterized glyph for every requested
// character, plus a table mapping each character to its rectangle in that
// image. A renderer uploads the image once and draws text with a single
// texture bind.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fontatlas"
//	    "github.com/gogpu/fontatlas/charset"
//	)
//
//	res, err := fontatlas.LoadFile("Roboto-Regular.ttf", charset.Range(' ', '~'),
//	    fontatlas.WithPixelSize(32))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	info := res.CharacterInfo('A') // X, Y, Width, Height in atlas pixels
//	res.SavePNG("atlas.png")
//
// # Building
//
// A build runs in three steps:
//   - Estimate: the canvas width is the smallest power of two at least
//     ceil(sqrt(n) * pixelSize), capped by the device's maximum texture size
//   - Pack: glyphs are placed left to right in rows pixelSize tall, wrapping
//     when a row is full; each glyph's baseline sits at 3/4 of the row
//   - Crop: the square canvas is cut down to the rows actually used plus a
//     small margin
//
// Whitespace gets a blank cell pixelSize/4 wide. Characters the font cannot
// render are skipped; Get returns the zero CharacterInfo for them.
//
// # Image Format
//
// Pixels are 8-bit RGB, 3 bytes per pixel, row-major with a top-left origin
// and a stride of Width()*3. Coverage is replicated into all three channels.
//
// # Texture Limits
//
// The maximum canvas width comes from a TextureLimits provider, queried once
// per process. Without one, 16384 is used. The gpu sub-package adapts
// gputypes.Limits:
//
//	gpu.InstallLimits(device.Limits())
//
// # Concurrency
//
// A single build is sequential. Independent builds may run concurrently;
// they share only the cached width table and the canvas pool. A finished
// FontResource is immutable.
package fontatlas
