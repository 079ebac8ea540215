// Package text loads fonts and rasterizes single glyphs for atlas building.
//
// The pipeline is split the same way as the rest of the module:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF data)
//   - GlyphRasterizer: per-build glyph renderer created from a FontSource
//   - RasterizerBackend: pluggable rasterization engine (default: golang.org/x/image)
//
// # Example usage
//
//	source, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rast, err := source.Rasterizer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	glyph, ok := rast.RenderGlyph('A', 32)
//
// # Pluggable Backend
//
// Two backends are registered: "ximage" renders through
// golang.org/x/image/font/opentype and "gotext" renders go-text/typesetting
// outlines with golang.org/x/image/vector. Custom backends can be registered:
//
//	text.RegisterBackend("mybackend", myBackend)
//	source, err := text.NewFontSource(data, text.WithRasterizer("mybackend"))
//
// A GlyphRasterizer is not safe for concurrent use. FontSource is, so
// concurrent builds each create their own rasterizer from a shared source.
package text
