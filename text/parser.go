package text

import "sync"

// RasterizerBackend is a font parsing and rasterization engine.
// This abstraction allows swapping the font library without touching the
// atlas builder.
//
// The default implementation uses golang.org/x/image/font/opentype.
type RasterizerBackend interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// A ParsedFont is safe for concurrent use; the rasterizers it creates are not.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// FullName returns the full font name.
	// Returns empty string if not available.
	FullName() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// HasGlyph reports whether the font maps r to a real glyph (not .notdef).
	HasGlyph(r rune) bool

	// NewRasterizer creates a rasterizer bound to this font.
	NewRasterizer() (GlyphRasterizer, error)
}

const (
	// BackendXImage renders with golang.org/x/image/font/opentype.
	BackendXImage = "ximage"

	// BackendGoText renders go-text/typesetting outlines with
	// golang.org/x/image/vector.
	BackendGoText = "gotext"
)

// defaultBackendName is the name of the default backend.
const defaultBackendName = BackendXImage

var (
	backendMu       sync.RWMutex
	backendRegistry = map[string]RasterizerBackend{
		BackendXImage: &ximageBackend{},
		BackendGoText: &gotextBackend{},
	}
)

// RegisterBackend registers a custom rasterizer backend.
// Registering an existing name replaces it.
func RegisterBackend(name string, backend RasterizerBackend) {
	backendMu.Lock()
	defer backendMu.Unlock()
	backendRegistry[name] = backend
}

// Backends returns the registered backend names.
func Backends() []string {
	backendMu.RLock()
	defer backendMu.RUnlock()

	names := make([]string, 0, len(backendRegistry))
	for name := range backendRegistry {
		names = append(names, name)
	}
	return names
}

// getBackend returns the backend by name.
func getBackend(name string) (RasterizerBackend, bool) {
	backendMu.RLock()
	defer backendMu.RUnlock()

	if name == "" {
		name = defaultBackendName
	}
	b, ok := backendRegistry[name]
	return b, ok
}
