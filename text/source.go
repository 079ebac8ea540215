package text

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// FontSource represents a loaded font file.
// One FontSource can feed any number of atlas builds at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	// Font data
	data   []byte
	parsed ParsedFont

	// Metadata
	name    string
	backend string

	mu     sync.RWMutex
	closed bool
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	backend, ok := getBackend(config.backendName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, config.backendName)
	}

	// Copy before parsing: backends may keep references into the slice.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := backend.Parse(dataCopy)
	if err != nil {
		return nil, err
	}

	s := &FontSource{
		data:    dataCopy,
		parsed:  parsed,
		backend: config.backendName,
	}
	s.addr = s
	s.name = extractFontName(parsed)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// NewFontSourceFromReader loads a FontSource from a byte stream.
func NewFontSourceFromReader(r io.Reader, opts ...SourceOption) (*FontSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font data: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Rasterizer creates a new GlyphRasterizer for this font.
// Each atlas build should use its own rasterizer.
func (s *FontSource) Rasterizer() (GlyphRasterizer, error) {
	s.copyCheck()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrSourceClosed
	}
	return s.parsed.NewRasterizer()
}

// HasGlyph reports whether the font has a real glyph for r.
func (s *FontSource) HasGlyph(r rune) bool {
	s.copyCheck()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}
	return s.parsed.HasGlyph(r)
}

// Name returns the font name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Backend returns the name of the rasterizer backend in use.
func (s *FontSource) Backend() string {
	s.copyCheck()
	return s.backend
}

// NumGlyphs returns the number of glyphs in the font, or 0 after Close.
func (s *FontSource) NumGlyphs() int {
	s.copyCheck()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0
	}
	return s.parsed.NumGlyphs()
}

// Close releases the font data. Rasterizers created earlier stay usable;
// new ones cannot be created.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.parsed = nil
	s.closed = true
	return nil
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}
