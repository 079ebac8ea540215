package text

import (
	"testing"
)

func TestRenderGlyph(t *testing.T) {
	for _, backend := range allBackends {
		t.Run(backend, func(t *testing.T) {
			rast, err := newTestSource(t, backend).Rasterizer()
			if err != nil {
				t.Fatalf("Rasterizer failed: %v", err)
			}

			g, ok := rast.RenderGlyph('A', 32)
			if !ok {
				t.Fatal("RenderGlyph('A') not found")
			}
			if g.Empty() {
				t.Fatal("glyph 'A' is empty")
			}
			if len(g.Coverage) != g.Width*g.Height {
				t.Errorf("len(Coverage) = %d, want %d", len(g.Coverage), g.Width*g.Height)
			}
			if g.Width > 32 || g.Height > 32 {
				t.Errorf("glyph 'A' at 32px is %dx%d, larger than the em", g.Width, g.Height)
			}
			// 'A' sits on the baseline, so its top is above it by roughly its height.
			if g.BearingY <= 0 || g.BearingY > g.Height+1 {
				t.Errorf("BearingY = %d for height %d", g.BearingY, g.Height)
			}
			if g.Advance <= 0 {
				t.Errorf("Advance = %v, want > 0", g.Advance)
			}

			var ink int
			for _, c := range g.Coverage {
				if c > 0 {
					ink++
				}
			}
			if ink == 0 {
				t.Error("glyph 'A' has no ink")
			}
		})
	}
}

func TestRenderGlyphDescender(t *testing.T) {
	for _, backend := range allBackends {
		t.Run(backend, func(t *testing.T) {
			rast, err := newTestSource(t, backend).Rasterizer()
			if err != nil {
				t.Fatalf("Rasterizer failed: %v", err)
			}

			g, ok := rast.RenderGlyph('g', 32)
			if !ok {
				t.Fatal("RenderGlyph('g') not found")
			}
			// Descenders extend below the baseline.
			if g.Height <= g.BearingY {
				t.Errorf("glyph 'g' height %d <= BearingY %d, expected a descender", g.Height, g.BearingY)
			}
		})
	}
}

func TestRenderGlyphSpace(t *testing.T) {
	for _, backend := range allBackends {
		t.Run(backend, func(t *testing.T) {
			rast, err := newTestSource(t, backend).Rasterizer()
			if err != nil {
				t.Fatalf("Rasterizer failed: %v", err)
			}

			g, ok := rast.RenderGlyph(' ', 32)
			if !ok {
				t.Fatal("RenderGlyph(' ') not found")
			}
			if !g.Empty() {
				t.Errorf("space rendered as %dx%d, want empty", g.Width, g.Height)
			}
			if g.Advance <= 0 {
				t.Errorf("space Advance = %v, want > 0", g.Advance)
			}
		})
	}
}

func TestRenderGlyphMissing(t *testing.T) {
	for _, backend := range allBackends {
		t.Run(backend, func(t *testing.T) {
			rast, err := newTestSource(t, backend).Rasterizer()
			if err != nil {
				t.Fatalf("Rasterizer failed: %v", err)
			}

			if _, ok := rast.RenderGlyph('\ue000', 32); ok {
				t.Error("RenderGlyph(U+E000) ok = true, want false")
			}
			if _, ok := rast.RenderGlyph('A', 0); ok {
				t.Error("RenderGlyph at pixel size 0 ok = true, want false")
			}
		})
	}
}

func TestRenderGlyphScales(t *testing.T) {
	for _, backend := range allBackends {
		t.Run(backend, func(t *testing.T) {
			rast, err := newTestSource(t, backend).Rasterizer()
			if err != nil {
				t.Fatalf("Rasterizer failed: %v", err)
			}

			small, _ := rast.RenderGlyph('M', 12)
			large, _ := rast.RenderGlyph('M', 48)
			if large.Width <= small.Width || large.Height <= small.Height {
				t.Errorf("M at 48px (%dx%d) not larger than at 12px (%dx%d)",
					large.Width, large.Height, small.Width, small.Height)
			}
		})
	}
}

func TestRenderGlyphOwnsCoverage(t *testing.T) {
	rast, err := newTestSource(t, BackendXImage).Rasterizer()
	if err != nil {
		t.Fatalf("Rasterizer failed: %v", err)
	}

	a, _ := rast.RenderGlyph('A', 24)
	before := append([]byte(nil), a.Coverage...)
	_, _ = rast.RenderGlyph('W', 24)

	for i := range before {
		if a.Coverage[i] != before[i] {
			t.Fatal("rendering another glyph modified an earlier glyph's coverage")
		}
	}
}

func TestBackendsAgree(t *testing.T) {
	x, err := newTestSource(t, BackendXImage).Rasterizer()
	if err != nil {
		t.Fatalf("Rasterizer failed: %v", err)
	}
	g, err := newTestSource(t, BackendGoText).Rasterizer()
	if err != nil {
		t.Fatalf("Rasterizer failed: %v", err)
	}

	for _, r := range "AHgx" {
		a, _ := x.RenderGlyph(r, 40)
		b, _ := g.RenderGlyph(r, 40)
		// Hinting may shift edges by a pixel or two.
		if abs(a.Width-b.Width) > 3 || abs(a.Height-b.Height) > 3 {
			t.Errorf("%q: ximage %dx%d, gotext %dx%d", r, a.Width, a.Height, b.Width, b.Height)
		}
		if abs(a.BearingY-b.BearingY) > 3 {
			t.Errorf("%q: ximage BearingY %d, gotext %d", r, a.BearingY, b.BearingY)
		}
	}
}

func TestGlyphAt(t *testing.T) {
	g := Glyph{Coverage: []byte{1, 2, 3, 4, 5, 6}, Width: 3, Height: 2}

	tests := []struct {
		x, y int
		want byte
	}{
		{0, 0, 1},
		{2, 0, 3},
		{1, 1, 5},
		{-1, 0, 0},
		{3, 0, 0},
		{0, 2, 0},
	}
	for _, tt := range tests {
		if got := g.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRasterizerFunc(t *testing.T) {
	var rast GlyphRasterizer = RasterizerFunc(func(r rune, pixelSize int) (Glyph, bool) {
		return Glyph{Width: pixelSize, Height: 1, Coverage: make([]byte, pixelSize)}, r == 'x'
	})

	g, ok := rast.RenderGlyph('x', 5)
	if !ok || g.Width != 5 {
		t.Errorf("RenderGlyph('x', 5) = %+v, %v", g, ok)
	}
	if _, ok := rast.RenderGlyph('y', 5); ok {
		t.Error("RenderGlyph('y') ok = true, want false")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestXImageFacePerSize(t *testing.T) {
	rast, err := newTestSource(t, BackendXImage).Rasterizer()
	if err != nil {
		t.Fatalf("Rasterizer failed: %v", err)
	}
	xr, ok := rast.(*ximageRasterizer)
	if !ok {
		t.Fatalf("Rasterizer() = %T, want *ximageRasterizer", rast)
	}

	first, _ := xr.RenderGlyph('A', 20)
	again, _ := xr.RenderGlyph('A', 20)
	_, _ = xr.RenderGlyph('A', 40)

	if len(xr.faces) != 2 {
		t.Errorf("cached faces = %d, want 2", len(xr.faces))
	}
	if first.Width != again.Width || first.Height != again.Height {
		t.Errorf("cached face rendered %dx%d, first render %dx%d",
			again.Width, again.Height, first.Width, first.Height)
	}
	for i := range first.Coverage {
		if first.Coverage[i] != again.Coverage[i] {
			t.Fatal("cached face rendered different coverage")
		}
	}
}
