package gpu

import (
	"unicode"

	"github.com/gogpu/fontatlas"
)

// Vertex is one vertex of a text quad, laid out as AtlasShaderWGSL expects:
// screen position followed by atlas pixel position.
type Vertex struct {
	X, Y float32
	U, V float32
}

// AppendQuads appends two triangles per visible character of s, starting
// with the pen at (x, y), the top of the line. Quads span the whole row
// height so that ink placed relative to the baseline is included.
// Whitespace advances the pen by its cell width without emitting vertices;
// characters missing from the atlas are skipped.
func AppendQuads(dst []Vertex, res *fontatlas.FontResource, s string, x, y float32) []Vertex {
	h := float32(res.FontHeight())
	for _, r := range s {
		info := res.CharacterInfo(r)
		w := float32(info.Width)
		if unicode.IsSpace(r) || info.Empty() {
			x += w
			continue
		}

		u0, v0 := float32(info.X), float32(info.Y)
		u1, v1 := u0+w, v0+h
		x0, y0, x1, y1 := x, y, x+w, y+h

		dst = append(dst,
			Vertex{x0, y0, u0, v0},
			Vertex{x1, y0, u1, v0},
			Vertex{x0, y1, u0, v1},
			Vertex{x1, y0, u1, v0},
			Vertex{x1, y1, u1, v1},
			Vertex{x0, y1, u0, v1},
		)
		x += w
	}
	return dst
}
