package fontatlas

import (
	"fmt"
	"unicode"

	intImage "github.com/gogpu/fontatlas/internal/image"
	"github.com/gogpu/fontatlas/text"
)

// packCursor is the write position of a rowPacker: x within the current row
// and y of the row's top edge.
type packCursor struct {
	x, y int
}

// rowPacker places cells left to right in rows of pixelSize height on a
// square canvas. It is single-use and not safe for concurrent use.
type rowPacker struct {
	canvas    *intImage.ImageBuf
	width     int
	pixelSize int
	rast      text.GlyphRasterizer

	cursor packCursor
	table  *CharacterInfoTable
}

func newRowPacker(canvas *intImage.ImageBuf, pixelSize int, rast text.GlyphRasterizer) *rowPacker {
	return &rowPacker{
		canvas:    canvas,
		width:     canvas.Width(),
		pixelSize: pixelSize,
		rast:      rast,
		table:     NewCharacterInfoTable(CharacterInfo{}),
	}
}

// pack places every rune in order and returns the top of the last row used.
// runes must not contain duplicates.
func (p *rowPacker) pack(runes []rune) (lastRowY int, err error) {
	for _, r := range runes {
		if err := p.place(r); err != nil {
			return 0, err
		}
	}
	return p.cursor.y, nil
}

func (p *rowPacker) place(r rune) error {
	if unicode.IsSpace(r) {
		w := p.pixelSize / 4
		if err := p.reserve(r, w); err != nil {
			return err
		}
		return p.record(r, CharacterInfo{X: p.cursor.x, Y: p.cursor.y, Width: w, Height: p.pixelSize})
	}

	g, ok := p.rast.RenderGlyph(r, p.pixelSize)
	if !ok {
		Logger().Debug("fontatlas: no glyph, skipping", "char", string(r), "code", int(r))
		return nil
	}

	w, h := max(g.Width, 0), max(g.Height, 0)
	var cell *intImage.ImageBuf
	if !g.Empty() {
		var err error
		if cell, err = intImage.FromRaw(g.Coverage, w, h, intImage.FormatGray8); err != nil {
			return fmt.Errorf("fontatlas: glyph %q (%dx%d, %d coverage bytes): %w",
				r, w, h, len(g.Coverage), err)
		}
	}

	if err := p.reserve(r, w); err != nil {
		return err
	}
	if cell != nil {
		baseline := p.pixelSize * 3 / 4
		intImage.Blit(p.canvas, cell, p.cursor.x, p.cursor.y+baseline-g.BearingY)
	}
	return p.record(r, CharacterInfo{X: p.cursor.x, Y: p.cursor.y, Width: w, Height: h})
}

// reserve wraps to a new row when a cell of width w does not fit the current
// one. A wrap that runs past the bottom of the canvas is a capacity error.
func (p *rowPacker) reserve(r rune, w int) error {
	if p.cursor.x+w < p.width {
		return nil
	}
	p.cursor.x = 0
	p.cursor.y += p.pixelSize
	Logger().Debug("fontatlas: row wrap", "char", string(r), "y", p.cursor.y)

	if p.cursor.y+p.pixelSize >= p.width {
		return &CapacityError{
			Char:        r,
			PixelSize:   p.pixelSize,
			CanvasWidth: p.width,
			RowY:        p.cursor.y,
		}
	}
	return nil
}

// record adds the entry and advances the cursor past the cell.
func (p *rowPacker) record(r rune, info CharacterInfo) error {
	if err := p.table.Add(r, info); err != nil {
		return err
	}
	p.cursor.x += info.Width
	return nil
}
