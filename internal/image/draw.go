package image

// Rect represents a rectangular region in pixel coordinates.
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// intersect clips r against a width x height image anchored at the origin.
func (r Rect) intersect(width, height int) Rect {
	if r.X < 0 {
		r.Width += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.Height += r.Y
		r.Y = 0
	}
	if r.X+r.Width > width {
		r.Width = width - r.X
	}
	if r.Y+r.Height > height {
		r.Height = height - r.Y
	}
	return r
}

// Blit copies all of src into dst with its top-left corner at (x, y).
// Source pixels replace destination pixels; there is no blending.
// Pixels falling outside dst are clipped, so negative or oversized
// positions are allowed. Gray8 sources are expanded to r=g=b.
//
// Returns the destination rectangle actually written, which is empty when
// nothing overlapped.
func Blit(dst, src *ImageBuf, x, y int) Rect {
	return CopyRegion(dst, src, Rect{Width: src.width, Height: src.height}, x, y)
}

// CopyRegion copies the area r of src into dst with its top-left corner at
// (x, y). Both the source area and the destination are clipped.
func CopyRegion(dst, src *ImageBuf, r Rect, x, y int) Rect {
	// Clip against the source first, shifting the destination by the same amount.
	clipped := r.intersect(src.width, src.height)
	x += clipped.X - r.X
	y += clipped.Y - r.Y

	target := Rect{X: x, Y: y, Width: clipped.Width, Height: clipped.Height}.intersect(dst.width, dst.height)
	if target.Empty() {
		return Rect{}
	}
	sx := clipped.X + (target.X - x)
	sy := clipped.Y + (target.Y - y)

	if src.format == dst.format {
		bpp := dst.format.BytesPerPixel()
		n := target.Width * bpp
		for row := range target.Height {
			so := (sy+row)*src.stride + sx*bpp
			do := (target.Y+row)*dst.stride + target.X*bpp
			copy(dst.data[do:do+n], src.data[so:so+n])
		}
		return target
	}

	for row := range target.Height {
		for col := range target.Width {
			r, g, b := src.GetRGB(sx+col, sy+row)
			_ = dst.SetRGB(target.X+col, target.Y+row, r, g, b)
		}
	}
	return target
}

// Convert returns a copy of b in the requested format.
// Converting to the same format returns a clone.
func Convert(b *ImageBuf, format Format) (*ImageBuf, error) {
	if format == b.format {
		return b.Clone(), nil
	}
	out, err := NewImageBuf(b.width, b.height, format)
	if err != nil {
		return nil, err
	}
	CopyRegion(out, b, Rect{Width: b.width, Height: b.height}, 0, 0)
	return out, nil
}
