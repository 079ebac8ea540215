package fontatlas

import intImage "github.com/gogpu/fontatlas/internal/image"

// cropMargin is the blank space kept below the last row.
func cropMargin(pixelSize int) int {
	return max(pixelSize/10, 1)
}

// croppedHeight is the final atlas height for a canvas whose last row starts
// at lastRowY.
func croppedHeight(lastRowY, pixelSize int) int {
	return lastRowY + pixelSize + cropMargin(pixelSize)
}

// crop copies the used rows of canvas into a new buffer of the same width.
// Rows beyond the bottom of the canvas stay blank.
func crop(canvas *intImage.ImageBuf, lastRowY, pixelSize int) (*intImage.ImageBuf, error) {
	w, h := canvas.Width(), croppedHeight(lastRowY, pixelSize)

	out, err := intImage.NewImageBuf(w, h, canvas.Format())
	if err != nil {
		return nil, err
	}
	intImage.CopyRegion(out, canvas, intImage.Rect{Width: w, Height: h}, 0, 0)
	return out, nil
}
