package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/fontatlas"
	intImage "github.com/gogpu/fontatlas/internal/image"
)

// TextureFormat is the format of textures created by Upload.
// Coverage sits in the RGB channels; alpha is always opaque.
const TextureFormat = gputypes.TextureFormatRGBA8Unorm

// ErrNilResource is returned when Upload or Update receive a nil atlas.
var ErrNilResource = errors.New("gpu: nil font resource")

// RGBA expands the RGB8 atlas pixels to tightly packed RGBA8, the layout
// gpucontext texture APIs expect.
func RGBA(res *fontatlas.FontResource) ([]byte, error) {
	if res == nil {
		return nil, ErrNilResource
	}
	src, err := intImage.FromRaw(res.Pix(), res.Width(), res.Height(), intImage.FormatRGB8)
	if err != nil {
		return nil, fmt.Errorf("gpu: wrap atlas pixels: %w", err)
	}
	rgba, err := intImage.Convert(src, intImage.FormatRGBA8)
	if err != nil {
		return nil, fmt.Errorf("gpu: convert atlas to RGBA: %w", err)
	}
	return rgba.Data(), nil
}

// Upload creates a texture holding the atlas.
func Upload(creator gpucontext.TextureCreator, res *fontatlas.FontResource) (gpucontext.Texture, error) {
	data, err := RGBA(res)
	if err != nil {
		return nil, err
	}

	tex, err := creator.NewTextureFromRGBA(res.Width(), res.Height(), data)
	if err != nil {
		return nil, fmt.Errorf("gpu: create %dx%d atlas texture: %w", res.Width(), res.Height(), err)
	}

	fontatlas.Logger().Info("gpu: atlas uploaded",
		"width", res.Width(), "height", res.Height(),
		"format", TextureFormat.String(), "bytes", len(data))
	return tex, nil
}

// Update replaces the contents of an existing texture with the atlas.
// The texture must have the atlas dimensions.
func Update(tex gpucontext.TextureUpdater, res *fontatlas.FontResource) error {
	data, err := RGBA(res)
	if err != nil {
		return err
	}
	if err := tex.UpdateData(data); err != nil {
		return fmt.Errorf("gpu: update atlas texture: %w", err)
	}
	return nil
}
