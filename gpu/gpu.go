// Package gpu connects font atlases to a GPU device.
//
// It adapts device limits so that atlas widths never exceed what the device
// can sample, uploads finished atlases through a gpucontext.TextureCreator,
// and ships the WGSL shader that draws text from an atlas.
//
// Usage:
//
//	gpu.InstallLimits(deviceLimits) // before the first build
//	res, _ := fontatlas.LoadFile("Roboto-Regular.ttf", charset.Range(' ', '~'))
//	tex, err := gpu.Upload(drawer.TextureCreator(), res)
package gpu

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/fontatlas"
)

// DeviceLimits adapts gputypes.Limits to fontatlas.TextureLimits.
type DeviceLimits gputypes.Limits

// MaxTextureDimension implements fontatlas.TextureLimits.
func (l DeviceLimits) MaxTextureDimension() int {
	return int(l.MaxTextureDimension2D)
}

// InstallLimits makes limits the process-wide source of the maximum atlas
// width. Call it before the first atlas is built; later calls are ignored.
func InstallLimits(limits gputypes.Limits) {
	fontatlas.Logger().Debug("gpu: installing texture limits",
		"maxTextureDimension2D", limits.MaxTextureDimension2D)
	fontatlas.SetTextureLimits(DeviceLimits(limits))
}
