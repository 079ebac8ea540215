package gpu

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/naga"

	"github.com/gogpu/fontatlas"
)

// AtlasShaderWGSL draws text quads sampled from an atlas texture.
//
// Bindings (group 0): 0 uniforms {screen_size, atlas_size, color},
// 1 atlas texture, 2 sampler. Vertex inputs: location 0 screen position,
// location 1 atlas pixel position. Entry points: vs_main, fs_main.
//
//go:embed shaders/atlas_text.wgsl
var AtlasShaderWGSL string

var compileAtlasShader = sync.OnceValues(func() ([]uint32, error) {
	return compileShaderToSPIRV(AtlasShaderWGSL)
})

// CompileAtlasShader compiles AtlasShaderWGSL to SPIR-V words. The result is
// computed once and shared; callers must not modify it.
func CompileAtlasShader() ([]uint32, error) {
	return compileAtlasShader()
}

// compileShaderToSPIRV compiles WGSL source to SPIR-V uint32 words.
func compileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile atlas shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	fontatlas.Logger().Debug("gpu: atlas shader compiled", "words", len(spirvCode))
	return spirvCode, nil
}
