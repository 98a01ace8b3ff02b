// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
)

// TextureStagingData holds RGBA pixel data for a texture binding pending GPU upload.
// This is primarily used in the BindGroupProvider to stage texture data before creating the GPU texture and bind group.
type TextureStagingData struct {
	// Pixels is the byte slice representing the actual pixel data for the texture. It should be in RGBA format, with 4 bytes per pixel.
	Pixels []byte
	// Width is the width of the texture in pixels. This is required to correctly create the GPU texture and interpret the pixel data.
	Width uint32
	// Height is the height of the texture in pixels. This is required to correctly create the GPU texture and interpret the pixel data.
	Height uint32
}

// SamplerStagingData holds the configuration for a sampler binding pending GPU creation.
// This is primarily used in the BindGroupProvider to stage sampler data before creating the GPU sampler and bind group.
type SamplerStagingData struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range in each dimension (U, V, W).
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp specify the minimum and maximum level of detail (LOD) for mipmapping.
	LodMinClamp, LodMaxClamp float32
	// Compare specifies the comparison function for comparison samplers, used in shadow mapping and similar techniques.
	Compare wgpu.CompareFunction
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering, which can improve texture quality at oblique viewing angles.
	MaxAnisotropy uint16
}

// SolidTexture builds staging data for a 1x1 texture of a single RGBA color.
// Useful as an untextured fallback: sampling it returns the color unchanged
// at every UV, so the diffuse term alone drives the result.
//
// Parameters:
//   - r, g, b, a: the color, one byte per channel
//
// Returns:
//   - TextureStagingData: ready for upload via InitTextureView
func SolidTexture(r, g, b, a byte) TextureStagingData {
	return TextureStagingData{
		Pixels: []byte{r, g, b, a},
		Width:  1,
		Height: 1,
	}
}

// CheckerTexture builds staging data for a two-color checkerboard, cells
// pixels per square, size pixels on each side.
//
// Parameters:
//   - size: texture width and height in pixels
//   - cells: edge length of each checker square in pixels
//   - c0, c1: the two RGBA cell colors
//
// Returns:
//   - TextureStagingData: ready for upload via InitTextureView
func CheckerTexture(size, cells uint32, c0, c1 [4]byte) TextureStagingData {
	pixels := make([]byte, size*size*4)
	for y := uint32(0); y < size; y++ {
		for x := uint32(0); x < size; x++ {
			c := c0
			if ((x/cells)+(y/cells))%2 == 1 {
				c = c1
			}
			i := (y*size + x) * 4
			copy(pixels[i:i+4], c[:])
		}
	}
	return TextureStagingData{Pixels: pixels, Width: size, Height: size}
}

// DecodeTextureFile loads an image file from disk and decodes it to raw RGBA
// staging data. Supports PNG and JPEG formats.
// Reference: https://pkg.go.dev/image
//
// Parameters:
//   - path: file path of the image to decode
//
// Returns:
//   - TextureStagingData: raw RGBA pixel data (4 bytes per pixel, row-major order)
//   - error: error if the file cannot be opened or decoded
func DecodeTextureFile(path string) (TextureStagingData, error) {
	file, err := os.Open(path)
	if err != nil {
		return TextureStagingData{}, fmt.Errorf("failed to open texture file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return TextureStagingData{}, fmt.Errorf("failed to decode texture file %s: %w", path, err)
	}
	return imageToStaging(img), nil
}

// DecodeTextureBytes decodes embedded image bytes (PNG or JPEG) to raw RGBA
// staging data.
//
// Parameters:
//   - data: raw image file bytes
//
// Returns:
//   - TextureStagingData: raw RGBA pixel data (4 bytes per pixel, row-major order)
//   - error: error if decoding fails
func DecodeTextureBytes(data []byte) (TextureStagingData, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return TextureStagingData{}, fmt.Errorf("failed to decode embedded image: %w", err)
	}
	return imageToStaging(img), nil
}

func imageToStaging(img image.Image) TextureStagingData {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return TextureStagingData{
		Pixels: rgba.Pix,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
	}
}
