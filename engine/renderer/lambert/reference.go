package lambert

import (
	"github.com/Carmen-Shannon/lambert-go/common"
	"github.com/Carmen-Shannon/lambert-go/engine/light"
	"github.com/Carmen-Shannon/lambert-go/engine/model"
	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
)

// ShadingParams holds the CPU-side shading parameters mirrored by both binding
// paths. All matrices are column-major.
type ShadingParams struct {
	Projection   [16]float32
	View         [16]float32
	Model        [16]float32
	NormalMatrix [9]float32
}

// Varyings is the vertex stage output: a clip-space position plus the values
// interpolated across the triangle for the fragment stage.
type Varyings struct {
	// ClipPosition is the homogeneous clip-space position before the w divide.
	ClipPosition [4]float32

	// WorldNormal is the normal-matrix-transformed normal, not normalized.
	WorldNormal [3]float32

	// UV is the texture coordinate.
	UV [2]float32
}

// TransformVertex is the CPU reference for the vertex stage. It produces the
// same outputs as both WGSL vertex programs: clip position from
// projection * view * model, an unnormalized transformed normal, and a
// passed-through UV.
//
// Parameters:
//   - p: the shading parameters
//   - v: the input vertex
//
// Returns:
//   - Varyings: the vertex stage outputs
func TransformVertex(p ShadingParams, v model.GPUVertex) Varyings {
	var world, view4, clip [4]float32
	pos := [4]float32{v.Position[0], v.Position[1], v.Position[2], 1}
	common.MulVec4(world[:], p.Model[:], pos[:])
	common.MulVec4(view4[:], p.View[:], world[:])
	common.MulVec4(clip[:], p.Projection[:], view4[:])

	var normal [3]float32
	common.MulVec3(normal[:], p.NormalMatrix[:], v.Normal[:])

	return Varyings{
		ClipPosition: clip,
		WorldNormal:  normal,
		UV:           v.TexCoord,
	}
}

// Texture is a CPU-side RGBA8 texture sampled by the reference fragment stage.
type Texture struct {
	// Pixels is tightly packed row-major RGBA8 data, Width*Height*4 bytes.
	Pixels []byte

	Width  uint32
	Height uint32

	// AddressMode controls how coordinates outside [0,1) are handled.
	// The zero value falls back to repeat wrapping, matching the sampler default.
	AddressMode wgpu.AddressMode
}

// NewTexture wraps staging data in a sampleable Texture using repeat wrapping.
//
// Parameters:
//   - staging: the pixel data and dimensions
//
// Returns:
//   - *Texture: the sampleable texture
func NewTexture(staging common.TextureStagingData) *Texture {
	return &Texture{
		Pixels:      staging.Pixels,
		Width:       staging.Width,
		Height:      staging.Height,
		AddressMode: wgpu.AddressModeRepeat,
	}
}

// Sample fetches the texel nearest to the given coordinate, with [0,1) mapping
// across the full texture and v increasing downward.
//
// Parameters:
//   - u: the horizontal texture coordinate
//   - v: the vertical texture coordinate
//
// Returns:
//   - [4]float32: the RGBA texel scaled to [0,1]
func (t *Texture) Sample(u, v float32) [4]float32 {
	x := t.resolve(u, t.Width)
	y := t.resolve(v, t.Height)
	i := (y*t.Width + x) * 4
	return [4]float32{
		float32(t.Pixels[i]) / 255,
		float32(t.Pixels[i+1]) / 255,
		float32(t.Pixels[i+2]) / 255,
		float32(t.Pixels[i+3]) / 255,
	}
}

func (t *Texture) resolve(coord float32, extent uint32) uint32 {
	e := float32(extent)
	switch t.AddressMode {
	case wgpu.AddressModeClampToEdge:
		coord = math32.Min(math32.Max(coord, 0), 1)
		texel := math32.Min(coord*e, e-1)
		return uint32(texel)
	case wgpu.AddressModeMirrorRepeat:
		period := math32.Mod(coord, 2)
		if period < 0 {
			period += 2
		}
		if period > 1 {
			period = 2 - period
		}
		texel := math32.Min(period*e, e-1)
		return uint32(texel)
	default: // repeat
		frac := coord - math32.Floor(coord)
		texel := math32.Min(frac*e, e-1)
		return uint32(texel)
	}
}

// ShadeFragment is the CPU reference for the fragment stage: the sampled texel's
// RGB is scaled by the Lambert term, which is left unclamped so back-facing
// geometry goes negative, and alpha is returned untouched.
//
// Parameters:
//   - tex: the diffuse texture to sample
//   - normal: the interpolated world normal, used as-is; its length scales
//     the intensity
//   - uv: the interpolated texture coordinate
//
// Returns:
//   - [4]float32: the RGBA fragment color before the color target clamp
func ShadeFragment(tex *Texture, normal [3]float32, uv [2]float32) [4]float32 {
	base := tex.Sample(uv[0], uv[1])
	intensity := light.Diffuse(normal)
	return [4]float32{
		base[0] * intensity,
		base[1] * intensity,
		base[2] * intensity,
		base[3],
	}
}
