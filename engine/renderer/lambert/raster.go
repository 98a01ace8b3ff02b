package lambert

import (
	"github.com/Carmen-Shannon/lambert-go/engine/model"
	"github.com/chewxy/math32"
)

// Framebuffer is a CPU render target used to verify shading output without a GPU.
// Color is RGBA8, depth is float32 in [0,1] with smaller values closer.
type Framebuffer struct {
	Width  int
	Height int
	Color  []byte
	Depth  []float32
}

// FragmentFunc computes a fragment color from interpolated varyings. The result
// may lie outside [0,1]; the framebuffer clamps at the color write.
type FragmentFunc func(v Varyings) [4]float32

// NewFramebuffer creates a framebuffer cleared to transparent black with depth 1.
//
// Parameters:
//   - width: the target width in pixels
//   - height: the target height in pixels
//
// Returns:
//   - *Framebuffer: the cleared framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Color:  make([]byte, width*height*4),
		Depth:  make([]float32, width*height),
	}
	for i := range fb.Depth {
		fb.Depth[i] = 1
	}
	return fb
}

// Clear resets every pixel to the given color and every depth value to 1.
// The clear color is clamped to [0,1] like any other color write.
//
// Parameters:
//   - color: the RGBA clear color
func (fb *Framebuffer) Clear(color [4]float32) {
	var texel [4]byte
	for c := 0; c < 4; c++ {
		texel[c] = colorByte(color[c])
	}
	for i := 0; i < len(fb.Color); i += 4 {
		copy(fb.Color[i:i+4], texel[:])
	}
	for i := range fb.Depth {
		fb.Depth[i] = 1
	}
}

// At returns the RGBA bytes stored at the given pixel.
//
// Parameters:
//   - x: the pixel column
//   - y: the pixel row, 0 at the top
//
// Returns:
//   - [4]byte: the stored RGBA value
func (fb *Framebuffer) At(x, y int) [4]byte {
	i := (y*fb.Width + x) * 4
	return [4]byte{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

// RasterizeTriangle rasterizes one triangle into the framebuffer with
// perspective-correct interpolation and a less-than depth test. No face culling
// is applied, matching the render pipeline default.
//
// Parameters:
//   - v0, v1, v2: the triangle's vertex stage outputs
//   - frag: the fragment function invoked per covered pixel
func (fb *Framebuffer) RasterizeTriangle(v0, v1, v2 Varyings, frag FragmentFunc) {
	verts := [3]Varyings{v0, v1, v2}

	// Screen-space positions after the w divide and viewport transform, with
	// 1/w kept for perspective-correct attribute interpolation.
	var sx, sy, sz, invW [3]float32
	for i, v := range verts {
		w := v.ClipPosition[3]
		if w <= 0 {
			return // behind the eye; a full clipper is out of scope for the reference
		}
		invW[i] = 1 / w
		ndcX := v.ClipPosition[0] * invW[i]
		ndcY := v.ClipPosition[1] * invW[i]
		sz[i] = v.ClipPosition[2] * invW[i]
		sx[i] = (ndcX + 1) * 0.5 * float32(fb.Width)
		sy[i] = (1 - ndcY) * 0.5 * float32(fb.Height)
	}

	area := edge(sx[0], sy[0], sx[1], sy[1], sx[2], sy[2])
	if area == 0 {
		return
	}

	minX := int(math32.Floor(math32.Min(sx[0], math32.Min(sx[1], sx[2]))))
	maxX := int(math32.Ceil(math32.Max(sx[0], math32.Max(sx[1], sx[2]))))
	minY := int(math32.Floor(math32.Min(sy[0], math32.Min(sy[1], sy[2]))))
	maxY := int(math32.Ceil(math32.Max(sy[0], math32.Max(sy[1], sy[2]))))
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, fb.Width-1)
	maxY = min(maxY, fb.Height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			py := float32(y) + 0.5

			b0 := edge(sx[1], sy[1], sx[2], sy[2], px, py) / area
			b1 := edge(sx[2], sy[2], sx[0], sy[0], px, py) / area
			b2 := edge(sx[0], sy[0], sx[1], sy[1], px, py) / area
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			depth := b0*sz[0] + b1*sz[1] + b2*sz[2]
			di := y*fb.Width + x
			if depth < 0 || depth > 1 || depth >= fb.Depth[di] {
				continue
			}

			// Perspective-correct weights.
			w0 := b0 * invW[0]
			w1 := b1 * invW[1]
			w2 := b2 * invW[2]
			wSum := w0 + w1 + w2

			var v Varyings
			for c := 0; c < 3; c++ {
				v.WorldNormal[c] = (w0*verts[0].WorldNormal[c] + w1*verts[1].WorldNormal[c] + w2*verts[2].WorldNormal[c]) / wSum
			}
			for c := 0; c < 2; c++ {
				v.UV[c] = (w0*verts[0].UV[c] + w1*verts[1].UV[c] + w2*verts[2].UV[c]) / wSum
			}

			color := frag(v)
			fb.Depth[di] = depth
			ci := di * 4
			for c := 0; c < 4; c++ {
				fb.Color[ci+c] = colorByte(color[c])
			}
		}
	}
}

// RenderModel transforms and rasterizes an indexed triangle list, shading each
// fragment with the reference Lambert fragment stage.
//
// Parameters:
//   - p: the shading parameters
//   - vertices: the model's vertices
//   - indices: the triangle list indices
//   - tex: the diffuse texture
func (fb *Framebuffer) RenderModel(p ShadingParams, vertices []model.GPUVertex, indices []uint32, tex *Texture) {
	frag := func(v Varyings) [4]float32 {
		return ShadeFragment(tex, v.WorldNormal, v.UV)
	}
	for i := 0; i+2 < len(indices); i += 3 {
		v0 := TransformVertex(p, vertices[indices[i]])
		v1 := TransformVertex(p, vertices[indices[i+1]])
		v2 := TransformVertex(p, vertices[indices[i+2]])
		fb.RasterizeTriangle(v0, v1, v2, frag)
	}
}

// edge computes the signed doubled area of the triangle (ax,ay) (bx,by) (px,py).
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// colorByte clamps a fragment channel to [0,1] and converts it to a byte.
// This is the only place shading output is clamped.
func colorByte(v float32) byte {
	v = math32.Min(math32.Max(v, 0), 1)
	return byte(v*255 + 0.5)
}
