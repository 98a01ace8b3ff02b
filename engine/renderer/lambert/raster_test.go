package lambert

import (
	"testing"

	"github.com/Carmen-Shannon/lambert-go/common"
	"github.com/Carmen-Shannon/lambert-go/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quadIndices = []uint32{0, 1, 2, 2, 3, 0}

func quadVertices(normalZ float32) []model.GPUVertex {
	n := [3]float32{0, 0, normalZ}
	return []model.GPUVertex{
		{Position: [3]float32{-0.5, -0.5, 0}, Normal: n, TexCoord: [2]float32{0, 1}},
		{Position: [3]float32{0.5, -0.5, 0}, Normal: n, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{0.5, 0.5, 0}, Normal: n, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{-0.5, 0.5, 0}, Normal: n, TexCoord: [2]float32{0, 0}},
	}
}

func quadFillingParams() ShadingParams {
	p := identityParams()
	common.Orthographic(p.Projection[:], -0.5, 0.5, -0.5, 0.5, -1, 1)
	return p
}

func TestRenderQuadFrontLit(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	tex := NewTexture(common.SolidTexture(255, 255, 255, 255))

	fb.RenderModel(quadFillingParams(), quadVertices(1), quadIndices, tex)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			require.Equal(t, [4]byte{255, 255, 255, 255}, fb.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestRenderQuadBackFacingDarkensRGBOnly(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	tex := NewTexture(common.SolidTexture(255, 255, 255, 200))

	// Normals point away from the light, so intensity is -1 and the negative
	// RGB clamps to zero at the color write. Alpha is untouched.
	fb.RenderModel(quadFillingParams(), quadVertices(-1), quadIndices, tex)

	require.Equal(t, [4]byte{0, 0, 0, 200}, fb.At(2, 2))
}

func TestRenderNormalLengthScalesIntensity(t *testing.T) {
	// Shortened normals, as produced by the derived normal matrix of a scaled
	// model, dim the output proportionally: no stage renormalizes.
	fb := NewFramebuffer(4, 4)
	tex := NewTexture(common.SolidTexture(255, 255, 255, 255))

	fb.RenderModel(quadFillingParams(), quadVertices(0.5), quadIndices, tex)

	got := fb.At(2, 2)
	// intensity = 0.5, 255 * 0.5 rounds to 128
	assert.InDelta(t, 128, int(got[0]), 1)
	assert.Equal(t, got[0], got[1])
	assert.Equal(t, got[0], got[2])
	assert.Equal(t, byte(255), got[3])
}

func TestRenderTiltedNormalsFullIntensity(t *testing.T) {
	// Under the +Z light only the normal's z component matters; a tilted but
	// z-unit normal shades at full brightness because nothing normalizes it.
	fb := NewFramebuffer(4, 4)
	tex := NewTexture(common.SolidTexture(255, 255, 255, 255))

	verts := quadVertices(1)
	for i := range verts {
		verts[i].Normal = [3]float32{1, 0, 1}
	}
	fb.RenderModel(quadFillingParams(), verts, quadIndices, tex)

	require.Equal(t, [4]byte{255, 255, 255, 255}, fb.At(2, 2))
}

func TestDepthTestNearWins(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	white := NewTexture(common.SolidTexture(255, 255, 255, 255))
	red := NewTexture(common.SolidTexture(255, 0, 0, 255))

	far := quadFillingParams()
	near := quadFillingParams()
	near.Model[14] = 0.4 // toward the viewer under the orthographic depth mapping

	// Near drawn first; the far quad must then fail the depth test everywhere.
	fb.RenderModel(near, quadVertices(1), quadIndices, red)
	fb.RenderModel(far, quadVertices(1), quadIndices, white)
	require.Equal(t, [4]byte{255, 0, 0, 255}, fb.At(2, 2))

	// Draw order reversed gives the same image.
	fb2 := NewFramebuffer(4, 4)
	fb2.RenderModel(far, quadVertices(1), quadIndices, white)
	fb2.RenderModel(near, quadVertices(1), quadIndices, red)
	require.Equal(t, [4]byte{255, 0, 0, 255}, fb2.At(2, 2))
}

func TestRenderTexturedQuadSamplesUV(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	checker := common.CheckerTexture(2, 1, [4]byte{255, 255, 255, 255}, [4]byte{0, 0, 0, 255})
	tex := NewTexture(checker)

	fb.RenderModel(quadFillingParams(), quadVertices(1), quadIndices, tex)

	// v=0 is the top of the texture, so the framebuffer's top-left quadrant
	// shows the checker's top-left cell.
	topLeft := fb.At(1, 1)
	topRight := fb.At(6, 1)
	bottomLeft := fb.At(1, 6)
	assert.NotEqual(t, topLeft, topRight)
	assert.Equal(t, topLeft, fb.At(6, 6), "diagonal cells match")
	assert.Equal(t, topRight, bottomLeft, "anti-diagonal cells match")
}
