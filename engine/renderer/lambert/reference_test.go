package lambert

import (
	"testing"

	"github.com/Carmen-Shannon/lambert-go/common"
	"github.com/Carmen-Shannon/lambert-go/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityParams() ShadingParams {
	var p ShadingParams
	common.Identity(p.Projection[:])
	common.Identity(p.View[:])
	common.Identity(p.Model[:])
	p.NormalMatrix = [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	return p
}

func TestTransformVertexIdentity(t *testing.T) {
	v := model.GPUVertex{
		Position: [3]float32{0.5, -0.25, 0.75},
		Normal:   [3]float32{0, 0, 1},
		TexCoord: [2]float32{0.25, 0.75},
	}

	out := TransformVertex(identityParams(), v)

	assert.Equal(t, [4]float32{0.5, -0.25, 0.75, 1}, out.ClipPosition)
	assert.Equal(t, [3]float32{0, 0, 1}, out.WorldNormal)
	assert.Equal(t, [2]float32{0.25, 0.75}, out.UV)
}

func TestTransformVertexMatrixOrder(t *testing.T) {
	// Model translates +1 in x, view translates -3 in z. Matrix order must be
	// projection * view * model, so the translation lands before the view shift.
	p := identityParams()
	p.Model[12] = 1
	p.View[14] = -3

	out := TransformVertex(p, model.GPUVertex{Normal: [3]float32{0, 0, 1}})

	assert.Equal(t, [4]float32{1, 0, -3, 1}, out.ClipPosition)
}

func TestTransformVertexNormalNotNormalized(t *testing.T) {
	p := identityParams()
	// Scale normals by 3; the vertex stage must not renormalize.
	p.NormalMatrix = [9]float32{3, 0, 0, 0, 3, 0, 0, 0, 3}

	out := TransformVertex(p, model.GPUVertex{Normal: [3]float32{0, 0, 1}})

	assert.Equal(t, [3]float32{0, 0, 3}, out.WorldNormal)
}

func TestShadeFragmentFrontAndBack(t *testing.T) {
	tex := NewTexture(common.SolidTexture(255, 255, 255, 128))

	front := ShadeFragment(tex, [3]float32{0, 0, 1}, [2]float32{0.5, 0.5})
	assert.InDelta(t, 1, front[0], 1e-6)
	assert.InDelta(t, 1, front[1], 1e-6)
	assert.InDelta(t, 1, front[2], 1e-6)

	// Back-facing normals drive RGB negative; nothing clamps here.
	back := ShadeFragment(tex, [3]float32{0, 0, -1}, [2]float32{0.5, 0.5})
	assert.InDelta(t, -1, back[0], 1e-6)
	assert.InDelta(t, -1, back[1], 1e-6)
	assert.InDelta(t, -1, back[2], 1e-6)

	// Alpha is never attenuated by the lighting term.
	assert.InDelta(t, float32(128)/255, front[3], 1e-6)
	assert.Equal(t, front[3], back[3])
}

func TestShadeFragmentUsesRawInterpolatedNormal(t *testing.T) {
	tex := NewTexture(common.SolidTexture(255, 255, 255, 255))

	// The intensity is exactly the dot product, so normal length scales it:
	// a half-length normal halves the brightness, a long one overshoots 1.
	half := ShadeFragment(tex, [3]float32{0, 0, 0.5}, [2]float32{0.5, 0.5})
	assert.InDelta(t, 0.5, half[0], 1e-6)

	long := ShadeFragment(tex, [3]float32{0, 0, 3}, [2]float32{0.5, 0.5})
	assert.InDelta(t, 3, long[0], 1e-6)

	// Tilt contributes only through the z component under the +Z light; no
	// renormalization folds x back in.
	tilted := ShadeFragment(tex, [3]float32{1, 0, 1}, [2]float32{0.5, 0.5})
	assert.InDelta(t, 1, tilted[0], 1e-6)
}

func TestTextureSampleAddressModes(t *testing.T) {
	checker := common.CheckerTexture(2, 1, [4]byte{255, 255, 255, 255}, [4]byte{0, 0, 0, 255})
	tex := NewTexture(checker)
	require.Equal(t, uint32(2), tex.Width)

	topLeft := tex.Sample(0.25, 0.25)
	topRight := tex.Sample(0.75, 0.25)
	assert.NotEqual(t, topLeft, topRight)

	// Repeat wrapping: one full period away samples the same texel.
	assert.Equal(t, topLeft, tex.Sample(1.25, 0.25))
	assert.Equal(t, topLeft, tex.Sample(-0.75, 0.25))

	tex.AddressMode = wgpu.AddressModeClampToEdge
	assert.Equal(t, tex.Sample(0.99, 0.25), tex.Sample(5, 0.25))
	assert.Equal(t, tex.Sample(0.01, 0.25), tex.Sample(-5, 0.25))
}
