package light

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffuse(t *testing.T) {
	// Facing the light: full intensity.
	assert.InDelta(t, 1.0, Diffuse([3]float32{0, 0, 1}), 1e-6)

	// Facing away: negative, not clamped.
	assert.InDelta(t, -1.0, Diffuse([3]float32{0, 0, -1}), 1e-6)

	// Perpendicular: zero.
	assert.InDelta(t, 0.0, Diffuse([3]float32{1, 0, 0}), 1e-6)

	// The exact dot product, never renormalized: non-unit normals scale the
	// intensity proportionally.
	assert.InDelta(t, 0.5, Diffuse([3]float32{0, 0, 0.5}), 1e-6)
	assert.InDelta(t, 3.0, Diffuse([3]float32{0, 0, 3}), 1e-6)
	assert.InDelta(t, -0.25, Diffuse([3]float32{0, 0, -0.25}), 1e-6)

	// Off-axis components are discarded by the +Z light, not folded in by a
	// normalize.
	assert.InDelta(t, 1.0, Diffuse([3]float32{1, 0, 1}), 1e-6)

	// Degenerate normal contributes nothing.
	assert.Equal(t, float32(0), Diffuse([3]float32{}))
}

func TestShadingConstantsSource(t *testing.T) {
	assert.True(t, strings.Contains(GPUShadingConstantsSource, "LIGHT_DIRECTION"))
	assert.True(t, strings.Contains(GPUShadingConstantsSource, "vec3<f32>(0.0, 0.0, 1.0)"))
	assert.True(t, strings.Contains(GPUShadingConstantsSource, "fn lambert_diffuse"))

	// The GPU side must use the interpolated normal as-is.
	assert.False(t, strings.Contains(GPUShadingConstantsSource, "normalize("))
}
