package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i) + 1
	}
	Identity(m)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, m[i*4+j], "element (%d,%d)", j, i)
		}
	}
}

func TestMul4Identity(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)
	m := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	out := make([]float32, 16)
	Mul4(out, id, m)
	assert.Equal(t, m, out)
	Mul4(out, m, id)
	assert.Equal(t, m, out)
}

func TestMul4Translation(t *testing.T) {
	// Composing two translations adds the offsets.
	a := make([]float32, 16)
	b := make([]float32, 16)
	Identity(a)
	Identity(b)
	a[12], a[13], a[14] = 1, 2, 3
	b[12], b[13], b[14] = 10, 20, 30
	out := make([]float32, 16)
	Mul4(out, a, b)
	assert.Equal(t, float32(11), out[12])
	assert.Equal(t, float32(22), out[13])
	assert.Equal(t, float32(33), out[14])
}

func TestMulVec4(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)
	m[12], m[13], m[14] = 5, -3, 0.5
	v := []float32{1, 2, 3, 1}
	out := make([]float32, 4)
	MulVec4(out, m, v)
	assert.Equal(t, []float32{6, -1, 3.5, 1}, out)

	// Direction vectors (w=0) ignore translation.
	v[3] = 0
	MulVec4(out, m, v)
	assert.Equal(t, []float32{1, 2, 3, 0}, out)
}

func TestMulVec3(t *testing.T) {
	// 90 degree rotation about Z, column-major.
	m := []float32{
		0, 1, 0,
		-1, 0, 0,
		0, 0, 1,
	}
	out := make([]float32, 3)
	MulVec3(out, m, []float32{1, 0, 0})
	assert.InDelta(t, 0, out[0], 1e-6)
	assert.InDelta(t, 1, out[1], 1e-6)
	assert.InDelta(t, 0, out[2], 1e-6)
}

func TestPerspectiveDepthRange(t *testing.T) {
	// WebGPU clip space: near plane maps to z/w = 0, far plane to z/w = 1.
	p := make([]float32, 16)
	Perspective(p, float32(math.Pi)/2, 1.0, 0.1, 100.0)

	out := make([]float32, 4)
	MulVec4(out, p, []float32{0, 0, -0.1, 1})
	assert.InDelta(t, 0.0, out[2]/out[3], 1e-5, "near plane depth")

	MulVec4(out, p, []float32{0, 0, -100.0, 1})
	assert.InDelta(t, 1.0, out[2]/out[3], 1e-4, "far plane depth")
}

func TestOrthographic(t *testing.T) {
	o := make([]float32, 16)
	Orthographic(o, -2, 2, -1, 1, 0, 10)

	out := make([]float32, 4)
	MulVec4(out, o, []float32{-2, -1, 0, 1})
	assert.InDelta(t, -1, out[0], 1e-6)
	assert.InDelta(t, -1, out[1], 1e-6)
	assert.InDelta(t, 0, out[2], 1e-6)
	assert.InDelta(t, 1, out[3], 1e-6)

	MulVec4(out, o, []float32{2, 1, -10, 1})
	assert.InDelta(t, 1, out[0], 1e-6)
	assert.InDelta(t, 1, out[1], 1e-6)
	assert.InDelta(t, 1, out[2], 1e-6)
}

func TestInvert4Roundtrip(t *testing.T) {
	m := make([]float32, 16)
	BuildModelMatrix(m, 1, 2, 3, 0.3, 0.7, -0.2, 2, 2, 2)

	inv := make([]float32, 16)
	require.True(t, Invert4(inv, m))

	out := make([]float32, 16)
	Mul4(out, m, inv)
	id := make([]float32, 16)
	Identity(id)
	for i := range id {
		assert.InDelta(t, id[i], out[i], 1e-5, "element %d", i)
	}
}

func TestInvert4Singular(t *testing.T) {
	m := make([]float32, 16) // all zeros
	out := make([]float32, 16)
	assert.False(t, Invert4(out, m))
}

func TestInvert3Roundtrip(t *testing.T) {
	m := []float32{
		2, 0, 0,
		1, 3, 0,
		0, -1, 4,
	}
	inv := make([]float32, 9)
	require.True(t, Invert3(inv, m))

	// m * inv columns should give the identity basis.
	out := make([]float32, 3)
	basis := [][]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for c, e := range basis {
		col := inv[c*3 : c*3+3]
		MulVec3(out, m, col)
		for i := range out {
			assert.InDelta(t, e[i], out[i], 1e-6, "column %d row %d", c, i)
		}
	}
}

func TestNormalMatrixUniformScale(t *testing.T) {
	// Under rotation plus uniform scale s the normal matrix is the rotation
	// scaled by 1/s; directions of transformed normals match the rotation.
	m := make([]float32, 16)
	BuildModelMatrix(m, 0, 0, 0, 0, float32(math.Pi)/2, 0, 3, 3, 3)

	n := make([]float32, 9)
	require.True(t, NormalMatrix(n, m))

	out := make([]float32, 3)
	MulVec3(out, n, []float32{0, 0, 1})
	// Rotation of +90deg about Y sends +Z to +X.
	length := float32(math.Sqrt(float64(out[0]*out[0] + out[1]*out[1] + out[2]*out[2])))
	assert.InDelta(t, 1, out[0]/length, 1e-5)
	assert.InDelta(t, 0, out[1], 1e-5)
	assert.InDelta(t, 0, out[2]/length, 1e-5)
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	// A plane tilted by non-uniform scale: the raw upper 3x3 would bend the
	// normal the wrong way, the inverse-transpose keeps it perpendicular.
	m := make([]float32, 16)
	BuildModelMatrix(m, 0, 0, 0, 0, 0, 0, 2, 1, 1)

	n := make([]float32, 9)
	require.True(t, NormalMatrix(n, m))

	// Surface tangent (1,1,0) on the unscaled plane maps to (2,1,0) under the
	// model matrix; the transformed normal must stay perpendicular to it.
	normal := make([]float32, 3)
	MulVec3(normal, n, []float32{1, -1, 0})
	tangent := []float32{2, 1, 0}
	dot := normal[0]*tangent[0] + normal[1]*tangent[1] + normal[2]*tangent[2]
	assert.InDelta(t, 0, dot, 1e-5)
}

func TestLookAtOrigin(t *testing.T) {
	// Camera at +Z looking at the origin: a point at the origin lands on the
	// view-space -Z axis at the camera distance.
	v := make([]float32, 16)
	LookAt(v, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	out := make([]float32, 4)
	MulVec4(out, v, []float32{0, 0, 0, 1})
	assert.InDelta(t, 0, out[0], 1e-6)
	assert.InDelta(t, 0, out[1], 1e-6)
	assert.InDelta(t, -5, out[2], 1e-6)
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1.0, 2.0}
	b := SliceToBytes(data)
	require.Len(t, b, 8)
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, b[:4]) // 1.0f little-endian
	assert.Nil(t, SliceToBytes([]float32{}))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 0, 5, 7))
	assert.Equal(t, "a", Coalesce("", "a"))
	assert.Equal(t, 0, Coalesce(0, 0))
}
