package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUVertexSize(t *testing.T) {
	v := GPUVertex{}
	assert.Equal(t, 32, v.Size())
}

func TestGPUVertexMarshal(t *testing.T) {
	v := GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 0, 1},
		TexCoord: [2]float32{0.25, 0.75},
	}
	buf := v.Marshal()
	require.Len(t, buf, 32)

	readF32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
	}
	assert.Equal(t, float32(1), readF32(0))
	assert.Equal(t, float32(2), readF32(4))
	assert.Equal(t, float32(3), readF32(8))
	assert.Equal(t, float32(0), readF32(12))
	assert.Equal(t, float32(0), readF32(16))
	assert.Equal(t, float32(1), readF32(20))
	assert.Equal(t, float32(0.25), readF32(24))
	assert.Equal(t, float32(0.75), readF32(28))
}

func TestComputeBoundingRadius(t *testing.T) {
	vertices := []GPUVertex{
		{Position: [3]float32{0, 0, 0}},
		{Position: [3]float32{3, 4, 0}},
		{Position: [3]float32{1, 1, 1}},
	}
	assert.InDelta(t, 5.0, ComputeBoundingRadius(vertices), 1e-6)
	assert.Equal(t, float32(0), ComputeBoundingRadius(nil))
}

func TestNewUnitQuad(t *testing.T) {
	quad := NewUnitQuad("quad")
	assert.Equal(t, "quad", quad.Name())
	assert.Equal(t, 6, quad.IndexCount())
	require.Len(t, quad.VertexData(), 4*32)
	require.Len(t, quad.IndexData(), 6*4)

	// Every vertex faces +Z; UVs cover the unit square.
	for i := 0; i < 4; i++ {
		base := i * 32
		nz := math.Float32frombits(binary.LittleEndian.Uint32(quad.VertexData()[base+20 : base+24]))
		assert.Equal(t, float32(1), nz, "vertex %d normal z", i)
	}
	assert.InDelta(t, math.Sqrt2/2, float64(quad.BoundingRadius()), 1e-6)

	require.NotNil(t, quad.MeshProvider())
	assert.Equal(t, "quad Mesh", quad.MeshProvider().Label())
}
