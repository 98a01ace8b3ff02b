package params

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readF32(t *testing.T, buf []byte, off int) float32 {
	t.Helper()
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off : off+4]))
}

func seqMat4(base float32) [16]float32 {
	var m [16]float32
	for i := range m {
		m[i] = base + float32(i)
	}
	return m
}

func TestGPUFrameParamsSize(t *testing.T) {
	p := GPUFrameParams{}
	assert.Equal(t, 144, p.Size())
}

func TestGPUFrameParamsMarshal(t *testing.T) {
	p := GPUFrameParams{
		SimTime:    1.5,
		Projection: seqMat4(100),
		View:       seqMat4(200),
	}
	buf := p.Marshal()
	require.Len(t, buf, 144)

	assert.Equal(t, float32(1.5), readF32(t, buf, 0))
	// Alignment padding between sim_time and projection stays zero.
	for off := 4; off < 16; off += 4 {
		assert.Equal(t, float32(0), readF32(t, buf, off), "pad at offset %d", off)
	}
	for i := 0; i < 16; i++ {
		assert.Equal(t, float32(100+i), readF32(t, buf, 16+i*4), "projection[%d]", i)
		assert.Equal(t, float32(200+i), readF32(t, buf, 80+i*4), "view[%d]", i)
	}
}

func TestGPUObjectParamsSize(t *testing.T) {
	p := GPUObjectParams{}
	assert.Equal(t, 112, p.Size())
}

func TestGPUObjectParamsMarshal(t *testing.T) {
	p := GPUObjectParams{Model: seqMat4(1)}
	for i := range p.NormalMatrix {
		p.NormalMatrix[i] = float32(50 + i)
	}
	buf := p.Marshal()
	require.Len(t, buf, 112)

	for i := 0; i < 16; i++ {
		assert.Equal(t, float32(1+i), readF32(t, buf, i*4), "model[%d]", i)
	}
	// Each normal matrix column occupies a 16-byte slot with a zero tail float.
	for col := 0; col < 3; col++ {
		base := 64 + col*16
		for row := 0; row < 3; row++ {
			assert.Equal(t, float32(50+col*3+row), readF32(t, buf, base+row*4), "column %d row %d", col, row)
		}
		assert.Equal(t, float32(0), readF32(t, buf, base+12), "column %d pad", col)
	}
}

func TestGPUMat4Marshal(t *testing.T) {
	m := GPUMat4{M: seqMat4(1)}
	assert.Equal(t, 64, m.Size())
	buf := m.Marshal()
	require.Len(t, buf, 64)
	for i := 0; i < 16; i++ {
		assert.Equal(t, float32(1+i), readF32(t, buf, i*4))
	}
}

func TestGPUMat3Marshal(t *testing.T) {
	m := GPUMat3{}
	for i := range m.M {
		m.M[i] = float32(i + 1)
	}
	assert.Equal(t, 48, m.Size())

	buf := m.Marshal()
	require.Len(t, buf, 48)
	for col := 0; col < 3; col++ {
		base := col * 16
		for row := 0; row < 3; row++ {
			assert.Equal(t, float32(col*3+row+1), readF32(t, buf, base+row*4), "column %d row %d", col, row)
		}
		assert.Equal(t, float32(0), readF32(t, buf, base+12), "column %d pad", col)
	}
}
