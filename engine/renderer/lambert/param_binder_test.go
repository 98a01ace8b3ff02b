package lambert

import (
	"testing"

	"github.com/Carmen-Shannon/lambert-go/common"
	"github.com/Carmen-Shannon/lambert-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/lambert-go/engine/renderer/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq16(start float32) []float32 {
	m := make([]float32, 16)
	for i := range m {
		m[i] = start + float32(i)
	}
	return m
}

func writeFor(t *testing.T, writes []bind_group_provider.BufferWrite, binding int) bind_group_provider.BufferWrite {
	t.Helper()
	for _, w := range writes {
		if w.Binding == binding {
			return w
		}
	}
	t.Fatalf("no staged write for binding %d", binding)
	return bind_group_provider.BufferWrite{}
}

// Both binding paths must deliver byte-identical matrix data to the GPU; the
// block path just packs it into larger buffers at fixed offsets.
func TestBinderPathsStageIdenticalBytes(t *testing.T) {
	ub := NewUniformBinder(material.NewMaterial())
	bb := NewBlockBinder(material.NewMaterial())

	projection := seq16(1)
	view := seq16(100)
	model := seq16(200)
	normal := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}

	for _, b := range []ParamBinder{ub, bb} {
		b.SetSimTime(2.5)
		b.SetProjection(projection)
		b.SetView(view)
		b.SetModel(model)
		b.SetNormalMatrix(normal)
	}

	uniformWrites := ub.Flush()
	require.Len(t, uniformWrites, 4)

	blockWrites := bb.Flush()
	require.Len(t, blockWrites, 2)
	frame := blockWrites[0].Data
	object := blockWrites[1].Data
	require.Len(t, frame, 144)
	require.Len(t, object, 112)

	assert.Equal(t, common.SliceToBytes([]float32{2.5}), frame[0:4])
	assert.Equal(t, writeFor(t, uniformWrites, uniformBindingProjection).Data, frame[16:80])
	assert.Equal(t, writeFor(t, uniformWrites, uniformBindingView).Data, frame[80:144])
	assert.Equal(t, writeFor(t, uniformWrites, uniformBindingModel).Data, object[0:64])
	assert.Equal(t, writeFor(t, uniformWrites, uniformBindingNormalMatrix).Data, object[64:112])
}

func TestUniformBinderSimTimeIsNoop(t *testing.T) {
	b := NewUniformBinder(material.NewMaterial())
	b.SetSimTime(1.0)
	assert.Empty(t, b.Flush())
}

func TestUniformBinderStagesOnlyWhatChanged(t *testing.T) {
	b := NewUniformBinder(material.NewMaterial())
	b.SetView(seq16(0))

	writes := b.Flush()
	require.Len(t, writes, 1)
	assert.Equal(t, uniformBindingView, writes[0].Binding)
	assert.Equal(t, uint64(0), writes[0].Offset)
	assert.Len(t, writes[0].Data, 64)

	assert.Empty(t, b.Flush())
}

func TestBlockBinderDirtyTracking(t *testing.T) {
	b := NewBlockBinder(material.NewMaterial())
	assert.Empty(t, b.Flush())

	b.SetSimTime(0.016)
	writes := b.Flush()
	require.Len(t, writes, 1)
	assert.Len(t, writes[0].Data, 144)

	assert.Empty(t, b.Flush(), "flush must clear dirty state")

	b.SetModel(seq16(0))
	writes = b.Flush()
	require.Len(t, writes, 1)
	assert.Len(t, writes[0].Data, 112)
}

func TestSetModelDerive(t *testing.T) {
	for _, b := range []ParamBinder{
		NewUniformBinder(material.NewMaterial()),
		NewBlockBinder(material.NewMaterial()),
	} {
		model := make([]float32, 16)
		common.Identity(model)
		model[0], model[5], model[10] = 2, 2, 2

		require.NoError(t, b.SetModelDerive(model))

		// Inverse-transpose of a uniform scale-2 matrix scales normals by 0.5.
		var want [9]float32
		require.True(t, common.NormalMatrix(want[:], model))
		assert.InDelta(t, 0.5, want[0], 1e-6)

		singular := make([]float32, 16)
		singular[15] = 1
		assert.Error(t, b.SetModelDerive(singular))
	}
}

func TestBinderBindGroupOrder(t *testing.T) {
	ub := NewUniformBinder(material.NewMaterial())
	assert.Len(t, ub.BindGroups(), 2)
	assert.Equal(t, PipelineKeyUniform, ub.PipelineKey())

	bb := NewBlockBinder(material.NewMaterial())
	assert.Len(t, bb.BindGroups(), 3)
	assert.Equal(t, PipelineKeyBlock, bb.PipelineKey())
}
