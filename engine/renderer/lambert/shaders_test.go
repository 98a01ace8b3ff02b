package lambert

import (
	"testing"

	"github.com/Carmen-Shannon/lambert-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/naga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageSourcesCompile(t *testing.T) {
	tests := []struct {
		name       string
		shaderType shader.ShaderType
		source     string
	}{
		{"uniform vertex", shader.ShaderTypeVertex, uniformVertexSource},
		{"uniform fragment", shader.ShaderTypeFragment, uniformFragmentSource},
		{"block vertex", shader.ShaderTypeVertex, blockVertexSource},
		{"block fragment", shader.ShaderTypeFragment, blockFragmentSource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := shader.NewShaderFromSource(tt.name, tt.shaderType, tt.source)
			_, err := naga.Compile(s.Source())
			require.NoError(t, err)
		})
	}
}

func TestUniformPipelineLayout(t *testing.T) {
	p := NewUniformPipeline()
	vs := p.Shader(shader.ShaderTypeVertex)
	fs := p.Shader(shader.ShaderTypeFragment)

	assert.Equal(t, "vs_main", vs.EntryPoint())
	assert.Equal(t, "fs_main", fs.EntryPoint())

	matrices := vs.BindGroupLayoutDescriptor(0)
	require.Len(t, matrices.Entries, 4)
	for binding := 0; binding < 3; binding++ {
		assert.Equal(t, uint64(64), matrices.Entries[binding].Buffer.MinBindingSize, "binding %d", binding)
	}
	assert.Equal(t, uint64(48), matrices.Entries[3].Buffer.MinBindingSize)

	assert.Equal(t, "projection", vs.BindGroupVarName(0, 0))
	assert.Equal(t, "view", vs.BindGroupVarName(0, 1))
	assert.Equal(t, "model", vs.BindGroupVarName(0, 2))
	assert.Equal(t, "normal_matrix", vs.BindGroupVarName(0, 3))

	mat := fs.BindGroupLayoutDescriptor(1)
	require.Len(t, mat.Entries, 2)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, mat.Entries[0].Texture.SampleType)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, mat.Entries[1].Sampler.Type)
}

func TestBlockPipelineLayout(t *testing.T) {
	p := NewBlockPipeline()
	vs := p.Shader(shader.ShaderTypeVertex)
	fs := p.Shader(shader.ShaderTypeFragment)

	frame := vs.BindGroupLayoutDescriptor(0)
	require.Len(t, frame.Entries, 1)
	assert.Equal(t, uint64(144), frame.Entries[0].Buffer.MinBindingSize)
	assert.Equal(t, "frame", vs.BindGroupVarName(0, 0))

	object := vs.BindGroupLayoutDescriptor(1)
	require.Len(t, object.Entries, 1)
	assert.Equal(t, uint64(112), object.Entries[0].Buffer.MinBindingSize)
	assert.Equal(t, "object", vs.BindGroupVarName(1, 0))

	mat := fs.BindGroupLayoutDescriptor(2)
	require.Len(t, mat.Entries, 2)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, mat.Entries[0].Texture.SampleType)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, mat.Entries[1].Sampler.Type)
}

func TestVertexLayoutSharedAcrossPaths(t *testing.T) {
	for _, p := range []struct {
		name string
		src  string
	}{
		{"uniform", uniformVertexSource},
		{"block", blockVertexSource},
	} {
		t.Run(p.name, func(t *testing.T) {
			vs := shader.NewShaderFromSource(p.name+"_vert", shader.ShaderTypeVertex, p.src)
			layouts := vs.VertexLayout(0)
			require.Len(t, layouts, 1)
			layout := layouts[0]

			assert.Equal(t, uint64(32), layout.ArrayStride)
			require.Len(t, layout.Attributes, 3)

			assert.Equal(t, uint32(0), layout.Attributes[0].ShaderLocation)
			assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[0].Format)
			assert.Equal(t, uint64(0), layout.Attributes[0].Offset)

			assert.Equal(t, uint32(1), layout.Attributes[1].ShaderLocation)
			assert.Equal(t, wgpu.VertexFormatFloat32x3, layout.Attributes[1].Format)
			assert.Equal(t, uint64(12), layout.Attributes[1].Offset)

			// Location 2 is reserved; UV sits at location 3 but stays tightly packed.
			assert.Equal(t, uint32(3), layout.Attributes[2].ShaderLocation)
			assert.Equal(t, wgpu.VertexFormatFloat32x2, layout.Attributes[2].Format)
			assert.Equal(t, uint64(24), layout.Attributes[2].Offset)
		})
	}
}

func TestProviderDeclarations(t *testing.T) {
	p := NewUniformPipeline()
	vs := p.Shader(shader.ShaderTypeVertex)
	fs := p.Shader(shader.ShaderTypeFragment)

	vDecls := vs.Declarations()
	require.Len(t, vDecls, 4)
	assert.Equal(t, shader.AnnotationArgFrame, vDecls[0].Args[0])
	assert.Equal(t, shader.AnnotationArgFrame, vDecls[1].Args[0])
	assert.Equal(t, shader.AnnotationArgObject, vDecls[2].Args[0])
	assert.Equal(t, shader.AnnotationArgObject, vDecls[3].Args[0])

	fDecls := fs.Declarations()
	require.Len(t, fDecls, 2)
	assert.Equal(t, shader.AnnotationArgMaterial, fDecls[0].Args[0])
	assert.Equal(t, shader.AnnotationArgDiffuseTexture, fDecls[0].Args[1])
	assert.Equal(t, shader.AnnotationArgMaterial, fDecls[1].Args[0])
	assert.Equal(t, shader.AnnotationArgDiffuseSampler, fDecls[1].Args[1])
}
