package shader

import (
	"strings"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreProcessorInclude(t *testing.T) {
	pp := NewPreProcessor()
	src := "//@lambert:include vertex\n@vertex\nfn vs_main(in: VertexInput) {}"
	out, err := pp.Process(src)
	require.NoError(t, err)
	assert.Contains(t, out, "struct VertexInput")
	assert.Contains(t, out, "@location(0) position")
	assert.Contains(t, out, "@location(3) uv")
	assert.NotContains(t, out, "@lambert:")
}

func TestPreProcessorIncludeLighting(t *testing.T) {
	pp := NewPreProcessor()
	out, err := pp.Process("//@lambert:include lighting\n")
	require.NoError(t, err)
	assert.Contains(t, out, "const LIGHT_DIRECTION")
	assert.Contains(t, out, "fn lambert_diffuse")
}

func TestPreProcessorGroupDeclaration(t *testing.T) {
	pp := NewPreProcessor()
	src := "//@lambert:include frame_params\n//@lambert:group 0 0 storage_uniform frame frame_params"
	out, err := pp.Process(src)
	require.NoError(t, err)
	assert.Contains(t, out, "@group(0) @binding(0) var<uniform> frame: FrameParams;")

	decls := pp.Declarations()
	require.Len(t, decls, 1)
	assert.Equal(t, AnnotationTypeBindingGroup, decls[0].Type)
	assert.Equal(t, 0, *decls[0].Group)
	assert.Equal(t, 0, *decls[0].Binding)
}

func TestPreProcessorProviderDeclaration(t *testing.T) {
	pp := NewPreProcessor()
	src := "//@lambert:provider 1 0 material diffuse_texture\n@group(1) @binding(0) var diffuse_texture: texture_2d<f32>;"
	out, err := pp.Process(src)
	require.NoError(t, err)
	// Provider annotations emit no WGSL; the hand-written declaration survives.
	assert.Contains(t, out, "var diffuse_texture: texture_2d<f32>;")
	assert.NotContains(t, out, "@lambert:")

	decls := pp.Declarations()
	require.Len(t, decls, 1)
	assert.Equal(t, AnnotationTypeProvider, decls[0].Type)
	assert.Equal(t, AnnotationArgMaterial, decls[0].Args[0])
	assert.Equal(t, AnnotationArgDiffuseTexture, decls[0].Args[1])
}

func TestPreProcessorErrors(t *testing.T) {
	pp := NewPreProcessor()

	_, err := pp.Process("//@lambert:include nonsense")
	assert.Error(t, err)

	// lighting is include-only and cannot be bound as a block.
	_, err = pp.Process("//@lambert:group 0 0 storage_uniform lights lighting")
	assert.Error(t, err)

	_, err = pp.Process("//@lambert:frobnicate 1 2 3")
	assert.Error(t, err)

	_, err = pp.Process("//@lambert:group 0 zero storage_uniform frame frame_params")
	assert.Error(t, err)

	_, err = pp.Process("//@lambert:provider 0 0 unknown_provider")
	assert.Error(t, err)
}

func TestParseVertexLayouts(t *testing.T) {
	pp := NewPreProcessor()
	out, err := pp.Process("//@lambert:include vertex\n")
	require.NoError(t, err)

	layouts := parseVertexLayouts(out)
	require.Len(t, layouts, 1)
	layout := layouts[0]
	require.Len(t, layout, 1)

	assert.Equal(t, uint64(32), layout[0].ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layout[0].StepMode)

	attrs := layout[0].Attributes
	require.Len(t, attrs, 3)

	assert.Equal(t, wgpu.VertexFormatFloat32x3, attrs[0].Format)
	assert.Equal(t, uint64(0), attrs[0].Offset)
	assert.Equal(t, uint32(0), attrs[0].ShaderLocation)

	assert.Equal(t, wgpu.VertexFormatFloat32x3, attrs[1].Format)
	assert.Equal(t, uint64(12), attrs[1].Offset)
	assert.Equal(t, uint32(1), attrs[1].ShaderLocation)

	// UVs sit at shader location 3; location 2 is reserved and never bound.
	assert.Equal(t, wgpu.VertexFormatFloat32x2, attrs[2].Format)
	assert.Equal(t, uint64(24), attrs[2].Offset)
	assert.Equal(t, uint32(3), attrs[2].ShaderLocation)
}

func TestParseBindGroupLayoutsBlockSizes(t *testing.T) {
	pp := NewPreProcessor()
	src := `//@lambert:include frame_params
//@lambert:include object_params
//@lambert:group 0 0 storage_uniform frame frame_params
//@lambert:group 1 0 storage_uniform object object_params`
	out, err := pp.Process(src)
	require.NoError(t, err)

	descs, varNames := parseBindGroupLayouts(out, wgpu.ShaderStageVertex)
	require.Contains(t, descs, 0)
	require.Contains(t, descs, 1)

	frame := descs[0].Entries
	require.Len(t, frame, 1)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, frame[0].Buffer.Type)
	assert.Equal(t, uint64(144), frame[0].Buffer.MinBindingSize)
	assert.Equal(t, wgpu.ShaderStageVertex, frame[0].Visibility)

	object := descs[1].Entries
	require.Len(t, object, 1)
	assert.Equal(t, uint64(112), object[0].Buffer.MinBindingSize)

	assert.Equal(t, "frame", varNames[0][0])
	assert.Equal(t, "object", varNames[1][0])
}

func TestParseBindGroupLayoutsStandaloneMatrices(t *testing.T) {
	src := `@group(0) @binding(0) var<uniform> projection: mat4x4<f32>;
@group(0) @binding(1) var<uniform> view: mat4x4<f32>;
@group(0) @binding(2) var<uniform> model: mat4x4<f32>;
@group(0) @binding(3) var<uniform> normal_matrix: mat3x3<f32>;`

	descs, varNames := parseBindGroupLayouts(src, wgpu.ShaderStageVertex)
	require.Contains(t, descs, 0)
	entries := descs[0].Entries
	require.Len(t, entries, 4)

	for i := 0; i < 3; i++ {
		assert.Equal(t, uint64(64), entries[i].Buffer.MinBindingSize, "binding %d", i)
	}
	// mat3x3 columns pad to vec4 slots: 48 bytes, not 36.
	assert.Equal(t, uint64(48), entries[3].Buffer.MinBindingSize)
	assert.Equal(t, "normal_matrix", varNames[0][3])
}

func TestParseBindGroupLayoutsTextureSampler(t *testing.T) {
	src := `@group(1) @binding(0) var diffuse_texture: texture_2d<f32>;
@group(1) @binding(1) var diffuse_sampler: sampler;`

	descs, _ := parseBindGroupLayouts(src, wgpu.ShaderStageFragment)
	require.Contains(t, descs, 1)
	entries := descs[1].Entries
	require.Len(t, entries, 2)

	assert.Equal(t, wgpu.TextureViewDimension2D, entries[0].Texture.ViewDimension)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, entries[0].Texture.SampleType)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, entries[1].Sampler.Type)
}

func TestParseEntryPoint(t *testing.T) {
	src := `@vertex
fn vs_main(in: VertexInput) -> VertexOutput { }

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> { }`

	assert.Equal(t, "vs_main", parseEntryPoint(src, ShaderTypeVertex))
	assert.Equal(t, "fs_main", parseEntryPoint(src, ShaderTypeFragment))
	assert.Equal(t, "", parseEntryPoint("fn helper() {}", ShaderTypeVertex))
}

func TestNewShaderFromSource(t *testing.T) {
	src := `//@lambert:include vertex
//@lambert:include frame_params
//@lambert:group 0 0 storage_uniform frame frame_params

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
};

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    return out;
}`
	s := NewShaderFromSource("test_vert", ShaderTypeVertex, src)
	assert.Equal(t, "test_vert", s.Key())
	assert.Equal(t, ShaderTypeVertex, s.ShaderType())
	assert.Equal(t, "vs_main", s.EntryPoint())
	require.NotNil(t, s.Module())
	assert.Equal(t, "test_vert", s.Module().Label)

	require.Len(t, s.VertexLayouts(), 1)
	assert.Equal(t, uint64(32), s.VertexLayout(0)[0].ArrayStride)

	desc := s.BindGroupLayoutDescriptor(0)
	require.Len(t, desc.Entries, 1)
	assert.Equal(t, uint64(144), desc.Entries[0].Buffer.MinBindingSize)

	binding, ok := s.BindGroupFromVarName(0, "frame")
	require.True(t, ok)
	assert.Equal(t, 0, binding)
	assert.Equal(t, "frame", s.BindGroupVarName(0, 0))

	require.Len(t, s.Declarations(), 1)
}

func TestComputeStructSizesNested(t *testing.T) {
	src := `struct Inner {
    a: vec3<f32>,
};
struct Outer {
    inner: Inner,
    b: f32,
};`
	structs := parseStructBlocks(stripComments(src))
	sizes := computeStructSizes(structs)

	require.Contains(t, sizes, "Inner")
	require.Contains(t, sizes, "Outer")
	assert.Equal(t, uint64(16), sizes["Inner"].size)
	assert.Equal(t, uint64(32), sizes["Outer"].size)
}

func TestStripComments(t *testing.T) {
	src := "a // line comment\nb /* block /* nested */ comment */ c"
	out := stripComments(src)
	assert.NotContains(t, out, "comment")
	assert.Contains(t, out, "a")
	assert.True(t, strings.Contains(out, "b") && strings.Contains(out, "c"))
}
