// Package lambert implements the textured Lambert shading contract: a model is
// rendered with a diffuse texture under a single fixed directional light. The
// package provides two interchangeable render pipelines that produce identical
// images and differ only in how shading parameters reach the GPU:
//
//   - the split-uniform path binds projection, view, model, and normal matrix
//     as four independent uniform buffers
//   - the grouped-block path binds one per-frame block (sim time, projection,
//     view) and one per-object block (model, normal matrix)
//
// A ParamBinder abstracts over the two paths so callers set parameters the same
// way regardless of which pipeline is active.
package lambert

import (
	_ "embed"

	"github.com/Carmen-Shannon/lambert-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/lambert-go/engine/renderer/shader"
)

const (
	// PipelineKeyUniform identifies the render pipeline using the split-uniform binding path.
	PipelineKeyUniform = "lambert_uniform"

	// PipelineKeyBlock identifies the render pipeline using the grouped-block binding path.
	PipelineKeyBlock = "lambert_block"
)

//go:embed assets/uniform_vert.wgsl
var uniformVertexSource string

//go:embed assets/uniform_frag.wgsl
var uniformFragmentSource string

//go:embed assets/block_vert.wgsl
var blockVertexSource string

//go:embed assets/block_frag.wgsl
var blockFragmentSource string

// NewUniformPipeline creates the render pipeline for the split-uniform binding path.
// Group 0 holds the four matrix uniforms, group 1 the diffuse texture and sampler.
// Panics if the embedded shader sources fail to parse.
//
// Returns:
//   - pipeline.Pipeline: the configured pipeline, ready for Renderer.RegisterPipelines
func NewUniformPipeline() pipeline.Pipeline {
	vs := shader.NewShaderFromSource(PipelineKeyUniform+"_vert", shader.ShaderTypeVertex, uniformVertexSource)
	fs := shader.NewShaderFromSource(PipelineKeyUniform+"_frag", shader.ShaderTypeFragment, uniformFragmentSource)
	return pipeline.NewPipeline(PipelineKeyUniform,
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
	)
}

// NewBlockPipeline creates the render pipeline for the grouped-block binding path.
// Group 0 holds the frame block, group 1 the object block, group 2 the diffuse
// texture and sampler. Panics if the embedded shader sources fail to parse.
//
// Returns:
//   - pipeline.Pipeline: the configured pipeline, ready for Renderer.RegisterPipelines
func NewBlockPipeline() pipeline.Pipeline {
	vs := shader.NewShaderFromSource(PipelineKeyBlock+"_vert", shader.ShaderTypeVertex, blockVertexSource)
	fs := shader.NewShaderFromSource(PipelineKeyBlock+"_frag", shader.ShaderTypeFragment, blockFragmentSource)
	return pipeline.NewPipeline(PipelineKeyBlock,
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
	)
}
