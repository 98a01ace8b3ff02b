package lambert

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/lambert-go/common"
	"github.com/Carmen-Shannon/lambert-go/engine/params"
	"github.com/Carmen-Shannon/lambert-go/engine/renderer"
	"github.com/Carmen-Shannon/lambert-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/lambert-go/engine/renderer/material"
	"github.com/Carmen-Shannon/lambert-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/lambert-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// ParamBinder abstracts over the two shading parameter binding paths. Callers set
// projection, view, model, and normal matrix the same way regardless of which
// pipeline is active; the binder stages the data in whatever layout its pipeline
// expects and hands the Renderer a batch of buffer writes via Flush.
//
// All matrix arguments are column-major float32 slices: 16 elements for a 4x4
// matrix, 9 elements for a 3x3 matrix.
//
// Typical frame loop:
//  1. Set* calls update shading parameters
//  2. Renderer.WriteBuffers(binder.Flush()) uploads staged data
//  3. Renderer.DrawCall(binder.PipelineKey(), mesh, 1, binder.BindGroups())
type ParamBinder interface {
	// PipelineKey returns the key of the render pipeline this binder feeds.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// Pipeline returns the pipeline this binder feeds. The pipeline is created at
	// binder construction and registered with the Renderer during Init.
	//
	// Returns:
	//   - pipeline.Pipeline: the pipeline
	Pipeline() pipeline.Pipeline

	// Init registers the binder's pipeline and creates all GPU resources: uniform
	// buffers sized from the shader's bind group layouts, the material's texture
	// and sampler, and the bind groups themselves. Must be called once before the
	// first Flush or DrawCall.
	//
	// Parameters:
	//   - r: the Renderer used to create GPU resources
	//
	// Returns:
	//   - error: an error if the shader layout does not match the CPU-side uniform
	//     types, or if GPU resource creation fails
	Init(r renderer.Renderer) error

	// SetSimTime stages the simulation time in seconds. On the split-uniform path
	// this is a no-op because that interface carries no time value.
	//
	// Parameters:
	//   - t: the simulation time in seconds
	SetSimTime(t float32)

	// SetProjection stages the projection matrix.
	//
	// Parameters:
	//   - m: the 16-element column-major projection matrix
	SetProjection(m []float32)

	// SetView stages the view matrix.
	//
	// Parameters:
	//   - m: the 16-element column-major view matrix
	SetView(m []float32)

	// SetModel stages the model matrix. The normal matrix is not touched; callers
	// providing their own normal matrix pair this with SetNormalMatrix, or use
	// SetModelDerive to compute it.
	//
	// Parameters:
	//   - m: the 16-element column-major model matrix
	SetModel(m []float32)

	// SetNormalMatrix stages the normal matrix.
	//
	// Parameters:
	//   - m: the 9-element column-major normal matrix
	SetNormalMatrix(m []float32)

	// SetModelDerive stages the model matrix and derives the normal matrix from it
	// as the inverse-transpose of the model's upper 3x3.
	//
	// Parameters:
	//   - m: the 16-element column-major model matrix
	//
	// Returns:
	//   - error: an error if the model's upper 3x3 is singular
	SetModelDerive(m []float32) error

	// Flush returns the buffer writes staged since the last Flush and clears the
	// staging state. Pass the result to Renderer.WriteBuffers.
	//
	// Returns:
	//   - []bind_group_provider.BufferWrite: the staged writes, possibly empty
	Flush() []bind_group_provider.BufferWrite

	// BindGroups returns the bind group providers in group-index order, suitable
	// for passing directly to Renderer.DrawCall.
	//
	// Returns:
	//   - []bind_group_provider.BindGroupProvider: the providers ordered by group index
	BindGroups() []bind_group_provider.BindGroupProvider

	// Release releases all GPU resources held by the binder's providers.
	Release()
}

const (
	uniformBindingProjection   = 0
	uniformBindingView         = 1
	uniformBindingModel        = 2
	uniformBindingNormalMatrix = 3
)

// uniformBinder feeds the split-uniform pipeline. Every Set call stages one
// write targeting the matching binding, so unchanged matrices are never re-uploaded.
type uniformBinder struct {
	pl pipeline.Pipeline

	params bind_group_provider.BindGroupProvider
	mat    material.Material

	staged []bind_group_provider.BufferWrite
}

var _ ParamBinder = &uniformBinder{}

// NewUniformBinder creates a ParamBinder for the split-uniform binding path.
//
// Parameters:
//   - mat: the material providing the diffuse texture and sampler
//
// Returns:
//   - ParamBinder: the binder; call Init before use
func NewUniformBinder(mat material.Material) ParamBinder {
	mat.SetPipelineKey(PipelineKeyUniform)
	return &uniformBinder{
		pl:     NewUniformPipeline(),
		params: bind_group_provider.NewBindGroupProvider("Lambert Uniform Params"),
		mat:    mat,
	}
}

func (b *uniformBinder) PipelineKey() string {
	return PipelineKeyUniform
}

func (b *uniformBinder) Pipeline() pipeline.Pipeline {
	return b.pl
}

func (b *uniformBinder) Init(r renderer.Renderer) error {
	vs := b.pl.Shader(shader.ShaderTypeVertex)
	fs := b.pl.Shader(shader.ShaderTypeFragment)

	paramsDesc := vs.BindGroupLayoutDescriptor(0)
	var mat4 params.GPUMat4
	var mat3 params.GPUMat3
	for _, entry := range paramsDesc.Entries {
		want := uint64(mat4.Size())
		if entry.Binding == uniformBindingNormalMatrix {
			want = uint64(mat3.Size())
		}
		if entry.Buffer.MinBindingSize != want {
			return fmt.Errorf("uniform binding %d: shader expects %d bytes, CPU type is %d bytes", entry.Binding, entry.Buffer.MinBindingSize, want)
		}
	}

	if err := r.RegisterPipelines(b.pl); err != nil {
		return err
	}
	if err := r.InitBindGroup(b.params, paramsDesc, nil, nil); err != nil {
		return err
	}

	return initMaterialBindGroup(r, b.mat, fs.BindGroupLayoutDescriptor(1))
}

func (b *uniformBinder) SetSimTime(float32) {
	// The split-uniform interface has no time binding.
}

func (b *uniformBinder) SetProjection(m []float32) {
	b.stageMat4(uniformBindingProjection, m)
}

func (b *uniformBinder) SetView(m []float32) {
	b.stageMat4(uniformBindingView, m)
}

func (b *uniformBinder) SetModel(m []float32) {
	b.stageMat4(uniformBindingModel, m)
}

func (b *uniformBinder) SetNormalMatrix(m []float32) {
	var g params.GPUMat3
	copy(g.M[:], m)
	b.staged = append(b.staged, bind_group_provider.BufferWrite{
		Provider: b.params,
		Binding:  uniformBindingNormalMatrix,
		Offset:   0,
		Data:     g.Marshal(),
	})
}

func (b *uniformBinder) SetModelDerive(m []float32) error {
	var normal [9]float32
	if !common.NormalMatrix(normal[:], m) {
		return errors.New("model matrix upper 3x3 is singular, cannot derive normal matrix")
	}
	b.SetModel(m)
	b.SetNormalMatrix(normal[:])
	return nil
}

func (b *uniformBinder) stageMat4(binding int, m []float32) {
	var g params.GPUMat4
	copy(g.M[:], m)
	b.staged = append(b.staged, bind_group_provider.BufferWrite{
		Provider: b.params,
		Binding:  binding,
		Offset:   0,
		Data:     g.Marshal(),
	})
}

func (b *uniformBinder) Flush() []bind_group_provider.BufferWrite {
	writes := b.staged
	b.staged = nil
	return writes
}

func (b *uniformBinder) BindGroups() []bind_group_provider.BindGroupProvider {
	return []bind_group_provider.BindGroupProvider{b.params, b.mat.BindGroupProvider()}
}

func (b *uniformBinder) Release() {
	b.params.Release()
	if mp := b.mat.BindGroupProvider(); mp != nil {
		mp.Release()
	}
}

// blockBinder feeds the grouped-block pipeline. Set calls mutate CPU-side block
// mirrors and mark them dirty; Flush rewrites each dirty block in full.
type blockBinder struct {
	pl pipeline.Pipeline

	frameProvider  bind_group_provider.BindGroupProvider
	objectProvider bind_group_provider.BindGroupProvider
	mat            material.Material

	frame       params.GPUFrameParams
	object      params.GPUObjectParams
	frameDirty  bool
	objectDirty bool
}

var _ ParamBinder = &blockBinder{}

// NewBlockBinder creates a ParamBinder for the grouped-block binding path.
//
// Parameters:
//   - mat: the material providing the diffuse texture and sampler
//
// Returns:
//   - ParamBinder: the binder; call Init before use
func NewBlockBinder(mat material.Material) ParamBinder {
	mat.SetPipelineKey(PipelineKeyBlock)
	return &blockBinder{
		pl:             NewBlockPipeline(),
		frameProvider:  bind_group_provider.NewBindGroupProvider("Lambert Frame Block"),
		objectProvider: bind_group_provider.NewBindGroupProvider("Lambert Object Block"),
		mat:            mat,
	}
}

func (b *blockBinder) PipelineKey() string {
	return PipelineKeyBlock
}

func (b *blockBinder) Pipeline() pipeline.Pipeline {
	return b.pl
}

func (b *blockBinder) Init(r renderer.Renderer) error {
	vs := b.pl.Shader(shader.ShaderTypeVertex)
	fs := b.pl.Shader(shader.ShaderTypeFragment)

	frameDesc := vs.BindGroupLayoutDescriptor(0)
	objectDesc := vs.BindGroupLayoutDescriptor(1)
	if err := checkBlockSize("frame", frameDesc, uint64(b.frame.Size())); err != nil {
		return err
	}
	if err := checkBlockSize("object", objectDesc, uint64(b.object.Size())); err != nil {
		return err
	}

	if err := r.RegisterPipelines(b.pl); err != nil {
		return err
	}
	if err := r.InitBindGroup(b.frameProvider, frameDesc, nil, nil); err != nil {
		return err
	}
	if err := r.InitBindGroup(b.objectProvider, objectDesc, nil, nil); err != nil {
		return err
	}

	return initMaterialBindGroup(r, b.mat, fs.BindGroupLayoutDescriptor(2))
}

func checkBlockSize(name string, desc wgpu.BindGroupLayoutDescriptor, want uint64) error {
	if len(desc.Entries) != 1 {
		return fmt.Errorf("%s block: expected one binding, shader declares %d", name, len(desc.Entries))
	}
	if got := desc.Entries[0].Buffer.MinBindingSize; got != want {
		return fmt.Errorf("%s block: shader expects %d bytes, CPU type is %d bytes", name, got, want)
	}
	return nil
}

func (b *blockBinder) SetSimTime(t float32) {
	b.frame.SimTime = t
	b.frameDirty = true
}

func (b *blockBinder) SetProjection(m []float32) {
	copy(b.frame.Projection[:], m)
	b.frameDirty = true
}

func (b *blockBinder) SetView(m []float32) {
	copy(b.frame.View[:], m)
	b.frameDirty = true
}

func (b *blockBinder) SetModel(m []float32) {
	copy(b.object.Model[:], m)
	b.objectDirty = true
}

func (b *blockBinder) SetNormalMatrix(m []float32) {
	copy(b.object.NormalMatrix[:], m)
	b.objectDirty = true
}

func (b *blockBinder) SetModelDerive(m []float32) error {
	var normal [9]float32
	if !common.NormalMatrix(normal[:], m) {
		return errors.New("model matrix upper 3x3 is singular, cannot derive normal matrix")
	}
	b.SetModel(m)
	b.SetNormalMatrix(normal[:])
	return nil
}

func (b *blockBinder) Flush() []bind_group_provider.BufferWrite {
	var writes []bind_group_provider.BufferWrite
	if b.frameDirty {
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: b.frameProvider,
			Binding:  0,
			Offset:   0,
			Data:     b.frame.Marshal(),
		})
		b.frameDirty = false
	}
	if b.objectDirty {
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: b.objectProvider,
			Binding:  0,
			Offset:   0,
			Data:     b.object.Marshal(),
		})
		b.objectDirty = false
	}
	return writes
}

func (b *blockBinder) BindGroups() []bind_group_provider.BindGroupProvider {
	return []bind_group_provider.BindGroupProvider{b.frameProvider, b.objectProvider, b.mat.BindGroupProvider()}
}

func (b *blockBinder) Release() {
	b.frameProvider.Release()
	b.objectProvider.Release()
	if mp := b.mat.BindGroupProvider(); mp != nil {
		mp.Release()
	}
}

// initMaterialBindGroup creates the material's texture view, sampler, and bind
// group on a fresh provider, then stores the provider back on the material.
func initMaterialBindGroup(r renderer.Renderer, mat material.Material, desc wgpu.BindGroupLayoutDescriptor) error {
	provider := mat.BindGroupProvider()
	if provider == nil {
		provider = bind_group_provider.NewBindGroupProvider(mat.Name() + " Material")
		mat.SetBindGroupProvider(provider)
	}
	if err := r.InitTextureView(provider, material.BindingDiffuseTexture, mat.DiffuseTexture()); err != nil {
		return err
	}
	if err := r.InitSampler(provider, material.BindingDiffuseSampler, mat.Sampler()); err != nil {
		return err
	}
	return r.InitBindGroup(provider, desc, nil, nil)
}
