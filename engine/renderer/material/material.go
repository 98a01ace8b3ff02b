package material

import (
	"github.com/Carmen-Shannon/lambert-go/common"
	"github.com/Carmen-Shannon/lambert-go/engine/renderer/bind_group_provider"
)

const (
	// BindingDiffuseTexture is the binding index of the diffuse texture view within the material bind group.
	BindingDiffuseTexture = 0

	// BindingDiffuseSampler is the binding index of the diffuse sampler within the material bind group.
	BindingDiffuseSampler = 1
)

// material is the implementation of the Material interface.
type material struct {
	name              string
	diffuseTexture    common.TextureStagingData
	sampler           common.SamplerStagingData
	pipelineKey       string
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Material defines the interface for a render material, encapsulating the diffuse
// texture, sampler configuration, and GPU resource bindings needed for draw calls.
//
// Staging data (name, diffuse texture, sampler) is set at load time and is read-only
// through this interface. GPU resource references (pipeline key, bind group provider)
// are mutable so they can be configured after construction during GPU initialization.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// DiffuseTexture retrieves the staged diffuse texture data for GPU upload.
	//
	// Returns:
	//   - common.TextureStagingData: the diffuse texture pixels and dimensions
	DiffuseTexture() common.TextureStagingData

	// Sampler retrieves the staged sampler configuration for GPU creation.
	//
	// Returns:
	//   - common.SamplerStagingData: the sampler configuration
	Sampler() common.SamplerStagingData

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this material.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider, or nil if not yet initialized
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)

	// SetBindGroupProvider sets the bind group provider for this material.
	//
	// Parameters:
	//   - provider: the bind group provider containing GPU resources for this material
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// When no diffuse texture is staged, a 1x1 opaque white texture is used so unlit
// geometry still samples a valid color.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		diffuseTexture: common.SolidTexture(255, 255, 255, 255),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) DiffuseTexture() common.TextureStagingData {
	return m.diffuseTexture
}

func (m *material) Sampler() common.SamplerStagingData {
	return m.sampler
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *material) SetPipelineKey(key string) {
	m.pipelineKey = key
}

func (m *material) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	m.bindGroupProvider = provider
}
