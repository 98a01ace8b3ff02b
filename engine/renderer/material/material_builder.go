package material

import (
	"github.com/Carmen-Shannon/lambert-go/common"
	"github.com/Carmen-Shannon/lambert-go/engine/renderer/bind_group_provider"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithDiffuseTexture is an option builder that sets the staged diffuse texture of the material.
//
// Parameters:
//   - staging: the texture pixels and dimensions to upload at GPU init
//
// Returns:
//   - MaterialBuilderOption: a function that applies the diffuse texture option to a material
func WithDiffuseTexture(staging common.TextureStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.diffuseTexture = staging
	}
}

// WithSampler is an option builder that sets the staged sampler configuration of the material.
// Zero-valued fields fall back to the renderer defaults (repeat wrapping, linear filtering).
//
// Parameters:
//   - staging: the sampler configuration to create at GPU init
//
// Returns:
//   - MaterialBuilderOption: a function that applies the sampler option to a material
func WithSampler(staging common.SamplerStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.sampler = staging
	}
}

// WithPipelineKey is an option builder that sets the render pipeline key for the material.
//
// Parameters:
//   - key: the pipeline key to associate with this material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the pipeline key option to a material
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}

// WithBindGroupProvider is an option builder that sets the bind group provider for the material.
//
// Parameters:
//   - provider: the bind group provider containing GPU resources for this material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the bind group provider option to a material
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) MaterialBuilderOption {
	return func(m *material) {
		m.bindGroupProvider = provider
	}
}
