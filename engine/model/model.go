package model

import (
	"github.com/Carmen-Shannon/lambert-go/engine/renderer/bind_group_provider"
)

// model is the implementation of the Model interface.
type model struct {
	name                  string
	meshProvider          bind_group_provider.BindGroupProvider
	boundingRadius        float32
	vertexData, indexData []byte
	indexCount            int
}

// Model defines the interface for a renderable 3D mesh.
// A Model is a GPU-ready container holding vertex and index data plus the
// BindGroupProvider that owns the uploaded GPU buffers.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// MeshProvider retrieves the BindGroupProvider holding GPU mesh resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	MeshProvider() bind_group_provider.BindGroupProvider

	// SetMeshProvider assigns the BindGroupProvider holding GPU mesh resources.
	//
	// Parameters:
	//   - provider: the mesh provider to set
	SetMeshProvider(provider bind_group_provider.BindGroupProvider)

	// VertexData returns the raw vertex data for this model's mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the raw index data for this model's mesh.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// BoundingRadius returns the bounding sphere radius for this model, measured as
	// the maximum vertex distance from the origin.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// SetVertexData sets the raw vertex data for this model's mesh.
	//
	// Parameters:
	//   - data: the vertex data to set
	SetVertexData(data []byte)

	// SetIndexData sets the raw index data for this model's mesh.
	//
	// Parameters:
	//   - data: the index data to set
	SetIndexData(data []byte)

	// SetIndexCount sets the number of indices in the model's mesh.
	//
	// Parameters:
	//   - count: the index count to set
	SetIndexCount(count int)
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// NewUnitQuad creates a unit quad in the XY plane, centered at the origin,
// facing +Z with UVs spanning [0,1] in both axes. Two counter-clockwise
// triangles, six indices.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - Model: the quad model with vertex and index data populated and a mesh
//     provider attached, ready for InitMeshBuffers
func NewUnitQuad(name string) Model {
	vertices := []GPUVertex{
		{Position: [3]float32{-0.5, -0.5, 0}, Normal: [3]float32{0, 0, 1}, TexCoord: [2]float32{0, 1}},
		{Position: [3]float32{0.5, -0.5, 0}, Normal: [3]float32{0, 0, 1}, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{0.5, 0.5, 0}, Normal: [3]float32{0, 0, 1}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{-0.5, 0.5, 0}, Normal: [3]float32{0, 0, 1}, TexCoord: [2]float32{0, 0}},
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}
	return NewModel(
		WithName(name),
		WithVertices(vertices),
		WithIndices(indices),
		WithMeshProvider(bind_group_provider.NewBindGroupProvider(name+" Mesh")),
	)
}

func (m *model) Name() string {
	return m.name
}

func (m *model) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *model) SetMeshProvider(provider bind_group_provider.BindGroupProvider) {
	m.meshProvider = provider
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) SetVertexData(data []byte) {
	m.vertexData = data
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) SetIndexData(data []byte) {
	m.indexData = data
}

func (m *model) IndexCount() int {
	return m.indexCount
}

func (m *model) SetIndexCount(count int) {
	m.indexCount = count
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}
