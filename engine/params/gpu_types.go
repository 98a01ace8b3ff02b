// package params holds the GPU-aligned uniform structures shared by every
// shading pipeline: the per-frame block (time + camera matrices) and the
// per-object block (model + normal matrices).
package params

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUFrameParamsSource is the canonical WGSL definition of the FrameParams struct.
// Matches GPUFrameParams layout exactly (144 bytes, std140 aligned).
//
//go:embed assets/frame_params.wgsl
var GPUFrameParamsSource string

// GPUFrameParams is the GPU-aligned representation of per-frame shading state.
// Matches the WGSL FrameParams struct layout exactly (see GPUFrameParamsSource):
// the mat4x4 fields are 16-byte aligned, so sim_time is followed by 12 bytes of
// padding before the projection matrix.
// Size: 144 bytes.
type GPUFrameParams struct {
	SimTime    float32     // offset  0: elapsed simulation time in seconds (4 bytes)
	_pad0      [3]float32  // offset  4: pad to mat4x4 alignment (12 bytes)
	Projection [16]float32 // offset 16: 4×4 projection matrix, column-major (64 bytes)
	View       [16]float32 // offset 80: 4×4 view matrix, column-major (64 bytes)
}

// Size returns the size of the GPUFrameParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUFrameParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUFrameParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 144-byte buffer ready for GPU upload.
func (g *GPUFrameParams) Marshal() []byte {
	buf := make([]byte, 144)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.SimTime))
	// bytes 4..16 stay zero (alignment padding)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[16+i*4:20+i*4], math.Float32bits(g.Projection[i]))
	}
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[80+i*4:84+i*4], math.Float32bits(g.View[i]))
	}
	return buf
}

// GPUObjectParamsSource is the canonical WGSL definition of the ObjectParams struct.
// Matches GPUObjectParams marshaled layout exactly (112 bytes, std140 aligned).
//
//go:embed assets/object_params.wgsl
var GPUObjectParamsSource string

// GPUObjectParams is the GPU-aligned representation of per-object shading state.
// Matches the WGSL ObjectParams struct layout (see GPUObjectParamsSource).
// The CPU-side NormalMatrix is 9 contiguous floats; the WGSL mat3x3<f32> stores
// each column in a 16-byte slot, so Marshal is authoritative for GPU bytes:
// it places the columns at offsets 64, 80 and 96 with zeroed tail floats.
// Size: 112 bytes.
type GPUObjectParams struct {
	Model        [16]float32 // offset  0: 4×4 model-to-world matrix, column-major (64 bytes)
	NormalMatrix [9]float32  // offset 64: 3×3 normal matrix, column-major, columns padded to vec4 slots on upload (48 bytes GPU-side)
	_pad0        [3]float32  // keeps unsafe.Sizeof at the GPU size (112 bytes)
}

// Size returns the size of the GPUObjectParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUObjectParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUObjectParams struct into a byte buffer suitable for GPU upload.
// Normal matrix columns land at offsets 64, 80 and 96; the fourth float of each
// column slot is zero.
//
// Returns:
//   - []byte: 112-byte buffer ready for GPU upload.
func (g *GPUObjectParams) Marshal() []byte {
	buf := make([]byte, 112)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(g.Model[i]))
	}
	for col := 0; col < 3; col++ {
		base := 64 + col*16
		for row := 0; row < 3; row++ {
			binary.LittleEndian.PutUint32(buf[base+row*4:base+row*4+4], math.Float32bits(g.NormalMatrix[col*3+row]))
		}
	}
	return buf
}

// GPUMat4 is the GPU-aligned representation of a standalone 4×4 matrix uniform,
// used by the independent-uniform binding path where projection, view and model
// each occupy their own buffer.
// Size: 64 bytes (mat4x4<f32>, no padding required).
type GPUMat4 struct {
	M [16]float32 // offset 0: 4×4 matrix, column-major (64 bytes)
}

// Size returns the size of the GPUMat4 struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUMat4) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMat4 struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload.
func (g *GPUMat4) Marshal() []byte {
	buf := make([]byte, 64)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(g.M[i]))
	}
	return buf
}

// GPUMat3 is the GPU-aligned representation of a standalone 3×3 matrix uniform.
// WGSL mat3x3<f32> stores each column in a 16-byte slot; the CPU-side M is
// 9 contiguous floats and Marshal produces the padded layout.
// Size: 48 bytes.
type GPUMat3 struct {
	M     [9]float32 // offset 0: 3×3 matrix, column-major, columns padded to vec4 slots on upload (48 bytes GPU-side)
	_pad0 [3]float32 // keeps unsafe.Sizeof at the GPU size (48 bytes)
}

// Size returns the size of the GPUMat3 struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUMat3) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMat3 struct into a byte buffer suitable for GPU upload.
// Columns land at offsets 0, 16 and 32; the fourth float of each slot is zero.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload.
func (g *GPUMat3) Marshal() []byte {
	buf := make([]byte, 48)
	for col := 0; col < 3; col++ {
		base := col * 16
		for row := 0; row < 3; row++ {
			binary.LittleEndian.PutUint32(buf[base+row*4:base+row*4+4], math.Float32bits(g.M[col*3+row]))
		}
	}
	return buf
}
