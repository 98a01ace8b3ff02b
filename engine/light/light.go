// package light defines the fixed lighting model shared by every shading
// pipeline: a single directional light with a compile-time direction, applied
// as an unclamped Lambertian diffuse term.
package light

import (
	_ "embed"
)

// LightDirection is the world-space direction of the single directional light.
// It is a compile-time constant of the shading model, mirrored by the
// LIGHT_DIRECTION constant in GPUShadingConstantsSource. The +Z direction
// means surfaces facing the viewer in an untransformed scene are fully lit.
var LightDirection = [3]float32{0, 0, 1}

// GPUShadingConstantsSource is the canonical WGSL definition of the shading
// constants: the LIGHT_DIRECTION constant and the lambert_diffuse function.
// Injected into every stage program that requests the lighting include, so
// vertex and fragment stages always agree on the light.
//
//go:embed assets/shading_constants.wgsl
var GPUShadingConstantsSource string

// Diffuse computes the Lambertian diffuse intensity for a world-space normal.
// It is the raw dot product with LightDirection: the normal is used exactly as
// given, so non-unit lengths scale the intensity proportionally, and the
// result is deliberately NOT clamped: back-facing surfaces return negative
// intensity. CPU mirror of the WGSL lambert_diffuse function.
//
// Parameters:
//   - normal: world-space surface normal, used without renormalization
//
// Returns:
//   - float32: unclamped diffuse intensity
func Diffuse(normal [3]float32) float32 {
	return normal[0]*LightDirection[0] +
		normal[1]*LightDirection[1] +
		normal[2]*LightDirection[2]
}
