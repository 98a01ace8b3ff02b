// annotations.go defines the annotation types, argument constants, and parser for the
// Lambert WGSL shader pre-processor. Annotations are single-line WGSL comments prefixed
// with @lambert: that drive automatic struct injection, bind group declaration, and
// resource provider registration. The parsed results are stored as Annotation values and
// consumed by the PreProcessor and the param binders to wire GPU resources without manual
// low-level plumbing.
package shader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// annotationPrefix is the marker that identifies a Lambert annotation within a WGSL comment line.
// Every annotation must appear on a line beginning with "//" followed by this prefix.
const annotationPrefix = "@lambert:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
// Each type corresponds to a distinct pre-processor action and produces different
// fields on the resulting Annotation struct.
type AnnotationType string

const (
	// annotationTypeInclude injects the WGSL source of a registered definition into the
	// shader at the annotation site. The source is embedded from the corresponding Go
	// package's .wgsl asset file. This is how the vertex input struct, uniform blocks,
	// and shared lighting constants stay identical across separately compiled stage
	// programs. This annotation does not produce a declaration and is consumed entirely
	// during pre-processing.
	//
	// Syntax: //@lambert:include <include_key>
	//
	// Example: //@lambert:include lighting
	annotationTypeInclude AnnotationType = "include"

	// AnnotationTypeBindingGroup generates a WGSL @group/@binding variable declaration
	// and appends an Annotation to the PreProcessor's declarations list. The declaration
	// carries the group index, binding index, and the resolved struct type, enabling the
	// param binders to semantically match bindings to uniform blocks without string lookups.
	//
	// Syntax: //@lambert:group <group> <binding> <address_space> <var_name> <type>
	//
	// Example: //@lambert:group 0 0 storage_uniform frame frame_params
	AnnotationTypeBindingGroup AnnotationType = "group"

	// AnnotationTypeProvider registers a resource provider identity for a group and binding
	// without generating any WGSL output. The WGSL binding declaration remains hand-written
	// in the shader source directly below the annotation. This is used for bindings that
	// contain raw WGSL types (textures, samplers, standalone matrix uniforms) which have no
	// corresponding registered struct in the pre-processor's registry.
	//
	// An optional binding role can be appended after the provider identity to declare the
	// semantic purpose of an individual binding within a multi-binding provider group.
	//
	// Syntax:
	//   //@lambert:provider <group> <binding> <provider_identity>
	//   //@lambert:provider <group> <binding> <provider_identity> <binding_role>
	//
	// Examples:
	//   //@lambert:provider 1 0 material diffuse_texture
	//   //@lambert:provider 0 2 object
	AnnotationTypeProvider AnnotationType = "provider"
)

// Annotation represents a single parsed @lambert: annotation from a WGSL shader source line.
// It carries the annotation type, its arguments, the source line number, and optional
// group/binding indices. Annotations of type AnnotationTypeBindingGroup and
// AnnotationTypeProvider are appended to the PreProcessor's declarations list for
// consumption during resource wiring.
type Annotation struct {
	// Type identifies which annotation was parsed (include, group, or provider).
	Type AnnotationType

	// Args holds the annotation's arguments. The contents depend on Type:
	//   - include:  [0] = include key (e.g. "lighting")
	//   - group:    [0] = address space, [1] = var name, [2] = WGSL type key
	//   - provider: [0] = provider identity (e.g. "material", "frame"), [1] = binding role (optional, e.g. "diffuse_texture")
	Args []AnnotationArg

	// Line is the 1-based line number in the original WGSL source where this annotation
	// was found. Used for error reporting.
	Line int

	// Group is the @group index for group and provider annotations. Nil for include annotations.
	Group *int

	// Binding is the @binding index for group and provider annotations. Nil for include annotations.
	Binding *int
}

// AnnotationArg is a typed string constant used as an argument in annotations.
// Arguments fall into three categories: include/struct keys (used with include and group),
// address space identifiers (used with group), and provider identity keys (used with provider).
type AnnotationArg string

// ── Include and struct type arguments ──────────────────────────────────────────
// These identify registered WGSL sources. They can appear in @lambert:include
// annotations (to inject the source) and, for the uniform block structs, in
// @lambert:group annotations (as the type field). Each maps to an embedded
// .wgsl asset file.

const (
	// AnnotationArgVertex identifies the VertexInput struct shared by every vertex stage.
	// Source: engine/model/assets/vertex.wgsl
	AnnotationArgVertex AnnotationArg = "vertex"

	// AnnotationArgFrameParams identifies the FrameParams uniform block struct.
	// Source: engine/params/assets/frame_params.wgsl
	AnnotationArgFrameParams AnnotationArg = "frame_params"

	// AnnotationArgObjectParams identifies the ObjectParams uniform block struct.
	// Source: engine/params/assets/object_params.wgsl
	AnnotationArgObjectParams AnnotationArg = "object_params"

	// AnnotationArgLighting identifies the shared shading constants: the light
	// direction and the lambert_diffuse function. Include-only; it is not a struct
	// and cannot appear as a @lambert:group type.
	// Source: engine/light/assets/shading_constants.wgsl
	AnnotationArgLighting AnnotationArg = "lighting"
)

// ── Address space arguments ────────────────────────────────────────────────────
// These specify the WGSL variable address space in @lambert:group annotations.
// They map to WGSL var<> declarations.

const (
	// annotationArgStorageTypeUniform maps to var<uniform> in WGSL.
	annotationArgStorageTypeUniform AnnotationArg = "storage_uniform"

	// annotationArgStorageTypeRead maps to var<storage, read> in WGSL.
	annotationArgStorageTypeRead AnnotationArg = "storage_read"
)

// ── Provider identity arguments ────────────────────────────────────────────────
// These identify which resource provider owns a bind group. Used in
// @lambert:provider annotations and matched by the param binders' wiring logic.

const (
	// AnnotationArgMaterial identifies the material provider (diffuse texture and sampler).
	AnnotationArgMaterial AnnotationArg = "material"

	// AnnotationArgFrame identifies the per-frame provider (sim time and camera matrices,
	// or the standalone projection/view uniforms on the independent-uniform path).
	AnnotationArgFrame AnnotationArg = "frame"

	// AnnotationArgObject identifies the per-object provider (model and normal matrices).
	AnnotationArgObject AnnotationArg = "object"
)

// ── Material binding role arguments ────────────────────────────────────────────
// These qualify individual bindings within a material provider group. They appear
// as the optional fourth argument of an @lambert:provider annotation when the
// provider identity is "material".

const (
	// AnnotationArgDiffuseTexture identifies a diffuse / base-color texture binding.
	AnnotationArgDiffuseTexture AnnotationArg = "diffuse_texture"

	// AnnotationArgDiffuseSampler identifies the sampler paired with the diffuse texture.
	AnnotationArgDiffuseSampler AnnotationArg = "diffuse_sampler"
)

// validIncludeTypes lists all AnnotationArg values that are accepted as arguments
// in @lambert:include annotations. Each entry must have a corresponding
// registryEntry in the PreProcessor's structRegistry.
var validIncludeTypes = []AnnotationArg{
	AnnotationArgVertex,
	AnnotationArgFrameParams,
	AnnotationArgObjectParams,
	AnnotationArgLighting,
}

// validBlockTypes lists all AnnotationArg values that are accepted as struct type
// arguments in @lambert:group annotations. Narrower than validIncludeTypes:
// include-only sources (vertex input, lighting constants) are not bindable blocks.
var validBlockTypes = []AnnotationArg{
	AnnotationArgFrameParams,
	AnnotationArgObjectParams,
}

// validAddressSpaces lists all AnnotationArg values that are accepted as address
// space arguments in @lambert:group annotations. Each maps to a WGSL var<> declaration.
var validAddressSpaces = []AnnotationArg{
	annotationArgStorageTypeUniform,
	annotationArgStorageTypeRead,
}

// validProviderIdentities lists all AnnotationArg values that are accepted as
// provider identity arguments in @lambert:provider annotations.
var validProviderIdentities = []AnnotationArg{
	AnnotationArgMaterial,
	AnnotationArgFrame,
	AnnotationArgObject,
}

// validBindingRoles lists all AnnotationArg values that are accepted as binding
// role qualifiers in @lambert:provider annotations.
var validBindingRoles = []AnnotationArg{
	AnnotationArgDiffuseTexture,
	AnnotationArgDiffuseSampler,
}

// parseAnnotation attempts to parse a single line of WGSL source as a @lambert: annotation.
// Returns nil with no error for lines that do not contain the annotation prefix. Returns
// a populated Annotation for valid annotations, or an error describing the problem for
// malformed annotations with correct prefix but invalid syntax or unknown arguments.
//
// Parameters:
//   - line: the raw WGSL source line to parse
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @lambert annotation", lineNum)
	}

	switch args[0] {
	case string(annotationTypeInclude):
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @lambert include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validIncludeTypes, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown include key %q in @lambert include annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: annotationTypeInclude,
			Args: []AnnotationArg{AnnotationArg(args[1])},
			Line: lineNum,
		}, nil
	case string(AnnotationTypeBindingGroup):
		if len(args) != 6 {
			return nil, fmt.Errorf("line %d: @lambert group annotation requires exactly five arguments (group number, binding number, address space, var name, struct type)", lineNum)
		}
		groupInt, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid group number %q in @lambert group annotation: %v", lineNum, args[1], err)
		}
		bindingInt, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid binding number %q in @lambert group annotation: %v", lineNum, args[2], err)
		}
		if !slices.Contains(validAddressSpaces, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown address space %q in @lambert group annotation", lineNum, args[3])
		}
		if !slices.Contains(validBlockTypes, AnnotationArg(args[5])) {
			return nil, fmt.Errorf("line %d: unknown block type %q in @lambert group annotation", lineNum, args[5])
		}
		return &Annotation{
			Type:    AnnotationTypeBindingGroup,
			Args:    []AnnotationArg{AnnotationArg(args[3]), AnnotationArg(args[4]), AnnotationArg(args[5])},
			Line:    lineNum,
			Group:   &groupInt,
			Binding: &bindingInt,
		}, nil
	case string(AnnotationTypeProvider):
		if len(args) < 4 || len(args) > 5 {
			return nil, fmt.Errorf("line %d: @lambert provider annotation requires three or four arguments (group, binding, provider identity[, binding role])", lineNum)
		}
		groupInt, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid group number %q: %v", lineNum, args[1], err)
		}
		bindingInt, err := strconv.Atoi(args[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid binding number %q in @lambert provider annotation: %v", lineNum, args[2], err)
		}
		if !slices.Contains(validProviderIdentities, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown provider identity %q in @lambert provider annotation", lineNum, args[3])
		}
		providerArgs := []AnnotationArg{AnnotationArg(args[3])}
		if len(args) == 5 {
			if !slices.Contains(validBindingRoles, AnnotationArg(args[4])) {
				return nil, fmt.Errorf("line %d: unknown binding role %q in @lambert provider annotation", lineNum, args[4])
			}
			providerArgs = append(providerArgs, AnnotationArg(args[4]))
		}
		return &Annotation{
			Type:    AnnotationTypeProvider,
			Args:    providerArgs,
			Line:    lineNum,
			Group:   &groupInt,
			Binding: &bindingInt,
		}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @lambert annotation type %q", lineNum, args[0])
	}
}
