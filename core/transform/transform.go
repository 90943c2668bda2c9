// Package transform implements the transform-application engine: per-call
// activation, shared parameter resolution, alias-aware target routing and
// provenance recording for bundles of co-registered artifacts.
//
// The package defines the contract every concrete transform satisfies and
// two structural variants of it: Dual for transforms that affect raster data
// plus geometric annotations, and ImageOnly for transforms that affect only
// raster data. Concrete transforms live in the augmentations package.
package transform

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/augmentgo/core/artifact"
)

// Interpolation selects the resampling mode for a transform's raster path.
// The dual variant's mask path always overrides it with InterNearest so that
// fractional label values are never invented.
type Interpolation int

const (
	// InterNearest is nearest-neighbor resampling.
	InterNearest Interpolation = iota
	// InterLinear is bilinear resampling.
	InterLinear
	// InterCubic is bicubic resampling.
	InterCubic
	// InterArea is pixel-area-relation resampling.
	InterArea
	// InterLanczos4 is Lanczos resampling over an 8x8 neighborhood.
	InterLanczos4
)

// Parameter names the engine injects into every invocation's shared set.
const (
	// ParamRows is the raster frame's row count.
	ParamRows = "rows"
	// ParamCols is the raster frame's column count.
	ParamCols = "cols"
	// ParamInterpolation carries the transform's Interpolation setting.
	ParamInterpolation = "interpolation"
	// ParamFillValue carries the transform's fill value setting.
	ParamFillValue = "fill_value"
)

// Transform is the contract every augmentation satisfies. A transform is
// constructed once and reused across many invocations; the only mutable
// per-instance state is the alias table, which must be established during
// single-threaded setup before the instance is shared.
type Transform interface {
	// Invoke decides activation, resolves the invocation's shared parameter
	// set and routes every present artifact to its apply-variant. The same
	// keys come back, with values replaced where transformed. When the
	// transform does not activate the input bundle is returned unchanged.
	Invoke(forceApply bool, bundle artifact.Bundle) (artifact.Bundle, error)

	// AddTargets registers alias keys that route through an existing
	// canonical target, e.g. {"image2": "image"}. Call during setup only.
	AddTargets(aliases map[string]string)

	// Name returns the transform's qualified type name.
	Name() string

	// BaseArgs returns the construction arguments every transform shares.
	BaseArgs() map[string]interface{}
}

// RasterProcessor is the leaf operation for raster data. Every transform
// whose raster target is actually exercised must implement it; a dual
// transform without it fails with NotImplemented at apply time.
type RasterProcessor interface {
	Apply(img *mat.Dense, params Params) (*mat.Dense, error)
}

// MaskProcessor optionally overrides the mask path. When absent, the dual
// variant falls back to Apply with interpolation forced to nearest.
type MaskProcessor interface {
	ApplyToMask(mask *mat.Dense, params Params) (*mat.Dense, error)
}

// BoxProcessor is the leaf operation for a single bounding box's geometric
// head. The dual variant owns the list composition (head/tail split, payload
// and order preservation); implementations only move the four coordinates.
type BoxProcessor interface {
	ApplyToBox(head artifact.Geometry, params Params) (artifact.Geometry, error)
}

// KeypointProcessor is the leaf operation for a single keypoint's geometric
// head, composed the same way as BoxProcessor.
type KeypointProcessor interface {
	ApplyToKeypoint(head artifact.Geometry, params Params) (artifact.Geometry, error)
}

// ParamSource declares a transform's own randomized parameters, drawn once
// per activation and shared by every artifact in the invocation.
type ParamSource interface {
	GetParams() (Params, error)
}

// DependentParamSource declares parameters that depend on artifact content
// rather than shape, e.g. looking at box coordinates to choose a crop
// window. Every key returned by TargetsAsParams must be present in the
// bundle or the invocation fails with MissingDependencyArtifact.
type DependentParamSource interface {
	TargetsAsParams() []string
	GetParamsDependentOnTargets(targets map[string]artifact.Value) (Params, error)
}

// TargetDependence declares, per bundle key, extra artifact keys whose
// values are injected into the parameter set for that key's apply call.
type TargetDependence interface {
	TargetDependence() map[string][]string
}

// ArgProvider declares a transform's configuration-argument names and
// current values for introspection and serialization. A transform that does
// not implement it fails with NotSerializable when introspected.
type ArgProvider interface {
	ArgNames() []string
	Args() map[string]interface{}
}
