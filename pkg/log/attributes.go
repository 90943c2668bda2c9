// Package log defines standard attribute keys for augmentation operations.
//
// Using these keys consistently enables log analysis and filtering across
// everything that applies transforms: a record tagged with transform.name and
// aug.operation can be correlated from batch application down to individual
// artifact routing.

package log

// Transform and operation context.
const (
	// TransformNameKey identifies the transform type.
	// Examples: "augmentations.HorizontalFlip", "transform.NoOp"
	TransformNameKey = "transform.name"

	// OperationKey specifies the augmentation operation being performed.
	// Standard values: "invoke", "apply_batch", "visualize"
	OperationKey = "aug.operation"

	// TargetsKey indicates how many artifact keys a bundle carries.
	TargetsKey = "aug.targets"
)

// Data shape.
const (
	// RowsKey indicates the raster frame's row count.
	RowsKey = "data.rows"

	// ColsKey indicates the raster frame's column count.
	ColsKey = "data.cols"

	// BatchSizeKey indicates the number of bundles in a batch operation.
	BatchSizeKey = "batch.size"
)

// Performance.
const (
	// DurationMsKey records the elapsed wall time in milliseconds.
	DurationMsKey = "duration_ms"
)
