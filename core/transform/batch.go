package transform

import (
	"log/slog"
	"time"

	"github.com/YuminosukeSato/augmentgo/core/artifact"
	"github.com/YuminosukeSato/augmentgo/core/parallel"
	"github.com/YuminosukeSato/augmentgo/pkg/log"
)

// batchThreshold gates the goroutine fan-out: batches at or below this size
// run sequentially.
const batchThreshold = 8

// ApplyBatch applies one transform independently to every bundle in the
// slice, fanning larger batches out across cores. The output slice preserves
// the input order and length; the first error encountered aborts the batch.
//
// Each bundle gets its own activation draw, exactly as if Invoke were called
// in a loop. Transforms carrying a WithSeed source are not safe to share
// across goroutines; apply those sequentially.
func ApplyBatch(t Transform, forceApply bool, bundles []artifact.Bundle) ([]artifact.Bundle, error) {
	if len(bundles) == 0 {
		return nil, nil
	}

	start := time.Now()
	out := make([]artifact.Bundle, len(bundles))
	errs := make([]error, len(bundles))

	parallel.ForWithThreshold(len(bundles), batchThreshold, func(s, e int) {
		for i := s; i < e; i++ {
			out[i], errs[i] = t.Invoke(forceApply, bundles[i])
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	slog.Debug("applied transform batch",
		log.TransformNameKey, t.Name(),
		log.OperationKey, "apply_batch",
		log.BatchSizeKey, len(bundles),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return out, nil
}
