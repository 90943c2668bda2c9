package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/augmentgo/core/artifact"
	"github.com/YuminosukeSato/augmentgo/pkg/errors"
)

func TestApplyBatchPreservesOrder(t *testing.T) {
	noop, err := NewNoOp()
	require.NoError(t, err)

	// 閾値を超えるサイズで並列経路も通す
	bundles := make([]artifact.Bundle, 20)
	for i := range bundles {
		bundles[i] = artifact.Bundle{
			artifact.KeyImage: artifact.NewRaster(mat.NewDense(1, 1, []float64{float64(i)})),
		}
	}

	out, err := ApplyBatch(noop, true, bundles)
	require.NoError(t, err)
	require.Len(t, out, len(bundles))

	for i, bundle := range out {
		raster := bundle[artifact.KeyImage].(*artifact.Raster)
		assert.Equal(t, float64(i), raster.Data.At(0, 0))
		assert.Len(t, raster.Provenance(), 1)
	}
}

func TestApplyBatchEmpty(t *testing.T) {
	noop, err := NewNoOp()
	require.NoError(t, err)

	out, err := ApplyBatch(noop, true, nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestApplyBatchPropagatesError(t *testing.T) {
	noop, err := NewNoOp()
	require.NoError(t, err)

	bundles := []artifact.Bundle{
		imageBundle(2, 2),
		{artifact.KeyBBoxes: artifact.NewBoxList(nil)},
		imageBundle(2, 2),
	}

	_, err = ApplyBatch(noop, true, bundles)
	require.Error(t, err)

	var missErr *errors.MissingRequiredArtifactError
	assert.True(t, errors.As(err, &missErr))
}
