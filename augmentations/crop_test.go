package augmentations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/augmentgo/core/artifact"
	"github.com/YuminosukeSato/augmentgo/pkg/errors"
)

func cropBundle() artifact.Bundle {
	img := mat.NewDense(6, 6, nil)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			img.Set(i, j, float64(i*10+j))
		}
	}
	return artifact.Bundle{
		artifact.KeyImage:     artifact.NewRaster(img),
		artifact.KeyBBoxes:    artifact.NewBoxList([]artifact.Box{{1, 1, 3, 3, 7}}),
		artifact.KeyKeypoints: artifact.NewKeypointList([]artifact.Keypoint{{2, 2, 0, 1}}),
	}
}

func TestBBoxSafeCrop(t *testing.T) {
	crop, err := NewBBoxSafeCrop()
	require.NoError(t, err)

	out, err := crop.Invoke(true, cropBundle())
	require.NoError(t, err)

	raster := out[artifact.KeyImage].(*artifact.Raster)
	rows, cols := raster.Data.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	// 窓は(1,1)起点なので左上は元の(1,1)
	assert.Equal(t, 11.0, raster.Data.At(0, 0))
	assert.Equal(t, 22.0, raster.Data.At(1, 1))

	boxes := out[artifact.KeyBBoxes].(*artifact.BoxList)
	require.Len(t, boxes.Items, 1)
	assert.Equal(t, artifact.Box{0, 0, 2, 2, 7}, boxes.Items[0])

	kps := out[artifact.KeyKeypoints].(*artifact.KeypointList)
	require.Len(t, kps.Items, 1)
	assert.Equal(t, artifact.Keypoint{1, 1, 0, 1}, kps.Items[0])
}

func TestBBoxSafeCropUnionOfBoxes(t *testing.T) {
	crop, err := NewBBoxSafeCrop()
	require.NoError(t, err)

	bundle := cropBundle()
	bundle[artifact.KeyBBoxes] = artifact.NewBoxList([]artifact.Box{
		{1, 1, 2, 2},
		{3, 2, 5, 4},
	})

	out, err := crop.Invoke(true, bundle)
	require.NoError(t, err)

	raster := out[artifact.KeyImage].(*artifact.Raster)
	rows, cols := raster.Data.Dims()
	// 結合窓は x:[1,5) y:[1,4)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)

	boxes := out[artifact.KeyBBoxes].(*artifact.BoxList)
	assert.Equal(t, artifact.Box{0, 0, 1, 1}, boxes.Items[0])
	assert.Equal(t, artifact.Box{2, 1, 4, 3}, boxes.Items[1])
}

func TestBBoxSafeCropMissingBoxes(t *testing.T) {
	crop, err := NewBBoxSafeCrop()
	require.NoError(t, err)

	bundle := cropBundle()
	delete(bundle, artifact.KeyBBoxes)

	_, err = crop.Invoke(true, bundle)
	require.Error(t, err)

	var depErr *errors.MissingDependencyArtifactError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, artifact.KeyBBoxes, depErr.Key)
}

func TestBBoxSafeCropEmptyBoxes(t *testing.T) {
	crop, err := NewBBoxSafeCrop()
	require.NoError(t, err)

	bundle := cropBundle()
	bundle[artifact.KeyBBoxes] = artifact.NewBoxList(nil)

	_, err = crop.Invoke(true, bundle)
	require.Error(t, err)

	var argErr *errors.InvalidArgumentError
	assert.True(t, errors.As(err, &argErr))
}

func TestBBoxSafeCropClampsToFrame(t *testing.T) {
	crop, err := NewBBoxSafeCrop()
	require.NoError(t, err)

	bundle := cropBundle()
	bundle[artifact.KeyBBoxes] = artifact.NewBoxList([]artifact.Box{{-2, -2, 9, 9}})

	out, err := crop.Invoke(true, bundle)
	require.NoError(t, err)

	raster := out[artifact.KeyImage].(*artifact.Raster)
	rows, cols := raster.Data.Dims()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 6, cols)
}
