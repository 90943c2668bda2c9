package augmentations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/augmentgo/core/artifact"
	"github.com/YuminosukeSato/augmentgo/core/transform"
)

func TestHorizontalFlipImage(t *testing.T) {
	flip, err := NewHorizontalFlip()
	require.NoError(t, err)

	img := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	out, err := flip.Apply(img, nil)
	require.NoError(t, err)

	want := mat.NewDense(2, 3, []float64{
		3, 2, 1,
		6, 5, 4,
	})
	assert.True(t, mat.Equal(want, out))

	// 2回反転で元に戻る
	back, err := flip.Apply(out, nil)
	require.NoError(t, err)
	assert.True(t, mat.Equal(img, back))
}

func TestHorizontalFlipBundle(t *testing.T) {
	flip, err := NewHorizontalFlip()
	require.NoError(t, err)

	bundle := artifact.Bundle{
		artifact.KeyImage:     artifact.NewRaster(mat.NewDense(4, 4, nil)),
		artifact.KeyBBoxes:    artifact.NewBoxList([]artifact.Box{{0, 0, 2, 2, 5}}),
		artifact.KeyKeypoints: artifact.NewKeypointList([]artifact.Keypoint{{1, 1, 0.5, 2, 9}}),
	}

	out, err := flip.Invoke(true, bundle)
	require.NoError(t, err)

	boxes := out[artifact.KeyBBoxes].(*artifact.BoxList)
	require.Len(t, boxes.Items, 1)
	assert.Equal(t, artifact.Box{1, 0, 3, 2, 5}, boxes.Items[0])

	kps := out[artifact.KeyKeypoints].(*artifact.KeypointList)
	require.Len(t, kps.Items, 1)
	got := kps.Items[0]
	assert.InDelta(t, 2, got[0], 1e-12)
	assert.InDelta(t, 1, got[1], 1e-12)
	assert.InDelta(t, math.Pi-0.5, got[2], 1e-12)
	assert.InDelta(t, 2, got[3], 1e-12)
	assert.Equal(t, []float64{9}, got.Tail())

	for _, key := range []string{artifact.KeyImage, artifact.KeyBBoxes, artifact.KeyKeypoints} {
		entries := out[key].Provenance()
		require.Len(t, entries, 1, "key %s", key)
		assert.Equal(t, "augmentations.HorizontalFlip", entries[0].Transform)
	}
}

func TestVerticalFlipImage(t *testing.T) {
	flip, err := NewVerticalFlip()
	require.NoError(t, err)

	img := mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	out, err := flip.Apply(img, nil)
	require.NoError(t, err)

	want := mat.NewDense(3, 2, []float64{
		5, 6,
		3, 4,
		1, 2,
	})
	assert.True(t, mat.Equal(want, out))
}

func TestVerticalFlipBundle(t *testing.T) {
	flip, err := NewVerticalFlip()
	require.NoError(t, err)

	bundle := artifact.Bundle{
		artifact.KeyImage:     artifact.NewRaster(mat.NewDense(4, 4, nil)),
		artifact.KeyBBoxes:    artifact.NewBoxList([]artifact.Box{{0, 0, 2, 2}}),
		artifact.KeyKeypoints: artifact.NewKeypointList([]artifact.Keypoint{{1, 1, 0.5, 2}}),
	}

	out, err := flip.Invoke(true, bundle)
	require.NoError(t, err)

	boxes := out[artifact.KeyBBoxes].(*artifact.BoxList)
	assert.Equal(t, artifact.Box{0, 1, 2, 3}, boxes.Items[0])

	kps := out[artifact.KeyKeypoints].(*artifact.KeypointList)
	got := kps.Items[0]
	assert.InDelta(t, 1, got[0], 1e-12)
	assert.InDelta(t, 2, got[1], 1e-12)
	assert.InDelta(t, -0.5, got[2], 1e-12)
}

func TestFlipAdditionalTargets(t *testing.T) {
	flip, err := NewHorizontalFlip()
	require.NoError(t, err)
	flip.AddTargets(map[string]string{"image2": "image"})

	img := mat.NewDense(1, 2, []float64{1, 2})
	second := mat.NewDense(1, 2, []float64{3, 4})
	bundle := artifact.Bundle{
		artifact.KeyImage: artifact.NewRaster(img),
		"image2":          artifact.NewRaster(second),
	}

	out, err := flip.Invoke(true, bundle)
	require.NoError(t, err)

	routed := out["image2"].(*artifact.Raster)
	assert.True(t, mat.Equal(mat.NewDense(1, 2, []float64{4, 3}), routed.Data))
}

func TestFlipSerialization(t *testing.T) {
	flip, err := NewHorizontalFlip(transform.WithProbability(0.75))
	require.NoError(t, err)

	repr, err := transform.Repr(flip)
	require.NoError(t, err)
	assert.Equal(t, "HorizontalFlip(always_apply=false, p=0.75)", repr)

	def, err := transform.ToDefinition(flip)
	require.NoError(t, err)
	assert.Equal(t, "augmentations.HorizontalFlip", def[transform.ClassFullnameKey])
}
