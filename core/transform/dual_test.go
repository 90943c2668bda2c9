package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/augmentgo/core/artifact"
)

// shiftStub は幾何ヘッダを+1ずつ平行移動するDual変換
type shiftStub struct {
	*Dual
}

func newShiftStub(t *testing.T) *shiftStub {
	t.Helper()
	s := &shiftStub{}
	d, err := NewDual("transform.shiftStub", s)
	require.NoError(t, err)
	s.Dual = d
	return s
}

func (s *shiftStub) Apply(img *mat.Dense, _ Params) (*mat.Dense, error) {
	return img, nil
}

func (s *shiftStub) ApplyToBox(box artifact.Geometry, _ Params) (artifact.Geometry, error) {
	return artifact.Geometry{box[0] + 1, box[1] + 1, box[2] + 1, box[3] + 1}, nil
}

func (s *shiftStub) ApplyToKeypoint(kp artifact.Geometry, _ Params) (artifact.Geometry, error) {
	return artifact.Geometry{kp[0] + 1, kp[1] + 1, kp[2], kp[3]}, nil
}

// interpStub は呼び出しごとの補間指定を形状別に記録するDual変換
type interpStub struct {
	*Dual
	seen map[int]Interpolation
}

func newInterpStub(t *testing.T, opts ...Option) *interpStub {
	t.Helper()
	s := &interpStub{seen: make(map[int]Interpolation)}
	d, err := NewDual("transform.interpStub", s, opts...)
	require.NoError(t, err)
	s.Dual = d
	return s
}

func (s *interpStub) Apply(img *mat.Dense, params Params) (*mat.Dense, error) {
	rows, _ := img.Dims()
	if interp, ok := params.Interpolation(); ok {
		s.seen[rows] = interp
	}
	return img, nil
}

// maskAwareStub は専用のマスク経路を持つDual変換
type maskAwareStub struct {
	*Dual
	maskInterp Interpolation
}

func newMaskAwareStub(t *testing.T, opts ...Option) *maskAwareStub {
	t.Helper()
	s := &maskAwareStub{}
	d, err := NewDual("transform.maskAwareStub", s, opts...)
	require.NoError(t, err)
	s.Dual = d
	return s
}

func (s *maskAwareStub) Apply(img *mat.Dense, _ Params) (*mat.Dense, error) {
	return img, nil
}

func (s *maskAwareStub) ApplyToMask(mask *mat.Dense, params Params) (*mat.Dense, error) {
	if interp, ok := params.Interpolation(); ok {
		s.maskInterp = interp
	}
	return mask, nil
}

func TestDualBoxCompositionPreservesPayloadAndOrder(t *testing.T) {
	stub := newShiftStub(t)

	bundle := imageBundle(4, 4)
	bundle[artifact.KeyBBoxes] = artifact.NewBoxList([]artifact.Box{
		{0, 0, 2, 2, 7, 9},
		{1, 1, 3, 3, 5},
	})

	out, err := stub.Invoke(true, bundle)
	require.NoError(t, err)

	boxes, ok := out[artifact.KeyBBoxes].(*artifact.BoxList)
	require.True(t, ok)
	require.Len(t, boxes.Items, 2)
	assert.Equal(t, artifact.Box{1, 1, 3, 3, 7, 9}, boxes.Items[0])
	assert.Equal(t, artifact.Box{2, 2, 4, 4, 5}, boxes.Items[1])
	assert.Len(t, boxes.Provenance(), 1)
}

func TestDualKeypointCompositionPreservesPayload(t *testing.T) {
	stub := newShiftStub(t)

	bundle := imageBundle(4, 4)
	bundle[artifact.KeyKeypoints] = artifact.NewKeypointList([]artifact.Keypoint{
		{0, 0, 0.5, 2, 11},
	})

	out, err := stub.Invoke(true, bundle)
	require.NoError(t, err)

	kps, ok := out[artifact.KeyKeypoints].(*artifact.KeypointList)
	require.True(t, ok)
	require.Len(t, kps.Items, 1)
	assert.Equal(t, artifact.Keypoint{1, 1, 0.5, 2, 11}, kps.Items[0])
}

func TestDualMaskFallsBackToRasterWithNearest(t *testing.T) {
	stub := newInterpStub(t, WithInterpolation(InterLinear))

	// 画像は2x2、マスクは3x3にして呼び出しを区別する
	bundle := imageBundle(2, 2)
	bundle[artifact.KeyMask] = artifact.NewMask(mat.NewDense(3, 3, nil))

	_, err := stub.Invoke(true, bundle)
	require.NoError(t, err)

	assert.Equal(t, InterLinear, stub.seen[2])
	assert.Equal(t, InterNearest, stub.seen[3])
}

func TestDualMaskProcessorGetsNearest(t *testing.T) {
	stub := newMaskAwareStub(t, WithInterpolation(InterCubic))

	bundle := imageBundle(2, 2)
	bundle[artifact.KeyMask] = artifact.NewMask(mat.NewDense(2, 2, nil))

	_, err := stub.Invoke(true, bundle)
	require.NoError(t, err)
	assert.Equal(t, InterNearest, stub.maskInterp)
}

func TestDualMaskListOrderAndLength(t *testing.T) {
	stub := newInterpStub(t)

	first := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	second := mat.NewDense(2, 2, []float64{2, 2, 2, 2})
	third := mat.NewDense(2, 2, []float64{3, 3, 3, 3})

	bundle := imageBundle(2, 2)
	bundle[artifact.KeyMasks] = artifact.NewMaskList([]*mat.Dense{first, second, third})

	out, err := stub.Invoke(true, bundle)
	require.NoError(t, err)

	masks, ok := out[artifact.KeyMasks].(*artifact.MaskList)
	require.True(t, ok)
	require.Len(t, masks.Items, 3)
	assert.Same(t, first, masks.Items[0])
	assert.Same(t, second, masks.Items[1])
	assert.Same(t, third, masks.Items[2])
}

func TestDualEmptyListsSucceed(t *testing.T) {
	stub := newShiftStub(t)

	bundle := imageBundle(2, 2)
	bundle[artifact.KeyBBoxes] = artifact.NewBoxList(nil)
	bundle[artifact.KeyKeypoints] = artifact.NewKeypointList(nil)

	out, err := stub.Invoke(true, bundle)
	require.NoError(t, err)
	assert.Empty(t, out[artifact.KeyBBoxes].(*artifact.BoxList).Items)
	assert.Empty(t, out[artifact.KeyKeypoints].(*artifact.KeypointList).Items)
}
