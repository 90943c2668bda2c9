package augmentations

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/augmentgo/core/artifact"
	"github.com/YuminosukeSato/augmentgo/core/transform"
	"github.com/YuminosukeSato/augmentgo/pkg/errors"
)

// BBoxSafeCrop は全バウンディングボックスを内包する最小の窓へ切り出す変換。
// クロップ窓はボックスの実座標から導出されるため、データ依存ターゲットの
// 機構（TargetsAsParams）を通る。bboxesキーがバンドルに存在しない場合、
// 呼び出しはMissingDependencyArtifactErrorで失敗する。
type BBoxSafeCrop struct {
	*transform.Dual
}

// NewBBoxSafeCrop は新しいBBoxSafeCropを作成する
func NewBBoxSafeCrop(opts ...transform.Option) (*BBoxSafeCrop, error) {
	c := &BBoxSafeCrop{}
	d, err := transform.NewDual("augmentations.BBoxSafeCrop", c, opts...)
	if err != nil {
		return nil, err
	}
	c.Dual = d
	return c, nil
}

// TargetsAsParams はクロップ窓の導出に必要なターゲットキーを宣言する
func (c *BBoxSafeCrop) TargetsAsParams() []string {
	return []string{artifact.KeyBBoxes}
}

// GetParamsDependentOnTargets はボックスの実座標からクロップ窓を計算する
func (c *BBoxSafeCrop) GetParamsDependentOnTargets(targets map[string]artifact.Value) (transform.Params, error) {
	boxes, ok := targets[artifact.KeyBBoxes].(*artifact.BoxList)
	if !ok {
		return nil, errors.NewInvalidArgumentError(artifact.KeyBBoxes, "artifact kind mismatch: expected box-list", targets[artifact.KeyBBoxes])
	}
	if len(boxes.Items) == 0 {
		return nil, errors.NewInvalidArgumentError(artifact.KeyBBoxes, "must not be empty for a box-safe crop", 0)
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, box := range boxes.Items {
		head, err := box.Head()
		if err != nil {
			return nil, err
		}
		minX = math.Min(minX, head[0])
		minY = math.Min(minY, head[1])
		maxX = math.Max(maxX, head[2])
		maxY = math.Max(maxY, head[3])
	}
	return transform.Params{
		"crop_x1": minX,
		"crop_y1": minY,
		"crop_x2": maxX,
		"crop_y2": maxY,
	}, nil
}

// cropWindow はフレームにクランプした整数のクロップ窓を解決する
func (c *BBoxSafeCrop) cropWindow(params transform.Params) (x1, y1, x2, y2 int, err error) {
	rows, err := params.Rows()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	cols, err := params.Cols()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	cx1, err := params.Float("crop_x1")
	if err != nil {
		return 0, 0, 0, 0, err
	}
	cy1, err := params.Float("crop_y1")
	if err != nil {
		return 0, 0, 0, 0, err
	}
	cx2, err := params.Float("crop_x2")
	if err != nil {
		return 0, 0, 0, 0, err
	}
	cy2, err := params.Float("crop_y2")
	if err != nil {
		return 0, 0, 0, 0, err
	}

	x1 = clampInt(int(math.Floor(cx1)), 0, cols-1)
	y1 = clampInt(int(math.Floor(cy1)), 0, rows-1)
	x2 = clampInt(int(math.Ceil(cx2)), x1+1, cols)
	y2 = clampInt(int(math.Ceil(cy2)), y1+1, rows)
	return x1, y1, x2, y2, nil
}

// Apply はクロップ窓でグリッドを切り出す
func (c *BBoxSafeCrop) Apply(img *mat.Dense, params transform.Params) (*mat.Dense, error) {
	x1, y1, x2, y2, err := c.cropWindow(params)
	if err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(img.Slice(y1, y2, x1, x2)), nil
}

// ApplyToBox はボックスの幾何ヘッドをクロップ窓の原点へ平行移動する
func (c *BBoxSafeCrop) ApplyToBox(head artifact.Geometry, params transform.Params) (artifact.Geometry, error) {
	x1, y1, _, _, err := c.cropWindow(params)
	if err != nil {
		return artifact.Geometry{}, err
	}
	dx, dy := float64(x1), float64(y1)
	return artifact.Geometry{head[0] - dx, head[1] - dy, head[2] - dx, head[3] - dy}, nil
}

// ApplyToKeypoint はキーポイントの幾何ヘッドをクロップ窓の原点へ平行移動する
func (c *BBoxSafeCrop) ApplyToKeypoint(head artifact.Geometry, params transform.Params) (artifact.Geometry, error) {
	x1, y1, _, _, err := c.cropWindow(params)
	if err != nil {
		return artifact.Geometry{}, err
	}
	return artifact.Geometry{head[0] - float64(x1), head[1] - float64(y1), head[2], head[3]}, nil
}

// ArgNames は宣言済み引数名を返す
func (c *BBoxSafeCrop) ArgNames() []string { return []string{} }

// Args は引数名から現在値へのマッピングを返す
func (c *BBoxSafeCrop) Args() map[string]interface{} { return map[string]interface{}{} }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
