// Package augmentations は変換契約を実装する具象変換を提供します。
// 各変換のピクセル演算は意図的に単純であり、活性化・ルーティング・
// 幾何合成・来歴という契約全体を通すことに主眼があります。
package augmentations

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/augmentgo/core/artifact"
	"github.com/YuminosukeSato/augmentgo/core/transform"
)

// HorizontalFlip は画像とアノテーションを垂直軸まわりに反転する変換
type HorizontalFlip struct {
	*transform.Dual
}

// NewHorizontalFlip は新しいHorizontalFlipを作成する
//
// 使用例:
//
//	flip, err := augmentations.NewHorizontalFlip(transform.WithProbability(0.5))
//	out, err := flip.Invoke(false, bundle)
func NewHorizontalFlip(opts ...transform.Option) (*HorizontalFlip, error) {
	f := &HorizontalFlip{}
	d, err := transform.NewDual("augmentations.HorizontalFlip", f, opts...)
	if err != nil {
		return nil, err
	}
	f.Dual = d
	return f, nil
}

// Apply は列を左右反転した新しいグリッドを返す
func (f *HorizontalFlip) Apply(img *mat.Dense, _ transform.Params) (*mat.Dense, error) {
	rows, cols := img.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, img.At(i, cols-1-j))
		}
	}
	return out, nil
}

// ApplyToBox はボックスの幾何ヘッドを左右反転する
func (f *HorizontalFlip) ApplyToBox(head artifact.Geometry, params transform.Params) (artifact.Geometry, error) {
	cols, err := params.Cols()
	if err != nil {
		return artifact.Geometry{}, err
	}
	w := float64(cols - 1)
	return artifact.Geometry{w - head[2], head[1], w - head[0], head[3]}, nil
}

// ApplyToKeypoint はキーポイントの幾何ヘッドを左右反転する
func (f *HorizontalFlip) ApplyToKeypoint(head artifact.Geometry, params transform.Params) (artifact.Geometry, error) {
	cols, err := params.Cols()
	if err != nil {
		return artifact.Geometry{}, err
	}
	return artifact.Geometry{float64(cols-1) - head[0], head[1], math.Pi - head[2], head[3]}, nil
}

// ArgNames は宣言済み引数名を返す
func (f *HorizontalFlip) ArgNames() []string { return []string{} }

// Args は引数名から現在値へのマッピングを返す
func (f *HorizontalFlip) Args() map[string]interface{} { return map[string]interface{}{} }

// VerticalFlip は画像とアノテーションを水平軸まわりに反転する変換
type VerticalFlip struct {
	*transform.Dual
}

// NewVerticalFlip は新しいVerticalFlipを作成する
func NewVerticalFlip(opts ...transform.Option) (*VerticalFlip, error) {
	f := &VerticalFlip{}
	d, err := transform.NewDual("augmentations.VerticalFlip", f, opts...)
	if err != nil {
		return nil, err
	}
	f.Dual = d
	return f, nil
}

// Apply は行を上下反転した新しいグリッドを返す
func (f *VerticalFlip) Apply(img *mat.Dense, _ transform.Params) (*mat.Dense, error) {
	rows, cols := img.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, img.At(rows-1-i, j))
		}
	}
	return out, nil
}

// ApplyToBox はボックスの幾何ヘッドを上下反転する
func (f *VerticalFlip) ApplyToBox(head artifact.Geometry, params transform.Params) (artifact.Geometry, error) {
	rows, err := params.Rows()
	if err != nil {
		return artifact.Geometry{}, err
	}
	h := float64(rows - 1)
	return artifact.Geometry{head[0], h - head[3], head[2], h - head[1]}, nil
}

// ApplyToKeypoint はキーポイントの幾何ヘッドを上下反転する
func (f *VerticalFlip) ApplyToKeypoint(head artifact.Geometry, params transform.Params) (artifact.Geometry, error) {
	rows, err := params.Rows()
	if err != nil {
		return artifact.Geometry{}, err
	}
	return artifact.Geometry{head[0], float64(rows-1) - head[1], -head[2], head[3]}, nil
}

// ArgNames は宣言済み引数名を返す
func (f *VerticalFlip) ArgNames() []string { return []string{} }

// Args は引数名から現在値へのマッピングを返す
func (f *VerticalFlip) Args() map[string]interface{} { return map[string]interface{}{} }
