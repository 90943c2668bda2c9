package transform

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/augmentgo/core/artifact"
)

// NoOp は全てのapply-variantが恒等関数である退化変換。
// ベースラインやパイプラインのプレースホルダーとして使う。
// 活性化の判定と来歴の記録は通常通り行われるため、契約全体を
// 無操作のペイロードで通すテストフィクスチャとしても機能する。
type NoOp struct {
	*Dual
}

// NewNoOp は新しいNoOp変換を作成する
func NewNoOp(opts ...Option) (*NoOp, error) {
	n := &NoOp{}
	d, err := NewDual("transform.NoOp", n, opts...)
	if err != nil {
		return nil, err
	}
	n.Dual = d
	return n, nil
}

// Apply は画像をそのまま返す
func (n *NoOp) Apply(img *mat.Dense, _ Params) (*mat.Dense, error) {
	return img, nil
}

// ApplyToMask はマスクをそのまま返す
func (n *NoOp) ApplyToMask(mask *mat.Dense, _ Params) (*mat.Dense, error) {
	return mask, nil
}

// ApplyToBox はボックスの幾何ヘッドをそのまま返す
func (n *NoOp) ApplyToBox(head artifact.Geometry, _ Params) (artifact.Geometry, error) {
	return head, nil
}

// ApplyToKeypoint はキーポイントの幾何ヘッドをそのまま返す
func (n *NoOp) ApplyToKeypoint(head artifact.Geometry, _ Params) (artifact.Geometry, error) {
	return head, nil
}

// ArgNames は宣言済み引数名を返す（NoOpは追加引数を持たない）
func (n *NoOp) ArgNames() []string { return []string{} }

// Args は引数名から現在値へのマッピングを返す
func (n *NoOp) Args() map[string]interface{} { return map[string]interface{}{} }
