package augmentations

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/augmentgo/core/transform"
)

// RandomGain は画像の輝度を一様分布から引いたゲインで乗算する画像限定変換。
// マスク・ボックス・キーポイントはルーターの恒等フォールバックを通り、
// 手つかずのまま返る。
type RandomGain struct {
	*transform.ImageOnly

	// GainLimit はゲインの抽選区間
	GainLimit transform.Range
}

// NewRandomGain は新しいRandomGainを作成する
//
// gainLimitにはスカラーか[min,max]区間を渡す。スカラーvは1を中心とした
// (1-v, 1+v)に正規化される。
//
// 使用例:
//
//	gain, err := augmentations.NewRandomGain(0.2) // ゲイン区間 (0.8, 1.2)
func NewRandomGain(gainLimit interface{}, opts ...transform.Option) (*RandomGain, error) {
	limit, err := transform.ToTuple(gainLimit, transform.WithBias(1.0))
	if err != nil {
		return nil, err
	}
	t := &RandomGain{GainLimit: limit}
	io, err := transform.NewImageOnly("augmentations.RandomGain", t, opts...)
	if err != nil {
		return nil, err
	}
	t.ImageOnly = io
	return t, nil
}

// GetParams はゲインを1つ抽選する
func (t *RandomGain) GetParams() (transform.Params, error) {
	u := distuv.Uniform{Min: t.GainLimit.Min, Max: t.GainLimit.Max}
	if src := t.Source(); src != nil {
		u.Src = src
	}
	return transform.Params{"gain": u.Rand()}, nil
}

// Apply はグリッド全体をゲインで乗算する
func (t *RandomGain) Apply(img *mat.Dense, params transform.Params) (*mat.Dense, error) {
	gain, err := params.Float("gain")
	if err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Scale(gain, img)
	return &out, nil
}

// ArgNames は宣言済み引数名を返す
func (t *RandomGain) ArgNames() []string { return []string{"gain_limit"} }

// Args は引数名から現在値へのマッピングを返す
func (t *RandomGain) Args() map[string]interface{} {
	return map[string]interface{}{"gain_limit": t.GainLimit}
}
