package transform

import (
	"github.com/YuminosukeSato/augmentgo/pkg/errors"
)

// Params は1回の呼び出しで共有されるパラメータセット。
// 変換固有のパラメータ、静的パラメータ（補間モード・フィル値）、
// フレーム形状（rows/cols）、データ依存パラメータがこの順で合成される。
type Params map[string]interface{}

// Clone はパラメータセットの浅いコピーを返す
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Rows はフレームの行数を返す
func (p Params) Rows() (int, error) {
	v, ok := p[ParamRows].(int)
	if !ok {
		return 0, errors.NewInvalidArgumentError(ParamRows, "missing or not an int", p[ParamRows])
	}
	return v, nil
}

// Cols はフレームの列数を返す
func (p Params) Cols() (int, error) {
	v, ok := p[ParamCols].(int)
	if !ok {
		return 0, errors.NewInvalidArgumentError(ParamCols, "missing or not an int", p[ParamCols])
	}
	return v, nil
}

// Float は指定キーのfloat64パラメータを返す
func (p Params) Float(key string) (float64, error) {
	v, ok := p[key].(float64)
	if !ok {
		return 0, errors.NewInvalidArgumentError(key, "missing or not a float64", p[key])
	}
	return v, nil
}

// Int は指定キーのintパラメータを返す
func (p Params) Int(key string) (int, error) {
	v, ok := p[key].(int)
	if !ok {
		return 0, errors.NewInvalidArgumentError(key, "missing or not an int", p[key])
	}
	return v, nil
}

// Interpolation は補間モードが設定されていればそれを返す
func (p Params) Interpolation() (Interpolation, bool) {
	v, ok := p[ParamInterpolation].(Interpolation)
	return v, ok
}

// Range は正規化済みの[min, max]区間を表す
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

type tupleOptions struct {
	low  *float64
	bias *float64
}

// TupleOption はToTupleの挙動を設定する
type TupleOption func(*tupleOptions)

// WithLow は区間の下限を明示的に指定する
func WithLow(low float64) TupleOption {
	return func(o *tupleOptions) {
		o.low = &low
	}
}

// WithBias は区間の両端に加算されるオフセットを指定する
func WithBias(bias float64) TupleOption {
	return func(o *tupleOptions) {
		o.bias = &bias
	}
}

// ToTuple は「単一の強度か明示的な[min,max]区間のどちらか」という設定入力を
// 正規化する純粋関数。
//
// スカラーvを渡すと(-v, v)、WithLow(l)併用時は(l, v)を昇順に並べた区間、
// 2要素の列やRangeはそのまま区間として通す。WithBias(b)は両端にbを加算する。
// WithLowとWithBiasの同時指定はInvalidArgumentErrorになる。
func ToTuple(param interface{}, opts ...TupleOption) (Range, error) {
	var o tupleOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.low != nil && o.bias != nil {
		return Range{}, errors.NewInvalidArgumentError("low/bias", "arguments low and bias are mutually exclusive", nil)
	}

	var r Range
	switch v := param.(type) {
	case int:
		r = scalarRange(float64(v), o.low)
	case float64:
		r = scalarRange(v, o.low)
	case Range:
		r = v
	case [2]float64:
		r = Range{Min: v[0], Max: v[1]}
	case []float64:
		if len(v) != 2 {
			return Range{}, errors.NewInvalidArgumentError("param", "sequence must have exactly 2 elements", len(v))
		}
		r = Range{Min: v[0], Max: v[1]}
	default:
		return Range{}, errors.NewInvalidArgumentError("param", "must be a scalar, a 2-element sequence, or a Range", param)
	}

	if o.bias != nil {
		r.Min += *o.bias
		r.Max += *o.bias
	}
	return r, nil
}

func scalarRange(v float64, low *float64) Range {
	if low == nil {
		return Range{Min: -v, Max: v}
	}
	if *low < v {
		return Range{Min: *low, Max: v}
	}
	return Range{Min: v, Max: *low}
}
