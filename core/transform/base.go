package transform

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/augmentgo/core/artifact"
	"github.com/YuminosukeSato/augmentgo/pkg/errors"
)

// ApplyFunc は1つのアーティファクトに共有パラメータで変換を適用する関数
type ApplyFunc func(v artifact.Value, params Params) (artifact.Value, error)

// Base は全ての変換の基底となる構造体。
// 活性化の判定、共有パラメータの解決、エイリアスを考慮したターゲットの
// ルーティング、来歴の記録を担う。構築後は設定不変であり、変化するのは
// エイリアステーブルのみ（AddTargetsを参照）。
type Base struct {
	name        string
	p           float64
	alwaysApply bool

	// 静的パラメータ。明示的なオプションフィールドであり、設定された
	// 場合のみ共有パラメータセットへ注入される。
	interpolation *Interpolation
	fillValue     *float64

	additionalTargets map[string]string
	targets           map[string]ApplyFunc

	// impl は具象変換。能力インターフェース（RasterProcessorなど）の
	// 実装有無はここへの型アサーションで判定する。
	impl interface{}

	src rand.Source
	rng *rand.Rand
}

// Option はBaseを設定する関数
type Option func(*Base)

// WithProbability は活性化確率pを設定する（デフォルト: 0.5）
func WithProbability(p float64) Option {
	return func(b *Base) {
		b.p = p
	}
}

// WithAlwaysApply は確率に関わらず常に適用するかどうかを設定する
func WithAlwaysApply(always bool) Option {
	return func(b *Base) {
		b.alwaysApply = always
	}
}

// WithSeed は再現性のためにインスタンス固有の乱数源を設定する。
// シード付きインスタンスの同時呼び出しは安全ではない。
func WithSeed(seed uint64) Option {
	return func(b *Base) {
		b.src = rand.NewPCG(seed, seed)
		b.rng = rand.New(b.src)
	}
}

// WithInterpolation はラスター経路の補間モードを設定する
func WithInterpolation(interp Interpolation) Option {
	return func(b *Base) {
		b.interpolation = &interp
	}
}

// WithFillValue は領域外のフィル値を設定する
func WithFillValue(fill float64) Option {
	return func(b *Base) {
		b.fillValue = &fill
	}
}

// NewBase は新しいBaseを作成する。pが[0,1]の範囲外の場合は
// InvalidArgumentErrorを返す。
func NewBase(name string, impl interface{}, opts ...Option) (*Base, error) {
	b := &Base{
		name:              name,
		p:                 0.5,
		impl:              impl,
		additionalTargets: make(map[string]string),
		targets:           make(map[string]ApplyFunc),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.p < 0 || b.p > 1 {
		return nil, errors.NewInvalidArgumentError("p", "must be in [0, 1]", b.p)
	}
	return b, nil
}

// Name は変換の完全修飾名を返す
func (b *Base) Name() string { return b.name }

// Probability は活性化確率pを返す
func (b *Base) Probability() float64 { return b.p }

// AlwaysApply は常時適用フラグを返す
func (b *Base) AlwaysApply() bool { return b.alwaysApply }

// BaseArgs は全変換が共有する構築時引数のマッピングを返す
func (b *Base) BaseArgs() map[string]interface{} {
	return map[string]interface{}{
		"always_apply": b.alwaysApply,
		"p":            b.p,
	}
}

// Source はインスタンス固有の乱数源を返す（未設定ならnil）。
// 具象変換がパラメータの抽選に使う。
func (b *Base) Source() rand.Source { return b.src }

// AddTargets は既存ターゲットと同じ方法で変換する追加ターゲットを登録する。
// 例: {"image2": "image"}、{"obj1_mask": "mask", "obj2_mask": "mask"}。
// なおバンドルにはキー"image"を持つアーティファクトが必要。
//
// 登録は冪等にマージされる。呼び出しはシングルスレッドのセットアップ中に
// 行うこと。呼び出し実行中のエイリアス変更は未定義。
func (b *Base) AddTargets(aliases map[string]string) {
	for key, canonical := range aliases {
		b.additionalTargets[key] = canonical
	}
}

// registerTargets は構造バリアントが正準ターゲットを束縛する
func (b *Base) registerTargets(targets map[string]ApplyFunc) {
	for key, fn := range targets {
		b.targets[key] = fn
	}
}

// resolve はキーをapply-variantへ解決する。エイリアスは正準名に読み替える。
// 未登録の正準名は登録なし（恒等変換扱い）として報告される。
func (b *Base) resolve(key string) (ApplyFunc, bool) {
	target := key
	if canonical, ok := b.additionalTargets[key]; ok {
		target = canonical
	}
	fn, ok := b.targets[target]
	return fn, ok
}

// draw は[0,1)の一様乱数を1つ引く
func (b *Base) draw() float64 {
	if b.rng != nil {
		return b.rng.Float64()
	}
	return rand.Float64()
}

// Invoke は活性化を判定し、共有パラメータセットを解決した上で、
// バンドル内の各アーティファクトをapply-variantへルーティングする。
//
// 活性化しない場合は入力バンドルをそのまま返す（副作用なし）。
// 乱数の抽選は1回の呼び出しにつき最大1回であり、全アーティファクトが
// 同じ判定を共有する。
func (b *Base) Invoke(forceApply bool, bundle artifact.Bundle) (artifact.Bundle, error) {
	if !forceApply && !b.alwaysApply && b.draw() >= b.p {
		return bundle, nil
	}

	params := Params{}
	if ps, ok := b.impl.(ParamSource); ok {
		own, err := ps.GetParams()
		if err != nil {
			return nil, err
		}
		for k, v := range own {
			params[k] = v
		}
	}

	if err := b.updateParams(params, bundle); err != nil {
		return nil, err
	}

	if dps, ok := b.impl.(DependentParamSource); ok {
		if err := b.mergeDependentParams(dps, params, bundle); err != nil {
			return nil, err
		}
	}

	var dependence map[string][]string
	if td, ok := b.impl.(TargetDependence); ok {
		dependence = td.TargetDependence()
	}

	out := make(artifact.Bundle, len(bundle))
	for key, value := range bundle {
		if value == nil {
			out[key] = nil
			continue
		}

		fn, registered := b.resolve(key)
		if !registered {
			// 未登録ターゲットは意図的な恒等素通し。来歴も付かない。
			out[key] = value
			continue
		}

		callParams := params
		if deps := dependence[key]; len(deps) > 0 {
			callParams = params.Clone()
			for _, depKey := range deps {
				depValue, ok := bundle[depKey]
				if !ok {
					return nil, errors.NewMissingDependencyArtifactError(b.name, depKey)
				}
				callParams[depKey] = depValue
			}
		}

		result, err := fn(value, callParams)
		if err != nil {
			return nil, err
		}
		if err := artifact.Record(result, b.name, params.Clone()); err != nil {
			return nil, err
		}
		out[key] = result
	}
	return out, nil
}

// updateParams は静的パラメータとフレーム形状パラメータを注入する。
// 形状パラメータはバンドル内のラスター画像から導出されるため、
// ラスターが存在しない場合はMissingRequiredArtifactErrorになる。
func (b *Base) updateParams(params Params, bundle artifact.Bundle) error {
	if b.interpolation != nil {
		params[ParamInterpolation] = *b.interpolation
	}
	if b.fillValue != nil {
		params[ParamFillValue] = *b.fillValue
	}

	raster, ok := bundle[artifact.KeyImage].(*artifact.Raster)
	if !ok || raster == nil || raster.Data == nil {
		return errors.NewMissingRequiredArtifactError(b.name, artifact.KeyImage)
	}
	rows, cols := raster.Data.Dims()
	params[ParamRows] = rows
	params[ParamCols] = cols
	return nil
}

// mergeDependentParams は宣言されたデータ依存ターゲットを収集し、
// アーティファクトの内容に依存する第二層のパラメータを合成する。
func (b *Base) mergeDependentParams(dps DependentParamSource, params Params, bundle artifact.Bundle) error {
	keys := dps.TargetsAsParams()
	if len(keys) == 0 {
		return nil
	}
	targets := make(map[string]artifact.Value, len(keys))
	for _, key := range keys {
		value, ok := bundle[key]
		if !ok {
			return errors.NewMissingDependencyArtifactError(b.name, key)
		}
		targets[key] = value
	}
	dependent, err := dps.GetParamsDependentOnTargets(targets)
	if err != nil {
		return err
	}
	for k, v := range dependent {
		params[k] = v
	}
	return nil
}

// applyRaster はラスターアーティファクトへの適用経路。
// RasterProcessorを実装しない変換がここに到達した場合はNotImplementedError。
func (b *Base) applyRaster(v artifact.Value, params Params) (artifact.Value, error) {
	rp, ok := b.impl.(RasterProcessor)
	if !ok {
		return nil, errors.NewNotImplementedError(b.name, "Apply")
	}
	in, ok := v.(*artifact.Raster)
	if !ok {
		return nil, errors.NewInvalidArgumentError(artifact.KeyImage, "artifact kind mismatch: expected raster", v.Kind().String())
	}
	data, err := rp.Apply(in.Data, params)
	if err != nil {
		return nil, err
	}
	return in.WithData(data), nil
}
