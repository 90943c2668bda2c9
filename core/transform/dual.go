package transform

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/augmentgo/core/artifact"
	"github.com/YuminosukeSato/augmentgo/pkg/errors"
)

// Dual はラスターに加えて幾何アノテーション（マスク、マスクリスト、
// バウンディングボックス、キーポイント）も扱う構造バリアント。
// セグメンテーションや検出タスク向けの変換はこれを埋め込む。
//
// ボックス・キーポイントのリスト合成規則はこのバリアントが所有する:
// 各要素を4要素の幾何ヘッドと後続ペイロードに分割し、ヘッドのみを
// リーフ操作に通し、ペイロードを元の順序のまま再接続する。
// 出力リストの長さ・順序・各要素のペイロードは入力と厳密に一致する。
type Dual struct {
	*Base
}

// NewDual は新しいDualバリアントを作成し、5つの正準ターゲットを束縛する
func NewDual(name string, impl interface{}, opts ...Option) (*Dual, error) {
	b, err := NewBase(name, impl, opts...)
	if err != nil {
		return nil, err
	}
	d := &Dual{Base: b}
	b.registerTargets(map[string]ApplyFunc{
		artifact.KeyImage:     b.applyRaster,
		artifact.KeyMask:      d.applyMask,
		artifact.KeyMasks:     d.applyMaskList,
		artifact.KeyBBoxes:    d.applyBoxList,
		artifact.KeyKeypoints: d.applyKeypointList,
	})
	return d, nil
}

// maskData は1枚のマスクにラスター経路と同じ視覚操作を適用する。
// ラベル値の補間を避けるため、補間モードは変換の設定に関わらず
// 常に最近傍へ強制される。
func (d *Dual) maskData(mask *mat.Dense, params Params) (*mat.Dense, error) {
	p := params.Clone()
	p[ParamInterpolation] = InterNearest

	if mp, ok := d.impl.(MaskProcessor); ok {
		return mp.ApplyToMask(mask, p)
	}
	rp, ok := d.impl.(RasterProcessor)
	if !ok {
		return nil, errors.NewNotImplementedError(d.name, "Apply")
	}
	return rp.Apply(mask, p)
}

func (d *Dual) applyMask(v artifact.Value, params Params) (artifact.Value, error) {
	in, ok := v.(*artifact.Mask)
	if !ok {
		return nil, errors.NewInvalidArgumentError(artifact.KeyMask, "artifact kind mismatch: expected mask", v.Kind().String())
	}
	data, err := d.maskData(in.Data, params)
	if err != nil {
		return nil, err
	}
	return in.WithData(data), nil
}

func (d *Dual) applyMaskList(v artifact.Value, params Params) (artifact.Value, error) {
	in, ok := v.(*artifact.MaskList)
	if !ok {
		return nil, errors.NewInvalidArgumentError(artifact.KeyMasks, "artifact kind mismatch: expected mask-list", v.Kind().String())
	}
	items := make([]*mat.Dense, len(in.Items))
	for i, mask := range in.Items {
		data, err := d.maskData(mask, params)
		if err != nil {
			return nil, err
		}
		items[i] = data
	}
	return in.WithItems(items), nil
}

func (d *Dual) applyBoxList(v artifact.Value, params Params) (artifact.Value, error) {
	bp, ok := d.impl.(BoxProcessor)
	if !ok {
		return nil, errors.NewNotImplementedError(d.name, "ApplyToBox")
	}
	in, ok := v.(*artifact.BoxList)
	if !ok {
		return nil, errors.NewInvalidArgumentError(artifact.KeyBBoxes, "artifact kind mismatch: expected box-list", v.Kind().String())
	}
	items := make([]artifact.Box, len(in.Items))
	for i, box := range in.Items {
		head, err := box.Head()
		if err != nil {
			return nil, err
		}
		moved, err := bp.ApplyToBox(head, params)
		if err != nil {
			return nil, err
		}
		item := make(artifact.Box, 0, len(box))
		item = append(item, moved[:]...)
		item = append(item, box.Tail()...)
		items[i] = item
	}
	return in.WithItems(items), nil
}

func (d *Dual) applyKeypointList(v artifact.Value, params Params) (artifact.Value, error) {
	kp, ok := d.impl.(KeypointProcessor)
	if !ok {
		return nil, errors.NewNotImplementedError(d.name, "ApplyToKeypoint")
	}
	in, ok := v.(*artifact.KeypointList)
	if !ok {
		return nil, errors.NewInvalidArgumentError(artifact.KeyKeypoints, "artifact kind mismatch: expected keypoint-list", v.Kind().String())
	}
	items := make([]artifact.Keypoint, len(in.Items))
	for i, keypoint := range in.Items {
		head, err := keypoint.Head()
		if err != nil {
			return nil, err
		}
		moved, err := kp.ApplyToKeypoint(head, params)
		if err != nil {
			return nil, err
		}
		item := make(artifact.Keypoint, 0, len(keypoint))
		item = append(item, moved[:]...)
		item = append(item, keypoint.Tail()...)
		items[i] = item
	}
	return in.WithItems(items), nil
}
