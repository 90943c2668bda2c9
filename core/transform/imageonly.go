package transform

import (
	"github.com/YuminosukeSato/augmentgo/core/artifact"
)

// ImageOnly はラスターのみを変換する構造バリアント。
// マスク・ボックス・キーポイントのキーはルーターの恒等フォールバックを
// 通るため、バンドルに存在しても手つかずのまま返る。これは意図された
// 挙動でありエラーではない。
type ImageOnly struct {
	*Base
}

// NewImageOnly は新しいImageOnlyバリアントを作成する
func NewImageOnly(name string, impl interface{}, opts ...Option) (*ImageOnly, error) {
	b, err := NewBase(name, impl, opts...)
	if err != nil {
		return nil, err
	}
	b.registerTargets(map[string]ApplyFunc{
		artifact.KeyImage: b.applyRaster,
	})
	return &ImageOnly{Base: b}, nil
}
