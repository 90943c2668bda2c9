package artifact

import (
	"github.com/YuminosukeSato/augmentgo/pkg/errors"
)

// Entry は1回の変換適用を表す来歴レコード
type Entry struct {
	// Transform は適用された変換の完全修飾名
	Transform string
	// Params は適用時に使われた共有パラメータセット
	Params map[string]interface{}
}

// History はアーティファクトに付随する追記専用の来歴。
// レコードは適用順に並び、書き換え・並べ替え・削除は行われない。
type History struct {
	entries []Entry
}

// Append は来歴の末尾にレコードを追加する
func (h *History) Append(e Entry) {
	h.entries = append(h.entries, e)
}

// Entries はレコードのコピーを適用順で返す。来歴が空ならnil。
func (h *History) Entries() []Entry {
	if h == nil || len(h.entries) == 0 {
		return nil
	}
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len はレコード数を返す
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

// clone は来歴のコピーを返す。派生アーティファクトはコピーを引き継ぐため、
// 元のアーティファクトの来歴が後から伸びることはない。
func (h *History) clone() *History {
	if h == nil {
		return nil
	}
	out := &History{entries: make([]Entry, len(h.entries))}
	copy(out.entries, h.entries)
	return out
}

// Record はアーティファクトに来歴レコードを1件追記する。
// 履歴スロットは最初の記録時に遅延確保される。来歴を保持できない種類
// （不透明な値）に対してはUnsupportedProvenanceTargetErrorを返す。
func Record(v Value, transform string, params map[string]interface{}) error {
	if v == nil {
		return errors.NewInvalidArgumentError("artifact", "must not be nil", nil)
	}
	h := v.history()
	if h == nil {
		return errors.NewUnsupportedProvenanceTargetError(v.Kind().String())
	}
	h.Append(Entry{Transform: transform, Params: params})
	return nil
}
