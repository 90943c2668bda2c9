package transform

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/augmentgo/pkg/errors"
)

// ClassFullnameKey は定義マッピング内で変換の完全修飾名を保持するキー
const ClassFullnameKey = "__class_fullname__"

// Definition は変換のコンストラクタ引数をラウンドトリップするための
// シリアライズ可能な定義マッピング
type Definition map[string]interface{}

// ToDefinition は変換のイントロスペクション結果を定義マッピングに変換する。
// 完全修飾名、基底引数（always_apply, p）、宣言済み引数の順で合成される。
// 変換がArgProviderを実装しない場合はNotSerializableErrorを返す。
func ToDefinition(t Transform) (Definition, error) {
	ap, ok := t.(ArgProvider)
	if !ok {
		return nil, errors.NewNotSerializableError(t.Name())
	}

	def := Definition{ClassFullnameKey: t.Name()}
	for k, v := range t.BaseArgs() {
		def[k] = v
	}
	args := ap.Args()
	for _, name := range ap.ArgNames() {
		def[name] = args[name]
	}
	return def, nil
}

// ToJSON は変換定義をJSONにエンコードする
func ToJSON(t Transform) ([]byte, error) {
	def, err := ToDefinition(t)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(def)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode transform definition")
	}
	return data, nil
}

// ToYAML は変換定義をYAMLにエンコードする
func ToYAML(t Transform) ([]byte, error) {
	def, err := ToDefinition(t)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(def)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode transform definition")
	}
	return data, nil
}

// FormatArgs は引数マッピングを"k=v"のカンマ区切り文字列に整形する。
// 出力を決定的にするためキーは辞書順に並ぶ。
func FormatArgs(args map[string]interface{}) string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, args[k]))
	}
	return strings.Join(parts, ", ")
}

// Repr は変換の__repr__相当の文字列表現を返す。
// 例: "HorizontalFlip(always_apply=false, p=0.5)"
func Repr(t Transform) (string, error) {
	ap, ok := t.(ArgProvider)
	if !ok {
		return "", errors.NewNotSerializableError(t.Name())
	}

	state := make(map[string]interface{})
	for k, v := range t.BaseArgs() {
		state[k] = v
	}
	args := ap.Args()
	for _, name := range ap.ArgNames() {
		state[name] = args[name]
	}

	name := t.Name()
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return fmt.Sprintf("%s(%s)", name, FormatArgs(state)), nil
}
