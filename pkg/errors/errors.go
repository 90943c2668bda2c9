// Package errors はプロジェクト全体のエラーハンドリングを提供します。
// albumentationsのエラー分類にインスパイアされており、構造化されたエラー情報を提供します。
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// InvalidArgumentError は構築時の引数が不正な場合のエラーです。
// 例えば、確率pが[0,1]の範囲外の場合や、lowとbiasを同時に指定した場合など。
type InvalidArgumentError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("augmentgo: invalid argument '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidArgumentError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "InvalidArgumentError")
}

// NewInvalidArgumentError は新しいInvalidArgumentErrorを作成し、スタックトレースを付与します。
func NewInvalidArgumentError(param, reason string, value interface{}) error {
	err := &InvalidArgumentError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// MissingRequiredArtifactError はフレーム形状パラメータの導出に必要な
// ラスター画像がバンドルに存在しない場合のエラーです。
type MissingRequiredArtifactError struct {
	Transform string
	Key       string
}

func (e *MissingRequiredArtifactError) Error() string {
	return fmt.Sprintf("augmentgo: %s: required artifact '%s' is missing from the bundle. Geometry parameters cannot be derived", e.Transform, e.Key)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *MissingRequiredArtifactError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("transform", e.Transform).
		Str("key", e.Key).
		Str("type", "MissingRequiredArtifactError")
}

// NewMissingRequiredArtifactError は新しいMissingRequiredArtifactErrorを作成し、スタックトレースを付与します。
func NewMissingRequiredArtifactError(transform, key string) error {
	err := &MissingRequiredArtifactError{Transform: transform, Key: key}
	return errors.WithStack(err)
}

// MissingDependencyArtifactError は変換が宣言したデータ依存ターゲットが
// バンドルに存在しない場合のエラーです。
type MissingDependencyArtifactError struct {
	Transform string
	Key       string
}

func (e *MissingDependencyArtifactError) Error() string {
	return fmt.Sprintf("augmentgo: %s: declared dependency artifact '%s' is missing from the bundle", e.Transform, e.Key)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *MissingDependencyArtifactError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("transform", e.Transform).
		Str("key", e.Key).
		Str("type", "MissingDependencyArtifactError")
}

// NewMissingDependencyArtifactError は新しいMissingDependencyArtifactErrorを作成し、スタックトレースを付与します。
func NewMissingDependencyArtifactError(transform, key string) error {
	err := &MissingDependencyArtifactError{Transform: transform, Key: key}
	return errors.WithStack(err)
}

// NotImplementedError は具象変換が必須のリーフ操作を実装していない状態で
// その操作が実際に呼び出された場合のエラーです。
// これは実行時に回復可能な条件ではなく、変換実装側のプログラミングエラーです。
type NotImplementedError struct {
	Transform string
	Method    string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("augmentgo: method %s is not implemented in transform %s", e.Method, e.Transform)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotImplementedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("transform", e.Transform).
		Str("method", e.Method).
		Str("type", "NotImplementedError")
}

// NewNotImplementedError は新しいNotImplementedErrorを作成し、スタックトレースを付与します。
func NewNotImplementedError(transform, method string) error {
	err := &NotImplementedError{Transform: transform, Method: method}
	return errors.WithStack(err)
}

// UnsupportedProvenanceTargetError は履歴を保持できない種類のアーティファクトに
// 来歴の記録を試みた場合のエラーです。
// 来歴の欠落は監査・デバッグに依存する呼び出し側にとって正当性の欠陥であるため、
// 黙って破棄せず伝播させます。
type UnsupportedProvenanceTargetError struct {
	Kind string
}

func (e *UnsupportedProvenanceTargetError) Error() string {
	return fmt.Sprintf("augmentgo: artifact kind '%s' cannot carry a provenance history", e.Kind)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *UnsupportedProvenanceTargetError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("kind", e.Kind).
		Str("type", "UnsupportedProvenanceTargetError")
}

// NewUnsupportedProvenanceTargetError は新しいUnsupportedProvenanceTargetErrorを作成し、スタックトレースを付与します。
func NewUnsupportedProvenanceTargetError(kind string) error {
	err := &UnsupportedProvenanceTargetError{Kind: kind}
	return errors.WithStack(err)
}

// NotSerializableError は引数名の宣言を持たない変換に対して
// イントロスペクションを要求した場合のエラーです。
// 空のマッピングを黙って返すのではなく、明示的に失敗させます。
type NotSerializableError struct {
	Transform string
}

func (e *NotSerializableError) Error() string {
	return fmt.Sprintf("augmentgo: transform %s is not serializable because it does not declare its argument names", e.Transform)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotSerializableError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("transform", e.Transform).
		Str("type", "NotSerializableError")
}

// NewNotSerializableError は新しいNotSerializableErrorを作成し、スタックトレースを付与します。
func NewNotSerializableError(transform string) error {
	err := &NotSerializableError{Transform: transform}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}
