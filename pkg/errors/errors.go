// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// scikit-learnの警告・例外システムにインスパイアされており、構造化されたエラー情報を提供します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("octogo-Warning: %v\n", w)
	}
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、ClassImbalanceWarningなどのカスタム警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// Warn は警告を発生させます。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// ClassImbalanceWarning は分類タスクのターゲットクラスが大きく偏っている場合に発生する警告です。
// Ratio は最多クラスの件数を最少クラスの件数で割った値です。
type ClassImbalanceWarning struct {
	Target    string
	Ratio     float64
	Threshold float64
}

func (w *ClassImbalanceWarning) Error() string {
	return fmt.Sprintf("target '%s' is imbalanced: majority/minority ratio %.2f exceeds %.2f. Consider resampling or class weights.",
		w.Target, w.Ratio, w.Threshold)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *ClassImbalanceWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("target", w.Target).
		Float64("ratio", w.Ratio).
		Float64("threshold", w.Threshold).
		Str("type", "ClassImbalanceWarning")
}

// NewClassImbalanceWarning は新しいClassImbalanceWarningを作成します。
func NewClassImbalanceWarning(target string, ratio, threshold float64) *ClassImbalanceWarning {
	return &ClassImbalanceWarning{Target: target, Ratio: ratio, Threshold: threshold}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// ColumnNotFoundError はデータセットに存在しないカラムを参照した場合のエラーです。
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("octogo: column '%s' does not exist in the dataset", e.Column)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ColumnNotFoundError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("column", e.Column).
		Str("type", "ColumnNotFoundError")
}

// NewColumnNotFoundError は新しいColumnNotFoundErrorを作成し、スタックトレースを付与します。
func NewColumnNotFoundError(column string) error {
	err := &ColumnNotFoundError{Column: column}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
// 例えば、数値カラムを要求する操作に文字列カラムを渡した場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("octogo: %s: %s", e.Op, e.Message)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValueError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "ValueError")
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("octogo: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
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

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
