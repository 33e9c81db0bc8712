// Package model は、エネルギーシステム記述のデータモデル定義を提供します。
package model

import (
	"errors"
	"fmt"
)

// センチネルエラー - 記述の参照先が見つからない場合
var (
	ErrUnknownCommodity = errors.New("unknown commodity")
	ErrDuplicateName    = errors.New("duplicate name")
)

// ConfigurationError は記述のスカラー値や系列が不正であることを表す型です。
// テーブルが作成される前に検出されます。
type ConfigurationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// NewConfigurationError はConfigurationErrorを生成するヘルパー関数
func NewConfigurationError(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsConfiguration reports whether err is (or wraps) a *ConfigurationError.
func IsConfiguration(err error) bool {
	var c *ConfigurationError
	return errors.As(err, &c)
}

// IntegrityError は出力行が主キー・外部キー・CHECK制約に違反したことを表します。
type IntegrityError struct {
	Table string
	Err   error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation in table %s: %v", e.Table, e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// ConnectionError は出力先データベースに接続できないことを表します。
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot open model database %s: %v", e.Path, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// DataGap is a non-fatal gap: an entity lacks an optional series for a
// region, so the named table receives fewer rows.
type DataGap struct {
	Entity string
	Region string
	Table  string
}

func (g DataGap) String() string {
	if g.Region == "" {
		return fmt.Sprintf("%s has no %s data", g.Entity, g.Table)
	}
	return fmt.Sprintf("%s has no %s data for region %s", g.Entity, g.Table, g.Region)
}
