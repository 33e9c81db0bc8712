// Package store は、モデルデータベースの書き出しと読み出しを提供します。
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/stsysd/genesys/builder"
	"github.com/stsysd/genesys/ctxlog"
	"github.com/stsysd/genesys/db"
	"github.com/stsysd/genesys/model"
)

// TableWriter はビルド結果をデータベースに書き出すインターフェースです。
type TableWriter interface {
	// WriteTables はすべてのテーブルを一つのトランザクションで書き込みます。
	WriteTables(ctx context.Context, tables *builder.Tables) error
	// Publish は書き込み済みのデータベースを出力先に配置します。
	Publish() error
	// Close は接続を閉じ、未配置の一時ファイルを削除します。
	Close() error
}

// SQLiteStore はSQLiteを使用したTableWriterの実装です。
// 書き込みは出力先と同じディレクトリの一時ファイルに対して行い、
// Publish で出力先へリネームします。
type SQLiteStore struct {
	conn      *sql.DB
	queries   *db.Queries
	dest      string
	tmp       string
	published bool
}

// NewSQLiteStore は dest に配置するための新しいSQLiteStoreを作成し、スキーマを適用します。
func NewSQLiteStore(ctx context.Context, dest string) (*SQLiteStore, error) {
	// 出力ディレクトリの作成（存在しない場合）
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &model.ConnectionError{Path: dest, Err: err}
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(dest), uuid.NewString()))
	conn, err := open(ctx, tmp, false)
	if err != nil {
		os.Remove(tmp)
		return nil, &model.ConnectionError{Path: dest, Err: err}
	}

	// スキーマの適用
	if err := db.Migrate(ctx, conn); err != nil {
		conn.Close()
		os.Remove(tmp)
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{
		conn:    conn,
		queries: db.New(conn),
		dest:    dest,
		tmp:     tmp,
	}, nil
}

// open はSQLiteデータベースへの単一接続を開きます。
func open(ctx context.Context, path string, readOnly bool) (*sql.DB, error) {
	dsn := "file:" + path + "?_foreign_keys=on"
	if readOnly {
		dsn += "&mode=ro"
	}
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	// 書き込みハンドルは常に一つ
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// Path は一時ファイルのパスを返します。
func (s *SQLiteStore) Path() string {
	return s.tmp
}

// WriteTables はすべてのテーブルを依存順に一つのトランザクションで書き込みます。
// 失敗した場合はロールバックされ、行は一つも残りません。
func (s *SQLiteStore) WriteTables(ctx context.Context, t *builder.Tables) error {
	logger := ctxlog.FromContext(ctx)

	// トランザクションの開始
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// トランザクションをロールバックするための遅延関数
	defer func() {
		if tx != nil {
			tx.Rollback() // 成功した場合は既にnilになっているためエラーは無視
		}
	}()

	w := &tableWriter{ctx: ctx, q: s.queries.WithTx(tx), logger: logger}
	for _, step := range w.steps(t) {
		if err := step(); err != nil {
			return err
		}
	}

	// トランザクションのコミット
	if err := tx.Commit(); err != nil {
		return classify("commit", err)
	}
	tx = nil // コミットが成功したのでnilにして遅延関数でのロールバックを防ぐ

	return nil
}

// Publish は接続を閉じ、一時ファイルを出力先へリネームします。
// 既存の出力先は置き換えられます。
func (s *SQLiteStore) Publish() error {
	if s.published {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return &model.ConnectionError{Path: s.dest, Err: err}
	}
	if err := os.Rename(s.tmp, s.dest); err != nil {
		return &model.ConnectionError{Path: s.dest, Err: err}
	}
	s.published = true
	return nil
}

// Close はストアの接続を閉じます。Publish されていない一時ファイルは削除されます。
func (s *SQLiteStore) Close() error {
	if s.published {
		return nil
	}
	err := s.conn.Close()
	if rmErr := os.Remove(s.tmp); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
		err = rmErr
	}
	return err
}

// Save はビルド結果を dest に書き出します。失敗した場合、既存の dest は変更されません。
func Save(ctx context.Context, dest string, tables *builder.Tables) error {
	s, err := NewSQLiteStore(ctx, dest)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.WriteTables(ctx, tables); err != nil {
		return err
	}
	if err := s.Publish(); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("model database written",
		slog.String("path", dest),
		slog.Int("gaps", len(tables.Gaps)))
	return nil
}

// classify はSQLiteの制約違反を IntegrityError に変換します。
func classify(table string, err error) error {
	var se sqlite3.Error
	if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
		return &model.IntegrityError{Table: table, Err: err}
	}
	return fmt.Errorf("failed to write %s: %w", table, err)
}
