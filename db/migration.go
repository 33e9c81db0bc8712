package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:generate go tool sqlc generate -f ../sqlc.yaml

//go:embed schema/*.sql
var embedMigrations embed.FS

// Migrate はモデルデータベースのスキーマを作成します。
// スキーマは固定の契約なので、バージョン管理テーブルは作成しません。
func Migrate(ctx context.Context, conn *sql.DB) error {
	// 外部キー制約を有効化
	if _, err := conn.ExecContext(ctx, `PRAGMA foreign_keys = ON;`); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	fsys, err := fs.Sub(embedMigrations, "schema")
	if err != nil {
		return fmt.Errorf("failed to open schema directory: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, conn, fsys,
		goose.WithDisableVersioning(true))
	if err != nil {
		return fmt.Errorf("failed to set up migrations: %w", err)
	}

	// マイグレーションを実行
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Tables はスキーマに含まれるテーブル名を作成順に返します。
func Tables(ctx context.Context, conn *sql.DB) ([]string, error) {
	rows, err := conn.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
