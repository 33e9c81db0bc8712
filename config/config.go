// Package config はアプリケーション設定を管理します。
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix は環境変数の接頭辞です（例: GENESYS_OUTPUT_DIR）。
const EnvPrefix = "GENESYS"

// 設定キー
const (
	KeyOutputDir = "output_dir"
	KeyLogLevel  = "log_level"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// 出力データベースを置くディレクトリ
	OutputDir string

	// ログレベル (debug|info|warn|error)
	LogLevel string
}

// Setup はデフォルト値と環境変数の読み込みを v に登録します。
func Setup(v *viper.Viper) {
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// ReadInConfig は設定ファイルを読み込み、使用したファイルのパスを返します。
// cfgFile が空の場合は $HOME/.genesys.yaml、./config/genesys.yaml の順に探します。
// 設定ファイルは任意なので、見つからない場合は空文字列を返します。
func ReadInConfig(v *viper.Viper, cfgFile string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("failed to read config file: %w", err)
		}
		return v.ConfigFileUsed(), nil
	}

	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath("./config")

	notFound := &viper.ConfigFileNotFoundError{}
	for _, name := range []string{".genesys", "genesys"} {
		v.SetConfigName(name)
		err := v.ReadInConfig()
		if err == nil {
			return v.ConfigFileUsed(), nil
		}
		if !errors.As(err, notFound) {
			return "", fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return "", nil
}

// Load は v から設定を取り出し、検証します。
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		OutputDir: v.GetString(KeyOutputDir),
		LogLevel:  strings.ToLower(v.GetString(KeyLogLevel)),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid %s %q (want debug, info, warn or error)", KeyLogLevel, cfg.LogLevel)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return cfg, nil
}
