package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute はルートコマンドを引数付きで実行し、標準出力と標準エラーを返します。
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestBuildAndHeatmap(t *testing.T) {
	// ユーザーの設定ファイルを読まないようにする
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	dest := filepath.Join(dir, "model.sqlite")

	out, logs, err := execute(t, "build", "-i", "../loader/testdata/model.yaml", "-o", dest)
	require.NoError(t, err)
	require.Equal(t, dest, strings.TrimSpace(out))
	require.FileExists(t, dest)
	require.Contains(t, logs, "build_id=")
	require.Contains(t, logs, "model database written")

	svgPath := filepath.Join(dir, "solar.svg")
	_, _, err = execute(t, "heatmap", "--db", dest, "--region", "UT", "--name", "SOLAR", "--out", svgPath)
	require.NoError(t, err)
	svg, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	require.Contains(t, string(svg), "<svg")
	require.Contains(t, string(svg), `data-season="S2"`)

	_, _, err = execute(t, "heatmap", "--db", dest, "--table", "bogus", "--region", "UT", "--name", "SOLAR", "--out", svgPath)
	require.Error(t, err)
}

func TestBuildMissingInput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, _, err := execute(t, "build", "-i", filepath.Join(t.TempDir(), "missing.yaml"), "-o", filepath.Join(t.TempDir(), "x.sqlite"))
	require.Error(t, err)
}

func TestDestination(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		outputDir string
		database  string
		want      string
	}{
		{name: "explicit output", output: "a.sqlite", outputDir: "out", database: "b.sqlite", want: "a.sqlite"},
		{name: "output dir", outputDir: "out", database: "b.sqlite", want: filepath.Join("out", "b.sqlite")},
		{name: "absolute database", outputDir: "out", database: "/tmp/b.sqlite", want: "/tmp/b.sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, destination(tt.output, tt.outputDir, tt.database))
		})
	}
}
