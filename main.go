// Package main はアプリケーションのエントリーポイントを提供します。
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/stsysd/genesys/cmd"
)

// Version はビルド時に設定されます。
var Version = "dev"

func main() {
	cmd.SetVersion(Version)
	if err := fang.Execute(context.Background(), cmd.GetRootCmd(), fang.WithVersion(Version)); err != nil {
		os.Exit(1)
	}
}
