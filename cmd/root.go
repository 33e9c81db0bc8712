// Package cmd はコマンドラインインターフェースを提供します。
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stsysd/genesys/config"
	"github.com/stsysd/genesys/ctxlog"
)

// rootCmd はすべてのサブコマンドの親です。
var rootCmd = &cobra.Command{
	Use:           "genesys",
	Short:         "Build energy-system model databases",
	Long:          longDescription,
	SilenceUsage:  true,
	SilenceErrors: true,

	// 設定を読み込み、ロガーをコンテキストに格納
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		used, err := config.ReadInConfig(viper.GetViper(), cfgFile)
		if err != nil {
			return err
		}
		c, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = c

		logger, err := ctxlog.New(cmd.ErrOrStderr(), cfg.LogLevel)
		if err != nil {
			return err
		}
		if used != "" {
			logger.Debug("using config file", "path", used)
		}
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	cfgFile string
	cfg     *config.Config
)

// SetVersion はバージョン文字列を設定します。
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetRootCmd は fang に渡すルートコマンドを返します。
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	config.Setup(viper.GetViper())

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.genesys.yaml or ./config/genesys.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug|info|warn|error)")
	cobra.CheckErr(viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.AddCommand(buildCmd, heatmapCmd)
}

const longDescription = `genesys compiles a model description (scenario settings, commodities and
technologies) into the normalized SQLite database read by the optimizer.`
