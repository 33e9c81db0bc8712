package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stsysd/genesys/builder"
	"github.com/stsysd/genesys/config"
	"github.com/stsysd/genesys/ctxlog"
	"github.com/stsysd/genesys/loader"
	"github.com/stsysd/genesys/store"
)

var (
	buildInput  string
	buildOutput string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a model database from a YAML description",
	Long: `Build loads a model description, computes every table and writes them to
a fresh SQLite database. The destination is replaced only when the whole
build succeeds.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildInput, "input", "i", "", "model description (YAML)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "destination database (default: <output-dir>/<database>)")
	buildCmd.Flags().String("output-dir", ".", "directory for the destination database")
	cobra.CheckErr(buildCmd.MarkFlagRequired("input"))
	cobra.CheckErr(viper.BindPFlag(config.KeyOutputDir, buildCmd.Flags().Lookup("output-dir")))
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	desc, err := loader.LoadFile(buildInput)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", buildInput, err)
	}

	dest := destination(buildOutput, cfg.OutputDir, desc.Database)

	// ビルドごとの識別子をログに付与
	logger := ctxlog.FromContext(ctx).With(slog.String("build_id", uuid.NewString()))
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Info("building model database",
		slog.String("input", buildInput),
		slog.String("output", dest),
		slog.String("scenario", desc.Settings.Scenario))

	tables, err := builder.Build(ctx, desc)
	if err != nil {
		return err
	}
	if err := store.Save(ctx, dest, tables); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), dest)
	return nil
}

// destination resolves the database path: an explicit --output wins, then
// the description's database name under the output directory.
func destination(output, outputDir, database string) string {
	if output != "" {
		return output
	}
	if filepath.IsAbs(database) {
		return database
	}
	return filepath.Join(outputDir, database)
}
