package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stsysd/genesys/heatmap"
	"github.com/stsysd/genesys/store"
)

var (
	heatmapDB     string
	heatmapTable  string
	heatmapRegion string
	heatmapName   string
	heatmapOut    string
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Render a season × hour heatmap of a built database",
	Long: `Heatmap reads CapacityFactorTech (--table capacity) or
DemandSpecificDistribution (--table demand) for one technology or demand
commodity in one region and renders it as SVG.`,
	RunE: runHeatmap,
}

func init() {
	heatmapCmd.Flags().StringVar(&heatmapDB, "db", "", "model database")
	heatmapCmd.Flags().StringVar(&heatmapTable, "table", string(store.CapacityFactorTable), "capacity or demand")
	heatmapCmd.Flags().StringVar(&heatmapRegion, "region", "", "region")
	heatmapCmd.Flags().StringVar(&heatmapName, "name", "", "technology or demand commodity")
	heatmapCmd.Flags().StringVarP(&heatmapOut, "out", "o", "", "output file (default: stdout)")
	for _, name := range []string{"db", "region", "name"} {
		cobra.CheckErr(heatmapCmd.MarkFlagRequired(name))
	}
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	table, err := store.ParseSliceTable(heatmapTable)
	if err != nil {
		return err
	}

	r, err := store.OpenReader(ctx, heatmapDB)
	if err != nil {
		return err
	}
	defer r.Close()

	m, err := r.Slices(ctx, table, heatmapRegion, heatmapName)
	if err != nil {
		return err
	}

	cells := make([]heatmap.Cell, 0, len(m.Values))
	for _, h := range m.Hours {
		for _, s := range m.Seasons {
			if v, ok := m.Values[store.SliceKey{Season: s, Hour: h}]; ok {
				cells = append(cells, heatmap.Cell{Season: s, Hour: h, Value: v})
			}
		}
	}

	opts := heatmap.DefaultOptions()
	opts.Title = fmt.Sprintf("%s %s @ %s", table, heatmapName, heatmapRegion)
	svg := heatmap.GenerateSliceHeatmapSVG(m.Seasons, m.Hours, cells, opts)

	if heatmapOut == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), svg)
		return err
	}
	return os.WriteFile(heatmapOut, []byte(svg+"\n"), 0644)
}
