package heatmap

// Cell holds the value of one (season, hour) time slice.
type Cell struct {
	Season string
	Hour   string
	Value  float64 // fraction in [0,1]
}

// Options configures rendering parameters.
type Options struct {
	CellSize    int      // size of each slice cell (px)
	CellPadding int      // padding between cells (px)
	Colors      []string // array of N CSS colors for levels 0..N-1
	FontSize    int      // font size for axis labels (px)
	FontFamily  string   // font family for labels
	Title       string   // title line, e.g. table, series and region
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() *Options {
	return &Options{
		CellSize:    14,
		CellPadding: 2,
		FontSize:    10,
		FontFamily:  "sans-serif",
		Colors:      []string{"#f0f0f0", "#c6e48b", "#7bc96f", "#239a3b", "#196127", "#0d4429"},
	}
}
