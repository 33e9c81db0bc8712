package heatmap

import (
	"fmt"
	"html"
	"strings"
)

// GenerateSliceHeatmapSVG generates an SVG heatmap of a slice-indexed series.
// Layout: one column per season, one row per hour of the day.
// Values are fractions in [0,1] and map linearly onto the color levels.
func GenerateSliceHeatmapSVG(seasons, hours []string, cells []Cell, opts *Options) string {
	// default options
	if opts == nil {
		opts = DefaultOptions()
	}
	if len(opts.Colors) == 0 {
		o := *opts
		o.Colors = DefaultOptions().Colors
		opts = &o
	}

	if len(cells) == 0 || len(seasons) == 0 || len(hours) == 0 {
		return ""
	}

	// map season+hour to value
	valueMap := make(map[[2]string]float64, len(cells))
	for _, c := range cells {
		valueMap[[2]string{c.Season, c.Hour}] = c.Value
	}

	// compute dimensions
	titleHeight := 0
	if opts.Title != "" {
		titleHeight = opts.FontSize + 8 // title text + padding
	}
	labelWidth := 4 * opts.FontSize // hour labels on the left
	headerHeight := opts.FontSize + 4
	width := labelWidth + len(seasons)*(opts.CellSize+opts.CellPadding) + opts.CellPadding
	height := titleHeight + headerHeight + len(hours)*(opts.CellSize+opts.CellPadding) + opts.CellPadding

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height))
	sb.WriteString(fmt.Sprintf(`  <style>.label{font-family:%s;font-size:%dpx;fill:#666}.title{font-family:%s;font-size:%dpx;fill:#333;font-weight:bold}</style>`+"\n",
		opts.FontFamily, opts.FontSize, opts.FontFamily, opts.FontSize))

	// render title
	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="title">%s</text>`+"\n",
			opts.CellPadding, opts.FontSize, html.EscapeString(opts.Title)))
	}

	// season labels
	for i, season := range seasons {
		x := labelWidth + opts.CellPadding + i*(opts.CellSize+opts.CellPadding)
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%s</text>`+"\n",
			x, titleHeight+opts.FontSize, html.EscapeString(season)))
	}

	// hour labels and cells
	levels := len(opts.Colors)
	for j, hour := range hours {
		y := titleHeight + headerHeight + opts.CellPadding + j*(opts.CellSize+opts.CellPadding)
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%s</text>`+"\n",
			0, y+opts.CellSize-2, html.EscapeString(hour)))

		for i, season := range seasons {
			value, exists := valueMap[[2]string{season, hour}]
			if !exists {
				continue
			}
			x := labelWidth + opts.CellPadding + i*(opts.CellSize+opts.CellPadding)

			// 各セルに矩形と、その中にtitle要素（ツールチップ）を追加
			sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" data-season="%s" data-hour="%s" data-value="%g">`+"\n",
				x, y, opts.CellSize, opts.CellSize, opts.Colors[level(value, levels)],
				html.EscapeString(season), html.EscapeString(hour), value))
			sb.WriteString(fmt.Sprintf(`    <title>%s %s: %g</title>`+"\n",
				html.EscapeString(season), html.EscapeString(hour), value))
			sb.WriteString(`  </rect>` + "\n")
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// level maps a fraction onto 0..levels-1.
func level(value float64, levels int) int {
	if levels <= 1 || value <= 0 {
		return 0
	}
	l := int(value * float64(levels))
	if l >= levels {
		l = levels - 1
	}
	return l
}
