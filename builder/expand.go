package builder

import (
	"sort"

	"github.com/stsysd/genesys/model"
)

// Point は展開された一つの値（地域、座標、値）です。
type Point[C any] struct {
	Region string
	Coord  C
	Value  float64
}

// Expand は d を長さ n の座標列に対して展開します。
// スカラーは全座標に複製し、系列は n 個以上の値が必要で先頭 n 個を使います。
func Expand(field string, d model.Distribution, n int) ([]float64, error) {
	if d.IsEmpty() {
		return nil, model.NewConfigurationError(field, "no values given")
	}
	if d.IsScalar() {
		v := d.Values()[0]
		out := make([]float64, n)
		for i := range out {
			out[i] = v
		}
		return out, nil
	}
	if d.Len() < n {
		return nil, model.NewConfigurationError(field, "series has %d values, need %d", d.Len(), n)
	}
	return d.Values()[:n], nil
}

// ExpandRegions は dists のすべての地域を coords に対して展開します。
// 出力を決定的にするため、地域はソート順に処理します。
func ExpandRegions[C any](field string, dists map[string]model.Distribution, coords []C) ([]Point[C], error) {
	regions := make([]string, 0, len(dists))
	for r := range dists {
		regions = append(regions, r)
	}
	sort.Strings(regions)

	var out []Point[C]
	for _, region := range regions {
		pts, err := ExpandRegion(field, region, dists[region], coords)
		if err != nil {
			return nil, err
		}
		out = append(out, pts...)
	}
	return out, nil
}

// ExpandRegion は一つの地域の分布を coords に対して展開します。
func ExpandRegion[C any](field, region string, d model.Distribution, coords []C) ([]Point[C], error) {
	values, err := Expand(field+" ["+region+"]", d, len(coords))
	if err != nil {
		return nil, err
	}
	out := make([]Point[C], len(coords))
	for i, c := range coords {
		out[i] = Point[C]{Region: region, Coord: c, Value: values[i]}
	}
	return out, nil
}
