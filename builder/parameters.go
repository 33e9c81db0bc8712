package builder

import (
	"sort"

	"github.com/stsysd/genesys/model"
)

// 出力先のテーブル名（データ欠落やストアのエラーで使用）
const (
	TableDemand             = "Demand"
	TableDemandDistribution = "DemandSpecificDistribution"
	TableEfficiency         = "Efficiency"
	TableExistingCapacity   = "ExistingCapacity"
	TableLifetimeTech       = "LifetimeTech"
	TableCostVariable       = "CostVariable"
	TableCostFixed          = "CostFixed"
	TableCostInvest         = "CostInvest"
	TableCapacityFactorTech = "CapacityFactorTech"
	TableReserveMargin      = "PlanningReserveMargin"
)

// ParameterWriter は展開結果からパラメータテーブルの行を生成します。
// 任意の系列が与えられていない場合は DataGap を記録します。
type ParameterWriter struct {
	ts   *TimeStructure
	gaps []model.DataGap
}

// NewParameterWriter は時間構造 ts に対する ParameterWriter を作成します。
func NewParameterWriter(ts *TimeStructure) *ParameterWriter {
	return &ParameterWriter{ts: ts}
}

// Gaps はこれまでに記録したデータ欠落を返します。
func (w *ParameterWriter) Gaps() []model.DataGap { return w.gaps }

func (w *ParameterWriter) gap(entity, region, table string) {
	w.gaps = append(w.gaps, model.DataGap{Entity: entity, Region: region, Table: table})
}

// Demand は地域ごとの年間需要を将来年と対応付けます。
func (w *ParameterWriter) Demand(demands []*model.Commodity) ([]DemandRow, error) {
	var rows []DemandRow
	for _, c := range demands {
		demand := nonEmpty(c.Demand)
		if len(demand) == 0 {
			w.gap(c.Name, "", TableDemand)
			continue
		}
		pts, err := ExpandRegions("demand of "+c.Name, demand, w.ts.FutureYears)
		if err != nil {
			return nil, err
		}
		for _, p := range pts {
			rows = append(rows, DemandRow{Region: p.Region, Period: p.Coord, Commodity: c.Name, Demand: p.Value, Units: c.Units})
		}
	}
	return rows, nil
}

// DemandDistribution は地域ごとのスライス比率を時刻優先のスライス順と対応付けます。
func (w *ParameterWriter) DemandDistribution(demands []*model.Commodity) ([]DemandDistributionRow, error) {
	slices := w.ts.HourMajorSlices()
	var rows []DemandDistributionRow
	for _, c := range demands {
		dist := nonEmpty(c.Distribution)
		if len(dist) == 0 {
			w.gap(c.Name, "", TableDemandDistribution)
			continue
		}
		pts, err := ExpandRegions("distribution of "+c.Name, dist, slices)
		if err != nil {
			return nil, err
		}
		for _, p := range pts {
			rows = append(rows, DemandDistributionRow{
				Region:    p.Region,
				Season:    p.Coord.Season,
				Hour:      p.Coord.Hour,
				Commodity: c.Name,
				Fraction:  p.Value,
			})
		}
	}
	return rows, nil
}

// Technology は t に関するすべてのテーブルを計算し、tables に追加します。
func (w *ParameterWriter) Technology(t *model.Technology, tables *Tables) error {
	slices := w.ts.HourMajorSlices()
	future := w.ts.FutureYears

	for _, region := range t.Regions {
		vin, err := ResolveVintages(t, region, future)
		if err != nil {
			return err
		}

		tables.LifetimeTech = append(tables.LifetimeTech, LifetimeRow{Region: region, Technology: t.Name, Life: vin.Lifetime})

		for _, v := range vin.Efficiency {
			tables.Efficiency = append(tables.Efficiency, EfficiencyRow{
				Region:     region,
				Input:      t.Input[region],
				Technology: t.Name,
				Vintage:    v,
				Output:     t.Output[region],
				Efficiency: t.Efficiency[region],
			})
		}

		if len(t.ExistingCapacity[region]) == 0 {
			w.gap(t.Name, region, TableExistingCapacity)
		}
		for _, v := range vin.Surviving {
			tables.ExistingCapacity = append(tables.ExistingCapacity, ExistingCapacityRow{
				Region:     region,
				Technology: t.Name,
				Vintage:    v,
				Capacity:   t.ExistingCapacity[region][v],
				Units:      t.Units,
			})
		}

		variable, err := w.costs(t, region, TableCostVariable, t.CostVariable, vin)
		if err != nil {
			return err
		}
		tables.CostVariable = append(tables.CostVariable, variable...)

		fixed, err := w.costs(t, region, TableCostFixed, t.CostFixed, vin)
		if err != nil {
			return err
		}
		tables.CostFixed = append(tables.CostFixed, fixed...)

		if d, ok := t.CostInvest[region]; ok && !d.IsEmpty() {
			pts, err := ExpandRegion(TableCostInvest+" of "+t.Name, region, d, future)
			if err != nil {
				return err
			}
			for _, p := range pts {
				tables.CostInvest = append(tables.CostInvest, CostInvestRow{Region: region, Technology: t.Name, Vintage: p.Coord, Cost: p.Value})
			}
		} else {
			w.gap(t.Name, region, TableCostInvest)
		}

		if d, ok := t.CapacityFactor[region]; ok && !d.IsEmpty() {
			pts, err := ExpandRegion(TableCapacityFactorTech+" of "+t.Name, region, d, slices)
			if err != nil {
				return err
			}
			for _, p := range pts {
				tables.CapacityFactorTech = append(tables.CapacityFactorTech, CapacityFactorRow{
					Region:     region,
					Season:     p.Coord.Season,
					Hour:       p.Coord.Hour,
					Technology: t.Name,
					Factor:     p.Value,
				})
			}
		} else {
			w.gap(t.Name, region, TableCapacityFactorTech)
		}
	}
	return nil
}

// costs は有効な (期間, ヴィンテージ) の組ごとに、期間の値で一行を出力します。
func (w *ParameterWriter) costs(t *model.Technology, region, table string, dists map[string]model.Distribution, vin Vintages) ([]CostRow, error) {
	d, ok := dists[region]
	if !ok || d.IsEmpty() {
		w.gap(t.Name, region, table)
		return nil, nil
	}
	values, err := Expand(table+" of "+t.Name+" ["+region+"]", d, len(w.ts.FutureYears))
	if err != nil {
		return nil, err
	}
	byPeriod := make(map[int]float64, len(values))
	for i, y := range w.ts.FutureYears {
		byPeriod[y] = values[i]
	}
	rows := make([]CostRow, 0, len(vin.CostPairs))
	for _, pair := range vin.CostPairs {
		rows = append(rows, CostRow{
			Region:     region,
			Period:     pair.Period,
			Technology: t.Name,
			Vintage:    pair.Vintage,
			Cost:       byPeriod[pair.Period],
		})
	}
	return rows, nil
}

// nonEmpty は値を持たない系列の地域を取り除きます。
func nonEmpty(dists map[string]model.Distribution) map[string]model.Distribution {
	out := make(map[string]model.Distribution, len(dists))
	for r, d := range dists {
		if !d.IsEmpty() {
			out[r] = d
		}
	}
	return out
}

// ReserveMargins は地域ごとに一行を地域名の順で返します。
func ReserveMargins(margins map[string]float64) []ReserveMarginRow {
	regions := make([]string, 0, len(margins))
	for r := range margins {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	rows := make([]ReserveMarginRow, len(regions))
	for i, r := range regions {
		rows[i] = ReserveMarginRow{Region: r, Margin: margins[r]}
	}
	return rows
}

// ReserveTechnologies は予備力に算入するテクノロジー名を宣言順に返します。
func ReserveTechnologies(techs []*model.Technology) []string {
	var out []string
	for _, t := range techs {
		if t.Reserve {
			out = append(out, t.Name)
		}
	}
	return out
}
