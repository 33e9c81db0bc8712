// Package builder は、モデル記述からモデルデータベースの各テーブルの行を計算します。
// ここでの処理は純粋な変換のみで、書き込みは store が担当します。
package builder

import (
	"context"
	"log/slog"

	"github.com/stsysd/genesys/ctxlog"
	"github.com/stsysd/genesys/model"
)

// Build は desc を検証し、モデルデータベースのすべてのテーブルを計算します。
// 設定エラーはテーブルが作成される前に、ここですべて返されます。
func Build(ctx context.Context, desc *model.Description) (*Tables, error) {
	logger := ctxlog.FromContext(ctx)

	if err := desc.Validate(); err != nil {
		return nil, err
	}

	ts, err := NewTimeStructure(desc.Settings, AllVintages(desc.Technologies))
	if err != nil {
		return nil, err
	}
	logger.Debug("time structure",
		slog.Any("future_years", ts.FutureYears),
		slog.Any("existing_years", ts.ExistingYears),
		slog.Int("slices", len(ts.Slices)))

	entities := RegisterEntities(desc)

	t := &Tables{
		PeriodLabels:     PeriodLabels,
		CommodityLabels:  CommodityLabels,
		TechnologyLabels: TechnologyLabels,
		Sectors:          entities.Sectors,
		Regions:          entities.Regions,
		Commodities:      entities.Commodities,
		Technologies:     entities.Technologies,
		Periods:          ts.Periods(),
		Seasons:          ts.Seasons,
		Hours:            ts.Hours,
		SegFrac:          ts.SegFracRows(),
		ReserveMargin:    ReserveMargins(desc.Settings.ReserveMargin),
		TechReserve:      ReserveTechnologies(desc.Technologies),
		DiscountRate:     desc.Settings.DiscountRate,
	}

	w := NewParameterWriter(ts)
	if t.Demand, err = w.Demand(desc.Demands); err != nil {
		return nil, err
	}
	if t.DemandDistribution, err = w.DemandDistribution(desc.Demands); err != nil {
		return nil, err
	}
	for _, tech := range desc.Technologies {
		if err := w.Technology(tech, t); err != nil {
			return nil, err
		}
	}

	t.Gaps = w.Gaps()
	for _, g := range t.Gaps {
		logger.Warn("data gap", slog.String("entity", g.Entity), slog.String("region", g.Region), slog.String("table", g.Table))
	}
	return t, nil
}
