package store

import (
	"context"
	"log/slog"

	"github.com/stsysd/genesys/builder"
	"github.com/stsysd/genesys/db"
)

// tableWriter はトランザクション内でテーブルごとの挿入を行います。
type tableWriter struct {
	ctx    context.Context
	q      *db.Queries
	logger *slog.Logger
}

// insertAll は rows を順に挿入し、制約違反を table の IntegrityError として返します。
func insertAll[R any](w *tableWriter, table string, rows []R, insert func(R) error) error {
	for _, r := range rows {
		if err := insert(r); err != nil {
			return classify(table, err)
		}
	}
	w.logger.Debug("table written", slog.String("table", table), slog.Int("rows", len(rows)))
	return nil
}

// steps は外部キーの参照先が先に書き込まれる順序で挿入処理を返します。
func (w *tableWriter) steps(t *builder.Tables) []func() error {
	ctx, q := w.ctx, w.q
	return []func() error{
		// ラベル
		func() error {
			return insertAll(w, "time_period_labels", t.PeriodLabels, func(r builder.LabelRow) error {
				return q.InsertTimePeriodLabel(ctx, db.InsertTimePeriodLabelParams{TPeriodLabels: r.Label, TPeriodLabelsDesc: r.Description})
			})
		},
		func() error {
			return insertAll(w, "commodity_labels", t.CommodityLabels, func(r builder.LabelRow) error {
				return q.InsertCommodityLabel(ctx, db.InsertCommodityLabelParams{CommLabels: r.Label, CommLabelsDesc: r.Description})
			})
		},
		func() error {
			return insertAll(w, "technology_labels", t.TechnologyLabels, func(r builder.LabelRow) error {
				return q.InsertTechnologyLabel(ctx, db.InsertTechnologyLabelParams{TechLabels: r.Label, TechLabelsDesc: r.Description})
			})
		},
		func() error {
			return insertAll(w, "sector_labels", t.Sectors, func(s string) error {
				return q.InsertSector(ctx, s)
			})
		},

		// エンティティ
		func() error {
			return insertAll(w, "regions", t.Regions, func(r string) error {
				return q.InsertRegion(ctx, db.InsertRegionParams{Regions: r})
			})
		},
		func() error {
			return insertAll(w, "commodities", t.Commodities, func(r builder.CommodityRow) error {
				return q.InsertCommodity(ctx, db.InsertCommodityParams{CommName: r.Name, Flag: r.Flag, CommDesc: r.Description})
			})
		},
		func() error {
			return insertAll(w, "technologies", t.Technologies, func(r builder.TechnologyRow) error {
				return q.InsertTechnology(ctx, db.InsertTechnologyParams{
					Tech:         r.Name,
					Flag:         r.Flag,
					Sector:       r.Sector,
					TechDesc:     r.Description,
					TechCategory: r.Category,
				})
			})
		},

		// 時間構造
		func() error {
			return insertAll(w, "time_periods", t.Periods, func(r builder.TimePeriodRow) error {
				return q.InsertTimePeriod(ctx, db.InsertTimePeriodParams{TPeriods: int64(r.Year), Flag: r.Flag})
			})
		},
		func() error {
			return insertAll(w, "time_season", t.Seasons, func(s string) error {
				return q.InsertSeason(ctx, s)
			})
		},
		func() error {
			return insertAll(w, "time_of_day", t.Hours, func(h string) error {
				return q.InsertTimeOfDay(ctx, h)
			})
		},
		func() error {
			return insertAll(w, "SegFrac", t.SegFrac, func(r builder.SegFracRow) error {
				return q.InsertSegFrac(ctx, db.InsertSegFracParams{
					SeasonName:    r.Season,
					TimeOfDayName: r.Hour,
					Segfrac:       r.Fraction,
					SegfracNotes:  r.Notes,
				})
			})
		},

		// パラメータ
		func() error {
			return insertAll(w, builder.TableDemand, t.Demand, func(r builder.DemandRow) error {
				return q.InsertDemand(ctx, db.InsertDemandParams{
					Regions:     r.Region,
					Periods:     int64(r.Period),
					DemandComm:  r.Commodity,
					Demand:      r.Demand,
					DemandUnits: r.Units,
				})
			})
		},
		func() error {
			return insertAll(w, builder.TableDemandDistribution, t.DemandDistribution, func(r builder.DemandDistributionRow) error {
				return q.InsertDemandSpecificDistribution(ctx, db.InsertDemandSpecificDistributionParams{
					Regions:       r.Region,
					SeasonName:    r.Season,
					TimeOfDayName: r.Hour,
					DemandName:    r.Commodity,
					Dds:           r.Fraction,
				})
			})
		},
		func() error {
			return insertAll(w, builder.TableEfficiency, t.Efficiency, func(r builder.EfficiencyRow) error {
				return q.InsertEfficiency(ctx, db.InsertEfficiencyParams{
					Regions:    r.Region,
					InputComm:  r.Input,
					Tech:       r.Technology,
					Vintage:    int64(r.Vintage),
					OutputComm: r.Output,
					Efficiency: r.Efficiency,
				})
			})
		},
		func() error {
			return insertAll(w, builder.TableExistingCapacity, t.ExistingCapacity, func(r builder.ExistingCapacityRow) error {
				return q.InsertExistingCapacity(ctx, db.InsertExistingCapacityParams{
					Regions:       r.Region,
					Tech:          r.Technology,
					Vintage:       int64(r.Vintage),
					ExistCap:      r.Capacity,
					ExistCapUnits: r.Units,
				})
			})
		},
		func() error {
			return insertAll(w, builder.TableLifetimeTech, t.LifetimeTech, func(r builder.LifetimeRow) error {
				return q.InsertLifetimeTech(ctx, db.InsertLifetimeTechParams{Regions: r.Region, Tech: r.Technology, Life: r.Life})
			})
		},
		func() error {
			return insertAll(w, builder.TableCostVariable, t.CostVariable, func(r builder.CostRow) error {
				return q.InsertCostVariable(ctx, db.InsertCostVariableParams{
					Regions:      r.Region,
					Periods:      int64(r.Period),
					Tech:         r.Technology,
					Vintage:      int64(r.Vintage),
					CostVariable: r.Cost,
				})
			})
		},
		func() error {
			return insertAll(w, builder.TableCostFixed, t.CostFixed, func(r builder.CostRow) error {
				return q.InsertCostFixed(ctx, db.InsertCostFixedParams{
					Regions:   r.Region,
					Periods:   int64(r.Period),
					Tech:      r.Technology,
					Vintage:   int64(r.Vintage),
					CostFixed: r.Cost,
				})
			})
		},
		func() error {
			return insertAll(w, builder.TableCostInvest, t.CostInvest, func(r builder.CostInvestRow) error {
				return q.InsertCostInvest(ctx, db.InsertCostInvestParams{
					Regions:    r.Region,
					Tech:       r.Technology,
					Vintage:    int64(r.Vintage),
					CostInvest: r.Cost,
				})
			})
		},
		func() error {
			return insertAll(w, builder.TableCapacityFactorTech, t.CapacityFactorTech, func(r builder.CapacityFactorRow) error {
				return q.InsertCapacityFactorTech(ctx, db.InsertCapacityFactorTechParams{
					Regions:       r.Region,
					SeasonName:    r.Season,
					TimeOfDayName: r.Hour,
					Tech:          r.Technology,
					CfTech:        r.Factor,
				})
			})
		},
		func() error {
			return insertAll(w, builder.TableReserveMargin, t.ReserveMargin, func(r builder.ReserveMarginRow) error {
				return q.InsertPlanningReserveMargin(ctx, db.InsertPlanningReserveMarginParams{Regions: r.Region, ReserveMargin: r.Margin})
			})
		},
		func() error {
			return insertAll(w, "tech_reserve", t.TechReserve, func(tech string) error {
				return q.InsertTechReserve(ctx, db.InsertTechReserveParams{Tech: tech})
			})
		},
		func() error {
			return insertAll(w, "GlobalDiscountRate", []float64{t.DiscountRate}, func(rate float64) error {
				return q.InsertGlobalDiscountRate(ctx, rate)
			})
		},
	}
}
