package builder

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stsysd/genesys/model"
)

// testDescription is a single-region model with one resource import, one
// gas plant with existing capacity and full cost data, and one solar plant
// without any cost data.
func testDescription() *model.Description {
	elc := model.NewDemand("ELC", "GWh", "electricity demand")
	elc.Demand["UT"] = model.Series(10, 11, 12, 13)
	elc.Distribution["UT"] = model.Series(0, 0.1, 0.2, 0.3, 0.4, 0.5)

	ethos := model.NewResource("ethos", "", "dummy input")
	ng := model.NewResource("NG", "PJ", "natural gas")
	co2 := model.NewEmission("CO2", "kt", "carbon dioxide")

	imp := model.NewTechnology("IMPNG", model.ResourceTechnology, "supply", "UT")
	imp.Lifetime["UT"] = 100
	imp.Input["UT"] = "ethos"
	imp.Output["UT"] = "NG"
	imp.Efficiency["UT"] = 1

	ngcc := model.NewTechnology("NGCC", model.Production, "electric", "UT")
	ngcc.Units = "GW"
	ngcc.Reserve = true
	ngcc.Lifetime["UT"] = 20
	ngcc.Input["UT"] = "NG"
	ngcc.Output["UT"] = "ELC"
	ngcc.Efficiency["UT"] = 0.5
	ngcc.ExistingCapacity["UT"] = map[int]float64{2010: 100, 1990: 50}
	ngcc.CostVariable["UT"] = model.Scalar(3)
	ngcc.CostFixed["UT"] = model.Series(1, 2, 3, 4)
	ngcc.CostInvest["UT"] = model.Scalar(1000)
	ngcc.CapacityFactor["UT"] = model.Scalar(0.9)

	solar := model.NewTechnology("SOLAR", model.Production, "electric", "UT")
	solar.Lifetime["UT"] = 25
	solar.Input["UT"] = "ethos"
	solar.Output["UT"] = "ELC"
	solar.Efficiency["UT"] = 1
	solar.CapacityFactor["UT"] = model.Series(0, 0.1, 0.2, 0.3, 0.4, 0.5)

	return &model.Description{
		Settings: model.Settings{
			Scenario:      "test",
			Seasons:       2,
			Hours:         3,
			StartYear:     2020,
			EndYear:       2050,
			YearStep:      10,
			DiscountRate:  0.05,
			ReserveMargin: map[string]float64{"UT": 0.15},
		},
		Demands:      []*model.Commodity{elc},
		Resources:    []*model.Commodity{ethos, ng},
		Emissions:    []*model.Commodity{co2},
		Technologies: []*model.Technology{imp, ngcc, solar},
	}
}

func TestBuildEntities(t *testing.T) {
	tables, err := Build(context.Background(), testDescription())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]string{"UT"}, tables.Regions); diff != "" {
		t.Errorf("regions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"electric", "supply"}, tables.Sectors); diff != "" {
		t.Errorf("sectors mismatch (-want +got):\n%s", diff)
	}

	var comms []string
	for _, c := range tables.Commodities {
		comms = append(comms, c.Name+":"+c.Flag)
	}
	if diff := cmp.Diff([]string{"ELC:d", "ethos:p", "NG:p", "CO2:e"}, comms); diff != "" {
		t.Errorf("commodities mismatch (-want +got):\n%s", diff)
	}

	var techs []string
	for _, tr := range tables.Technologies {
		techs = append(techs, tr.Name)
	}
	if diff := cmp.Diff([]string{"IMPNG", "NGCC", "SOLAR"}, techs); diff != "" {
		t.Errorf("technologies mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"NGCC"}, tables.TechReserve); diff != "" {
		t.Errorf("reserve technologies mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]ReserveMarginRow{{"UT", 0.15}}, tables.ReserveMargin); diff != "" {
		t.Errorf("reserve margin mismatch (-want +got):\n%s", diff)
	}
	if tables.DiscountRate != 0.05 {
		t.Errorf("expected discount rate 0.05, got %v", tables.DiscountRate)
	}
}

func TestBuildPeriods(t *testing.T) {
	tables, err := Build(context.Background(), testDescription())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []TimePeriodRow{
		{1990, ExistingFlag},
		{2010, ExistingFlag},
		{2020, FutureFlag},
		{2030, FutureFlag},
		{2040, FutureFlag},
		{2050, FutureFlag},
		{2051, FutureFlag},
	}
	if diff := cmp.Diff(want, tables.Periods); diff != "" {
		t.Errorf("periods mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildVintageTables(t *testing.T) {
	tables, err := Build(context.Background(), testDescription())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1990 is past its lifetime in 2020; 2010 survives.
	wantExisting := []ExistingCapacityRow{{Region: "UT", Technology: "NGCC", Vintage: 2010, Capacity: 100, Units: "GW"}}
	if diff := cmp.Diff(wantExisting, tables.ExistingCapacity); diff != "" {
		t.Errorf("existing capacity mismatch (-want +got):\n%s", diff)
	}

	effCount := map[string]int{}
	for _, r := range tables.Efficiency {
		effCount[r.Technology]++
	}
	if diff := cmp.Diff(map[string]int{"IMPNG": 4, "NGCC": 5, "SOLAR": 4}, effCount); diff != "" {
		t.Errorf("efficiency row counts mismatch (-want +got):\n%s", diff)
	}

	if len(tables.CostVariable) != 14 {
		t.Errorf("expected 14 CostVariable rows, got %d", len(tables.CostVariable))
	}
	for _, r := range tables.CostVariable {
		if r.Cost != 3 {
			t.Errorf("CostVariable %v: expected broadcast value 3", r)
		}
	}

	// CostFixed is priced by period.
	wantFixed := map[int]float64{2020: 1, 2030: 2, 2040: 3, 2050: 4}
	for _, r := range tables.CostFixed {
		if r.Cost != wantFixed[r.Period] {
			t.Errorf("CostFixed %v: expected %v", r, wantFixed[r.Period])
		}
	}

	wantInvest := []CostInvestRow{
		{"UT", "NGCC", 2020, 1000},
		{"UT", "NGCC", 2030, 1000},
		{"UT", "NGCC", 2040, 1000},
		{"UT", "NGCC", 2050, 1000},
	}
	if diff := cmp.Diff(wantInvest, tables.CostInvest); diff != "" {
		t.Errorf("cost invest mismatch (-want +got):\n%s", diff)
	}

	for _, r := range tables.LifetimeTech {
		if r.Technology == "NGCC" && r.Life != 20 {
			t.Errorf("expected NGCC life 20, got %v", r.Life)
		}
	}
}

func TestBuildMissingCostsAreGaps(t *testing.T) {
	tables, err := Build(context.Background(), testDescription())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, r := range tables.CostVariable {
		if r.Technology == "SOLAR" {
			t.Errorf("unexpected CostVariable row for SOLAR: %v", r)
		}
	}

	want := []model.DataGap{
		{Entity: "IMPNG", Region: "UT", Table: TableExistingCapacity},
		{Entity: "IMPNG", Region: "UT", Table: TableCostVariable},
		{Entity: "IMPNG", Region: "UT", Table: TableCostFixed},
		{Entity: "IMPNG", Region: "UT", Table: TableCostInvest},
		{Entity: "IMPNG", Region: "UT", Table: TableCapacityFactorTech},
		{Entity: "SOLAR", Region: "UT", Table: TableExistingCapacity},
		{Entity: "SOLAR", Region: "UT", Table: TableCostVariable},
		{Entity: "SOLAR", Region: "UT", Table: TableCostFixed},
		{Entity: "SOLAR", Region: "UT", Table: TableCostInvest},
	}
	if diff := cmp.Diff(want, tables.Gaps); diff != "" {
		t.Errorf("gaps mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildEmptySeriesIsGap(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *model.Description)
		rows   func(t *Tables) int
		gap    model.DataGap
	}{
		{
			name:   "cost variable",
			mutate: func(d *model.Description) { d.Technologies[1].CostVariable["UT"] = model.Series() },
			rows:   func(t *Tables) int { return len(t.CostVariable) },
			gap:    model.DataGap{Entity: "NGCC", Region: "UT", Table: TableCostVariable},
		},
		{
			name:   "cost fixed",
			mutate: func(d *model.Description) { d.Technologies[1].CostFixed["UT"] = model.Series() },
			rows:   func(t *Tables) int { return len(t.CostFixed) },
			gap:    model.DataGap{Entity: "NGCC", Region: "UT", Table: TableCostFixed},
		},
		{
			name:   "cost invest",
			mutate: func(d *model.Description) { d.Technologies[1].CostInvest["UT"] = model.Series() },
			rows:   func(t *Tables) int { return len(t.CostInvest) },
			gap:    model.DataGap{Entity: "NGCC", Region: "UT", Table: TableCostInvest},
		},
		{
			name: "capacity factor",
			mutate: func(d *model.Description) {
				d.Technologies[1].CapacityFactor["UT"] = model.Series()
				d.Technologies[2].CapacityFactor["UT"] = model.Series()
			},
			rows: func(t *Tables) int { return len(t.CapacityFactorTech) },
			gap:  model.DataGap{Entity: "NGCC", Region: "UT", Table: TableCapacityFactorTech},
		},
		{
			name:   "demand",
			mutate: func(d *model.Description) { d.Demands[0].Demand["UT"] = model.Series() },
			rows:   func(t *Tables) int { return len(t.Demand) },
			gap:    model.DataGap{Entity: "ELC", Table: TableDemand},
		},
		{
			name:   "demand distribution",
			mutate: func(d *model.Description) { d.Demands[0].Distribution["UT"] = model.Series() },
			rows:   func(t *Tables) int { return len(t.DemandDistribution) },
			gap:    model.DataGap{Entity: "ELC", Table: TableDemandDistribution},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := testDescription()
			tt.mutate(desc)

			tables, err := Build(context.Background(), desc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n := tt.rows(tables); n != 0 {
				t.Errorf("expected no rows, got %d", n)
			}
			found := false
			for _, g := range tables.Gaps {
				if g == tt.gap {
					found = true
				}
			}
			if !found {
				t.Errorf("gap %v not recorded in %v", tt.gap, tables.Gaps)
			}
		})
	}
}

func TestBuildSliceSeriesOrder(t *testing.T) {
	tables, err := Build(context.Background(), testDescription())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Value k pairs with hour k/seasons and season k%seasons.
	want := []DemandDistributionRow{
		{"UT", "S1", "H1", "ELC", 0},
		{"UT", "S2", "H1", "ELC", 0.1},
		{"UT", "S1", "H2", "ELC", 0.2},
		{"UT", "S2", "H2", "ELC", 0.3},
		{"UT", "S1", "H3", "ELC", 0.4},
		{"UT", "S2", "H3", "ELC", 0.5},
	}
	if diff := cmp.Diff(want, tables.DemandDistribution); diff != "" {
		t.Errorf("demand distribution mismatch (-want +got):\n%s", diff)
	}

	var cf []CapacityFactorRow
	for _, r := range tables.CapacityFactorTech {
		if r.Technology == "SOLAR" {
			cf = append(cf, r)
		}
	}
	if len(cf) != 6 || cf[1].Season != "S2" || cf[1].Hour != "H1" || cf[1].Factor != 0.1 {
		t.Errorf("unexpected SOLAR capacity factors: %v", cf)
	}
}

func TestBuildReferentialIntegrity(t *testing.T) {
	tables, err := Build(context.Background(), testDescription())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	periods := map[int]bool{}
	for _, p := range tables.Periods {
		periods[p.Year] = true
	}
	techs := map[string]bool{}
	for _, tr := range tables.Technologies {
		techs[tr.Name] = true
	}
	comms := map[string]bool{}
	for _, c := range tables.Commodities {
		comms[c.Name] = true
	}
	seasons := map[string]bool{}
	for _, s := range tables.Seasons {
		seasons[s] = true
	}
	hours := map[string]bool{}
	for _, h := range tables.Hours {
		hours[h] = true
	}

	for _, r := range tables.Efficiency {
		if !periods[r.Vintage] || !techs[r.Technology] || !comms[r.Input] || !comms[r.Output] {
			t.Errorf("dangling reference in Efficiency row %v", r)
		}
		if r.Efficiency <= 0 {
			t.Errorf("non-positive efficiency in %v", r)
		}
	}
	for _, rows := range [][]CostRow{tables.CostVariable, tables.CostFixed} {
		for _, r := range rows {
			if !periods[r.Period] || !periods[r.Vintage] || !techs[r.Technology] {
				t.Errorf("dangling reference in cost row %v", r)
			}
		}
	}
	for _, r := range tables.ExistingCapacity {
		if !periods[r.Vintage] || !techs[r.Technology] {
			t.Errorf("dangling reference in ExistingCapacity row %v", r)
		}
	}
	for _, r := range tables.CapacityFactorTech {
		if !seasons[r.Season] || !hours[r.Hour] || !techs[r.Technology] {
			t.Errorf("dangling reference in CapacityFactorTech row %v", r)
		}
		if r.Factor < 0 || r.Factor > 1 {
			t.Errorf("capacity factor out of range in %v", r)
		}
	}
	for _, r := range tables.DemandDistribution {
		if !seasons[r.Season] || !hours[r.Hour] || !comms[r.Commodity] {
			t.Errorf("dangling reference in DemandSpecificDistribution row %v", r)
		}
	}
	for _, r := range tables.Demand {
		if !periods[r.Period] || !comms[r.Commodity] {
			t.Errorf("dangling reference in Demand row %v", r)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	first, err := Build(context.Background(), testDescription())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Build(context.Background(), testDescription())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("builds differ (-first +second):\n%s", diff)
	}
}

func TestBuildConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *model.Description)
		target error
	}{
		{
			name:   "unknown commodity",
			mutate: func(d *model.Description) { d.Technologies[1].Input["UT"] = "COAL" },
			target: model.ErrUnknownCommodity,
		},
		{
			name:   "duplicate technology",
			mutate: func(d *model.Description) { d.Technologies[2].Name = "NGCC" },
			target: model.ErrDuplicateName,
		},
		{
			name:   "short capacity factor series",
			mutate: func(d *model.Description) { d.Technologies[2].CapacityFactor["UT"] = model.Series(0.1, 0.2) },
		},
		{
			name:   "short demand series",
			mutate: func(d *model.Description) { d.Demands[0].Demand["UT"] = model.Series(1, 2) },
		},
		{
			name:   "existing vintage inside horizon",
			mutate: func(d *model.Description) { d.Technologies[1].ExistingCapacity["UT"][2030] = 5 },
		},
		{
			name:   "zero lifetime",
			mutate: func(d *model.Description) { d.Technologies[0].Lifetime["UT"] = 0 },
		},
		{
			name:   "NaN efficiency",
			mutate: func(d *model.Description) { d.Technologies[1].Efficiency["UT"] = math.NaN() },
		},
		{
			name:   "NaN capacity factor",
			mutate: func(d *model.Description) { d.Technologies[1].CapacityFactor["UT"] = model.Scalar(math.NaN()) },
		},
		{
			name:   "NaN lifetime",
			mutate: func(d *model.Description) { d.Technologies[0].Lifetime["UT"] = math.NaN() },
		},
		{
			name:   "infinite cost",
			mutate: func(d *model.Description) { d.Technologies[1].CostInvest["UT"] = model.Scalar(math.Inf(1)) },
		},
		{
			name:   "NaN demand",
			mutate: func(d *model.Description) { d.Demands[0].Demand["UT"] = model.Series(10, math.NaN(), 12, 13) },
		},
		{
			name:   "horizon past the largest year",
			mutate: func(d *model.Description) { d.Settings.EndYear = math.MaxInt },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := testDescription()
			tt.mutate(desc)
			_, err := Build(context.Background(), desc)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !model.IsConfiguration(err) {
				t.Errorf("expected ConfigurationError, got %T: %v", err, err)
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}
