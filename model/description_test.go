package model

import (
	"errors"
	"math"
	"testing"
)

func validDescription() *Description {
	elc := NewDemand("ELC", "GWh", "electricity")
	elc.Demand["CA"] = Scalar(100)
	ng := NewResource("NG", "PJ", "natural gas")

	plant := NewTechnology("NGCC", Production, "electric", "CA")
	plant.Lifetime["CA"] = 30
	plant.Input["CA"] = "NG"
	plant.Output["CA"] = "ELC"
	plant.Efficiency["CA"] = 0.5

	return &Description{
		Settings: Settings{
			Scenario:  "base",
			Seasons:   4,
			Hours:     24,
			StartYear: 2020,
			EndYear:   2050,
			YearStep:  5,
		},
		Demands:      []*Commodity{elc},
		Resources:    []*Commodity{ng},
		Technologies: []*Technology{plant},
	}
}

// TestDescriptionValidate tests the cross-reference checks of Description
func TestDescriptionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Description)
		wantErr bool
		target  error
	}{
		{
			name:   "valid description",
			mutate: func(d *Description) {},
		},
		{
			name:    "zero seasons",
			mutate:  func(d *Description) { d.Settings.Seasons = 0 },
			wantErr: true,
		},
		{
			name:    "end before start",
			mutate:  func(d *Description) { d.Settings.EndYear = 2010 },
			wantErr: true,
		},
		{
			name:    "NaN discount rate",
			mutate:  func(d *Description) { d.Settings.DiscountRate = math.NaN() },
			wantErr: true,
		},
		{
			name:    "infinite reserve margin",
			mutate:  func(d *Description) { d.Settings.ReserveMargin = map[string]float64{"CA": math.Inf(1)} },
			wantErr: true,
		},
		{
			name:    "unknown input commodity",
			mutate:  func(d *Description) { d.Technologies[0].Input["CA"] = "COAL" },
			wantErr: true,
			target:  ErrUnknownCommodity,
		},
		{
			name: "duplicate commodity name",
			mutate: func(d *Description) {
				d.Resources = append(d.Resources, NewResource("NG", "", ""))
			},
			wantErr: true,
			target:  ErrDuplicateName,
		},
		{
			name:    "commodity in the wrong list",
			mutate:  func(d *Description) { d.Emissions = []*Commodity{NewResource("CO2", "", "")} },
			wantErr: true,
		},
		{
			name:    "existing vintage inside horizon",
			mutate:  func(d *Description) { d.Technologies[0].ExistingCapacity["CA"] = map[int]float64{2020: 1} },
			wantErr: true,
		},
		{
			name:   "existing vintage before horizon",
			mutate: func(d *Description) { d.Technologies[0].ExistingCapacity["CA"] = map[int]float64{2019: 1} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDescription()
			tt.mutate(d)
			err := d.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !IsConfiguration(err) {
				t.Errorf("Expected ConfigurationError, got %T", err)
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
		})
	}
}

// TestCommodities tests that commodities are listed demand first
func TestCommodities(t *testing.T) {
	d := validDescription()
	d.Emissions = []*Commodity{NewEmission("CO2", "kt", "")}

	var names []string
	for _, c := range d.Commodities() {
		names = append(names, c.Name)
	}
	want := []string{"ELC", "NG", "CO2"}
	if len(names) != len(want) {
		t.Fatalf("Expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, names)
			break
		}
	}
}

// TestTechnologyValidate tests per-region checks of Technology
func TestTechnologyValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(t *Technology)
		wantErr bool
	}{
		{"valid", func(t *Technology) {}, false},
		{"unknown kind", func(t *Technology) { t.Kind = "x" }, true},
		{"missing sector", func(t *Technology) { t.Sector = "" }, true},
		{"no regions", func(t *Technology) { t.Regions = nil }, true},
		{"duplicate region", func(t *Technology) { t.Regions = []string{"CA", "CA"} }, true},
		{"zero lifetime", func(t *Technology) { t.Lifetime["CA"] = 0 }, true},
		{"zero efficiency", func(t *Technology) { t.Efficiency["CA"] = 0 }, true},
		{"missing output", func(t *Technology) { delete(t.Output, "CA") }, true},
		{"capacity factor above one", func(t *Technology) { t.CapacityFactor["CA"] = Series(0.5, 1.5) }, true},
		{"capacity factor in range", func(t *Technology) { t.CapacityFactor["CA"] = Scalar(1) }, false},
		{"cost for unknown region", func(t *Technology) { t.CostInvest["TX"] = Scalar(1) }, true},
		{"existing capacity for unknown region", func(t *Technology) { t.ExistingCapacity["TX"] = map[int]float64{2000: 1} }, true},
		{"NaN lifetime", func(t *Technology) { t.Lifetime["CA"] = math.NaN() }, true},
		{"infinite lifetime", func(t *Technology) { t.Lifetime["CA"] = math.Inf(1) }, true},
		{"NaN efficiency", func(t *Technology) { t.Efficiency["CA"] = math.NaN() }, true},
		{"NaN capacity factor", func(t *Technology) { t.CapacityFactor["CA"] = Scalar(math.NaN()) }, true},
		{"NaN cost", func(t *Technology) { t.CostVariable["CA"] = Series(1, math.NaN()) }, true},
		{"infinite cost", func(t *Technology) { t.CostFixed["CA"] = Scalar(math.Inf(1)) }, true},
		{"NaN existing capacity", func(t *Technology) { t.ExistingCapacity["CA"] = map[int]float64{2000: math.NaN()} }, true},
		{"empty cost series", func(t *Technology) { t.CostInvest["CA"] = Series() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tech := validDescription().Technologies[0]
			tt.mutate(tech)
			err := tech.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

// TestCommodityValidate tests demand-only series and value ranges
func TestCommodityValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       func() *Commodity
		wantErr bool
	}{
		{
			name: "demand with distribution",
			c: func() *Commodity {
				c := NewDemand("ELC", "", "")
				c.Demand["CA"] = Series(1, 2)
				c.Distribution["CA"] = Series(0.25, 0.75)
				return c
			},
		},
		{
			name: "negative demand",
			c: func() *Commodity {
				c := NewDemand("ELC", "", "")
				c.Demand["CA"] = Scalar(-1)
				return c
			},
			wantErr: true,
		},
		{
			name: "distribution above one",
			c: func() *Commodity {
				c := NewDemand("ELC", "", "")
				c.Distribution["CA"] = Scalar(2)
				return c
			},
			wantErr: true,
		},
		{
			name: "resource with demand",
			c: func() *Commodity {
				c := NewResource("NG", "", "")
				c.Demand = map[string]Distribution{"CA": Scalar(1)}
				return c
			},
			wantErr: true,
		},
		{
			name:    "missing name",
			c:       func() *Commodity { return NewEmission("", "", "") },
			wantErr: true,
		},
		{
			name: "NaN demand",
			c: func() *Commodity {
				c := NewDemand("ELC", "", "")
				c.Demand["CA"] = Series(1, math.NaN())
				return c
			},
			wantErr: true,
		},
		{
			name: "infinite demand",
			c: func() *Commodity {
				c := NewDemand("ELC", "", "")
				c.Demand["CA"] = Scalar(math.Inf(1))
				return c
			},
			wantErr: true,
		},
		{
			name: "NaN distribution",
			c: func() *Commodity {
				c := NewDemand("ELC", "", "")
				c.Distribution["CA"] = Scalar(math.NaN())
				return c
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c().Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

// TestErrorMessages tests the rendered messages of the typed errors
func TestErrorMessages(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed")
	ie := &IntegrityError{Table: "Efficiency", Err: cause}
	if !errors.Is(ie, cause) {
		t.Error("Expected IntegrityError to unwrap to its cause")
	}
	if got := ie.Error(); got != "integrity violation in table Efficiency: UNIQUE constraint failed" {
		t.Errorf("Unexpected message: %s", got)
	}

	gap := DataGap{Entity: "SOLAR", Region: "CA", Table: "CostInvest"}
	if got := gap.String(); got != "SOLAR has no CostInvest data for region CA" {
		t.Errorf("Unexpected gap message: %s", got)
	}

	ce := NewConfigurationError("hours", "must be positive, got %d", 0)
	if ce.Error() != "hours: must be positive, got 0" {
		t.Errorf("Unexpected message: %s", ce.Error())
	}
}
