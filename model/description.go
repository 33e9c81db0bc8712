package model

import (
	"fmt"
	"math"
)

// Settings holds the scalar configuration of a model run. It is passed by
// value into the builder and validated before any table is created.
type Settings struct {
	Scenario      string
	Seasons       int
	Hours         int
	StartYear     int
	EndYear       int
	YearStep      int
	DiscountRate  float64
	ReserveMargin map[string]float64
}

// Validate checks every required scalar.
func (s Settings) Validate() error {
	if s.Seasons <= 0 {
		return NewConfigurationError("seasons", "must be positive, got %d", s.Seasons)
	}
	if s.Hours <= 0 {
		return NewConfigurationError("hours", "must be positive, got %d", s.Hours)
	}
	if s.YearStep <= 0 {
		return NewConfigurationError("year_step", "must be positive, got %d", s.YearStep)
	}
	if s.EndYear < s.StartYear {
		return NewConfigurationError("end_year", "no future periods between %d and %d", s.StartYear, s.EndYear)
	}
	if math.IsNaN(s.DiscountRate) || math.IsInf(s.DiscountRate, 0) {
		return NewConfigurationError("discount_rate", "must be a finite number, got %g", s.DiscountRate)
	}
	for _, region := range sortedKeys(s.ReserveMargin) {
		if region == "" {
			return NewConfigurationError("reserve_margin", "region name is required")
		}
		if m := s.ReserveMargin[region]; math.IsNaN(m) || math.IsInf(m, 0) {
			return NewConfigurationError("reserve_margin", "margin in region %s must be a finite number, got %g", region, m)
		}
	}
	return nil
}

// Description is the complete, explicitly registered model: settings plus
// typed commodity and technology collections.
type Description struct {
	Settings     Settings
	Database     string // 出力データベースのファイル名
	Demands      []*Commodity
	Resources    []*Commodity
	Emissions    []*Commodity
	Technologies []*Technology
}

// Commodities returns demand, resource and emission commodities in that order.
func (d *Description) Commodities() []*Commodity {
	all := make([]*Commodity, 0, len(d.Demands)+len(d.Resources)+len(d.Emissions))
	all = append(all, d.Demands...)
	all = append(all, d.Resources...)
	all = append(all, d.Emissions...)
	return all
}

// Validate checks the settings, every entity, and cross references between
// technologies and commodities.
func (d *Description) Validate() error {
	if err := d.Settings.Validate(); err != nil {
		return err
	}

	lists := []struct {
		kind  CommodityKind
		comms []*Commodity
	}{
		{DemandKind, d.Demands},
		{ResourceKind, d.Resources},
		{EmissionKind, d.Emissions},
	}
	commodities := map[string]bool{}
	for _, l := range lists {
		for _, c := range l.comms {
			if c == nil {
				return NewConfigurationError("commodities", "nil commodity")
			}
			if err := c.Validate(); err != nil {
				return err
			}
			if c.Kind != l.kind {
				return NewConfigurationError("commodity "+c.Name, "registered as %q but tagged %q", l.kind, c.Kind)
			}
			if commodities[c.Name] {
				return &ConfigurationError{Field: "commodity " + c.Name, Message: ErrDuplicateName.Error(), Err: ErrDuplicateName}
			}
			commodities[c.Name] = true
		}
	}

	techs := map[string]bool{}
	for _, t := range d.Technologies {
		if t == nil {
			return NewConfigurationError("technologies", "nil technology")
		}
		if err := t.Validate(); err != nil {
			return err
		}
		if techs[t.Name] {
			return &ConfigurationError{Field: "technology " + t.Name, Message: ErrDuplicateName.Error(), Err: ErrDuplicateName}
		}
		techs[t.Name] = true

		for _, region := range t.Regions {
			for _, name := range []string{t.Input[region], t.Output[region]} {
				if !commodities[name] {
					return &ConfigurationError{
						Field:   "technology " + t.Name,
						Message: fmt.Sprintf("region %s references %s: %v", region, name, ErrUnknownCommodity),
						Err:     ErrUnknownCommodity,
					}
				}
			}
			for _, v := range t.Vintages(region) {
				if v >= d.Settings.StartYear {
					return NewConfigurationError("technology "+t.Name,
						"existing vintage %d in region %s is not before the first future year %d", v, region, d.Settings.StartYear)
				}
			}
		}
	}
	return nil
}
