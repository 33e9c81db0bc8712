package model

import (
	"math"
	"sort"
)

// TechnologyKind is the label a technology carries in the technologies table.
type TechnologyKind string

const (
	Production         TechnologyKind = "p"
	BaseloadProduction TechnologyKind = "pb"
	StorageProduction  TechnologyKind = "ps"
	ResourceTechnology TechnologyKind = "r"
)

// Valid reports whether k is one of the declared technology labels.
func (k TechnologyKind) Valid() bool {
	switch k {
	case Production, BaseloadProduction, StorageProduction, ResourceTechnology:
		return true
	}
	return false
}

// Technology は変換設備（発電所など）を表すモデルです。
// 地域ごとの値はすべて Regions に含まれる地域名をキーとします。
type Technology struct {
	Name        string
	Kind        TechnologyKind
	Sector      string
	Category    string
	Description string
	Units       string
	Reserve     bool // 予備力として計上可能か
	Regions     []string

	Lifetime   map[string]float64
	Input      map[string]string
	Output     map[string]string
	Efficiency map[string]float64

	// ExistingCapacity は地域 -> 導入年(vintage) -> 設備容量
	ExistingCapacity map[string]map[int]float64

	CostVariable   map[string]Distribution // 期間ごと
	CostFixed      map[string]Distribution // 期間ごと
	CostInvest     map[string]Distribution // 将来 vintage ごと
	CapacityFactor map[string]Distribution // スカラーまたはタイムスライス系列
}

// NewTechnology creates a technology with empty per-region maps.
func NewTechnology(name string, kind TechnologyKind, sector string, regions ...string) *Technology {
	return &Technology{
		Name:             name,
		Kind:             kind,
		Sector:           sector,
		Regions:          regions,
		Lifetime:         map[string]float64{},
		Input:            map[string]string{},
		Output:           map[string]string{},
		Efficiency:       map[string]float64{},
		ExistingCapacity: map[string]map[int]float64{},
		CostVariable:     map[string]Distribution{},
		CostFixed:        map[string]Distribution{},
		CostInvest:       map[string]Distribution{},
		CapacityFactor:   map[string]Distribution{},
	}
}

// Vintages returns the sorted existing-capacity vintages of region.
func (t *Technology) Vintages(region string) []int {
	caps := t.ExistingCapacity[region]
	years := make([]int, 0, len(caps))
	for y := range caps {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Validate はテクノロジーのデータバリデーションを行います。
func (t *Technology) Validate() error {
	if t.Name == "" {
		return NewConfigurationError("technology", "name is required")
	}
	field := "technology " + t.Name
	if !t.Kind.Valid() {
		return NewConfigurationError(field, "unknown kind %q", t.Kind)
	}
	if t.Sector == "" {
		return NewConfigurationError(field, "sector is required")
	}
	if len(t.Regions) == 0 {
		return NewConfigurationError(field, "at least one region is required")
	}
	seen := map[string]bool{}
	for _, region := range t.Regions {
		if region == "" {
			return NewConfigurationError(field, "region name is required")
		}
		if seen[region] {
			return NewConfigurationError(field, "region %s listed twice", region)
		}
		seen[region] = true

		if life := t.Lifetime[region]; !(life > 0) || math.IsInf(life, 1) {
			return NewConfigurationError(field, "lifetime in region %s must be positive, got %g", region, life)
		}
		if t.Input[region] == "" || t.Output[region] == "" {
			return NewConfigurationError(field, "input and output commodities are required in region %s", region)
		}
		// NaN は比較がすべて偽になるため、否定形で判定する
		if eff := t.Efficiency[region]; !(eff > 0) || math.IsInf(eff, 1) {
			return NewConfigurationError(field, "efficiency in region %s must be positive, got %g", region, eff)
		}
		if cf, ok := t.CapacityFactor[region]; ok && !cf.Within(0, 1) {
			return NewConfigurationError(field, "capacity factor in region %s must lie in [0,1]", region)
		}
	}
	for _, m := range []map[string]Distribution{t.CostVariable, t.CostFixed, t.CostInvest, t.CapacityFactor} {
		for _, region := range sortedKeys(m) {
			if !seen[region] {
				return NewConfigurationError(field, "data given for region %s outside its regions", region)
			}
			if !m[region].Finite() {
				return NewConfigurationError(field, "values in region %s must be finite numbers", region)
			}
		}
	}
	for _, region := range sortedKeys(t.ExistingCapacity) {
		if !seen[region] {
			return NewConfigurationError(field, "existing capacity given for region %s outside its regions", region)
		}
		for _, v := range t.Vintages(region) {
			if c := t.ExistingCapacity[region][v]; math.IsNaN(c) || math.IsInf(c, 0) {
				return NewConfigurationError(field, "existing capacity of vintage %d in region %s must be a finite number", v, region)
			}
		}
	}
	return nil
}
