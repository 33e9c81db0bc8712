package model

import (
	"math"
	"sort"
)

// CommodityKind is the label a commodity carries in the commodities table.
type CommodityKind string

const (
	ResourceKind CommodityKind = "p"
	DemandKind   CommodityKind = "d"
	EmissionKind CommodityKind = "e"
)

// Valid reports whether k is one of the declared commodity labels.
func (k CommodityKind) Valid() bool {
	switch k {
	case ResourceKind, DemandKind, EmissionKind:
		return true
	}
	return false
}

// Commodity はエネルギーシステム内を流れる財を表すモデルです。
type Commodity struct {
	Name        string
	Kind        CommodityKind
	Units       string
	Description string

	// Demand は需要財のみ: 地域ごとの年間需要（将来期間ごとに1値）
	Demand map[string]Distribution
	// Distribution は需要財のみ: 地域ごとのタイムスライス配分（任意）
	Distribution map[string]Distribution
}

// NewResource creates a physical (resource) commodity.
func NewResource(name, units, description string) *Commodity {
	return &Commodity{Name: name, Kind: ResourceKind, Units: units, Description: description}
}

// NewEmission creates an emission commodity.
func NewEmission(name, units, description string) *Commodity {
	return &Commodity{Name: name, Kind: EmissionKind, Units: units, Description: description}
}

// NewDemand creates a demand commodity with empty per-region series.
func NewDemand(name, units, description string) *Commodity {
	return &Commodity{
		Name:         name,
		Kind:         DemandKind,
		Units:        units,
		Description:  description,
		Demand:       map[string]Distribution{},
		Distribution: map[string]Distribution{},
	}
}

// Regions returns the sorted regions in which the commodity carries demand
// or distribution data.
func (c *Commodity) Regions() []string {
	seen := map[string]struct{}{}
	for r := range c.Demand {
		seen[r] = struct{}{}
	}
	for r := range c.Distribution {
		seen[r] = struct{}{}
	}
	return sortedKeys(seen)
}

// Validate はコモディティのデータバリデーションを行います。
func (c *Commodity) Validate() error {
	if c.Name == "" {
		return NewConfigurationError("commodity", "name is required")
	}
	if !c.Kind.Valid() {
		return NewConfigurationError("commodity "+c.Name, "unknown kind %q", c.Kind)
	}
	if c.Kind != DemandKind && (len(c.Demand) > 0 || len(c.Distribution) > 0) {
		return NewConfigurationError("commodity "+c.Name, "only demand commodities carry demand series")
	}
	for _, region := range sortedKeys(c.Demand) {
		if d := c.Demand[region]; !d.Finite() || !d.Within(0, math.Inf(1)) {
			return NewConfigurationError("commodity "+c.Name, "demand in region %s must be a non-negative finite number", region)
		}
	}
	for _, region := range sortedKeys(c.Distribution) {
		if !c.Distribution[region].Within(0, 1) {
			return NewConfigurationError("commodity "+c.Name, "distribution in region %s must lie in [0,1]", region)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
