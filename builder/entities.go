package builder

import (
	"sort"

	"github.com/stsysd/genesys/model"
)

// 固定のラベル語彙
var (
	PeriodLabels = []LabelRow{
		{ExistingFlag, "existing vintages"},
		{FutureFlag, "future vintages"},
	}
	CommodityLabels = []LabelRow{
		{string(model.ResourceKind), "physical commodity"},
		{string(model.DemandKind), "demand commodity"},
		{string(model.EmissionKind), "emissions commodity"},
	}
	TechnologyLabels = []LabelRow{
		{string(model.Production), "production technology"},
		{string(model.BaseloadProduction), "baseload production technology"},
		{string(model.StorageProduction), "storage production technology"},
		{string(model.ResourceTechnology), "resource technology"},
	}
)

// Entities はパラメータテーブルが参照する実体の一覧です。
type Entities struct {
	Regions      []string
	Sectors      []string
	Commodities  []CommodityRow
	Technologies []TechnologyRow
}

// RegisterEntities はモデルごとの参照先を導出します。
// 地域とセクターはソート順、コモディティは需要・資源・排出の順、
// テクノロジーは宣言順です。
func RegisterEntities(desc *model.Description) Entities {
	regions := map[string]struct{}{}
	sectors := map[string]struct{}{}
	for _, t := range desc.Technologies {
		for _, r := range t.Regions {
			regions[r] = struct{}{}
		}
		sectors[t.Sector] = struct{}{}
	}
	for _, c := range desc.Demands {
		for _, r := range c.Regions() {
			regions[r] = struct{}{}
		}
	}
	for r := range desc.Settings.ReserveMargin {
		regions[r] = struct{}{}
	}

	var e Entities
	e.Regions = sortedSet(regions)
	e.Sectors = sortedSet(sectors)
	for _, c := range desc.Commodities() {
		e.Commodities = append(e.Commodities, CommodityRow{Name: c.Name, Flag: string(c.Kind), Description: c.Description})
	}
	for _, t := range desc.Technologies {
		e.Technologies = append(e.Technologies, TechnologyRow{
			Name:        t.Name,
			Flag:        string(t.Kind),
			Sector:      t.Sector,
			Description: t.Description,
			Category:    t.Category,
		})
	}
	return e
}

func sortedSet(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
