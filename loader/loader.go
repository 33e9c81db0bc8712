// Package loader は YAML のモデル記述を model.Description に読み込みます。
package loader

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/stsysd/genesys/model"
	yaml "go.yaml.in/yaml/v3"
)

// LoadFile は path のモデル記述を読み込みます。
// データベース名が指定されていない場合は、ファイル名の拡張子を .sqlite にしたものを使います。
func LoadFile(path string) (*model.Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	desc, err := Decode(bytes.NewReader(data))
	if err != nil {
		var ce *model.ConfigurationError
		if errors.As(err, &ce) && ce.Field == "" {
			ce.Field = path
		}
		return nil, err
	}
	if desc.Database == "" {
		base := filepath.Base(path)
		desc.Database = strings.TrimSuffix(base, filepath.Ext(base)) + ".sqlite"
	}
	return desc, nil
}

// Decode は r から一つの YAML ドキュメントを読み込みます。未知のキーはエラーになります。
func Decode(r io.Reader) (*model.Description, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, model.NewConfigurationError("", "empty model description")
		}
		return nil, &model.ConfigurationError{Message: err.Error(), Err: err}
	}
	return doc.description(), nil
}

func (doc *document) description() *model.Description {
	s := doc.Settings
	desc := &model.Description{
		Settings: model.Settings{
			Scenario:      s.Scenario,
			Seasons:       s.Seasons,
			Hours:         s.Hours,
			StartYear:     s.StartYear,
			EndYear:       s.EndYear,
			YearStep:      s.YearStep,
			DiscountRate:  s.DiscountRate,
			ReserveMargin: s.ReserveMargin,
		},
		Database: doc.Database,
	}

	for _, c := range doc.Commodities.Demand {
		comm := model.NewDemand(c.Name, c.Units, c.Description)
		comm.Demand = distributions(c.Demand)
		comm.Distribution = distributions(c.Distribution)
		desc.Demands = append(desc.Demands, comm)
	}
	for _, c := range doc.Commodities.Resource {
		desc.Resources = append(desc.Resources, commodity(model.ResourceKind, c))
	}
	for _, c := range doc.Commodities.Emission {
		desc.Emissions = append(desc.Emissions, commodity(model.EmissionKind, c))
	}

	for _, t := range doc.Technologies {
		tech := model.NewTechnology(t.Name, model.TechnologyKind(t.Kind), t.Sector, t.Regions...)
		tech.Category = t.Category
		tech.Description = t.Description
		tech.Units = t.Units
		tech.Reserve = t.Reserve
		tech.Lifetime = t.Lifetime.resolve(t.Regions)
		tech.Input = t.Input.resolve(t.Regions)
		tech.Output = t.Output.resolve(t.Regions)
		tech.Efficiency = t.Efficiency.resolve(t.Regions)
		if t.ExistingCapacity != nil {
			tech.ExistingCapacity = t.ExistingCapacity
		}
		tech.CostVariable = distributions(t.CostVariable.resolve(t.Regions))
		tech.CostFixed = distributions(t.CostFixed.resolve(t.Regions))
		tech.CostInvest = distributions(t.CostInvest.resolve(t.Regions))
		tech.CapacityFactor = distributions(t.CapacityFactor.resolve(t.Regions))
		desc.Technologies = append(desc.Technologies, tech)
	}
	return desc
}

// commodity は需要以外のコモディティに与えられた需要系列も保持します（検証でエラーにするため）。
func commodity(kind model.CommodityKind, c commodityDoc) *model.Commodity {
	comm := &model.Commodity{Name: c.Name, Kind: kind, Units: c.Units, Description: c.Description}
	if len(c.Demand) > 0 {
		comm.Demand = distributions(c.Demand)
	}
	if len(c.Distribution) > 0 {
		comm.Distribution = distributions(c.Distribution)
	}
	return comm
}
