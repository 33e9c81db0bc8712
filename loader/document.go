package loader

import (
	"fmt"

	"github.com/stsysd/genesys/model"
	yaml "go.yaml.in/yaml/v3"
)

// document はモデル記述ファイルの構造です。
type document struct {
	Database     string          `yaml:"database"`
	Settings     settingsDoc     `yaml:"settings"`
	Commodities  commoditiesDoc  `yaml:"commodities"`
	Technologies []technologyDoc `yaml:"technologies"`
}

type settingsDoc struct {
	Scenario      string             `yaml:"scenario"`
	Seasons       int                `yaml:"seasons"`
	Hours         int                `yaml:"hours"`
	StartYear     int                `yaml:"start_year"`
	EndYear       int                `yaml:"end_year"`
	YearStep      int                `yaml:"year_step"`
	DiscountRate  float64            `yaml:"discount_rate"`
	ReserveMargin map[string]float64 `yaml:"reserve_margin"`
}

type commoditiesDoc struct {
	Demand   []commodityDoc `yaml:"demand"`
	Resource []commodityDoc `yaml:"resource"`
	Emission []commodityDoc `yaml:"emission"`
}

type commodityDoc struct {
	Name         string                  `yaml:"name"`
	Units        string                  `yaml:"units"`
	Description  string                  `yaml:"description"`
	Demand       map[string]distribution `yaml:"demand"`
	Distribution map[string]distribution `yaml:"distribution"`
}

type technologyDoc struct {
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind"`
	Sector      string   `yaml:"sector"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Units       string   `yaml:"units"`
	Reserve     bool     `yaml:"reserve"`
	Regions     []string `yaml:"regions"`

	Lifetime         perRegion[float64]         `yaml:"lifetime"`
	Input            perRegion[string]          `yaml:"input"`
	Output           perRegion[string]          `yaml:"output"`
	Efficiency       perRegion[float64]         `yaml:"efficiency"`
	ExistingCapacity map[string]map[int]float64 `yaml:"existing_capacity"`
	CostVariable     perRegion[distribution]    `yaml:"cost_variable"`
	CostFixed        perRegion[distribution]    `yaml:"cost_fixed"`
	CostInvest       perRegion[distribution]    `yaml:"cost_invest"`
	CapacityFactor   perRegion[distribution]    `yaml:"capacity_factor"`
}

// distribution は数値をスカラー、数値のリストを系列として読み込みます。
type distribution struct {
	d model.Distribution
}

func (d *distribution) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		d.d = model.Scalar(v)
	case yaml.SequenceNode:
		var vs []float64
		if err := n.Decode(&vs); err != nil {
			return err
		}
		d.d = model.Series(vs...)
	default:
		return fmt.Errorf("line %d: expected a number or a list of numbers", n.Line)
	}
	return nil
}

// perRegion は地域をキーとするマッピング、または全地域に適用する単一の値を受け付けます。
type perRegion[T any] struct {
	all      *T
	byRegion map[string]T
}

func (p *perRegion[T]) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.MappingNode {
		return n.Decode(&p.byRegion)
	}
	var v T
	if err := n.Decode(&v); err != nil {
		return err
	}
	p.all = &v
	return nil
}

// resolve は省略形を地域ごとに展開します。地域の指定がある値を優先します。
func (p perRegion[T]) resolve(regions []string) map[string]T {
	out := make(map[string]T, len(regions))
	if p.all != nil {
		for _, r := range regions {
			out[r] = *p.all
		}
	}
	for r, v := range p.byRegion {
		out[r] = v
	}
	return out
}

func distributions(m map[string]distribution) map[string]model.Distribution {
	out := make(map[string]model.Distribution, len(m))
	for r, d := range m {
		out[r] = d.d
	}
	return out
}
