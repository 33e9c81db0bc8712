package builder

import "github.com/stsysd/genesys/model"

// 行の型は出力先テーブルの列順に対応します。

type LabelRow struct {
	Label       string
	Description string
}

type TimePeriodRow struct {
	Year int
	Flag string
}

type SegFracRow struct {
	Season   string
	Hour     string
	Fraction float64
	Notes    string
}

type CommodityRow struct {
	Name        string
	Flag        string
	Description string
}

type TechnologyRow struct {
	Name        string
	Flag        string
	Sector      string
	Description string
	Category    string
}

type DemandRow struct {
	Region    string
	Period    int
	Commodity string
	Demand    float64
	Units     string
}

type DemandDistributionRow struct {
	Region    string
	Season    string
	Hour      string
	Commodity string
	Fraction  float64
}

type EfficiencyRow struct {
	Region     string
	Input      string
	Technology string
	Vintage    int
	Output     string
	Efficiency float64
}

type ExistingCapacityRow struct {
	Region     string
	Technology string
	Vintage    int
	Capacity   float64
	Units      string
}

type LifetimeRow struct {
	Region     string
	Technology string
	Life       float64
}

// CostRow は CostVariable または CostFixed の行です。
type CostRow struct {
	Region     string
	Period     int
	Technology string
	Vintage    int
	Cost       float64
}

type CostInvestRow struct {
	Region     string
	Technology string
	Vintage    int
	Cost       float64
}

type CapacityFactorRow struct {
	Region     string
	Season     string
	Hour       string
	Technology string
	Factor     float64
}

type ReserveMarginRow struct {
	Region string
	Margin float64
}

// Tables はビルドの出力全体です。フィールドはストアが挿入する順に並んでいます。
type Tables struct {
	PeriodLabels     []LabelRow
	CommodityLabels  []LabelRow
	TechnologyLabels []LabelRow
	Sectors          []string

	Regions      []string
	Commodities  []CommodityRow
	Technologies []TechnologyRow

	Periods []TimePeriodRow
	Seasons []string
	Hours   []string
	SegFrac []SegFracRow

	Demand             []DemandRow
	DemandDistribution []DemandDistributionRow
	Efficiency         []EfficiencyRow
	ExistingCapacity   []ExistingCapacityRow
	LifetimeTech       []LifetimeRow
	CostVariable       []CostRow
	CostFixed          []CostRow
	CostInvest         []CostInvestRow
	CapacityFactorTech []CapacityFactorRow
	ReserveMargin      []ReserveMarginRow
	TechReserve        []string
	DiscountRate       float64

	// 与えられなかった任意の系列（その分だけ行が少なくなる）
	Gaps []model.DataGap
}
