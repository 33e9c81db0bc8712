package builder

import (
	"fmt"
	"math"
	"sort"

	"github.com/stsysd/genesys/model"
)

// 将来期間の最大数
const maxFuturePeriods = 10000

// time_periods.flag に書き込むフラグ
const (
	ExistingFlag = "e"
	FutureFlag   = "f"
)

// TimeSlice は一つの (季節, 時刻) 区分と、それが占める年間の割合です。
type TimeSlice struct {
	Season string
	Hour   string
	Weight float64
}

// TimeStructure はモデルの時間座標系です。
type TimeStructure struct {
	Seasons []string
	Hours   []string

	// 最適化の対象期間（境界年を含まない）
	FutureYears []int
	// 対象期間の終端。time_periods にのみ書き込む
	Boundary int
	// FutureYears[0] より前の既存ヴィンテージ
	ExistingYears []int

	// 季節×時刻（季節優先）
	Slices  []TimeSlice
	SegFrac float64
}

// NewTimeStructure は設定値と既存設備のヴィンテージ年から時間構造を作成します。
func NewTimeStructure(s model.Settings, vintages []int) (*TimeStructure, error) {
	if s.Seasons <= 0 {
		return nil, model.NewConfigurationError("seasons", "must be positive, got %d", s.Seasons)
	}
	if s.Hours <= 0 {
		return nil, model.NewConfigurationError("hours", "must be positive, got %d", s.Hours)
	}
	if s.YearStep <= 0 {
		return nil, model.NewConfigurationError("year_step", "must be positive, got %d", s.YearStep)
	}

	if s.EndYear < s.StartYear {
		return nil, model.NewConfigurationError("end_year", "no future periods between %d and %d", s.StartYear, s.EndYear)
	}
	// 年を加算して比較するとオーバーフローするため、個数から求める
	n := (s.EndYear-s.StartYear)/s.YearStep + 1
	if s.EndYear-s.StartYear < 0 || n > maxFuturePeriods || s.EndYear == math.MaxInt || s.StartYear == math.MinInt {
		return nil, model.NewConfigurationError("end_year", "too many future periods between %d and %d", s.StartYear, s.EndYear)
	}
	future := make([]int, n)
	for i := range future {
		future[i] = s.StartYear + i*s.YearStep
	}
	first := future[0]

	seen := map[int]bool{}
	var existing []int
	for _, v := range vintages {
		if v < first && !seen[v] {
			seen[v] = true
			existing = append(existing, v)
		}
	}
	sort.Ints(existing)
	if len(existing) == 0 {
		existing = []int{first - 1}
	}

	ts := &TimeStructure{
		Seasons:       labels("S", s.Seasons),
		Hours:         labels("H", s.Hours),
		FutureYears:   future,
		Boundary:      future[len(future)-1] + 1,
		ExistingYears: existing,
		SegFrac:       1 / float64(s.Seasons*s.Hours),
	}
	for _, season := range ts.Seasons {
		for _, hour := range ts.Hours {
			ts.Slices = append(ts.Slices, TimeSlice{Season: season, Hour: hour, Weight: ts.SegFrac})
		}
	}
	return ts, nil
}

// First は最初の将来年を返します。
func (ts *TimeStructure) First() int { return ts.FutureYears[0] }

// Periods は time_periods の行（既存年、将来年、境界年）を返します。
func (ts *TimeStructure) Periods() []TimePeriodRow {
	rows := make([]TimePeriodRow, 0, len(ts.ExistingYears)+len(ts.FutureYears)+1)
	for _, y := range ts.ExistingYears {
		rows = append(rows, TimePeriodRow{Year: y, Flag: ExistingFlag})
	}
	for _, y := range ts.FutureYears {
		rows = append(rows, TimePeriodRow{Year: y, Flag: FutureFlag})
	}
	return append(rows, TimePeriodRow{Year: ts.Boundary, Flag: FutureFlag})
}

// HourMajorSlices は時刻を外側、季節を内側にしたスライス列を返します。
// スライス系列はこの順で対応付けられ、k 番目の値は
// 時刻 k/len(Seasons)、季節 k%len(Seasons) になります。
func (ts *TimeStructure) HourMajorSlices() []TimeSlice {
	out := make([]TimeSlice, 0, len(ts.Slices))
	for _, hour := range ts.Hours {
		for _, season := range ts.Seasons {
			out = append(out, TimeSlice{Season: season, Hour: hour, Weight: ts.SegFrac})
		}
	}
	return out
}

// SegFracRows は SegFrac の行を返します。
func (ts *TimeStructure) SegFracRows() []SegFracRow {
	rows := make([]SegFracRow, len(ts.Slices))
	for i, s := range ts.Slices {
		rows[i] = SegFracRow{Season: s.Season, Hour: s.Hour, Fraction: s.Weight, Notes: "fraction of year"}
	}
	return rows
}

func labels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return out
}
