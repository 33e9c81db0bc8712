package builder

import (
	"math"
	"sort"

	"github.com/stsysd/genesys/model"
)

// VintagePair はコストテーブルで有効な (期間, ヴィンテージ) の組です。
type VintagePair struct {
	Period  int
	Vintage int
}

// Vintages は一つの地域における一つのテクノロジーの寿命の解決結果です。
type Vintages struct {
	Region   string
	Lifetime float64
	// 残存する既存ヴィンテージ（昇順）
	Surviving []int
	// Efficiency のヴィンテージ（残存分の後にすべての将来年）
	Efficiency []int
	// 期間順、次にヴィンテージの並び順
	CostPairs []VintagePair
}

// Survives は v 年に導入された設備が期間 p にまだ稼働しているかを返します。
func Survives(p, v int, lifetime float64) bool {
	return float64(p-v) < lifetime
}

// ResolveVintages は region において t の既存ヴィンテージのうち対象期間まで
// 残存するものと、有効な (期間, ヴィンテージ) の組を求めます。
//
// 組の判定は p-v < 寿命 のみで v <= p は確認しないため、
// 期間より後の将来ヴィンテージも含まれます。
func ResolveVintages(t *model.Technology, region string, future []int) (Vintages, error) {
	life := t.Lifetime[region]
	if !(life > 0) || math.IsInf(life, 1) {
		return Vintages{}, model.NewConfigurationError("technology "+t.Name,
			"lifetime in region %s must be positive, got %g", region, life)
	}
	if len(future) == 0 {
		return Vintages{}, model.NewConfigurationError("future_years", "empty horizon")
	}
	first := future[0]

	res := Vintages{Region: region, Lifetime: life}
	for _, v := range t.Vintages(region) {
		if Survives(first, v, life) {
			res.Surviving = append(res.Surviving, v)
		}
	}

	pool := union(res.Surviving, future)
	res.Efficiency = pool
	for _, p := range future {
		for _, v := range pool {
			if Survives(p, v, life) {
				res.CostPairs = append(res.CostPairs, VintagePair{Period: p, Vintage: v})
			}
		}
	}
	return res, nil
}

// union は a の順序を保ち、a にない b の値を後ろに追加します。
func union(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	out := make([]int, 0, len(a)+len(b))
	for _, list := range [][]int{a, b} {
		for _, v := range list {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// AllVintages はすべてのテクノロジーの既存ヴィンテージを重複なく昇順で返します。
func AllVintages(techs []*model.Technology) []int {
	seen := map[int]bool{}
	var out []int
	for _, t := range techs {
		for _, region := range t.Regions {
			for _, v := range t.Vintages(region) {
				if !seen[v] {
					seen[v] = true
					out = append(out, v)
				}
			}
		}
	}
	sort.Ints(out)
	return out
}
