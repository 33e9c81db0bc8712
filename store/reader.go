package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/stsysd/genesys/db"
	"github.com/stsysd/genesys/model"
)

// ErrNoSliceData は指定された系列の行が存在しない場合のエラーです。
var ErrNoSliceData = errors.New("no slice data")

// SliceTable は時間スライスで索引付けされたテーブルの種類です。
type SliceTable string

const (
	CapacityFactorTable     SliceTable = "capacity"
	DemandDistributionTable SliceTable = "demand"
)

// ParseSliceTable はコマンドライン引数からテーブルの種類を解析します。
func ParseSliceTable(s string) (SliceTable, error) {
	switch t := SliceTable(s); t {
	case CapacityFactorTable, DemandDistributionTable:
		return t, nil
	}
	return "", fmt.Errorf("unknown slice table %q (want capacity or demand)", s)
}

// SliceKey は季節と時刻の組です。
type SliceKey struct {
	Season string
	Hour   string
}

// SliceMatrix は一つの系列の季節×時刻の値です。
type SliceMatrix struct {
	Seasons []string
	Hours   []string
	Values  map[SliceKey]float64
}

// Reader は構築済みのモデルデータベースを読み取り専用で開きます。
type Reader struct {
	conn    *sql.DB
	queries *db.Queries
}

// OpenReader は path のモデルデータベースを開きます。
func OpenReader(ctx context.Context, path string) (*Reader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &model.ConnectionError{Path: path, Err: err}
	}
	conn, err := open(ctx, path, true)
	if err != nil {
		return nil, &model.ConnectionError{Path: path, Err: err}
	}
	return &Reader{conn: conn, queries: db.New(conn)}, nil
}

// Close はデータベースの接続を閉じます。
func (r *Reader) Close() error {
	return r.conn.Close()
}

// Periods は時間軸の年とフラグを昇順に返します。
func (r *Reader) Periods(ctx context.Context) ([]db.TimePeriod, error) {
	return r.queries.ListTimePeriods(ctx)
}

// Slices は region における name の季節×時刻の値を取得します。
func (r *Reader) Slices(ctx context.Context, table SliceTable, region, name string) (*SliceMatrix, error) {
	seasons, err := r.queries.ListSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	hours, err := r.queries.ListTimesOfDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list times of day: %w", err)
	}

	m := &SliceMatrix{Seasons: seasons, Hours: hours, Values: map[SliceKey]float64{}}
	switch table {
	case CapacityFactorTable:
		rows, err := r.queries.ListCapacityFactors(ctx, db.ListCapacityFactorsParams{Regions: region, Tech: name})
		if err != nil {
			return nil, fmt.Errorf("failed to list capacity factors: %w", err)
		}
		for _, row := range rows {
			m.Values[SliceKey{row.SeasonName, row.TimeOfDayName}] = row.CfTech
		}
	case DemandDistributionTable:
		rows, err := r.queries.ListDemandDistribution(ctx, db.ListDemandDistributionParams{Regions: region, DemandName: name})
		if err != nil {
			return nil, fmt.Errorf("failed to list demand distribution: %w", err)
		}
		for _, row := range rows {
			m.Values[SliceKey{row.SeasonName, row.TimeOfDayName}] = row.Dds
		}
	default:
		return nil, fmt.Errorf("unknown slice table %q", table)
	}

	if len(m.Values) == 0 {
		return nil, fmt.Errorf("%s of %s in %s: %w", table, name, region, ErrNoSliceData)
	}
	return m, nil
}
