// Package ingest loads OHLCV price data from CSV files into a TimeSeries.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"stockchart/internal/model"
)

// ErrNoValidData is returned when a file parses but yields zero usable rows.
var ErrNoValidData = errors.New("no valid data rows in file")

var requiredColumns = []string{"Local time", "Open", "High", "Low", "Close", "Volume"}

// Stats reports what happened during a load.
type Stats struct {
	RowsRead    int
	RowsSkipped int
}

// Loader reads CSV files with a configurable timestamp layout.
type Loader struct {
	layout string
	log    *slog.Logger
}

// NewLoader creates a Loader. layout is a Go time layout for the
// "Local time" column.
func NewLoader(layout string, log *slog.Logger) *Loader {
	return &Loader{layout: layout, log: log}
}

// Load parses the CSV at path into a TimeSeries. Rows whose timestamp or
// numeric fields fail to parse are skipped with a warning; if nothing
// survives, Load fails with ErrNoValidData.
func (l *Loader) Load(path string) (*model.TimeSeries, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	series, stats, err := l.read(f)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", path, err)
	}
	l.log.Info("csv loaded", "path", path, "points", series.Len(), "skipped", stats.RowsSkipped)
	return series, stats, nil
}

func (l *Loader) read(r io.Reader) (*model.TimeSeries, Stats, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, Stats{}, ErrNoValidData
	}
	if err != nil {
		return nil, Stats{}, fmt.Errorf("read header: %w", err)
	}

	idx, err := columnIndexes(header)
	if err != nil {
		return nil, Stats{}, err
	}

	var (
		points []model.PricePoint
		stats  Stats
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row (wrong field count, bad quoting) — skip it.
			stats.RowsRead++
			stats.RowsSkipped++
			l.log.Warn("skipping malformed csv row", "error", err)
			continue
		}
		stats.RowsRead++

		p, err := l.parseRow(rec, idx)
		if err != nil {
			stats.RowsSkipped++
			l.log.Warn("skipping invalid csv row", "row", strings.Join(rec, ","), "error", err)
			continue
		}
		points = append(points, p)
	}

	if len(points) == 0 {
		return nil, stats, ErrNoValidData
	}
	return model.New(points), stats, nil
}

func (l *Loader) parseRow(rec []string, idx map[string]int) (model.PricePoint, error) {
	ts, err := time.Parse(l.layout, strings.TrimSpace(rec[idx["Local time"]]))
	if err != nil {
		return model.PricePoint{}, fmt.Errorf("timestamp: %w", err)
	}

	fields := [5]float64{}
	for i, col := range []string{"Open", "High", "Low", "Close", "Volume"} {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[idx[col]]), 64)
		if err != nil {
			return model.PricePoint{}, fmt.Errorf("%s: %w", strings.ToLower(col), err)
		}
		fields[i] = v
	}
	if fields[4] < 0 {
		return model.PricePoint{}, fmt.Errorf("volume is negative: %v", fields[4])
	}

	return model.PricePoint{
		TS:     ts,
		Open:   fields[0],
		High:   fields[1],
		Low:    fields[2],
		Close:  fields[3],
		Volume: fields[4],
	}, nil
}

func columnIndexes(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}
