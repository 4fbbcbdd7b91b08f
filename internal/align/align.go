// Package align restricts full-history indicator series onto a filtered
// price window without recomputing them.
package align

import (
	"stockchart/internal/model"
)

// ToWindow keeps only the indicator points whose timestamps occur in the
// filtered window, matched by instant (UnixNano). Warm-up points inside the
// window survive with Valid=false so consumers can render gaps; everything
// outside the window is dropped. Duplicate timestamps keep the first
// occurrence. Aligning an already-aligned series is a no-op.
func ToWindow(ind model.IndicatorSeries, window *model.TimeSeries) model.IndicatorSeries {
	inWindow := make(map[int64]bool, window.Len())
	for _, ts := range window.Timestamps() {
		inWindow[ts.UnixNano()] = true
	}

	out := model.IndicatorSeries{Name: ind.Name, Color: ind.Color}
	taken := make(map[int64]bool, window.Len())
	for _, p := range ind.Points {
		key := p.TS.UnixNano()
		if !inWindow[key] || taken[key] {
			continue
		}
		taken[key] = true
		out.Points = append(out.Points, p)
	}
	return out
}

// AllToWindow aligns every series onto the same window.
func AllToWindow(inds []model.IndicatorSeries, window *model.TimeSeries) []model.IndicatorSeries {
	out := make([]model.IndicatorSeries, 0, len(inds))
	for _, ind := range inds {
		out = append(out, ToWindow(ind, window))
	}
	return out
}

// ProjectOntoWindow produces one row per window point mapping indicator name
// to its value at that instant, or nil when the indicator has no valid value
// there (warm-up or missing timestamp). Row order follows the window.
func ProjectOntoWindow(inds []model.IndicatorSeries, window *model.TimeSeries) []map[string]*float64 {
	type cell struct {
		value float64
		valid bool
	}
	lookup := make(map[string]map[int64]cell, len(inds))
	for _, ind := range inds {
		byTS := make(map[int64]cell, len(ind.Points))
		for _, p := range ind.Points {
			key := p.TS.UnixNano()
			if _, ok := byTS[key]; ok {
				continue
			}
			byTS[key] = cell{value: p.Value, valid: p.Valid}
		}
		lookup[ind.Name] = byTS
	}

	rows := make([]map[string]*float64, 0, window.Len())
	for _, ts := range window.Timestamps() {
		row := make(map[string]*float64, len(inds))
		for _, ind := range inds {
			if c, ok := lookup[ind.Name][ts.UnixNano()]; ok && c.valid {
				v := c.value
				row[ind.Name] = &v
			} else {
				row[ind.Name] = nil
			}
		}
		rows = append(rows, row)
	}
	return rows
}
