package model

import "time"

// IndicatorPoint is one derived value at one instant. Valid is false inside
// the indicator's warm-up span, where no value is defined yet.
type IndicatorPoint struct {
	TS    time.Time
	Value float64
	Valid bool
}

// IndicatorSeries is a named derived series covering the same timestamp
// domain as the price series it was computed from. The computing stage owns
// it; alignment only reads it and builds a restricted copy.
type IndicatorSeries struct {
	Name   string
	Color  string
	Points []IndicatorPoint
}

// ValidCount returns the number of points carrying a defined value.
func (s IndicatorSeries) ValidCount() int {
	n := 0
	for _, p := range s.Points {
		if p.Valid {
			n++
		}
	}
	return n
}
