package model

import (
	"sort"
	"time"
)

// TimeSeries is an ordered collection of price points, sorted ascending by
// timestamp at construction. It is never mutated after New returns: every
// filter produces a fresh TimeSeries, so instances are safe to share by
// reference between the chart renderer, the JSON exporter and the aligner.
type TimeSeries struct {
	points []PricePoint
}

// New builds a TimeSeries from points, copying the input and stable-sorting
// it by timestamp. Ties keep their original order.
func New(points []PricePoint) *TimeSeries {
	cp := make([]PricePoint, len(points))
	copy(cp, points)
	sort.SliceStable(cp, func(i, j int) bool {
		return cp[i].TS.Before(cp[j].TS)
	})
	return &TimeSeries{points: cp}
}

// Len returns the number of points.
func (s *TimeSeries) Len() int { return len(s.points) }

// At returns the i-th point in timestamp order.
func (s *TimeSeries) At(i int) PricePoint { return s.points[i] }

// Points returns the underlying slice. Callers must not modify it.
func (s *TimeSeries) Points() []PricePoint { return s.points }

// First returns the earliest point, or false if the series is empty.
func (s *TimeSeries) First() (PricePoint, bool) {
	if len(s.points) == 0 {
		return PricePoint{}, false
	}
	return s.points[0], true
}

// Last returns the latest point, or false if the series is empty.
func (s *TimeSeries) Last() (PricePoint, bool) {
	if len(s.points) == 0 {
		return PricePoint{}, false
	}
	return s.points[len(s.points)-1], true
}

// LatestDate returns the calendar date (midnight UTC) of the latest point
// in that point's own offset, or false if the series is empty.
func (s *TimeSeries) LatestDate() (time.Time, bool) {
	last, ok := s.Last()
	if !ok {
		return time.Time{}, false
	}
	return last.Date(), true
}

// Timestamps returns the timestamps of all points in order.
func (s *TimeSeries) Timestamps() []time.Time {
	out := make([]time.Time, len(s.points))
	for i, p := range s.points {
		out[i] = p.TS
	}
	return out
}

// FilterDate returns a new series containing only the points whose calendar
// date (in each point's own offset) matches the given date's year/month/day.
func (s *TimeSeries) FilterDate(date time.Time) *TimeSeries {
	wy, wm, wd := date.Date()
	var out []PricePoint
	for _, p := range s.points {
		y, m, d := p.TS.Date()
		if y == wy && m == wm && d == wd {
			out = append(out, p)
		}
	}
	return &TimeSeries{points: out}
}

// FilterRange returns a new series containing only the points whose
// timestamps fall within [start, end], inclusive on both ends. The
// comparison is by instant, so mixed UTC offsets compare correctly.
func (s *TimeSeries) FilterRange(start, end time.Time) *TimeSeries {
	var out []PricePoint
	for _, p := range s.points {
		if !p.TS.Before(start) && !p.TS.After(end) {
			out = append(out, p)
		}
	}
	return &TimeSeries{points: out}
}

// Concat joins series whose points are already in chronological order across
// the parts (per-day slices concatenated oldest day first). The parts are
// not re-sorted.
func Concat(parts ...*TimeSeries) *TimeSeries {
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	out := make([]PricePoint, 0, total)
	for _, p := range parts {
		out = append(out, p.points...)
	}
	return &TimeSeries{points: out}
}
