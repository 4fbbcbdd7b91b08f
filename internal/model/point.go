package model

import "time"

// PricePoint represents a single OHLCV bar at one instant.
// The timestamp carries the UTC offset it was recorded with.
type PricePoint struct {
	TS     time.Time `json:"timestamp"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Date returns the calendar date of the point in its own offset,
// as midnight UTC. Used for same-day grouping.
func (p PricePoint) Date() time.Time {
	y, m, d := p.TS.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
