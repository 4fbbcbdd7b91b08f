// Package session restricts a price series to official trading sessions:
// it selects the most recent trading days from a calendar and filters raw
// points into each day's open/close boundaries.
package session

import (
	"log/slog"
	"time"

	"stockchart/internal/calendar"
)

// TradingCalendar is the calendar surface the session logic depends on.
// *calendar.Calendar implements it.
type TradingCalendar interface {
	Code() string
	IsTradingDay(date time.Time) bool
	Boundary(date time.Time) (calendar.SessionBoundary, error)
}

// maxLookbackFactor bounds the backward walk: at most count*maxLookbackFactor
// calendar days are examined, so a misconfigured or permanently closed
// calendar cannot loop forever.
const maxLookbackFactor = 10

// SelectRecentSessions walks backward one calendar day at a time from ref,
// collecting trading days until count are found or the lookback bound is
// reached. Dates come back oldest-first. Fewer dates than requested is a
// valid outcome, not an error; count <= 0 yields an empty selection.
func SelectRecentSessions(cal TradingCalendar, ref time.Time, count int, log *slog.Logger) []time.Time {
	if count <= 0 {
		return nil
	}

	y, m, d := ref.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	cur := start

	var days []time.Time
	for examined := 0; len(days) < count && examined < count*maxLookbackFactor; examined++ {
		if cal.IsTradingDay(cur) {
			days = append(days, cur)
		}
		cur = cur.AddDate(0, 0, -1)
	}

	// Reverse into chronological order (oldest first).
	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}

	if len(days) < count {
		log.Warn("fewer trading days found than requested",
			"exchange", cal.Code(), "requested", count, "found", len(days))
	}
	log.Info("trading days selected",
		"exchange", cal.Code(), "count", len(days), "reference", start.Format("2006-01-02"))
	return days
}
