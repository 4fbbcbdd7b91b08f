package session

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"stockchart/internal/model"
)

// ClosedError reports that the venue was shut on the requested date. The
// caller decides the fallback; the multi-day filter substitutes the
// unfiltered day.
type ClosedError struct {
	Exchange string
	Date     time.Time
}

func (e *ClosedError) Error() string {
	return fmt.Sprintf("exchange %s is closed on %s", e.Exchange, e.Date.Format("2006-01-02"))
}

// EmptyWindowError reports that a session boundary resolved but no points
// fell inside it — sparse or pre-market-only data. Distinct from
// ClosedError so the caller can log the right fallback reason.
type EmptyWindowError struct {
	Exchange string
	Date     time.Time
	Open     time.Time
	Close    time.Time
}

func (e *EmptyWindowError) Error() string {
	return fmt.Sprintf("no points within %s session %s [%s, %s]",
		e.Exchange, e.Date.Format("2006-01-02"),
		e.Open.Format("15:04"), e.Close.Format("15:04"))
}

// Fallback reasons recorded by FilterToSessions.
const (
	FallbackClosed      = "closed"
	FallbackEmptyWindow = "empty_window"
)

// Fallback records one day where the trading-hours filter was bypassed and
// the full unfiltered day was used instead.
type Fallback struct {
	Date   time.Time
	Reason string
}

// FilterToSession restricts series to the official trading hours of one
// date, inclusive on both boundary ends. It returns *ClosedError when the
// venue is shut and *EmptyWindowError when the session is open but no point
// falls inside it, so callers can tell the two apart.
func FilterToSession(series *model.TimeSeries, cal TradingCalendar, date time.Time) (*model.TimeSeries, error) {
	b, err := cal.Boundary(date)
	if err != nil {
		y, m, d := date.Date()
		return nil, &ClosedError{Exchange: cal.Code(), Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
	}

	filtered := series.FilterRange(b.Open, b.Close)
	if filtered.Len() == 0 {
		return nil, &EmptyWindowError{Exchange: cal.Code(), Date: date, Open: b.Open, Close: b.Close}
	}
	return filtered, nil
}

// FilterToSessions restricts series to the trading hours of each date, in
// chronological order. Each day is sliced to its calendar date first and the
// hours filter is applied to that slice; a global time-range filter across
// several days would wrongly admit the overnight gaps between sessions.
//
// When a day's venue is closed, or its session matched zero points, the full
// unfiltered day is substituted — which may include pre/post-market ticks —
// and the fallback is logged and reported so the display never silently
// shows an empty window.
func FilterToSessions(series *model.TimeSeries, cal TradingCalendar, dates []time.Time, log *slog.Logger) (*model.TimeSeries, []Fallback) {
	var (
		parts     []*model.TimeSeries
		fallbacks []Fallback
	)

	for _, date := range dates {
		day := series.FilterDate(date)
		if day.Len() == 0 {
			log.Warn("no raw data for trading day", "exchange", cal.Code(), "date", date.Format("2006-01-02"))
			continue
		}

		filtered, err := FilterToSession(day, cal, date)
		switch {
		case err == nil:
			log.Info("session filtered",
				"exchange", cal.Code(), "date", date.Format("2006-01-02"),
				"points", filtered.Len(), "of", day.Len())
			parts = append(parts, filtered)

		case isClosed(err):
			log.Warn("exchange closed, using full unfiltered day",
				"exchange", cal.Code(), "date", date.Format("2006-01-02"), "points", day.Len())
			fallbacks = append(fallbacks, Fallback{Date: date, Reason: FallbackClosed})
			parts = append(parts, day)

		default:
			var ew *EmptyWindowError
			if errors.As(err, &ew) {
				log.Warn("no points during official trading hours, using full unfiltered day",
					"exchange", cal.Code(), "date", date.Format("2006-01-02"),
					"open", ew.Open.Format("15:04"), "close", ew.Close.Format("15:04"),
					"points", day.Len())
				fallbacks = append(fallbacks, Fallback{Date: date, Reason: FallbackEmptyWindow})
				parts = append(parts, day)
			}
		}
	}

	return model.Concat(parts...), fallbacks
}

func isClosed(err error) bool {
	var ce *ClosedError
	return errors.As(err, &ce)
}
