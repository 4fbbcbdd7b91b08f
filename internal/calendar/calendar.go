// Package calendar answers, per exchange and calendar date, whether the
// venue trades and between which instants. Session times are defined in the
// exchange's own time zone, so the returned boundaries carry the correct
// UTC offset for direct comparison against price timestamps.
package calendar

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// ErrUnsupportedExchange reports an exchange code with no registry entry.
// It is raised at construction, never lazily per query.
var ErrUnsupportedExchange = errors.New("unsupported exchange code")

// ErrClosed reports that the venue does not trade on the queried date.
var ErrClosed = errors.New("exchange closed")

// SessionBoundary holds one trading day's official open and close instants,
// expressed in the exchange's own zone.
type SessionBoundary struct {
	Date  time.Time // midnight UTC of the session's calendar date
	Open  time.Time
	Close time.Time
}

// Calendar resolves session boundaries for one exchange.
type Calendar struct {
	code string
	spec exchangeSpec
	loc  *time.Location
	log  *slog.Logger
}

// New resolves the exchange code against the registry and loads its time
// zone. It fails with ErrUnsupportedExchange for unknown codes, so a bad
// code is reported before any data file is touched.
func New(code string, log *slog.Logger) (*Calendar, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	spec, ok := exchanges[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedExchange, code, strings.Join(SupportedExchanges(), ", "))
	}
	loc, err := time.LoadLocation(spec.tz)
	if err != nil {
		return nil, fmt.Errorf("load zone %s for %s: %w", spec.tz, code, err)
	}
	log.Info("exchange calendar initialized", "exchange", code, "zone", spec.tz)
	return &Calendar{code: code, spec: spec, loc: loc, log: log}, nil
}

// Code returns the normalized exchange code.
func (c *Calendar) Code() string { return c.code }

// Boundary returns the session open/close for the given date, or ErrClosed
// when the venue is shut (weekend or holiday). Only the year/month/day of
// date are used.
func (c *Calendar) Boundary(date time.Time) (SessionBoundary, error) {
	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, c.loc)

	wd := midnight.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return SessionBoundary{}, fmt.Errorf("%w: %s on %s (weekend)", ErrClosed, c.code, midnight.Format("2006-01-02"))
	}
	if c.spec.holidays[midnight.Format("2006-01-02")] {
		return SessionBoundary{}, fmt.Errorf("%w: %s on %s (holiday)", ErrClosed, c.code, midnight.Format("2006-01-02"))
	}

	return SessionBoundary{
		Date:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Open:  time.Date(y, m, d, c.spec.openHour, c.spec.openMinute, 0, 0, c.loc),
		Close: time.Date(y, m, d, c.spec.closeHour, c.spec.closeMinute, 0, 0, c.loc),
	}, nil
}

// IsTradingDay reports whether the venue trades on the given date.
func (c *Calendar) IsTradingDay(date time.Time) bool {
	_, err := c.Boundary(date)
	return err == nil
}
