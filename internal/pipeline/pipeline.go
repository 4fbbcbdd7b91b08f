// Package pipeline wires ingest, calendar, session filtering, indicator
// computation and alignment into one synchronous run.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"stockchart/internal/align"
	"stockchart/internal/calendar"
	"stockchart/internal/cliparse"
	"stockchart/internal/config"
	"stockchart/internal/indicator"
	"stockchart/internal/ingest"
	"stockchart/internal/metrics"
	"stockchart/internal/model"
	"stockchart/internal/session"
)

// ErrEmptyWindow is returned when none of the selected trading days has any
// data, even after the per-day fallbacks.
var ErrEmptyWindow = errors.New("no data available for the selected trading days")

// Request is one processing run.
type Request struct {
	InputFile  string
	Exchange   string
	Days       int
	Indicators string // raw --indicators flag
	Lines      string // raw --lines flag
}

// Result is everything downstream consumers (export, chart, server,
// recorder) need. The contained series are immutable.
type Result struct {
	Exchange   string
	Days       int
	InputFile  string
	LatestDate time.Time
	Full       *model.TimeSeries
	Window     *model.TimeSeries
	Indicators []model.IndicatorSeries // aligned onto Window
	Lines      []cliparse.Line
	Sessions   []time.Time
	Fallbacks  []session.Fallback
}

// Run executes the pipeline. The exchange code is validated before the
// input file is touched, so a typo'd code fails fast. Closed or empty
// session days degrade to unfiltered data with a warning; an entirely empty
// window is fatal.
func Run(cfg *config.Config, req Request, m *metrics.Metrics, log *slog.Logger) (*Result, error) {
	specs, err := indicator.ParseSpecs(req.Indicators)
	if err != nil {
		return nil, err
	}
	lines, err := cliparse.ParseLines(req.Lines)
	if err != nil {
		return nil, err
	}

	// Exchange validation comes before any file I/O.
	cal, err := calendar.New(req.Exchange, log)
	if err != nil {
		return nil, err
	}

	loader := ingest.NewLoader(cfg.Data.TimestampLayout, log)
	series, stats, err := loader.Load(req.InputFile)
	if err != nil {
		return nil, err
	}
	m.RowsSkipped.Add(float64(stats.RowsSkipped))
	m.PointsLoaded.Add(float64(series.Len()))

	latest, ok := series.LatestDate()
	if !ok {
		return nil, ingest.ErrNoValidData
	}

	days := req.Days
	if days < 1 {
		days = 1
	}

	// Single-day runs pin the window to the latest date in the data, even
	// when the venue is closed that day: the filter then substitutes the
	// unfiltered day. Multi-day runs select actual trading days backward
	// from that date.
	var sessions []time.Time
	if days == 1 {
		sessions = []time.Time{latest}
	} else {
		sessions = session.SelectRecentSessions(cal, latest, days, log)
	}
	m.SessionsSelected.Add(float64(len(sessions)))

	window, fallbacks := session.FilterToSessions(series, cal, sessions, log)
	for _, fb := range fallbacks {
		m.FallbacksTotal.WithLabelValues(fb.Reason).Inc()
	}
	if window.Len() == 0 {
		return nil, fmt.Errorf("%w (exchange %s, latest date %s)",
			ErrEmptyWindow, cal.Code(), latest.Format("2006-01-02"))
	}
	m.PointsFiltered.Add(float64(window.Len()))

	// Indicators run over the full history, then shrink onto the window,
	// so warm-up uses data from before the displayed days.
	computed, err := indicator.ComputeAll(specs, series)
	if err != nil {
		return nil, err
	}
	aligned := align.AllToWindow(computed, window)
	for _, ind := range aligned {
		m.IndicatorPointsAligned.Add(float64(len(ind.Points)))
		if len(ind.Points) > 0 && ind.ValidCount() == 0 {
			log.Warn("indicator has no valid values in the window, "+
				"period may exceed the available history",
				"indicator", ind.Name, "history", series.Len())
		}
	}

	return &Result{
		Exchange:   cal.Code(),
		Days:       days,
		InputFile:  req.InputFile,
		LatestDate: latest,
		Full:       series,
		Window:     window,
		Indicators: aligned,
		Lines:      lines,
		Sessions:   sessions,
		Fallbacks:  fallbacks,
	}, nil
}
