// Package chart renders the filtered price window and its aligned
// indicators to a PNG line chart.
package chart

import (
	"errors"
	"fmt"
	"os"

	"github.com/vicanso/go-charts/v2"

	"stockchart/internal/cliparse"
	"stockchart/internal/model"
)

// Options control the rendered image.
type Options struct {
	Width  int
	Height int
	Title  string
}

// Render draws the close-price line of the window, one overlay per aligned
// indicator (warm-up gaps become null points) and one constant line per
// horizontal reference line, and returns the encoded PNG.
func Render(opt Options, window *model.TimeSeries, inds []model.IndicatorSeries, lines []cliparse.Line) ([]byte, error) {
	if window.Len() < 2 {
		return nil, errors.New("not enough data points to render")
	}

	labels := xLabels(window)
	null := charts.GetNullValue()

	values := make([][]float64, 0, 1+len(inds)+len(lines))
	names := make([]string, 0, cap(values))

	closes := make([]float64, window.Len())
	yMin, yMax := window.At(0).Close, window.At(0).Close
	for i, p := range window.Points() {
		closes[i] = p.Close
		if p.Close < yMin {
			yMin = p.Close
		}
		if p.Close > yMax {
			yMax = p.Close
		}
	}
	values = append(values, closes)
	names = append(names, "close")

	for _, ind := range inds {
		byTS := make(map[int64]float64, len(ind.Points))
		for _, ip := range ind.Points {
			if !ip.Valid {
				continue
			}
			if _, ok := byTS[ip.TS.UnixNano()]; ok {
				continue
			}
			byTS[ip.TS.UnixNano()] = ip.Value
		}
		row := make([]float64, window.Len())
		for i, ts := range window.Timestamps() {
			if v, ok := byTS[ts.UnixNano()]; ok {
				row[i] = v
				if v < yMin {
					yMin = v
				}
				if v > yMax {
					yMax = v
				}
			} else {
				row[i] = null
			}
		}
		values = append(values, row)
		names = append(names, ind.Name)
	}

	for _, l := range lines {
		row := make([]float64, window.Len())
		for i := range row {
			row[i] = l.Value
		}
		if l.Value < yMin {
			yMin = l.Value
		}
		if l.Value > yMax {
			yMax = l.Value
		}
		values = append(values, row)
		names = append(names, l.Label)
	}

	// Pad the y-range so the extremes do not sit on the frame.
	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	seriesList := charts.NewSeriesListDataFromValues(values, charts.ChartTypeLine)
	for i := range seriesList {
		seriesList[i].Name = names[i]
	}

	painter, err := charts.Render(charts.ChartOption{SeriesList: seriesList},
		charts.TitleTextOptionFunc(opt.Title),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 8}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(opt.Width),
		charts.HeightOptionFunc(opt.Height),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	return painter.Bytes()
}

// WriteFile renders to a PNG on disk.
func WriteFile(path string, opt Options, window *model.TimeSeries, inds []model.IndicatorSeries, lines []cliparse.Line) error {
	img, err := Render(opt, window, inds, lines)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, img, 0o644); err != nil {
		return fmt.Errorf("writing chart file: %w", err)
	}
	return nil
}

// xLabels formats session-aware axis labels: time-only when the window
// spans a single calendar day, date+time otherwise.
func xLabels(window *model.TimeSeries) []string {
	first, _ := window.First()
	last, _ := window.Last()
	fy, fm, fd := first.TS.Date()
	ly, lm, ld := last.TS.Date()
	sameDay := fy == ly && fm == lm && fd == ld

	labels := make([]string, window.Len())
	for i, p := range window.Points() {
		if sameDay {
			labels[i] = p.TS.Format("15:04")
		} else {
			labels[i] = p.TS.Format("Jan 02 15:04")
		}
	}
	return labels
}
