// Package indicator computes technical indicator series over OHLCV history.
//
// Each calculator is a small streaming state machine fed one close at a
// time; Compute drives one over a full series and records, per bar, whether
// the calculator had seen enough history for its value to be meaningful.
package indicator

import (
	"fmt"

	"stockchart/internal/model"
)

// Calculator consumes closing prices one at a time. Value is only
// meaningful once Ready reports true; earlier bars are warm-up.
type Calculator interface {
	Update(close float64)
	Value() float64
	Ready() bool
}

// New returns a fresh calculator for the given spec.
func New(spec Spec) (Calculator, error) {
	switch spec.Type {
	case TypeEMA:
		return NewEMA(spec.Period), nil
	case TypeSMA:
		return NewSMA(spec.Period), nil
	case TypeRSI:
		return NewRSI(spec.Period), nil
	default:
		return nil, fmt.Errorf("unknown indicator type %q", spec.Type)
	}
}

// Compute runs the spec's calculator over the entire series and returns one
// indicator point per input bar. Warm-up bars are emitted with Valid=false
// so downstream consumers keep timestamp alignment with the price data.
//
// A period longer than the series yields a series of all-invalid points,
// never an error: short inputs are a data problem, not a caller bug.
func Compute(spec Spec, series *model.TimeSeries) (model.IndicatorSeries, error) {
	calc, err := New(spec)
	if err != nil {
		return model.IndicatorSeries{}, err
	}

	out := model.IndicatorSeries{
		Name:   spec.Name(),
		Color:  spec.Color,
		Points: make([]model.IndicatorPoint, 0, series.Len()),
	}
	for _, p := range series.Points() {
		calc.Update(p.Close)
		ip := model.IndicatorPoint{TS: p.TS}
		if calc.Ready() {
			ip.Value = calc.Value()
			ip.Valid = true
		}
		out.Points = append(out.Points, ip)
	}
	return out, nil
}

// ComputeAll evaluates every spec against the same series.
func ComputeAll(specs []Spec, series *model.TimeSeries) ([]model.IndicatorSeries, error) {
	out := make([]model.IndicatorSeries, 0, len(specs))
	for _, spec := range specs {
		is, err := Compute(spec, series)
		if err != nil {
			return nil, err
		}
		out = append(out, is)
	}
	return out, nil
}
