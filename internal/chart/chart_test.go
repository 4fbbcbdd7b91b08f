package chart

import (
	"bytes"
	"testing"
	"time"

	"stockchart/internal/cliparse"
	"stockchart/internal/model"
)

func window(hours int) *model.TimeSeries {
	var points []model.PricePoint
	for h := 0; h < hours; h++ {
		points = append(points, model.PricePoint{
			TS:    time.Date(2024, 3, 1, 9+h, 0, 0, 0, time.UTC),
			Close: 100 + float64(h), Open: 100, High: 102, Low: 99, Volume: 10,
		})
	}
	return model.New(points)
}

func TestRender_ProducesPNG(t *testing.T) {
	w := window(8)
	ind := model.IndicatorSeries{Name: "ema_3", Points: make([]model.IndicatorPoint, 0, w.Len())}
	for i, p := range w.Points() {
		ind.Points = append(ind.Points, model.IndicatorPoint{
			TS: p.TS, Value: p.Close - 0.5, Valid: i >= 2,
		})
	}
	lines := []cliparse.Line{{Label: "Support", Value: 101.5, Color: "#0000FF", Width: 2}}

	img, err := Render(Options{Width: 800, Height: 400, Title: "Test"}, w, []model.IndicatorSeries{ind}, lines)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(img, []byte("\x89PNG")) {
		t.Errorf("output does not look like a PNG (starts %q)", img[:4])
	}
}

func TestRender_TooFewPoints(t *testing.T) {
	if _, err := Render(Options{Width: 800, Height: 400}, window(1), nil, nil); err == nil {
		t.Error("want error for a single-point window")
	}
}

func TestXLabels_SessionAware(t *testing.T) {
	single := xLabels(window(3))
	if single[0] != "09:00" {
		t.Errorf("single-day label = %q, want time-only", single[0])
	}

	points := append(window(2).Points(), model.PricePoint{
		TS: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), Close: 105,
	})
	multi := xLabels(model.New(points))
	if multi[0] != "Mar 01 09:00" {
		t.Errorf("multi-day label = %q, want date+time", multi[0])
	}
}
