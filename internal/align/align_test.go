package align

import (
	"testing"
	"time"

	"stockchart/internal/model"
)

func pt(h int) model.PricePoint {
	return model.PricePoint{
		TS: time.Date(2024, 3, 1, h, 0, 0, 0, time.UTC), Close: 100 + float64(h), Volume: 1,
	}
}

func ipt(h int, value float64, valid bool) model.IndicatorPoint {
	return model.IndicatorPoint{
		TS: time.Date(2024, 3, 1, h, 0, 0, 0, time.UTC), Value: value, Valid: valid,
	}
}

func TestToWindow_RestrictsToWindowTimestamps(t *testing.T) {
	// Full history covers hours 0..23, window keeps 9..17.
	var full []model.IndicatorPoint
	for h := 0; h < 24; h++ {
		full = append(full, ipt(h, float64(h), h >= 5)) // warm-up until hour 5
	}
	ind := model.IndicatorSeries{Name: "ema_5", Color: "#FF0000", Points: full}

	var windowPts []model.PricePoint
	for h := 9; h <= 17; h++ {
		windowPts = append(windowPts, pt(h))
	}
	window := model.New(windowPts)

	got := ToWindow(ind, window)

	if got.Name != "ema_5" || got.Color != "#FF0000" {
		t.Errorf("identity not preserved: %q %q", got.Name, got.Color)
	}
	if len(got.Points) != window.Len() {
		t.Fatalf("got %d points, want %d", len(got.Points), window.Len())
	}
	for i, p := range got.Points {
		if !p.TS.Equal(window.At(i).TS) {
			t.Errorf("point %d: ts %v does not match window %v", i, p.TS, window.At(i).TS)
		}
	}
}

func TestToWindow_KeepsInvalidWarmupInsideWindow(t *testing.T) {
	ind := model.IndicatorSeries{Name: "sma_20", Points: []model.IndicatorPoint{
		ipt(9, 0, false), ipt(10, 0, false), ipt(11, 105, true),
	}}
	window := model.New([]model.PricePoint{pt(9), pt(10), pt(11)})

	got := ToWindow(ind, window)
	if len(got.Points) != 3 {
		t.Fatalf("got %d points, want 3", len(got.Points))
	}
	if got.Points[0].Valid || got.Points[1].Valid {
		t.Error("warm-up points lost their Valid=false marker")
	}
	if !got.Points[2].Valid {
		t.Error("valid point lost its marker")
	}
}

func TestToWindow_MatchesByInstantAcrossOffsets(t *testing.T) {
	// 12:00 UTC and 14:00+02:00 are the same instant and must match.
	plus2 := time.FixedZone("", 2*3600)
	ind := model.IndicatorSeries{Name: "ema_3", Points: []model.IndicatorPoint{
		{TS: time.Date(2024, 3, 1, 14, 0, 0, 0, plus2), Value: 42, Valid: true},
	}}
	window := model.New([]model.PricePoint{{
		TS: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), Close: 100,
	}})

	got := ToWindow(ind, window)
	if len(got.Points) != 1 || got.Points[0].Value != 42 {
		t.Fatalf("offset-differing same instant not matched: %+v", got.Points)
	}
}

func TestToWindow_DuplicateTimestampKeepsFirst(t *testing.T) {
	ind := model.IndicatorSeries{Name: "ema_3", Points: []model.IndicatorPoint{
		ipt(9, 1.0, true), ipt(9, 2.0, true), ipt(10, 3.0, true),
	}}
	window := model.New([]model.PricePoint{pt(9), pt(10)})

	got := ToWindow(ind, window)
	if len(got.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(got.Points))
	}
	if got.Points[0].Value != 1.0 {
		t.Errorf("duplicate resolved to %v, want the first occurrence (1.0)", got.Points[0].Value)
	}
}

func TestToWindow_Idempotent(t *testing.T) {
	var full []model.IndicatorPoint
	for h := 0; h < 24; h++ {
		full = append(full, ipt(h, float64(h), h >= 3))
	}
	ind := model.IndicatorSeries{Name: "rsi_14", Points: full}
	window := model.New([]model.PricePoint{pt(9), pt(10), pt(11), pt(12)})

	once := ToWindow(ind, window)
	twice := ToWindow(once, window)

	if len(once.Points) != len(twice.Points) {
		t.Fatalf("second alignment changed length: %d vs %d", len(once.Points), len(twice.Points))
	}
	for i := range once.Points {
		if once.Points[i] != twice.Points[i] {
			t.Errorf("point %d changed on re-alignment", i)
		}
	}
}

func TestProjectOntoWindow(t *testing.T) {
	window := model.New([]model.PricePoint{pt(9), pt(10), pt(11)})
	inds := []model.IndicatorSeries{
		{Name: "ema_3", Points: []model.IndicatorPoint{
			ipt(9, 0, false), ipt(10, 101.5, true), ipt(11, 102.5, true),
		}},
		{Name: "sma_2", Points: []model.IndicatorPoint{
			ipt(10, 100.5, true), // no entry at 9 or 11
		}},
	}

	rows := ProjectOntoWindow(inds, window)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if rows[0]["ema_3"] != nil {
		t.Error("warm-up value should project to nil")
	}
	if v := rows[1]["ema_3"]; v == nil || *v != 101.5 {
		t.Errorf("rows[1][ema_3] = %v, want 101.5", v)
	}
	if v := rows[1]["sma_2"]; v == nil || *v != 100.5 {
		t.Errorf("rows[1][sma_2] = %v, want 100.5", v)
	}
	if rows[2]["sma_2"] != nil {
		t.Error("missing timestamp should project to nil")
	}
}
