package session

import (
	"errors"
	"testing"
	"time"

	"stockchart/internal/calendar"
	"stockchart/internal/model"
)

// hourly builds one point per hour across the given local day, stamped with
// a fixed +02:00 offset like broker CSV exports.
func hourly(y int, m time.Month, d int) []model.PricePoint {
	plus2 := time.FixedZone("", 2*3600)
	var points []model.PricePoint
	for h := 0; h < 24; h++ {
		ts := time.Date(y, m, d, h, 0, 0, 0, plus2)
		points = append(points, model.PricePoint{
			TS: ts, Open: 100, High: 101, Low: 99, Close: 100, Volume: 10,
		})
	}
	return points
}

func TestFilterToSession_XETRTradingHours(t *testing.T) {
	cal, err := calendar.New("XETR", testLog())
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}

	// Full day of hourly +02:00 points on 2024-03-01; Berlin is CET
	// (+01:00) then, so the 09:00–17:30 session is 10:00–18:30 in the
	// data's offset.
	series := model.New(hourly(2024, 3, 1))
	got, err := FilterToSession(series, cal, utcDate(2024, 3, 1))
	if err != nil {
		t.Fatalf("FilterToSession: %v", err)
	}

	berlin, _ := time.LoadLocation("Europe/Berlin")
	if got.Len() != 9 { // 10:00..18:00 at +02:00 = 09:00..17:00 CET
		t.Fatalf("got %d points, want 9", got.Len())
	}
	for _, p := range got.Points() {
		local := p.TS.In(berlin)
		hm := local.Hour()*60 + local.Minute()
		if hm < 9*60 || hm > 17*60+30 {
			t.Errorf("point at %s local is outside 09:00–17:30", local.Format("15:04"))
		}
	}

	// Subset property: every output point existed in the input.
	in := map[int64]bool{}
	for _, p := range series.Points() {
		in[p.TS.UnixNano()] = true
	}
	for _, p := range got.Points() {
		if !in[p.TS.UnixNano()] {
			t.Errorf("output point %v not present in input", p.TS)
		}
	}
}

func TestFilterToSession_Closed(t *testing.T) {
	cal, _ := calendar.New("XETR", testLog())
	series := model.New(hourly(2024, 5, 1)) // Labour Day

	_, err := FilterToSession(series, cal, utcDate(2024, 5, 1))
	var ce *ClosedError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *ClosedError", err)
	}
	if ce.Exchange != "XETR" || ce.Date.Format("2006-01-02") != "2024-05-01" {
		t.Errorf("ClosedError = %+v", ce)
	}
}

func TestFilterToSession_EmptyWindowDistinctFromClosed(t *testing.T) {
	cal, _ := calendar.New("XETR", testLog())

	// Pre-market only: points at 05:00–07:00 +02:00 (04:00–06:00 CET).
	plus2 := time.FixedZone("", 2*3600)
	var points []model.PricePoint
	for h := 5; h <= 7; h++ {
		points = append(points, model.PricePoint{
			TS: time.Date(2024, 3, 1, h, 0, 0, 0, plus2), Close: 100,
		})
	}

	_, err := FilterToSession(model.New(points), cal, utcDate(2024, 3, 1))
	var ew *EmptyWindowError
	if !errors.As(err, &ew) {
		t.Fatalf("err = %v, want *EmptyWindowError", err)
	}
	var ce *ClosedError
	if errors.As(err, &ce) {
		t.Error("empty window must not match ClosedError")
	}
}

func TestFilterToSessions_MultiDayExcludesOvernight(t *testing.T) {
	cal, _ := calendar.New("XETR", testLog())

	points := append(hourly(2024, 2, 29), hourly(2024, 3, 1)...)
	series := model.New(points)
	dates := []time.Time{utcDate(2024, 2, 29), utcDate(2024, 3, 1)}

	got, fallbacks := FilterToSessions(series, cal, dates, testLog())
	if len(fallbacks) != 0 {
		t.Errorf("unexpected fallbacks: %v", fallbacks)
	}
	if got.Len() != 18 { // 9 in-session points per day
		t.Fatalf("got %d points, want 18", got.Len())
	}

	// Chronological across the day boundary, no overnight points.
	berlin, _ := time.LoadLocation("Europe/Berlin")
	for i, p := range got.Points() {
		if i > 0 && p.TS.Before(got.At(i-1).TS) {
			t.Fatal("multi-day result not chronological")
		}
		local := p.TS.In(berlin)
		hm := local.Hour()*60 + local.Minute()
		if hm < 9*60 || hm > 17*60+30 {
			t.Errorf("overnight point leaked through: %s local", local.Format("Jan 2 15:04"))
		}
	}
}

func TestFilterToSessions_ClosedDayFallsBackToFullDay(t *testing.T) {
	cal, _ := calendar.New("XETR", testLog())

	points := append(hourly(2024, 4, 30), hourly(2024, 5, 1)...) // 1 May closed
	series := model.New(points)
	dates := []time.Time{utcDate(2024, 4, 30), utcDate(2024, 5, 1)}

	got, fallbacks := FilterToSessions(series, cal, dates, testLog())

	if len(fallbacks) != 1 || fallbacks[0].Reason != FallbackClosed {
		t.Fatalf("fallbacks = %v, want one with reason %q", fallbacks, FallbackClosed)
	}
	if !fallbacks[0].Date.Equal(utcDate(2024, 5, 1)) {
		t.Errorf("fallback date = %v, want 2024-05-01", fallbacks[0].Date)
	}
	// 9 filtered points for Apr 30 + all 24 unfiltered points for May 1.
	if got.Len() != 9+24 {
		t.Errorf("got %d points, want 33", got.Len())
	}
}

func TestFilterToSessions_EmptyWindowFallsBackToFullDay(t *testing.T) {
	cal, _ := calendar.New("XETR", testLog())

	// Only pre-market data on 2024-03-01.
	plus2 := time.FixedZone("", 2*3600)
	var points []model.PricePoint
	for h := 5; h <= 7; h++ {
		points = append(points, model.PricePoint{
			TS: time.Date(2024, 3, 1, h, 0, 0, 0, plus2), Close: 100,
		})
	}
	series := model.New(points)

	got, fallbacks := FilterToSessions(series, cal, []time.Time{utcDate(2024, 3, 1)}, testLog())
	if len(fallbacks) != 1 || fallbacks[0].Reason != FallbackEmptyWindow {
		t.Fatalf("fallbacks = %v, want one with reason %q", fallbacks, FallbackEmptyWindow)
	}
	if got.Len() != 3 {
		t.Errorf("got %d points, want the 3 unfiltered pre-market points", got.Len())
	}
}

func TestFilterToSessions_DayWithoutDataSkipped(t *testing.T) {
	cal, _ := calendar.New("XETR", testLog())
	series := model.New(hourly(2024, 3, 1))
	dates := []time.Time{utcDate(2024, 2, 29), utcDate(2024, 3, 1)}

	got, fallbacks := FilterToSessions(series, cal, dates, testLog())
	if len(fallbacks) != 0 {
		t.Errorf("unexpected fallbacks: %v", fallbacks)
	}
	if got.Len() != 9 {
		t.Errorf("got %d points, want 9 (missing day contributes nothing)", got.Len())
	}
}
