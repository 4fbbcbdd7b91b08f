// Package export serializes a processed chart window to the JSON document
// consumed by downstream tooling.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"stockchart/internal/align"
	"stockchart/internal/cliparse"
	"stockchart/internal/model"
)

// Timestamps in the document are naive local time: the instant formatted in
// the offset it was recorded with, without the offset suffix.
const timestampLayout = "2006-01-02T15:04:05"

// Document is the exported JSON structure.
type Document struct {
	Metadata   Metadata              `json:"metadata"`
	Data       []Bar                 `json:"data"`
	Indicators []map[string]*float64 `json:"indicators"`
}

type Metadata struct {
	ExportTimestamp string          `json:"export_timestamp"`
	ExchangeCode    string          `json:"exchange_code"`
	DaysRequested   int             `json:"days_requested"`
	DataPointsCount int             `json:"data_points_count"`
	TimeRange       TimeRange       `json:"time_range"`
	DataFormat      string          `json:"data_format"`
	InputFile       string          `json:"input_file"`
	LatestDate      string          `json:"latest_date"`
	Indicators      []string        `json:"indicators"`
	Lines           map[string]Line `json:"lines"`
}

type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Bar struct {
	Timestamp string  `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

type Line struct {
	Value float64 `json:"value"`
	Color string  `json:"color"`
	Width int     `json:"width"`
}

// Params carries everything Build needs beyond the window itself.
type Params struct {
	Exchange      string
	DaysRequested int
	InputFile     string
	LatestDate    time.Time
	Window        *model.TimeSeries
	Indicators    []model.IndicatorSeries
	Lines         []cliparse.Line
	Now           time.Time
}

// Build assembles the export document. Indicator rows are projected onto
// the window so row i of Indicators describes row i of Data.
func Build(p Params) *Document {
	doc := &Document{
		Metadata: Metadata{
			ExportTimestamp: p.Now.Format(timestampLayout),
			ExchangeCode:    p.Exchange,
			DaysRequested:   p.DaysRequested,
			DataPointsCount: p.Window.Len(),
			DataFormat:      "ohlcv",
			InputFile:       p.InputFile,
			LatestDate:      p.LatestDate.Format("2006-01-02"),
			Indicators:      make([]string, 0, len(p.Indicators)),
			Lines:           make(map[string]Line, len(p.Lines)),
		},
		Data:       make([]Bar, 0, p.Window.Len()),
		Indicators: align.ProjectOntoWindow(p.Indicators, p.Window),
	}

	for _, ind := range p.Indicators {
		doc.Metadata.Indicators = append(doc.Metadata.Indicators, ind.Name)
	}
	for _, l := range p.Lines {
		doc.Metadata.Lines[l.Label] = Line{Value: l.Value, Color: l.Color, Width: l.Width}
	}

	if first, ok := p.Window.First(); ok {
		last, _ := p.Window.Last()
		doc.Metadata.TimeRange = TimeRange{
			Start: first.TS.Format(timestampLayout),
			End:   last.TS.Format(timestampLayout),
		}
	}

	for _, pt := range p.Window.Points() {
		doc.Data = append(doc.Data, Bar{
			Timestamp: pt.TS.Format(timestampLayout),
			Open:      pt.Open,
			High:      pt.High,
			Low:       pt.Low,
			Close:     pt.Close,
			Volume:    pt.Volume,
		})
	}
	return doc
}

// Write renders the document as indented JSON.
func Write(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	return nil
}

// WriteFile writes the document to path, creating or truncating it.
func WriteFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := Write(f, doc); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	return nil
}
