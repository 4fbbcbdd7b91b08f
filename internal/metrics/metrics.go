// Package metrics exposes Prometheus counters for the processing pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for one pipeline run.
type Metrics struct {
	RowsSkipped            prometheus.Counter
	PointsLoaded           prometheus.Counter
	SessionsSelected       prometheus.Counter
	FallbacksTotal         *prometheus.CounterVec // labels: reason
	PointsFiltered         prometheus.Counter
	IndicatorPointsAligned prometheus.Counter
}

// New registers and returns all pipeline metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockchart_csv_rows_skipped_total",
			Help: "CSV rows dropped during ingest for parse or validation failures",
		}),
		PointsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockchart_points_loaded_total",
			Help: "Price points successfully loaded from CSV",
		}),
		SessionsSelected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockchart_sessions_selected_total",
			Help: "Trading sessions selected for the window",
		}),
		FallbacksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockchart_fallbacks_total",
			Help: "Days that fell back to unfiltered data",
		}, []string{"reason"}),
		PointsFiltered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockchart_points_filtered_total",
			Help: "Price points in the final session-filtered window",
		}),
		IndicatorPointsAligned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockchart_indicator_points_aligned_total",
			Help: "Indicator points aligned onto the filtered window",
		}),
	}

	reg.MustRegister(
		m.RowsSkipped,
		m.PointsLoaded,
		m.SessionsSelected,
		m.FallbacksTotal,
		m.PointsFiltered,
		m.IndicatorPointsAligned,
	)
	return m
}
