// Package server exposes a finished pipeline result over HTTP.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"stockchart/internal/chart"
	"stockchart/internal/cliparse"
	"stockchart/internal/export"
	"stockchart/internal/model"
)

// Content holds the immutable result served to clients. Handlers only
// read it, so no locking is needed.
type Content struct {
	Document   *export.Document
	Window     *model.TimeSeries
	Indicators []model.IndicatorSeries
	Lines      []cliparse.Line
	ChartOpts  chart.Options
}

// Server serves the chart, the JSON export, health and metrics.
type Server struct {
	addr string
	srv  *http.Server
	log  *slog.Logger
}

// New builds the server. The chart is rendered once up front so a broken
// render surfaces before the listener starts.
func New(addr string, content Content, reg *prometheus.Registry, log *slog.Logger) (*Server, error) {
	png, err := chart.Render(content.ChartOpts, content.Window, content.Indicators, content.Lines)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/chart.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	})
	mux.HandleFunc("/data.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(content.Document)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status": "ok",
			"points": content.Window.Len(),
		})
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return &Server{
		addr: addr,
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}, nil
}

// Handler returns the mux, mainly for tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", "addr", s.addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
