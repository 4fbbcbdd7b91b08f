// Command stockchart restricts an OHLCV CSV to recent trading sessions of
// an exchange, aligns indicators onto the window, and serves or exports the
// result.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"stockchart/internal/chart"
	"stockchart/internal/config"
	"stockchart/internal/export"
	"stockchart/internal/logger"
	"stockchart/internal/metrics"
	"stockchart/internal/pipeline"
	"stockchart/internal/server"
	sqlitestore "stockchart/internal/store/sqlite"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		input      = flag.String("input", "", "path to the OHLCV CSV file (required)")
		exchange   = flag.String("exchange", "", "exchange code, e.g. XETR or NYSE (required)")
		days       = flag.Int("days", 1, "number of recent trading days to display")
		output     = flag.String("output", "", "write the JSON export to this path instead of serving")
		indicators = flag.String("indicators", "", "indicator specs, e.g. ema_50|red,sma_200")
		lines      = flag.String("lines", "", "horizontal lines, e.g. Support|28.2|blue|2")
		chartPath  = flag.String("chart", "", "write the PNG chart to this path instead of serving")
		serveAddr  = flag.String("serve", "", "listen address for serve mode (default from config)")
		recordPath = flag.String("record", "", "record the run into this SQLite database")
		configPath = flag.String("config", "config.yaml", "path to the YAML config file")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	// .env is optional; real environment wins either way.
	godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}

	level := logger.ParseLevel(cfg.Logging.Level)
	if *verbose {
		level = logger.ParseLevel("debug")
	}
	log := logger.Init("stockchart", level)

	if *input == "" || *exchange == "" {
		fmt.Fprintln(os.Stderr, "both --input and --exchange are required")
		flag.Usage()
		return 1
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	res, err := pipeline.Run(cfg, pipeline.Request{
		InputFile:  *input,
		Exchange:   *exchange,
		Days:       *days,
		Indicators: *indicators,
		Lines:      *lines,
	}, m, log)
	if err != nil {
		log.Error("processing failed", "error", err)
		return 1
	}

	doc := export.Build(export.Params{
		Exchange:      res.Exchange,
		DaysRequested: res.Days,
		InputFile:     res.InputFile,
		LatestDate:    res.LatestDate,
		Window:        res.Window,
		Indicators:    res.Indicators,
		Lines:         res.Lines,
		Now:           time.Now(),
	})

	if *recordPath != "" {
		if err := record(*recordPath, res); err != nil {
			log.Error("recording run failed", "error", err)
			return 1
		}
	}

	chartOpts := chart.Options{
		Width:  cfg.Chart.Width,
		Height: cfg.Chart.Height,
		Title:  fmt.Sprintf("%s • %s", cfg.Chart.Title, res.Exchange),
	}

	// One-shot mode: any export target set means write files and exit.
	if *output != "" || *chartPath != "" {
		if *output != "" {
			if err := export.WriteFile(*output, doc); err != nil {
				log.Error("json export failed", "error", err)
				return 1
			}
			log.Info("json export written", "path", *output, "points", res.Window.Len())
		}
		if *chartPath != "" {
			if err := chart.WriteFile(*chartPath, chartOpts, res.Window, res.Indicators, res.Lines); err != nil {
				log.Error("chart render failed", "error", err)
				return 1
			}
			log.Info("chart written", "path", *chartPath)
		}
		return 0
	}

	// Serve mode (default): hold the finished result and serve it until
	// interrupted. A user interrupt is a clean exit.
	addr := cfg.Server.Addr
	if *serveAddr != "" {
		addr = *serveAddr
	}
	srv, err := server.New(addr, server.Content{
		Document:   doc,
		Window:     res.Window,
		Indicators: res.Indicators,
		Lines:      res.Lines,
		ChartOpts:  chartOpts,
	}, reg, log)
	if err != nil {
		log.Error("server setup failed", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server failed", "error", err)
		return 1
	}
	log.Info("shut down cleanly")
	return 0
}

func record(dbPath string, res *pipeline.Result) error {
	rec, err := sqlitestore.New(dbPath)
	if err != nil {
		return err
	}
	defer rec.Close()

	names := make([]string, 0, len(res.Indicators))
	for _, ind := range res.Indicators {
		names = append(names, ind.Name)
	}
	_, err = rec.RecordRun(sqlitestore.RunMeta{
		Exchange:      res.Exchange,
		InputFile:     res.InputFile,
		DaysRequested: res.Days,
		Indicators:    names,
		StartedAt:     time.Now(),
	}, res.Window)
	return err
}
