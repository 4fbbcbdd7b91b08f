// Package sqlite persists processed chart runs for later inspection.
package sqlite

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"stockchart/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// Recorder writes one row per pipeline run plus the filtered candles that
// run produced. A run and its candles commit in a single transaction.
type Recorder struct {
	db *sql.DB
}

// RunMeta describes one pipeline run.
type RunMeta struct {
	Exchange      string
	InputFile     string
	DaysRequested int
	Indicators    []string
	StartedAt     time.Time
}

// New opens (or creates) the database with WAL mode and the schema.
func New(dbPath string) (*Recorder, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	// Single-writer workload
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	log.Printf("[sqlite] opened database at %s", dbPath)
	return &Recorder{db: db}, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			exchange       TEXT    NOT NULL,
			input_file     TEXT    NOT NULL,
			days_requested INTEGER NOT NULL,
			indicators     TEXT,
			started_at     INTEGER NOT NULL,
			points_count   INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS candles (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			ts     INTEGER NOT NULL,
			open   REAL    NOT NULL,
			high   REAL    NOT NULL,
			low    REAL    NOT NULL,
			close  REAL    NOT NULL,
			volume REAL    NOT NULL,
			PRIMARY KEY (run_id, ts)
		);
	`)
	return err
}

// RecordRun inserts the run metadata and every window candle in one
// transaction and returns the new run id.
func (r *Recorder) RecordRun(meta RunMeta, window *model.TimeSeries) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("sqlite begin: %w", err)
	}
	defer tx.Rollback()

	indicators := ""
	for i, name := range meta.Indicators {
		if i > 0 {
			indicators += ","
		}
		indicators += name
	}

	res, err := tx.Exec(`
		INSERT INTO runs (exchange, input_file, days_requested, indicators, started_at, points_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`, meta.Exchange, meta.InputFile, meta.DaysRequested, indicators, meta.StartedAt.Unix(), window.Len())
	if err != nil {
		return 0, fmt.Errorf("sqlite insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite run id: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO candles (run_id, ts, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("sqlite prepare candles: %w", err)
	}
	defer stmt.Close()

	for _, p := range window.Points() {
		if _, err := stmt.Exec(runID, p.TS.UnixNano(), p.Open, p.High, p.Low, p.Close, p.Volume); err != nil {
			return 0, fmt.Errorf("sqlite insert candle: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite commit: %w", err)
	}
	log.Printf("[sqlite] recorded run %d (%d candles)", runID, window.Len())
	return runID, nil
}

// ReadRunCandles reads back the candles of a run in timestamp order.
func (r *Recorder) ReadRunCandles(runID int64) (*model.TimeSeries, error) {
	rows, err := r.db.Query(`
		SELECT ts, open, high, low, close, volume
		FROM candles
		WHERE run_id = ?
		ORDER BY ts ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("sqlite query candles: %w", err)
	}
	defer rows.Close()

	var points []model.PricePoint
	for rows.Next() {
		var p model.PricePoint
		var tsNano int64
		if err := rows.Scan(&tsNano, &p.Open, &p.High, &p.Low, &p.Close, &p.Volume); err != nil {
			return nil, fmt.Errorf("sqlite scan candle: %w", err)
		}
		p.TS = time.Unix(0, tsNano).UTC()
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return model.New(points), nil
}

// Close closes the database.
func (r *Recorder) Close() error {
	return r.db.Close()
}
