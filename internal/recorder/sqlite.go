package recorder

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"MacdRadar/internal/model"
)

var log = logrus.WithField("component", "recorder")

// SQLiteRecorder persists scan cycles and crossover events to a SQLite
// database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the scanner writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Infof("sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_cycles (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_id         TEXT NOT NULL,
			started_at      INTEGER NOT NULL,
			finished_at     INTEGER NOT NULL,
			intraday_events INTEGER,
			daily_events    INTEGER,
			scanned         INTEGER,
			skipped         INTEGER,
			new_events      INTEGER,
			dispatch_status TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cycles_started ON scan_cycles(started_at)`,

		`CREATE TABLE IF NOT EXISTS crossover_events (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_id        TEXT NOT NULL,
			symbol         TEXT NOT NULL,
			timeframe      TEXT NOT NULL,
			previous_label TEXT,
			current_label  TEXT,
			macd           REAL,
			signal         REAL,
			price          REAL,
			bar_time       INTEGER NOT NULL,
			fresh          INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_symbol ON crossover_events(symbol, timeframe)`,
		`CREATE INDEX IF NOT EXISTS idx_events_bar ON crossover_events(bar_time)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordScan stores the cycle summary plus one row per crossover event.
// Events the dispatch saw for the first time are flagged fresh.
func (r *SQLiteRecorder) RecordScan(report *model.ScanReport, dispatch model.DispatchResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO scan_cycles
		(scan_id, started_at, finished_at, intraday_events, daily_events,
		 scanned, skipped, new_events, dispatch_status)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		report.ID.String(), report.StartedAt.Unix(), report.FinishedAt.Unix(),
		len(report.Intraday), len(report.Daily),
		report.ScannedCount(), report.SkippedCount(),
		len(dispatch.NewEvents), string(dispatch.Status),
	)
	if err != nil {
		return fmt.Errorf("insert scan cycle: %w", err)
	}

	fresh := make(map[model.AlertKey]bool, len(dispatch.NewEvents))
	for _, ev := range dispatch.NewEvents {
		fresh[ev.Key()] = true
	}

	for _, ev := range report.Events() {
		flag := 0
		if fresh[ev.Key()] {
			flag = 1
		}
		if _, err := r.db.Exec(`INSERT INTO crossover_events
			(scan_id, symbol, timeframe, previous_label, current_label,
			 macd, signal, price, bar_time, fresh)
			VALUES (?,?,?,?,?,?,?,?,?,?)`,
			report.ID.String(), ev.Symbol, string(ev.Timeframe),
			string(ev.PreviousLabel), string(ev.CurrentLabel),
			ev.MACD, ev.Signal, ev.Price, ev.Timestamp.Unix(), flag,
		); err != nil {
			return fmt.Errorf("insert crossover event: %w", err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Info("closing sqlite recorder")
	return r.db.Close()
}
