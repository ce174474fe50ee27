// Package journal persists pipeline runs and intent records in SQLite.
// The core transforms stay pure; the journal is an optional sink callers
// attach around them.
package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/coglab/resonance/internal/intentlog"
	"github.com/coglab/resonance/internal/pipeline"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id       TEXT PRIMARY KEY,
	config_json  TEXT NOT NULL,
	state_count  INTEGER NOT NULL,
	score_count  INTEGER NOT NULL,
	drift_json   TEXT NOT NULL,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS intent_log (
	id            TEXT PRIMARY KEY,
	timestamp     TEXT NOT NULL,
	trace_json    TEXT NOT NULL,
	intent_weight REAL NOT NULL,
	tags_json     TEXT NOT NULL,
	created_at    TEXT NOT NULL
);
`
// #endregion schema

// #region types

// RunEntry is one row of the runs table.
type RunEntry struct {
	RunID      string
	Config     pipeline.Config
	StateCount int
	ScoreCount int
	Drift      []float64
	CreatedAt  time.Time
}

// #endregion types

// #region store-struct

// Store manages the journal database.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion constructor

// #region runs

// LogRun records one pipeline run. stateCount is the input sequence length.
func (s *Store) LogRun(result pipeline.Result, config pipeline.Config, stateCount int) error {
	configJSON, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	driftJSON, err := json.Marshal(result.Drift)
	if err != nil {
		return fmt.Errorf("marshal drift: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO runs (run_id, config_json, state_count, score_count, drift_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		result.RunID,
		string(configJSON),
		stateCount,
		len(result.Scores),
		string(driftJSON),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// ListRuns returns all recorded runs, oldest first.
func (s *Store) ListRuns() ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, config_json, state_count, score_count, drift_json, created_at
		 FROM runs ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var configJSON, driftJSON, createdAt string
		if err := rows.Scan(&e.RunID, &configJSON, &e.StateCount, &e.ScoreCount, &driftJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if err := json.Unmarshal([]byte(configJSON), &e.Config); err != nil {
			return nil, fmt.Errorf("unmarshal config for run %s: %w", e.RunID, err)
		}
		if err := json.Unmarshal([]byte(driftJSON), &e.Drift); err != nil {
			return nil, fmt.Errorf("unmarshal drift for run %s: %w", e.RunID, err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion runs

// #region intents

// LogIntent persists one intent record.
func (s *Store) LogIntent(rec intentlog.Record) error {
	traceJSON, err := json.Marshal(rec.ReasoningTrace)
	if err != nil {
		return fmt.Errorf("marshal trace: %w", err)
	}
	tagsJSON, err := json.Marshal(rec.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO intent_log (id, timestamp, trace_json, intent_weight, tags_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Timestamp,
		string(traceJSON),
		rec.IntentWeight,
		string(tagsJSON),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert intent record: %w", err)
	}
	return nil
}

// ListIntents returns all intent records in ID order. IDs are ULIDs, so
// this is also creation order.
func (s *Store) ListIntents() ([]intentlog.Record, error) {
	rows, err := s.db.Query(
		`SELECT id, timestamp, trace_json, intent_weight, tags_json
		 FROM intent_log ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query intent log: %w", err)
	}
	defer rows.Close()

	var records []intentlog.Record
	for rows.Next() {
		var rec intentlog.Record
		var traceJSON, tagsJSON string
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &traceJSON, &rec.IntentWeight, &tagsJSON); err != nil {
			return nil, fmt.Errorf("scan intent record: %w", err)
		}
		if err := json.Unmarshal([]byte(traceJSON), &rec.ReasoningTrace); err != nil {
			return nil, fmt.Errorf("unmarshal trace for record %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal([]byte(tagsJSON), &rec.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags for record %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion intents
