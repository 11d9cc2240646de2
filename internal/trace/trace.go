// Package trace persists decision provenance in SQLite: one row per
// selection tick and one per daily mood pick, queryable by recency or by
// chosen action.
package trace

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/kittleik/intrusive-thoughts/internal/selector"
	"github.com/kittleik/intrusive-thoughts/internal/thought"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS decision_log (
	decision_id    TEXT PRIMARY KEY,
	mood_id        TEXT,
	chosen_id      TEXT NOT NULL,
	final_weight   REAL NOT NULL,
	pool_size      INTEGER NOT NULL,
	candidates_json TEXT,
	skipped_json   TEXT,
	created_at     TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_decision_chosen ON decision_log(chosen_id);

CREATE TABLE IF NOT EXISTS mood_log (
	pick_id       TEXT PRIMARY KEY,
	mood_id       TEXT NOT NULL,
	reason        TEXT,
	weights_json  TEXT,
	created_at    TEXT NOT NULL
);
`

// #endregion schema

// #region store

// Store manages the decision trace database.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database and runs migrations.
func Open(dbPath string) (*Store, error) {
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

// DB exposes the raw connection for inspection tooling.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion store

// #region tick-records

// TickRecord is one persisted selection-tick decision.
type TickRecord struct {
	DecisionID     string    `json:"decision_id"`
	MoodID         string    `json:"mood_id"`
	ChosenID       string    `json:"chosen_id"`
	FinalWeight    float64   `json:"final_weight"`
	PoolSize       int       `json:"pool_size"`
	CandidatesJSON string    `json:"candidates_json,omitempty"`
	SkippedJSON    string    `json:"skipped_json,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// RecordTick stores a selection result with its full candidate breakdown.
func (s *Store) RecordTick(moodID string, sel thought.Selection) (TickRecord, error) {
	candidatesJSON, err := json.Marshal(sel.AllCandidates)
	if err != nil {
		return TickRecord{}, fmt.Errorf("marshal candidates: %w", err)
	}
	skippedJSON, err := json.Marshal(sel.SkippedThoughts)
	if err != nil {
		return TickRecord{}, fmt.Errorf("marshal skipped: %w", err)
	}

	rec := TickRecord{
		DecisionID:     uuid.NewString(),
		MoodID:         moodID,
		ChosenID:       sel.Chosen.ID,
		FinalWeight:    sel.Chosen.FinalWeight,
		PoolSize:       sel.PoolSize,
		CandidatesJSON: string(candidatesJSON),
		SkippedJSON:    string(skippedJSON),
		CreatedAt:      time.Now().UTC(),
	}

	_, err = s.db.Exec(
		`INSERT INTO decision_log (decision_id, mood_id, chosen_id, final_weight, pool_size, candidates_json, skipped_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.DecisionID, nullIfEmpty(rec.MoodID), rec.ChosenID, rec.FinalWeight,
		rec.PoolSize, rec.CandidatesJSON, rec.SkippedJSON,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return TickRecord{}, fmt.Errorf("record tick: %w", err)
	}
	return rec, nil
}

// RecentTicks returns the n most recent tick decisions, newest first.
func (s *Store) RecentTicks(n int) ([]TickRecord, error) {
	rows, err := s.db.Query(
		`SELECT decision_id, COALESCE(mood_id, ''), chosen_id, final_weight, pool_size,
		        COALESCE(candidates_json, ''), COALESCE(skipped_json, ''), created_at
		 FROM decision_log ORDER BY created_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("list ticks: %w", err)
	}
	defer rows.Close()
	return scanTicks(rows)
}

// FindByChosen returns the most recent decision that picked the given
// action id.
func (s *Store) FindByChosen(actionID string) (TickRecord, bool, error) {
	rows, err := s.db.Query(
		`SELECT decision_id, COALESCE(mood_id, ''), chosen_id, final_weight, pool_size,
		        COALESCE(candidates_json, ''), COALESCE(skipped_json, ''), created_at
		 FROM decision_log WHERE chosen_id = ? ORDER BY created_at DESC LIMIT 1`, actionID)
	if err != nil {
		return TickRecord{}, false, fmt.Errorf("find decision: %w", err)
	}
	defer rows.Close()

	recs, err := scanTicks(rows)
	if err != nil || len(recs) == 0 {
		return TickRecord{}, false, err
	}
	return recs[0], true, nil
}

func scanTicks(rows *sql.Rows) ([]TickRecord, error) {
	var out []TickRecord
	for rows.Next() {
		var rec TickRecord
		var created string
		if err := rows.Scan(&rec.DecisionID, &rec.MoodID, &rec.ChosenID, &rec.FinalWeight,
			&rec.PoolSize, &rec.CandidatesJSON, &rec.SkippedJSON, &created); err != nil {
			return nil, fmt.Errorf("scan tick: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// #endregion tick-records

// #region mood-records

// MoodRecord is one persisted daily mood pick.
type MoodRecord struct {
	PickID      string    `json:"pick_id"`
	MoodID      string    `json:"mood_id"`
	Reason      string    `json:"reason"`
	WeightsJSON string    `json:"weights_json,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordMood stores a daily mood pick with its selection trace.
func (s *Store) RecordMood(moodID, reasonText string, tr selector.Trace) (MoodRecord, error) {
	weightsJSON, err := json.Marshal(tr)
	if err != nil {
		return MoodRecord{}, fmt.Errorf("marshal trace: %w", err)
	}

	rec := MoodRecord{
		PickID:      uuid.NewString(),
		MoodID:      moodID,
		Reason:      reasonText,
		WeightsJSON: string(weightsJSON),
		CreatedAt:   time.Now().UTC(),
	}
	_, err = s.db.Exec(
		`INSERT INTO mood_log (pick_id, mood_id, reason, weights_json, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.PickID, rec.MoodID, nullIfEmpty(rec.Reason), rec.WeightsJSON,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return MoodRecord{}, fmt.Errorf("record mood: %w", err)
	}
	return rec, nil
}

// RecentMoods returns the n most recent mood picks, newest first.
func (s *Store) RecentMoods(n int) ([]MoodRecord, error) {
	rows, err := s.db.Query(
		`SELECT pick_id, mood_id, COALESCE(reason, ''), COALESCE(weights_json, ''), created_at
		 FROM mood_log ORDER BY created_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("list moods: %w", err)
	}
	defer rows.Close()

	var out []MoodRecord
	for rows.Next() {
		var rec MoodRecord
		var created string
		if err := rows.Scan(&rec.PickID, &rec.MoodID, &rec.Reason, &rec.WeightsJSON, &created); err != nil {
			return nil, fmt.Errorf("scan mood: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// #endregion mood-records

// #region helpers

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
