// Package persistence archives finished runs and their ledgers in SQLite so
// past games can be listed and re-scored. Archived runs are never resumed.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/backlot-mogul/internal/ledger"
)

// DB wraps a SQLite connection for the run archive.
type DB struct {
	conn *sqlx.DB
}

// Run is one archived game.
type Run struct {
	ID         string `db:"id"`
	Seed       int64  `db:"seed"`
	Films      int    `db:"films"`
	Style      string `db:"style"`
	Reputation int    `db:"reputation"`
	Treasury   int    `db:"treasury"`
	FinishedAt int64  `db:"finished_at"` // Unix seconds
}

type entryRow struct {
	Turn      int    `db:"turn"`
	Film      int    `db:"film"`
	Beat      string `db:"beat"`
	Tag       string `db:"tag"`
	Actor     string `db:"actor"`
	Detail    string `db:"detail"`
	MetaJSON  string `db:"meta_json"`
	Sentiment int    `db:"sentiment"`
	Surfaced  bool   `db:"surfaced"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		films INTEGER NOT NULL,
		style TEXT NOT NULL,
		reputation INTEGER NOT NULL,
		treasury INTEGER NOT NULL,
		finished_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS entries (
		run_id TEXT NOT NULL REFERENCES runs(id),
		turn INTEGER NOT NULL,
		film INTEGER NOT NULL,
		beat TEXT NOT NULL,
		tag TEXT NOT NULL,
		actor TEXT NOT NULL,
		detail TEXT NOT NULL,
		meta_json TEXT NOT NULL,
		sentiment INTEGER NOT NULL,
		surfaced INTEGER NOT NULL,
		PRIMARY KEY (run_id, turn)
	);

	CREATE INDEX IF NOT EXISTS idx_entries_tag ON entries(tag);
	CREATE INDEX IF NOT EXISTS idx_runs_finished ON runs(finished_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun writes a run and its whole ledger in one transaction. Saving the
// same run id again replaces it.
func (db *DB) SaveRun(run Run, l ledger.Ledger) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries WHERE run_id = ?", run.ID); err != nil {
		return err
	}
	_, err = tx.NamedExec(`INSERT OR REPLACE INTO runs
		(id, seed, films, style, reputation, treasury, finished_at)
		VALUES (:id, :seed, :films, :style, :reputation, :treasury, :finished_at)`, run)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.Preparex(`INSERT INTO entries
		(run_id, turn, film, beat, tag, actor, detail, meta_json, sentiment, surfaced)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range l {
		metaJSON, err := json.Marshal(e.Meta)
		if err != nil {
			return fmt.Errorf("encode meta for turn %d: %w", e.Turn, err)
		}
		_, err = stmt.Exec(
			run.ID, e.Turn, e.Film, string(e.Beat), string(e.Tag),
			e.Actor, e.Detail, string(metaJSON), e.Sentiment, e.Surfaced,
		)
		if err != nil {
			return fmt.Errorf("insert entry %d: %w", e.Turn, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Info("run archived", "run", run.ID, "entries", len(l), "style", run.Style)
	return nil
}

// Runs returns the most recent runs, newest first.
func (db *DB) Runs(limit int) ([]Run, error) {
	var runs []Run
	err := db.conn.Select(&runs,
		"SELECT id, seed, films, style, reputation, treasury, finished_at FROM runs ORDER BY finished_at DESC, id LIMIT ?",
		limit,
	)
	return runs, err
}

// Ledger loads a run's entries in turn order.
func (db *DB) Ledger(runID string) (ledger.Ledger, error) {
	var rows []entryRow
	err := db.conn.Select(&rows,
		`SELECT turn, film, beat, tag, actor, detail, meta_json, sentiment, surfaced
		FROM entries WHERE run_id = ? ORDER BY turn`,
		runID,
	)
	if err != nil {
		return nil, err
	}

	l := make(ledger.Ledger, 0, len(rows))
	for _, r := range rows {
		e := ledger.Entry{
			Turn:      r.Turn,
			Film:      r.Film,
			Beat:      ledger.Beat(r.Beat),
			Tag:       ledger.Tag(r.Tag),
			Actor:     r.Actor,
			Detail:    r.Detail,
			Sentiment: r.Sentiment,
			Surfaced:  r.Surfaced,
		}
		if err := json.Unmarshal([]byte(r.MetaJSON), &e.Meta); err != nil {
			return nil, fmt.Errorf("decode meta for turn %d: %w", r.Turn, err)
		}
		l = append(l, e)
	}
	return l, nil
}
