// Package storage persists completed sessions and best records in
// SQLite. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
// The game core keeps its own in-memory record table; this store is
// the collaborator that seeds it at startup and journals results.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/stroop/internal/game"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SessionEntry is one completed session as stored.
type SessionEntry struct {
	ID            int64
	Mode          game.Mode
	Score         int
	Total         int
	Accuracy      float64
	AvgReactionMs int64
	CreatedAt     time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			avg_reaction_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_mode ON sessions(mode);
		CREATE INDEX IF NOT EXISTS idx_sessions_best ON sessions(mode, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a completed session. Returns the inserted row ID.
func (s *Store) SaveResult(res game.Result) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (mode, score, total, accuracy, avg_reaction_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		string(res.Mode), res.Score, res.Total, res.Accuracy, res.AvgReaction.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestRecords returns the best stored session per mode, for seeding the
// in-memory record table at startup.
func (s *Store) BestRecords() (game.Records, error) {
	rows, err := s.db.Query(
		`SELECT mode, score, accuracy, avg_reaction_ms
		 FROM sessions s1
		 WHERE id = (
			SELECT id FROM sessions s2
			WHERE s2.mode = s1.mode
			ORDER BY s2.score DESC, s2.id ASC
			LIMIT 1
		 )`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best records: %w", err)
	}
	defer rows.Close()

	records := game.NewRecords()
	for rows.Next() {
		var mode string
		var score int
		var accuracy float64
		var avgMs int64
		if err := rows.Scan(&mode, &score, &accuracy, &avgMs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records.Seed(game.Mode(mode), game.Record{
			Score:       score,
			Accuracy:    accuracy,
			AvgReaction: time.Duration(avgMs) * time.Millisecond,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// History retrieves the most recent sessions for a mode, newest first.
func (s *Store) History(mode game.Mode, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, total, accuracy, avg_reaction_ms, created_at
		 FROM sessions
		 WHERE mode = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		string(mode), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query history: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		e, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// TopSessions retrieves the best sessions for a mode, highest score first.
func (s *Store) TopSessions(mode game.Mode, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, score, total, accuracy, avg_reaction_ms, created_at
		 FROM sessions
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		string(mode), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query top sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		e, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// SessionCount returns how many sessions were completed in a mode.
func (s *Store) SessionCount(mode game.Mode) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sessions WHERE mode = ?", string(mode),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count sessions: %w", err)
	}
	return count, nil
}

func scanSession(rows *sql.Rows) (SessionEntry, error) {
	var e SessionEntry
	var mode string
	var createdAt any
	if err := rows.Scan(&e.ID, &mode, &e.Score, &e.Total, &e.Accuracy, &e.AvgReactionMs, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.Mode = game.Mode(mode)

	// The driver may hand back time.Time or a string.
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}
