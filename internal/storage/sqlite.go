// Package storage keeps the session ledger of finished rounds in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The ledger lives in memory and disappears when the process exits.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store manages the SQLite connection holding the session ledger.
type Store struct {
	db *sql.DB
}

// Round is one finished round.
type Round struct {
	ID        string // Assigned by SaveRound
	GameID    string
	Number    int // Round number within the session
	Score     int
	Caught    int
	Burnt     int
	Rocks     int
	Dropped   int
	Ticks     int
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the round lasted.
func (r Round) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// SessionStats contains aggregated statistics for a game in this session.
type SessionStats struct {
	GameID      string
	Rounds      int
	Best        int
	AvgScore    float64
	TotalCaught int
}

// OpenSession opens a fresh in-memory ledger.
func OpenSession() (*Store, error) {
	return Open(MemoryDSN)
}

// Open opens the database at dsn and runs migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			number INTEGER NOT NULL,
			score INTEGER NOT NULL,
			caught INTEGER NOT NULL DEFAULT 0,
			burnt INTEGER NOT NULL DEFAULT 0,
			rocks INTEGER NOT NULL DEFAULT 0,
			dropped INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			started_at INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(game_id, score DESC);
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

// SaveRound records a finished round and returns its generated ID.
func (s *Store) SaveRound(r Round) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO rounds
		 (id, game_id, number, score, caught, burnt, rocks, dropped, ticks, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.GameID, r.Number, r.Score,
		r.Caught, r.Burnt, r.Rocks, r.Dropped, r.Ticks,
		r.StartedAt.UnixMilli(), r.EndedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return id, nil
}

// Rounds retrieves the most recent rounds for the given game, newest first.
func (s *Store) Rounds(gameID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, number, score, caught, burnt, rocks, dropped, ticks, started_at, ended_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY number DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var started, ended int64
		if err := rows.Scan(
			&r.ID, &r.GameID, &r.Number, &r.Score,
			&r.Caught, &r.Burnt, &r.Rocks, &r.Dropped, &r.Ticks,
			&started, &ended,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.StartedAt = time.UnixMilli(started)
		r.EndedAt = time.UnixMilli(ended)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Best returns the highest score for the given game.
// Returns 0 if no rounds exist.
func (s *Store) Best(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for the given game.
func (s *Store) Stats(gameID string) (SessionStats, error) {
	stats := SessionStats{GameID: gameID}
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(caught), 0)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Rounds, &stats.Best, &stats.AvgScore, &stats.TotalCaught)
	if err != nil {
		return SessionStats{}, fmt.Errorf("storage: cannot get session stats: %w", err)
	}
	return stats, nil
}
