// Package store keeps snapshots of service responses in a local
// SQLite database, so the dashboard can show the last known slate and
// standings while the data service is unreachable.
package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/courtside/courtside/src/model"
)

// ErrNoSnapshot reports that nothing has been saved yet for the query.
var ErrNoSnapshot = errors.New("store: no snapshot")

// DefaultRetention is how long snapshots are kept by Prune callers
// that pass no explicit horizon.
const DefaultRetention = 7 * 24 * time.Hour

const openTimeout = 5 * time.Second

// Store is a snapshot database. Safe for concurrent use.
type Store struct {
	db      *sql.DB
	mu      sync.Mutex
	entropy io.Reader
}

// Open opens (or creates) the snapshot database at path and prepares
// the schema. The caller owns the parent directory.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// One writer at a time; this is a single-process client database.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: %s: %w", pragma, err)
		}
	}

	s := &Store{db: db, entropy: ulid.Monotonic(rand.Reader, 0)}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS game_snapshots (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			taken_at DATETIME NOT NULL,
			payload TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("store: create game_snapshots: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_game_snapshots_date
		ON game_snapshots(date, taken_at)
	`)
	if err != nil {
		return fmt.Errorf("store: index game_snapshots: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS standings_snapshots (
			id TEXT PRIMARY KEY,
			taken_at DATETIME NOT NULL,
			payload TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("store: create standings_snapshots: %w", err)
	}
	return nil
}

// newID mints a sortable snapshot id.
func (s *Store) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return "snap_" + ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// SaveGames stores the slate for a date and returns the snapshot id.
func (s *Store) SaveGames(ctx context.Context, date string, games []model.Game) (string, error) {
	payload, err := json.Marshal(games)
	if err != nil {
		return "", fmt.Errorf("store: encode games: %w", err)
	}
	id := s.newID()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO game_snapshots (id, date, taken_at, payload)
		VALUES (?, ?, ?, ?)
	`, id, date, time.Now().UTC(), string(payload))
	if err != nil {
		return "", fmt.Errorf("store: save games: %w", err)
	}
	return id, nil
}

// LatestGames returns the newest snapshot for a date and when it was
// taken. ErrNoSnapshot when the date has never been saved.
func (s *Store) LatestGames(ctx context.Context, date string) ([]model.Game, time.Time, error) {
	var (
		takenAt time.Time
		payload string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT taken_at, payload FROM game_snapshots
		WHERE date = ?
		ORDER BY taken_at DESC, id DESC
		LIMIT 1
	`, date).Scan(&takenAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("store: load games: %w", err)
	}

	var games []model.Game
	if err := json.Unmarshal([]byte(payload), &games); err != nil {
		return nil, time.Time{}, fmt.Errorf("store: decode games: %w", err)
	}
	return games, takenAt, nil
}

// SaveStandings stores the current conference standings.
func (s *Store) SaveStandings(ctx context.Context, rows []model.Standing) (string, error) {
	payload, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("store: encode standings: %w", err)
	}
	id := s.newID()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO standings_snapshots (id, taken_at, payload)
		VALUES (?, ?, ?)
	`, id, time.Now().UTC(), string(payload))
	if err != nil {
		return "", fmt.Errorf("store: save standings: %w", err)
	}
	return id, nil
}

// LatestStandings returns the newest standings snapshot.
func (s *Store) LatestStandings(ctx context.Context) ([]model.Standing, time.Time, error) {
	var (
		takenAt time.Time
		payload string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT taken_at, payload FROM standings_snapshots
		ORDER BY taken_at DESC, id DESC
		LIMIT 1
	`).Scan(&takenAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("store: load standings: %w", err)
	}

	var rows []model.Standing
	if err := json.Unmarshal([]byte(payload), &rows); err != nil {
		return nil, time.Time{}, fmt.Errorf("store: decode standings: %w", err)
	}
	return rows, takenAt, nil
}

// Prune drops snapshots older than the retention horizon and reports
// how many rows went away.
func (s *Store) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		retention = DefaultRetention
	}
	cutoff := time.Now().UTC().Add(-retention)

	var total int64
	for _, table := range []string{"game_snapshots", "standings_snapshots"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE taken_at < ?`, cutoff)
		if err != nil {
			return total, fmt.Errorf("store: prune %s: %w", table, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			total += n
		}
	}
	return total, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }
