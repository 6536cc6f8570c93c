package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/courtside/courtside/src/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "courtside.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func slate(score int) []model.Game {
	return []model.Game{
		{
			ID:       "401",
			Status:   model.StatusLive,
			Period:   3,
			AwayTeam: model.Team{Tricode: "LAL", Score: score},
			HomeTeam: model.Team{Tricode: "BOS", Score: score + 4},
		},
	}
}

func TestSaveAndLatestGames(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	id, err := s.SaveGames(ctx, "2026-01-15", slate(80))
	if err != nil {
		t.Fatalf("SaveGames() error = %v", err)
	}
	if id == "" {
		t.Error("SaveGames() returned empty id")
	}

	games, takenAt, err := s.LatestGames(ctx, "2026-01-15")
	if err != nil {
		t.Fatalf("LatestGames() error = %v", err)
	}
	if len(games) != 1 || games[0].AwayTeam.Score != 80 {
		t.Errorf("LatestGames() = %+v, want the saved slate", games)
	}
	if takenAt.IsZero() {
		t.Error("LatestGames() taken_at is zero")
	}
}

func TestLatestGamesPrefersNewestSnapshot(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	if _, err := s.SaveGames(ctx, "2026-01-15", slate(80)); err != nil {
		t.Fatalf("SaveGames() error = %v", err)
	}
	if _, err := s.SaveGames(ctx, "2026-01-15", slate(92)); err != nil {
		t.Fatalf("SaveGames() error = %v", err)
	}

	games, _, err := s.LatestGames(ctx, "2026-01-15")
	if err != nil {
		t.Fatalf("LatestGames() error = %v", err)
	}
	if games[0].AwayTeam.Score != 92 {
		t.Errorf("away score = %d, want 92 (newest snapshot)", games[0].AwayTeam.Score)
	}
}

func TestLatestGamesIsolatesDates(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	if _, err := s.SaveGames(ctx, "2026-01-15", slate(80)); err != nil {
		t.Fatalf("SaveGames() error = %v", err)
	}

	_, _, err := s.LatestGames(ctx, "2026-01-16")
	if !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("LatestGames(other date) error = %v, want ErrNoSnapshot", err)
	}
}

func TestStandingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	_, _, err := s.LatestStandings(ctx)
	if !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("LatestStandings() on empty store error = %v, want ErrNoSnapshot", err)
	}

	rows := []model.Standing{
		{Tricode: "BOS", Conference: model.ConferenceEast, Wins: 30, Losses: 8, Rank: 1},
		{Tricode: "DEN", Conference: model.ConferenceWest, Wins: 28, Losses: 10, Rank: 1},
	}
	if _, err := s.SaveStandings(ctx, rows); err != nil {
		t.Fatalf("SaveStandings() error = %v", err)
	}

	got, _, err := s.LatestStandings(ctx)
	if err != nil {
		t.Fatalf("LatestStandings() error = %v", err)
	}
	if len(got) != 2 || got[0].Tricode != "BOS" || got[1].Wins != 28 {
		t.Errorf("LatestStandings() = %+v, want saved rows", got)
	}
}

func TestPruneDropsOldSnapshots(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	if _, err := s.SaveGames(ctx, "2026-01-15", slate(80)); err != nil {
		t.Fatalf("SaveGames() error = %v", err)
	}
	// Backdate a second snapshot past the retention horizon.
	old := time.Now().UTC().Add(-8 * 24 * time.Hour)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO game_snapshots (id, date, taken_at, payload)
		VALUES ('snap_old', '2026-01-07', ?, '[]')
	`, old)
	if err != nil {
		t.Fatalf("backdate insert error = %v", err)
	}

	n, err := s.Prune(ctx, DefaultRetention)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Prune() = %d rows, want 1", n)
	}

	if _, _, err := s.LatestGames(ctx, "2026-01-15"); err != nil {
		t.Errorf("fresh snapshot pruned: %v", err)
	}
	if _, _, err := s.LatestGames(ctx, "2026-01-07"); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("old snapshot survived, error = %v", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "courtside.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := s.SaveGames(ctx, "2026-01-15", slate(80)); err != nil {
		t.Fatalf("SaveGames() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()

	games, _, err := s.LatestGames(ctx, "2026-01-15")
	if err != nil {
		t.Fatalf("LatestGames() after reopen error = %v", err)
	}
	if len(games) != 1 {
		t.Errorf("games after reopen = %d, want 1", len(games))
	}
}
