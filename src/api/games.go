package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/courtside/courtside/src/model"
)

type gamesResponse struct {
	Games []model.Game `json:"games"`
	Count int          `json:"count"`
}

// GamesToday returns the schedule for the service's current date.
func (c *Client) GamesToday(ctx context.Context) ([]model.Game, error) {
	return c.fetchGames(ctx, "/games/today", "games")
}

// GamesByDate returns the schedule for a YYYY-MM-DD date.
func (c *Client) GamesByDate(ctx context.Context, date string) ([]model.Game, error) {
	return c.fetchGames(ctx, "/games/date/"+url.PathEscape(date), "games by date")
}

// LiveGames returns only the games currently in progress.
func (c *Client) LiveGames(ctx context.Context) ([]model.Game, error) {
	return c.fetchGames(ctx, "/games/live", "live games")
}

func (c *Client) fetchGames(ctx context.Context, path, op string) ([]model.Game, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("api: %s: %w", op, err)
	}
	var resp gamesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("api: %s: decode: %w", op, err)
	}
	games := resp.Games
	for i := range games {
		normalizeGame(&games[i])
	}
	return games, nil
}

// normalizeGame fills the holes the service is allowed to leave, so
// views never re-check them.
func normalizeGame(g *model.Game) {
	if g.Status < model.StatusScheduled || g.Status > model.StatusFinal {
		g.Status = model.StatusScheduled
	}
	if g.StatusText == "" {
		g.StatusText = g.Status.String()
	}
	if g.Period < 0 {
		g.Period = 0
	}
	if g.HomeTeam.Score < 0 {
		g.HomeTeam.Score = 0
	}
	if g.AwayTeam.Score < 0 {
		g.AwayTeam.Score = 0
	}
}

type teamsResponse struct {
	Teams []model.Team `json:"teams"`
	Count int          `json:"count"`
}

// Teams returns the league's team directory.
func (c *Client) Teams(ctx context.Context) ([]model.Team, error) {
	body, err := c.get(ctx, "/games/teams")
	if err != nil {
		return nil, fmt.Errorf("api: teams: %w", err)
	}
	var resp teamsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("api: teams: decode: %w", err)
	}
	return resp.Teams, nil
}

// BoxScore returns per-player statistics for one game.
func (c *Client) BoxScore(ctx context.Context, gameID string) (*model.BoxScore, error) {
	body, err := c.get(ctx, "/games/boxscore/"+url.PathEscape(gameID))
	if err != nil {
		return nil, fmt.Errorf("api: boxscore: %w", err)
	}
	var box model.BoxScore
	if err := json.Unmarshal(body, &box); err != nil {
		return nil, fmt.Errorf("api: boxscore: decode: %w", err)
	}
	if box.GameID == "" {
		box.GameID = gameID
	}
	return &box, nil
}

type playsResponse struct {
	Plays []model.PlayEvent `json:"plays"`
	Count int               `json:"count"`
}

// PlayByPlay returns a game's event feed, most recent last.
func (c *Client) PlayByPlay(ctx context.Context, gameID string) ([]model.PlayEvent, error) {
	body, err := c.get(ctx, "/games/playbyplay/"+url.PathEscape(gameID))
	if err != nil {
		return nil, fmt.Errorf("api: playbyplay: %w", err)
	}
	var resp playsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("api: playbyplay: decode: %w", err)
	}
	return resp.Plays, nil
}

type standingsResponse struct {
	Standings []model.Standing `json:"standings"`
	Count     int              `json:"count"`
}

// Standings returns both conferences' records.
func (c *Client) Standings(ctx context.Context) ([]model.Standing, error) {
	body, err := c.get(ctx, "/games/standings")
	if err != nil {
		return nil, fmt.Errorf("api: standings: %w", err)
	}
	var resp standingsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("api: standings: decode: %w", err)
	}
	return resp.Standings, nil
}
