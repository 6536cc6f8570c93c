package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/courtside/courtside/src/model"
)

type oddsBookResponse struct {
	Odds  model.OddsBook `json:"odds"`
	Count int            `json:"count"`
}

// OddsBook returns every matchup's win-probability entry, keyed
// AWAY_HOME_YYYY-MM-DD.
func (c *Client) OddsBook(ctx context.Context) (model.OddsBook, error) {
	body, err := c.get(ctx, "/api/polymarket/odds")
	if err != nil {
		return nil, fmt.Errorf("api: odds: %w", err)
	}
	var resp oddsBookResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("api: odds: decode: %w", err)
	}
	if resp.Odds == nil {
		resp.Odds = model.OddsBook{}
	}
	return resp.Odds, nil
}

type gameOddsResponse struct {
	Odds  *model.Odds `json:"odds"`
	Found bool        `json:"found"`
}

// GameOdds returns the entry for one matchup on one date. The second
// return is false when the market has no line for it.
func (c *Client) GameOdds(ctx context.Context, away, home, date string) (*model.Odds, bool, error) {
	path := fmt.Sprintf("/api/polymarket/odds/%s/%s/%s",
		url.PathEscape(away), url.PathEscape(home), url.PathEscape(date))
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, false, fmt.Errorf("api: game odds: %w", err)
	}
	var resp gameOddsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, false, fmt.Errorf("api: game odds: decode: %w", err)
	}
	if !resp.Found || resp.Odds == nil {
		return nil, false, nil
	}
	return resp.Odds, true, nil
}

type propsResponse struct {
	Props []model.Prop `json:"props"`
	Count int          `json:"count"`
}

// Props returns the season-long markets (championship, MVP, ...).
func (c *Client) Props(ctx context.Context) ([]model.Prop, error) {
	body, err := c.get(ctx, "/api/polymarket/props")
	if err != nil {
		return nil, fmt.Errorf("api: props: %w", err)
	}
	var resp propsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("api: props: decode: %w", err)
	}
	return resp.Props, nil
}

type historyResponse struct {
	History []model.PricePoint `json:"history"`
	Count   int                `json:"count"`
}

// PriceHistory returns a market token's recent price samples in time
// order.
func (c *Client) PriceHistory(ctx context.Context, clobID string) ([]model.PricePoint, error) {
	body, err := c.get(ctx, "/api/polymarket/history/"+url.PathEscape(clobID))
	if err != nil {
		return nil, fmt.Errorf("api: history: %w", err)
	}
	var resp historyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("api: history: decode: %w", err)
	}
	return resp.History, nil
}
