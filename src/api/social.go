package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/courtside/courtside/src/model"
)

// DefaultPostLimit matches the service's own sample size.
const DefaultPostLimit = 5

// Heat returns the discussion heat for a matchup as the service sent
// it. A bare count without a level passes through; the social package
// classifies it against the count thresholds.
func (c *Client) Heat(ctx context.Context, team1, team2 string) (model.Heat, error) {
	path := "/social/heat/" + url.PathEscape(team1) + "/" + url.PathEscape(team2)
	body, err := c.get(ctx, path)
	if err != nil {
		return model.Heat{}, fmt.Errorf("api: heat: %w", err)
	}
	var heat model.Heat
	if err := json.Unmarshal(body, &heat); err != nil {
		return model.Heat{}, fmt.Errorf("api: heat: decode: %w", err)
	}
	return heat, nil
}

type postsResponse struct {
	Tweets []model.SocialPost `json:"tweets"`
}

// Posts returns up to limit sampled posts about a matchup.
func (c *Client) Posts(ctx context.Context, team1, team2 string, limit int) ([]model.SocialPost, error) {
	if limit <= 0 {
		limit = DefaultPostLimit
	}
	path := "/social/tweets/" + url.PathEscape(team1) + "/" + url.PathEscape(team2) +
		"?limit=" + strconv.Itoa(limit)
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("api: posts: %w", err)
	}
	var resp postsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("api: posts: decode: %w", err)
	}
	return resp.Tweets, nil
}
