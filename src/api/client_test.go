package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestHeaders(t *testing.T) {
	var gotUA, gotAccept, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, srv.Client())
	info, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", info.Status)

	assert.Contains(t, gotUA, "courtside-cli/")
	assert.Equal(t, "application/json", gotAccept)
	_, err = uuid.Parse(gotReqID)
	assert.NoError(t, err, "X-Request-ID should be a UUID, got %q", gotReqID)
}

func TestHealthDegraded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"degraded","checks":{"nba":"down"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, srv.Client())
	info, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "degraded", info.Status, "degraded status must pass through untouched")
	assert.Equal(t, "down", info.Checks["nba"])

	dead := New("http://127.0.0.1:1", nil, nil)
	_, err = dead.Health(context.Background())
	assert.Error(t, err)
}

func TestFailoverToFallback(t *testing.T) {
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"games":[{"gameId":"401"}],"count":1}`))
	}))
	defer fallback.Close()

	c := New("http://127.0.0.1:1", []string{fallback.URL}, nil)
	games, err := c.GamesToday(context.Background())
	require.NoError(t, err, "fallback should have answered")
	require.Len(t, games, 1)
	assert.Equal(t, "401", games[0].ID)
}

func TestFailoverReportsPrimaryError(t *testing.T) {
	c := New("http://127.0.0.1:1", []string{"http://127.0.0.1:2"}, nil)
	_, err := c.GamesToday(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api: games")
}

func TestServiceErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nba upstream timeout", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, nil, srv.Client())
	_, err := c.LiveGames(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service error 502")
	assert.Contains(t, err.Error(), "nba upstream timeout")
}

func TestContextCancelSkipsFallbacks(t *testing.T) {
	hits := 0
	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{}`))
	}))
	defer fallback.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New("http://127.0.0.1:1", []string{fallback.URL}, nil)
	_, err := c.GamesToday(ctx)
	require.Error(t, err)
	assert.Zero(t, hits, "cancelled context must not hit fallbacks")
}
