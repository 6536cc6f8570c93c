// Package httputil builds the HTTP client everything in the dashboard
// talks through: sane timeouts, connection reuse, and an optional
// SOCKS5 proxy for boxes that can only reach the service through one.
package httputil

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/proxy"
)

// DefaultTimeout bounds a whole request; the dashboard would rather
// show stale data than hang a refresh tick.
const DefaultTimeout = 10 * time.Second

// Options tunes the shared client.
type Options struct {
	Timeout time.Duration
	SOCKS   string // host:port of a SOCKS5 proxy; empty dials direct
}

// NewClient builds an *http.Client from options.
func NewClient(opts Options) (*http.Client, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
	}

	if opts.SOCKS != "" {
		dialer, err := proxy.SOCKS5("tcp", opts.SOCKS, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("httputil: socks5 %s: %w", opts.SOCKS, err)
		}
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.Dial = dialer.Dial
		}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}, nil
}
