// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search lists the most recent arXiv papers for a topic query.
// Requests are paced to the arXiv API terms of use (one request every three
// seconds) and 429/503 answers are retried with backoff.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pdiddy/paper-digest/pkg/types"
)

const (
	DefaultMaxResults = 5
	DefaultInterval   = 3 * time.Second
	defaultTimeout    = 30 * time.Second
	defaultUserAgent  = "paper-digest/0.1"
)

var (
	// ErrEmptyQuery is returned for a blank query.
	ErrEmptyQuery = errors.New("search query is empty")
	// ErrRateLimited is returned when arXiv keeps answering 429 after retries.
	ErrRateLimited = errors.New("arXiv rate limit exceeded (max 1 request per 3 seconds); wait 30 seconds and retry")
	// ErrNoResults is returned when the query matches no papers.
	ErrNoResults = errors.New("no papers found")
)

// Client queries the arXiv API.
type Client struct {
	HTTP       *http.Client
	UserAgent  string
	MaxRetries int
	MaxResults int
	Logger     *slog.Logger

	limiter *rate.Limiter
}

// New builds a Client from cfg, filling defaults for unset fields.
func New(cfg types.SearchConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		HTTP:       &http.Client{Timeout: timeout},
		UserAgent:  ua,
		MaxRetries: cfg.MaxRetries,
		MaxResults: maxResults,
		Logger:     logger,
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Recent returns up to maxResults papers matching query, newest submission
// first. A non-positive maxResults selects the client default.
func (c *Client) Recent(ctx context.Context, query string, maxResults int) ([]types.Paper, error) {
	query = strings.Join(strings.Fields(query), " ")
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if maxResults <= 0 {
		maxResults = c.MaxResults
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	papers, err := c.query(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}
	if len(papers) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoResults, query)
	}
	c.logger().Debug("search: listed papers", "query", query, "count", len(papers))
	return papers, nil
}

// Lookup returns the paper with the given arXiv identifier.
func (c *Client) Lookup(ctx context.Context, id string) (types.Paper, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return types.Paper{}, err
		}
	}
	papers, err := c.byID(ctx, id)
	if err != nil {
		return types.Paper{}, err
	}
	if len(papers) == 0 {
		return types.Paper{}, fmt.Errorf("%w for id %s", ErrNoResults, id)
	}
	return papers[0], nil
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
