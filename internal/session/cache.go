// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the per-session results of the expensive paper
// operations: teaser figures, LLM summaries and hyperparameter cards. A
// Cache lives as long as its owner and is never evicted. Negative teaser
// and hyperparameter results are kept so a paper without a figure or text
// is not downloaded twice.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/pdiddy/paper-digest/internal/experiment"
	"github.com/pdiddy/paper-digest/internal/fetch"
	"github.com/pdiddy/paper-digest/internal/teaser"
	"github.com/pdiddy/paper-digest/pkg/types"
)

// entry is a memoized result. err is only ever a negative-result sentinel.
type entry[T any] struct {
	val T
	err error
}

// Cache memoizes per-paper results for one session. It is safe for
// concurrent use; concurrent requests for the same key share one call.
type Cache struct {
	id     string
	logger *slog.Logger

	mu          sync.Mutex
	teasers     map[string]entry[*types.ExtractedImage]
	summaries   map[string]entry[string]
	hyperparams map[string]entry[string]

	group singleflight.Group
}

// New returns an empty cache with a fresh session id.
func New(logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	return &Cache{
		id:          id,
		logger:      logger.With("session", id),
		teasers:     make(map[string]entry[*types.ExtractedImage]),
		summaries:   make(map[string]entry[string]),
		hyperparams: make(map[string]entry[string]),
	}
}

// ID returns the session identifier.
func (c *Cache) ID() string { return c.id }

// Teaser returns the cached teaser for paperID, calling compute on a miss.
// A teaser.ErrNotFound result is cached and returned on later calls unless
// it came from a failed download, which is retried on the next call.
func (c *Cache) Teaser(paperID string, compute func() (*types.ExtractedImage, error)) (*types.ExtractedImage, error) {
	return lookup(c, c.teasers, "teaser:"+paperID, func(err error) bool {
		return errors.Is(err, teaser.ErrNotFound) && !errors.Is(err, fetch.ErrNotFound)
	}, compute)
}

// Summary returns the cached summary of paperID in lang. Summaries are keyed
// by paper and language; failures are never cached.
func (c *Cache) Summary(paperID, lang string, compute func() (string, error)) (string, error) {
	return lookup(c, c.summaries, SummaryKey(paperID, lang), nil, compute)
}

// Hyperparams returns the cached hyperparameter card for paperID. An
// experiment.ErrNoText result is cached.
func (c *Cache) Hyperparams(paperID string, compute func() (string, error)) (string, error) {
	return lookup(c, c.hyperparams, "hyperparams:"+paperID, func(err error) bool {
		return errors.Is(err, experiment.ErrNoText)
	}, compute)
}

// SummaryKey is the cache key of a summary: the paper id and the language.
func SummaryKey(paperID, lang string) string {
	return "summary:" + paperID + "_" + lang
}

// Len returns the number of cached entries of each kind.
func (c *Cache) Len() (teasers, summaries, hyperparams int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.teasers), len(c.summaries), len(c.hyperparams)
}

func lookup[T any](c *Cache, m map[string]entry[T], key string, negative func(error) bool, compute func() (T, error)) (T, error) {
	c.mu.Lock()
	if e, ok := m[key]; ok {
		c.mu.Unlock()
		c.logger.Debug("session: cache hit", "key", key)
		return e.val, e.err
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(key, func() (any, error) {
		val, err := compute()
		if err == nil || (negative != nil && negative(err)) {
			c.mu.Lock()
			m[key] = entry[T]{val: val, err: err}
			c.mu.Unlock()
		}
		return val, err
	})
	val, _ := v.(T)
	return val, err
}

// Digest bundles the per-paper results shown for one listing row.
type Digest struct {
	Paper      types.Paper
	Summary    string
	SummaryErr error
	Teaser     *types.ExtractedImage
	TeaserErr  error
}

// Digester computes digests for papers through a Cache.
type Digester struct {
	Cache     *Cache
	Summarize func(ctx context.Context, p types.Paper, lang string) (string, error)
	Teaser    func(ctx context.Context, p types.Paper) (*types.ExtractedImage, error)
}

// Digest returns the summary and teaser of p. Either function may be nil to
// skip that part. Failures are reported in the Digest, not returned, so one
// paper never hides the rest of a listing.
func (d *Digester) Digest(ctx context.Context, p types.Paper, lang string) Digest {
	out := Digest{Paper: p}
	if d.Summarize != nil {
		out.Summary, out.SummaryErr = d.Cache.Summary(p.ID, lang, func() (string, error) {
			return d.Summarize(ctx, p, lang)
		})
	}
	if d.Teaser != nil {
		out.Teaser, out.TeaserErr = d.Cache.Teaser(p.ID, func() (*types.ExtractedImage, error) {
			return d.Teaser(ctx, p)
		})
	}
	return out
}
