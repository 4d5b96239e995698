// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm talks to an OpenAI-compatible chat-completion endpoint. Every
// failure is classified into one of the package's sentinel errors so callers
// can map it to a user-facing message.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pdiddy/paper-digest/pkg/types"
)

const (
	DefaultBaseURL    = "https://api.openai.com/v1"
	DefaultModel      = "gpt-3.5-turbo"
	DefaultTimeout    = 60 * time.Second
	DefaultMaxRetries = 3
)

// Request is a single system + user exchange.
type Request struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int

	// Timeout bounds each attempt; the client default applies when zero.
	Timeout time.Duration
}

// Backend abstracts the chat endpoint so tests can supply a mock.
type Backend interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Client is the production Backend over go-openai.
type Client struct {
	api        *openai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	logger     *slog.Logger
}

// New builds a Client from cfg. It fails with ErrMissingAPIKey when no key is set.
func New(cfg types.LLMConfig, logger *slog.Logger) (*Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	oc := openai.DefaultConfig(key)
	oc.BaseURL = DefaultBaseURL
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		oc.BaseURL = strings.TrimRight(base, "/")
	}
	// Attempts are bounded by per-request contexts.
	oc.HTTPClient = &http.Client{}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	} else if maxRetries == 0 {
		maxRetries = DefaultMaxRetries
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		api:        openai.NewClientWithConfig(oc),
		model:      model,
		timeout:    timeout,
		maxRetries: maxRetries,
		logger:     logger,
	}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// Complete sends req, retrying rate-limit, timeout and connection failures
// with exponential backoff.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	return callWithRetry(ctx, c.logger, c.maxRetries, func(ctx context.Context) (string, error) {
		return c.completeOnce(ctx, req)
	})
}

func (c *Client) completeOnce(ctx context.Context, req Request) (string, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// callWithRetry runs call up to maxRetries+1 times while it fails with a
// transient error.
func callWithRetry(ctx context.Context, logger *slog.Logger, maxRetries int, call func(context.Context) (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			logger.Debug("llm: retrying", "attempt", attempt, "backoff", backoff, "err", lastErr)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		out, err := call(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if !Transient(err) || ctx.Err() != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}
