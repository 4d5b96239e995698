// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package experiment mines a paper PDF for its experimental setup: page text
// extraction, a heading-keyword locator for the experiment section, and the
// hand-off of that excerpt to an LLM for a hyperparameter card.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pdiddy/paper-digest/internal/fetch"
	"github.com/pdiddy/paper-digest/internal/llm"
	"github.com/pdiddy/paper-digest/pkg/types"
)

const (
	hyperparamTemperature = 0.3
	hyperparamMaxTokens   = 1000
	hyperparamTimeout     = 90 * time.Second
)

// ErrNoText is returned when the PDF yields no text to search.
var ErrNoText = errors.New("no text extracted from pdf")

// Hyperparams turns a paper into an LLM-written hyperparameter card.
type Hyperparams struct {
	Fetcher  *fetch.Fetcher
	Text     TextExtractor
	LLM      llm.Backend
	MaxPages int
	Logger   *slog.Logger
}

// Section fetches the paper's PDF and returns its located experiment text.
func (h *Hyperparams) Section(ctx context.Context, paper types.Paper) (string, error) {
	path, err := h.Fetcher.FetchPaper(ctx, paper)
	if err != nil {
		return "", err
	}

	text := ExtractPDFText(h.Text, path, h.MaxPages, h.logger())
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrNoText, paper.ID)
	}
	return LocateExperimentSection(text), nil
}

// Extract returns the hyperparameter card for paper in lang.
func (h *Hyperparams) Extract(ctx context.Context, paper types.Paper, lang string) (string, error) {
	section, err := h.Section(ctx, paper)
	if err != nil {
		return "", err
	}

	user, err := renderUserPrompt(section)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	h.logger().Debug("experiment: requesting hyperparameters", "id", paper.ID, "lang", lang, "chars", len([]rune(section)))
	card, err := h.LLM.Complete(ctx, llm.Request{
		System:      SystemPrompt(lang),
		User:        user,
		Temperature: hyperparamTemperature,
		MaxTokens:   hyperparamMaxTokens,
		Timeout:     hyperparamTimeout,
	})
	if err != nil {
		return "", fmt.Errorf("extracting hyperparameters for %s: %w", paper.ID, err)
	}
	return card, nil
}

func (h *Hyperparams) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}
