// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/paper-digest/internal/experiment"
	"github.com/pdiddy/paper-digest/internal/fetch"
	"github.com/pdiddy/paper-digest/internal/llm"
	"github.com/pdiddy/paper-digest/internal/search"
	"github.com/pdiddy/paper-digest/internal/store"
	"github.com/pdiddy/paper-digest/internal/teaser"
	"github.com/pdiddy/paper-digest/pkg/types"
)

// app wires the components for one command invocation.
type app struct {
	cfg    types.Config
	logger *slog.Logger
}

func newApp() *app {
	return &app{cfg: loadConfig(viper.GetViper()), logger: slog.Default()}
}

func (a *app) fetcher() *fetch.Fetcher {
	return fetch.New(a.cfg.Fetch, a.logger)
}

func (a *app) search() *search.Client {
	return search.New(a.cfg.Search, a.logger)
}

func (a *app) harvester() *teaser.Harvester {
	return teaser.New(a.cfg.Teaser, a.logger)
}

func (a *app) store() *store.Store {
	return store.New(a.cfg.DataDir)
}

func (a *app) llm() (*llm.Client, error) {
	c, err := llm.New(a.cfg.LLM, a.logger)
	if err != nil {
		return nil, fmt.Errorf("%s (set OPENAI_API_KEY, .env or .secrets/openai-api-key)", llm.Message(err, a.cfg.LLM.Language))
	}
	return c, nil
}

func (a *app) hyperparams() (*experiment.Hyperparams, error) {
	text, err := experiment.NewTextExtractor(a.cfg.Text.Backend)
	if err != nil {
		return nil, err
	}
	backend, err := a.llm()
	if err != nil {
		return nil, err
	}
	return &experiment.Hyperparams{
		Fetcher:  a.fetcher(),
		Text:     text,
		LLM:      backend,
		MaxPages: a.cfg.Text.MaxPages,
		Logger:   a.logger,
	}, nil
}

// lang returns the flag value when set, the configured language otherwise.
func (a *app) lang(flag string) string {
	if flag != "" {
		return llm.NormalizeLang(flag)
	}
	return a.cfg.LLM.Language
}

// paperFromArg builds a paper record from an arXiv id, an abstract or PDF
// URL, or any other direct PDF URL.
func paperFromArg(arg string) types.Paper {
	if id, ok := fetch.NormalizeID(arg); ok {
		if strings.HasPrefix(arg, "http") && strings.Contains(arg, "/abs/") {
			return types.Paper{ID: id, URL: arg}
		}
		return types.Paper{ID: id, URL: fetch.AbstractURL(id)}
	}
	id := strings.TrimSuffix(path.Base(arg), ".pdf")
	return types.Paper{ID: id, URL: arg}
}
