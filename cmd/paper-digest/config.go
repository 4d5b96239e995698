package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/paper-digest/internal/experiment"
	"github.com/pdiddy/paper-digest/internal/fetch"
	"github.com/pdiddy/paper-digest/internal/keywords"
	"github.com/pdiddy/paper-digest/internal/llm"
	"github.com/pdiddy/paper-digest/internal/search"
	"github.com/pdiddy/paper-digest/internal/teaser"
	"github.com/pdiddy/paper-digest/pkg/types"
)

const defaultUserAgent = "paper-digest/0.1"

func setDefaults(v *viper.Viper) {
	v.SetDefault("cache_dir", fetch.DefaultCacheDir())
	v.SetDefault("data_dir", ".")

	v.SetDefault("http.timeout", fetch.DefaultTimeout)
	v.SetDefault("http.user_agent", defaultUserAgent)
	v.SetDefault("http.max_retries", 5)

	v.SetDefault("llm.base_url", llm.DefaultBaseURL)
	v.SetDefault("llm.model", llm.DefaultModel)
	v.SetDefault("llm.timeout", llm.DefaultTimeout)
	v.SetDefault("llm.max_retries", llm.DefaultMaxRetries)
	v.SetDefault("llm.language", "en")

	v.SetDefault("teaser.min_width", teaser.DefaultMinWidth)
	v.SetDefault("teaser.min_height", teaser.DefaultMinHeight)
	v.SetDefault("teaser.max_pages", teaser.DefaultMaxPages)

	v.SetDefault("text.max_pages", experiment.DefaultMaxPages)
	v.SetDefault("text.backend", string(types.TextBackendPlain))

	v.SetDefault("keywords.min_word_length", keywords.DefaultMinWordLength)
	v.SetDefault("keywords.max_words", keywords.DefaultMaxWords)

	v.SetDefault("wordcloud.width", 800)
	v.SetDefault("wordcloud.height", 400)

	v.SetDefault("search.max_results", search.DefaultMaxResults)
	v.SetDefault("search.interval", search.DefaultInterval)
}

// loadConfig assembles the typed configuration from viper. The LLM key falls
// back to the one resolved from the environment or secrets.
func loadConfig(v *viper.Viper) types.Config {
	httpCfg := types.HTTPConfig{
		Timeout:    v.GetDuration("http.timeout"),
		UserAgent:  v.GetString("http.user_agent"),
		MaxRetries: v.GetInt("http.max_retries"),
	}

	apiKey := v.GetString("llm.api_key")
	if apiKey == "" {
		apiKey = openAIKey
	}

	return types.Config{
		Fetch: types.FetchConfig{
			HTTPConfig: httpCfg,
			CacheDir:   v.GetString("cache_dir"),
		},
		Search: types.SearchConfig{
			HTTPConfig: httpCfg,
			MaxResults: v.GetInt("search.max_results"),
			Interval:   v.GetDuration("search.interval"),
		},
		Teaser: types.TeaserConfig{
			MinWidth:  v.GetInt("teaser.min_width"),
			MinHeight: v.GetInt("teaser.min_height"),
			MaxPages:  v.GetInt("teaser.max_pages"),
		},
		Text: types.TextConfig{
			MaxPages: v.GetInt("text.max_pages"),
			Backend:  types.TextBackend(v.GetString("text.backend")),
		},
		LLM: types.LLMConfig{
			APIKey:     apiKey,
			BaseURL:    v.GetString("llm.base_url"),
			Model:      v.GetString("llm.model"),
			Timeout:    durationOr(v.GetDuration("llm.timeout"), llm.DefaultTimeout),
			MaxRetries: v.GetInt("llm.max_retries"),
			Language:   llm.NormalizeLang(v.GetString("llm.language")),
		},
		Keywords: types.KeywordConfig{
			MinWordLength: v.GetInt("keywords.min_word_length"),
			MaxWords:      v.GetInt("keywords.max_words"),
		},
		WordCloud: types.WordCloudConfig{
			FontPath: v.GetString("wordcloud.font"),
			Width:    v.GetInt("wordcloud.width"),
			Height:   v.GetInt("wordcloud.height"),
			MaxWords: v.GetInt("wordcloud.max_words"),
		},
		DataDir: v.GetString("data_dir"),
	}
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
