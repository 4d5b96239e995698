package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-digest/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries bounds retries on HTTP 429/503 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// FetchConfig holds settings for the PDF fetcher.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// CacheDir is the flat directory of downloaded PDFs, one file per paper.
	CacheDir string `json:"cache_dir" yaml:"cache_dir"`
}

// SearchConfig holds settings for the arXiv listing fetch.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the number of most recent papers to return (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Interval is the minimum delay between API requests (default 3s,
	// per arXiv API terms of use).
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// TeaserConfig holds settings for the teaser image harvester.
type TeaserConfig struct {
	// MinWidth and MinHeight reject logos, icons and rules (default 200).
	MinWidth  int `json:"min_width" yaml:"min_width"`
	MinHeight int `json:"min_height" yaml:"min_height"`

	// MaxPages bounds the scan to the first pages of the document (default 3).
	MaxPages int `json:"max_pages" yaml:"max_pages"`
}

// TextBackend identifies the PDF text extraction tool.
type TextBackend string

const (
	TextBackendPlain     TextBackend = "plain"
	TextBackendPdftotext TextBackend = "pdftotext"
)

// TextConfig holds settings for the PDF text harvester.
type TextConfig struct {
	// MaxPages bounds text extraction to the first pages (default 15).
	MaxPages int `json:"max_pages" yaml:"max_pages"`

	// Backend selects the extractor: plain (in-process) or pdftotext.
	Backend TextBackend `json:"backend" yaml:"backend"`
}

// LLMConfig holds settings for the OpenAI-compatible chat endpoint.
type LLMConfig struct {
	// APIKey is the bearer token for the endpoint.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL is the API root (default "https://api.openai.com/v1"); any
	// OpenAI-compatible service such as DeepSeek or Moonshot works.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Model is the chat model name (default "gpt-3.5-turbo").
	Model string `json:"model" yaml:"model"`

	// Timeout bounds a single chat call.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxRetries is the number of retry attempts for transient failures (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// Language is the output language code (zh-CN, zh-TW, en, ja, ko).
	Language string `json:"language" yaml:"language"`
}

// KeywordConfig holds settings for keyword mining.
type KeywordConfig struct {
	MinWordLength int `json:"min_word_length" yaml:"min_word_length"`
	MaxWords      int `json:"max_words" yaml:"max_words"`
}

// WordCloudConfig holds settings for the word-cloud renderer.
type WordCloudConfig struct {
	// FontPath is an optional TrueType font; the Go Regular face is used when empty.
	FontPath string `json:"font" yaml:"font"`

	Width    int `json:"width" yaml:"width"`
	Height   int `json:"height" yaml:"height"`
	MaxWords int `json:"max_words" yaml:"max_words"`
}

// Config groups all stage configurations.
type Config struct {
	Fetch     FetchConfig     `json:"fetch" yaml:"fetch"`
	Search    SearchConfig    `json:"search" yaml:"search"`
	Teaser    TeaserConfig    `json:"teaser" yaml:"teaser"`
	Text      TextConfig      `json:"text" yaml:"text"`
	LLM       LLMConfig       `json:"llm" yaml:"llm"`
	Keywords  KeywordConfig   `json:"keywords" yaml:"keywords"`
	WordCloud WordCloudConfig `json:"wordcloud" yaml:"wordcloud"`

	// DataDir holds the topic and favorite files.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}
