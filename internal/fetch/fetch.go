// Package fetch downloads paper PDFs into a flat, content-addressed cache
// directory keyed by paper identifier.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/paper-digest/internal/httputil"
	"github.com/pdiddy/paper-digest/pkg/types"
)

const (
	// DefaultTimeout bounds a single PDF download.
	DefaultTimeout   = 30 * time.Second
	defaultUserAgent = "paper-digest/0.1"

	// chunkSize is the copy buffer for streaming downloads to disk.
	chunkSize = 8192

	cacheDirName = "paper-digest-cache"
)

// ErrNotFound is returned when a PDF could not be obtained. The underlying
// network or filesystem cause is wrapped alongside it for logging.
var ErrNotFound = errors.New("pdf not found")

// DefaultCacheDir returns the shared cache directory under the system temp root.
func DefaultCacheDir() string {
	return filepath.Join(os.TempDir(), cacheDirName)
}

// Fetcher downloads PDFs and serves repeated requests from disk. A cached file
// is never revalidated: content for an identifier is treated as immutable.
// Concurrent fetches of the same identifier may both download; the rename
// into place makes the last writer win.
type Fetcher struct {
	Client     *http.Client
	CacheDir   string
	UserAgent  string
	MaxRetries int
	Logger     *slog.Logger
}

// New builds a Fetcher from cfg, filling defaults for unset fields.
func New(cfg types.FetchConfig, logger *slog.Logger) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	dir := cfg.CacheDir
	if dir == "" {
		dir = DefaultCacheDir()
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		Client:     &http.Client{Timeout: timeout},
		CacheDir:   dir,
		UserAgent:  ua,
		MaxRetries: cfg.MaxRetries,
		Logger:     logger,
	}
}

// Path returns the cache location for id, whether or not it exists yet.
func (f *Fetcher) Path(id string) string {
	return filepath.Join(f.CacheDir, CacheKey(id)+".pdf")
}

// Cached reports whether the PDF for id is already on disk.
func (f *Fetcher) Cached(id string) bool {
	_, err := os.Stat(f.Path(id))
	return err == nil
}

// FetchPDF returns the local path of the PDF for id, downloading pdfURL on a
// cache miss. Every failure is logged and reported as ErrNotFound.
func (f *Fetcher) FetchPDF(ctx context.Context, pdfURL, id string) (string, error) {
	path := f.Path(id)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(f.CacheDir, 0o755); err != nil {
		return "", f.notFound(id, pdfURL, fmt.Errorf("creating cache directory: %w", err))
	}

	if err := f.download(ctx, pdfURL, path); err != nil {
		return "", f.notFound(id, pdfURL, err)
	}
	return path, nil
}

// FetchPaper resolves the PDF URL from the paper's abstract page and fetches it.
func (f *Fetcher) FetchPaper(ctx context.Context, paper types.Paper) (string, error) {
	return f.FetchPDF(ctx, ResolvePDFURL(paper.URL), paper.ID)
}

func (f *Fetcher) notFound(id, pdfURL string, cause error) error {
	f.logger().Warn("fetch: pdf download failed", "id", id, "url", pdfURL, "err", cause)
	return fmt.Errorf("%w: %s: %v", ErrNotFound, id, cause)
}

func (f *Fetcher) logger() *slog.Logger {
	if f.Logger == nil {
		return slog.Default()
	}
	return f.Logger
}

// download fetches url to destPath through a temporary file in the same
// directory, renaming on success so readers never see a partial PDF.
func (f *Fetcher) download(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	req.Header.Set("Accept", "application/pdf")

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, f.MaxRetries)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	buf := make([]byte, chunkSize)
	_, copyErr := io.CopyBuffer(tmpFile, resp.Body, buf)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
