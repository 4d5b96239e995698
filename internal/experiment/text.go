// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package experiment

import (
	"bytes"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// DefaultMaxPages bounds text extraction to the opening pages of a paper.
const DefaultMaxPages = 15

// TextExtractor returns the plain text of the first maxPages pages of a PDF,
// one entry per page.
type TextExtractor interface {
	PageTexts(pdfPath string, maxPages int) ([]string, error)
}

// NewTextExtractor selects a backend by name. The empty name selects the
// in-process extractor.
func NewTextExtractor(backend types.TextBackend) (TextExtractor, error) {
	switch backend {
	case "", types.TextBackendPlain:
		return PlainText{}, nil
	case types.TextBackendPdftotext:
		p := &Pdftotext{exec: defaultExec}
		if !p.Available() {
			return nil, fmt.Errorf("text backend %s: %s not found on PATH", backend, binPdftotext)
		}
		return p, nil
	}
	return nil, fmt.Errorf("unknown text backend %q", backend)
}

// ExtractPDFText joins the text of up to maxPages pages with newlines. Any
// failure is logged and yields "".
func ExtractPDFText(ex TextExtractor, pdfPath string, maxPages int, logger *slog.Logger) string {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	if logger == nil {
		logger = slog.Default()
	}
	pages, err := ex.PageTexts(pdfPath, maxPages)
	if err != nil {
		logger.Warn("experiment: text extraction failed", "path", pdfPath, "err", err)
		return ""
	}
	return strings.Join(pages, "\n")
}

// PlainText extracts text in-process with ledongthuc/pdf.
type PlainText struct{}

// PageTexts implements TextExtractor. The PDF reader panics on some malformed
// inputs; a panic is reported as an error.
func (PlainText) PageTexts(pdfPath string, maxPages int) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("reading %s: pdf panic: %v", pdfPath, r)
		}
	}()

	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	n := r.NumPage()
	if maxPages < n {
		n = maxPages
	}
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

const binPdftotext = "pdftotext"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Output(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

var defaultExec = &osExecutor{}

// Pdftotext extracts text with poppler's pdftotext, which handles
// multi-column layouts and unusual font encodings better than the
// in-process reader.
type Pdftotext struct {
	exec executor
}

// Available reports whether pdftotext is on PATH.
func (p *Pdftotext) Available() bool {
	_, err := p.exec.LookPath(binPdftotext)
	return err == nil
}

// PageTexts implements TextExtractor. pdftotext separates pages with a form
// feed.
func (p *Pdftotext) PageTexts(pdfPath string, maxPages int) ([]string, error) {
	args := []string{"-q", "-enc", "UTF-8", "-f", "1", "-l", strconv.Itoa(maxPages), pdfPath, "-"}
	out, err := p.exec.Output(binPdftotext, args...)
	if err != nil {
		return nil, fmt.Errorf("running %s on %s: %w", binPdftotext, pdfPath, err)
	}

	pages := strings.Split(string(bytes.TrimRight(out, "\f")), "\f")
	if len(pages) > maxPages {
		pages = pages[:maxPages]
	}
	return pages, nil
}
