// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package teaser picks a representative figure out of a paper PDF: the first
// embedded raster image on the opening pages that is large enough not to be
// a logo or rule.
package teaser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/pdiddy/paper-digest/internal/fetch"
	"github.com/pdiddy/paper-digest/pkg/types"
)

// Defaults applied by Extract when the Harvester fields are zero.
const (
	DefaultMinWidth  = 200
	DefaultMinHeight = 200
	DefaultMaxPages  = 3
)

// ErrNotFound is returned when no image qualifies or the document cannot be read.
var ErrNotFound = errors.New("no teaser image found")

// Harvester selects teaser images from PDFs.
type Harvester struct {
	Scanner   Scanner
	MinWidth  int
	MinHeight int
	MaxPages  int
	Logger    *slog.Logger
}

// New builds a Harvester over the pdfcpu scanner from cfg.
func New(cfg types.TeaserConfig, logger *slog.Logger) *Harvester {
	if logger == nil {
		logger = slog.Default()
	}
	return &Harvester{
		Scanner:   &PDFScanner{Logger: logger},
		MinWidth:  cfg.MinWidth,
		MinHeight: cfg.MinHeight,
		MaxPages:  cfg.MaxPages,
		Logger:    logger,
	}
}

// Extract returns the first image, in page order then listing order, whose
// width and height both reach the configured minimum. The image is flattened
// to opaque RGB and re-encoded as PNG whatever its embedded encoding was.
func (h *Harvester) Extract(pdfPath string) (*types.ExtractedImage, error) {
	minW, minH, maxPages := h.limits()

	images, err := h.Scanner.Images(pdfPath, maxPages)
	if err != nil {
		h.logger().Warn("teaser: cannot scan document", "path", pdfPath, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	for _, raw := range images {
		if raw.Page > maxPages {
			continue
		}
		result, err := qualify(raw, minW, minH)
		if err != nil {
			h.logger().Debug("teaser: skipping image", "path", pdfPath, "page", raw.Page, "index", raw.Index, "err", err)
			continue
		}
		if result == nil {
			continue
		}
		result.Page = raw.Page
		h.logger().Debug("teaser: selected image", "path", pdfPath, "page", raw.Page, "index", raw.Index,
			"width", result.Width, "height", result.Height)
		return result, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, pdfPath)
}

// ForPaper fetches the paper's PDF and extracts its teaser image. A failed
// download is reported as ErrNotFound wrapping fetch.ErrNotFound.
func (h *Harvester) ForPaper(ctx context.Context, f *fetch.Fetcher, paper types.Paper) (*types.ExtractedImage, error) {
	path, err := f.FetchPaper(ctx, paper)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	img, err := h.Extract(path)
	if err != nil {
		return nil, err
	}
	img.PaperID = paper.ID
	return img, nil
}

// qualify decodes one raw image. It returns nil without error when the image
// decodes but is smaller than the minimum.
func qualify(raw RawImage, minW, minH int) (result *types.ExtractedImage, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("decoder panic: %v", r)
		}
	}()

	if raw.Open == nil {
		return nil, errors.New("image has no data")
	}
	r, err := raw.Open()
	if err != nil {
		return nil, fmt.Errorf("extracting image: %w", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image header: %w", err)
	}
	if cfg.Width < minW || cfg.Height < minH {
		return nil, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	encoded, err := encodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}

	b := img.Bounds()
	return &types.ExtractedImage{
		Width:  b.Dx(),
		Height: b.Dy(),
		Data:   encoded,
	}, nil
}

func (h *Harvester) limits() (minW, minH, maxPages int) {
	minW, minH, maxPages = h.MinWidth, h.MinHeight, h.MaxPages
	if minW <= 0 {
		minW = DefaultMinWidth
	}
	if minH <= 0 {
		minH = DefaultMinHeight
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return minW, minH, maxPages
}

func (h *Harvester) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}
