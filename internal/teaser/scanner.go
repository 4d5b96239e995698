// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package teaser

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// pdfcpu otherwise creates a config directory under the user's home.
	api.DisableConfigDir()
}

// RawImage is one embedded image as listed by a Scanner. Open yields the
// extracted image bytes; it may fail for an individual corrupt image.
type RawImage struct {
	// Page is the 1-based page number.
	Page int
	// Index is the position of the image in its page's listing.
	Index int
	// Name is the resource name, when the source provides one.
	Name string
	Open func() (io.Reader, error)
}

// Scanner lists the embedded images of the first maxPages pages of a PDF in
// page order, then listing order. It returns an error only when the
// document as a whole cannot be read.
type Scanner interface {
	Images(pdfPath string, maxPages int) ([]RawImage, error)
}

// PDFScanner lists images with pdfcpu. Each image object is extracted on its
// own, so a stream pdfcpu cannot decode costs only that image. Page
// thumbnails are not listed.
type PDFScanner struct {
	Logger *slog.Logger
}

// Images implements Scanner.
func (s *PDFScanner) Images(pdfPath string, maxPages int) (images []RawImage, err error) {
	defer func() {
		if r := recover(); r != nil {
			images, err = nil, fmt.Errorf("reading %s: pdfcpu panic: %v", pdfPath, r)
		}
	}()

	f, err := os.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	conf := newConfiguration()
	conf.Cmd = model.EXTRACTIMAGES
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", pdfPath, err)
	}
	if maxPages > ctx.PageCount {
		maxPages = ctx.PageCount
	}

	for page := 1; page <= maxPages; page++ {
		images = append(images, s.pageImages(ctx, pdfPath, page)...)
	}
	return images, nil
}

// pageImages extracts the image XObjects of one page, ordered by object
// number, which follows the order the producer wrote them. Extraction happens
// here while the document is open; a failed image keeps its error for Open.
func (s *PDFScanner) pageImages(ctx *model.Context, pdfPath string, page int) []RawImage {
	objNrs := pdfcpu.ImageObjNrs(ctx, page)
	sort.Ints(objNrs)

	out := make([]RawImage, 0, len(objNrs))
	for i, objNr := range objNrs {
		obj, ok := ctx.Optimize.ImageObjects[objNr]
		if !ok || obj == nil {
			continue
		}
		name := obj.ResourceNames[page-1]
		r, err := extractImage(ctx, obj, name, objNr)
		if err != nil {
			s.logger().Debug("teaser: image not extracted", "path", pdfPath, "page", page, "obj", objNr, "err", err)
		}
		out = append(out, RawImage{
			Page:  page,
			Index: i,
			Name:  name,
			Open: func() (io.Reader, error) {
				if err != nil {
					return nil, err
				}
				return r, nil
			},
		})
	}
	return out
}

func extractImage(ctx *model.Context, obj *model.ImageObject, name string, objNr int) (r io.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			r, err = nil, fmt.Errorf("image %s: pdfcpu panic: %v", name, p)
		}
	}()

	img, err := pdfcpu.ExtractImage(ctx, obj.ImageDict, false, name, objNr, false)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", name, err)
	}
	if img == nil || img.Reader == nil {
		return nil, fmt.Errorf("image %s: unsupported filter", name)
	}
	return img.Reader, nil
}

func (s *PDFScanner) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}
