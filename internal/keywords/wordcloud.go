// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keywords

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/pdiddy/paper-digest/pkg/types"
)

var (
	// ErrNoKeywords is returned when there is nothing to draw.
	ErrNoKeywords = errors.New("no keywords to render")
	// ErrRendererUnavailable is returned when the configured font cannot be
	// loaded. Callers treat it as a degraded feature, not a failure.
	ErrRendererUnavailable = errors.New("word cloud renderer unavailable")
)

// Renderer draws a ranked keyword table as an image.
type Renderer interface {
	Render(ranked []types.KeywordCount) ([]byte, error)
}

const (
	defaultCloudWidth    = 800
	defaultCloudHeight   = 400
	defaultCloudMaxWords = 80
	minFontSize          = 10.0
	maxFontSize          = 120.0
)

// viridis samples, darkest first so the most frequent words get the most
// contrast against the white background.
var palette = []color.Color{
	color.RGBA{0x44, 0x01, 0x54, 0xff},
	color.RGBA{0x48, 0x28, 0x78, 0xff},
	color.RGBA{0x3e, 0x4a, 0x89, 0xff},
	color.RGBA{0x31, 0x68, 0x8e, 0xff},
	color.RGBA{0x26, 0x82, 0x8e, 0xff},
	color.RGBA{0x1f, 0x9e, 0x89, 0xff},
	color.RGBA{0x35, 0xb7, 0x79, 0xff},
	color.RGBA{0x6d, 0xcd, 0x59, 0xff},
}

// CloudRenderer lays words out on an Archimedean spiral from the canvas
// centre, largest first, and encodes the result as PNG. The layout has no
// randomness: equal input gives an identical image.
type CloudRenderer struct {
	FontPath string
	Width    int
	Height   int
	MaxWords int
}

// NewCloudRenderer builds a CloudRenderer from cfg, filling defaults.
func NewCloudRenderer(cfg types.WordCloudConfig) *CloudRenderer {
	r := &CloudRenderer{FontPath: cfg.FontPath, Width: cfg.Width, Height: cfg.Height, MaxWords: cfg.MaxWords}
	if r.Width <= 0 {
		r.Width = defaultCloudWidth
	}
	if r.Height <= 0 {
		r.Height = defaultCloudHeight
	}
	if r.MaxWords <= 0 {
		r.MaxWords = defaultCloudMaxWords
	}
	return r
}

type box struct{ x0, y0, x1, y1 float64 }

func (b box) overlaps(o box) bool {
	return b.x0 < o.x1 && o.x0 < b.x1 && b.y0 < o.y1 && o.y0 < b.y1
}

// Render implements Renderer.
func (r *CloudRenderer) Render(ranked []types.KeywordCount) ([]byte, error) {
	if len(ranked) == 0 {
		return nil, ErrNoKeywords
	}
	f, err := r.loadFont()
	if err != nil {
		return nil, err
	}

	if len(ranked) > r.MaxWords {
		ranked = ranked[:r.MaxWords]
	}
	maxCount := float64(ranked[0].Count)
	for _, kc := range ranked {
		maxCount = math.Max(maxCount, float64(kc.Count))
	}

	w, h := float64(r.Width), float64(r.Height)
	dc := gg.NewContext(r.Width, r.Height)
	dc.SetColor(color.White)
	dc.Clear()

	var placed []box
	for i, kc := range ranked {
		size := minFontSize + (maxFontSize-minFontSize)*math.Sqrt(float64(kc.Count)/maxCount)
		for ; size >= minFontSize; size *= 0.8 {
			dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: size}))
			tw, th := dc.MeasureString(kc.Word)
			if b, ok := findSpot(placed, tw, th, w, h); ok {
				placed = append(placed, b)
				dc.SetColor(palette[i%len(palette)])
				dc.DrawStringAnchored(kc.Word, (b.x0+b.x1)/2, (b.y0+b.y1)/2, 0.5, 0.5)
				break
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encoding word cloud: %w", err)
	}
	return buf.Bytes(), nil
}

// findSpot walks a spiral out from the centre until a tw x th box fits
// inside the canvas without touching a placed box.
func findSpot(placed []box, tw, th, w, h float64) (box, bool) {
	const pad = 2.0
	cx, cy := w/2, h/2
	maxRadius := math.Hypot(w, h) / 2
	for t := 0.0; ; t += 0.1 {
		radius := 2 * t
		if radius > maxRadius {
			return box{}, false
		}
		x := cx + radius*math.Cos(t)
		y := cy + radius*math.Sin(t)*h/w
		b := box{x - tw/2 - pad, y - th/2 - pad, x + tw/2 + pad, y + th/2 + pad}
		if b.x0 < 0 || b.y0 < 0 || b.x1 > w || b.y1 > h {
			continue
		}
		free := true
		for _, p := range placed {
			if b.overlaps(p) {
				free = false
				break
			}
		}
		if free {
			return b, true
		}
	}
}

func (r *CloudRenderer) loadFont() (*truetype.Font, error) {
	data := goregular.TTF
	if r.FontPath != "" {
		b, err := os.ReadFile(r.FontPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRendererUnavailable, err)
		}
		data = b
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing font: %v", ErrRendererUnavailable, err)
	}
	return f, nil
}
