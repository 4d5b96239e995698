// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package teaser

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-digest/internal/fetch"
	"github.com/pdiddy/paper-digest/pkg/types"
)

// fakeScanner returns a fixed image listing.
type fakeScanner struct {
	images []RawImage
	err    error
}

func (f *fakeScanner) Images(string, int) ([]RawImage, error) {
	return f.images, f.err
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func raw(page, index int, data []byte) RawImage {
	return RawImage{
		Page:  page,
		Index: index,
		Open:  func() (io.Reader, error) { return bytes.NewReader(data), nil },
	}
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestExtract_SkipsSmallImage(t *testing.T) {
	h := &Harvester{Scanner: &fakeScanner{images: []RawImage{
		raw(1, 0, pngBytes(t, 50, 50)),
		raw(2, 0, pngBytes(t, 300, 300)),
	}}}

	got, err := h.Extract("paper.pdf")
	require.NoError(t, err)
	assert.Equal(t, 300, got.Width)
	assert.Equal(t, 300, got.Height)
	assert.Equal(t, 2, got.Page)

	out := decodePNG(t, got.Data)
	assert.Equal(t, image.Rect(0, 0, 300, 300), out.Bounds())
}

func TestExtract_OnlyCorruptImageIsNotFound(t *testing.T) {
	h := &Harvester{Scanner: &fakeScanner{images: []RawImage{
		raw(1, 0, []byte("\x89PNG\r\n\x1a\ngarbage")),
	}}}

	got, err := h.Extract("paper.pdf")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExtract_FailuresDoNotAbortScan(t *testing.T) {
	h := &Harvester{Scanner: &fakeScanner{images: []RawImage{
		{Page: 1, Index: 0, Open: func() (io.Reader, error) { return nil, errors.New("bad stream") }},
		{Page: 1, Index: 1},
		raw(1, 2, []byte("not an image")),
		raw(1, 3, pngBytes(t, 240, 320)),
	}}}

	got, err := h.Extract("paper.pdf")
	require.NoError(t, err)
	assert.Equal(t, 240, got.Width)
	assert.Equal(t, 320, got.Height)
}

func TestExtract_FirstQualifyingImageWins(t *testing.T) {
	opened := 0
	counting := func(page int, data []byte) RawImage {
		return RawImage{Page: page, Open: func() (io.Reader, error) {
			opened++
			return bytes.NewReader(data), nil
		}}
	}
	h := &Harvester{Scanner: &fakeScanner{images: []RawImage{
		counting(1, pngBytes(t, 210, 220)),
		counting(1, pngBytes(t, 800, 600)),
		counting(2, pngBytes(t, 900, 900)),
	}}}

	got, err := h.Extract("paper.pdf")
	require.NoError(t, err)
	assert.Equal(t, 210, got.Width)
	assert.Equal(t, 220, got.Height)
	assert.Equal(t, 1, opened, "iteration stops at the first qualifying image")
}

func TestExtract_DimensionFilter(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		wantOK bool
	}{
		{"exact minimum", 200, 200, true},
		{"narrow", 199, 500, false},
		{"short", 500, 199, false},
		{"large", 1024, 768, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Harvester{Scanner: &fakeScanner{images: []RawImage{raw(1, 0, pngBytes(t, tt.w, tt.h))}}}
			_, err := h.Extract("paper.pdf")
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrNotFound)
			}
		})
	}
}

func TestExtract_CustomMinimum(t *testing.T) {
	h := &Harvester{
		Scanner:  &fakeScanner{images: []RawImage{raw(1, 0, pngBytes(t, 50, 50))}},
		MinWidth: 40, MinHeight: 40,
	}
	got, err := h.Extract("paper.pdf")
	require.NoError(t, err)
	assert.Equal(t, 50, got.Width)
}

func TestExtract_IgnoresPagesBeyondLimit(t *testing.T) {
	h := &Harvester{Scanner: &fakeScanner{images: []RawImage{
		raw(4, 0, pngBytes(t, 300, 300)),
	}}}
	_, err := h.Extract("paper.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExtract_ScannerErrorIsNotFound(t *testing.T) {
	h := &Harvester{Scanner: &fakeScanner{err: errors.New("malformed xref")}}
	_, err := h.Extract("paper.pdf")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExtract_FlattensAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	src.Set(10, 10, color.NRGBA{R: 0, G: 0, B: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	h := &Harvester{Scanner: &fakeScanner{images: []RawImage{raw(1, 0, buf.Bytes())}}}
	got, err := h.Extract("paper.pdf")
	require.NoError(t, err)

	out := decodePNG(t, got.Data)
	rgba, ok := out.(*image.RGBA)
	require.True(t, ok, "opaque output decodes as RGB, got %T", out)

	r, g, b, a := rgba.At(0, 0).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a}, "transparent pixel becomes white")

	r, g, b, a = rgba.At(10, 10).RGBA()
	assert.Equal(t, [4]uint32{0, 0, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}

func TestExtract_ReencodesJPEGAsPNG(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 256, 256))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))

	h := &Harvester{Scanner: &fakeScanner{images: []RawImage{raw(1, 0, buf.Bytes())}}}
	got, err := h.Extract("paper.pdf")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(got.Data, []byte("\x89PNG")))
	out := decodePNG(t, got.Data)
	_, ok := out.(*image.RGBA)
	assert.True(t, ok, "single-channel input is expanded to RGB, got %T", out)
}

func TestPDFScanner_RejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))

	h := New(types.TeaserConfig{}, nil)
	_, err := h.Extract(path)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPDFScanner_MissingFile(t *testing.T) {
	s := &PDFScanner{}
	_, err := s.Images(filepath.Join(t.TempDir(), "missing.pdf"), 3)
	assert.Error(t, err)
}

func TestForPaper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("%PDF-1.4 stub"))
	}))
	defer ts.Close()

	f := fetch.New(types.FetchConfig{CacheDir: t.TempDir()}, nil)
	f.Client = ts.Client()
	h := &Harvester{Scanner: &fakeScanner{images: []RawImage{raw(1, 0, pngBytes(t, 300, 200))}}}

	got, err := h.ForPaper(context.Background(), f, types.Paper{ID: "2401.00001v1", URL: ts.URL + "/abs/2401.00001v1"})
	require.NoError(t, err)
	assert.Equal(t, "2401.00001v1", got.PaperID)
	assert.True(t, f.Cached("2401.00001v1"))
}

func TestForPaper_FetchFailureIsNotFound(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	f := fetch.New(types.FetchConfig{CacheDir: t.TempDir()}, nil)
	f.Client = ts.Client()
	h := &Harvester{Scanner: &fakeScanner{}}

	_, err := h.ForPaper(context.Background(), f, types.Paper{ID: "x", URL: ts.URL + "/abs/x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, fetch.ErrNotFound, "download failure stays distinguishable")
}
