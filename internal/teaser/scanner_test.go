// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package teaser

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-digest/internal/pdftest"
	"github.com/pdiddy/paper-digest/pkg/types"
)

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 20, G: 120, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func imageXObject(filter string, w, h int, data []byte) string {
	return pdftest.Stream(fmt.Sprintf(
		"/Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /%s",
		w, h, filter), data)
}

func TestPDFScanner_CorruptImageKeepsPageSiblings(t *testing.T) {
	path := pdftest.Write(t,
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792]"+
			" /Resources << /XObject << /ImA 4 0 R /ImB 5 0 R >> >> /Contents 6 0 R >>",
		imageXObject("FlateDecode", 300, 300, []byte("definitely not zlib data")),
		imageXObject("DCTDecode", 300, 300, jpegBytes(t, 300, 300)),
		pdftest.Stream("", []byte("q 300 0 0 300 0 0 cm /ImA Do Q q 300 0 0 300 0 400 cm /ImB Do Q")),
	)

	images, err := (&PDFScanner{}).Images(path, 3)
	require.NoError(t, err)
	require.Len(t, images, 2)

	_, err = images[0].Open()
	assert.Error(t, err, "undecodable stream is reported per image")

	got, err := New(types.TeaserConfig{}, nil).Extract(path)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 300, got.Width)
	assert.Equal(t, 300, got.Height)
}

func TestPDFScanner_IgnoresPageThumbnail(t *testing.T) {
	path := pdftest.Write(t,
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Thumb 6 0 R"+
			" /Resources << /XObject << /ImB 4 0 R >> >> /Contents 5 0 R >>",
		imageXObject("DCTDecode", 300, 300, jpegBytes(t, 300, 300)),
		pdftest.Stream("", []byte("q 300 0 0 300 0 0 cm /ImB Do Q")),
		pdftest.Stream("/Width 400 /Height 400 /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /DCTDecode",
			jpegBytes(t, 400, 400)),
	)

	images, err := (&PDFScanner{}).Images(path, 3)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "ImB", images[0].Name)

	got, err := New(types.TeaserConfig{}, nil).Extract(path)
	require.NoError(t, err)
	assert.Equal(t, 300, got.Width)
	assert.Equal(t, 300, got.Height)
}

func TestPDFScanner_ImportedImages(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.png")
	big := filepath.Join(dir, "big.png")
	require.NoError(t, os.WriteFile(small, pngBytes(t, 50, 50), 0o644))
	require.NoError(t, os.WriteFile(big, pngBytes(t, 300, 300), 0o644))

	out := filepath.Join(dir, "paper.pdf")
	require.NoError(t, api.ImportImagesFile([]string{small, big}, out, nil, nil))

	images, err := (&PDFScanner{}).Images(out, 3)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, 1, images[0].Page)
	assert.Equal(t, 2, images[1].Page)

	r, err := images[1].Open()
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)

	got, err := New(types.TeaserConfig{}, nil).Extract(out)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 300, got.Width)
	assert.Equal(t, 300, got.Height)
}

func TestPDFScanner_PageLimit(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.png")
	big := filepath.Join(dir, "big.png")
	require.NoError(t, os.WriteFile(small, pngBytes(t, 50, 50), 0o644))
	require.NoError(t, os.WriteFile(big, pngBytes(t, 300, 300), 0o644))

	out := filepath.Join(dir, "paper.pdf")
	require.NoError(t, api.ImportImagesFile([]string{small, big}, out, nil, nil))

	images, err := (&PDFScanner{}).Images(out, 1)
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, 1, images[0].Page)
}
