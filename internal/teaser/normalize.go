// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package teaser

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"

	// Decoders for the encodings pdfcpu hands back for embedded images.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// flatten composites src over an opaque white canvas. Gray, paletted, CMYK
// and alpha images all come out as fully opaque RGB, which the PNG encoder
// then writes as 8-bit truecolor without an alpha channel.
func flatten(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}

// encodePNG flattens img and encodes it as PNG.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, flatten(img)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
