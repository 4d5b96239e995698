// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "encoding/base64"

// MaxExperimentChars bounds the experiment excerpt handed to the LLM.
const MaxExperimentChars = 8000

// ExtractedImage is a teaser figure pulled from a paper's PDF. Data is always
// PNG-encoded, opaque RGB, regardless of how the image was embedded.
type ExtractedImage struct {
	// PaperID is the identifier of the document the image came from.
	PaperID string `json:"paper_id,omitempty" yaml:"paper_id,omitempty"`

	// Page is the 1-based page the image was found on.
	Page int `json:"page" yaml:"page"`

	// Width and Height are pixel dimensions of the decoded image.
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// Data holds the PNG bytes.
	Data []byte `json:"-" yaml:"-"`
}

// DataURL renders the image as an inline data URL for HTML embedding.
func (img *ExtractedImage) DataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// KeywordCount is one entry of a ranked keyword table.
type KeywordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Frequencies converts a ranked table into a word to count map for renderers
// that do not need the order.
func Frequencies(ranked []KeywordCount) map[string]int {
	m := make(map[string]int, len(ranked))
	for _, kc := range ranked {
		m[kc.Word] = kc.Count
	}
	return m
}
