// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataURL(t *testing.T) {
	img := &ExtractedImage{Data: []byte{0x89, 'P', 'N', 'G'}}
	got := img.DataURL()

	require.True(t, strings.HasPrefix(got, "data:image/png;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, img.Data, raw)
}

func TestFrequencies(t *testing.T) {
	got := Frequencies([]KeywordCount{{"point", 2}, {"cloud", 2}, {"segmentation", 1}})
	assert.Equal(t, map[string]int{"point": 2, "cloud": 2, "segmentation": 1}, got)
}

func TestPaperHelpers(t *testing.T) {
	p := Paper{}
	assert.False(t, p.HasCode())
	assert.Equal(t, "", p.PublishedDate())

	p.CodeURLs = []string{"https://github.com/a/b"}
	p.Published = time.Date(2024, 1, 22, 17, 57, 34, 0, time.UTC)
	assert.True(t, p.HasCode())
	assert.Equal(t, "2024-01-22", p.PublishedDate())
}
