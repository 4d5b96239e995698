// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-digest/pkg/types"
)

var pointCloudAbstracts = []string{
	"We propose a novel point cloud method using transformers",
	"Point cloud segmentation via transformers",
}

func TestExtract_PointCloudExample(t *testing.T) {
	got := Extract(pointCloudAbstracts, 0, 0)
	counts := types.Frequencies(got)

	for _, stop := range []string{"propose", "novel", "method", "using", "via"} {
		assert.NotContains(t, counts, stop)
	}
	require.GreaterOrEqual(t, len(got), 3)
	assert.Equal(t, []types.KeywordCount{
		{Word: "point", Count: 2},
		{Word: "cloud", Count: 2},
		{Word: "transformers", Count: 2},
	}, got[:3])
	assert.Equal(t, types.KeywordCount{Word: "segmentation", Count: 1}, got[3])
}

func TestExtract_Idempotent(t *testing.T) {
	abstracts := []string{
		"Diffusion models for image synthesis and diffusion guidance",
		"Graph neural networks meet diffusion; graph pooling and networks",
		"Sparse attention for long-context language models",
	}
	first := Extract(abstracts, 3, 100)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Extract(abstracts, 3, 100))
	}
}

func TestExtract_TiesKeepFirstSeenOrder(t *testing.T) {
	got := Extract([]string{"zebra apple mango apple zebra mango kiwi"}, 3, 10)
	assert.Equal(t, []types.KeywordCount{
		{Word: "zebra", Count: 2},
		{Word: "apple", Count: 2},
		{Word: "mango", Count: 2},
		{Word: "kiwi", Count: 1},
	}, got)
}

func TestExtract_Tokenization(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"hyphenated kept whole", "self-supervised pre-training", []string{"self-supervised", "pre-training"}},
		{"case folded", "LiDAR lidar Lidar", []string{"lidar"}},
		{"digits split tokens", "gpt4 model 3d", []string{"model"}},
		{"short tokens dropped", "ai ml nlp", []string{"nlp"}},
		{"punctuation", "robots, (robots) robots.", []string{"robots"}},
		{"accented word is one word", "résumé parsing", []string{"parsing"}},
		{"accent inside word", "naïve bayes", []string{"bayes"}},
		{"cjk neighbours", "点云transformer 模型 graph", []string{"graph"}},
		{"non-ascii punctuation is a boundary", "“diffusion” — sampling", []string{"diffusion", "sampling"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var words []string
			for _, kc := range Extract([]string{tt.in}, 3, 100) {
				words = append(words, kc.Word)
			}
			assert.Equal(t, tt.want, words)
		})
	}
}

func TestExtract_Limits(t *testing.T) {
	abstracts := []string{"alpha beta gamma delta epsilon alpha"}

	got := Extract(abstracts, 3, 2)
	assert.Equal(t, []types.KeywordCount{{Word: "alpha", Count: 2}, {Word: "beta", Count: 1}}, got)

	got = Extract(abstracts, 6, 100)
	assert.Equal(t, []types.KeywordCount{{Word: "epsilon", Count: 1}}, got)
}

func TestExtract_JoinsAbstractsWithSpace(t *testing.T) {
	// Without a separator "graph" and "neural" would fuse into one token.
	got := Extract([]string{"graph", "neural"}, 3, 10)
	assert.Len(t, got, 2)
}

func TestExtract_Empty(t *testing.T) {
	assert.Empty(t, Extract(nil, 3, 100))
	assert.Empty(t, Extract([]string{"the and of we propose"}, 3, 100))
}

func TestTop(t *testing.T) {
	got := Top(pointCloudAbstracts, 2)
	assert.Equal(t, []types.KeywordCount{{Word: "point", Count: 2}, {Word: "cloud", Count: 2}}, got)

	assert.Len(t, Top(pointCloudAbstracts, 100), 4)
	assert.Empty(t, Top(pointCloudAbstracts, 0))
}

func TestIsStopWord(t *testing.T) {
	for _, w := range []string{"the", "propose", "novel", "framework", "baseline", "significant", "demonstrate"} {
		assert.True(t, IsStopWord(w), w)
	}
	for _, w := range []string{"point", "cloud", "transformer", "diffusion"} {
		assert.False(t, IsStopWord(w), w)
	}
}
