// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockBackend records the last request and returns a canned reply.
type mockBackend struct {
	last  Request
	calls int
	reply string
	err   error
}

func (m *mockBackend) Complete(_ context.Context, req Request) (string, error) {
	m.calls++
	m.last = req
	return m.reply, m.err
}

func TestSummarize(t *testing.T) {
	b := &mockBackend{reply: "summary"}
	out, err := Summarize(context.Background(), b, "We study point clouds.", "zh-CN")
	require.NoError(t, err)
	assert.Equal(t, "summary", out)

	assert.Equal(t, SummaryPrompt("zh-CN"), b.last.System)
	assert.Equal(t, "请分析以下论文摘要：\n\nWe study point clouds.", b.last.User)
	assert.InDelta(t, 0.7, b.last.Temperature, 1e-6)
	assert.Equal(t, 800, b.last.MaxTokens)
}

func TestSummarize_EmptyAbstract(t *testing.T) {
	b := &mockBackend{}
	_, err := Summarize(context.Background(), b, "  \n ", "en")
	assert.ErrorIs(t, err, ErrEmptyAbstract)
	assert.Zero(t, b.calls)
}

func TestNormalizeLang(t *testing.T) {
	tests := map[string]string{
		"zh-CN": "zh-CN",
		"zh-cn": "zh-CN",
		"ko":    "ko",
		"fr":    "en",
		"":      "en",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeLang(in), in)
	}
}

func TestSummaryPrompt_AllLanguages(t *testing.T) {
	for _, lang := range Languages {
		assert.NotEmpty(t, SummaryPrompt(lang), lang)
	}
	assert.Equal(t, SummaryPrompt("en"), SummaryPrompt("xx"))
}
