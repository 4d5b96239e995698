// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-digest/internal/httputil"
	"github.com/pdiddy/paper-digest/pkg/types"
)

func init() {
	httputil.RetryBaseDelay = time.Millisecond
}

const sampleArxivXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2401.12345v1</id>
    <title>Sparse Point Cloud
      Transformers</title>
    <summary>We propose a point cloud transformer.
Code is available at https://github.com/foo/pct.</summary>
    <published>2024-01-22T17:57:34Z</published>
    <author><name>Ada Lovelace</name></author>
    <author><name> Alan Turing </name></author>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2401.00001v2</id>
    <title>Graph Diffusion</title>
    <summary>Diffusion on graphs.</summary>
    <published>2024-01-01T00:00:00Z</published>
    <author><name>Grace Hopper</name></author>
  </entry>
</feed>`

const emptyArxivXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"></feed>`

func withArxivServer(t *testing.T, h http.HandlerFunc) {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	t.Cleanup(func() { arxivAPIBase = old })
}

func testClient() *Client {
	return New(types.SearchConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "test/0.1", MaxRetries: 1},
		Interval:   time.Millisecond,
	}, nil)
}

func TestRecent(t *testing.T) {
	var got url.Values
	var ua string
	withArxivServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		ua = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, sampleArxivXML)
	})

	papers, err := testClient().Recent(context.Background(), "  point   cloud ", 0)
	require.NoError(t, err)
	require.Len(t, papers, 2)

	assert.Equal(t, "point cloud", got.Get("search_query"))
	assert.Equal(t, "submittedDate", got.Get("sortBy"))
	assert.Equal(t, "descending", got.Get("sortOrder"))
	assert.Equal(t, "5", got.Get("max_results"))
	assert.Equal(t, "test/0.1", ua)

	p := papers[0]
	assert.Equal(t, "2401.12345v1", p.ID)
	assert.Equal(t, "Sparse Point Cloud Transformers", p.Title)
	assert.Equal(t, []string{"Ada Lovelace", "Alan Turing"}, p.Authors)
	assert.Equal(t, "We propose a point cloud transformer. Code is available at https://github.com/foo/pct.", p.Abstract)
	assert.Equal(t, "http://arxiv.org/abs/2401.12345v1", p.URL)
	assert.Equal(t, "2024-01-22", p.PublishedDate())
	assert.Equal(t, []string{"https://github.com/foo/pct"}, p.CodeURLs)
	assert.True(t, p.HasCode())

	assert.False(t, papers[1].HasCode())
}

func TestRecent_MaxResults(t *testing.T) {
	var got string
	withArxivServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("max_results")
		fmt.Fprint(w, sampleArxivXML)
	})

	_, err := testClient().Recent(context.Background(), "llm agents", 20)
	require.NoError(t, err)
	assert.Equal(t, "20", got)
}

func TestRecent_EmptyQuery(t *testing.T) {
	_, err := testClient().Recent(context.Background(), "   ", 5)
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestRecent_NoResults(t *testing.T) {
	withArxivServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, emptyArxivXML)
	})

	_, err := testClient().Recent(context.Background(), "nothing matches", 5)
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestRecent_RateLimited(t *testing.T) {
	var calls int32
	withArxivServer(t, func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := testClient().Recent(context.Background(), "point cloud", 5)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "one retry before giving up")
}

func TestRecent_ServerError(t *testing.T) {
	withArxivServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := testClient().Recent(context.Background(), "point cloud", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestRecent_PacesRequests(t *testing.T) {
	withArxivServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, sampleArxivXML)
	})

	c := New(types.SearchConfig{Interval: 80 * time.Millisecond}, nil)
	start := time.Now()
	for i := 0; i < 2; i++ {
		_, err := c.Recent(context.Background(), "q", 1)
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestLookup(t *testing.T) {
	var got url.Values
	withArxivServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		fmt.Fprint(w, sampleArxivXML)
	})

	p, err := testClient().Lookup(context.Background(), "2401.12345v1")
	require.NoError(t, err)
	assert.Equal(t, "2401.12345v1", got.Get("id_list"))
	assert.Equal(t, "2401.12345v1", p.ID)
}

func TestLookup_Unknown(t *testing.T) {
	withArxivServer(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<feed xmlns="http://www.w3.org/2005/Atom"><entry><id>http://arxiv.org/api/errors#incorrect_id_format</id><title>Error</title></entry></feed>`)
	})

	_, err := testClient().Lookup(context.Background(), "bogus")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestShortID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"http://arxiv.org/abs/2301.07041v1", "2301.07041v1"},
		{"https://arxiv.org/abs/2301.12345", "2301.12345"},
		{"http://arxiv.org/abs/hep-th/9901001v1", "hep-th/9901001v1"},
		{"not a url", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := shortID(tt.input); got != tt.want {
				t.Errorf("shortID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatTable(t *testing.T) {
	papers := []types.Paper{
		{ID: "2401.1v1", Title: "Paper A", Authors: []string{"Smith"}, Published: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), CodeURLs: []string{"https://github.com/a/b"}},
		{ID: "2401.2v1", Title: strings.Repeat("Long ", 20), Authors: []string{"Jones", "Doe"}},
	}

	var buf bytes.Buffer
	FormatTable(papers, &buf)
	s := buf.String()

	assert.Contains(t, s, "Paper A")
	assert.Contains(t, s, "2024-01-02")
	assert.Contains(t, s, "https://github.com/a/b")
	assert.Contains(t, s, "Jones et al.")
	assert.Contains(t, s, "...")
	assert.Contains(t, s, "2 papers")
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	assert.Contains(t, buf.String(), "No results")
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON([]types.Paper{{ID: "2301.07041v1", Title: "Paper A"}}, &buf))

	var parsed []types.Paper
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "2301.07041v1", parsed[0].ID)
}

func TestListingRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing.yaml")
	papers := []types.Paper{
		{ID: "a", Abstract: "first abstract"},
		{ID: "b", Abstract: "second abstract", CodeURLs: []string{"https://github.com/x/y"}},
	}
	require.NoError(t, WriteListing(path, "point cloud", 5, papers))

	l, err := ReadListing(path)
	require.NoError(t, err)
	assert.Equal(t, "point cloud", l.Query)
	assert.Equal(t, 5, l.MaxResults)
	assert.False(t, l.FetchedAt.IsZero())
	assert.Equal(t, []string{"first abstract", "second abstract"}, l.Abstracts())
	assert.Equal(t, []string{"https://github.com/x/y"}, l.Papers[1].CodeURLs)
}

func TestReadListing_Missing(t *testing.T) {
	_, err := ReadListing(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
