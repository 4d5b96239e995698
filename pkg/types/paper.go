// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for paper-digest: the paper
// record returned by the listing fetch, the harvested artifacts derived from a
// paper's PDF, and the typed configuration for every stage.
package types

import "time"

// Paper holds the metadata of one preprint as returned by the arXiv listing.
// It is the only paper shape in the system; favorites embed it.
type Paper struct {
	// ID is the short arXiv identifier including version (e.g. "2401.12345v1").
	ID string `json:"id" yaml:"id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the paper abstract with newlines folded to spaces.
	Abstract string `json:"abstract" yaml:"abstract"`

	// URL is the abstract page (e.g. "http://arxiv.org/abs/2401.12345v1").
	URL string `json:"url" yaml:"url"`

	// Published is the first submission date.
	Published time.Time `json:"published" yaml:"published"`

	// CodeURLs lists code repository and project page links found in the abstract.
	CodeURLs []string `json:"code_urls,omitempty" yaml:"code_urls,omitempty"`
}

// HasCode reports whether the abstract links to code or a project page.
func (p Paper) HasCode() bool {
	return len(p.CodeURLs) > 0
}

// PublishedDate formats Published as YYYY-MM-DD, or "" when unknown.
func (p Paper) PublishedDate() string {
	if p.Published.IsZero() {
		return ""
	}
	return p.Published.Format("2006-01-02")
}

// FavoritePaper is a paper saved under a user-chosen category.
type FavoritePaper struct {
	Paper `yaml:",inline"`

	// Category is the favorites folder, usually a subscribed topic.
	Category string `json:"category" yaml:"category"`

	// FavoritedAt records when the paper was saved.
	FavoritedAt time.Time `json:"favorited_at" yaml:"favorited_at"`
}
