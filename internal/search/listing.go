// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// Listing is a saved search: the query and the papers it returned. Trends
// can be recomputed from a listing without querying arXiv again.
type Listing struct {
	Query      string        `yaml:"query"`
	MaxResults int           `yaml:"max_results"`
	FetchedAt  time.Time     `yaml:"fetched_at"`
	Papers     []types.Paper `yaml:"papers"`
}

// Abstracts returns the abstracts of the listed papers in order.
func (l *Listing) Abstracts() []string {
	out := make([]string, 0, len(l.Papers))
	for _, p := range l.Papers {
		out = append(out, p.Abstract)
	}
	return out
}

// WriteListing saves a listing to a YAML file.
func WriteListing(path, query string, maxResults int, papers []types.Paper) error {
	l := Listing{
		Query:      query,
		MaxResults: maxResults,
		FetchedAt:  time.Now().UTC(),
		Papers:     papers,
	}
	data, err := yaml.Marshal(&l)
	if err != nil {
		return fmt.Errorf("marshaling listing: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadListing loads a listing saved by WriteListing.
func ReadListing(path string) (*Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading listing: %w", err)
	}
	var l Listing
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing listing: %w", err)
	}
	return &l, nil
}
