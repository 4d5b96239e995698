// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// category keeps favorites grouped and in insertion order on disk.
type category struct {
	Name   string                `yaml:"name"`
	Papers []types.FavoritePaper `yaml:"papers"`
}

type favoritesDoc struct {
	Categories []category `yaml:"categories"`
}

// now is replaced in tests.
var now = time.Now

func (s *Store) favorites() (favoritesDoc, error) {
	var doc favoritesDoc
	err := s.load(favoritesFile, &doc)
	return doc, err
}

func (d *favoritesDoc) find(name string) int {
	for i, c := range d.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// AddFavorite saves p under cat. A paper may appear in several categories
// but only once per category.
func (s *Store) AddFavorite(p types.Paper, cat string) error {
	cat = strings.TrimSpace(cat)
	if cat == "" {
		return fmt.Errorf("category: %w", ErrEmpty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.favorites()
	if err != nil {
		return err
	}
	fav := types.FavoritePaper{Paper: p, Category: cat, FavoritedAt: now().UTC().Truncate(time.Second)}

	i := doc.find(cat)
	if i < 0 {
		doc.Categories = append(doc.Categories, category{Name: cat, Papers: []types.FavoritePaper{fav}})
		return s.save(favoritesFile, doc)
	}
	for _, existing := range doc.Categories[i].Papers {
		if existing.ID == p.ID {
			return fmt.Errorf("paper %s in %q: %w", p.ID, cat, ErrDuplicate)
		}
	}
	doc.Categories[i].Papers = append(doc.Categories[i].Papers, fav)
	return s.save(favoritesFile, doc)
}

// RemoveFavorite removes paper id from cat. A category left empty is
// deleted.
func (s *Store) RemoveFavorite(id, cat string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.favorites()
	if err != nil {
		return err
	}
	i := doc.find(cat)
	if i < 0 {
		return fmt.Errorf("category %q: %w", cat, ErrNotFound)
	}
	papers := doc.Categories[i].Papers
	for j, p := range papers {
		if p.ID != id {
			continue
		}
		papers = append(papers[:j], papers[j+1:]...)
		if len(papers) == 0 {
			doc.Categories = append(doc.Categories[:i], doc.Categories[i+1:]...)
		} else {
			doc.Categories[i].Papers = papers
		}
		return s.save(favoritesFile, doc)
	}
	return fmt.Errorf("paper %s in %q: %w", id, cat, ErrNotFound)
}

// IsFavorited reports whether paper id is saved in any category and, if so,
// the first category holding it.
func (s *Store) IsFavorited(id string) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.favorites()
	if err != nil {
		return false, "", err
	}
	for _, c := range doc.Categories {
		for _, p := range c.Papers {
			if p.ID == id {
				return true, c.Name, nil
			}
		}
	}
	return false, "", nil
}

// Categories returns the category names in creation order.
func (s *Store) Categories() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.favorites()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		names = append(names, c.Name)
	}
	return names, nil
}

// Favorites returns the papers saved under cat, or every favorite when cat
// is empty.
func (s *Store) Favorites(cat string) ([]types.FavoritePaper, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.favorites()
	if err != nil {
		return nil, err
	}
	var out []types.FavoritePaper
	for _, c := range doc.Categories {
		if cat == "" || c.Name == cat {
			out = append(out, c.Papers...)
		}
	}
	return out, nil
}

// DeleteCategory removes cat and every paper in it.
func (s *Store) DeleteCategory(cat string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.favorites()
	if err != nil {
		return err
	}
	i := doc.find(cat)
	if i < 0 {
		return fmt.Errorf("category %q: %w", cat, ErrNotFound)
	}
	doc.Categories = append(doc.Categories[:i], doc.Categories[i+1:]...)
	return s.save(favoritesFile, doc)
}
