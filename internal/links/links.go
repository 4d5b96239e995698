// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package links finds code repository and project page URLs in abstract
// text. Matching is purely textual; nothing is fetched.
package links

import (
	"regexp"
	"sort"
	"strings"
)

// codeURLPatterns are matched case-insensitively, in order.
var codeURLPatterns = []*regexp.Regexp{
	// GitHub repositories
	regexp.MustCompile(`(?i)https?://(?:www\.)?github\.com/[\w\-\.]+/[\w\-\.]+(?:/[\w\-\./]*)?`),
	regexp.MustCompile(`(?i)https?://[\w\-]+\.github\.io(?:/[\w\-\./]*)?`),
	// GitLab repositories
	regexp.MustCompile(`(?i)https?://(?:www\.)?gitlab\.com/[\w\-\.]+/[\w\-\.]+(?:/[\w\-\./]*)?`),
	// Static project pages
	regexp.MustCompile(`(?i)https?://[\w\-]+\.(?:github\.io|gitlab\.io|pages\.dev)(?:/[\w\-\./]*)?`),
	// Anything naming a project page, code or demo
	regexp.MustCompile(`(?i)https?://[^\s\)\]]+(?:project[_\-]?page|code|demo|homepage)[^\s\)\]]*`),
}

// trailingPunct is stripped from the end of every match.
const trailingPunct = ".,;:!?)]>"

// ExtractCodeURLs returns the distinct code and project page URLs in text,
// sorted, with trailing sentence and bracket punctuation removed.
func ExtractCodeURLs(text string) []string {
	seen := make(map[string]struct{})
	for _, re := range codeURLPatterns {
		for _, m := range re.FindAllString(text, -1) {
			if u := strings.TrimRight(m, trailingPunct); u != "" {
				seen[u] = struct{}{}
			}
		}
	}

	urls := make([]string, 0, len(seen))
	for u := range seen {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}
