// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"regexp"
	"strings"
)

// arxivPDFBase is the PDF endpoint used when only an arXiv id is known.
// Declared as a var so tests can substitute an httptest server.
var arxivPDFBase = "https://arxiv.org/pdf/"

// arxivIDPattern matches new-style arXiv IDs: "2301.07041", "arXiv:2301.07041",
// "2301.07041v2".
var arxivIDPattern = regexp.MustCompile(`^(?:arXiv:)?(\d{4}\.\d{4,5}(?:v\d+)?)$`)

// cacheKeyReplacer turns an identifier into a flat filename stem.
var cacheKeyReplacer = strings.NewReplacer("/", "_", ":", "_")

// ResolvePDFURL derives the PDF download URL from an abstract page URL.
// An "/abs/" path becomes "/pdf/" with a ".pdf" suffix; any other arxiv.org
// URL is reduced to its last path segment; everything else is returned
// unchanged. It never fails and performs no I/O.
func ResolvePDFURL(abstractPageURL string) string {
	if strings.Contains(abstractPageURL, "/abs/") {
		return strings.ReplaceAll(abstractPageURL, "/abs/", "/pdf/") + ".pdf"
	}
	if strings.Contains(abstractPageURL, "arxiv.org") {
		id := abstractPageURL[strings.LastIndex(abstractPageURL, "/")+1:]
		return arxivPDFBase + id + ".pdf"
	}
	return abstractPageURL
}

// CacheKey returns the filesystem-safe filename stem for a paper identifier.
func CacheKey(id string) string {
	return cacheKeyReplacer.Replace(id)
}

// NormalizeID extracts the short arXiv identifier from a bare ID, an
// "arXiv:"-prefixed ID, or an abstract/PDF URL. The version suffix is kept.
// The second return value is false when nothing resembling an arXiv ID is found.
func NormalizeID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if m := arxivIDPattern.FindStringSubmatch(s); m != nil {
		return m[1], true
	}
	for _, marker := range []string{"/abs/", "/pdf/"} {
		if idx := strings.Index(s, marker); idx >= 0 {
			id := strings.TrimSuffix(s[idx+len(marker):], ".pdf")
			id = strings.TrimRight(id, "/")
			if id != "" {
				return id, true
			}
		}
	}
	return "", false
}

// AbstractURL returns the canonical abstract page for an arXiv identifier.
func AbstractURL(id string) string {
	return "https://arxiv.org/abs/" + id
}
