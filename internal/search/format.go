// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// FormatTable writes papers as a human-readable table to w.
func FormatTable(papers []types.Paper, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-16s  %-10s  %-60s  %-20s  %s\n", "ID", "Date", "Title", "Authors", "Code")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for _, p := range papers {
		code := ""
		if p.HasCode() {
			code = strings.Join(p.CodeURLs, " ")
		}
		fmt.Fprintf(w, "%-16s  %-10s  %-60s  %-20s  %s\n",
			p.ID, p.PublishedDate(), truncate(p.Title, 60), formatAuthors(p.Authors), code)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(papers))
}

// FormatJSON writes papers as indented JSON to w.
func FormatJSON(papers []types.Paper, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 20)
	default:
		return truncate(authors[0], 14) + " et al."
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
