// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords ranks the vocabulary of a batch of abstracts for trend
// detection. The stop-word table filters academic boilerplate as well as
// function words, so what survives is the batch's subject matter.
package keywords

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/paper-digest/pkg/types"
)

// Defaults for Extract.
const (
	DefaultMinWordLength = 3
	DefaultMaxWords      = 100
)

// tokenPattern accepts internally hyphenated words and plain alphabetic runs.
// RE2's \b only knows ASCII word characters; asciiWordMask makes non-ASCII
// letters and digits count as word characters before matching.
var tokenPattern = regexp.MustCompile(`\b[a-z][a-z-]*[a-z]\b|\b[a-z]{2,}\b`)

// asciiWordMask replaces every non-ASCII letter or number with '_', which
// \b treats as a word character and no token class accepts. "résumé" then
// yields no token instead of "sum".
func asciiWordMask(r rune) rune {
	if r >= utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsNumber(r)) {
		return '_'
	}
	return r
}

// Extract returns up to maxWords tokens of abstracts ranked by descending
// count. Tokens with equal counts keep the order in which they first appear.
// Non-positive arguments select the defaults.
func Extract(abstracts []string, minWordLength, maxWords int) []types.KeywordCount {
	if minWordLength <= 0 {
		minWordLength = DefaultMinWordLength
	}
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}

	text := strings.Map(asciiWordMask, strings.ToLower(strings.Join(abstracts, " ")))

	index := make(map[string]int)
	var ranked []types.KeywordCount
	for _, word := range tokenPattern.FindAllString(text, -1) {
		if !keep(word, minWordLength) {
			continue
		}
		if i, ok := index[word]; ok {
			ranked[i].Count++
			continue
		}
		index[word] = len(ranked)
		ranked = append(ranked, types.KeywordCount{Word: word, Count: 1})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > maxWords {
		ranked = ranked[:maxWords]
	}
	return ranked
}

// Top returns the first topN entries of Extract with default settings.
func Top(abstracts []string, topN int) []types.KeywordCount {
	ranked := Extract(abstracts, DefaultMinWordLength, DefaultMaxWords)
	if topN >= 0 && topN < len(ranked) {
		ranked = ranked[:topN]
	}
	return ranked
}

func keep(word string, minLen int) bool {
	if len(word) < minLen || IsStopWord(word) {
		return false
	}
	return strings.Trim(word, "0123456789") != ""
}
