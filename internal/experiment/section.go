// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package experiment

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/paper-digest/pkg/types"
)

const (
	// maxSectionLines caps the lines captured after each heading match.
	maxSectionLines = 100
	// minSectionChars is the least captured text trusted over the fallback.
	minSectionChars = 1000
)

// sectionPatterns mark lines that open an experiment-related span. Each
// keyword also matches its Chinese form.
var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(experiment|实验)`),
	regexp.MustCompile(`(?i)(implementation|实现)`),
	regexp.MustCompile(`(?i)(training|训练)`),
	regexp.MustCompile(`(?i)(setup|设置)`),
	regexp.MustCompile(`(?i)(hyperparameter|超参数)`),
	regexp.MustCompile(`(?i)(configuration|配置)`),
	regexp.MustCompile(`(?i)(baseline|基准)`),
	regexp.MustCompile(`(?i)(ablation|消融)`),
}

func isSectionHeading(line string) bool {
	for _, re := range sectionPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// LocateExperimentSection returns the part of fullText most likely to
// describe the experimental setup, at most types.MaxExperimentChars runes.
//
// Every line matching a section keyword starts (or restarts) a capture of
// up to 101 lines including itself. When the captured text is shorter than
// 1000 runes the middle third of the document is used instead.
func LocateExperimentSection(fullText string) string {
	var captured []string
	inSection := false
	count := 0

	for _, line := range strings.Split(fullText, "\n") {
		if isSectionHeading(line) {
			inSection = true
			count = 0
		}
		if !inSection {
			continue
		}
		captured = append(captured, line)
		count++
		if count > maxSectionLines {
			inSection = false
		}
	}

	result := strings.Join(captured, "\n")
	if utf8.RuneCountInString(result) < minSectionChars {
		result = middleThird(fullText)
	}
	return truncateRunes(result, types.MaxExperimentChars)
}

// middleThird returns runes [n/3, 2n/3) of s.
func middleThird(s string) string {
	runes := []rune(s)
	n := len(runes)
	return string(runes[n/3 : 2*n/3])
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
