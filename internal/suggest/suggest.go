// Package suggest turns scoring and detection output into human-readable
// improvement suggestions. Every rule is evaluated independently and all
// applicable suggestions are appended; given identical inputs the output is
// identical.
package suggest

import (
	"strings"

	"github.com/jonathan/ats-scanner/internal/types"
)

const (
	// matchRatioThreshold triggers the keyword-density suggestion when fewer
	// than this share of the corpus is matched.
	matchRatioThreshold = 0.3

	maxWordCount = 1000
	minWordCount = 300
)

// achievementWords is the fixed list of achievement-language verbs checked
// against the extracted word set.
var achievementWords = []string{
	"achieved", "improved", "increased", "reduced", "optimized",
	"led", "managed", "delivered", "implemented", "developed",
}

// Build evaluates every suggestion rule against the scan. The word-count
// rules are mutually exclusive by construction: a document cannot be both
// over 1000 and under 300 words.
func Build(matched []string, corpusSize int, extracted *types.Extraction, hits map[types.SectionName]types.SectionHit, rawText string) []string {
	var suggestions []string

	if corpusSize > 0 && float64(len(matched)) < matchRatioThreshold*float64(corpusSize) {
		suggestions = append(suggestions,
			"Add more technical keywords relevant to the target role; ATS filters rank resumes by keyword coverage.")
	}

	if !hasAchievementLanguage(extracted) {
		suggestions = append(suggestions,
			"Use quantifiable, metrics-based achievements (e.g. \"reduced load time by 40%\") instead of listing duties.")
	}

	if !hits[types.SectionSummary].Found {
		suggestions = append(suggestions,
			"Add a professional summary at the top so screeners see your strongest signal first.")
	}

	if !hits[types.SectionSkills].Found {
		suggestions = append(suggestions,
			"Add a dedicated skills section; many ATS parsers look for one explicitly.")
	}

	words := len(strings.Fields(rawText))
	if words > maxWordCount {
		suggestions = append(suggestions,
			"Condense the resume to 1-2 pages; recruiters rarely read past that.")
	} else if words < minWordCount {
		suggestions = append(suggestions,
			"Expand the resume with more detail about your experience and projects.")
	}

	return suggestions
}

// hasAchievementLanguage reports whether any achievement verb appears among
// the extracted words.
func hasAchievementLanguage(extracted *types.Extraction) bool {
	for _, w := range achievementWords {
		if extracted.Words[w] {
			return true
		}
	}
	return false
}
