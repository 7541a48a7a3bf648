// Package extraction tokenizes raw resume text into lexical signal: unique
// single-word terms plus occurrences of a fixed catalogue of multi-word
// technical phrases. Matching is exact and case-insensitive by design, with
// no stemming or synonym expansion, so scoring stays deterministic and
// auditable.
package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-scanner/internal/types"
)

// wordRe matches maximal runs of word characters.
var wordRe = regexp.MustCompile(`\w+`)

// Extract tokenizes text against the default phrase catalogue.
func Extract(text string) *types.Extraction {
	return ExtractWithPhrases(text, DefaultPhrases)
}

// ExtractWithPhrases tokenizes text into a deduplicated lower-cased word set
// and appends one phrase entry per catalogue-phrase occurrence, in catalogue
// order. Empty or whitespace-only input yields empty outputs without error.
func ExtractWithPhrases(text string, phrases []string) *types.Extraction {
	result := &types.Extraction{
		Words: make(map[string]bool),
	}

	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return result
	}

	for _, token := range wordRe.FindAllString(lower, -1) {
		result.Words[token] = true
	}

	for _, phrase := range phrases {
		needle := strings.ToLower(phrase)
		for n := strings.Count(lower, needle); n > 0; n-- {
			result.Phrases = append(result.Phrases, needle)
		}
	}

	return result
}
