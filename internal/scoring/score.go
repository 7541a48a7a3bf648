// Package scoring combines lexical extraction and section detection output
// against a resolved keyword corpus into a bounded [0,100] compatibility
// score with a matched/missing keyword partition.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/ats-scanner/internal/types"
)

const (
	// corpusSizeCap bounds both sides of the normalization ratio so corpora
	// larger than 30 keywords do not further dilute the score.
	corpusSizeCap = 30

	// sectionBonus is added per detected section.
	sectionBonus = 3

	// shortDocumentLength and shortDocumentCap implement the short-document
	// guard: near-empty documents cannot score well by accidentally
	// containing a few common keywords.
	shortDocumentLength = 500
	shortDocumentCap    = 20

	// missingKeywordsLimit caps the reported missing-keyword list.
	missingKeywordsLimit = 50
)

// passedSectionLabels maps detected sections to the human-readable labels
// reported in passedSections. Certificates is detected and counted toward
// the section bonus but has no label here; the omission is preserved for
// compatibility with established score output.
var passedSectionLabels = map[types.SectionName]string{
	types.SectionSummary:    "Professional Summary",
	types.SectionSkills:     "Technical Skills",
	types.SectionExperience: "Experience",
	types.SectionEducation:  "Education",
	types.SectionProjects:   "Projects",
}

// Result is the scoring engine's output before suggestions are attached.
type Result struct {
	Score           int
	MatchedKeywords []string
	MissingKeywords []string
	PassedSections  []string
}

// Score partitions the resolved corpus into matched and missing keywords,
// normalizes the match count into a base score, applies the per-section
// bonus, and enforces the short-document guard. textLength is the document
// length in characters. No input produces a failure; all branches are
// numeric and guarded.
func Score(extracted *types.Extraction, hits map[types.SectionName]types.SectionHit, resolvedCorpus []string, textLength int) Result {
	terms := make(map[string]bool, len(extracted.Words)+len(extracted.Phrases))
	for w := range extracted.Words {
		terms[w] = true
	}
	for _, p := range extracted.Phrases {
		terms[p] = true
	}

	var matched, missing []string
	seen := make(map[string]bool, len(resolvedCorpus))
	for _, kw := range resolvedCorpus {
		key := strings.ToLower(kw)
		if seen[key] {
			continue
		}
		seen[key] = true
		if terms[key] {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := baseScore(len(matched), len(resolvedCorpus))

	found := 0
	for _, name := range types.AllSections {
		if hits[name].Found {
			found++
		}
	}
	score += sectionBonus * found
	if score > 100 {
		score = 100
	}

	if textLength < shortDocumentLength && score > shortDocumentCap {
		score = shortDocumentCap
	}

	var passed []string
	for _, name := range types.AllSections {
		if !hits[name].Found {
			continue
		}
		if label, ok := passedSectionLabels[name]; ok {
			passed = append(passed, label)
		}
	}

	if len(missing) > missingKeywordsLimit {
		missing = missing[:missingKeywordsLimit]
	}

	return Result{
		Score:           score,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		PassedSections:  passed,
	}
}

// baseScore normalizes the match count by the corpus size, capping both at
// corpusSizeCap so a fully-matched oversized corpus still reaches 100.
func baseScore(matched, corpusSize int) int {
	if corpusSize == 0 {
		return 0
	}
	num := matched
	if num > corpusSizeCap {
		num = corpusSizeCap
	}
	den := corpusSize
	if den > corpusSizeCap {
		den = corpusSizeCap
	}
	score := int(math.Round(float64(num) / float64(den) * 100))
	if score > 100 {
		score = 100
	}
	return score
}
