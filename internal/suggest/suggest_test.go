package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scanner/internal/extraction"
	"github.com/jonathan/ats-scanner/internal/types"
)

func allFound() map[types.SectionName]types.SectionHit {
	hits := make(map[types.SectionName]types.SectionHit)
	for _, name := range types.AllSections {
		hits[name] = types.SectionHit{Found: true, Content: "..."}
	}
	return hits
}

func without(hits map[types.SectionName]types.SectionHit, name types.SectionName) map[types.SectionName]types.SectionHit {
	hits[name] = types.SectionHit{Found: false}
	return hits
}

// strongResume builds input that trips no rules: good match ratio,
// achievement language, all sections, mid-range word count.
func strongResume(t *testing.T) ([]string, int, *types.Extraction, map[types.SectionName]types.SectionHit, string) {
	t.Helper()
	text := "Developed and improved systems. " + strings.Repeat("word ", 400)
	extracted := extraction.Extract(text)
	matched := []string{"go", "sql", "docker", "react"}
	return matched, 10, extracted, allFound(), text
}

func TestBuild_NoSuggestionsForStrongResume(t *testing.T) {
	matched, corpusSize, extracted, hits, text := strongResume(t)

	suggestions := Build(matched, corpusSize, extracted, hits, text)
	assert.Empty(t, suggestions)
}

func TestBuild_LowMatchRatio(t *testing.T) {
	_, _, extracted, hits, text := strongResume(t)

	// 2 of 10 is below the 30% threshold.
	suggestions := Build([]string{"go", "sql"}, 10, extracted, hits, text)
	require.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "keywords")
}

func TestBuild_MatchRatioBoundary(t *testing.T) {
	_, _, extracted, hits, text := strongResume(t)

	// Exactly 30% does not trip the rule (strictly less than).
	suggestions := Build([]string{"a", "b", "c"}, 10, extracted, hits, text)
	assert.Empty(t, suggestions)
}

func TestBuild_MissingAchievementLanguage(t *testing.T) {
	text := "Responsible for systems. " + strings.Repeat("word ", 400)
	extracted := extraction.Extract(text)

	suggestions := Build([]string{"go", "sql", "docker", "react"}, 10, extracted, allFound(), text)
	require.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "achievements")
}

func TestBuild_AchievementVerbsRecognized(t *testing.T) {
	for _, verb := range []string{"achieved", "improved", "increased", "reduced", "optimized", "led", "managed", "delivered", "implemented", "developed"} {
		text := verb + " things. " + strings.Repeat("word ", 400)
		extracted := extraction.Extract(text)

		suggestions := Build([]string{"go", "sql", "docker", "react"}, 10, extracted, allFound(), text)
		assert.Empty(t, suggestions, "verb %q should satisfy the achievement rule", verb)
	}
}

func TestBuild_MissingSummarySection(t *testing.T) {
	matched, corpusSize, extracted, hits, text := strongResume(t)

	suggestions := Build(matched, corpusSize, extracted, without(hits, types.SectionSummary), text)
	require.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "summary")
}

func TestBuild_MissingSkillsSection(t *testing.T) {
	matched, corpusSize, extracted, hits, text := strongResume(t)

	suggestions := Build(matched, corpusSize, extracted, without(hits, types.SectionSkills), text)
	require.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "skills")
}

func TestBuild_WordCountRules(t *testing.T) {
	matched := []string{"go", "sql", "docker", "react"}

	long := "Developed things. " + strings.Repeat("word ", 1100)
	suggestions := Build(matched, 10, extraction.Extract(long), allFound(), long)
	require.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "Condense")

	short := "Developed things and nothing else."
	suggestions = Build(matched, 10, extraction.Extract(short), allFound(), short)
	require.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "Expand")
}

func TestBuild_AllRulesStack(t *testing.T) {
	// A weak, short resume trips keyword, achievement, summary, skills, and
	// length rules at once; rules never short-circuit each other.
	text := "plain text"
	extracted := extraction.Extract(text)
	hits := make(map[types.SectionName]types.SectionHit)
	for _, name := range types.AllSections {
		hits[name] = types.SectionHit{Found: false}
	}

	suggestions := Build(nil, 10, extracted, hits, text)
	assert.Len(t, suggestions, 5)
}

func TestBuild_Deterministic(t *testing.T) {
	text := "plain text"
	extracted := extraction.Extract(text)
	hits := allFound()

	first := Build([]string{"go"}, 10, extracted, hits, text)
	second := Build([]string{"go"}, 10, extracted, hits, text)
	assert.Equal(t, first, second)
}

func TestBuild_EmptyCorpus(t *testing.T) {
	text := "Developed things. " + strings.Repeat("word ", 400)
	extracted := extraction.Extract(text)

	// A zero-size corpus cannot trip the ratio rule.
	suggestions := Build(nil, 0, extracted, allFound(), text)
	assert.Empty(t, suggestions)
}
