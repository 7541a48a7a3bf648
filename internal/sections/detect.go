// Package sections heuristically locates named resume sections by
// header-keyword search. A hit's content is the fixed-length window of raw
// text following the header occurrence; the window may bleed into an
// adjacent section, and that bleed is an accepted limitation — downstream
// scoring is calibrated against it.
package sections

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-scanner/internal/types"
)

// windowSize is the number of characters captured after a header hit.
const windowSize = 500

// headerSynonyms lists the acceptable header spellings per section. The
// synonym with the lowest string index in the document wins.
var headerSynonyms = map[types.SectionName][]string{
	types.SectionSummary: {
		"summary", "professional summary", "profile", "objective", "about me",
	},
	types.SectionSkills: {
		"skills", "technical skills", "core competencies", "technologies",
	},
	types.SectionExperience: {
		"experience", "work experience", "professional experience",
		"employment history", "work history",
	},
	types.SectionEducation: {
		"education", "academic background", "qualifications",
	},
	types.SectionProjects: {
		"projects", "personal projects", "portfolio",
	},
	types.SectionCertificates: {
		"certificates", "certifications", "licenses",
	},
}

// Detect checks each of the six fixed sections independently against the
// lower-cased text. Detection of one section never excludes another, so
// captured windows may overlap.
func Detect(text string) map[types.SectionName]types.SectionHit {
	hits := make(map[types.SectionName]types.SectionHit, len(types.AllSections))
	lower := strings.ToLower(text)

	for _, name := range types.AllSections {
		hits[name] = detectOne(text, lower, headerSynonyms[name])
	}

	return hits
}

// detectOne finds the earliest synonym occurrence and captures the raw-text
// window after it.
func detectOne(text, lower string, synonyms []string) types.SectionHit {
	best := -1
	bestLen := 0
	for _, syn := range synonyms {
		idx := strings.Index(lower, syn)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
			bestLen = len(syn)
		}
	}

	if best < 0 {
		return types.SectionHit{Found: false}
	}

	// Indices found in the lower-cased text cannot slice the raw text
	// directly: lowering can change rune widths (U+023A is 2 bytes, its
	// lower case is 3), so the offset is mapped back rune by rune.
	start := rawOffset(text, lower, best+bestLen)
	end := start
	for n := windowSize; n > 0 && end < len(text); n-- {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}

	return types.SectionHit{Found: true, Content: text[start:end]}
}

// rawOffset maps a byte offset in the lower-cased text to the corresponding
// byte offset in the raw text. strings.ToLower maps runes one to one, so the
// two strings are walked in parallel.
func rawOffset(text, lower string, lowerOff int) int {
	ti, li := 0, 0
	for li < lowerOff && ti < len(text) {
		_, ts := utf8.DecodeRuneInString(text[ti:])
		_, ls := utf8.DecodeRuneInString(lower[li:])
		ti += ts
		li += ls
	}
	return ti
}
