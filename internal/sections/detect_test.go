package sections

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scanner/internal/types"
)

const sampleResume = `Jane Doe

Professional Summary
Seasoned engineer with a decade of distributed-systems work.

Technical Skills
Go, Python, Kubernetes, PostgreSQL

Work Experience
Acme Corp - Staff Engineer (2019-present)

Education
BSc Computer Science

Projects
Open-source contributor to several CNCF projects.

Certifications
CKA, AWS Solutions Architect`

func TestDetect_AllSectionsFound(t *testing.T) {
	hits := Detect(sampleResume)

	for _, name := range types.AllSections {
		assert.True(t, hits[name].Found, "expected section %s to be found", name)
		assert.NotEmpty(t, hits[name].Content, "expected content for section %s", name)
	}
}

func TestDetect_MissingSections(t *testing.T) {
	hits := Detect("just a plain paragraph about nothing in particular")

	for _, name := range types.AllSections {
		assert.False(t, hits[name].Found)
		assert.Empty(t, hits[name].Content)
	}
}

func TestDetect_SynonymHeaders(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		section types.SectionName
	}{
		{"core competencies counts as skills", "Core Competencies\nGo, SQL", types.SectionSkills},
		{"technologies counts as skills", "Technologies\nReact, Vue", types.SectionSkills},
		{"objective counts as summary", "Objective\nSeeking a backend role", types.SectionSummary},
		{"employment history counts as experience", "Employment History\nAcme Corp", types.SectionExperience},
		{"portfolio counts as projects", "Portfolio\nMy side projects", types.SectionProjects},
		{"licenses counts as certificates", "Licenses\nPE License", types.SectionCertificates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := Detect(tt.text)
			assert.True(t, hits[tt.section].Found)
		})
	}
}

func TestDetect_LowestIndexSynonymWins(t *testing.T) {
	// "skills" appears inside "Technical Skills" but the earliest occurrence
	// anchors the window.
	text := "Technical Skills: Go\n\nmore text\n\nSkills again later"
	hits := Detect(text)

	require.True(t, hits[types.SectionSkills].Found)
	assert.True(t, strings.HasPrefix(hits[types.SectionSkills].Content, ": Go"))
}

func TestDetect_WindowIsBounded(t *testing.T) {
	text := "Skills\n" + strings.Repeat("x", 2000)
	hits := Detect(text)

	require.True(t, hits[types.SectionSkills].Found)
	assert.Len(t, hits[types.SectionSkills].Content, windowSize)
}

func TestDetect_WindowClampedAtEndOfText(t *testing.T) {
	text := "Education"
	hits := Detect(text)

	require.True(t, hits[types.SectionEducation].Found)
	assert.Empty(t, hits[types.SectionEducation].Content)
}

func TestDetect_CaseInsensitive(t *testing.T) {
	hits := Detect("EXPERIENCE\nAcme Corp")
	assert.True(t, hits[types.SectionExperience].Found)
}

func TestDetect_Idempotent(t *testing.T) {
	first := Detect(sampleResume)
	second := Detect(sampleResume)

	assert.Equal(t, first, second)
}

func TestDetect_MultiByteTextBeforeHeader(t *testing.T) {
	// U+023A lowers to U+2C65, growing from 2 to 3 bytes, so the lower-cased
	// text is longer than the raw text and header offsets must be remapped.
	text := strings.Repeat("Ⱥ", 600) + "Skills: Go"
	hits := Detect(text)

	require.True(t, hits[types.SectionSkills].Found)
	assert.Equal(t, ": Go", hits[types.SectionSkills].Content)
}

func TestDetect_MultiByteWindowIsCharacters(t *testing.T) {
	text := "Skills\n" + strings.Repeat("日", 2000)
	hits := Detect(text)

	require.True(t, hits[types.SectionSkills].Found)
	content := hits[types.SectionSkills].Content
	assert.True(t, utf8.ValidString(content))
	assert.Equal(t, windowSize, utf8.RuneCountInString(content))
}

func TestDetect_ShrinkingCasePair(t *testing.T) {
	// The Kelvin sign lowers from 3 bytes to 1, shifting offsets the other
	// way; the window must still anchor right after the raw header.
	text := strings.Repeat("K", 100) + "Education: BSc"
	hits := Detect(text)

	require.True(t, hits[types.SectionEducation].Found)
	assert.Equal(t, ": BSc", hits[types.SectionEducation].Content)
}

func TestDetect_SectionsIndependent(t *testing.T) {
	// Overlapping windows are allowed: both headers sit within 500 chars of
	// each other and each captures its own window.
	text := "Skills\nGo, SQL\nExperience\nAcme Corp"
	hits := Detect(text)

	assert.True(t, hits[types.SectionSkills].Found)
	assert.True(t, hits[types.SectionExperience].Found)
	assert.Contains(t, hits[types.SectionSkills].Content, "Experience")
}
