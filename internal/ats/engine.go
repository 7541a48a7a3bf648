// Package ats provides the high-level orchestration for a resume scan:
// corpus resolution, lexical extraction, section detection, scoring, and
// suggestion generation.
package ats

import (
	"fmt"
	"unicode/utf8"

	"github.com/jonathan/ats-scanner/internal/corpus"
	"github.com/jonathan/ats-scanner/internal/extraction"
	"github.com/jonathan/ats-scanner/internal/scoring"
	"github.com/jonathan/ats-scanner/internal/sections"
	"github.com/jonathan/ats-scanner/internal/suggest"
	"github.com/jonathan/ats-scanner/internal/types"
)

// Engine scores resumes against an injected, immutable keyword corpus.
// A scan is a pure synchronous computation: identical inputs yield an
// identical result, and the engine either returns a complete result or an
// error, never a partial one.
type Engine struct {
	corpus *corpus.Corpus
}

// NewEngine creates an engine bound to the given corpus.
func NewEngine(c *corpus.Corpus) *Engine {
	return &Engine{corpus: c}
}

// NewDefaultEngine creates an engine bound to the embedded corpus asset.
func NewDefaultEngine() (*Engine, error) {
	c, err := corpus.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load default corpus: %w", err)
	}
	return NewEngine(c), nil
}

// Scan runs the full pipeline over a scan request. Requests with empty
// resume text are rejected before any extraction runs.
func (e *Engine) Scan(req *types.ScanRequest) (*types.ATSResult, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scan request: %w", err)
	}

	resolved := corpus.Resolve(e.corpus, req.TargetJobTitle)

	extracted := extraction.Extract(req.ResumeText)
	hits := sections.Detect(req.ResumeText)

	// The short-document guard is defined in characters, not bytes.
	scored := scoring.Score(extracted, hits, resolved, utf8.RuneCountInString(req.ResumeText))

	suggestions := suggest.Build(scored.MatchedKeywords, len(resolved), extracted, hits, req.ResumeText)

	detected := make([]types.SectionName, 0, len(types.AllSections))
	for _, name := range types.AllSections {
		if hits[name].Found {
			detected = append(detected, name)
		}
	}

	return &types.ATSResult{
		Score:           scored.Score,
		TotalKeywords:   len(resolved),
		MatchedKeywords: scored.MatchedKeywords,
		MissingKeywords: scored.MissingKeywords,
		PassedSections:  scored.PassedSections,
		Suggestions:     suggestions,
		JobTitle:        req.TargetJobTitle,
		Sections:        detected,
	}, nil
}
