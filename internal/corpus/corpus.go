// Package corpus provides the keyword corpus the scanner scores resumes
// against: a general technology list plus role-specific lists keyed by
// lower-case role-name fragments. The corpus is a static data asset; this
// package only loads, validates, and resolves it.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed assets/keywords.json
var embeddedCorpus []byte

//go:embed assets/keywords.schema.json
var corpusSchema []byte

// Role is one role-specific keyword list. Key is a lower-case fragment
// matched against job titles by substring containment.
type Role struct {
	Key      string   `json:"key"`
	Keywords []string `json:"keywords"`
}

// Corpus is the full keyword data asset. Roles keep their file order so
// resolution's first-match-wins rule is deterministic.
type Corpus struct {
	General []string `json:"general"`
	Roles   []Role   `json:"roles"`
}

var (
	defaultOnce   sync.Once
	defaultCorpus *Corpus
	defaultErr    error
)

// Default returns the embedded keyword corpus. The embedded asset is parsed
// once; callers receive an independent copy.
func Default() (*Corpus, error) {
	defaultOnce.Do(func() {
		defaultCorpus, defaultErr = parse(embeddedCorpus)
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultCorpus.clone(), nil
}

// Load reads a corpus from an external JSON file, validating it against the
// corpus schema first. This is the swap point for alternative keyword assets.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("corpus file %s: %w", path, err)
	}
	return c, nil
}

// parse validates raw corpus JSON against the embedded schema and unmarshals it.
func parse(data []byte) (*Corpus, error) {
	schemaLoader := gojsonschema.NewBytesLoader(corpusSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("corpus schema validation failed to run: %w", err)
	}
	if !result.Valid() {
		var sb strings.Builder
		sb.WriteString("corpus does not match schema:")
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			sb.WriteString(fmt.Sprintf(" %s: %s;", field, desc.Description()))
		}
		return nil, fmt.Errorf("%s", strings.TrimSuffix(sb.String(), ";"))
	}

	var c Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse corpus JSON: %w", err)
	}

	// Role keys are matched lower-case against lower-cased job titles.
	for i := range c.Roles {
		c.Roles[i].Key = strings.ToLower(strings.TrimSpace(c.Roles[i].Key))
	}

	return &c, nil
}

// clone returns a deep copy so the shared parsed asset stays immutable.
func (c *Corpus) clone() *Corpus {
	out := &Corpus{
		General: append([]string(nil), c.General...),
		Roles:   make([]Role, len(c.Roles)),
	}
	for i, r := range c.Roles {
		out.Roles[i] = Role{
			Key:      r.Key,
			Keywords: append([]string(nil), r.Keywords...),
		}
	}
	return out
}
