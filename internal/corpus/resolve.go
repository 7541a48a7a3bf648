package corpus

import "strings"

// Resolve returns the keyword list a resume should be scored against: the
// general list, plus the first role list whose key is a case-insensitive
// substring of the target job title. At most one role list is appended, and
// duplicates between the two lists are kept verbatim — downstream matching
// treats the corpus as a set, but score normalization uses the raw length.
func Resolve(c *Corpus, targetJobTitle string) []string {
	resolved := append([]string(nil), c.General...)

	title := strings.ToLower(strings.TrimSpace(targetJobTitle))
	if title == "" {
		return resolved
	}

	for _, role := range c.Roles {
		if strings.Contains(title, role.Key) {
			resolved = append(resolved, role.Keywords...)
			break
		}
	}

	return resolved
}
