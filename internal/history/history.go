// Package history retains the most recent scans for the active session so
// consecutive results can be compared. The tracker is a bounded FIFO — no
// scan outlives the process, matching the session-scoped design.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/ats-scanner/internal/types"
)

// DefaultCapacity is the number of scans retained before eviction.
const DefaultCapacity = 5

// Entry is one recorded scan. Entries own deep copies of the result and are
// never mutated after creation.
type Entry struct {
	ID        uuid.UUID        `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Text      string           `json:"-"`
	Result    *types.ATSResult `json:"result"`
}

// Comparison describes the change between the two most recent scans.
type Comparison struct {
	ScoreDelta  int      `json:"score_delta"`
	NewKeywords []string `json:"new_keywords"`
	Improved    bool     `json:"improved"`
}

// Tracker is a bounded FIFO of scan entries. It is safe for concurrent use;
// the HTTP server records scans from request goroutines.
type Tracker struct {
	mu       sync.Mutex
	capacity int
	entries  []*Entry
}

// NewTracker creates a tracker with the given capacity; non-positive values
// fall back to DefaultCapacity.
func NewTracker(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Tracker{capacity: capacity}
}

// Record appends a scan, evicting the oldest entry once capacity is exceeded.
func (t *Tracker) Record(text string, result *types.ATSResult) *Entry {
	entry := &Entry{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Text:      text,
		Result:    result.Clone(),
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, entry)
	if len(t.entries) > t.capacity {
		t.entries = t.entries[len(t.entries)-t.capacity:]
	}
	return entry
}

// Entries returns the retained scans in insertion order.
func (t *Tracker) Entries() []*Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Entry(nil), t.entries...)
}

// Len returns the number of retained scans.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// LastTwo returns the previous and current scans, or ok=false until at least
// two scans have been recorded.
func (t *Tracker) LastTwo() (previous, current *Entry, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.entries) < 2 {
		return nil, nil, false
	}
	return t.entries[len(t.entries)-2], t.entries[len(t.entries)-1], true
}

// Compare computes the score delta and newly gained keywords between the two
// most recent scans. Returns ok=false until two scans exist.
func (t *Tracker) Compare() (Comparison, bool) {
	previous, current, ok := t.LastTwo()
	if !ok {
		return Comparison{}, false
	}

	prevMatched := make(map[string]bool, len(previous.Result.MatchedKeywords))
	for _, kw := range previous.Result.MatchedKeywords {
		prevMatched[kw] = true
	}

	var gained []string
	for _, kw := range current.Result.MatchedKeywords {
		if !prevMatched[kw] {
			gained = append(gained, kw)
		}
	}

	delta := current.Result.Score - previous.Result.Score
	return Comparison{
		ScoreDelta:  delta,
		NewKeywords: gained,
		Improved:    delta > 0,
	}, true
}
