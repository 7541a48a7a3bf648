package history

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scanner/internal/types"
)

func resultWithScore(score int, matched ...string) *types.ATSResult {
	return &types.ATSResult{
		Score:           score,
		TotalKeywords:   len(matched),
		MatchedKeywords: matched,
	}
}

func TestTracker_BoundedFIFO(t *testing.T) {
	tracker := NewTracker(5)

	for i := 1; i <= 7; i++ {
		tracker.Record(fmt.Sprintf("resume %d", i), resultWithScore(i*10))
	}

	entries := tracker.Entries()
	require.Len(t, entries, 5)

	// The two oldest scans are evicted; insertion order is preserved.
	for i, entry := range entries {
		assert.Equal(t, fmt.Sprintf("resume %d", i+3), entry.Text)
		assert.Equal(t, (i+3)*10, entry.Result.Score)
	}
}

func TestTracker_DefaultCapacity(t *testing.T) {
	tracker := NewTracker(0)

	for i := 0; i < 10; i++ {
		tracker.Record("text", resultWithScore(i))
	}
	assert.Equal(t, DefaultCapacity, tracker.Len())
}

func TestTracker_EntriesOwnCopies(t *testing.T) {
	tracker := NewTracker(5)

	live := resultWithScore(40, "go")
	tracker.Record("text", live)

	// Mutating the live result after recording must not corrupt history.
	live.Score = 99
	live.MatchedKeywords[0] = "mutated"

	entry := tracker.Entries()[0]
	assert.Equal(t, 40, entry.Result.Score)
	assert.Equal(t, "go", entry.Result.MatchedKeywords[0])
}

func TestTracker_EntryMetadata(t *testing.T) {
	tracker := NewTracker(5)

	entry := tracker.Record("text", resultWithScore(10))
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", entry.ID.String())
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestTracker_LastTwo(t *testing.T) {
	tracker := NewTracker(5)

	_, _, ok := tracker.LastTwo()
	assert.False(t, ok)

	tracker.Record("first", resultWithScore(10))
	_, _, ok = tracker.LastTwo()
	assert.False(t, ok)

	tracker.Record("second", resultWithScore(20))
	previous, current, ok := tracker.LastTwo()
	require.True(t, ok)
	assert.Equal(t, "first", previous.Text)
	assert.Equal(t, "second", current.Text)
}

func TestTracker_Compare(t *testing.T) {
	tracker := NewTracker(5)

	_, ok := tracker.Compare()
	assert.False(t, ok)

	tracker.Record("v1", resultWithScore(40, "go", "sql"))
	tracker.Record("v2", resultWithScore(55, "go", "sql", "docker", "react"))

	comparison, ok := tracker.Compare()
	require.True(t, ok)
	assert.Equal(t, 15, comparison.ScoreDelta)
	assert.ElementsMatch(t, []string{"docker", "react"}, comparison.NewKeywords)
	assert.True(t, comparison.Improved)
}

func TestTracker_CompareRegression(t *testing.T) {
	tracker := NewTracker(5)

	tracker.Record("v1", resultWithScore(60, "go", "sql"))
	tracker.Record("v2", resultWithScore(45, "go"))

	comparison, ok := tracker.Compare()
	require.True(t, ok)
	assert.Equal(t, -15, comparison.ScoreDelta)
	assert.Empty(t, comparison.NewKeywords)
	assert.False(t, comparison.Improved)
}

func TestTracker_CompareUsesMostRecentPair(t *testing.T) {
	tracker := NewTracker(5)

	tracker.Record("v1", resultWithScore(10))
	tracker.Record("v2", resultWithScore(20))
	tracker.Record("v3", resultWithScore(50))

	comparison, ok := tracker.Compare()
	require.True(t, ok)
	assert.Equal(t, 30, comparison.ScoreDelta)
}
