package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAddAndContains verifies basic add/lookup behavior and the insert
// reports.
func TestAddAndContains(t *testing.T) {
	d := New()

	report := d.Add("category")
	assert.False(t, report.Duplicate)
	assert.Equal(t, 0, report.NodesBefore)
	assert.Equal(t, 8, report.NodesAfter)

	assert.True(t, d.Contains("category"))
	assert.False(t, d.Contains("cat"))
	assert.Equal(t, 1, d.WordCount())
}

// TestAddDuplicate verifies that re-adding a word changes nothing.
func TestAddDuplicate(t *testing.T) {
	d := New()
	d.Add("functor")

	report := d.Add("functor")
	assert.True(t, report.Duplicate)
	assert.Equal(t, report.NodesBefore, report.NodesAfter)
	assert.Equal(t, 1, d.WordCount())
}

// TestAddEmptyWord verifies that the empty word is skipped.
func TestAddEmptyWord(t *testing.T) {
	d := New()

	report := d.Add("")
	assert.True(t, report.Skipped)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 0, d.WordCount())
}

// TestNormalize verifies that the normalize option applies to adds and
// lookups alike.
func TestNormalize(t *testing.T) {
	d := New(WithNormalize(strings.ToLower))
	d.Add("Category")

	assert.True(t, d.Contains("CATEGORY"))
	assert.Equal(t, "cat", d.LongestPrefix("CATamorphism"))
	assert.Equal(t, []string{"category"}, d.Words())
}

// TestLookupReport verifies the combined lookup report.
func TestLookupReport(t *testing.T) {
	d := New()
	for _, w := range []string{"category", "functor", "theory"} {
		d.Add(w)
	}

	report := d.Lookup("catamorphism")
	assert.False(t, report.Found)
	assert.Equal(t, "cat", report.Prefix)

	report = d.Lookup("theory")
	assert.True(t, report.Found)
	assert.Equal(t, "theory", report.Prefix)
}

// TestSnapshotIsImmutable verifies that a snapshot taken before later adds
// never observes them.
func TestSnapshotIsImmutable(t *testing.T) {
	d := New()
	d.Add("category")
	snapshot := d.Snapshot()

	d.Add("functor")

	assert.False(t, snapshot.Exist([]rune("functor")), "A snapshot must not see later adds")
	assert.True(t, snapshot.Exist([]rune("category")))
	assert.True(t, d.Contains("functor"))
}

// TestWordsOrder verifies stored words come back in symbol order.
func TestWordsOrder(t *testing.T) {
	d := New()
	for _, w := range []string{"theory", "category", "functor"} {
		d.Add(w)
	}

	assert.Equal(t, []string{"category", "functor", "theory"}, d.Words())
}
