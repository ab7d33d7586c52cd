package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseText verifies plain text parsing skips blanks and comments.
func TestParseText(t *testing.T) {
	path := writeTempFile(t, "words.txt", "category\n\n# a comment\n  theory  \n")

	words := collectWords(t, "word", path)
	assert.Equal(t, []string{"category", "theory"}, words)
}

// TestParseCsv verifies CSV parsing maps columns through the header.
func TestParseCsv(t *testing.T) {
	path := writeTempFile(t, "words.csv", "id,word\n1,category\n2,functor\n")

	words := collectWords(t, "word", path)
	assert.Equal(t, []string{"category", "functor"}, words)
}

// TestParseTsv verifies tab-separated files pick the tab separator by
// extension.
func TestParseTsv(t *testing.T) {
	path := writeTempFile(t, "words.tsv", "id\tword\n1\tcategory\n")

	words := collectWords(t, "word", path)
	assert.Equal(t, []string{"category"}, words)
}

// TestParseJson verifies streaming JSON array parsing.
func TestParseJson(t *testing.T) {
	path := writeTempFile(t, "words.json",
		`[{"word": "category", "id": "1"}, {"word": "functor", "id": "2"}]`)

	words := collectWords(t, "word", path)
	assert.Equal(t, []string{"category", "functor"}, words)
}

// TestParseMissingWordKey verifies a record without the word field is an
// error, not a silent skip.
func TestParseMissingWordKey(t *testing.T) {
	path := writeTempFile(t, "words.csv", "id,term\n1,category\n")

	err := parseWords("word", path, func(string) error { return nil })
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"word"`)
}

func collectWords(t *testing.T, wordKey string, path string) []string {
	words := []string{}
	err := parseWords(wordKey, path, func(word string) error {
		words = append(words, word)
		return nil
	})
	require.NoError(t, err)
	return words
}

func writeTempFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
