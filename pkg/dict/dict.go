package dict

import (
	"github.com/khalid-nowaf/tst/pkg/tst"
	"github.com/rs/zerolog"
)

// Dictionary is a convenience handle over a persistent rune tree. Add swaps
// the handle's current tree for the one returned by the insert; every tree
// ever held (and anything taken via Snapshot) stays immutable and valid.
type Dictionary struct {
	tree      tst.Tree[rune]
	words     int
	normalize func(string) string
	logger    zerolog.Logger
}

// New creates an empty dictionary. Options configure logging and word
// normalization.
func New(opts ...Option) *Dictionary {
	d := DefaultOptions()
	for _, opt := range opts {
		d = opt(d)
	}
	return d
}

// Add inserts a word and reports what the insertion did. Adding a word that
// is already present (or the empty word) leaves the dictionary unchanged.
func (d *Dictionary) Add(word string) *InsertReport {
	if d.normalize != nil {
		word = d.normalize(word)
	}

	report := &InsertReport{
		Word:        word,
		NodesBefore: d.tree.Size(),
	}

	switch {
	case word == "":
		report.Skipped = true
	case tst.ExistString(d.tree, word):
		report.Duplicate = true
	default:
		d.tree = d.tree.Insert([]rune(word))
		d.words++
	}
	report.NodesAfter = d.tree.Size()

	d.logger.Debug().
		Str("word", word).
		Bool("duplicate", report.Duplicate).
		Int("nodes", report.NodesAfter).
		Msg("add word")

	return report
}

// Contains reports whether the word is stored in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	if d.normalize != nil {
		word = d.normalize(word)
	}
	return tst.ExistString(d.tree, word)
}

// LongestPrefix returns the longest prefix of word shared with any stored
// word.
func (d *Dictionary) LongestPrefix(word string) string {
	if d.normalize != nil {
		word = d.normalize(word)
	}
	return tst.PrefixString(d.tree, word)
}

// Lookup runs both queries for a word and returns them as one report.
func (d *Dictionary) Lookup(word string) *LookupReport {
	report := &LookupReport{
		Word:   word,
		Found:  d.Contains(word),
		Prefix: d.LongestPrefix(word),
	}

	d.logger.Debug().
		Str("word", report.Word).
		Bool("found", report.Found).
		Str("prefix", report.Prefix).
		Msg("lookup word")

	return report
}

// Snapshot returns the current persistent tree. The snapshot never changes,
// no matter what is added to the dictionary afterwards.
func (d *Dictionary) Snapshot() tst.Tree[rune] {
	return d.tree
}

// Len returns the number of nodes in the current tree.
func (d *Dictionary) Len() int {
	return d.tree.Size()
}

// WordCount returns the number of distinct words added.
func (d *Dictionary) WordCount() int {
	return d.words
}

// Words returns every stored word in symbol order.
func (d *Dictionary) Words() []string {
	words := []string{}
	for _, w := range tst.Words(d.tree) {
		words = append(words, string(w))
	}
	return words
}
