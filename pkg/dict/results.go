package dict

import "fmt"

// InsertReport records the outcome of adding a single word.
type InsertReport struct {
	Word        string // the word after normalization
	Duplicate   bool   // the word was already stored
	Skipped     bool   // the word was empty and ignored
	NodesBefore int    // node count before the add
	NodesAfter  int    // node count after the add
}

func (r *InsertReport) String() string {
	switch {
	case r.Skipped:
		return "Skipped empty word"
	case r.Duplicate:
		return fmt.Sprintf("Word %q already stored, nodes unchanged at %d", r.Word, r.NodesAfter)
	default:
		return fmt.Sprintf("Added word %q, nodes %d -> %d", r.Word, r.NodesBefore, r.NodesAfter)
	}
}

// LookupReport records both query results for a single word.
type LookupReport struct {
	Word   string // the word as queried
	Found  bool   // the word is stored in full
	Prefix string // longest prefix shared with any stored word
}

func (r *LookupReport) String() string {
	return fmt.Sprintf("Word: %q, found: %v, longest stored prefix: %q", r.Word, r.Found, r.Prefix)
}
