package cli

import (
	"github.com/khalid-nowaf/tst/pkg/dict"
	"github.com/rs/zerolog"
)

// CLI is the root command tree parsed by kong.
var CLI struct {
	Verbose bool     `help:"Enable debug logging." short:"v"`
	Query   QueryCmd `cmd:"" help:"Load word lists and run membership and prefix queries"`
	Stats   StatsCmd `cmd:"" help:"Print node and word statistics for word lists"`
}

// Context carries the shared dictionary and logger into the command Run
// methods.
type Context struct {
	Dict   *dict.Dictionary
	Logger zerolog.Logger
	Stats  *Stats
}

// Stats counts what a command consumed and produced.
type Stats struct {
	WordsRead int // words read from the input files
	Queries   int // query words answered
	Output    int // report rows written
}
