package cli

import (
	"fmt"

	"github.com/khalid-nowaf/tst/pkg/dict"
)

type QueryCmd struct {
	Files   []string `arg:"" type:"existingfile" help:"Word list files in TXT, CSV, TSV, or JSON format"`
	WordKey string   `help:"Column or field holding the word in CSV/JSON files" default:"word"`
	Exist   []string `short:"e" help:"Words to test for membership"`
	Prefix  []string `short:"p" help:"Words to compute the longest stored prefix for"`
	Json    bool     `help:"Write the report as JSON instead of CSV"`
	Tsv     bool     `help:"Write the report as TSV instead of CSV"`
	Out     string   `help:"Directory to write the report to" default:"."`
}

// Run executes the query command: load every word list, answer the queries,
// write the report.
func (cmd *QueryCmd) Run(ctx *Context) error {
	for _, file := range cmd.Files {
		if err := loadWords(ctx, cmd.WordKey, file); err != nil {
			return err
		}
	}
	ctx.Logger.Info().
		Int("read", ctx.Stats.WordsRead).
		Int("stored", ctx.Dict.WordCount()).
		Int("nodes", ctx.Dict.Len()).
		Msg("word lists loaded")

	reports := []*dict.LookupReport{}
	for _, word := range append(cmd.Exist, cmd.Prefix...) {
		report := ctx.Dict.Lookup(word)
		ctx.Logger.Info().Msg(report.String())
		reports = append(reports, report)
		ctx.Stats.Queries++
	}

	var writer Writer = CsvWriter{isTSV: cmd.Tsv, Stats: ctx.Stats}
	if cmd.Json {
		writer = JsonWriter{Stats: ctx.Stats}
	}
	if err := writer.Write(reports, cmd.Out); err != nil {
		return err
	}
	ctx.Logger.Info().Int("rows", ctx.Stats.Output).Msg("report written")
	return nil
}

type StatsCmd struct {
	Files   []string `arg:"" type:"existingfile" help:"Word list files in TXT, CSV, TSV, or JSON format"`
	WordKey string   `help:"Column or field holding the word in CSV/JSON files" default:"word"`
	List    bool     `help:"Also print every stored word in symbol order"`
}

// Run executes the stats command: load every word list and report counts.
func (cmd *StatsCmd) Run(ctx *Context) error {
	for _, file := range cmd.Files {
		if err := loadWords(ctx, cmd.WordKey, file); err != nil {
			return err
		}
	}

	ctx.Logger.Info().
		Int("read", ctx.Stats.WordsRead).
		Int("stored", ctx.Dict.WordCount()).
		Int("nodes", ctx.Dict.Len()).
		Msg("statistics")

	if cmd.List {
		for _, word := range ctx.Dict.Words() {
			fmt.Println(word)
		}
	}
	return nil
}

// loadWords parses a file and adds every word to the shared dictionary.
func loadWords(ctx *Context, wordKey string, file string) error {
	return parseWords(wordKey, file, func(word string) error {
		ctx.Dict.Add(word)
		ctx.Stats.WordsRead++
		return nil
	})
}
