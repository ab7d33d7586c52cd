package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/tst/pkg/cli"
	"github.com/khalid-nowaf/tst/pkg/dict"
	"github.com/rs/zerolog"
)

func main() {
	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())

	level := zerolog.InfoLevel
	if cli.CLI.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	err := ctx.Run(&cli.Context{
		Dict:   dict.New(dict.WithLogger(logger)),
		Logger: logger,
		Stats:  &cli.Stats{},
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
