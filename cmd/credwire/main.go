package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
)

// CLI is the root command for credwire.
type CLI struct {
	Verbosity int `help:"Log verbosity (repeat for more: info, debug)." short:"v" type:"counter"`

	Encode EncodeCmd `cmd:"" help:"Build a credential context from flags and write it to stdout."`
	Decode DecodeCmd `cmd:"" help:"Decode a credential context from stdin and print its fields."`
	Check  CheckCmd  `cmd:"" help:"Validate a credential context read from stdin."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("credwire"),
		kong.Description("Inspect and produce credential-helper context records."),
		kong.UsageOnError(),
	)

	logger := newLogger(cli.Verbosity)
	ctx.FatalIfErrorf(ctx.Run(logger))
}

func newLogger(verbosity int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: level,
	}))
}
