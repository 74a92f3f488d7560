package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/credwire/credwire/pkg/credctx"
)

// CheckCmd decodes stdin and reports validity through the exit status,
// for use from scripts and test harnesses.
type CheckCmd struct{}

func (c *CheckCmd) Run(logger *slog.Logger) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	ctx, err := credctx.FromBytes(input)
	if err != nil {
		logger.Error("malformed context", "error", err)
		return err
	}

	logger.Info("context ok",
		"quit", ctx.Quit != nil && *ctx.Quit,
		"has_password", ctx.Password != nil,
	)
	fmt.Println("ok")
	return nil
}
