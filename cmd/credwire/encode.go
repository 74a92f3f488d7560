package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/credwire/credwire/pkg/credctx"
)

// EncodeCmd assembles a context from flags and writes the wire form to
// stdout. Unset flags become absent fields, so `--password ""` and no
// --password flag produce different records.
type EncodeCmd struct {
	URL      *string `help:"Value for the url field."`
	Path     *string `help:"Value for the path field."`
	Protocol *string `help:"Value for the protocol field."`
	Host     *string `help:"Value for the host field."`
	Username *string `help:"Value for the username field."`
	Password *string `help:"Value for the password field."`
	Quit     *bool   `help:"Value for the quit flag."`

	Destructure bool `help:"Fill protocol/host/username/path from --url." short:"d"`
	Terminate   bool `help:"Append the blank terminator line for embedding in a larger stream." short:"t"`
}

func (e *EncodeCmd) Run(logger *slog.Logger) error {
	ctx := e.context()
	if e.Destructure {
		if err := ctx.DestructureURL(); err != nil {
			return err
		}
	}

	if err := ctx.Encode(os.Stdout); err != nil {
		return fmt.Errorf("encode failed: %w", err)
	}
	if e.Terminate {
		if _, err := os.Stdout.Write([]byte("\n")); err != nil {
			return err
		}
	}
	logger.Debug("context written", "terminated", e.Terminate)
	return nil
}

// context maps the flag values onto a Context.
func (e *EncodeCmd) context() *credctx.Context {
	ctx := &credctx.Context{
		Protocol: e.Protocol,
		Host:     e.Host,
		Username: e.Username,
		Password: e.Password,
		Quit:     e.Quit,
	}
	if e.URL != nil {
		ctx.URL = []byte(*e.URL)
	}
	if e.Path != nil {
		ctx.Path = []byte(*e.Path)
	}
	return ctx
}
