package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/credwire/credwire/pkg/credctx"
)

// DecodeCmd reads a wire-format context from stdin and prints it.
type DecodeCmd struct {
	JSON         bool `help:"Output in JSON format." short:"j"`
	ShowPassword bool `help:"Print the password instead of redacting it."`
}

func (d *DecodeCmd) Run(logger *slog.Logger) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	ctx, err := credctx.FromBytes(input)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	logger.Debug("context decoded", "bytes", len(input))

	if d.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(contextToJSON(ctx, d.ShowPassword))
	}

	emit := func(key, value string) {
		fmt.Printf("%-9s %s\n", key+":", value)
	}
	if ctx.URL != nil {
		emit("url", renderBytes(ctx.URL))
	}
	if ctx.Path != nil {
		emit("path", renderBytes(ctx.Path))
	}
	if ctx.Protocol != nil {
		emit("protocol", *ctx.Protocol)
	}
	if ctx.Host != nil {
		emit("host", *ctx.Host)
	}
	if ctx.Username != nil {
		emit("username", *ctx.Username)
	}
	if ctx.Password != nil {
		emit("password", redact(*ctx.Password, d.ShowPassword))
	}
	if ctx.Quit != nil {
		emit("quit", fmt.Sprintf("%v", *ctx.Quit))
	}
	return nil
}

// contextJSON mirrors Context for JSON output. Byte fields that are not
// valid UTF-8 move to the *_base64 variants so the output stays valid
// JSON without mangling the bytes.
type contextJSON struct {
	URL       *string `json:"url,omitempty"`
	URLBase64 *string `json:"url_base64,omitempty"`

	Path       *string `json:"path,omitempty"`
	PathBase64 *string `json:"path_base64,omitempty"`

	Protocol *string `json:"protocol,omitempty"`
	Host     *string `json:"host,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Quit     *bool   `json:"quit,omitempty"`
}

func contextToJSON(ctx *credctx.Context, showPassword bool) contextJSON {
	out := contextJSON{
		Protocol: ctx.Protocol,
		Host:     ctx.Host,
		Username: ctx.Username,
		Quit:     ctx.Quit,
	}
	out.URL, out.URLBase64 = splitBytes(ctx.URL)
	out.Path, out.PathBase64 = splitBytes(ctx.Path)
	if ctx.Password != nil {
		password := redact(*ctx.Password, showPassword)
		out.Password = &password
	}
	return out
}

// splitBytes routes a byte field to the plain or base64 JSON slot.
func splitBytes(b []byte) (plain, base64d *string) {
	if b == nil {
		return nil, nil
	}
	if utf8.Valid(b) {
		s := string(b)
		return &s, nil
	}
	enc := base64.StdEncoding.EncodeToString(b)
	return nil, &enc
}

// renderBytes makes an opaque byte value printable for human output.
func renderBytes(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return "base64:" + base64.StdEncoding.EncodeToString(b)
}

func redact(password string, show bool) string {
	if show || password == "" {
		return password
	}
	return "<redacted>"
}
