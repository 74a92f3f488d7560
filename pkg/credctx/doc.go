// Package credctx implements the line-oriented key=value format used to
// exchange credential metadata with credential helper programs.
//
// A credential context is a set of optional named fields describing a
// credential request or response: url, path, protocol, host, username,
// password, and a quit flag. On the wire each present field is one line:
//
//	<key>=<value>\n
//
// Fields absent from the context produce no line at all. A blank line is
// a terminator: the decoder stops there, which lets a record be embedded
// in a larger stream followed by application data. The encoder never
// writes the terminator itself; end-of-input terminates decoding just as
// well.
//
// # Field classes
//
// url and path are opaque byte fields: their values are carried verbatim
// and need not be valid UTF-8. protocol, host, username, and password are
// text fields and must be valid UTF-8. No key or value may contain a null
// byte or a newline, since either would corrupt the framing; such values
// are rejected rather than escaped.
//
// # Basic usage
//
// Encoding:
//
//	var buf bytes.Buffer
//	host := "example.com"
//	ctx := &credctx.Context{URL: []byte("https://example.com"), Host: &host}
//	err := ctx.Encode(&buf)
//
// Decoding:
//
//	ctx, err := credctx.FromBytes(buf.Bytes())
//
// Decoding tolerates unknown keys (they are skipped) and a relaxed
// boolean vocabulary for quit (yes/on/true, no/off/false, empty), even
// though encoding only ever emits the literals "true" and "false".
//
// # Concurrency
//
// The codec holds no state between calls; Encode and FromBytes are pure
// transformations over their arguments. Sharing a Context or an
// io.Writer across goroutines needs external synchronization, as usual.
package credctx
