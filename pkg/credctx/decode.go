package credctx

import (
	"bytes"
	"unicode/utf8"
)

// FromBytes decodes input in the format written by (*Context).Encode and
// returns the accumulated context.
//
// Lines are consumed up to the first empty line or the end of input,
// whichever comes first; both terminate decoding successfully. The empty
// line acts as a record terminator so a context can be read off the
// front of a stream that carries further data. Decoding is
// all-or-nothing: any malformed line aborts the call with that line's
// error and no partial result.
//
// Unknown keys are skipped without error. When a key repeats, the last
// occurrence wins.
func FromBytes(input []byte) (*Context, error) {
	ctx := &Context{}
	for len(input) > 0 {
		line := input
		if i := bytes.IndexByte(input, '\n'); i >= 0 {
			line, input = input[:i], input[i+1:]
		} else {
			input = nil
		}
		if len(line) == 0 {
			// Terminator line: the rest of the stream is not ours.
			break
		}

		key, value, ok := bytes.Cut(line, []byte("="))
		if !ok || !utf8.Valid(key) {
			return nil, &SyntaxError{Line: bytes.Clone(line)}
		}
		k := string(key)
		if err := validate(k, value); err != nil {
			return nil, err
		}

		switch k {
		case "protocol", "host", "username", "password":
			if !utf8.Valid(value) {
				return nil, &UTF8Error{Key: k, Value: bytes.Clone(value)}
			}
			s := string(value)
			switch k {
			case "protocol":
				ctx.Protocol = &s
			case "host":
				ctx.Host = &s
			case "username":
				ctx.Username = &s
			case "password":
				ctx.Password = &s
			}
		case "url":
			ctx.URL = bytes.Clone(value)
		case "path":
			ctx.Path = bytes.Clone(value)
		case "quit":
			quit := resolveQuit(value)
			ctx.Quit = &quit
		default:
			// Unknown keys are ignored so newer producers can add fields
			// without breaking older consumers.
		}
	}
	return ctx, nil
}
