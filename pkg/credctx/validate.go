package credctx

import (
	"bytes"
	"strings"
)

// validate rejects keys and values that would corrupt the framing. The
// format is line-oriented with `=`-separated null-free keys, so a single
// embedded '\n' or '\0' would change the meaning of the stream. The same
// check runs before every written field and on every parsed line.
func validate(key string, value []byte) error {
	if strings.ContainsAny(key, "\x00\n") || bytes.ContainsAny(value, "\x00\n") {
		return &EncodingError{Key: key, Value: bytes.Clone(value)}
	}
	return nil
}
