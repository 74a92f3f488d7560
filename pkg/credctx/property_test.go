package credctx

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"testing/quick"
)

// sanitizeBytes strips the two bytes the format forbids and pins down a
// non-nil slice so presence survives comparison.
func sanitizeBytes(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c == 0x00 || c == '\n' {
			continue
		}
		out = append(out, c)
	}
	return out
}

func sanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 0x00 || r == '\n' {
			return -1
		}
		return r
	}, s)
}

// Property: decode(encode(ctx)) == ctx for any context with legal values.
func TestProperty_RoundTrip(t *testing.T) {
	property := func(url, path []byte, protocol, host, username, password string, quit bool) bool {
		proto := sanitizeString(protocol)
		h := sanitizeString(host)
		user := sanitizeString(username)
		pass := sanitizeString(password)
		original := &Context{
			URL:      sanitizeBytes(url),
			Path:     sanitizeBytes(path),
			Protocol: &proto,
			Host:     &h,
			Username: &user,
			Password: &pass,
			Quit:     &quit,
		}

		var buf bytes.Buffer
		if err := original.Encode(&buf); err != nil {
			t.Logf("encode failed: %v", err)
			return false
		}
		decoded, err := FromBytes(buf.Bytes())
		if err != nil {
			t.Logf("decode failed: %v", err)
			return false
		}
		return reflect.DeepEqual(decoded, original)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// Property: any value containing a forbidden byte is rejected on encode,
// never truncated or escaped.
func TestProperty_ForbiddenBytesRejected(t *testing.T) {
	property := func(prefix, suffix []byte, useNull bool) bool {
		bad := byte('\n')
		if useNull {
			bad = 0x00
		}
		value := append(sanitizeBytes(prefix), bad)
		value = append(value, sanitizeBytes(suffix)...)

		var buf bytes.Buffer
		err := (&Context{URL: value}).Encode(&buf)
		return err != nil && buf.Len() == 0
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
