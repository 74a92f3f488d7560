package credctx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_SentinelRouting(t *testing.T) {
	assert.True(t, errors.Is(&EncodingError{Key: "url"}, ErrEncoding))
	assert.True(t, errors.Is(&SyntaxError{Line: []byte("x")}, ErrSyntax))
	assert.True(t, errors.Is(&UTF8Error{Key: "host"}, ErrIllformedUTF8))
}

func TestErrors_Messages(t *testing.T) {
	err := &EncodingError{Key: "username", Value: []byte("a\x00b")}
	assert.Contains(t, err.Error(), `"username"`)

	synErr := &SyntaxError{Line: []byte("malformed")}
	assert.Contains(t, synErr.Error(), `"malformed"`)
	assert.Contains(t, synErr.Error(), "key=value")

	utf8Err := &UTF8Error{Key: "host", Value: []byte{0xC3, 0x28}}
	assert.Contains(t, utf8Err.Error(), `"host"`)
}
