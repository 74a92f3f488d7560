package credctx

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrEncoding indicates a key or value that cannot be represented in
	// the line format (it contains a null byte or a newline).
	ErrEncoding = errors.New("credctx: unencodable key or value")

	// ErrSyntax indicates a line that is not of the form key=value.
	ErrSyntax = errors.New("credctx: invalid line format")

	// ErrIllformedUTF8 indicates a text-only field whose value is not
	// valid UTF-8.
	ErrIllformedUTF8 = errors.New("credctx: ill-formed UTF-8 in value")
)

// EncodingError reports the key/value pair that failed validation.
type EncodingError struct {
	Key   string
	Value []byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("credctx: %q=%q must not contain null bytes or newlines, neither in key nor in value", e.Key, e.Value)
}

func (e *EncodingError) Unwrap() error {
	return ErrEncoding
}

// SyntaxError reports the exact line that could not be parsed.
type SyntaxError struct {
	Line []byte
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("credctx: invalid format in line %q, expecting key=value", e.Line)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// UTF8Error reports a text field whose value is not valid UTF-8.
type UTF8Error struct {
	Key   string
	Value []byte
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("credctx: ill-formed UTF-8 in value of key %q: %q", e.Key, e.Value)
}

func (e *UTF8Error) Unwrap() error {
	return ErrIllformedUTF8
}
