package slides

import (
	"errors"

	"pkt.systems/slides/parsec"
)

// ParseError reports a grammar mismatch: the token the grammar expected and
// the one it found, or "EOF".
type ParseError = parsec.Error

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)
