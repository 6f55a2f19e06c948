package codec

import (
	"errors"
	"fmt"
)

// ErrFormat is matched (via errors.Is) by every *FormatError.
var ErrFormat = errors.New("codec: malformed input")

// FormatError is returned when encoded text violates a codec's
// length or alphabet rules.
type FormatError struct {
	// Codec is the name of the codec that rejected the input.
	Codec string
	// Offset is the index of the offending character in the
	// input, after whitespace has been stripped. It is -1 if
	// the input has the wrong length.
	Offset int
	// Char is the offending character. It is only meaningful
	// if Offset >= 0.
	Char byte
	// Msg describes the rule that was violated.
	Msg string
}

var _ error = (*FormatError)(nil)

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return e.Codec + ": " + e.Msg
	}
	return fmt.Sprintf("%s: invalid character %q at offset %d: %s",
		e.Codec, e.Char, e.Offset, e.Msg)
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
