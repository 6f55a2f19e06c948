package codec

// IsWhitespace reports whether c is one of the whitespace
// characters ignored by DecodeString: ' ', '\t', '\n' or '\r'.
//
// No other character, including '\v' and '\f', is whitespace.
func IsWhitespace(c byte) bool {
	return isWhitespace(c) == 1
}

// isWhitespace returns 1 if c is whitespace and 0 otherwise.
func isWhitespace(c byte) int {
	return ConstantTimeByteEq(c, ' ') |
		ConstantTimeByteEq(c, '\t') |
		ConstantTimeByteEq(c, '\n') |
		ConstantTimeByteEq(c, '\r')
}

// StripWhitespaceBytes copies src to dst, omitting whitespace,
// and returns the number of bytes written to dst.
//
// dst must be at least len(src) bytes. dst and src may be the
// same slice.
//
// StripWhitespaceBytes runs in constant time for the length of
// src.
func StripWhitespaceBytes(dst, src []byte) int {
	if len(src) == 0 {
		return 0
	}
	_ = dst[len(src)-1]

	n := 0
	for _, c := range src {
		// Always write, then only advance past non-whitespace.
		dst[n] = c
		n += isWhitespace(c) ^ 1
	}
	return n
}

// StripWhitespace returns s without any whitespace.
//
// All other characters, valid or not, are passed through
// untouched for the codec to accept or reject.
//
// StripWhitespace runs in constant time for the length of s.
func StripWhitespace(s string) string {
	buf := []byte(s)
	n := StripWhitespaceBytes(buf, buf)
	return string(buf[:n])
}
