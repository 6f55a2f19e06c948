package base64

import "github.com/ericlagergren/codec"

// padChar is the padding character.
const padChar = '='

// ErrLength is returned when the input to Decode is not a
// multiple of four characters long.
var ErrLength error = &codec.FormatError{
	Codec:  "base64",
	Offset: -1,
	Msg:    "length must be a multiple of 4",
}

const (
	alphabetMsg   = "must be in [A-Za-z0-9+/]"
	paddingMsg    = "padding is only allowed in the last two positions"
	paddingBitMsg = "unused bits before padding must be zero"
)

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes.
func EncodedLen(n int) int {
	return (n*8+5)/6 + padLen(n)
}

// padLen returns the number of padding characters in the
// encoding of n source bytes: whatever is needed to round the
// ceil(n*8/6) data characters up to a multiple of four.
func padLen(n int) int {
	return (4 - (n*8+5)/6%4) % 4
}

// DecodedLen returns the maximum length in bytes of n bytes of
// Base64-encoded data.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// EncodeToString encodes src.
//
// EncodeToString runs in constant time for the length of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst.
//
// Each group of three bytes is read most-significant byte first
// into a 24-bit buffer and written as four characters. A final
// group of one or two bytes is written as two or three
// characters followed by "==" or "=".
//
// Encode runs in constant time for the length of src.
func Encode(dst, src []byte) {
	if len(src) == 0 {
		return
	}
	_ = dst[EncodedLen(len(src))-1]

	for len(src) >= 3 {
		v := uint(src[0])<<16 | uint(src[1])<<8 | uint(src[2])
		dst[0] = stdLookup(v >> 18 & 0x3f)
		dst[1] = stdLookup(v >> 12 & 0x3f)
		dst[2] = stdLookup(v >> 6 & 0x3f)
		dst[3] = stdLookup(v & 0x3f)
		src = src[3:]
		dst = dst[4:]
	}

	switch len(src) {
	case 2:
		v := uint(src[0])<<16 | uint(src[1])<<8
		dst[0] = stdLookup(v >> 18 & 0x3f)
		dst[1] = stdLookup(v >> 12 & 0x3f)
		dst[2] = stdLookup(v >> 6 & 0x3f)
		dst[3] = padChar
	case 1:
		v := uint(src[0]) << 16
		dst[0] = stdLookup(v >> 18 & 0x3f)
		dst[1] = stdLookup(v >> 12 & 0x3f)
		dst[2] = padChar
		dst[3] = padChar
	}
}

// stdLookup converts the 6-bit value c to its corresponding
// base64 character.
//
// c must be in [0, 63].
//
// See http://0x80.pl/notesen/2016-01-12-sse-base64-encoding.html
func stdLookup(c uint) byte {
	// (k - c - 1) >> 8 is all ones iff c >= k, so each line
	// adjusts the offset from 'A' for one alphabet range.
	s := uint('A')
	s += (26 - c - 1) >> 8 & 6
	s -= (52 - c - 1) >> 8 & 75
	s -= (62 - c - 1) >> 8 & 15
	s += (63 - c - 1) >> 8 & 3
	return byte(c + s)
}

// stdRevLookup converts the base64 character c to its 6-bit
// binary value.
//
// If the character is not in the alphabet (which includes the
// padding character) stdRevLookup returns 0xff. No character
// other than 'A' maps to 0.
func stdRevLookup(c uint) (r byte) {
	// NB. This function is written like this so that the
	// compiler (as of 1.18.1) will inline it.

	// switch {
	// case c >= 'A' && c <= 'Z':
	//     s = -65
	// case c >= 'a' && c <= 'z'
	//     s = -71
	// case c >= '0' && c <= '9'
	//     s = 4
	// case c == '+':
	//     s = 19
	// case c == '/':
	//     s = 16
	// }
	s := ((((64 - c) & (c - 91)) >> 8) & 191) ^
		((((96 - c) & (c - 123)) >> 8) & 185) ^
		((((47 - c) & (c - 58)) >> 8) & 4) ^
		((((42 - c) & (c - 44)) >> 8) & 19) ^
		((((46 - c) & (c - 48)) >> 8) & 16)
	// If s == 0 then c is invalid and bits [7:0] are all set.
	return byte((s+c)&0x3f | ((((0 - s) >> 8) & 0xff) ^ 0xff))
}

// invalid records the first character rejected by stdRevLookup
// without branching on the input.
type invalid struct {
	failed int // 1 once a character has been rejected
	idx    int
	char   int
}

// check records c at offset idx if r is the invalid sentinel and
// nothing has been recorded yet.
func (v *invalid) check(r byte, idx int, c byte) {
	bad := int(r >> 7)
	v.idx = codec.ConstantTimeSelect(v.failed, v.idx,
		codec.ConstantTimeSelect(bad, idx, v.idx))
	v.char = codec.ConstantTimeSelect(v.failed, v.char,
		codec.ConstantTimeSelect(bad, int(c), v.char))
	v.failed |= bad
}

func (v *invalid) err() error {
	msg := alphabetMsg
	if v.char == padChar {
		msg = paddingMsg
	}
	return &codec.FormatError{
		Codec:  "base64",
		Offset: v.idx,
		Char:   byte(v.char),
		Msg:    msg,
	}
}

// Decode decodes src, writing at most DecodedLen(len(src)) bytes
// to dst, and returns the number of bytes written.
//
// Decode does not accept whitespace; see DecodeString. If src is
// malformed, Decode returns 0 and a *codec.FormatError. The
// contents of dst are then unspecified.
//
// Decode runs in constant time for the length of src.
//
// See the package docs for a comparison with encoding/base64.
func Decode(dst, src []byte) (n int, err error) {
	if len(src) == 0 {
		return 0, nil
	}
	if len(src)%4 != 0 {
		return 0, ErrLength
	}

	// At most two trailing padding characters. A third '=' stays
	// in src and is rejected by stdRevLookup.
	p1 := codec.ConstantTimeByteEq(src[len(src)-1], padChar)
	p2 := p1 & codec.ConstantTimeByteEq(src[len(src)-2], padChar)
	src = src[:len(src)-p1-p2]

	var bad invalid
	var j int // index into src
	for len(src)-j >= 4 {
		c0 := stdRevLookup(uint(src[j+0]))
		c1 := stdRevLookup(uint(src[j+1]))
		c2 := stdRevLookup(uint(src[j+2]))
		c3 := stdRevLookup(uint(src[j+3]))
		bad.check(c0, j+0, src[j+0])
		bad.check(c1, j+1, src[j+1])
		bad.check(c2, j+2, src[j+2])
		bad.check(c3, j+3, src[j+3])

		v := uint(c0)<<18 | uint(c1)<<12 | uint(c2)<<6 | uint(c3)
		dst[n+0] = byte(v >> 16)
		dst[n+1] = byte(v >> 8)
		dst[n+2] = byte(v)

		j += 4
		n += 3
	}

	// nonzero is 1 if the bits dropped by the padding are set.
	var nonzero int
	switch len(src) - j {
	case 3:
		c0 := stdRevLookup(uint(src[j+0]))
		c1 := stdRevLookup(uint(src[j+1]))
		c2 := stdRevLookup(uint(src[j+2]))
		bad.check(c0, j+0, src[j+0])
		bad.check(c1, j+1, src[j+1])
		bad.check(c2, j+2, src[j+2])

		v := uint(c0)<<18 | uint(c1)<<12 | uint(c2)<<6
		dst[n+0] = byte(v >> 16)
		dst[n+1] = byte(v >> 8)

		nonzero = codec.ConstantTimeByteEq(c2&0x3, 0) ^ 1
		j += 2
		n += 2
	case 2:
		c0 := stdRevLookup(uint(src[j+0]))
		c1 := stdRevLookup(uint(src[j+1]))
		bad.check(c0, j+0, src[j+0])
		bad.check(c1, j+1, src[j+1])

		v := uint(c0)<<18 | uint(c1)<<12
		dst[n+0] = byte(v >> 16)

		nonzero = codec.ConstantTimeByteEq(c1&0xf, 0) ^ 1
		j++
		n++
	}

	if bad.failed != 0 {
		return 0, bad.err()
	}
	if nonzero != 0 {
		return 0, &codec.FormatError{
			Codec:  "base64",
			Offset: j,
			Char:   src[j],
			Msg:    paddingBitMsg,
		}
	}
	return n, nil
}

// DecodeString decodes s after removing whitespace (see
// codec.StripWhitespace), so line-wrapped or indented Base64
// decodes directly.
//
// If s is malformed, DecodeString returns nil and a
// *codec.FormatError whose offset refers to s without its
// whitespace.
//
// DecodeString runs in constant time for the length of s.
func DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	n := codec.StripWhitespaceBytes(src, src)
	n, err := Decode(src, src[:n])
	if err != nil {
		return nil, err
	}
	return src[:n], nil
}
