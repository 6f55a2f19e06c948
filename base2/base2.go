// Package base2 implements constant-time binary-string encoding
// and decoding, where each byte is written as eight '0' and '1'
// characters, most-significant bit first.
package base2

import "github.com/ericlagergren/codec"

// ErrLength is returned when the input to Decode is not a
// multiple of eight characters long.
var ErrLength error = &codec.FormatError{
	Codec:  "base2",
	Offset: -1,
	Msg:    "must be eight digits per byte",
}

// EncodedLen returns the length of an encoding of n source
// bytes.
// Specifically, it returns n * 8.
func EncodedLen(n int) int {
	return n * 8
}

// DecodedLen returns the length of a decoding of n source bytes.
// Specifically, it returns n / 8.
func DecodedLen(n int) int {
	return n / 8
}

// Encode encodes src into EncodedLen(len(src)) bytes of dst.
// As a convenience, it returns the number of bytes written to
// dst, but this value is always EncodedLen(len(src)).
//
// Encode runs in constant time for the length of src.
func Encode(dst, src []byte) int {
	if len(src) == 0 {
		return 0
	}
	_ = dst[EncodedLen(len(src))-1]

	j := 0
	for _, v := range src {
		for k := 0; k < 8; k++ {
			dst[j+k] = '0' + (v>>(7-k))&1
		}
		j += 8
	}
	return j
}

// EncodeToString returns the binary-string encoding of src.
//
// EncodeToString runs in constant time for the length of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}

// Decode decodes src into DecodedLen(len(src)) bytes of dst,
// returning the number of bytes written to dst.
//
// Each group of eight characters is packed into one byte,
// most-significant bit first. Any character other than '0' or
// '1' is reported before a length that is not a multiple of
// eight. If src is malformed, Decode returns 0 and a
// *codec.FormatError.
//
// Decode runs in constant time for the length of src.
func Decode(dst, src []byte) (int, error) {
	var (
		failed  int
		badIdx  int
		badChar int
		acc     byte
		i       int
	)
	for j, c := range src {
		// '0' and '1' differ only in bit 0.
		bit := c ^ '0'
		bad := codec.ConstantTimeByteGreater(bit, 1)

		badIdx = codec.ConstantTimeSelect(failed, badIdx,
			codec.ConstantTimeSelect(bad, j, badIdx))
		badChar = codec.ConstantTimeSelect(failed, badChar,
			codec.ConstantTimeSelect(bad, int(c), badChar))
		failed |= bad

		acc = acc<<1 | bit&1
		if j%8 == 7 {
			dst[i] = acc
			i++
		}
	}

	if failed != 0 {
		return 0, &codec.FormatError{
			Codec:  "base2",
			Offset: badIdx,
			Char:   byte(badChar),
			Msg:    "must be '0' or '1'",
		}
	}
	if len(src)%8 != 0 {
		return 0, ErrLength
	}
	return i, nil
}

// DecodeString returns the bytes represented by the binary
// string s, ignoring whitespace (see codec.StripWhitespace).
//
// Any other character that is not '0' or '1' is an error.
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
