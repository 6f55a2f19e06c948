// Package hex implements constant-time hexadecimal encoding and
// decoding.
//
// Encoding always produces lowercase digits. Decoding accepts
// either case.
package hex

import "github.com/ericlagergren/codec"

// ErrLength is returned when the input to Decode has odd length.
var ErrLength error = &codec.FormatError{
	Codec:  "hex",
	Offset: -1,
	Msg:    "must be two digits per byte",
}

// EncodedLen returns the length of an encoding of n source
// bytes.
// Specifically, it returns n * 2.
func EncodedLen(n int) int {
	return n * 2
}

// DecodedLen returns the length of a decoding of n source bytes.
// Specifically, it returns n / 2.
func DecodedLen(n int) int {
	return n / 2
}

// EncodeToString returns the hexadecimal encoding of src.
//
// EncodeToString runs in constant time for the length of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}

// DecodeString returns the bytes represented by the hexadecimal
// string s.
//
// Unlike Decode, DecodeString ignores whitespace (see
// codec.StripWhitespace), so "00 a1 B2 c3 ff" decodes to five
// bytes. The empty string decodes to an empty slice.
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
