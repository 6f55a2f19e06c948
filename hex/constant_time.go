// https://github.com/jedisct1/libsodium/blob/d4ee08ab8a1c674203796161af6d013283b33d69/src/libsodium/sodium/codecs.c
// https://github.com/jedisct1/libsodium/blob/561e556dad078af581f338fe3de9ee6362d28b16/LICENSE
//
//  Copyright (c) 2013-2022 Frank Denis <j at pureftpd dot org>
//  Portions Copyright (c) 2022 Eric Lagergren
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted, provided that the above
// copyright notice and this permission notice appear in all copies.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
// WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
// MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
// ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
// WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
// ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
// OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.

package hex

import "github.com/ericlagergren/codec"

// Encode encodes src into EncodedLen(len(src)) bytes of dst.
// As a convenience, it returns the number of bytes written to
// dst, but this value is always EncodedLen(len(src)).
//
// The high nybble of each byte is written first, using the
// lowercase digits 0-9a-f.
//
// Encode runs in constant time for the length of src.
func Encode(dst, src []byte) int {
	j := 0
	for _, v := range src {
		dst[j] = toHexChar(uint(v >> 4))
		dst[j+1] = toHexChar(uint(v & 0x0f))
		j += 2
	}
	return len(src) * 2
}

// toHexChar converts the nybble c to its lowercase hexadecimal
// character.
//
// c must be in [0, 15].
func toHexChar(c uint) byte {
	// 87 + c is correct for 'a' ... 'f'. If c < 10 then
	// (c-10)>>8 sets bits [7:0], and masking off 38 leaves 217,
	// which brings 87 + c back around to '0' + c.
	const mask = ^uint(38)
	return byte(87 + c + (((c - 10) >> 8) & mask))
}

// fromHexChar converts the hexadecimal character c to its 4-bit
// value.
//
// bad is 1 if c is not in [0-9a-fA-F] and 0 otherwise. If bad is
// 1 then val is 0.
func fromHexChar(c uint) (val byte, bad int) {
	// num0 is 0xff if c is in '0' ... '9' and 0x00 otherwise,
	// since c^'0' < 10 only for those characters.
	num := c ^ '0'
	num0 := (num - 10) >> 8

	// Clearing bit 5 folds 'a' ... 'f' onto 'A' ... 'F', and
	// subtracting 55 maps 'A' to 10. alpha0 is 0xff if alpha is
	// in [10, 15] and 0x00 otherwise: only then do alpha-10 and
	// alpha-16 differ in bits [63:8].
	alpha := (c &^ 32) - 55
	alpha0 := ((alpha - 10) ^ (alpha - 16)) >> 8

	bad = codec.ConstantTimeByteEq(byte(num0|alpha0), 0)
	return byte(num0&num | alpha0&alpha), bad
}

// Decode decodes src into DecodedLen(len(src)) bytes of dst,
// returning the number of bytes written to dst.
//
// Decode expects that src contains only hexadecimal characters
// (either case) and that src has even length. Invalid characters
// are reported before an odd length. If src is malformed, Decode
// returns 0 and a *codec.FormatError.
//
// Decode runs in constant time for the length of src.
func Decode(dst, src []byte) (int, error) {
	// failed is set to 1 if the input is malformed, 0 otherwise.
	var failed int
	// badIdx and badChar record the first invalid character.
	//
	// Only have value if failed != 0.
	var badIdx int
	var badChar int
	// acc holds the high nybble of the current pair.
	var acc byte
	// i is the index into dst.
	var i int

	for j := 0; j < len(src); j++ {
		c := uint(src[j])
		val, bad := fromHexChar(c)

		// The constant-time equivalent of
		//
		//    if failed == 0 && bad != 0 {
		//        badIdx = j
		//        badChar = c
		//    }
		//
		badIdx = codec.ConstantTimeSelect(failed, badIdx,
			codec.ConstantTimeSelect(bad, j, badIdx))
		badChar = codec.ConstantTimeSelect(failed, badChar,
			codec.ConstantTimeSelect(bad, int(c), badChar))

		failed |= bad

		if j%2 == 0 {
			acc = val << 4
		} else {
			dst[i] = acc | val
			i++
		}
	}

	if failed != 0 {
		return 0, &codec.FormatError{
			Codec:  "hex",
			Offset: badIdx,
			Char:   byte(badChar),
			Msg:    "must be in [0-9a-fA-F]",
		}
	}
	if len(src)%2 == 1 {
		return 0, ErrLength
	}
	return i, nil
}
