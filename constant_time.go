package codec

import "crypto/subtle"

// ConstantTimeByteEq returns 1 if x == y and 0 otherwise.
func ConstantTimeByteEq(x, y uint8) int {
	return subtle.ConstantTimeByteEq(x, y)
}

// ConstantTimeCompare returns 1 if the two slices, x and y, have
// equal contents and 0 otherwise.
//
// The time taken is a function of the length of the slices and
// is independent of the contents.
func ConstantTimeCompare(x, y []byte) int {
	return subtle.ConstantTimeCompare(x, y)
}

// ConstantTimeLessOrEq returns 1 if x <= y and 0 otherwise.
// Its behavior is undefined if x or y are negative or > 2**31 - 1.
func ConstantTimeLessOrEq(x, y int) int {
	return subtle.ConstantTimeLessOrEq(x, y)
}

// ConstantTimeSelect returns x if v == 1 and y if v == 0.
// Its behavior is undefined if v takes any other value.
func ConstantTimeSelect(v, x, y int) int {
	return subtle.ConstantTimeSelect(v, x, y)
}

// ConstantTimeByteGreater returns 1 if x > y and 0 otherwise.
func ConstantTimeByteGreater(x, y uint8) int {
	return ConstantTimeByteLessOrEq(x, y) ^ 1
}

// ConstantTimeByteLessOrEq returns 1 if x <= y and 0 otherwise.
func ConstantTimeByteLessOrEq(x, y uint8) int {
	return ConstantTimeLessOrEq(int(x), int(y))
}
