// Package base64 implements constant-time Base64 encoding and
// decoding using the standard alphabet and '=' padding from
// RFC 4648.
//
// Comparison to encoding/base64
//
// Decode is strict. The input length must be a multiple of four,
// every character must be in the alphabet, '=' may only occupy
// the last one or two positions, and the unused bits before the
// padding must be zero. As a result, every input that decodes
// successfully is the one canonical encoding of its output.
//
// Unlike encoding/base64, Decode rejects the newline characters
// '\r' and '\n'. Use DecodeString to decode text that contains
// whitespace.
//
// Unlike encoding/base64, this package does not return partial
// results. For example:
//
//    src := []byte("aGVsb?8=")
//    base64.StdEncoding.Decode(dst, src) // 3, CorruptInputError(5)
//    Decode(dst, src)                    // 0, invalid character '?' at offset 5
//
package base64
