// Package codec holds the pieces shared by the base64, hex and
// base2 codecs: the FormatError type, whitespace stripping, and
// the constant-time primitives the codecs are built from.
//
// Each codec has two decode entry points. Decode accepts only
// the codec's alphabet. DecodeString first removes the
// whitespace characters ' ', '\t', '\n' and '\r' with
// StripWhitespace and then applies the same rules as Decode, so
// pasted or line-wrapped text can be decoded directly.
//
// Decoding never returns partial results. Either all of the
// input decodes, or the caller gets an error that matches
// ErrFormat.
package codec
