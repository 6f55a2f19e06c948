// Package digest computes message digests by algorithm name and
// renders them as text with the hex and base64 codecs.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ericlagergren/codec"
	"github.com/ericlagergren/codec/base64"
	"github.com/ericlagergren/codec/hex"
)

// Algorithm is the name of a message digest algorithm.
type Algorithm string

// Supported algorithms.
const (
	MD4         Algorithm = "MD4"
	MD5         Algorithm = "MD5"
	SHA1        Algorithm = "SHA-1"
	SHA224      Algorithm = "SHA-224"
	SHA256      Algorithm = "SHA-256"
	SHA384      Algorithm = "SHA-384"
	SHA512      Algorithm = "SHA-512"
	SHA512_224  Algorithm = "SHA-512/224"
	SHA512_256  Algorithm = "SHA-512/256"
	SHA3_224    Algorithm = "SHA3-224"
	SHA3_256    Algorithm = "SHA3-256"
	SHA3_384    Algorithm = "SHA3-384"
	SHA3_512    Algorithm = "SHA3-512"
	BLAKE2b_256 Algorithm = "BLAKE2B-256"
	BLAKE2b_384 Algorithm = "BLAKE2B-384"
	BLAKE2b_512 Algorithm = "BLAKE2B-512"
	BLAKE2s_256 Algorithm = "BLAKE2S-256"
	RIPEMD160   Algorithm = "RIPEMD-160"
)

func (a Algorithm) String() string {
	return string(a)
}

// unkeyed adapts a keyed constructor.
func unkeyed(fn func(key []byte) (hash.Hash, error)) func() (hash.Hash, error) {
	return func() (hash.Hash, error) {
		return fn(nil)
	}
}

// infallible adapts a constructor that cannot fail.
func infallible(fn func() hash.Hash) func() (hash.Hash, error) {
	return func() (hash.Hash, error) {
		return fn(), nil
	}
}

// registry is read-only after initialization.
var registry = map[Algorithm]func() (hash.Hash, error){
	MD4:         infallible(md4.New),
	MD5:         infallible(md5.New),
	SHA1:        infallible(sha1.New),
	SHA224:      infallible(sha256.New224),
	SHA256:      infallible(sha256.New),
	SHA384:      infallible(sha512.New384),
	SHA512:      infallible(sha512.New),
	SHA512_224:  infallible(sha512.New512_224),
	SHA512_256:  infallible(sha512.New512_256),
	SHA3_224:    infallible(sha3.New224),
	SHA3_256:    infallible(sha3.New256),
	SHA3_384:    infallible(sha3.New384),
	SHA3_512:    infallible(sha3.New512),
	BLAKE2b_256: unkeyed(blake2b.New256),
	BLAKE2b_384: unkeyed(blake2b.New384),
	BLAKE2b_512: unkeyed(blake2b.New512),
	BLAKE2s_256: unkeyed(blake2s.New256),
	RIPEMD160:   infallible(ripemd160.New),
}

// ErrUnsupported is matched (via errors.Is) by every
// *UnsupportedError.
var ErrUnsupported = errors.New("digest: unsupported algorithm")

// UnsupportedError is returned for an unknown algorithm name.
type UnsupportedError struct {
	// Name is the algorithm name as given by the caller.
	Name string
}

var _ error = (*UnsupportedError)(nil)

func (e *UnsupportedError) Error() string {
	names := make([]string, 0, len(registry))
	for _, a := range Algorithms() {
		names = append(names, string(a))
	}
	return fmt.Sprintf("%v %q: must be one of %s",
		ErrUnsupported, e.Name, strings.Join(names, ", "))
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// Algorithms returns the supported algorithms in sorted order.
func Algorithms() []Algorithm {
	algs := maps.Keys(registry)
	slices.Sort(algs)
	return algs
}

// Parse returns the Algorithm named by name.
//
// Matching ignores case and treats '_' as '-', so "sha_256",
// "Sha-256" and "SHA-256" all name SHA256.
func Parse(name string) (Algorithm, error) {
	alg := Algorithm(strings.ReplaceAll(strings.ToUpper(name), "_", "-"))
	if _, ok := registry[alg]; !ok {
		return "", &UnsupportedError{Name: name}
	}
	return alg, nil
}

// New returns a new hash.Hash computing alg.
func New(alg Algorithm) (hash.Hash, error) {
	fn, ok := registry[alg]
	if !ok {
		return nil, &UnsupportedError{Name: string(alg)}
	}
	return fn()
}

// Sum returns the alg digest of data.
func Sum(alg Algorithm, data []byte) ([]byte, error) {
	h, err := New(alg)
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}

// Hasher computes a digest and returns it as text.
type Hasher interface {
	// Hash returns the encoded digest of data.
	Hash(data []byte) (string, error)
}

// textHasher renders the binary digest with encode and then
// wipes it.
type textHasher struct {
	alg    Algorithm
	encode func([]byte) string
}

var _ Hasher = textHasher{}

func (h textHasher) Hash(data []byte) (string, error) {
	sum, err := Sum(h.alg, data)
	if err != nil {
		return "", err
	}
	defer codec.Wipe(sum)
	return h.encode(sum), nil
}

// Hex returns a Hasher whose digests are lowercase hexadecimal.
func Hex(alg Algorithm) Hasher {
	return textHasher{alg: alg, encode: hex.EncodeToString}
}

// Base64 returns a Hasher whose digests are padded standard
// Base64.
func Base64(alg Algorithm) Hasher {
	return textHasher{alg: alg, encode: base64.EncodeToString}
}

// HexSum returns the alg digest of data as lowercase
// hexadecimal.
func HexSum(alg Algorithm, data []byte) (string, error) {
	return Hex(alg).Hash(data)
}

// Base64Sum returns the alg digest of data as padded standard
// Base64.
func Base64Sum(alg Algorithm, data []byte) (string, error) {
	return Base64(alg).Hash(data)
}

// MD5Hex returns the MD5 digest of s as lowercase hexadecimal.
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether hexDigest is the alg digest of data.
//
// hexDigest may contain whitespace and either case. If it is not
// valid hexadecimal, Verify returns the *codec.FormatError from
// the hex codec.
//
// The comparison runs in constant time.
func Verify(alg Algorithm, data []byte, hexDigest string) (bool, error) {
	want, err := hex.DecodeString(hexDigest)
	if err != nil {
		return false, fmt.Errorf("digest: %w", err)
	}
	got, err := Sum(alg, data)
	if err != nil {
		return false, err
	}
	defer codec.Wipe(got)
	return codec.ConstantTimeCompare(got, want) == 1, nil
}
