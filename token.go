package grist

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/segmentio/ksuid"
)

// IDEncoding controls the output encoding of RandomID.
type IDEncoding string

const (
	// IDEncodingASCII leaves the generated characters as-is.
	IDEncodingASCII IDEncoding = "ascii"

	// IDEncodingHex hex-encodes the generated characters, doubling the
	// output length.
	IDEncodingHex IDEncoding = "hex"

	// IDEncodingBase64 base64-encodes the generated characters.
	IDEncodingBase64 IDEncoding = "base64"
)

// IDCase optionally folds the output of RandomID.
type IDCase string

const (
	// IDCaseNone keeps the mixed-case output.
	IDCaseNone IDCase = ""

	// IDCaseUpper folds the output to uppercase.
	IDCaseUpper IDCase = "upper"

	// IDCaseLower folds the output to lowercase.
	IDCaseLower IDCase = "lower"
)

// IDOptions configures RandomID.
type IDOptions struct {
	Symbols  bool       // include punctuation in the alphabet
	Encoding IDEncoding // output encoding, default ascii
	Case     IDCase     // optional case folding, applied last
}

const (
	alnumAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	symbolAlphabet = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// RandomID generates a random identifier of length characters drawn from
// the alphanumeric alphabet, optionally extended with symbols, then
// re-encoded and case-folded per opts. A non-positive length yields the
// empty string. Not suitable for secrets; use RandomToken or SecureToken
// for those.
func RandomID(length int, opts IDOptions) string {
	if length < 0 {
		length = 0
	}
	alphabet := alnumAlphabet
	if opts.Symbols {
		alphabet += symbolAlphabet
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[rand.IntN(len(alphabet))]
	}

	res := string(out)
	switch opts.Encoding {
	case IDEncodingHex:
		res = ToHex(out)
	case IDEncodingBase64:
		res = ToBase64(out)
	}

	switch opts.Case {
	case IDCaseUpper:
		return strings.ToUpper(res)
	case IDCaseLower:
		return strings.ToLower(res)
	}
	return res
}

// TokenBase selects the alphabet of RandomToken.
type TokenBase string

const (
	TokenBinary  TokenBase = "binary"
	TokenOctal   TokenBase = "octal"
	TokenDecimal TokenBase = "decimal"
	TokenHex     TokenBase = "hex"
	TokenBase64  TokenBase = "base-64"
)

// tokenAlphabets maps each base to its character set.
var tokenAlphabets = map[TokenBase]string{
	TokenBinary:  "01",
	TokenOctal:   "01234567",
	TokenDecimal: "0123456789",
	TokenHex:     "0123456789abcdef",
	TokenBase64:  alnumAlphabet,
}

// RandomToken generates a cryptographically strong token of size
// characters from the alphabet of base. An unknown base fails with an
// error matching ErrInvalidInput; an unavailable random source with one
// matching ErrEntropy.
func RandomToken(size int, base TokenBase) (string, error) {
	alphabet, ok := tokenAlphabets[base]
	if !ok {
		return "", fmt.Errorf("random token: %w: unknown base %q", ErrInvalidInput, base)
	}
	if size < 0 {
		return "", fmt.Errorf("random token: %w: negative size %d", ErrInvalidInput, size)
	}
	return secureDraw(size, alphabet, "random token")
}

// secureTokenAlphabet is base58-style: alphanumerics without the
// lookalikes 0, O, I and l.
const secureTokenAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz123456789"

// SecureToken generates a cryptographically strong token from a
// base58-style alphabet. A non-positive length defaults to 24.
func SecureToken(length int) (string, error) {
	if length <= 0 {
		length = 24
	}
	return secureDraw(length, secureTokenAlphabet, "secure token")
}

// secureDraw samples n characters uniformly from alphabet using the
// entropy source, rejecting bytes past the largest multiple of the
// alphabet size to avoid modulo bias.
func secureDraw(n int, alphabet, op string) (string, error) {
	limit := byte(256 - 256%len(alphabet))
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := io.ReadFull(entropy, buf); err != nil {
			emitEntropyFailure(context.Background(), op, err)
			return "", newResourceError(op, err)
		}
		for _, b := range buf {
			if b >= limit && limit != 0 {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return bytesToString(out), nil
}

// SortableToken returns a K-sortable unique token: 27 base62 characters
// ordered by creation time, denser than a UUIDv7 string when the dashed
// hex form is not required.
func SortableToken() string {
	return ksuid.New().String()
}
