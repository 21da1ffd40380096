package grist

import (
	"crypto/md5"

	"lukechampine.com/blake3"
)

// MD5Hex returns the MD5 digest of text as 32 lowercase hex characters.
// Use for legacy fingerprinting and cache keys, not for passwords.
func MD5Hex(text string) string {
	sum := md5.Sum(stringToBytes(text))
	return ToHex(sum[:])
}

// Fingerprint returns a 128-bit BLAKE3 digest of data as 32 lowercase hex
// characters. Deterministic content fingerprinting; not a password hash.
func Fingerprint(data []byte) string {
	h := blake3.New(16, nil)
	h.Write(data)
	return ToHex(h.Sum(nil))
}
