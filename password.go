package grist

import (
	"context"
	"crypto/subtle"
	"io"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters: interactive-login cost, 32-byte key.
const (
	scryptN     = 16384
	scryptR     = 8
	scryptP     = 1
	scryptKeyLn = 32
	saltLen     = 16
)

// EncryptPassword derives a scrypt key from password and salt and returns
// it as 64 lowercase hex characters. The derivation is deterministic for
// a given password/salt pair.
func EncryptPassword(password, salt string) (string, error) {
	key, err := scrypt.Key(stringToBytes(password), stringToBytes(salt), scryptN, scryptR, scryptP, scryptKeyLn)
	if err != nil {
		return "", err
	}
	return ToHex(key), nil
}

// HashPassword hashes password with a fresh random salt. The result is the
// 64-character digest followed by the 32-character hex salt; MatchPassword
// splits them back apart. Fails with an error matching ErrEntropy when the
// random source is unavailable.
func HashPassword(password string) (string, error) {
	var salt [saltLen]byte
	if _, err := io.ReadFull(entropy, salt[:]); err != nil {
		emitEntropyFailure(context.Background(), "hash password", err)
		return "", newResourceError("hash password", err)
	}
	hexSalt := ToHex(salt[:])
	digest, err := EncryptPassword(password, hexSalt)
	if err != nil {
		return "", err
	}
	return digest + hexSalt, nil
}

// MatchPassword reports whether password matches a hash produced by
// HashPassword. The comparison is constant-time.
func MatchPassword(password, hash string) bool {
	const digestLen = scryptKeyLn * 2
	if len(hash) != digestLen+saltLen*2 {
		return false
	}
	digest, err := EncryptPassword(password, hash[digestLen:])
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(stringToBytes(digest), stringToBytes(hash[:digestLen])) == 1
}
