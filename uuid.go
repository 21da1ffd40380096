package grist

import (
	"context"
	"crypto/md5"
	"crypto/rand"
	"io"
	"strings"
	"time"
)

// External collaborators for identifier generation. Tests swap these to
// pin time and randomness.
var (
	clockNow           = time.Now
	entropy  io.Reader = rand.Reader
)

// UUIDv7 returns a new time-ordered 128-bit identifier as lowercase dashed
// hexadecimal (8-4-4-4-12). The first 48 bits carry the current Unix
// millisecond timestamp big-endian, so identifiers sort lexicographically
// in generation order; the version and variant bits are fixed constants
// overlaid onto 74 random bits. Fails with an error matching ErrEntropy
// only when the random source is unavailable.
func UUIDv7() (string, error) {
	var random [10]byte
	if _, err := io.ReadFull(entropy, random[:]); err != nil {
		emitEntropyFailure(context.Background(), "uuidv7", err)
		return "", newResourceError("uuidv7", err)
	}
	u := activeIdentifier.BuildV7(clockNow().UnixMilli(), random)
	return activeIdentifier.FormatUUID(u, false), nil
}

// UUIDv7Time extracts the embedded generation time from a UUIDv7 string,
// with or without dashes, as a UTC instant. An empty input returns the
// zero time and no error. Text whose dash-stripped length is not 32 hex
// digits fails with an error matching ErrFormat.
func UUIDv7Time(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	ms, err := activeIdentifier.TimestampMS(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

// StableUUID deterministically maps the ordered parts to a 128-bit
// identifier: the parts are joined with "|", digested with MD5, and the
// digest is rendered as uppercase dashed hexadecimal. Identical ordered
// parts always produce the identical result. No parts at all produce the
// empty string, not a digest of the empty string.
func StableUUID(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	sum := md5.Sum(stringToBytes(strings.Join(parts, "|")))
	return activeIdentifier.FormatUUID(sum, true)
}
