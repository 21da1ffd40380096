package grist

import (
	"context"
	"os"
)

// Family identifies a dual-path operation family.
type Family string

const (
	// FamilyCodec covers hex/base64 coding and text classification.
	FamilyCodec Family = "codec"

	// FamilyChecksum covers weighted-checksum validation.
	FamilyChecksum Family = "checksum"

	// FamilyIdentifier covers UUID construction, formatting and parsing.
	FamilyIdentifier Family = "identifier"
)

// Path identifies which implementation of a family is active.
type Path string

const (
	// PathNative is the tuned byte-level implementation.
	PathNative Path = "native"

	// PathPortable is the standard-library implementation.
	PathPortable Path = "portable"
)

// codecStrategy is the contract shared by both codec implementations.
type codecStrategy interface {
	ToHex(b []byte) string
	FromHex(s string) ([]byte, error)
	ToBase64(b []byte) string
	FromBase64(s string) ([]byte, error)
	IsASCII(s string) bool
	IsHex(s string) bool
	IsHebrew(s string) bool
	FilterASCII(s string) string
	ExtractDigits(s string) string
}

// checksumStrategy is the contract shared by both checksum implementations.
type checksumStrategy interface {
	ValidIsraeliID(s string) bool
}

// identifierStrategy is the contract shared by both identifier
// implementations. BuildV7 is deterministic: the clock and entropy
// collaborators live in the caller so both paths stay pure.
type identifierStrategy interface {
	BuildV7(ms int64, random [10]byte) [16]byte
	FormatUUID(u [16]byte, upper bool) string
	TimestampMS(s string) (int64, error)
}

// Active strategies, resolved once at init and read-only afterward.
var (
	activeCodec      codecStrategy      = portableCodec{}
	activeChecksum   checksumStrategy   = portableChecksum{}
	activeIdentifier identifierStrategy = portableIdentifier{}

	activePaths = map[Family]Path{
		FamilyCodec:      PathPortable,
		FamilyChecksum:   PathPortable,
		FamilyIdentifier: PathPortable,
	}
)

func init() {
	if nativeSupported() {
		activeCodec = nativeCodec{}
		activeChecksum = nativeChecksum{}
		activeIdentifier = nativeIdentifier{}
		for f := range activePaths {
			activePaths[f] = PathNative
		}
	}
	ctx := context.Background()
	for f, p := range activePaths {
		emitPathResolved(ctx, f, p)
	}
}

// ActivePath returns the implementation path a family resolved to at
// process start. Unknown families report the portable path.
func ActivePath(family Family) Path {
	if p, ok := activePaths[family]; ok {
		return p
	}
	return PathPortable
}

// nativeSupported decides once whether the native path may be used.
// GRIST_PORTABLE forces the portable path regardless of hardware.
func nativeSupported() bool {
	if os.Getenv("GRIST_PORTABLE") != "" {
		return false
	}
	return nativeEligible()
}
