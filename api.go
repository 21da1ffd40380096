// Package grist provides small, performance-sensitive data-transformation
// primitives: byte-level codecs, checksum validation, time-ordered unique
// identifiers, and recursive structural key transforms over nested
// container values.
//
// # Dual Paths
//
// The byte-level operation families (codec, checksum, identifier) each ship
// two implementations of the same contract:
//
//   - native: tuned routines working on raw bytes, using zero-copy
//     string conversions and table lookups
//   - portable: straightforward implementations on the standard library
//
// One of the two is selected per family when the process starts, based on a
// CPU capability probe. Selection is read-only afterward and both paths are
// observably indistinguishable: same outputs, same error classification for
// the same inputs. Set the GRIST_PORTABLE environment variable (or build
// with the purego tag) to force the portable path everywhere.
//
// Use [ActivePath] to inspect which path a family resolved to.
//
// # Codecs and Classification
//
//	hexText := grist.ToHex([]byte("ab"))        // "6162"
//	raw, err := grist.FromHex("6162")           // []byte("ab")
//	grist.IsASCII("hello")                      // true
//	grist.IsHebrew("שלום")                      // true
//	grist.ExtractDigits("abc123def456")         // "123456"
//
// Decode operations fail with an error matching [ErrFormat]; encode
// operations and classifiers never fail.
//
// # Identifiers
//
//	id, err := grist.UUIDv7()                   // lowercase, dashed, sortable
//	ts, err := grist.UUIDv7Time(id)             // generation time, UTC
//	sid := grist.StableUUID("user", "42")       // deterministic, uppercase
//
// UUIDv7 values sort lexicographically in generation order. StableUUID maps
// the same ordered parts to the same identifier, always.
//
// # Structural Transforms
//
//	out, err := grist.ChangeKeysCase(doc, strings.ToUpper, true)
//	sorted, err := grist.SortKeys(doc)
//	flat, err := grist.Flatten(doc)
//
// Transforms preserve container shape: a mapping stays a mapping, a [Set]
// stays a Set, sequence element order is never disturbed. Inputs must be
// acyclic; recursion is bounded and reports [ErrDepthExceeded] beyond the
// limit rather than exhausting the stack.
//
// # Errors
//
// All failures wrap one of the package sentinels and are checked with
// errors.Is:
//
//   - [ErrFormat]: malformed textual input to a decode or parse operation
//   - [ErrEntropy]: the random source is unavailable
//   - [ErrInvalidInput]: a caller passed a structurally wrong value
//   - [ErrDepthExceeded]: nesting beyond the recursion limit
//
// Validation operations (IsValidIsraeliID, IsHex, ...) return false for bad
// input instead of an error.
package grist
