//go:build purego

package grist

// nativeEligible always reports false under the purego tag; the portable
// path is used everywhere.
func nativeEligible() bool {
	return false
}
