//go:build !purego

package grist

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// nativeEligible probes the CPU for the native path. The native routines
// rely on unaligned word loads, which the supported architectures below
// guarantee; SSE2 is the documented amd64 baseline.
func nativeEligible() bool {
	switch runtime.GOARCH {
	case "amd64":
		return cpuid.CPU.Supports(cpuid.SSE2)
	case "arm64":
		return true
	default:
		return false
	}
}
