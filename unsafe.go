package grist

import "unsafe"

// stringToBytes converts a string to []byte without allocation. The result
// shares memory with s and must never be modified.
func stringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// bytesToString converts b to a string without allocation. b must not be
// modified after the call.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
