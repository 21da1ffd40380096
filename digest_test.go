package grist

import "testing"

func TestMD5Hex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "5d41402abc4b2a76b9719d911017c592"},
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
	}
	for _, tt := range tests {
		if got := MD5Hex(tt.in); got != tt.want {
			t.Errorf("MD5Hex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint([]byte("content"))
	if len(fp) != 32 {
		t.Fatalf("length = %d, want 32 hex chars", len(fp))
	}
	if !IsHex(fp) {
		t.Errorf("fingerprint %q is not hex", fp)
	}
	if fp != Fingerprint([]byte("content")) {
		t.Error("fingerprint must be deterministic")
	}
	if fp == Fingerprint([]byte("Content")) {
		t.Error("different content must fingerprint differently")
	}
}
