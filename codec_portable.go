package grist

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// Operation names used in error context by both paths.
const (
	opFromHex    = "from hex"
	opFromBase64 = "from base64"
)

// portableCodec implements codecStrategy on the standard library.
type portableCodec struct{}

func (portableCodec) ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

func (portableCodec) FromHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, newFormatError(opFromHex, "odd length")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, newFormatError(opFromHex, "invalid hex character")
	}
	return b, nil
}

func (portableCodec) ToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func (portableCodec) FromBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, newFormatError(opFromBase64, "invalid base64 text")
	}
	return b, nil
}

func (portableCodec) IsASCII(s string) bool {
	for _, r := range s {
		if r >= 0x80 {
			return false
		}
	}
	return true
}

func (portableCodec) IsHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func (portableCodec) IsHebrew(s string) bool {
	for _, r := range s {
		if r >= 0x0590 && r <= 0x05FF {
			return true
		}
	}
	return false
}

func (portableCodec) FilterASCII(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r < 0x80 {
			sb.WriteByte(byte(r))
		}
	}
	return sb.String()
}

func (portableCodec) ExtractDigits(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteByte(byte(r))
		}
	}
	return sb.String()
}
