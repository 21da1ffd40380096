package grist

import (
	"encoding/base64"
	"encoding/binary"
)

const (
	lowerHex = "0123456789abcdef"
	upperHex = "0123456789ABCDEF"
)

// reverseHex maps a byte to its nibble value, or -1 for non-hex bytes.
var reverseHex = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := '0'; i <= '9'; i++ {
		t[i] = int8(i - '0')
	}
	for i := 'a'; i <= 'f'; i++ {
		t[i] = int8(i - 'a' + 10)
	}
	for i := 'A'; i <= 'F'; i++ {
		t[i] = int8(i - 'A' + 10)
	}
	return t
}()

// nativeCodec implements codecStrategy with byte-level loops, zero-copy
// conversions and table lookups. Classification runs on raw bytes: every
// discriminating byte of the target classes is ASCII or a fixed UTF-8
// prefix, so byte scans and code-point scans agree.
type nativeCodec struct{}

func (nativeCodec) ToHex(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[i*2] = lowerHex[v>>4]
		out[i*2+1] = lowerHex[v&0x0F]
	}
	return bytesToString(out)
}

func (nativeCodec) FromHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, newFormatError(opFromHex, "odd length")
	}
	src := stringToBytes(s)
	out := make([]byte, len(src)/2)
	for i := 0; i < len(out); i++ {
		hi := reverseHex[src[i*2]]
		lo := reverseHex[src[i*2+1]]
		if hi < 0 || lo < 0 {
			return nil, newFormatError(opFromHex, "invalid hex character")
		}
		out[i] = byte(hi)<<4 | byte(lo)
	}
	return out, nil
}

// Base64 coding delegates to the standard encoder, which is already
// table-driven; only the error classification is normalized here.
func (nativeCodec) ToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func (nativeCodec) FromBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, newFormatError(opFromBase64, "invalid base64 text")
	}
	return b, nil
}

func (nativeCodec) IsASCII(s string) bool {
	b := stringToBytes(s)
	// Word-at-a-time scan: any set high bit means a multi-byte code point.
	for len(b) >= 8 {
		if binary.LittleEndian.Uint64(b)&0x8080808080808080 != 0 {
			return false
		}
		b = b[8:]
	}
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

func (nativeCodec) IsHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if reverseHex[s[i]] < 0 {
			return false
		}
	}
	return true
}

func (nativeCodec) IsHebrew(s string) bool {
	// U+0590..U+05FF encode as 0xD6 0x90..0xBF and 0xD7 0x80..0xBF.
	for i := 0; i+1 < len(s); i++ {
		switch s[i] {
		case 0xD6:
			if s[i+1] >= 0x90 && s[i+1] <= 0xBF {
				return true
			}
		case 0xD7:
			if s[i+1] >= 0x80 && s[i+1] <= 0xBF {
				return true
			}
		}
	}
	return false
}

func (nativeCodec) FilterASCII(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < 0x80 {
			out = append(out, s[i])
		}
	}
	return bytesToString(out)
}

func (nativeCodec) ExtractDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return bytesToString(out)
}
