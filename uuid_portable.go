package grist

import (
	"encoding/hex"
	"strconv"
	"strings"
)

const opUUIDTime = "uuidv7 time"

// portableIdentifier builds and parses identifiers byte by byte on the
// standard library.
type portableIdentifier struct{}

func (portableIdentifier) BuildV7(ms int64, random [10]byte) [16]byte {
	var u [16]byte
	u[0] = byte(ms >> 40)
	u[1] = byte(ms >> 32)
	u[2] = byte(ms >> 24)
	u[3] = byte(ms >> 16)
	u[4] = byte(ms >> 8)
	u[5] = byte(ms)
	u[6] = random[0]&0x0F | 0x70 // version 7
	u[7] = random[1]
	u[8] = random[2]&0x3F | 0x80 // RFC 4122 variant
	copy(u[9:], random[3:])
	return u
}

func (portableIdentifier) FormatUUID(u [16]byte, upper bool) string {
	h := hex.EncodeToString(u[:])
	s := h[0:8] + "-" + h[8:12] + "-" + h[12:16] + "-" + h[16:20] + "-" + h[20:32]
	if upper {
		s = strings.ToUpper(s)
	}
	return s
}

func (portableIdentifier) TimestampMS(s string) (int64, error) {
	clean := strings.ReplaceAll(s, "-", "")
	if len(clean) != 32 {
		return 0, newFormatError(opUUIDTime, "length must be 32 hex digits")
	}
	ms, err := strconv.ParseUint(clean[:12], 16, 64)
	if err != nil {
		return 0, newFormatError(opUUIDTime, "invalid hex character")
	}
	return int64(ms), nil
}
