package grist

import "encoding/binary"

// nativeIdentifier lays identifiers out with word stores and formats them
// into a single pre-sized buffer.
type nativeIdentifier struct{}

func (nativeIdentifier) BuildV7(ms int64, random [10]byte) [16]byte {
	var u [16]byte
	// Timestamp, version nibble and first random byte in one store.
	w := uint64(ms)<<16 |
		uint64(random[0]&0x0F|0x70)<<8 |
		uint64(random[1])
	binary.BigEndian.PutUint64(u[0:8], w)
	u[8] = random[2]&0x3F | 0x80
	copy(u[9:], random[3:])
	return u
}

// Dash positions in the canonical 8-4-4-4-12 grouping.
var uuidDashAfter = [16]bool{3: true, 5: true, 7: true, 9: true}

func (nativeIdentifier) FormatUUID(u [16]byte, upper bool) string {
	table := lowerHex
	if upper {
		table = upperHex
	}
	out := make([]byte, 0, 36)
	for i, v := range u {
		out = append(out, table[v>>4], table[v&0x0F])
		if uuidDashAfter[i] {
			out = append(out, '-')
		}
	}
	return bytesToString(out)
}

func (nativeIdentifier) TimestampMS(s string) (int64, error) {
	var (
		ms      uint64
		digits  int
		badByte bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' {
			continue
		}
		digits++
		// Only the first 12 digits carry the timestamp; the remainder is
		// counted but not decoded, matching the portable parse.
		if digits <= 12 {
			n := reverseHex[c]
			if n < 0 {
				badByte = true
				continue
			}
			ms = ms<<4 | uint64(n)
		}
	}
	switch {
	case digits != 32:
		return 0, newFormatError(opUUIDTime, "length must be 32 hex digits")
	case badByte:
		return 0, newFormatError(opUUIDTime, "invalid hex character")
	}
	return int64(ms), nil
}
