package grist

// IsValidIsraeliID reports whether s is a valid Israeli identity number.
// The number is left-padded with zeros to nine digits, each digit is
// multiplied by an alternating 1/2 weight, two-digit products are reduced
// by nine, and the total must divide by ten. Anything longer than nine
// characters, containing a non-digit, or empty is invalid; validation
// never returns an error.
func IsValidIsraeliID(s string) bool {
	return activeChecksum.ValidIsraeliID(s)
}

// portableChecksum pads to nine digits first, then runs the weighted sum.
type portableChecksum struct{}

func (portableChecksum) ValidIsraeliID(s string) bool {
	// Empty input is explicitly invalid; the digit loop below is vacuous
	// over zero characters.
	if len(s) == 0 || len(s) > 9 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	padded := make([]byte, 9)
	for i := range padded {
		padded[i] = '0'
	}
	copy(padded[9-len(s):], s)

	total := 0
	for i, c := range padded {
		step := int(c-'0') * (1 + i%2)
		if step > 9 {
			step -= 9
		}
		total += step
	}
	return total%10 == 0
}

// nativeChecksum fuses validation, padding and the weighted sum into one
// pass. Padding zeros contribute nothing to the total, so only the weight
// phase needs the pad offset.
type nativeChecksum struct{}

func (nativeChecksum) ValidIsraeliID(s string) bool {
	n := len(s)
	if n == 0 || n > 9 {
		return false
	}
	pad := 9 - n
	total := 0
	for i := 0; i < n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		step := int(c-'0') * (1 + (i+pad)%2)
		if step > 9 {
			step -= 9
		}
		total += step
	}
	return total%10 == 0
}
