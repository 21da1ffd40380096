package grist

// ToHex returns the lowercase hexadecimal encoding of b, two characters per
// input byte, high nibble first. It never fails.
func ToHex(b []byte) string {
	return activeCodec.ToHex(b)
}

// FromHex decodes lowercase or uppercase hexadecimal text back into bytes.
// Odd-length text or a character outside [0-9a-fA-F] fails with an error
// matching ErrFormat.
func FromHex(s string) ([]byte, error) {
	return activeCodec.FromHex(s)
}

// ToBase64 returns the standard padded base64 encoding of b.
func ToBase64(b []byte) string {
	return activeCodec.ToBase64(b)
}

// FromBase64 decodes standard padded base64 text. Malformed padding or a
// character outside the alphabet fails with an error matching ErrFormat.
func FromBase64(s string) ([]byte, error) {
	return activeCodec.FromBase64(s)
}

// IsASCII reports whether every code point in s is below 128. The empty
// string is ASCII.
func IsASCII(s string) bool {
	return activeCodec.IsASCII(s)
}

// IsHex reports whether s is non-empty and consists only of hexadecimal
// digits. Text containing non-ASCII characters is never valid hex.
func IsHex(s string) bool {
	return activeCodec.IsHex(s)
}

// IsHebrew reports whether any code point of s falls in the Hebrew block
// U+0590 through U+05FF.
func IsHebrew(s string) bool {
	return activeCodec.IsHebrew(s)
}

// FilterASCII returns the subsequence of code points of s below 128,
// preserving order.
func FilterASCII(s string) string {
	return activeCodec.FilterASCII(s)
}

// ExtractDigits returns the subsequence of decimal digit characters of s,
// preserving order.
func ExtractDigits(s string) string {
	return activeCodec.ExtractDigits(s)
}
