package grist

import (
	"unicode"
	"unicode/utf8"
)

// ToUpperFirst returns s with its first code point uppercased and the rest
// untouched.
func ToUpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	up := unicode.ToUpper(r)
	if up == r {
		return s
	}
	return string(up) + s[size:]
}
