package grist

import "testing"

func TestToUpperFirst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "Hello"},
		{"h", "H"},
		{"", ""},
		{"Hello", "Hello"},
		{"élan", "Élan"},
		{"1abc", "1abc"},
	}
	for _, tt := range tests {
		if got := ToUpperFirst(tt.in); got != tt.want {
			t.Errorf("ToUpperFirst(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
