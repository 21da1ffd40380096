package grist

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// codecStrategies drives the conformance suite: every case must behave
// identically on both paths.
var codecStrategies = []struct {
	name string
	c    codecStrategy
}{
	{"native", nativeCodec{}},
	{"portable", portableCodec{}},
}

func TestToHex_Fixtures(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ab", []byte("ab"), "6162"},
		{"hello", []byte("hello"), "68656c6c6f"},
		{"empty", nil, ""},
		{"high bytes", []byte{0x00, 0x0F, 0xF0, 0xFF}, "000ff0ff"},
	}

	for _, s := range codecStrategies {
		t.Run(s.name, func(t *testing.T) {
			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					if got := s.c.ToHex(tt.in); got != tt.want {
						t.Errorf("ToHex(%q) = %q, want %q", tt.in, got, tt.want)
					}
				})
			}
		})
	}
}

func TestFromHex(t *testing.T) {
	for _, s := range codecStrategies {
		t.Run(s.name, func(t *testing.T) {
			got, err := s.c.FromHex("6162")
			if err != nil {
				t.Fatalf("FromHex(6162) error: %v", err)
			}
			if string(got) != "ab" {
				t.Errorf("FromHex(6162) = %q, want ab", got)
			}

			// Input accepts both cases; output of ToHex is lowercase only.
			got, err = s.c.FromHex("6A6B")
			if err != nil {
				t.Fatalf("FromHex(6A6B) error: %v", err)
			}
			if string(got) != "jk" {
				t.Errorf("FromHex(6A6B) = %q, want jk", got)
			}
		})
	}
}

func TestFromHex_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"odd length", "616"},
		{"invalid char", "61g2"},
		{"non-ascii", "61ש2"},
	}

	for _, s := range codecStrategies {
		t.Run(s.name, func(t *testing.T) {
			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					if _, err := s.c.FromHex(tt.in); !errors.Is(err, ErrFormat) {
						t.Errorf("FromHex(%q) error = %v, want ErrFormat", tt.in, err)
					}
				})
			}
		})
	}
}

func TestHex_RoundTripAllBytes(t *testing.T) {
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(i)
	}

	for _, s := range codecStrategies {
		t.Run(s.name, func(t *testing.T) {
			enc := s.c.ToHex(buf)
			if len(enc) != len(buf)*2 {
				t.Fatalf("ToHex length = %d, want %d", len(enc), len(buf)*2)
			}
			if enc != strings.ToLower(enc) {
				t.Error("ToHex output must be lowercase")
			}
			dec, err := s.c.FromHex(enc)
			if err != nil {
				t.Fatalf("FromHex error: %v", err)
			}
			if !bytes.Equal(dec, buf) {
				t.Error("round trip mismatch")
			}
		})
	}
}

func TestBase64_RoundTrip(t *testing.T) {
	inputs := []string{"", "a", "ab", "abc", "hello world", "שלום עולם"}

	for _, s := range codecStrategies {
		t.Run(s.name, func(t *testing.T) {
			for _, in := range inputs {
				enc := s.c.ToBase64([]byte(in))
				dec, err := s.c.FromBase64(enc)
				if err != nil {
					t.Fatalf("FromBase64(%q) error: %v", enc, err)
				}
				if string(dec) != in {
					t.Errorf("round trip = %q, want %q", dec, in)
				}
			}
		})
	}
}

func TestFromBase64_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"bad alphabet", "!!!!"},
		{"truncated padding", "QQ="},
		{"stray padding", "Q==="},
	}

	for _, s := range codecStrategies {
		t.Run(s.name, func(t *testing.T) {
			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					if _, err := s.c.FromBase64(tt.in); !errors.Is(err, ErrFormat) {
						t.Errorf("FromBase64(%q) error = %v, want ErrFormat", tt.in, err)
					}
				})
			}
		})
	}
}

func TestIsASCII(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"hello", true},
		{"Hello World 123", true},
		{"", true},
		{"héllo", false},
		{"שלום", false},
		{"abc\x7f", true},
	}

	for _, s := range codecStrategies {
		t.Run(s.name, func(t *testing.T) {
			for _, tt := range tests {
				if got := s.c.IsASCII(tt.in); got != tt.want {
					t.Errorf("IsASCII(%q) = %v, want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestIsASCII_LongInput(t *testing.T) {
	// Exercise the word-at-a-time loop with the offending byte at every
	// position near the block boundary.
	for offset := 0; offset < 24; offset++ {
		in := []byte(strings.Repeat("x", 24))
		in[offset] = 0xC3
		for _, s := range codecStrategies {
			if s.c.IsASCII(string(in)) {
				t.Errorf("%s: IsASCII with high byte at %d = true, want false", s.name, offset)
			}
		}
	}
}

func TestIsHex(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"deadbeef", true},
		{"0123456789abcdef", true},
		{"ABCDEF", true},
		{"6162", true},
		{"616", true}, // length is not a hex-validity concern
		{"nothex", false},
		{"ghijkl", false},
		{"61g2", false},
		{"", false},
		{"שלום", false},
	}

	for _, s := range codecStrategies {
		t.Run(s.name, func(t *testing.T) {
			for _, tt := range tests {
				if got := s.c.IsHex(tt.in); got != tt.want {
					t.Errorf("IsHex(%q) = %v, want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestIsHebrew(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"שלום", true},
		{"hello שלום", true},
		{"֐", true},
		{"׿", true},
		{"֏", false},
		{"؀", false},
		{"hello", false},
		{"123", false},
		{"", false},
	}

	for _, s := range codecStrategies {
		t.Run(s.name, func(t *testing.T) {
			for _, tt := range tests {
				if got := s.c.IsHebrew(tt.in); got != tt.want {
					t.Errorf("IsHebrew(%q) = %v, want %v", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestFilterASCII(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"héllo", "hllo"},
		{"שלום", ""},
		{"abc שלום 123", "abc  123"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, s := range codecStrategies {
		t.Run(s.name, func(t *testing.T) {
			for _, tt := range tests {
				if got := s.c.FilterASCII(tt.in); got != tt.want {
					t.Errorf("FilterASCII(%q) = %q, want %q", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestExtractDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc123def456", "123456"},
		{"123456", "123456"},
		{"abcdef", ""},
		{"", ""},
		{"ט3ל0", "30"},
	}

	for _, s := range codecStrategies {
		t.Run(s.name, func(t *testing.T) {
			for _, tt := range tests {
				if got := s.c.ExtractDigits(tt.in); got != tt.want {
					t.Errorf("ExtractDigits(%q) = %q, want %q", tt.in, got, tt.want)
				}
			}
		})
	}
}

func TestCodec_PublicSurface(t *testing.T) {
	// The exported functions route through whichever path resolved at
	// init; spot-check them against the fixtures.
	if got := ToHex([]byte("ab")); got != "6162" {
		t.Errorf("ToHex = %q, want 6162", got)
	}
	raw, err := FromHex("6162")
	if err != nil || string(raw) != "ab" {
		t.Errorf("FromHex = %q, %v", raw, err)
	}
	if !IsHex("6162") || IsHex("61g2") {
		t.Error("IsHex fixtures failed")
	}
	if got := ExtractDigits("a1b2"); got != "12" {
		t.Errorf("ExtractDigits = %q, want 12", got)
	}
	dec, err := FromBase64(ToBase64([]byte("hi")))
	if err != nil || string(dec) != "hi" {
		t.Errorf("base64 round trip = %q, %v", dec, err)
	}
	if !IsASCII("x") || !IsHebrew("ש") || FilterASCII("aש") != "a" {
		t.Error("classifier surface failed")
	}
}

func TestClassifiers_ZeroAlloc(t *testing.T) {
	in := strings.Repeat("deadbeef", 8)
	for _, s := range codecStrategies {
		c := s.c
		checks := map[string]func(){
			"IsASCII":  func() { c.IsASCII(in) },
			"IsHex":    func() { c.IsHex(in) },
			"IsHebrew": func() { c.IsHebrew(in) },
		}
		for name, fn := range checks {
			if allocs := testing.AllocsPerRun(100, fn); allocs > 0 {
				t.Errorf("%s/%s allocated %f allocs/op", s.name, name, allocs)
			}
		}
	}
}

func BenchmarkToHex(b *testing.B) {
	buf := bytes.Repeat([]byte{0xAB}, 1024)
	for _, s := range codecStrategies {
		b.Run(s.name, func(b *testing.B) {
			b.SetBytes(int64(len(buf)))
			for i := 0; i < b.N; i++ {
				s.c.ToHex(buf)
			}
		})
	}
}

func BenchmarkIsASCII(b *testing.B) {
	in := strings.Repeat("the quick brown fox ", 64)
	for _, s := range codecStrategies {
		b.Run(s.name, func(b *testing.B) {
			b.SetBytes(int64(len(in)))
			for i := 0; i < b.N; i++ {
				s.c.IsASCII(in)
			}
		})
	}
}
