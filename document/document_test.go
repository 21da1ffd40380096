package document

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestCodecs_ContentTypes(t *testing.T) {
	tests := []struct {
		c    Codec
		want string
	}{
		{JSON(), "application/json"},
		{YAML(), "application/yaml"},
		{Msgpack(), "application/msgpack"},
	}
	for _, tt := range tests {
		if got := tt.c.ContentType(); got != tt.want {
			t.Errorf("ContentType = %q, want %q", got, tt.want)
		}
	}
}

func TestTransform_JSON(t *testing.T) {
	in := []byte(`{"user_id":"42","profile":{"first_name":"dana"}}`)

	out, err := Transform(in, JSON(), strings.ToUpper, true)
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	want := `{"PROFILE":{"FIRST_NAME":"dana"},"USER_ID":"42"}`
	if string(out) != want {
		t.Errorf("Transform = %s, want %s", out, want)
	}
}

func TestTransform_Shallow(t *testing.T) {
	in := []byte(`{"outer":{"inner":1}}`)

	out, err := Transform(in, JSON(), strings.ToUpper, false)
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	want := `{"OUTER":{"inner":1}}`
	if string(out) != want {
		t.Errorf("Transform = %s, want %s", out, want)
	}
}

func TestTransform_YAML(t *testing.T) {
	in := []byte("name: dana\nnested:\n  key: v\n")

	out, err := Transform(in, YAML(), strings.ToUpper, true)
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	got := string(out)
	if !strings.Contains(got, "NAME: dana") || !strings.Contains(got, "KEY: v") {
		t.Errorf("Transform = %q", got)
	}
}

func TestTransform_Msgpack(t *testing.T) {
	in, err := msgpack.Marshal(map[string]any{
		"user_id": "42",
		"tags":    []any{"a", "b"},
	})
	if err != nil {
		t.Fatalf("fixture marshal error: %v", err)
	}

	out, err := Transform(in, Msgpack(), strings.ToUpper, true)
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	var back map[string]any
	if err := msgpack.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if back["USER_ID"] != "42" {
		t.Errorf("USER_ID = %v", back["USER_ID"])
	}
	if _, ok := back["user_id"]; ok {
		t.Error("original key survived the rewrite")
	}
}

func TestTransform_DecodeError(t *testing.T) {
	if _, err := Transform([]byte(`{not json`), JSON(), strings.ToUpper, true); err == nil {
		t.Error("malformed document must error")
	}
}

func TestCanonical_JSON(t *testing.T) {
	in := []byte(`{"b":1,"a":{"d":2,"c":3}}`)

	out, err := Canonical(in, JSON())
	if err != nil {
		t.Fatalf("Canonical error: %v", err)
	}
	want := `{"a":{"c":3,"d":2},"b":1}`
	if string(out) != want {
		t.Errorf("Canonical = %s, want %s", out, want)
	}
}

func TestCanonical_YAML_Ordered(t *testing.T) {
	in := []byte("zeta: 1\nalpha: 2\n")

	out, err := Canonical(in, YAML())
	if err != nil {
		t.Fatalf("Canonical error: %v", err)
	}
	want := "alpha: 2\nzeta: 1\n"
	if string(out) != want {
		t.Errorf("Canonical = %q, want %q", out, want)
	}
}

func TestCanonical_Deterministic(t *testing.T) {
	in := []byte(`{"b":1,"a":2,"c":{"z":1,"y":2}}`)
	first, err := Canonical(in, JSON())
	if err != nil {
		t.Fatalf("Canonical error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Canonical(in, JSON())
		if err != nil {
			t.Fatalf("Canonical error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatal("canonical form must be stable")
		}
	}
}

func TestFingerprint_CrossCodec(t *testing.T) {
	jsonDoc := []byte(`{"b":"x","a":1}`)
	yamlDoc := []byte("a: 1\nb: x\n")

	fj, err := Fingerprint(jsonDoc, JSON())
	if err != nil {
		t.Fatalf("Fingerprint error: %v", err)
	}
	fy, err := Fingerprint(yamlDoc, YAML())
	if err != nil {
		t.Fatalf("Fingerprint error: %v", err)
	}
	if fj != fy {
		t.Errorf("same logical document fingerprints differ: %q vs %q", fj, fy)
	}
	if len(fj) != 32 {
		t.Errorf("fingerprint length = %d, want 32", len(fj))
	}
}

func TestFingerprint_KeyOrderInsensitive(t *testing.T) {
	a := []byte(`{"x":1,"y":2}`)
	b := []byte(`{"y":2,"x":1}`)

	fa, err := Fingerprint(a, JSON())
	if err != nil {
		t.Fatalf("Fingerprint error: %v", err)
	}
	fb, err := Fingerprint(b, JSON())
	if err != nil {
		t.Fatalf("Fingerprint error: %v", err)
	}
	if fa != fb {
		t.Error("key order must not change the fingerprint")
	}

	fc, err := Fingerprint([]byte(`{"x":1,"y":3}`), JSON())
	if err != nil {
		t.Fatalf("Fingerprint error: %v", err)
	}
	if fa == fc {
		t.Error("different content must change the fingerprint")
	}
}
