// Package document applies structural transforms to encoded documents.
//
// A Codec pairs a content type with marshal/unmarshal logic; JSON, YAML
// and MessagePack codecs are built in. Transform, Canonical and
// Fingerprint decode a document, run the corresponding grist transform
// over the decoded value and re-encode it, so nested JSON/YAML/MessagePack
// objects can be rewritten without hand-walking them.
package document

import (
	"fmt"

	"github.com/zoobzio/grist"
)

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Transform decodes data with c, rewrites every mapping key with fn
// (recursively when deep is set) and re-encodes the result.
func Transform(data []byte, c Codec, fn grist.KeyFunc, deep bool) ([]byte, error) {
	v, err := decode(data, c)
	if err != nil {
		return nil, err
	}
	out, err := grist.ChangeKeysCase(v, fn, deep)
	if err != nil {
		return nil, err
	}
	return encode(out, c)
}

// Canonical decodes data with c and re-encodes it with mapping keys in
// ascending order at every level. The same logical document always
// canonicalizes to the same bytes for a given codec.
func Canonical(data []byte, c Codec) ([]byte, error) {
	v, err := decode(data, c)
	if err != nil {
		return nil, err
	}
	out, err := grist.SortKeys(v)
	if err != nil {
		return nil, err
	}
	return encode(out, c)
}

// Fingerprint returns the 128-bit BLAKE3 fingerprint of the canonical
// JSON form of the document, as lowercase hex. Two documents with the
// same logical content fingerprint identically regardless of the codec
// they arrive in.
func Fingerprint(data []byte, c Codec) (string, error) {
	v, err := decode(data, c)
	if err != nil {
		return "", err
	}
	sorted, err := grist.SortKeys(v)
	if err != nil {
		return "", err
	}
	canon, err := encode(sorted, JSON())
	if err != nil {
		return "", err
	}
	return grist.Fingerprint(canon), nil
}

func decode(data []byte, c Codec) (any, error) {
	var v any
	if err := c.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.ContentType(), err)
	}
	return normalize(v), nil
}

func encode(v any, c Codec) ([]byte, error) {
	out, err := c.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.ContentType(), err)
	}
	return out, nil
}

// normalize coerces decoder-specific container shapes into the closed set
// the transforms operate on: mapping keys become text, nested maps become
// map[string]any.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = normalize(child)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[fmt.Sprint(k)] = normalize(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = normalize(child)
		}
		return out
	default:
		return v
	}
}
