// Package gristtest provides shared fixtures for grist tests.
package gristtest

import "strings"

// Identity returns the key unchanged.
func Identity(k string) string { return k }

// UpperKey uppercases the key, making rewrites visible in assertions.
func UpperKey(k string) string { return strings.ToUpper(k) }

// PrefixKey returns a key rewriter that prepends prefix.
func PrefixKey(prefix string) func(string) string {
	return func(k string) string { return prefix + k }
}

// NestedDoc returns a representative nested document: reserved-prefix
// keys, nested mappings, a list of mappings and scalar leaves.
func NestedDoc() map[string]any {
	return map[string]any{
		"user_id": "42",
		"_token":  "abc",
		"token":   "",
		"profile": map[string]any{
			"first_name": "dana",
			"last_name":  "levi",
			"tags":       []any{"a", "b"},
		},
		"orders": []any{
			map[string]any{"order_id": 1, "total": 9.5},
			map[string]any{"order_id": 2, "total": 12.0},
		},
		"active": true,
		"score":  nil,
	}
}

// DeepDoc returns a mapping nested to the given depth, for exercising the
// recursion bound.
func DeepDoc(depth int) map[string]any {
	doc := map[string]any{"leaf": "v"}
	for i := 0; i < depth; i++ {
		doc = map[string]any{"nested": doc}
	}
	return doc
}
