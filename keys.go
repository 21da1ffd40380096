package grist

import (
	"fmt"
	"sort"
	"strings"
)

// KeyFunc rewrites a single mapping key. ChangeKeysCase also applies it to
// bare string-like values, making it double as a leaf-transform entry
// point.
type KeyFunc func(string) string

// maxDepth bounds structural recursion. Deeper input reports
// ErrDepthExceeded instead of exhausting the stack; cyclic input is
// caught by the same bound.
const maxDepth = 1000

// IsContainer reports whether v is a structural container eligible for
// recursion: a mapping ([]map[string]any or *Map), an ordered sequence
// ([]any) or an unordered sequence (Set). String-like values (string,
// []byte) are not containers even though they are iterable at a lower
// level; every other value is an opaque scalar.
func IsContainer(v any) bool {
	switch v.(type) {
	case map[string]any, *Map, []any, Set:
		return true
	default:
		return false
	}
}

// ChangeKeysCase returns a copy of v with every mapping key rewritten by
// fn. Container kinds are preserved: a mapping stays a mapping, a list
// stays a list, a Set stays a Set. With deep set, nested containers are
// rewritten recursively; otherwise only the top-level mapping changes.
// Container elements of a sequence are rewritten in full either way.
// String and []byte values at the top level are passed to fn directly;
// opaque scalars pass through unchanged.
//
// Before rewriting, each mapping is merged on its reserved "_" prefix:
// for every key with leading underscores whose stripped form also exists
// in the mapping, the stripped key keeps its own value when truthy and
// takes the prefixed value otherwise. The merge works on a snapshot and
// is never observable as a separate step.
//
// When two keys rewrite to the same output key, the one iterated last
// wins: insertion order for *Map, ascending original-key order for
// builtin maps.
func ChangeKeysCase(v any, fn KeyFunc, deep bool) (any, error) {
	return changeKeys(v, fn, deep, 0)
}

func changeKeys(v any, fn KeyFunc, deep bool, depth int) (any, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("change keys case: %w", ErrDepthExceeded)
	}
	switch val := v.(type) {
	case string:
		return fn(val), nil
	case []byte:
		return fn(string(val)), nil
	case map[string]any:
		merged := mergeReserved(val, sortedKeys(val))
		out := make(map[string]any, len(merged))
		for _, k := range sortedKeys(merged) {
			child, err := changeKeysChild(merged[k], fn, deep, depth)
			if err != nil {
				return nil, err
			}
			out[fn(k)] = child
		}
		return out, nil
	case *Map:
		merged := mergeReserved(val.values, val.keys)
		out := NewMap()
		for _, k := range val.keys {
			child, err := changeKeysChild(merged[k], fn, deep, depth)
			if err != nil {
				return nil, err
			}
			out.Set(fn(k), child)
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			if !IsContainer(item) {
				out[i] = item
				continue
			}
			// Container elements of a sequence are always rewritten in
			// full, regardless of the deep flag at the top level.
			child, err := changeKeys(item, fn, true, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = child
		}
		return out, nil
	case Set:
		// Set members are scalars; the container kind is preserved.
		out := make(Set, len(val))
		for member := range val {
			out[member] = struct{}{}
		}
		return out, nil
	default:
		return v, nil
	}
}

// changeKeysChild recurses into mapping children when deep is set and
// passes scalars through.
func changeKeysChild(v any, fn KeyFunc, deep bool, depth int) (any, error) {
	if deep && IsContainer(v) {
		return changeKeys(v, fn, deep, depth+1)
	}
	return v, nil
}

// mergeReserved folds "_"-prefixed keys into their stripped counterparts
// on a snapshot of m. The stripped key must already exist; it keeps its
// own value when truthy and takes the prefixed value otherwise. The
// prefixed key itself survives to be rewritten like any other. Keys are
// visited in the given order so repeated prefixes resolve
// deterministically.
func mergeReserved(m map[string]any, order []string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	for _, k := range order {
		if !strings.HasPrefix(k, "_") {
			continue
		}
		stripped := strings.TrimLeft(k, "_")
		if _, ok := m[stripped]; !ok {
			continue
		}
		if !isTruthy(out[stripped]) {
			out[stripped] = out[k]
		}
	}
	return out
}

// SortKeys returns a copy of v with mapping keys in ascending order at
// every level. Builtin maps become *Map so the order is observable;
// sequence element order is data and is preserved while their container
// elements are sorted recursively. Non-container leaves pass through
// unchanged.
//
// Applying SortKeys twice yields the same result as applying it once.
func SortKeys(v any) (any, error) {
	return sortKeys(v, 0)
}

func sortKeys(v any, depth int) (any, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("sort keys: %w", ErrDepthExceeded)
	}
	switch val := v.(type) {
	case map[string]any:
		return sortInto(val, sortedKeys(val), depth)
	case *Map:
		return sortInto(val.values, sortedKeys(val.values), depth)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			if !IsContainer(item) {
				out[i] = item
				continue
			}
			child, err := sortKeys(item, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = child
		}
		return out, nil
	case Set:
		out := make(Set, len(val))
		for member := range val {
			out[member] = struct{}{}
		}
		return out, nil
	default:
		return v, nil
	}
}

func sortInto(values map[string]any, keys []string, depth int) (*Map, error) {
	out := NewMap()
	for _, k := range keys {
		child := values[k]
		if IsContainer(child) {
			var err error
			if child, err = sortKeys(child, depth+1); err != nil {
				return nil, err
			}
		}
		out.Set(k, child)
	}
	return out, nil
}

// Flatten collapses nested mappings into a single-level mapping keyed by
// dot-delimited paths. Mapping elements of a list contribute a ".[i]"
// path segment; scalar elements are stored under "key[i]".
func Flatten(m map[string]any) (map[string]any, error) {
	out := make(map[string]any)
	if err := flattenInto(out, m, "", 0); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(out, m map[string]any, prefix string, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("flatten: %w", ErrDepthExceeded)
	}
	for _, k := range sortedKeys(m) {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch val := m[k].(type) {
		case map[string]any:
			if err := flattenInto(out, val, path, depth+1); err != nil {
				return err
			}
		case []any:
			for i, item := range val {
				if child, ok := item.(map[string]any); ok {
					sub := fmt.Sprintf("%s.[%d]", path, i)
					if err := flattenInto(out, child, sub, depth+1); err != nil {
						return err
					}
					continue
				}
				out[fmt.Sprintf("%s[%d]", path, i)] = item
			}
		default:
			out[path] = val
		}
	}
	return nil
}

// isTruthy mirrors the merge semantics: zero scalars, empty text and
// empty containers count as false, everything else as true.
func isTruthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case []byte:
		return len(val) != 0
	case int:
		return val != 0
	case int8:
		return val != 0
	case int16:
		return val != 0
	case int32:
		return val != 0
	case int64:
		return val != 0
	case uint:
		return val != 0
	case uint8:
		return val != 0
	case uint16:
		return val != 0
	case uint32:
		return val != 0
	case uint64:
		return val != 0
	case float32:
		return val != 0
	case float64:
		return val != 0
	case map[string]any:
		return len(val) != 0
	case []any:
		return len(val) != 0
	case Set:
		return len(val) != 0
	case *Map:
		return val != nil && val.Len() != 0
	default:
		return true
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
