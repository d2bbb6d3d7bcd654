package dof

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
)

// Accessors over the generic tree produced by the engine or handed to
// FromValue. They return a single invalid_type issue at p on mismatch.

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any, []string:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, int, int64, float64:
		return "number"
	}
	return "unknown"
}

func wrongType(p PathRef, want string, v any) error {
	return failWith(p, CodeInvalidType, "expected "+want+", got "+typeName(v), "expected", want, "actual", typeName(v))
}

func asObject(v any, p PathRef) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, wrongType(p, "object", v)
	}
	return m, nil
}

func asArray(v any, p PathRef) ([]any, error) {
	switch a := v.(type) {
	case []any:
		return a, nil
	case []string:
		out := make([]any, len(a))
		for i, s := range a {
			out[i] = s
		}
		return out, nil
	}
	return nil, wrongType(p, "array", v)
}

func asString(v any, p PathRef) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", wrongType(p, "string", v)
	}
	return s, nil
}

// asStrings accepts an array of strings.
func asStrings(v any, p PathRef) ([]string, error) {
	arr, err := asArray(v, p)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(arr))
	for i, e := range arr {
		s, err := asString(e, p.Index(i))
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// asInt accepts any integral number representation.
func asInt(v any, p PathRef) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		if n >= math.MinInt && n <= math.MaxInt {
			return int(n), nil
		}
	case float64:
		if n == math.Trunc(n) && math.Abs(n) <= 1<<53 {
			return int(n), nil
		}
	case json.Number:
		if i, err := strconv.Atoi(string(n)); err == nil {
			return i, nil
		}
		if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
			return int(f), nil
		}
	default:
		return 0, wrongType(p, "integer", v)
	}
	return 0, failWith(p, CodeInvalidType, "expected integer", "expected", "integer", "actual", "number")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
