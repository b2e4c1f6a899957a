package executor

import "fmt"

// Task params round-trip through JSON, so numbers arrive as float64 and typed
// slices as []any. These helpers coerce both the wire shape and the in-process
// shape used by tests.

func int64Param(params map[string]any, key string) (int64, error) {
	v, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("missing param %q", key)
	}
	switch val := v.(type) {
	case int64:
		return val, nil
	case int:
		return int64(val), nil
	case float64:
		return int64(val), nil
	default:
		return 0, fmt.Errorf("param %q is not a number, got %T", key, v)
	}
}

func stringParam(params map[string]any, key string) (string, error) {
	v, ok := params[key]
	if !ok {
		return "", fmt.Errorf("missing param %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("param %q is not a string, got %T", key, v)
	}
	return s, nil
}

func stringSliceParam(params map[string]any, key string) ([]string, error) {
	v, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("missing param %q", key)
	}
	switch val := v.(type) {
	case []string:
		return val, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("param %q contains a non-string element %T", key, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("param %q is not a string list, got %T", key, v)
	}
}

func int64SliceParam(params map[string]any, key string) ([]int64, error) {
	v, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("missing param %q", key)
	}
	switch val := v.(type) {
	case []int64:
		return val, nil
	case []any:
		out := make([]int64, 0, len(val))
		for _, item := range val {
			switch n := item.(type) {
			case int64:
				out = append(out, n)
			case int:
				out = append(out, int64(n))
			case float64:
				out = append(out, int64(n))
			default:
				return nil, fmt.Errorf("param %q contains a non-number element %T", key, item)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("param %q is not a number list, got %T", key, v)
	}
}
