package util

import (
	"strings"

	"github.com/oliveagle/jsonpath"
)

// ResolveParams substitutes $-prefixed jsonpath expressions in params with
// values looked up from data. Non-string values and unresolvable paths are
// passed through unchanged.
func ResolveParams(data map[string]any, params map[string]any) map[string]any {
	output := make(map[string]any)
	resolveParams(data, params, output)
	return output
}

func resolveParams(data map[string]any, params map[string]any, output map[string]any) {
	for k, v := range params {
		switch val := v.(type) {
		case map[string]any:
			out := make(map[string]any)
			output[k] = out
			resolveParams(data, val, out)
		case string:
			if strings.HasPrefix(val, "$") {
				value, err := jsonpath.JsonPathLookup(data, val)
				if err != nil {
					output[k] = val
				} else {
					output[k] = value
				}
			} else {
				output[k] = val
			}
		default:
			output[k] = v
		}
	}
}
