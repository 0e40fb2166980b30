package encode

// Package encode renders a parsed result tree into the output formats the
// command line offers: JSON, XML, YAML, and raw or pretty structure dumps.
// Encoders only consume the tree; none of them feed anything back into
// parsing.

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// TimeLayout renders timestamps as YYYY-MM-DDTHH:MM:SS±HHMM in every
// format that stringifies them.
const TimeLayout = "2006-01-02T15:04:05-0700"

// stringifyTimes returns a copy of v with every time.Time replaced by its
// TimeLayout rendering, recursively through maps and lists.
func stringifyTimes(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val.Format(TimeLayout)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = stringifyTimes(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = stringifyTimes(item)
		}
		return out
	default:
		return v
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

func scalarText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case time.Time:
		return val.Format(TimeLayout)
	default:
		return fmt.Sprintf("%v", val)
	}
}
