package encode

import "encoding/json"

// JSON renders the result tree with keys sorted and a two-space indent.
// Timestamps become TimeLayout strings before marshalling so they do not
// fall through to the RFC 3339 default.
func JSON(v any) ([]byte, error) {
	return json.MarshalIndent(stringifyTimes(v), "", "  ")
}
