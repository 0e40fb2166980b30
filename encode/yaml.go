package encode

import "gopkg.in/yaml.v3"

// YAML renders the result tree as YAML. Timestamps are stringified with
// TimeLayout first so they match the JSON rendering.
func YAML(v any) ([]byte, error) {
	return yaml.Marshal(stringifyTimes(v))
}
