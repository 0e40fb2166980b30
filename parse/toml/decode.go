package toml

import (
	"github.com/mitchellh/mapstructure"
)

// Decode maps a parsed result tree onto v, usually a pointer to a struct.
// Fields are matched by the "toml" tag, falling back to the field name.
func Decode(tree map[string]any, v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "toml",
		Result:  v,
	})
	if err != nil {
		return err
	}
	return dec.Decode(tree)
}

// Unmarshal parses data and decodes the result tree into v.
func Unmarshal(data []byte, v any) error {
	tree, err := ParseString(string(data))
	if err != nil {
		return err
	}
	return Decode(tree, v)
}
