package encode

import (
	"bytes"
	"encoding/xml"
)

// XmlEncoder renders a result tree as a single-line XML document. Map keys
// become element tags, list items become repeated ItemTag elements, and
// scalars become text content. The whole tree is wrapped in RootTag plus
// one ItemTag element, so {"a": 1} encodes to
// <toml><item><a>1</a></item></toml> with the defaults the CLI uses.
type XmlEncoder struct {
	RootTag string
	ItemTag string
}

func NewXmlEncoder(rootTag, itemTag string) *XmlEncoder {
	if rootTag == "" {
		rootTag = "root"
	}
	if itemTag == "" {
		itemTag = "item"
	}
	return &XmlEncoder{RootTag: rootTag, ItemTag: itemTag}
}

func (e *XmlEncoder) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	root := xml.StartElement{Name: xml.Name{Local: e.RootTag}}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}
	if err := e.encodeNode(enc, v, ""); err != nil {
		return nil, err
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeNode writes v inside an element named k, or ItemTag when k is
// empty. Maps are walked in sorted key order for deterministic output.
func (e *XmlEncoder) encodeNode(enc *xml.Encoder, v any, k string) error {
	tag := k
	if tag == "" {
		tag = e.ItemTag
	}
	start := xml.StartElement{Name: xml.Name{Local: tag}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	switch val := v.(type) {
	case map[string]any:
		for _, key := range sortedKeys(val) {
			if err := e.encodeNode(enc, val[key], key); err != nil {
				return err
			}
		}
	case []any:
		for _, item := range val {
			if err := e.encodeNode(enc, item, ""); err != nil {
				return err
			}
		}
	default:
		if err := enc.EncodeToken(xml.CharData(scalarText(v))); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
