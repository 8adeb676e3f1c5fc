// Package mapyaml converts decoded maps to and from YAML.
//
// Every item is written as a mapping whose "type" key holds the item type
// name (e.g. "prefab"); the remaining keys are the item's fields. Compound
// children are written under the compound's "items" key. Tokens are written
// as their string, or as '#' and 16 hex digits when the value has no
// canonical string.
//
// Loading and re-encoding a dump reproduces the original stream byte for
// byte, with one exception: NaN payloads in float fields are not preserved.
package mapyaml

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/mapitem/errs"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/item"
	"github.com/arloliu/mapitem/section"
	"github.com/arloliu/mapitem/stream"
)

const (
	typeKey  = "type"
	itemsKey = "items"
)

type document struct {
	Header section.FileHeader `yaml:"header"`
	Items  yaml.Node          `yaml:"items"`
}

// Marshal renders m as YAML.
//
// Returns:
//   - []byte: YAML document
//   - error: ErrInvalidItem for a nil item, or a YAML encoding error
func Marshal(m stream.Map) ([]byte, error) {
	var buf bytes.Buffer
	if err := Dump(&buf, m); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Dump writes m to w as YAML.
func Dump(w io.Writer, m stream.Map) error {
	items, err := itemsNode(m.Items)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Header: m.Header, Items: *items}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

func itemsNode(items []item.Item) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for i, it := range items {
		n, err := itemNode(it)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		seq.Content = append(seq.Content, n)
	}

	return seq, nil
}

func itemNode(it item.Item) (*yaml.Node, error) {
	if err := item.Validate(it); err != nil {
		return nil, err
	}

	n := &yaml.Node{}
	if err := n.Encode(it); err != nil {
		return nil, fmt.Errorf("encode %s: %w", it.Kind(), err)
	}
	keepNegativeZero(n)
	n.Content = append([]*yaml.Node{scalar(typeKey), scalar(it.Kind().String())}, n.Content...)

	if c, ok := it.(*item.Compound); ok {
		children, err := itemsNode(c.Items)
		if err != nil {
			return nil, fmt.Errorf("compound %d: %w", c.UID, err)
		}
		n.Content = append(n.Content, scalar(itemsKey), children)
	}

	return n, nil
}

// keepNegativeZero rewrites -0 as -0.0. yaml.v3 formats a negative zero float
// as "-0", which reads back as the integer 0 and loses the sign bit.
func keepNegativeZero(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode {
		if n.Value == "-0" && n.Tag == "!!int" {
			n.Tag = "!!float"
			n.Value = "-0.0"
		}

		return
	}
	for _, c := range n.Content {
		keepNegativeZero(c)
	}
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// Unmarshal parses a YAML dump produced by Marshal.
//
// Returns:
//   - stream.Map: Header and items
//   - error: ErrUnknownItemType for a missing or unknown "type", or a YAML
//     decoding error with its line number
func Unmarshal(data []byte) (stream.Map, error) {
	return Load(bytes.NewReader(data))
}

// Load reads a YAML dump from r.
func Load(r io.Reader) (stream.Map, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return stream.Map{}, fmt.Errorf("decode yaml: %w", err)
	}

	items, err := decodeItems(&doc.Items)
	if err != nil {
		return stream.Map{}, err
	}

	return stream.Map{Header: doc.Header, Items: items}, nil
}

func decodeItems(seq *yaml.Node) ([]item.Item, error) {
	if seq.Kind == 0 || (seq.Kind == yaml.ScalarNode && seq.Tag == "!!null") {
		return nil, nil
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: items must be a sequence", seq.Line)
	}

	var items []item.Item
	for i, n := range seq.Content {
		it, err := decodeItem(n)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, it)
	}

	return items, nil
}

func decodeItem(n *yaml.Node) (item.Item, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: item must be a mapping", n.Line)
	}

	var kindName string
	var children *yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		switch n.Content[i].Value {
		case typeKey:
			kindName = n.Content[i+1].Value
		case itemsKey:
			children = n.Content[i+1]
		}
	}

	kind, ok := format.ParseItemType(kindName)
	if !ok {
		return nil, fmt.Errorf("%w: %q at line %d", errs.ErrUnknownItemType, kindName, n.Line)
	}

	it, err := item.New(kind)
	if err != nil {
		return nil, err
	}
	if err := n.Decode(it); err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}

	if c, ok := it.(*item.Compound); ok && children != nil {
		c.Items, err = decodeItems(children)
		if err != nil {
			return nil, fmt.Errorf("compound %d: %w", c.UID, err)
		}
	}

	return it, nil
}
