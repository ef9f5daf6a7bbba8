// core/attrdict/yaml.go
package attrdict

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a YAML mapping into the Dict, preserving document
// order and nesting mappings as *Dict. Scalar keys that parse as integers
// become int keys; everything else must be a string.
func (d *Dict) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: cannot decode %s into mapping", node.Line, nodeKind(node))
	}
	if d.items == nil {
		d.items = map[any]any{}
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		key, err := decodeKey(keyNode)
		if err != nil {
			return err
		}
		val, err := decodeValue(valNode)
		if err != nil {
			return err
		}
		if err := d.Set(key, val); err != nil {
			return err
		}
	}
	return nil
}

// MarshalYAML encodes the Dict as a mapping node in insertion order.
func (d *Dict) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range d.order {
		var keyNode yaml.Node
		if err := keyNode.Encode(k); err != nil {
			return nil, err
		}
		var valNode yaml.Node
		v := d.items[k]
		if nested, ok := v.(*Dict); ok {
			n, err := nested.MarshalYAML()
			if err != nil {
				return nil, err
			}
			valNode = *n.(*yaml.Node)
		} else if err := valNode.Encode(v); err != nil {
			return nil, err
		}
		out.Content = append(out.Content, &keyNode, &valNode)
	}
	return out, nil
}

func decodeKey(n *yaml.Node) (any, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: mapping key must be a scalar", n.Line)
	}
	if n.Tag == "!!int" {
		k, err := strconv.Atoi(n.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad integer key %q: %w", n.Line, n.Value, err)
		}
		return k, nil
	}
	return n.Value, nil
}

func decodeValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		nested := New()
		if err := nested.UnmarshalYAML(n); err != nil {
			return nil, err
		}
		return nested, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := decodeValue(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.AliasNode:
		return decodeValue(n.Alias)
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "node"
	}
}
