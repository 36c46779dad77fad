package ast

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses the first YAML document from r as a Value. Mapping order
// is preserved. Scalars are classified by their resolved YAML tag, and
// aliases are expanded in place.
func ParseYAML(r io.Reader) (Value, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Null{}, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return fromYAML(&doc, 0)
}

// maxAliasDepth bounds alias expansion, which guards against documents whose
// aliases refer back to their own ancestors.
const maxAliasDepth = 64

func fromYAML(n *yaml.Node, aliases int) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null{}, nil
		}
		return fromYAML(n.Content[0], aliases)

	case yaml.MappingNode:
		if len(n.Content)%2 != 0 {
			return nil, fmt.Errorf("line %d: mapping has an odd number of nodes", n.Line)
		}
		o := make(Object, 0, len(n.Content)/2)
		for i := 0; i < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key is not a scalar", k.Line)
			}
			mv, err := fromYAML(v, aliases)
			if err != nil {
				return nil, err
			}
			o = append(o, Member{Key: k.Value, Value: mv})
		}
		return o, nil

	case yaml.SequenceNode:
		a := make(Array, len(n.Content))
		for i, e := range n.Content {
			ev, err := fromYAML(e, aliases)
			if err != nil {
				return nil, err
			}
			a[i] = ev
		}
		return a, nil

	case yaml.AliasNode:
		if aliases >= maxAliasDepth || n.Alias == nil {
			return nil, fmt.Errorf("line %d: cannot expand alias %q", n.Line, n.Value)
		}
		return fromYAML(n.Alias, aliases+1)

	case yaml.ScalarNode:
		return yamlScalar(n)
	}
	return nil, fmt.Errorf("line %d: unknown node kind %v", n.Line, n.Kind)
}

func yamlScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		var z int64
		if err := n.Decode(&z); err != nil {
			// Out of range for int64; keep the source text.
			return Number(n.Value), nil
		}
		return Number(strconv.FormatInt(z, 10)), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return String(n.Value), nil
		}
		return Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
	default:
		return String(n.Value), nil
	}
}
