package fixture

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

type Attribute struct {
	Key   string
	Value string
}

// AttributeList is an ordered attribute mapping.
type AttributeList []Attribute

func (l *AttributeList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attributes must be a mapping", node.Line)
	}
	out := make(AttributeList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: attribute %q must be a scalar", v.Line, k.Value)
		}
		out = append(out, Attribute{Key: k.Value, Value: v.Value})
	}
	*l = out
	return nil
}

func (l AttributeList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, a := range l {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: a.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: a.Value, Style: yaml.DoubleQuotedStyle},
		)
	}
	return node, nil
}

func (l *AttributeList) UnmarshalTOML(data any) error {
	table, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("attributes must be a table, got %T", data)
	}
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(AttributeList, 0, len(keys))
	for _, k := range keys {
		v, ok := table[k].(string)
		if !ok {
			return fmt.Errorf("attribute %q must be a string, got %T", k, table[k])
		}
		out = append(out, Attribute{Key: k, Value: v})
	}
	*l = out
	return nil
}
