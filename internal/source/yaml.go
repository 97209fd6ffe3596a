package source

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/treemenu/internal/tree"
)

// YAML reads a sequence of entries. An entry is a scalar label, a mapping
// with label/children keys, or the shorthand `Label: [children...]`.
func YAML(r io.Reader) ([]tree.Item, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	return yamlItems(doc.Content[0])
}

func yamlItems(n *yaml.Node) ([]tree.Item, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		items := make([]tree.Item, 0, len(n.Content))
		for _, entry := range n.Content {
			parsed, err := yamlEntry(entry)
			if err != nil {
				return nil, err
			}
			items = append(items, parsed...)
		}
		return items, nil
	case yaml.MappingNode:
		return yamlShorthand(n)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("line %d: expected a list of items", n.Line)
}

func yamlEntry(n *yaml.Node) ([]tree.Item, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return []tree.Item{{Label: n.Value}}, nil
	case yaml.MappingNode:
		if hasKey(n, "label") {
			var item struct {
				Label    string    `yaml:"label"`
				Children yaml.Node `yaml:"children"`
			}
			if err := n.Decode(&item); err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			out := tree.Item{Label: item.Label}
			if item.Children.Kind != 0 {
				children, err := yamlItems(&item.Children)
				if err != nil {
					return nil, err
				}
				out.Children = children
			}
			return []tree.Item{out}, nil
		}
		return yamlShorthand(n)
	}
	return nil, fmt.Errorf("line %d: unsupported entry", n.Line)
}

// yamlShorthand reads `Label: [children]` pairs in document order.
func yamlShorthand(n *yaml.Node) ([]tree.Item, error) {
	items := make([]tree.Item, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		item := tree.Item{Label: n.Content[i].Value}
		children, err := yamlItems(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		item.Children = children
		items = append(items, item)
	}
	return items, nil
}

func hasKey(n *yaml.Node, key string) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}
