// Package markup loads declarative element trees from YAML documents.
// It exists for tooling and fixtures: a markup file describes static
// host elements only, no components or listeners.
//
//	type: div
//	props:
//	  id: app
//	children:
//	  - type: h1
//	    children: ["Hi"]
//	  - "plain text"
package markup

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-weft/weft/pkg/core"
)

// document mirrors one mapping node in a markup file.
type document struct {
	Type     string         `yaml:"type"`
	Props    map[string]any `yaml:"props"`
	Children []yaml.Node    `yaml:"children"`
}

// Parse decodes a YAML document into an element tree.
func Parse(data []byte) (core.Element, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return core.Element{}, fmt.Errorf("markup: parse: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return core.Element{}, fmt.Errorf("markup: empty document")
	}
	node := root.Content[0]
	if node.Kind != yaml.MappingNode {
		return core.Element{}, fmt.Errorf("markup: document root must be an element mapping")
	}
	el, _, err := decode(node)
	if err != nil {
		return core.Element{}, err
	}
	return el, nil
}

// ParseFile reads and parses a markup file.
func ParseFile(path string) (core.Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Element{}, fmt.Errorf("markup: read %s: %w", path, err)
	}
	el, err := Parse(data)
	if err != nil {
		return core.Element{}, fmt.Errorf("markup: %s: %w", path, err)
	}
	return el, nil
}

// decode converts one YAML node. Scalar nodes become text leaves;
// null and boolean scalars are filtered the way the element builder
// filters nil and bool children. ok is false for filtered nodes.
func decode(node *yaml.Node) (el core.Element, ok bool, err error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return core.Element{}, false, fmt.Errorf("markup: line %d: %w", node.Line, err)
		}
		switch v.(type) {
		case nil, bool:
			return core.Element{}, false, nil
		}
		return core.Text(v), true, nil

	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return core.Element{}, false, fmt.Errorf("markup: line %d: %w", node.Line, err)
		}
		if doc.Type == "" {
			return core.Element{}, false, fmt.Errorf("markup: line %d: element missing type", node.Line)
		}
		children := make([]any, 0, len(doc.Children))
		for i := range doc.Children {
			child, childOK, err := decode(&doc.Children[i])
			if err != nil {
				return core.Element{}, false, err
			}
			if childOK {
				children = append(children, child)
			}
		}
		return core.NewElement(core.HostType(doc.Type), core.Props(doc.Props), children...), true, nil

	default:
		return core.Element{}, false, fmt.Errorf("markup: line %d: unsupported node kind", node.Line)
	}
}
