package shape

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for Parameter.
// Accepts:
//   - Bare name: "x"
//   - Mapping: {name: y, kind: keyword-only, default: 0}
func (p *Parameter) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		*p = Parameter{Name: name}

		return nil

	case yaml.MappingNode:
		var out Parameter

		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]

			var err error

			switch key.Value {
			case "name":
				err = value.Decode(&out.Name)
			case "kind":
				err = value.Decode(&out.Kind)
			case "default":
				out.HasDefault = true
				err = value.Decode(&out.Default)
			default:
				return fmt.Errorf("line %d: unknown parameter key %q", key.Line, key.Value)
			}

			if err != nil {
				return fmt.Errorf("line %d: invalid %s: %w", value.Line, key.Value, err)
			}
		}

		if out.Name == "" {
			return fmt.Errorf("line %d: parameter without a name", node.Line)
		}

		*p = out

		return nil

	default:
		return fmt.Errorf("expected parameter name or mapping, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for Parameter.
// Outputs a bare name for required positional-or-keyword parameters, a mapping otherwise.
func (p Parameter) MarshalYAML() (any, error) {
	if p.Name == "" {
		return nil, errors.New("parameter without a name")
	}

	if p.Kind == "" && !p.HasDefault {
		return p.Name, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	node.Content = append(node.Content, scalar("name"), scalar(p.Name))

	if p.Kind != "" {
		node.Content = append(node.Content, scalar("kind"), scalar(p.Kind))
	}

	if p.HasDefault {
		def := &yaml.Node{}
		if err := def.Encode(p.Default); err != nil {
			return nil, fmt.Errorf("parameter %s default: %w", p.Name, err)
		}

		node.Content = append(node.Content, scalar("default"), def)
	}

	return node, nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
