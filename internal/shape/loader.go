package shape

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML descriptor file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptor YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal descriptor: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write descriptor file %s: %w", path, err)
	}

	return nil
}

// LoadElements loads raw elements from a YAML file. See ParseElements.
func LoadElements(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read elements file %s: %w", path, err)
	}

	return ParseElements(data)
}

// ParseElements parses raw elements: either a top-level sequence or a mapping with an
// "elements" sequence. Mappings decode as map[string]any, numbers as int or float64.
func ParseElements(data []byte) ([]any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse elements YAML: %w", err)
	}

	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]

	if root.Kind == yaml.MappingNode {
		var wrapped struct {
			Elements yaml.Node `yaml:"elements"`
		}

		if err := root.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("failed to parse elements YAML: %w", err)
		}

		if wrapped.Elements.Kind == 0 {
			return nil, errors.New("expected a sequence or a mapping with an elements key")
		}

		root = &wrapped.Elements
	}

	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a sequence of elements", root.Line)
	}

	var elements []any
	if err := root.Decode(&elements); err != nil {
		return nil, fmt.Errorf("failed to decode elements: %w", err)
	}

	return elements, nil
}
