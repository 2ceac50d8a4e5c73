package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// write encodes v to w in the configured output format.
func (a *app) write(w io.Writer, v any) error {
	switch format := a.v.GetString(keyOutput); format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: output %q", errInvalidConfig, format)
	}
}
