package shape

import (
	"fmt"

	"typediterable/signature"
)

// File is the root of a descriptor file.
type File struct {
	// Version of the schema, "1" when omitted.
	Version string `yaml:"version"`
	// Constructors declared in the file.
	Constructors []Constructor `yaml:"constructors"`
}

// Lookup returns the constructor with the given name.
func (f *File) Lookup(name string) (*Constructor, bool) {
	for i := range f.Constructors {
		if f.Constructors[i].Name == name {
			return &f.Constructors[i], true
		}
	}

	return nil, false
}

// Names returns the constructor names in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Constructors))
	for i, c := range f.Constructors {
		names[i] = c.Name
	}

	return names
}

// Constructor declares one constructor shape.
type Constructor struct {
	// Name identifies the constructor within the file.
	Name string `yaml:"name"`
	// Convention pins a calling convention; empty or "auto" classifies the parameters.
	Convention string `yaml:"convention,omitempty"`
	// Parameters in declaration order.
	Parameters []Parameter `yaml:"parameters"`
}

// ParsedConvention parses the Convention field.
func (c *Constructor) ParsedConvention() (signature.Convention, error) {
	return signature.ParseConvention(c.Convention)
}

// Signature builds the validated signature of the constructor.
func (c *Constructor) Signature() (signature.Signature, error) {
	params := make([]signature.Parameter, len(c.Parameters))

	for i, p := range c.Parameters {
		param, err := p.Parameter()
		if err != nil {
			return signature.Signature{}, fmt.Errorf("constructor %s: %w", c.Name, err)
		}

		params[i] = param
	}

	sig, err := signature.New(params...)
	if err != nil {
		return signature.Signature{}, fmt.Errorf("constructor %s: %w", c.Name, err)
	}

	return sig, nil
}

// FromSignature describes sig as a descriptor constructor. A resolved convention
// is pinned; Auto leaves the convention to classification.
func FromSignature(name string, sig signature.Signature, convention signature.Convention) Constructor {
	c := Constructor{Name: name, Parameters: make([]Parameter, 0, sig.Len())}
	if convention.IsResolved() {
		c.Convention = convention.String()
	}

	for _, p := range sig.Params() {
		param := Parameter{Name: p.Name, Default: p.Default, HasDefault: p.HasDefault}
		if p.Kind != signature.KindPositionalOrKeyword {
			param.Kind = p.Kind.String()
		}

		c.Parameters = append(c.Parameters, param)
	}

	return c
}

// Parameter declares one parameter. In YAML it is either a bare name or a mapping
// with name, kind and default keys.
type Parameter struct {
	Name string
	// Kind is a parameter kind name; empty means positional-or-keyword.
	Kind string
	// Default is used when HasDefault is set.
	Default any
	// HasDefault records that a default key was present.
	HasDefault bool
}

// Parameter converts p into a signature parameter.
func (p Parameter) Parameter() (signature.Parameter, error) {
	kind, err := signature.ParseParameterKind(p.Kind)
	if err != nil {
		return signature.Parameter{}, fmt.Errorf("parameter %s: %w", p.Name, err)
	}

	if p.HasDefault {
		return signature.Optional(p.Name, kind, p.Default), nil
	}

	return signature.Required(p.Name, kind), nil
}
