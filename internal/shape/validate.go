package shape

import (
	"fmt"

	"typediterable/internal/diagnostic"
	"typediterable/signature"
)

// Validate checks a descriptor file: names present and unique, conventions and parameter
// kinds known, parameter lists well formed, and every constructor left on auto classifiable.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("descriptor_is_nil", "descriptor file is nil", "", diagnostic.NoIndex)
		return res
	}

	if f.Version != "1" {
		res.AddError(diagnostic.CodeInvalidDescriptor,
			fmt.Sprintf("unsupported descriptor version %q", f.Version), "", diagnostic.NoIndex)
	}

	if len(f.Constructors) == 0 {
		res.AddWarning(diagnostic.CodeInvalidDescriptor, "no constructors declared", "", diagnostic.NoIndex)
	}

	seen := map[string]struct{}{}

	for i := range f.Constructors {
		c := &f.Constructors[i]

		if c.Name == "" {
			res.AddError(diagnostic.CodeInvalidDescriptor,
				fmt.Sprintf("constructor %d has no name", i), "", diagnostic.NoIndex)

			continue
		}

		if _, ok := seen[c.Name]; ok {
			res.AddError(diagnostic.CodeInvalidDescriptor,
				fmt.Sprintf("duplicate constructor %q", c.Name), c.Name, diagnostic.NoIndex)

			continue
		}

		seen[c.Name] = struct{}{}

		validateConstructor(res, c)
	}

	return res
}

func validateConstructor(res *diagnostic.Diagnostics, c *Constructor) {
	convention, err := c.ParsedConvention()
	if err != nil {
		res.AddError(diagnostic.CodeInvalidDescriptor, err.Error(), c.Name, diagnostic.NoIndex)
		return
	}

	sig, err := c.Signature()
	if err != nil {
		res.AddError(diagnostic.CodeInvalidDescriptor, err.Error(), c.Name, diagnostic.NoIndex)
		return
	}

	if convention.IsResolved() {
		return
	}

	if _, err := signature.ClassifySignature(sig); err != nil {
		res.Add(diagnostic.FromError(diagnostic.SeverityError, c.Name, diagnostic.NoIndex, nil, err))
	}
}
