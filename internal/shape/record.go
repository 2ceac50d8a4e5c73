package shape

import (
	"maps"

	"typediterable/iterable"
	"typediterable/signature"
)

// Record is one constructed element: parameter name to bound value.
type Record map[string]any

// Builder returns a constructor producing Records with the declared signature. Arguments
// are bound with full parameter-kind semantics; a variadic positional capture holds a
// []any and a variadic keyword capture a map[string]any, both empty when nothing was captured.
func (c *Constructor) Builder() (iterable.Constructor[Record], error) {
	sig, err := c.Signature()
	if err != nil {
		return nil, err
	}

	params := sig.Params()

	return iterable.Declare(sig, func(b signature.Bound) (Record, error) {
		rec := make(Record, len(params))

		for _, p := range params {
			switch p.Kind {
			case signature.KindVarPositional:
				rec[p.Name] = append([]any{}, b.Extra...)
			case signature.KindVarKeyword:
				extra := make(map[string]any, len(b.ExtraKeywords))
				maps.Copy(extra, b.ExtraKeywords)
				rec[p.Name] = extra
			default:
				rec[p.Name] = b.Value(p.Name)
			}
		}

		return rec, nil
	}), nil
}

// Iterable binds the constructor's Records to an Iterable. A convention pinned in the
// descriptor wins over factory.
func (c *Constructor) Iterable(factory iterable.Factory, opts ...iterable.Option) (*iterable.Iterable[Record], error) {
	convention, err := c.ParsedConvention()
	if err != nil {
		return nil, err
	}

	if convention != signature.Auto {
		factory, _ = iterable.Lookup(convention)
	}

	builder, err := c.Builder()
	if err != nil {
		return nil, err
	}

	return iterable.Of(factory, builder, opts...)
}
