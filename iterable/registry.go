package iterable

import "typediterable/signature"

// Ready-made factories, one per convention.
var (
	Auto                          = NewFactory(signature.Auto)
	OneArgument                   = NewFactory(signature.OneArgument)
	VariableLengthArgument        = NewFactory(signature.VariableLengthArgument)
	VariableLengthKeywordArgument = NewFactory(signature.VariableLengthKeywordArgument)
	K2OFallbackable               = NewFactory(signature.K2OFallbackable)
	Adaptive                      = NewFactory(signature.Adaptive)

	VarArg = VariableLengthArgument
	KwArg  = VariableLengthKeywordArgument
)

var registry = map[signature.Convention]Factory{
	signature.Auto:                          Auto,
	signature.OneArgument:                   OneArgument,
	signature.VariableLengthArgument:        VariableLengthArgument,
	signature.VariableLengthKeywordArgument: VariableLengthKeywordArgument,
	signature.K2OFallbackable:               K2OFallbackable,
	signature.Adaptive:                      Adaptive,
}

// Lookup returns the ready-made factory for c.
func Lookup(c signature.Convention) (Factory, bool) {
	f, ok := registry[c]
	return f, ok
}

// LookupName returns the ready-made factory for a convention name accepted by
// signature.ParseConvention.
func LookupName(name string) (Factory, error) {
	c, err := signature.ParseConvention(name)
	if err != nil {
		return Factory{}, err
	}

	f, _ := Lookup(c)

	return f, nil
}
