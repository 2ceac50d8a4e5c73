package signature

import "fmt"

// Classify maps a Summary to a calling convention. Rules are evaluated in order and the
// first match wins; several of them overlap, so the order is part of the contract.
//
// Classify is pure: equal summaries always classify the same way.
func Classify(s Summary) (Convention, error) {
	posOnly, posOrKw, kwOnly := s.PositionalOnly, s.PositionalOrKeyword, s.KeywordOnly

	// Strictly positional and strictly keyword parameters cannot be fed by one element.
	if posOnly.Max() > 0 && kwOnly.Max() > 0 {
		return Auto, fmt.Errorf("%w: mixes positional-only and keyword-only parameters (%s)",
			ErrUnsupportedSignature, s)
	}

	if posOnly.Max() == 0 && kwOnly.Max() == 0 && posOrKw.Max() == 0 {
		switch {
		case s.VarPositional:
			return VariableLengthArgument, nil
		case s.VarKeyword:
			return VariableLengthKeywordArgument, nil
		}

		return Auto, fmt.Errorf("%w: constructor takes no arguments", ErrUnsupportedSignature)
	}

	if kwOnly.Min() > 0 {
		return VariableLengthKeywordArgument, nil
	}

	positional := posOnly.Max() + posOrKw.Max()
	if positional == 1 {
		return OneArgument, nil
	}

	// Evaluated before the K2O rule: a positional-only run with a required head wins
	// over the ambiguous single-required case.
	if (positional > 1 && posOnly.Min() >= 1) || (s.VarPositional && !s.VarKeyword) {
		return VariableLengthArgument, nil
	}

	if posOnly.Min()+posOrKw.Min() <= 1 {
		return K2OFallbackable, nil
	}

	return VariableLengthKeywordArgument, nil
}

// ClassifySignature summarizes and classifies sig.
func ClassifySignature(sig Signature) (Convention, error) {
	return Classify(Summarize(sig))
}
