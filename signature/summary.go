package signature

import "fmt"

// Summary aggregates a signature into per-kind counts and variadic capture flags.
type Summary struct {
	PositionalOnly      Count
	PositionalOrKeyword Count
	VarPositional       bool
	KeywordOnly         Count
	VarKeyword          bool
}

// Summarize buckets the parameters of sig by kind. A defaulted parameter widens the upper
// bound of its bucket, a required one moves both bounds. Variadic captures only set flags.
func Summarize(sig Signature) Summary {
	var s Summary

	for _, p := range sig.params {
		step := Count{Required: 1}
		if p.HasDefault {
			step = Count{Optional: 1}
		}

		switch p.Kind {
		case KindPositionalOnly:
			s.PositionalOnly = s.PositionalOnly.Add(step)
		case KindPositionalOrKeyword:
			s.PositionalOrKeyword = s.PositionalOrKeyword.Add(step)
		case KindKeywordOnly:
			s.KeywordOnly = s.KeywordOnly.Add(step)
		case KindVarPositional:
			s.VarPositional = true
		case KindVarKeyword:
			s.VarKeyword = true
		}
	}

	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("positional-only=%s positional-or-keyword=%s var-positional=%t keyword-only=%s var-keyword=%t",
		s.PositionalOnly, s.PositionalOrKeyword, s.VarPositional, s.KeywordOnly, s.VarKeyword)
}
