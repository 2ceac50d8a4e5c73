package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		summary     Summary
		expected    Convention
		unsupported bool
	}{
		{Summary{PositionalOnly: Exact(1)}, OneArgument, false},
		{Summary{PositionalOnly: Exact(2)}, VariableLengthArgument, false},
		{Summary{PositionalOrKeyword: Exact(1)}, OneArgument, false},
		{Summary{PositionalOnly: Exact(1), PositionalOrKeyword: Exact(1)}, VariableLengthArgument, false},
		{Summary{PositionalOnly: Exact(2), PositionalOrKeyword: Exact(1)}, VariableLengthArgument, false},
		{Summary{PositionalOrKeyword: Exact(2)}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOnly: Exact(1), PositionalOrKeyword: Exact(2)}, VariableLengthArgument, false},
		{Summary{PositionalOnly: Exact(2), PositionalOrKeyword: Exact(2)}, VariableLengthArgument, false},
		{Summary{KeywordOnly: Exact(1)}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(1), KeywordOnly: Exact(1)}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(2), KeywordOnly: Exact(1)}, VariableLengthKeywordArgument, false},
		{Summary{KeywordOnly: Exact(2)}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(1), KeywordOnly: Exact(2)}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(2), KeywordOnly: Exact(2)}, VariableLengthKeywordArgument, false},
		{Summary{}, Auto, true},
		{Summary{PositionalOnly: Exact(1), VarPositional: true}, OneArgument, false},
		{Summary{PositionalOnly: Exact(2), VarPositional: true}, VariableLengthArgument, false},
		{Summary{PositionalOrKeyword: Exact(1), VarPositional: true}, OneArgument, false},
		{Summary{PositionalOnly: Exact(1), PositionalOrKeyword: Exact(1), VarPositional: true}, VariableLengthArgument, false},
		{Summary{PositionalOnly: Exact(2), PositionalOrKeyword: Exact(1), VarPositional: true}, VariableLengthArgument, false},
		{Summary{PositionalOrKeyword: Exact(2), VarPositional: true}, VariableLengthArgument, false},
		{Summary{PositionalOnly: Exact(1), PositionalOrKeyword: Exact(2), VarPositional: true}, VariableLengthArgument, false},
		{Summary{PositionalOnly: Exact(2), PositionalOrKeyword: Exact(2), VarPositional: true}, VariableLengthArgument, false},
		{Summary{KeywordOnly: Exact(1), VarPositional: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(1), KeywordOnly: Exact(1), VarPositional: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(2), KeywordOnly: Exact(1), VarPositional: true}, VariableLengthKeywordArgument, false},
		{Summary{KeywordOnly: Exact(2), VarPositional: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(1), KeywordOnly: Exact(2), VarPositional: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(2), KeywordOnly: Exact(2), VarPositional: true}, VariableLengthKeywordArgument, false},
		{Summary{VarPositional: true}, VariableLengthArgument, false},
		{Summary{PositionalOnly: Exact(1), VarKeyword: true}, OneArgument, false},
		{Summary{PositionalOnly: Exact(2), VarKeyword: true}, VariableLengthArgument, false},
		{Summary{PositionalOrKeyword: Exact(1), VarKeyword: true}, OneArgument, false},
		{Summary{PositionalOnly: Exact(1), PositionalOrKeyword: Exact(1), VarKeyword: true}, VariableLengthArgument, false},
		{Summary{PositionalOnly: Exact(2), PositionalOrKeyword: Exact(1), VarKeyword: true}, VariableLengthArgument, false},
		{Summary{PositionalOrKeyword: Exact(2), VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOnly: Exact(1), PositionalOrKeyword: Exact(2), VarKeyword: true}, VariableLengthArgument, false},
		{Summary{PositionalOnly: Exact(2), PositionalOrKeyword: Exact(2), VarKeyword: true}, VariableLengthArgument, false},
		{Summary{KeywordOnly: Exact(1), VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(1), KeywordOnly: Exact(1), VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(2), KeywordOnly: Exact(1), VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{KeywordOnly: Exact(2), VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(1), KeywordOnly: Exact(2), VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(2), KeywordOnly: Exact(2), VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOnly: Exact(1), VarPositional: true, VarKeyword: true}, OneArgument, false},
		{Summary{PositionalOnly: Exact(2), VarPositional: true, VarKeyword: true}, VariableLengthArgument, false},
		{Summary{PositionalOrKeyword: Exact(1), VarPositional: true, VarKeyword: true}, OneArgument, false},
		{Summary{PositionalOnly: Exact(1), PositionalOrKeyword: Exact(1), VarPositional: true, VarKeyword: true}, VariableLengthArgument, false},
		{Summary{PositionalOnly: Exact(2), PositionalOrKeyword: Exact(1), VarPositional: true, VarKeyword: true}, VariableLengthArgument, false},
		{Summary{PositionalOrKeyword: Exact(2), VarPositional: true, VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOnly: Exact(1), PositionalOrKeyword: Exact(2), VarPositional: true, VarKeyword: true}, VariableLengthArgument, false},
		{Summary{PositionalOnly: Exact(2), PositionalOrKeyword: Exact(2), VarPositional: true, VarKeyword: true}, VariableLengthArgument, false},
		{Summary{KeywordOnly: Exact(1), VarPositional: true, VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(1), KeywordOnly: Exact(1), VarPositional: true, VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(2), KeywordOnly: Exact(1), VarPositional: true, VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{KeywordOnly: Exact(2), VarPositional: true, VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(1), KeywordOnly: Exact(2), VarPositional: true, VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOrKeyword: Exact(2), KeywordOnly: Exact(2), VarPositional: true, VarKeyword: true}, VariableLengthKeywordArgument, false},
		{Summary{VarPositional: true, VarKeyword: true}, VariableLengthArgument, false},
		{Summary{PositionalOnly: Range(0, 1)}, OneArgument, false},
		{Summary{PositionalOrKeyword: Range(0, 1)}, OneArgument, false},
		{Summary{PositionalOrKeyword: Range(1, 2)}, K2OFallbackable, false},
		{Summary{PositionalOrKeyword: Range(1, 3)}, K2OFallbackable, false},
		{Summary{PositionalOrKeyword: Range(0, 2)}, K2OFallbackable, false},
		{Summary{PositionalOrKeyword: Range(2, 3)}, VariableLengthKeywordArgument, false},
		{Summary{PositionalOnly: Range(1, 2), PositionalOrKeyword: Range(0, 1)}, VariableLengthArgument, false},
		{Summary{PositionalOnly: Range(0, 2)}, K2OFallbackable, false},
		{Summary{PositionalOrKeyword: Range(1, 2), KeywordOnly: Range(0, 1)}, K2OFallbackable, false},
		{Summary{KeywordOnly: Range(0, 1)}, K2OFallbackable, false},
		{Summary{PositionalOrKeyword: Range(0, 1), KeywordOnly: Range(0, 1)}, OneArgument, false},
		{Summary{PositionalOrKeyword: Range(1, 2), VarPositional: true, VarKeyword: true}, K2OFallbackable, false},
		{Summary{PositionalOrKeyword: Range(1, 3), VarKeyword: true}, K2OFallbackable, false},
	}

	for _, tt := range tests {
		t.Run(tt.summary.String(), func(t *testing.T) {
			t.Parallel()

			got, err := Classify(tt.summary)
			if tt.unsupported {
				require.ErrorIs(t, err, ErrUnsupportedSignature)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassify_Unsupported(t *testing.T) {
	t.Parallel()

	tests := []Summary{
		{},
		{PositionalOnly: Exact(1), KeywordOnly: Exact(1)},
		{PositionalOnly: Exact(2), KeywordOnly: Exact(1)},
		{PositionalOnly: Exact(1), PositionalOrKeyword: Exact(1), KeywordOnly: Exact(1)},
		{PositionalOnly: Exact(1), KeywordOnly: Exact(2), VarPositional: true},
		{PositionalOnly: Exact(2), PositionalOrKeyword: Exact(2), KeywordOnly: Exact(2), VarKeyword: true},
		{PositionalOnly: Exact(1), KeywordOnly: Exact(1), VarPositional: true, VarKeyword: true},
		{PositionalOnly: Range(0, 1), KeywordOnly: Range(0, 1)},
	}

	for _, summary := range tests {
		t.Run(summary.String(), func(t *testing.T) {
			t.Parallel()

			_, err := Classify(summary)
			require.ErrorIs(t, err, ErrUnsupportedSignature)
		})
	}
}

// A positional-or-keyword run shaped (required, optional, optional) reaches both the
// positional-run rule and the K2O rule; the positional-run rule is only taken when a
// positional-only parameter is required, so this shape is K2O.
func TestClassify_PositionalRunBeforeK2O(t *testing.T) {
	t.Parallel()

	sig := MustNew(
		Required("value", KindPositionalOrKeyword),
		Optional("factor", KindPositionalOrKeyword, 1.0),
		Optional("offset", KindPositionalOrKeyword, 0.0),
	)

	got, err := ClassifySignature(sig)
	require.NoError(t, err)
	assert.Equal(t, K2OFallbackable, got)

	// the same run led by a required positional-only parameter is a positional spread
	sig = MustNew(
		Required("value", KindPositionalOnly),
		Optional("factor", KindPositionalOrKeyword, 1.0),
		Optional("offset", KindPositionalOrKeyword, 0.0),
	)

	got, err = ClassifySignature(sig)
	require.NoError(t, err)
	assert.Equal(t, VariableLengthArgument, got)

	// and *args without **kwargs also wins over K2O
	sig = MustNew(
		Required("value", KindPositionalOrKeyword),
		Optional("factor", KindPositionalOrKeyword, 1.0),
		VarArgs("rest"),
	)

	got, err = ClassifySignature(sig)
	require.NoError(t, err)
	assert.Equal(t, VariableLengthArgument, got)
}

func TestClassify_Pure(t *testing.T) {
	t.Parallel()

	summary := Summary{PositionalOrKeyword: Range(1, 3), VarKeyword: true}

	first, err := Classify(summary)
	require.NoError(t, err)

	second, err := Classify(Summary{PositionalOrKeyword: Range(1, 3), VarKeyword: true})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClassify_Properties(t *testing.T) {
	t.Parallel()

	for _, kind := range []ParameterKind{KindPositionalOnly, KindPositionalOrKeyword} {
		got, err := ClassifySignature(MustNew(Required("only", kind)))
		require.NoError(t, err)
		assert.Equal(t, OneArgument, got, "single required %s parameter", kind)
	}

	for n := 2; n <= 5; n++ {
		params := make([]Parameter, n)
		for i := range params {
			params[i] = Required(string(rune('a'+i)), KindPositionalOnly)
		}

		got, err := ClassifySignature(MustNew(params...))
		require.NoError(t, err)
		assert.Equal(t, VariableLengthArgument, got, "%d required positional parameters", n)
	}

	for _, extra := range [][]Parameter{
		nil,
		{Required("a", KindPositionalOrKeyword)},
		{Optional("a", KindPositionalOrKeyword, 0), VarArgs("rest")},
	} {
		params := append(append([]Parameter{}, extra...), Required("k", KindKeywordOnly))

		got, err := ClassifySignature(MustNew(params...))
		require.NoError(t, err)
		assert.Equal(t, VariableLengthKeywordArgument, got, "required keyword-only with %v", extra)
	}
}
