package shape

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typediterable/internal/diagnostic"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	f, err := LoadFile(filepath.Join("testdata", "shapes.yaml"))
	require.NoError(t, err)

	res := Validate(f)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, diagnostic.CodeUnsupportedSignature, res.Errors[0].Code)
	assert.Equal(t, "Record", res.Errors[0].Subject)
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		yaml  string
		codes []string
	}{
		{
			name:  "version",
			yaml:  `{version: "2", constructors: [{name: A, parameters: [x]}]}`,
			codes: []string{diagnostic.CodeInvalidDescriptor},
		},
		{
			name:  "no name",
			yaml:  `{constructors: [{parameters: [x]}]}`,
			codes: []string{diagnostic.CodeInvalidDescriptor},
		},
		{
			name:  "duplicate",
			yaml:  `{constructors: [{name: A, parameters: [x]}, {name: A, parameters: [y]}]}`,
			codes: []string{diagnostic.CodeInvalidDescriptor},
		},
		{
			name:  "convention",
			yaml:  `{constructors: [{name: A, convention: sideways, parameters: [x]}]}`,
			codes: []string{diagnostic.CodeInvalidDescriptor},
		},
		{
			name:  "kind",
			yaml:  `{constructors: [{name: A, parameters: [{name: x, kind: sideways}]}]}`,
			codes: []string{diagnostic.CodeInvalidDescriptor},
		},
		{
			name:  "order",
			yaml:  `{constructors: [{name: A, parameters: [{name: x, kind: kwonly}, y]}]}`,
			codes: []string{diagnostic.CodeInvalidDescriptor},
		},
		{
			name:  "no arguments",
			yaml:  `{constructors: [{name: A, parameters: []}]}`,
			codes: []string{diagnostic.CodeUnsupportedSignature},
		},
		{
			name: "pinned skips classification",
			yaml: `{constructors: [{name: A, convention: one, parameters: []}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			res := Validate(f)

			var codes []string
			for _, e := range res.Errors {
				codes = append(codes, e.Code)
			}

			assert.Equal(t, tt.codes, codes)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	res := Validate(nil)
	assert.True(t, res.HasErrors())

	res = Validate(&File{Version: "1"})
	assert.True(t, res.IsValid())
	assert.Len(t, res.Warnings, 1)
}
