package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", PkgAlias(""))
	assert.Equal(t, "shapes", PkgAlias("typediterable/examples/shapes"))
	assert.Equal(t, "strconv", PkgAlias("strconv"))
}

func TestQualifiedName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "shapes.NewPoint", QualifiedName("typediterable/examples/shapes", "NewPoint"))
	assert.Equal(t, "Point", QualifiedName("", "Point"))
}
