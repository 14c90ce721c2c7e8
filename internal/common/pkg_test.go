package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "uuid", PkgAlias("github.com/google/uuid"))
	assert.Equal(t, "yaml.v3", PkgAlias("gopkg.in/yaml.v3"))
	assert.Equal(t, "time", PkgAlias("time"))
	assert.Empty(t, PkgAlias(""))
}

func TestPathRoot(t *testing.T) {
	assert.Equal(t, "github.com", PathRoot("github.com/google/uuid"))
	assert.Equal(t, "fmt", PathRoot("fmt"))
	assert.Equal(t, "object-builder", PathRoot("object-builder/builder"))
}

func TestIsStdlib(t *testing.T) {
	assert.True(t, IsStdlib("net/http"))
	assert.True(t, IsStdlib("object-builder/builder"))
	assert.False(t, IsStdlib("github.com/google/uuid"))
	assert.False(t, IsStdlib(""))
}
