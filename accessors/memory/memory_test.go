package memory

import (
	"testing"

	"www.velocidex.com/golang/physmem/accessors"
	vql_subsystem "www.velocidex.com/golang/physmem/vql"
	"www.velocidex.com/golang/physmem/vtesting/assert"
)

func TestMemoryAccessorRegistration(t *testing.T) {
	scope := vql_subsystem.MakeScope()
	accessor, err := accessors.GetAccessor("memory", scope)
	assert.NoError(t, err)

	// The accessor is cached in the scope - the same instance is
	// handed out again.
	accessor2, err := accessors.GetAccessor("memory", scope)
	assert.NoError(t, err)
	assert.True(t, accessor == accessor2)
}

// The memory accessor only supports file like operations.
func TestMemoryAccessorNoDirectories(t *testing.T) {
	scope := vql_subsystem.MakeScope()
	accessor, err := accessors.GetAccessor("memory", scope)
	assert.NoError(t, err)

	_, err = accessor.ReadDir("/")
	assert.Error(t, err)

	stat, err := accessor.Lstat("/dev/pmem")
	assert.NoError(t, err)
	assert.False(t, stat.IsDir())
}

// The memory accessor can not be layered over another accessor - a
// pathspec with a delegate is rejected at open time.
func TestMemoryAccessorMustBeTopLevel(t *testing.T) {
	scope := vql_subsystem.MakeScope()
	accessor, err := accessors.GetAccessor("memory", scope)
	assert.NoError(t, err)

	pathspec := &accessors.PathSpec{
		DelegateAccessor: "data",
		DelegatePath:     "some data",
		Path:             "/dev/pmem",
	}

	_, err = accessor.Open(pathspec.String())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "top level")
}
