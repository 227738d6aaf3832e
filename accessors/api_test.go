package accessors_test

import (
	"io/ioutil"
	"testing"

	"www.velocidex.com/golang/physmem/accessors"
	vql_subsystem "www.velocidex.com/golang/physmem/vql"
	"www.velocidex.com/golang/physmem/vtesting/assert"

	_ "www.velocidex.com/golang/physmem/accessors/data"
)

func TestLinuxOSPath(t *testing.T) {
	ospath, err := accessors.NewLinuxOSPath("/dev/pmem")
	assert.NoError(t, err)
	assert.Equal(t, []string{"dev", "pmem"}, ospath.Components)
	assert.Equal(t, "/dev/pmem", ospath.String())
	assert.Equal(t, "pmem", ospath.Basename())
	assert.Equal(t, "/dev", ospath.Dirname().String())

	// Path normalization drops empty and relative components.
	ospath, err = accessors.NewLinuxOSPath("//dev/./../pmem")
	assert.NoError(t, err)
	assert.Equal(t, []string{"dev", "pmem"}, ospath.Components)

	// Append copies - the original is unchanged.
	child := ospath.Append("maps")
	assert.Equal(t, "/dev/pmem/maps", child.String())
	assert.Equal(t, []string{"dev", "pmem"}, ospath.Components)
}

func TestPathSpecRoundTrip(t *testing.T) {
	pathspec := &accessors.PathSpec{
		DelegateAccessor: "data",
		DelegatePath:     "some data",
		Path:             "/foo/bar",
	}

	ospath, err := accessors.NewLinuxOSPath(pathspec.String())
	assert.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, ospath.Components)
	assert.Equal(t, "data", ospath.DelegateAccessor())
	assert.Equal(t, "some data", ospath.DelegatePath())

	// Serializing again preserves the full pathspec.
	parsed, err := accessors.PathSpecFromString(ospath.String())
	assert.NoError(t, err)
	assert.Equal(t, "data", parsed.DelegateAccessor)
	assert.Equal(t, "/foo/bar", parsed.Path)
}

func TestDataAccessor(t *testing.T) {
	scope := vql_subsystem.MakeScope()
	accessor, err := accessors.GetAccessor("data", scope)
	assert.NoError(t, err)

	fd, err := accessor.Open("This is a bit of text")
	assert.NoError(t, err)

	data, err := ioutil.ReadAll(fd)
	assert.NoError(t, err)
	assert.Equal(t, "This is a bit of text", string(data))

	stat, err := accessor.Lstat("This is a bit of text")
	assert.NoError(t, err)
	assert.Equal(t, int64(21), stat.Size())
}

func TestUnknownAccessor(t *testing.T) {
	scope := vql_subsystem.MakeScope()
	_, err := accessors.GetAccessor("no such accessor", scope)
	assert.Error(t, err)
}
