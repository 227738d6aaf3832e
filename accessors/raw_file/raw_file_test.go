package raw_file

import (
	"io/ioutil"
	"os"
	"testing"

	"www.velocidex.com/golang/physmem/accessors"
	vql_subsystem "www.velocidex.com/golang/physmem/vql"
	"www.velocidex.com/golang/physmem/vtesting/assert"
)

func TestRawFileAccessor(t *testing.T) {
	tmpfile, err := ioutil.TempFile("", "raw_file_test")
	assert.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString("hello world")
	assert.NoError(t, err)
	assert.NoError(t, tmpfile.Close())

	scope := vql_subsystem.MakeScope()
	accessor, err := accessors.GetAccessor("raw_file", scope)
	assert.NoError(t, err)

	fd, err := accessor.Open(tmpfile.Name())
	assert.NoError(t, err)
	defer fd.Close()

	data, err := ioutil.ReadAll(fd)
	assert.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	// Seeking back rereads from the new position.
	_, err = fd.Seek(6, 0)
	assert.NoError(t, err)

	buf := make([]byte, 5)
	n, err := fd.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, "world", string(buf[:n]))

	// Directory listings are refused on raw devices.
	_, err = accessor.ReadDir("/")
	assert.Error(t, err)
}
