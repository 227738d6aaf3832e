package memory

import (
	"bytes"
	"errors"
	"io"
	"io/ioutil"
	"testing"

	"www.velocidex.com/golang/physmem/regions"
	"www.velocidex.com/golang/physmem/vtesting/assert"
)

// A fake acquisition device - every byte reads as its own offset
// modulo 256 so reads are easy to verify.
func newTestDevice(size int) *bytes.Reader {
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = byte(i)
	}
	return bytes.NewReader(buf)
}

func newTestReader() *MemoryReader {
	return NewMemoryReader(newTestDevice(250), regions.RegionMap{
		Runs: []regions.Run{{Offset: 0, Length: 100}, {Offset: 200, Length: 50}},
	})
}

// A read spanning the end of a run and the following gap returns the
// device bytes then the zero padding, in that order.
func TestReadAcrossRunAndGap(t *testing.T) {
	reader := newTestReader()

	pos, err := reader.Seek(50, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(50), pos)

	buf := make([]byte, 100)
	n, err := reader.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 100, n)

	// 50 real bytes from offsets 50-99.
	for i := 0; i < 50; i++ {
		assert.Equal(t, byte(50+i), buf[i])
	}

	// 50 zero bytes from the gap at 100-149.
	for i := 50; i < 100; i++ {
		assert.Equal(t, byte(0), buf[i])
	}

	// The cursor ends at 150.
	pos, err = reader.Seek(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(150), pos)
}

// Reads are clamped at the end of the address space.
func TestReadClampedAtEnd(t *testing.T) {
	reader := newTestReader()

	_, err := reader.Seek(240, 0)
	assert.NoError(t, err)

	buf := make([]byte, 50)
	n, err := reader.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 10, n)

	for i := 0; i < 10; i++ {
		assert.Equal(t, byte(240+i), buf[i])
	}

	// At the end now - further reads yield EOF.
	n, err = reader.Read(buf)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

// A request entirely inside a gap is all zeros.
func TestReadInsideGap(t *testing.T) {
	reader := newTestReader()

	_, err := reader.Seek(120, 0)
	assert.NoError(t, err)

	buf := make([]byte, 30)
	n, err := reader.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 30, n)

	for _, b := range buf {
		assert.Equal(t, byte(0), b)
	}
}

// Seeking is never validated - positions past the end are allowed
// and read back exactly, reads there just return nothing.
func TestSeekPastEnd(t *testing.T) {
	reader := newTestReader()

	pos, err := reader.Seek(1000, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), pos)

	pos, err = reader.Seek(0, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1000), pos)

	buf := make([]byte, 10)
	n, err := reader.Read(buf)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)

	// End relative seeks land on TotalSize + offset.
	pos, err = reader.Seek(-50, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(200), pos)
}

// Chunked reads produce the same byte sequence as one large read
// regardless of the chunk size.
func TestChunkedReadsAssociative(t *testing.T) {
	reader := newTestReader()
	expected, err := ioutil.ReadAll(reader)
	assert.NoError(t, err)
	assert.Equal(t, 250, len(expected))

	for _, chunk_size := range []int{1, 7, 64, 100, 250, 1000} {
		reader := newTestReader()
		result := []byte{}
		buf := make([]byte, chunk_size)
		for {
			n, err := reader.Read(buf)
			if n > 0 {
				result = append(result, buf[:n]...)
			}
			if err != nil {
				break
			}
		}
		assert.Equal(t, expected, result, "chunk size %v", chunk_size)
	}
}

// The whole file backend synthesizes one run covering the device -
// short requests past its end return what exists with no padding.
func TestWholeFileBackend(t *testing.T) {
	device := bytes.NewReader([]byte("0123456789"))
	reader := NewMemoryReader(device, regions.SingleRun(10))

	buf := make([]byte, 20)
	n, err := reader.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "0123456789", string(buf[:10]))
}

func TestRangesReporting(t *testing.T) {
	reader := newTestReader()

	assert.Equal(t, []regions.Range{
		{Offset: 0, Length: 100},
		{Offset: 100, Length: 100, IsSparse: true},
		{Offset: 200, Length: 50},
	}, reader.Ranges())

	stat, err := reader.LStat()
	assert.NoError(t, err)
	assert.Equal(t, int64(250), stat.Size())
	assert.False(t, stat.IsDir())
}

type failingDevice struct{}

func (self failingDevice) ReadAt(buf []byte, offset int64) (int, error) {
	return 0, errors.New("device failure")
}

// A device error aborts the whole read call - no partial data is
// returned for that call.
func TestDeviceErrorAbortsRead(t *testing.T) {
	reader := NewMemoryReader(failingDevice{}, regions.RegionMap{
		Runs: []regions.Run{{Offset: 0, Length: 100}},
	})

	buf := make([]byte, 50)
	n, err := reader.Read(buf)
	assert.Equal(t, 0, n)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, io.EOF))
	assert.Contains(t, err.Error(), "device failure")
}

// An empty region map is a zero length address space.
func TestEmptyRegionMap(t *testing.T) {
	reader := NewMemoryReader(newTestDevice(0), regions.RegionMap{})
	assert.Equal(t, int64(0), reader.Size())

	buf := make([]byte, 10)
	n, err := reader.Read(buf)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}
