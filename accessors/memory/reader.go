package memory

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/Velocidex/ordereddict"
	"www.velocidex.com/golang/physmem/accessors"
	"www.velocidex.com/golang/physmem/regions"
)

// MemoryReader presents a sparse physical address space as a flat
// seekable stream. Offsets inside a valid run read from the device at
// the same absolute offset; offsets inside a gap read as zeros and
// are never passed to the device. It is always safe to read all of
// the address space through this reader.
type MemoryReader struct {
	mu sync.Mutex

	device io.ReaderAt
	closer func() error

	region_map regions.RegionMap

	// Extra driver metadata (dtb, run count) reported through LStat.
	metadata *ordereddict.Dict

	offset int64
}

// The reader is both a regular VFS file and a range reporter for
// sparse uploads.
var (
	_ accessors.ReadSeekCloser = &MemoryReader{}
	_ regions.RangeReader      = &MemoryReader{}
)

func NewMemoryReader(
	device io.ReaderAt, region_map regions.RegionMap) *MemoryReader {
	return &MemoryReader{
		device:     device,
		region_map: region_map,
	}
}

func (self *MemoryReader) Size() int64 {
	return self.region_map.TotalSize()
}

func (self *MemoryReader) Read(buf []byte) (int, error) {
	self.mu.Lock()
	defer self.mu.Unlock()

	size := self.region_map.TotalSize()
	result := 0

	for result < len(buf) && self.offset < size {
		n, err := self.partialRead(buf[result:])
		if err != nil {
			// The read is all or nothing - a device error discards
			// anything accumulated in this call. Data returned by
			// previous calls stays valid.
			return 0, err
		}

		// A correct region map never produces an empty partial read
		// before the end of the address space, but we must not spin
		// if it ever does.
		if n == 0 {
			break
		}

		self.offset += int64(n)
		result += n
	}

	if result == 0 && len(buf) > 0 {
		return 0, io.EOF
	}

	return result, nil
}

// A single read bounded by one run or gap - it never crosses a
// boundary. The outer read loop stitches partial reads together.
func (self *MemoryReader) partialRead(buf []byte) (int, error) {
	current_run, next_run := self.region_map.GetNextRun(self.offset)

	// The offset falls within a valid run, just read from the
	// device.
	if current_run != nil {
		to_read := current_run.Offset + current_run.Length - self.offset
		if to_read > int64(len(buf)) {
			to_read = int64(len(buf))
		}

		n, err := self.device.ReadAt(buf[:to_read], self.offset)
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf(
				"memory read of %d bytes at offset %d: %w",
				to_read, self.offset, err)
		}

		// Short device reads are returned as is - no padding.
		return n, nil
	}

	// The offset falls between the previous run end and the next run
	// start (i.e. outside the valid ranges) - zero pad up to the
	// start of the next run.
	if next_run != nil {
		to_read := next_run.Offset - self.offset
		if to_read > int64(len(buf)) {
			to_read = int64(len(buf))
		}

		for i := int64(0); i < to_read; i++ {
			buf[i] = 0
		}
		return int(to_read), nil
	}

	// No run encloses or follows the offset. The outer loop already
	// checked offset < size so this can only happen on an empty map.
	return 0, nil
}

func (self *MemoryReader) Seek(offset int64, whence int) (int64, error) {
	self.mu.Lock()
	defer self.mu.Unlock()

	// Seeking is not validated against the address space end -
	// reading past it just returns no bytes.
	switch whence {
	case 0:
		self.offset = offset
	case 1:
		self.offset += offset
	case 2:
		self.offset = self.region_map.TotalSize() + offset
	}

	return self.offset, nil
}

// Report the valid and sparse ranges for uploaders.
func (self *MemoryReader) Ranges() []regions.Range {
	self.mu.Lock()
	defer self.mu.Unlock()

	return self.region_map.Ranges()
}

func (self *MemoryReader) LStat() (accessors.FileInfo, error) {
	self.mu.Lock()
	defer self.mu.Unlock()

	return &accessors.VirtualFileInfo{
		Size_: self.region_map.TotalSize(),
		Data_: self.metadata,
	}, nil
}

func (self *MemoryReader) Close() error {
	self.mu.Lock()
	defer self.mu.Unlock()

	if self.closer != nil {
		return self.closer()
	}
	return nil
}
