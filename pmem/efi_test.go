package pmem

import (
	"encoding/binary"
	"testing"

	"www.velocidex.com/golang/physmem/regions"
	"www.velocidex.com/golang/physmem/vtesting/assert"
)

type efiDescriptor struct {
	Type          uint32
	PhysicalStart uint64
	NumberOfPages uint64
}

func buildEfiMap(desc_size int, descriptors ...efiDescriptor) []byte {
	buf := make([]byte, desc_size*len(descriptors))
	for i, desc := range descriptors {
		offset := i * desc_size
		binary.LittleEndian.PutUint32(buf[offset:], desc.Type)
		binary.LittleEndian.PutUint64(buf[offset+8:], desc.PhysicalStart)
		binary.LittleEndian.PutUint64(buf[offset+24:], desc.NumberOfPages)
	}
	return buf
}

func TestParseEfiMemoryMap(t *testing.T) {
	buf := buildEfiMap(40,
		efiDescriptor{Type: 7, PhysicalStart: 0, NumberOfPages: 16},
		efiDescriptor{Type: 0, PhysicalStart: 0x10000, NumberOfPages: 4},
		efiDescriptor{Type: 2, PhysicalStart: 0x20000, NumberOfPages: 1})

	runs, err := ParseEfiMemoryMap(buf, len(buf), 40)
	assert.NoError(t, err)

	// The reserved descriptor (type 0) is dropped; lengths are
	// page counts times the page size.
	assert.Equal(t, []regions.Run{
		{Offset: 0, Length: 16 * 4096},
		{Offset: 0x20000, Length: 4096},
	}, runs)
}

// Firmware may use a descriptor stride larger than the struct - the
// reported descriptor size wins.
func TestParseEfiMemoryMapStride(t *testing.T) {
	buf := buildEfiMap(48,
		efiDescriptor{Type: 1, PhysicalStart: 0x1000, NumberOfPages: 2},
		efiDescriptor{Type: 10, PhysicalStart: 0x8000, NumberOfPages: 1})

	runs, err := ParseEfiMemoryMap(buf, len(buf), 48)
	assert.NoError(t, err)
	assert.Equal(t, []regions.Run{
		{Offset: 0x1000, Length: 2 * 4096},
		{Offset: 0x8000, Length: 4096},
	}, runs)
}

func TestParseEfiMemoryMapAllowList(t *testing.T) {
	// One descriptor of every type - only the usable classes
	// survive.
	descriptors := []efiDescriptor{}
	for x := uint32(0); x < 16; x++ {
		descriptors = append(descriptors, efiDescriptor{
			Type:          x,
			PhysicalStart: uint64(x) * 0x10000,
			NumberOfPages: 1,
		})
	}

	buf := buildEfiMap(40, descriptors...)
	runs, err := ParseEfiMemoryMap(buf, len(buf), 40)
	assert.NoError(t, err)

	kept := []int64{}
	for _, run := range runs {
		kept = append(kept, run.Offset/0x10000)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 9, 10, 13, 14}, kept)
}

func TestParseEfiMemoryMapErrors(t *testing.T) {
	buf := buildEfiMap(40,
		efiDescriptor{Type: 7, NumberOfPages: 1})

	// Declared size exceeds the buffer.
	_, err := ParseEfiMemoryMap(buf, len(buf)+1, 40)
	assert.ErrorIs(t, err, MalformedMapError)

	// Descriptor size smaller than the struct.
	_, err = ParseEfiMemoryMap(buf, len(buf), 16)
	assert.ErrorIs(t, err, MalformedMapError)
}
