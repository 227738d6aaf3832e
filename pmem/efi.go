// Decoding of the OSX pmem driver's EFI memory map.

// The driver hands back the firmware memory map verbatim: an array of
// EFI_MEMORY_DESCRIPTOR records. The record stride is reported by a
// separate ioctl and may be larger than the struct itself, so we
// always step by the reported descriptor size.
package pmem

import (
	"encoding/binary"
	"fmt"

	"www.velocidex.com/golang/physmem/regions"
)

const (
	// From the driver's pmem_ioctls.h
	PmemIocGetMmap         = 0x80087000
	PmemIocGetMmapSize     = 0x40047001
	PmemIocGetMmapDescSize = 0x40047002
	PmemIocGetDtb          = 0x40087003

	PageSize = 4096

	// (Type, Pad, PhysicalStart, VirtualStart, NumberOfPages,
	// Attribute) - 40 bytes.
	efiDescriptorSize = 40
)

// EFI memory types that are backed by real, readable RAM. Reserved,
// unusable and MMIO mapped ranges are dropped - touching them can
// hang the machine.
var validMemoryTypes = map[uint32]bool{
	1:  true, // Loader Code
	2:  true, // Loader Data
	3:  true, // BS Code
	4:  true, // BS Data
	5:  true, // RTS Code
	6:  true, // RTS Data
	7:  true, // Conventional
	9:  true, // ACPI Reclaim
	10: true, // ACPI Memory NVS
	13: true, // Pal Code
	14: true, // Max Memory Type
}

type EfiMemoryRange struct {
	Type          uint32
	PhysicalStart uint64
	VirtualStart  uint64
	NumberOfPages uint64
	Attribute     uint64
}

// Decode the binary memory map into runs, keeping only usable memory
// classes. Descriptors are taken in driver order. The firmware
// delivers them address ascending already and we do not re-sort -
// a driver that ever returned them out of order would break the
// ascending run invariant downstream.
func ParseEfiMemoryMap(buf []byte, size, desc_size int) (
	[]regions.Run, error) {

	if desc_size < efiDescriptorSize {
		return nil, fmt.Errorf(
			"EFI descriptor size %d too small: %w",
			desc_size, MalformedMapError)
	}

	if len(buf) < size {
		return nil, fmt.Errorf(
			"EFI memory map truncated (%d bytes of %d): %w",
			len(buf), size, MalformedMapError)
	}

	number_of_descriptors := size / desc_size
	result := make([]regions.Run, 0, number_of_descriptors)

	for x := 0; x < number_of_descriptors; x++ {
		desc, err := parseEfiDescriptor(buf[x*desc_size:])
		if err != nil {
			return nil, err
		}

		if !validMemoryTypes[desc.Type] {
			continue
		}

		result = append(result, regions.Run{
			Offset: int64(desc.PhysicalStart),
			Length: int64(desc.NumberOfPages) * PageSize,
		})
	}

	return result, nil
}

func parseEfiDescriptor(buf []byte) (*EfiMemoryRange, error) {
	if len(buf) < efiDescriptorSize {
		return nil, fmt.Errorf(
			"EFI descriptor truncated: %w", MalformedMapError)
	}

	return &EfiMemoryRange{
		Type: binary.LittleEndian.Uint32(buf[0:4]),
		// buf[4:8] is padding.
		PhysicalStart: binary.LittleEndian.Uint64(buf[8:16]),
		VirtualStart:  binary.LittleEndian.Uint64(buf[16:24]),
		NumberOfPages: binary.LittleEndian.Uint64(buf[24:32]),
		Attribute:     binary.LittleEndian.Uint64(buf[32:40]),
	}, nil
}
