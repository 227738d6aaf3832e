// Decoding of the winpmem driver's info ioctl result.

// The driver reports the valid physical ranges as a fixed header
// followed by an array of (start, length) pairs. The layout is a
// driver ABI and must be reproduced bit for bit:

//   struct {
//     uint64 cr3;       // Kernel directory table base if available.
//     uint64 reserved;
//     int32  run_count;
//   }                    // 20 bytes, little endian, unaligned.
//   struct {
//     uint64 start;
//     uint64 length;
//   } runs[run_count];

// The driver may report fewer runs than run_count by terminating the
// array with a zero length run. Both the declared count and the
// terminator end decoding - do not trust only one of them.
package pmem

import (
	"encoding/binary"
	"fmt"

	"www.velocidex.com/golang/physmem/regions"
)

const (
	METHOD_BUFFERED   = 0
	FILE_READ_ACCESS  = 1
	FILE_WRITE_ACCESS = 2

	PMEM_DEVICE_TYPE   = 0x22
	PMEM_INFO_FUNCTION = 0x103

	// Size of the fixed info header before the run array.
	infoHeaderSize = 20
	runDescSize    = 16
)

// The standard NT CTL_CODE macro.
func CtlCode(device_type, function, method, access uint32) uint32 {
	return device_type<<16 | access<<14 | function<<2 | method
}

var (
	// The info control code the winpmem driver answers with its
	// memory run layout.
	InfoIoctl = CtlCode(PMEM_DEVICE_TYPE, PMEM_INFO_FUNCTION,
		METHOD_BUFFERED, FILE_READ_ACCESS|FILE_WRITE_ACCESS)
)

type MemoryInfo struct {
	// The directory table base of the kernel address space, if the
	// driver reports it.
	CR3 uint64

	NumberOfRuns int32

	Runs []regions.Run
}

// Decode the raw ioctl result into a MemoryInfo. Truncated output is
// a fatal open time error - we never guess at a partial map.
func ParseMemoryInfo(buf []byte) (*MemoryInfo, error) {
	if len(buf) < infoHeaderSize {
		return nil, fmt.Errorf(
			"winpmem info buffer too short (%d bytes): %w",
			len(buf), MalformedMapError)
	}

	result := &MemoryInfo{
		CR3: binary.LittleEndian.Uint64(buf[0:8]),
		// buf[8:16] is reserved.
		NumberOfRuns: int32(binary.LittleEndian.Uint32(buf[16:20])),
	}

	for x := 0; x < int(result.NumberOfRuns); x++ {
		offset := infoHeaderSize + x*runDescSize
		if offset+runDescSize > len(buf) {
			return nil, fmt.Errorf(
				"winpmem info declares %d runs but buffer holds %d bytes: %w",
				result.NumberOfRuns, len(buf), MalformedMapError)
		}

		start := binary.LittleEndian.Uint64(buf[offset : offset+8])
		length := binary.LittleEndian.Uint64(buf[offset+8 : offset+16])

		// A zero length run terminates the array early.
		if length == 0 {
			break
		}

		result.Runs = append(result.Runs, regions.Run{
			Offset: int64(start),
			Length: int64(length),
		})
	}

	return result, nil
}
