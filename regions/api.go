// The regions package models the sparse validity map of a physical
// address space. Acquisition drivers only back certain byte ranges
// with real memory - everything else (DMA windows, MMIO holes) must
// never be dereferenced. A RegionMap records which offsets are safe.
package regions

import (
	"io"
)

// A contiguous readable byte range within the address space.
type Run struct {
	// In bytes
	Offset int64
	Length int64
}

// A generic interface for reporting file ranges to uploaders.
// Implementations convert to this common form.
type Range struct {
	Offset   int64
	Length   int64
	IsSparse bool
}

type RangeReader interface {
	io.Reader
	io.Seeker

	Ranges() []Range
}

func RangeSize(runs []Range) int64 {
	if len(runs) == 0 {
		return 0
	}

	last_run := runs[len(runs)-1]
	return last_run.Offset + last_run.Length
}
