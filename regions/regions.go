package regions

import (
	"sort"
)

// The ordered set of valid runs over an address space. Runs ascend by
// Offset and do not overlap. The map is built once when a device is
// opened and is immutable afterwards - the live layout may change
// between acquisition sessions so maps are never reused across opens.
type RegionMap struct {
	Runs []Run
}

// The address space ends at the end of the last run.
func (self RegionMap) TotalSize() int64 {
	if len(self.Runs) == 0 {
		return 0
	}

	last_run := self.Runs[len(self.Runs)-1]
	return last_run.Offset + last_run.Length
}

// Find the current run enclosing offset and the next run after
// offset. If the offset does not correspond to a current run, then
// current_run is nil. Similarly if there is no next run, next_run is
// nil.

// We assume runs are sorted by Offset and do not overlap.
func (self RegionMap) GetNextRun(offset int64) (current_run, next_run *Run) {
	runs := self.Runs
	idx := sort.Search(len(runs), func(i int) bool {
		end := runs[i].Offset + runs[i].Length
		return end > offset
	})

	if idx >= len(runs) {
		return nil, nil
	}

	if runs[idx].Offset <= offset {
		current_run = &runs[idx]
	} else {
		next_run = &runs[idx]
	}

	return current_run, next_run
}

// Interleave sparse filler ranges between the valid runs. This is the
// form uploaders consume when writing sparse images.
func (self RegionMap) Ranges() []Range {
	result := []Range{}
	size := int64(0)
	for _, run := range self.Runs {
		// Fill in a sparse range if needed
		if run.Offset > size {
			result = append(result, Range{
				Offset:   size,
				Length:   run.Offset - size,
				IsSparse: true,
			})
		}

		// Move the pointer past the end of this range.
		size = run.Offset + run.Length

		// Add a real data run
		result = append(result, Range{
			Offset: run.Offset,
			Length: run.Length,
		})
	}
	return result
}

// Devices without an acquisition driver are directly addressable end
// to end, so the whole device is a single run. This lets the uniform
// read path work unchanged when there is no real sparseness.
func SingleRun(size int64) RegionMap {
	if size == 0 {
		return RegionMap{}
	}

	return RegionMap{
		Runs: []Run{{Offset: 0, Length: size}},
	}
}
