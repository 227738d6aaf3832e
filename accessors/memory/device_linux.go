//go:build linux
// +build linux

package memory

import (
	"fmt"
	"os"

	"github.com/Velocidex/ordereddict"
	ntfs "www.velocidex.com/golang/go-ntfs/parser"
	"www.velocidex.com/golang/physmem/accessors"
	"www.velocidex.com/golang/physmem/pmem"
	"www.velocidex.com/golang/physmem/regions"
	"www.velocidex.com/golang/vfilter"
)

// The linux acquisition driver is very easy to use - the device is
// directly addressable end to end, so the whole device becomes a
// single run and the uniform read path applies unchanged.
func openMemoryDevice(
	full_path *accessors.OSPath,
	scope vfilter.Scope) (*MemoryReader, error) {

	device_path := full_path.Path()

	device, err := os.Open(device_path)
	if err != nil {
		return nil, fmt.Errorf("%v (%v): %w",
			err, device_path, pmem.DeviceUnavailableError)
	}

	size, err := device.Seek(0, os.SEEK_END)
	if err != nil {
		device.Close()
		return nil, fmt.Errorf("%v (%v): %w",
			err, device_path, pmem.DeviceUnavailableError)
	}

	// Page aligned reads keep raw devices happy.
	reader, err := ntfs.NewPagedReader(device, 0x1000, 10000)
	if err != nil {
		device.Close()
		return nil, err
	}

	return &MemoryReader{
		device:     reader,
		closer:     device.Close,
		region_map: regions.SingleRun(size),
		metadata: ordereddict.NewDict().
			Set("device", device_path),
	}, nil
}
