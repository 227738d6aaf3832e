//go:build windows
// +build windows

package memory

import (
	"fmt"
	"os"

	"github.com/Velocidex/ordereddict"
	"golang.org/x/sys/windows"
	"www.velocidex.com/golang/physmem/accessors"
	"www.velocidex.com/golang/physmem/pmem"
	"www.velocidex.com/golang/physmem/regions"
	"www.velocidex.com/golang/vfilter"
)

const (
	DeviceName = `\\.\pmem`

	// The driver's info result is small - a header plus at most a
	// few dozen runs.
	infoBufferSize = 1024
)

// The winpmem driver reports the valid memory runs through an info
// ioctl. Any path opens the same device.
func openMemoryDevice(
	full_path *accessors.OSPath,
	scope vfilter.Scope) (*MemoryReader, error) {

	path_ptr, err := windows.UTF16PtrFromString(DeviceName)
	if err != nil {
		return nil, err
	}

	handle, err := windows.CreateFile(path_ptr,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil, windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL, 0)
	if err != nil {
		return nil, fmt.Errorf("%v (%v): %w",
			err, DeviceName, pmem.DeviceUnavailableError)
	}

	// Obtain the valid memory runs from the driver.
	buf := make([]byte, infoBufferSize)
	var returned uint32
	err = windows.DeviceIoControl(handle, pmem.InfoIoctl,
		nil, 0, &buf[0], uint32(len(buf)), &returned, nil)
	if err != nil {
		windows.CloseHandle(handle)
		return nil, fmt.Errorf("winpmem info ioctl: %v: %w",
			err, pmem.DeviceUnavailableError)
	}

	info, err := pmem.ParseMemoryInfo(buf[:returned])
	if err != nil {
		windows.CloseHandle(handle)
		return nil, err
	}

	device := os.NewFile(uintptr(handle), DeviceName)

	return &MemoryReader{
		device:     device,
		closer:     device.Close,
		region_map: regions.RegionMap{Runs: info.Runs},
		metadata: ordereddict.NewDict().
			Set("cr3", info.CR3).
			Set("number_of_runs", info.NumberOfRuns),
	}, nil
}
