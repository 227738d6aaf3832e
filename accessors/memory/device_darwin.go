//go:build darwin
// +build darwin

package memory

import (
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"github.com/Velocidex/ordereddict"
	"golang.org/x/sys/unix"
	"www.velocidex.com/golang/physmem/accessors"
	"www.velocidex.com/golang/physmem/pmem"
	"www.velocidex.com/golang/physmem/regions"
	"www.velocidex.com/golang/vfilter"
)

const DefaultDeviceName = "/dev/pmem"

// The OSX pmem driver hands out the firmware memory map through a set
// of ioctls: two scalars for the map dimensions, then the raw
// descriptor array copied into a caller supplied buffer.
func openMemoryDevice(
	full_path *accessors.OSPath,
	scope vfilter.Scope) (*MemoryReader, error) {

	device_path := full_path.Path()
	if device_path == "" || device_path == "/" {
		device_path = DefaultDeviceName
	}

	device, err := os.Open(device_path)
	if err != nil {
		return nil, fmt.Errorf("%v (%v): %w",
			err, device_path, pmem.DeviceUnavailableError)
	}

	fd := int(device.Fd())

	mmap_size, err := ioctlGetUint32(fd, pmem.PmemIocGetMmapSize)
	if err != nil {
		device.Close()
		return nil, fmt.Errorf("pmem mmap size ioctl: %v: %w",
			err, pmem.DeviceUnavailableError)
	}

	desc_size, err := ioctlGetUint32(fd, pmem.PmemIocGetMmapDescSize)
	if err != nil {
		device.Close()
		return nil, fmt.Errorf("pmem descriptor size ioctl: %v: %w",
			err, pmem.DeviceUnavailableError)
	}

	// The driver copies the map into a buffer whose address is
	// passed by value in the ioctl argument.
	buf := make([]byte, mmap_size)
	ptr := uint64(uintptr(unsafe.Pointer(&buf[0])))
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd),
		uintptr(pmem.PmemIocGetMmap), uintptr(unsafe.Pointer(&ptr)))
	runtime.KeepAlive(buf)
	if errno != 0 {
		device.Close()
		return nil, fmt.Errorf("pmem mmap ioctl: %v: %w",
			errno, pmem.DeviceUnavailableError)
	}

	runs, err := pmem.ParseEfiMemoryMap(buf, int(mmap_size), int(desc_size))
	if err != nil {
		device.Close()
		return nil, err
	}

	metadata := ordereddict.NewDict().
		Set("number_of_runs", len(runs))

	// The directory table base of the kernel address space, when the
	// driver can report it. Failure here is not fatal - the map is
	// already complete.
	dtb, err := ioctlGetUint64(fd, pmem.PmemIocGetDtb)
	if err == nil {
		metadata.Set("dtb", dtb)
	}

	return &MemoryReader{
		device:     device,
		closer:     device.Close,
		region_map: regions.RegionMap{Runs: runs},
		metadata:   metadata,
	}, nil
}

func ioctlGetUint32(fd int, req uint32) (uint32, error) {
	var value uint32
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd),
		uintptr(req), uintptr(unsafe.Pointer(&value)))
	if errno != 0 {
		return 0, errno
	}
	return value, nil
}

func ioctlGetUint64(fd int, req uint32) (uint64, error) {
	var value uint64
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd),
		uintptr(req), uintptr(unsafe.Pointer(&value)))
	if errno != 0 {
		return 0, errno
	}
	return value, nil
}
