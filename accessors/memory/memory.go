// An accessor for raw physical memory.

// Memory access is provided by a special acquisition driver where the
// platform has one. It is preferred to use this accessor rather than
// read the raw device directly since this accessor protects the
// system from touching unmapped regions such as DMA ranges.

package memory

import (
	"errors"

	"www.velocidex.com/golang/physmem/accessors"
	"www.velocidex.com/golang/physmem/acls"
	vql_subsystem "www.velocidex.com/golang/physmem/vql"
	"www.velocidex.com/golang/vfilter"
)

const _MemoryAccessorTag = "_MemoryAccessor"

type MemoryFileSystemAccessor struct {
	scope vfilter.Scope
}

func (self MemoryFileSystemAccessor) Describe() *accessors.AccessorDescriptor {
	return &accessors.AccessorDescriptor{
		Name:        "memory",
		Description: `Access physical memory like a file, with unmapped regions reading as zeros.`,
		Permissions: []acls.ACL_PERMISSION{acls.MACHINE_STATE},
	}
}

func (self MemoryFileSystemAccessor) New(scope vfilter.Scope) (
	accessors.FileSystemAccessor, error) {

	result_any := vql_subsystem.CacheGet(scope, _MemoryAccessorTag)
	if result_any == nil {
		err := vql_subsystem.CheckAccess(scope, acls.MACHINE_STATE)
		if err != nil {
			return nil, err
		}

		result := &MemoryFileSystemAccessor{scope: scope}
		vql_subsystem.CacheSet(scope, _MemoryAccessorTag, result)
		return result, nil
	}

	return result_any.(*MemoryFileSystemAccessor), nil
}

func (self MemoryFileSystemAccessor) ParsePath(path string) (
	*accessors.OSPath, error) {
	return accessors.NewLinuxOSPath(path)
}

func (self MemoryFileSystemAccessor) ReadDir(path string) (
	[]accessors.FileInfo, error) {
	return nil, errors.New("memory accessor: Directory operations not supported.")
}

func (self MemoryFileSystemAccessor) ReadDirWithOSPath(
	path *accessors.OSPath) ([]accessors.FileInfo, error) {
	return nil, errors.New("memory accessor: Directory operations not supported.")
}

func (self MemoryFileSystemAccessor) Lstat(filename string) (
	accessors.FileInfo, error) {
	full_path, err := self.ParsePath(filename)
	if err != nil {
		return nil, err
	}

	return self.LstatWithOSPath(full_path)
}

func (self MemoryFileSystemAccessor) LstatWithOSPath(
	full_path *accessors.OSPath) (accessors.FileInfo, error) {

	return &accessors.VirtualFileInfo{
		Path: full_path,
	}, nil
}

func (self *MemoryFileSystemAccessor) Open(filename string) (
	accessors.ReadSeekCloser, error) {

	full_path, err := self.ParsePath(filename)
	if err != nil {
		return nil, err
	}

	return self.OpenWithOSPath(full_path)
}

// Each open queries the driver afresh - the valid region map may
// change between acquisition sessions so it is never reused.
func (self *MemoryFileSystemAccessor) OpenWithOSPath(
	full_path *accessors.OSPath) (accessors.ReadSeekCloser, error) {

	// The memory accessor can not be layered on top of another
	// accessor - it must be the top level of the pathspec.
	if full_path.DelegateAccessor() != "" ||
		full_path.DelegatePath() != "" {
		return nil, errors.New("memory accessor must be a top level accessor")
	}

	return openMemoryDevice(full_path, self.scope)
}

func init() {
	accessors.Register(&MemoryFileSystemAccessor{})
}
