/* This accessor is used for reading raw devices.

On Windows, raw files need to be read in aligned page size. This
accessor ensures reads are buffered into page size buffers to make it
safe to read the device in arbitrary alignment.

We do not support directory operations on raw devices.

*/

package raw_file

import (
	"os"

	ntfs "www.velocidex.com/golang/go-ntfs/parser"
	"www.velocidex.com/golang/physmem/accessors"
	"www.velocidex.com/golang/physmem/acls"
	"www.velocidex.com/golang/physmem/utils"
	vql_subsystem "www.velocidex.com/golang/physmem/vql"
	"www.velocidex.com/golang/vfilter"
)

type RawFileSystemAccessor struct{}

func (self RawFileSystemAccessor) Describe() *accessors.AccessorDescriptor {
	return &accessors.AccessorDescriptor{
		Name:        "raw_file",
		Description: `Access raw devices and flat files with page aligned reads.`,
		Permissions: []acls.ACL_PERMISSION{acls.FILESYSTEM_READ},
	}
}

func (self RawFileSystemAccessor) ParsePath(path string) (
	*accessors.OSPath, error) {
	return accessors.NewLinuxOSPath(path)
}

func (self RawFileSystemAccessor) New(scope vfilter.Scope) (
	accessors.FileSystemAccessor, error) {

	// Check we have permission to open files.
	err := vql_subsystem.CheckAccess(scope, acls.FILESYSTEM_READ)
	if err != nil {
		return nil, err
	}

	result := &RawFileSystemAccessor{}
	return result, nil
}

func (self RawFileSystemAccessor) ReadDir(path string) (
	[]accessors.FileInfo, error) {
	return nil, utils.NotImplementedError
}

func (self RawFileSystemAccessor) ReadDirWithOSPath(
	path *accessors.OSPath) ([]accessors.FileInfo, error) {
	return nil, utils.NotImplementedError
}

func (self RawFileSystemAccessor) Open(filename string) (
	accessors.ReadSeekCloser, error) {

	// Treat the path as a raw OS path.
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	reader, err := ntfs.NewPagedReader(file, 0x1000, 10000)
	if err != nil {
		file.Close()
		return nil, err
	}

	result := utils.NewReadSeekReaderAdapter(reader, func() {
		file.Close()
	})

	// Devices often can not be stat'ed - use the seek end size if
	// the OS reports one.
	size, err := file.Seek(0, os.SEEK_END)
	if err == nil && size > 0 {
		result.SetSize(size)
	}

	return result, nil
}

func (self RawFileSystemAccessor) OpenWithOSPath(
	full_path *accessors.OSPath) (accessors.ReadSeekCloser, error) {
	return self.Open(full_path.Path())
}

func (self RawFileSystemAccessor) Lstat(path string) (
	accessors.FileInfo, error) {
	full_path, err := self.ParsePath(path)
	if err != nil {
		return nil, err
	}

	return self.LstatWithOSPath(full_path)
}

func (self RawFileSystemAccessor) LstatWithOSPath(
	full_path *accessors.OSPath) (accessors.FileInfo, error) {

	stat, err := os.Lstat(full_path.Path())
	if err != nil {
		return &accessors.VirtualFileInfo{
			Path: full_path,
		}, nil
	}

	return &accessors.VirtualFileInfo{
		Path:   full_path,
		Size_:  stat.Size(),
		Mtime_: stat.ModTime(),
	}, nil
}

func init() {
	accessors.Register(&RawFileSystemAccessor{})
}
