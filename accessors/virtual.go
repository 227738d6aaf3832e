package accessors

import (
	"io"
	"os"
	"time"

	"github.com/Velocidex/ordereddict"
	errors "github.com/go-errors/errors"
)

// A FileInfo for files that do not really exist on any filesystem -
// devices, synthetic nodes and test fixtures.
type VirtualFileInfo struct {
	Path *OSPath

	RawData []byte
	IsDir_  bool
	Size_   int64
	Data_   *ordereddict.Dict

	Mtime_ time.Time
	Btime_ time.Time
	Ctime_ time.Time
	Atime_ time.Time
}

func (self *VirtualFileInfo) Name() string {
	if self.Path == nil {
		return ""
	}
	return self.Path.Basename()
}

func (self *VirtualFileInfo) IsDir() bool {
	return self.IsDir_
}

func (self *VirtualFileInfo) Size() int64 {
	if self.RawData != nil {
		return int64(len(self.RawData))
	}
	return self.Size_
}

func (self *VirtualFileInfo) Data() *ordereddict.Dict {
	if self.Data_ == nil {
		return ordereddict.NewDict()
	}
	return self.Data_
}

func (self *VirtualFileInfo) ModTime() time.Time {
	return self.Mtime_
}

func (self *VirtualFileInfo) FullPath() string {
	if self.Path == nil {
		return ""
	}
	return self.Path.String()
}

func (self *VirtualFileInfo) OSPath() *OSPath {
	return self.Path
}

func (self *VirtualFileInfo) Mtime() time.Time {
	return self.Mtime_
}

func (self *VirtualFileInfo) Btime() time.Time {
	return self.Btime_
}

func (self *VirtualFileInfo) Ctime() time.Time {
	return self.Ctime_
}

func (self *VirtualFileInfo) Atime() time.Time {
	return self.Atime_
}

func (self *VirtualFileInfo) IsLink() bool {
	return false
}

func (self *VirtualFileInfo) GetLink() (*OSPath, error) {
	return nil, errors.New("Not implemented")
}

func (self *VirtualFileInfo) Mode() os.FileMode {
	if self.IsDir_ {
		return os.ModeDir | 0755
	}
	return 0644
}

type VirtualReadSeekCloser struct {
	io.ReadSeeker
}

func (self VirtualReadSeekCloser) Close() error {
	return nil
}
