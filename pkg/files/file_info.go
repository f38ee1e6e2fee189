package files

import (
	"os"
	"time"
)

var _ os.FileInfo = (*FileInfo)(nil)

// FileInfo exposes an archive entry as os.FileInfo.
type FileInfo struct {
	meta
	entry Entry
	isDir bool
}

func (f *FileInfo) Name() string {
	if f == nil {
		return ""
	}
	return f.meta.Name()
}

func (f *FileInfo) Size() int64 {
	if f == nil {
		return 0
	}
	return int64(f.size)
}

func (f *FileInfo) Mode() os.FileMode {
	if f == nil {
		return 0
	}
	if f.isDir {
		return f.mode | os.ModeDir
	}
	return f.mode
}

func (f *FileInfo) ModTime() time.Time {
	if f == nil {
		return time.Time{}
	}
	return f.modTime
}

func (f *FileInfo) IsDir() bool {
	if f == nil {
		return false
	}
	return f.isDir
}

// Sys returns the Entry the info was taken from.
func (f *FileInfo) Sys() any {
	if f == nil {
		return nil
	}
	return f.entry
}
