package files

import (
	"os"
	"slices"
	"strings"
	"time"
)

// Entry is one file or directory record of an archive.
// The only implementations are *DirEntry and *FileEntry; consumers switch on
// the concrete type.
type Entry interface {
	os.DirEntry
	// Path is the slash separated path from the archive root, without a trailing slash.
	Path() string
	ModTime() time.Time
	isEntry()
}

var _ Entry = (*DirEntry)(nil)
var _ Entry = (*FileEntry)(nil)

type DirEntry struct {
	meta
	children []Entry
}

func NewDirEntry(p string, children []Entry, o ...Option) *DirEntry {
	d := &DirEntry{meta: newMeta(p, o), children: children}
	return d
}

func (d *DirEntry) isEntry()          {}
func (d *DirEntry) IsDir() bool       { return true }
func (d *DirEntry) Type() os.FileMode { return os.ModeDir }

// Children returns a copy of the direct children in build order.
func (d *DirEntry) Children() []Entry {
	if d.children == nil {
		return nil
	}
	return slices.Clone(d.children)
}

func (d *DirEntry) ChildCount() int {
	return len(d.children)
}

func (d *DirEntry) Info() (os.FileInfo, error) {
	return &FileInfo{entry: d, meta: d.meta, isDir: true}, nil
}

type FileEntry struct {
	meta
}

func NewFileEntry(p string, o ...Option) *FileEntry {
	return &FileEntry{meta: newMeta(p, o)}
}

func (f *FileEntry) isEntry()    {}
func (f *FileEntry) IsDir() bool { return false }

func (f *FileEntry) Type() os.FileMode {
	return f.mode.Type()
}

func (f *FileEntry) Size() uint64 { return f.size }

// LinkName is the target of a symbolic or hard link, empty for regular files.
func (f *FileEntry) LinkName() string { return f.linkName }

// Head is the leading part of the file content captured while reading the archive.
func (f *FileEntry) Head() []byte { return f.head }

func (f *FileEntry) Info() (os.FileInfo, error) {
	return &FileInfo{entry: f, meta: f.meta}, nil
}

// ParentPath returns everything before the last slash of p, or "" for root level paths.
func ParentPath(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return ""
}

// BaseName returns the last segment of p.
func BaseName(p string) string {
	return p[strings.LastIndexByte(p, '/')+1:]
}

// Segments splits p into its path segments. An empty path has no segments.
func Segments(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
