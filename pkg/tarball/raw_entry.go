package tarball

import (
	"os"
	"path"
	"strings"
	"time"
)

type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	default:
		return "file"
	}
}

// RawEntry is one archive record before it is placed into a tree.
type RawEntry struct {
	Kind     Kind
	Path     string
	Size     uint64
	Modified time.Time
	Mode     os.FileMode
	LinkName string
	Head     []byte
}

// NormalizePath turns an archive member name into a slash separated path
// relative to the archive root with no leading "./" or "/" and no trailing slash.
// It returns "" for names that denote the archive root itself.
func NormalizePath(name string) string {
	return strings.TrimPrefix(path.Clean("/"+name), "/")
}

var epoch = time.Unix(0, 0).UTC()

func modifiedUTC(t time.Time) time.Time {
	if t.IsZero() {
		return epoch
	}
	return t.UTC()
}
