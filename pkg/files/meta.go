package files

import (
	"os"
	"time"
)

type Option func(*meta)

type meta struct {
	path     string
	size     uint64
	modTime  time.Time
	mode     os.FileMode
	linkName string
	head     []byte
}

func newMeta(p string, o []Option) meta {
	m := meta{path: p}
	for _, opt := range o {
		opt(&m)
	}
	return m
}

func Size(v uint64) Option {
	return func(m *meta) {
		m.size = v
	}
}

func ModTime(v time.Time) Option {
	return func(m *meta) {
		m.modTime = v
	}
}

func Mode(v os.FileMode) Option {
	return func(m *meta) {
		m.mode = v
	}
}

func LinkName(v string) Option {
	return func(m *meta) {
		m.linkName = v
	}
}

func Head(v []byte) Option {
	return func(m *meta) {
		m.head = v
	}
}

func (m *meta) Path() string       { return m.path }
func (m *meta) Name() string       { return BaseName(m.path) }
func (m *meta) ModTime() time.Time { return m.modTime }
func (m *meta) Mode() os.FileMode  { return m.mode }
