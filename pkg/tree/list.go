package tree

import (
	"slices"
	"strings"

	"github.com/datatug/targ/pkg/files"
)

// ListChildren returns the direct children of the directory addressed by scope.
// An empty scope lists the root forest. A scope that resolves to a file or to
// nothing yields an empty result.
func ListChildren(forest []files.Entry, scope []string) []files.Entry {
	target := strings.Join(scope, "/")
	if target == "" {
		return slices.Clone(forest)
	}
	entries := forest
	segments := files.Segments(target)
	for i := range segments {
		prefix := strings.Join(segments[:i+1], "/")
		dir := findDir(entries, prefix)
		if dir == nil {
			return nil
		}
		if prefix == target {
			return dir.Children()
		}
		entries = dir.Children()
	}
	return nil
}

func findDir(entries []files.Entry, p string) *files.DirEntry {
	for _, entry := range entries {
		if dir, ok := entry.(*files.DirEntry); ok && dir.Path() == p {
			return dir
		}
	}
	return nil
}

// Find returns the entry at the normalized path p.
func Find(forest []files.Entry, p string) (files.Entry, bool) {
	parent := files.ParentPath(p)
	for _, entry := range ListChildren(forest, files.Segments(parent)) {
		if entry.Path() == p {
			return entry, true
		}
	}
	return nil, false
}

// Walk visits every entry depth first in tree order.
// Returning false from visit skips the children of a directory.
func Walk(forest []files.Entry, visit func(entry files.Entry, depth int) bool) {
	walk(forest, 0, visit)
}

func walk(entries []files.Entry, depth int, visit func(entry files.Entry, depth int) bool) {
	for _, entry := range entries {
		descend := visit(entry, depth)
		if dir, ok := entry.(*files.DirEntry); ok && descend {
			walk(dir.Children(), depth+1, visit)
		}
	}
}

type Summary struct {
	Dirs  int
	Files int
	Size  uint64
}

// Summarize counts directories, files and the total file size of the forest.
func Summarize(forest []files.Entry) (s Summary) {
	Walk(forest, func(entry files.Entry, _ int) bool {
		switch e := entry.(type) {
		case *files.DirEntry:
			s.Dirs++
		case *files.FileEntry:
			s.Files++
			s.Size += e.Size()
		}
		return true
	})
	return s
}
