// Package navigator holds the path scoped navigation state over an archive tree.
package navigator

import (
	"slices"
	"strings"

	"github.com/datatug/targ/pkg/files"
	"github.com/datatug/targ/pkg/tree"
	"go.uber.org/zap"
)

// State is the current directory (as path segments) and the selection within
// its listing. It only reads the tree it was created with.
type State struct {
	forest      []files.Entry
	currentPath []string
	selected    int
	logger      *zap.Logger
}

type Option func(*State)

func WithLogger(logger *zap.Logger) Option {
	return func(s *State) {
		s.logger = logger
	}
}

// New starts at the root listing with the first entry selected.
func New(forest []files.Entry, o ...Option) *State {
	s := &State{forest: forest}
	for _, opt := range o {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// CurrentPath returns a copy of the current path segments. Root is empty.
func (s *State) CurrentPath() []string {
	if len(s.currentPath) == 0 {
		return nil
	}
	return slices.Clone(s.currentPath)
}

// Scope is the current path joined with slashes, "" at root.
func (s *State) Scope() string {
	return strings.Join(s.currentPath, "/")
}

// Selected returns the selection index and whether it points at a listed entry.
func (s *State) Selected() (int, bool) {
	return s.selected, s.selected < len(s.Children())
}

// Children lists the direct children of the current path.
func (s *State) Children() []files.Entry {
	children := tree.ListChildren(s.forest, s.currentPath)
	s.logger.Debug("listing", zap.String("scope", s.Scope()), zap.Int("children", len(children)))
	return children
}

// SelectedEntry returns the listed entry at the selection index.
func (s *State) SelectedEntry() (files.Entry, bool) {
	children := s.Children()
	if s.selected >= len(children) {
		return nil, false
	}
	return children[s.selected], true
}

// Enter makes the selected directory the current path.
// It reports false and changes nothing if the selection is not a directory.
func (s *State) Enter() bool {
	entry, ok := s.SelectedEntry()
	if !ok {
		return false
	}
	dir, ok := entry.(*files.DirEntry)
	if !ok {
		return false
	}
	s.currentPath = files.Segments(dir.Path())
	s.selected = 0
	s.logger.Debug("entered directory", zap.String("path", dir.Path()), zap.Int("children", dir.ChildCount()))
	return true
}

// GoBack moves to the parent of the current path. It is a no-op at root.
func (s *State) GoBack() bool {
	if len(s.currentPath) == 0 {
		return false
	}
	s.currentPath = s.currentPath[:len(s.currentPath)-1]
	s.selected = 0
	s.logger.Debug("went back", zap.String("path", s.Scope()))
	return true
}

// MoveUp selects the previous entry, wrapping from the first to the last.
// It reports false when the selection stays where it was.
func (s *State) MoveUp() bool {
	n := len(s.Children())
	if n == 0 {
		return false
	}
	next := s.selected - 1
	if s.selected == 0 || s.selected > n-1 {
		next = n - 1
	}
	return s.selectIndex(next)
}

// MoveDown selects the next entry, wrapping from the last to the first.
// It reports false when the selection stays where it was.
func (s *State) MoveDown() bool {
	n := len(s.Children())
	if n == 0 {
		return false
	}
	next := s.selected + 1
	if s.selected >= n-1 {
		next = 0
	}
	return s.selectIndex(next)
}

func (s *State) selectIndex(i int) bool {
	if i == s.selected {
		return false
	}
	s.selected = i
	return true
}
