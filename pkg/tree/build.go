package tree

import (
	"fmt"

	"github.com/datatug/targ/pkg/files"
	"github.com/datatug/targ/pkg/tarball"
	"go.uber.org/zap"
)

// MaxDepth bounds directory nesting. Deeper archives are rejected as malformed.
const MaxDepth = 1024

type options struct {
	logger *zap.Logger
}

type Option func(*options)

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

type builder struct {
	groups map[string][]tarball.RawEntry
	placed int
}

// Build groups raw entries by parent path and assembles the root forest.
// Entries whose parent directory has no entry of its own are left out.
// A later record for an already seen path replaces the earlier one in place.
func Build(raw []tarball.RawEntry, o ...Option) ([]files.Entry, error) {
	var opts options
	for _, opt := range o {
		opt(&opts)
	}
	if opts.logger == nil {
		opts.logger = zap.NewNop()
	}

	deduped := dedupe(raw)
	b := builder{
		groups: make(map[string][]tarball.RawEntry),
	}
	for _, entry := range deduped {
		parent := files.ParentPath(entry.Path)
		b.groups[parent] = append(b.groups[parent], entry)
	}

	forest, err := b.resolve("", 0)
	if err != nil {
		return nil, err
	}
	if orphans := len(deduped) - b.placed; orphans > 0 {
		opts.logger.Debug("entries without a parent directory entry were left out", zap.Int("count", orphans))
	}
	opts.logger.Debug("tree built", zap.Int("entries", b.placed), zap.Int("roots", len(forest)))
	return forest, nil
}

func dedupe(raw []tarball.RawEntry) []tarball.RawEntry {
	positions := make(map[string]int, len(raw))
	result := make([]tarball.RawEntry, 0, len(raw))
	for _, entry := range raw {
		if i, ok := positions[entry.Path]; ok {
			result[i] = entry
			continue
		}
		positions[entry.Path] = len(result)
		result = append(result, entry)
	}
	return result
}

func (b *builder) resolve(parent string, depth int) ([]files.Entry, error) {
	group, ok := b.groups[parent]
	if !ok {
		return nil, nil
	}
	result := make([]files.Entry, 0, len(group))
	for _, raw := range group {
		switch raw.Kind {
		case tarball.KindDirectory:
			if depth >= MaxDepth {
				return nil, fmt.Errorf("%w: directory %q is nested deeper than %d levels", tarball.ErrMalformedArchive, raw.Path, MaxDepth)
			}
			children, err := b.resolve(raw.Path, depth+1)
			if err != nil {
				return nil, err
			}
			result = append(result, files.NewDirEntry(raw.Path, children, files.ModTime(raw.Modified), files.Mode(raw.Mode)))
		default:
			result = append(result, files.NewFileEntry(raw.Path,
				files.Size(raw.Size),
				files.ModTime(raw.Modified),
				files.Mode(raw.Mode),
				files.LinkName(raw.LinkName),
				files.Head(raw.Head),
			))
		}
		b.placed++
	}
	return result, nil
}
