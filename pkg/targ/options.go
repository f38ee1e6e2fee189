package targ

import (
	"errors"
	"path/filepath"

	"github.com/datatug/targ/pkg/debuglog"
	"github.com/datatug/targ/pkg/files"
	"github.com/datatug/targ/pkg/tarball"
	"github.com/datatug/targ/pkg/tree"
	"go.uber.org/zap"
)

var ErrNoArchive = errors.New("no archive given, use --tar-file or pass the path as an argument")

// Options is the process configuration collected from the command line.
type Options struct {
	ArchivePath   string
	ShowIndicator bool
	Debug         bool
	DebugLogPath  string
}

func (o Options) Validate() error {
	if o.ArchivePath == "" {
		return ErrNoArchive
	}
	return nil
}

func (o Options) DebugLog() debuglog.Config {
	return debuglog.Config{Enabled: o.Debug, Path: o.DebugLogPath}
}

// ArchiveName is the title shown for the archive.
func (o Options) ArchiveName() string {
	return filepath.Base(o.ArchivePath)
}

// LoadArchive reads the archive and builds its tree in one pass.
func LoadArchive(o Options, logger *zap.Logger) ([]files.Entry, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	raw, err := tarball.OpenArchive(o.ArchivePath,
		tarball.ShowIndicator(o.ShowIndicator),
		tarball.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	return tree.Build(raw, tree.WithLogger(logger))
}
