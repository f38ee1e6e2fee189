// Package debuglog builds the optional debug sink handed to the archive,
// tree and navigation packages. It keeps no global state.
package debuglog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const DefaultPath = "targ_debug.log"

type Config struct {
	Enabled bool
	// Path is the file debug records are appended to. Defaults to DefaultPath.
	Path string
	// Level is a zap level name. Defaults to debug.
	Level string
}

// New returns a nop logger unless cfg is enabled. Records never go to the
// terminal as it is owned by the UI.
func New(cfg Config) (*zap.Logger, error) {
	if !cfg.Enabled {
		return zap.NewNop(), nil
	}
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}
	level := zapcore.DebugLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid debug log level %q: %w", cfg.Level, err)
		}
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{cfg.Path}
	config.ErrorOutputPaths = []string{cfg.Path}
	config.DisableStacktrace = true

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log %s: %w", cfg.Path, err)
	}
	return logger.Named("targ"), nil
}
