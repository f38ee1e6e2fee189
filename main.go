package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/datatug/targ/pkg/debuglog"
	"github.com/datatug/targ/pkg/fsutils"
	"github.com/datatug/targ/pkg/targ"
	"github.com/rivo/tview"
	"github.com/spf13/pflag"
)

var version = "dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var osExit = os.Exit
var stdout io.Writer = os.Stdout
var stderr io.Writer = os.Stderr

var newApp = func() targ.App {
	app := tview.NewApplication()
	app.EnableMouse(true)
	return targ.NewApp(app)
}

var loadArchive = targ.LoadArchive

func main() {
	osExit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseOptions(args)
	if errors.Is(err, errVersion) {
		_, _ = fmt.Fprintf(stdout, "targ %s\n", version)
		return exitOK
	}
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "targ: %v\n", err)
		return exitUsage
	}

	logger, err := debuglog.New(opts.DebugLog())
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "targ: %v\n", err)
		return exitError
	}
	defer func() {
		_ = logger.Sync()
	}()

	forest, err := loadArchive(opts, logger)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "targ: %v\n", err)
		return exitError
	}

	app := newApp()
	targ.SetupApp(app, opts.ArchiveName(), forest, logger)
	if err = app.Run(); err != nil {
		_, _ = fmt.Fprintf(stderr, "targ: %v\n", err)
		return exitError
	}
	return exitOK
}

var errVersion = errors.New("version requested")

func parseOptions(args []string) (opts targ.Options, err error) {
	fs := pflag.NewFlagSet("targ", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: targ [options] [archive.tar|archive.tar.gz]\n\n")
		_, _ = fmt.Fprintf(stderr, "Browse the contents of a tar archive without extracting it.\n\n")
		_, _ = fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	fs.StringVarP(&opts.ArchivePath, "tar-file", "t", "", "Path to the tar file")
	fs.BoolVar(&opts.ShowIndicator, "show-indicator", false, "Show indicator files (e.g. ._* files)")
	fs.BoolVarP(&opts.Debug, "debug", "d", false, "Debug mode, save logs to a file")
	fs.StringVar(&opts.DebugLogPath, "debug-log", debuglog.DefaultPath, "Debug log `file`")
	showVersion := fs.BoolP("version", "V", false, "Print version")

	if err = fs.Parse(args); err != nil {
		return opts, err
	}
	if *showVersion {
		return opts, errVersion
	}

	switch {
	case fs.NArg() > 1:
		return opts, fmt.Errorf("expected a single archive, got %d arguments", fs.NArg())
	case fs.NArg() == 1 && opts.ArchivePath != "":
		return opts, fmt.Errorf("archive given both by --tar-file and as an argument")
	case fs.NArg() == 1:
		opts.ArchivePath = fs.Arg(0)
	}
	opts.ArchivePath = fsutils.ExpandHome(opts.ArchivePath)
	if err = opts.Validate(); err != nil {
		fs.Usage()
		return opts, err
	}
	return opts, nil
}
