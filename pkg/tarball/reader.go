package tarball

import (
	"archive/tar"
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/datatug/targ/pkg/files"
	"go.uber.org/zap"
)

// IndicatorPrefix marks resource fork and metadata shadow files (e.g. "._readme.txt").
const IndicatorPrefix = "._"

// DefaultHeadLimit is how many leading bytes of each regular file are kept for previews.
const DefaultHeadLimit = 10 * 1024

type options struct {
	showIndicator bool
	headLimit     int
	logger        *zap.Logger
}

type Option func(*options)

// ShowIndicator keeps indicator files instead of skipping them.
func ShowIndicator(v bool) Option {
	return func(o *options) {
		o.showIndicator = v
	}
}

// WithHeadLimit sets how many leading bytes of regular files are kept. Zero keeps none.
func WithHeadLimit(n int) Option {
	return func(o *options) {
		o.headLimit = n
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(o []Option) options {
	opts := options{headLimit: DefaultHeadLimit}
	for _, opt := range o {
		opt(&opts)
	}
	if opts.logger == nil {
		opts.logger = zap.NewNop()
	}
	return opts
}

// IsGzip tells by the archive name whether the stream is gzip compressed.
func IsGzip(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".gz") || strings.HasSuffix(lower, ".tgz")
}

// IsIndicator tells whether the last segment of a normalized path is an indicator file.
func IsIndicator(p string) bool {
	return strings.HasPrefix(files.BaseName(p), IndicatorPrefix)
}

var osOpen = func(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// OpenArchive reads all entries of the tar or tar.gz file at filePath.
func OpenArchive(filePath string, o ...Option) ([]RawEntry, error) {
	f, err := osOpen(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return ReadArchive(f, filePath, o...)
}

// ReadArchive reads all entries from r in archive order.
// The name is only used to detect compression and in error messages.
func ReadArchive(r io.Reader, name string, o ...Option) ([]RawEntry, error) {
	opts := newOptions(o)
	log := opts.logger.With(zap.String("archive", name))

	var stream io.Reader = bufio.NewReader(r)
	var gz *gzip.Reader
	if IsGzip(name) {
		var err error
		gz, err = gzip.NewReader(stream)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: %s: empty gzip stream", ErrMalformedArchive, name)
			}
			return nil, wrapReadErr(name, err)
		}
		defer func() {
			_ = gz.Close()
		}()
		stream = gz
	}

	tr := tar.NewReader(stream)
	var entries []RawEntry
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !errors.Is(err, tar.ErrInsecurePath) {
			return nil, wrapReadErr(name, err)
		}
		if hdr.Typeflag == tar.TypeXGlobalHeader {
			continue
		}
		p := NormalizePath(hdr.Name)
		if p == "" {
			log.Debug("skipping archive root entry", zap.String("name", hdr.Name))
			continue
		}
		if !opts.showIndicator && IsIndicator(p) {
			log.Debug("skipping indicator entry", zap.String("path", p))
			continue
		}
		entry, err := newRawEntry(tr, hdr, p, opts.headLimit)
		if err != nil {
			return nil, wrapReadErr(name, err)
		}
		entries = append(entries, entry)
	}
	if gz != nil {
		// The gzip trailer is only verified once the stream is read to its end.
		if _, err := io.Copy(io.Discard, gz); err != nil {
			return nil, wrapReadErr(name, err)
		}
	}
	log.Debug("archive read", zap.Int("entries", len(entries)))
	return entries, nil
}

func newRawEntry(tr *tar.Reader, hdr *tar.Header, p string, headLimit int) (entry RawEntry, err error) {
	entry = RawEntry{
		Path:     p,
		Modified: modifiedUTC(hdr.ModTime),
		Mode:     hdr.FileInfo().Mode(),
		LinkName: hdr.Linkname,
	}
	if hdr.Typeflag == tar.TypeDir {
		entry.Kind = KindDirectory
		return entry, nil
	}
	entry.Kind = KindFile
	if hdr.Size > 0 {
		entry.Size = uint64(hdr.Size)
	}
	if hdr.Typeflag == tar.TypeReg && headLimit > 0 && hdr.Size > 0 {
		if entry.Head, err = io.ReadAll(io.LimitReader(tr, int64(headLimit))); err != nil {
			return entry, err
		}
	}
	return entry, nil
}
