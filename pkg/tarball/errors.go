package tarball

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrIO reports an archive that could not be opened or read.
	ErrIO = errors.New("archive I/O error")
	// ErrMalformedArchive reports a structurally invalid record or pathological nesting.
	ErrMalformedArchive = errors.New("malformed archive")
)

func wrapReadErr(name string, err error) error {
	if isMalformed(err) {
		return fmt.Errorf("%w: %s: %w", ErrMalformedArchive, name, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrIO, name, err)
}

func isMalformed(err error) bool {
	return errors.Is(err, tar.ErrHeader) ||
		errors.Is(err, gzip.ErrHeader) ||
		errors.Is(err, gzip.ErrChecksum) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
