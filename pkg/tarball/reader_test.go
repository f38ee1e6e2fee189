package tarball

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var testModTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600))

type member struct {
	name     string
	typ      byte
	body     string
	linkName string
}

func dir(name string) member        { return member{name: name, typ: tar.TypeDir} }
func file(name, body string) member { return member{name: name, typ: tar.TypeReg, body: body} }

func buildTar(t *testing.T, members ...member) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, m := range members {
		hdr := &tar.Header{
			Name:     m.name,
			Typeflag: m.typ,
			Linkname: m.linkName,
			ModTime:  testModTime,
			Mode:     0o644,
		}
		if m.typ == tar.TypeDir {
			hdr.Mode = 0o755
		}
		if m.typ == tar.TypeReg {
			hdr.Size = int64(len(m.body))
		}
		require.NoError(t, tw.WriteHeader(hdr))
		if m.body != "" {
			_, err := tw.Write([]byte(m.body))
			require.NoError(t, err)
		}
	}
	require.NoError(t, tw.Close())
	return buf.Bytes()
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func paths(entries []RawEntry) []string {
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.Path
	}
	return result
}

func TestReadArchive(t *testing.T) {
	t.Parallel()
	data := buildTar(t, dir("docs/"), file("docs/readme.txt", "hello"), dir("bin/"))

	entries, err := ReadArchive(bytes.NewReader(data), "test.tar")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, []string{"docs", "docs/readme.txt", "bin"}, paths(entries))
	assert.Equal(t, KindDirectory, entries[0].Kind)
	assert.Equal(t, KindFile, entries[1].Kind)
	assert.Equal(t, KindDirectory, entries[2].Kind)

	readme := entries[1]
	assert.Equal(t, uint64(5), readme.Size)
	assert.Equal(t, []byte("hello"), readme.Head)
	assert.True(t, readme.Modified.Equal(testModTime))
	assert.Equal(t, time.UTC, readme.Modified.Location())
	assert.Equal(t, os.FileMode(0o644), readme.Mode)
	assert.Zero(t, entries[0].Size)
}

func TestReadArchive_Gzip(t *testing.T) {
	t.Parallel()
	data := gzipBytes(t, buildTar(t, dir("a/"), file("a/b", "b")))

	for _, name := range []string{"test.tar.gz", "TEST.TGZ"} {
		t.Run(name, func(t *testing.T) {
			entries, err := ReadArchive(bytes.NewReader(data), name)
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "a/b"}, paths(entries))
		})
	}
}

func TestReadArchive_IndicatorFiles(t *testing.T) {
	t.Parallel()
	data := buildTar(t, dir("a/"), file("a/._b", "meta"), file("a/b", "b"), dir("._x/"))

	t.Run("hidden", func(t *testing.T) {
		entries, err := ReadArchive(bytes.NewReader(data), "test.tar")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "a/b"}, paths(entries))
	})

	t.Run("shown", func(t *testing.T) {
		entries, err := ReadArchive(bytes.NewReader(data), "test.tar", ShowIndicator(true))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "a/._b", "a/b", "._x"}, paths(entries))
	})

	t.Run("logged", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		_, err := ReadArchive(bytes.NewReader(data), "test.tar", WithLogger(zap.New(core)))
		require.NoError(t, err)
		skipped := logs.FilterMessage("skipping indicator entry").All()
		require.Len(t, skipped, 2)
		assert.Equal(t, "a/._b", skipped[0].ContextMap()["path"])
	})
}

func TestReadArchive_NormalizesPaths(t *testing.T) {
	t.Parallel()
	data := buildTar(t, dir("./"), dir("./docs/"), file("./docs//readme.txt", "x"), dir("/abs/"))

	entries, err := ReadArchive(bytes.NewReader(data), "test.tar")
	require.NoError(t, err)
	assert.Equal(t, []string{"docs", "docs/readme.txt", "abs"}, paths(entries))
}

func TestReadArchive_HeadLimit(t *testing.T) {
	t.Parallel()
	data := buildTar(t, file("big.txt", "0123456789"), file("next.txt", "next"))

	entries, err := ReadArchive(bytes.NewReader(data), "test.tar", WithHeadLimit(4))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, []byte("0123"), entries[0].Head)
	assert.Equal(t, uint64(10), entries[0].Size)
	assert.Equal(t, []byte("next"), entries[1].Head)

	entries, err = ReadArchive(bytes.NewReader(data), "test.tar", WithHeadLimit(0))
	require.NoError(t, err)
	assert.Nil(t, entries[0].Head)
}

func TestReadArchive_LinksAreFiles(t *testing.T) {
	t.Parallel()
	data := buildTar(t,
		dir("bin/"),
		member{name: "bin/sh", typ: tar.TypeSymlink, linkName: "busybox"},
		member{name: "bin/ash", typ: tar.TypeLink, linkName: "bin/busybox"},
	)

	entries, err := ReadArchive(bytes.NewReader(data), "test.tar")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, KindFile, entries[1].Kind)
	assert.Equal(t, "busybox", entries[1].LinkName)
	assert.Equal(t, os.ModeSymlink, entries[1].Mode.Type())
	assert.Nil(t, entries[1].Head)
	assert.Equal(t, KindFile, entries[2].Kind)
	assert.Equal(t, "bin/busybox", entries[2].LinkName)
}

func TestReadArchive_SkipsGlobalHeader(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Typeflag:   tar.TypeXGlobalHeader,
		PAXRecords: map[string]string{"comment": "generated"},
	}))
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "x/", Typeflag: tar.TypeDir, ModTime: testModTime}))
	require.NoError(t, tw.Close())

	entries, err := ReadArchive(&buf, "git.tar")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, paths(entries))
}

func TestReadArchive_Empty(t *testing.T) {
	t.Parallel()
	entries, err := ReadArchive(bytes.NewReader(nil), "empty.tar")
	assert.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = ReadArchive(bytes.NewReader(buildTar(t)), "end-only.tar")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

// corruptTrailer flips a byte of the gzip trailer, offset bytes from the end.
// The CRC32 starts 8 bytes from the end and ISIZE 4 bytes from the end.
func corruptTrailer(data []byte, offset int) []byte {
	data = bytes.Clone(data)
	data[len(data)-offset] ^= 0xff
	return data
}

func cutTrailer(data []byte) []byte {
	return data[:len(data)-8]
}

func TestReadArchive_Errors(t *testing.T) {
	t.Parallel()
	valid := buildTar(t, file("a.txt", strings.Repeat("a", 2048)))

	tests := []struct {
		name    string
		archive string
		data    io.Reader
		want    error
	}{
		{
			name:    "garbage_header",
			archive: "garbage.tar",
			data:    bytes.NewReader(bytes.Repeat([]byte{'x'}, 1024)),
			want:    ErrMalformedArchive,
		},
		{
			name:    "truncated_content",
			archive: "truncated.tar",
			data:    bytes.NewReader(valid[:1024]),
			want:    ErrMalformedArchive,
		},
		{
			name:    "truncated_header",
			archive: "short.tar",
			data:    bytes.NewReader(valid[:100]),
			want:    ErrMalformedArchive,
		},
		{
			name:    "not_gzip",
			archive: "plain.tar.gz",
			data:    bytes.NewReader(valid),
			want:    ErrMalformedArchive,
		},
		{
			name:    "empty_gzip",
			archive: "empty.tgz",
			data:    bytes.NewReader(nil),
			want:    ErrMalformedArchive,
		},
		{
			name:    "corrupt_crc",
			archive: "crc.tar.gz",
			data:    bytes.NewReader(corruptTrailer(gzipBytes(t, buildTar(t, dir("a/"), file("a/b", "hello"))), 8)),
			want:    ErrMalformedArchive,
		},
		{
			name:    "corrupt_size",
			archive: "size.tgz",
			data:    bytes.NewReader(corruptTrailer(gzipBytes(t, buildTar(t, file("a.txt", "hello"))), 4)),
			want:    ErrMalformedArchive,
		},
		{
			name:    "missing_trailer",
			archive: "cut.tar.gz",
			data:    bytes.NewReader(cutTrailer(gzipBytes(t, buildTar(t, file("a.txt", "hello"))))),
			want:    ErrMalformedArchive,
		},
		{
			name:    "read_error",
			archive: "broken.tar",
			data:    iotest.ErrReader(errors.New("device gone")),
			want:    ErrIO,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := ReadArchive(tt.data, tt.archive)
			assert.Nil(t, entries)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.archive)
		})
	}
}

func TestOpenArchive(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()

	t.Run("success", func(t *testing.T) {
		filePath := filepath.Join(tempDir, "ok.tar.gz")
		require.NoError(t, os.WriteFile(filePath, gzipBytes(t, buildTar(t, dir("docs/"))), 0o644))
		entries, err := OpenArchive(filePath)
		require.NoError(t, err)
		assert.Equal(t, []string{"docs"}, paths(entries))
	})

	t.Run("missing", func(t *testing.T) {
		entries, err := OpenArchive(filepath.Join(tempDir, "missing.tar"))
		assert.Nil(t, entries)
		assert.ErrorIs(t, err, ErrIO)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := OpenArchive(tempDir)
		assert.ErrorIs(t, err, ErrIO)
	})
}

func TestIsGzip(t *testing.T) {
	t.Parallel()
	assert.True(t, IsGzip("a.tar.gz"))
	assert.True(t, IsGzip("a.tgz"))
	assert.True(t, IsGzip("A.TAR.GZ"))
	assert.False(t, IsGzip("a.tar"))
	assert.False(t, IsGzip("gz"))
}

func TestModifiedUTC(t *testing.T) {
	t.Parallel()
	assert.Equal(t, time.Unix(0, 0).UTC(), modifiedUTC(time.Time{}))
	assert.Equal(t, time.UTC, modifiedUTC(testModTime).Location())
}

func TestKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "directory", KindDirectory.String())
}
