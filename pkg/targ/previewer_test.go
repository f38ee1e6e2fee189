package targ

import (
	"strings"
	"testing"

	"github.com/datatug/targ/pkg/files"
	"github.com/stretchr/testify/assert"
)

func TestDirPreviewText(t *testing.T) {
	t.Parallel()
	docs := newTestForest()[0].(*files.DirEntry)
	text := dirPreviewText(docs)
	assert.Contains(t, text, "Directory:")
	assert.Contains(t, text, "docs")
	assert.Contains(t, text, "Entries:[-] 2")
	assert.Contains(t, text, "2024-03-01 12:30:00")
}

func TestFilePreviewText(t *testing.T) {
	t.Parallel()

	t.Run("source", func(t *testing.T) {
		head := []byte("package main\n\nfunc main() {}\n")
		f := files.NewFileEntry("cmd/main.go", files.Size(uint64(len(head))), files.Head(head))
		text := filePreviewText(f)
		assert.Contains(t, text, "cmd/main.go")
		assert.Contains(t, text, "[#")
		assert.Contains(t, text, "package")
		assert.NotContains(t, text, "shown")
	})

	t.Run("plain", func(t *testing.T) {
		head := []byte("just [red] text")
		f := files.NewFileEntry("notes.unknownext", files.Size(uint64(len(head))), files.Head(head))
		text := filePreviewText(f)
		assert.Contains(t, text, "just [red[] text")
	})

	t.Run("binary", func(t *testing.T) {
		bin := newTestForest()[1].(*files.FileEntry)
		text := filePreviewText(bin)
		assert.Contains(t, text, "binary content")
		assert.NotContains(t, text, "ELF")
	})

	t.Run("truncated", func(t *testing.T) {
		f := files.NewFileEntry("big.txt", files.Size(100_000), files.Head([]byte(strings.Repeat("a", 10))))
		text := filePreviewText(f)
		assert.Contains(t, text, "shown")
		assert.Contains(t, text, "100000 bytes")
	})

	t.Run("no_head", func(t *testing.T) {
		f := files.NewFileEntry("empty.txt")
		text := filePreviewText(f)
		assert.Contains(t, text, "empty.txt")
		assert.NotContains(t, text, "binary")
	})

	t.Run("link", func(t *testing.T) {
		link := newTestForest()[2].(*files.FileEntry)
		assert.Contains(t, filePreviewText(link), "Link:[-] bin")
	})
}

func TestIsText(t *testing.T) {
	t.Parallel()
	assert.True(t, isText([]byte("hello")))
	assert.True(t, isText([]byte("привет")))
	assert.True(t, isText([]byte("привет")[:3]), "rune cut at the end")
	assert.False(t, isText([]byte{'a', 0, 'b'}))
	assert.False(t, isText([]byte{0xff, 0xfe, 'a', 'b', 'c', 'd', 'e'}))
}

func TestPreviewer(t *testing.T) {
	t.Parallel()
	p := newPreviewer()
	assert.Equal(t, " Preview ", p.GetTitle())
	forest := newTestForest()

	p.Preview(forest[0])
	assert.Contains(t, p.GetText(true), "Directory: docs")

	p.Preview(forest[1])
	assert.Contains(t, p.GetText(true), "File: bin")

	p.SetEmpty("nothing")
	assert.Equal(t, "nothing", p.GetText(true))
}
