package targ

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/datatug/targ/pkg/chroma2tcell"
	"github.com/datatug/targ/pkg/files"
	"github.com/datatug/targ/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type previewer struct {
	*tview.TextView
}

func newPreviewer() *previewer {
	p := &previewer{
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(false).
			SetScrollable(true),
	}
	p.SetBorder(true)
	p.SetBorderColor(Style.BorderColor)
	p.SetTitle(" Preview ")
	return p
}

func (p *previewer) Preview(entry files.Entry) {
	p.ScrollToBeginning()
	p.SetTextColor(tcell.ColorWhiteSmoke)
	switch e := entry.(type) {
	case *files.DirEntry:
		p.SetText(dirPreviewText(e))
	case *files.FileEntry:
		p.SetText(filePreviewText(e))
	default:
		p.Clear()
	}
}

func (p *previewer) SetEmpty(text string) {
	p.Clear()
	p.SetTextColor(Style.EmptyColor)
	p.SetText(text)
}

func metaLine(sb *strings.Builder, label, value string) {
	_, _ = fmt.Fprintf(sb, "[%s]%s:[-] %s\n", Style.MetaLabelColor, label, tview.Escape(value))
}

func dirPreviewText(d *files.DirEntry) string {
	var sb strings.Builder
	metaLine(&sb, "Directory", d.Path())
	metaLine(&sb, "Entries", fmt.Sprintf("%d", d.ChildCount()))
	metaLine(&sb, "Modified", fsutils.GetModTimeText(d.ModTime()))
	return sb.String()
}

func filePreviewText(f *files.FileEntry) string {
	var sb strings.Builder
	metaLine(&sb, "File", f.Path())
	metaLine(&sb, "Size", fmt.Sprintf("%s (%d bytes)", fsutils.GetSizeShortText(f.Size()), f.Size()))
	metaLine(&sb, "Modified", fsutils.GetModTimeText(f.ModTime()))
	metaLine(&sb, "Mode", f.Mode().String())
	if f.LinkName() != "" {
		metaLine(&sb, "Link", f.LinkName())
	}

	head := f.Head()
	if len(head) == 0 {
		return sb.String()
	}
	sb.WriteString("\n")
	if !isText(head) {
		_, _ = fmt.Fprintf(&sb, "[%s][::i]binary content[::-][-]\n", Style.EmptyColor)
		return sb.String()
	}
	text := string(head)
	if colorized, matched, err := chroma2tcell.ColorizeFile(f.Name(), text); err == nil && matched {
		sb.WriteString(colorized)
	} else {
		sb.WriteString(tview.Escape(text))
	}
	if uint64(len(head)) < f.Size() {
		_, _ = fmt.Fprintf(&sb, "\n[%s][::i]first %s of %s shown[::-][-]\n",
			Style.EmptyColor, fsutils.GetSizeShortText(uint64(len(head))), fsutils.GetSizeShortText(f.Size()))
	}
	return sb.String()
}

// isText reports whether data looks like text. A head cut in the middle of a
// multi-byte rune still counts as text.
func isText(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return false
	}
	for i := 0; i < utf8.UTFMax && len(data) > 0; i++ {
		if utf8.Valid(data) {
			return true
		}
		data = data[:len(data)-1]
	}
	return utf8.Valid(data)
}
